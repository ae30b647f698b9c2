package nflfastr

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/draftboardhq/bigboard/internal/models"
)

// Aggregates holds the per-run snapshot derived from one season of
// play-by-play: player availability and team pace. Regular-season rows only.
type Aggregates struct {
	Players map[string]models.PlayerContext
	Pace    map[string]float64
}

type playerAccum struct {
	games    map[string]struct{}
	age      int
	position models.Position
	team     string
}

// AggregateFile opens a downloaded csv.gz archive and aggregates it.
func AggregateFile(path string) (*Aggregates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening play-by-play archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading play-by-play archive: %w", err)
	}
	defer gz.Close()

	return Aggregate(gz)
}

// Aggregate streams play-by-play CSV rows into player and pace tables in a
// single pass, without materializing the full dataset.
func Aggregate(r io.Reader) (*Aggregates, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading play-by-play header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"season_type", "game_id", "posteam", "player_id", "age", "position"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("play-by-play data missing column %q", required)
		}
	}

	players := make(map[string]*playerAccum)
	teamGames := make(map[string]map[string]int)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading play-by-play row: %w", err)
		}

		if field(row, cols, "season_type") != "REG" {
			continue
		}

		gameID := field(row, cols, "game_id")
		team := field(row, cols, "posteam")

		if team != "" && gameID != "" {
			games, ok := teamGames[team]
			if !ok {
				games = make(map[string]int)
				teamGames[team] = games
			}
			games[gameID]++
		}

		playerID := field(row, cols, "player_id")
		if playerID == "" {
			continue
		}

		accum, ok := players[playerID]
		if !ok {
			accum = &playerAccum{games: make(map[string]struct{})}
			players[playerID] = accum
		}
		accum.games[gameID] = struct{}{}
		if accum.age == 0 {
			if age, err := strconv.Atoi(field(row, cols, "age")); err == nil {
				accum.age = age
			}
		}
		if accum.position == "" {
			accum.position = models.Position(field(row, cols, "position"))
		}
		if team != "" {
			accum.team = team
		}
	}

	aggregates := &Aggregates{
		Players: make(map[string]models.PlayerContext, len(players)),
		Pace:    make(map[string]float64, len(teamGames)),
	}

	for playerID, accum := range players {
		aggregates.Players[playerID] = models.PlayerContext{
			PlayerID:    playerID,
			Position:    accum.position,
			Age:         accum.age,
			GamesPlayed: len(accum.games),
			TeamID:      accum.team,
		}
	}

	for team, games := range teamGames {
		var plays int
		for _, n := range games {
			plays += n
		}
		aggregates.Pace[team] = float64(plays) / float64(len(games))
	}

	return aggregates, nil
}

// LeaguePace is the mean plays-per-game across all teams in the snapshot,
// used as the fallback when a team has no pace data.
func (a *Aggregates) LeaguePace() float64 {
	if len(a.Pace) == 0 {
		return 0
	}
	var sum float64
	for _, pace := range a.Pace {
		sum += pace
	}
	return sum / float64(len(a.Pace))
}

func field(row []string, cols map[string]int, name string) string {
	idx := cols[name]
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
