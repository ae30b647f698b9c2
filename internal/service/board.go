package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/draftboardhq/bigboard/internal/api/adp"
	"github.com/draftboardhq/bigboard/internal/api/nflfastr"
	"github.com/draftboardhq/bigboard/internal/api/sportsbook"
	"github.com/draftboardhq/bigboard/internal/models"
	"github.com/draftboardhq/bigboard/internal/repository/memory"
	"github.com/draftboardhq/bigboard/internal/scoring"
)

type BoardService struct {
	odds       *sportsbook.API
	pbp        *nflfastr.Client
	repo       *memory.Repository
	calculator *scoring.Calculator
	adpEntries []models.ADPEntry
}

func NewBoardService(odds *sportsbook.API, pbp *nflfastr.Client, repo *memory.Repository, adpEntries []models.ADPEntry) *BoardService {
	return &BoardService{
		odds:       odds,
		pbp:        pbp,
		repo:       repo,
		calculator: scoring.NewCalculator(scoring.DefaultWeights),
		adpEntries: adpEntries,
	}
}

// BuildBoard runs one full pipeline pass: fetch props and context, score,
// weight, rank, and return the board. Fetch failures before scoring are
// fatal; per-player data problems flag the player and continue.
func (s *BoardService) BuildBoard(leagueSize int) (*models.BigBoard, error) {
	competitionKey, err := s.odds.GetNFLCompetitionKey()
	if err != nil {
		return nil, fmt.Errorf("resolving NFL competition: %w", err)
	}

	events, err := s.odds.GetEvents(competitionKey)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	slog.Info("Fetched events", "count", len(events))

	propsByPlayer := s.collectProps(events)
	if len(propsByPlayer) == 0 {
		return nil, fmt.Errorf("no player props found across %d events", len(events))
	}
	slog.Info("Collected player props", "players", len(propsByPlayer))

	aggregates, err := s.getAggregates()
	if err != nil {
		return nil, fmt.Errorf("aggregating play-by-play data: %w", err)
	}

	teamContexts := s.buildTeamContexts(competitionKey, events, aggregates)
	averages := scoring.ComputeLeagueAverages(teamContexts)
	slog.Info("Per-run league averages",
		"implied_points", averages.ImpliedPoints,
		"win_total", averages.WinTotal,
		"pace", averages.Pace)

	var rankable []models.ScoredPlayer
	var flagged []models.ScoredPlayer

	for key, lines := range propsByPlayer {
		player := s.scorePlayer(key.player, key.team, lines, aggregates, teamContexts, averages)
		if player.Status == models.StatusInsufficientData {
			flagged = append(flagged, player)
			continue
		}
		rankable = append(rankable, player)
	}

	ranked := scoring.Rank(rankable)
	baselines := scoring.ReplacementBaselines(ranked, leagueSize)
	scoring.ApplyVOR(ranked, baselines)
	scoring.ApplyADP(ranked, s.matchADP(), leagueSize)

	return &models.BigBoard{
		Ranked:      ranked,
		Flagged:     flagged,
		LeagueSize:  leagueSize,
		GeneratedAt: time.Now(),
	}, nil
}

// matchADP binds the loaded ADP table to a lookup the ranker can use
// without knowing about name matching. Nil when no ADP data was supplied.
func (s *BoardService) matchADP() func(string) (models.ADPEntry, bool) {
	if len(s.adpEntries) == 0 {
		return nil
	}
	return func(playerName string) (models.ADPEntry, bool) {
		return adp.Match(playerName, s.adpEntries)
	}
}

// propKey identifies a player within one run. Keying on name alone would
// merge same-named players on different teams into one entry.
type propKey struct {
	player string
	team   string
}

func (s *BoardService) collectProps(events []models.Event) map[propKey][]models.PropLine {
	propsByPlayer := make(map[propKey][]models.PropLine)

	for _, event := range events {
		lines, err := s.odds.GetPlayerProps(event.EventID)
		if err != nil {
			slog.Warn("Could not fetch props for event", "event", event.EventID, "error", err)
			continue
		}
		for _, line := range lines {
			key := propKey{player: line.PlayerID, team: line.Team}
			propsByPlayer[key] = append(propsByPlayer[key], line)
		}
	}

	return propsByPlayer
}

func (s *BoardService) getAggregates() (*nflfastr.Aggregates, error) {
	if snapshot := s.repo.GetAggregates(); snapshot != nil && time.Since(snapshot.FetchedAt) < 24*time.Hour {
		return snapshot.Aggregates, nil
	}

	path, err := s.pbp.Download()
	if err != nil {
		return nil, err
	}

	aggregates, err := nflfastr.AggregateFile(path)
	if err != nil {
		return nil, err
	}

	s.repo.SaveAggregates(&memory.AggregatesSnapshot{Aggregates: aggregates, FetchedAt: time.Now()})
	return aggregates, nil
}

// buildTeamContexts joins odds-derived implied points and win totals with
// play-by-play pace. A team only gets a context when the odds side is
// present; pace alone is not enough to say anything about team strength.
func (s *BoardService) buildTeamContexts(competitionKey string, events []models.Event, aggregates *nflfastr.Aggregates) map[string]models.TeamContext {
	teamOdds, err := s.odds.GetTeamOdds(competitionKey, events)
	if err != nil {
		slog.Warn("Could not fetch team odds", "error", err)
		return nil
	}

	leaguePace := aggregates.LeaguePace()
	contexts := make(map[string]models.TeamContext)

	for team, odds := range teamOdds {
		if !odds.HasPoints || !odds.HasWinTotal {
			continue
		}

		pace, ok := aggregates.Pace[team]
		if !ok {
			pace = leaguePace
		}

		contexts[team] = models.TeamContext{
			TeamID:          team,
			ImpliedWinTotal: odds.ImpliedWinTotal,
			ImpliedPoints:   odds.ImpliedPoints,
			PlaysPerGame:    pace,
		}
	}

	return contexts
}

func (s *BoardService) scorePlayer(
	playerID string,
	team string,
	lines []models.PropLine,
	aggregates *nflfastr.Aggregates,
	teamContexts map[string]models.TeamContext,
	averages scoring.LeagueAverages,
) models.ScoredPlayer {
	rawPoints, err := s.calculator.RawPoints(playerID, lines)
	if err != nil {
		slog.Warn("Flagging player", "player", playerID, "reason", err)
		return models.ScoredPlayer{
			PlayerID:   playerID,
			Team:       team,
			Position:   inferPosition(lines),
			Status:     models.StatusInsufficientData,
			FlagReason: err.Error(),
		}
	}

	playerCtx, hasPlayerCtx := aggregates.Players[playerID]
	if !hasPlayerCtx {
		// New players have no play-by-play history. Treat them as fully
		// available and infer position from the markets offered on them.
		playerCtx = models.PlayerContext{
			PlayerID:    playerID,
			Position:    inferPosition(lines),
			GamesPlayed: 17,
			TeamID:      team,
		}
	}
	if playerCtx.Position == "" {
		playerCtx.Position = inferPosition(lines)
	}

	injuryFactor := scoring.InjuryFactor(playerCtx, scoring.DefaultAgeCurve)

	teamFactor := 1.0
	status := models.StatusFullyScored
	flagReason := ""
	if teamCtx, ok := teamContexts[team]; ok {
		teamFactor = scoring.TeamFactor(teamCtx, averages, playerCtx.Position, scoring.DefaultTeamFactorWeights)
	} else {
		status = models.StatusContextMissing
		flagReason = "no team context for " + team
	}

	return models.ScoredPlayer{
		PlayerID:       playerID,
		Team:           team,
		Position:       playerCtx.Position,
		RawPoints:      rawPoints,
		InjuryFactor:   injuryFactor,
		TeamFactor:     teamFactor,
		WeightedPoints: rawPoints * injuryFactor * teamFactor,
		Status:         status,
		FlagReason:     flagReason,
	}
}

// inferPosition guesses a position from the markets a book offers on the
// player, for players absent from the play-by-play history.
func inferPosition(lines []models.PropLine) models.Position {
	var hasPass, hasRec, hasRush bool
	for _, line := range lines {
		switch {
		case strings.HasPrefix(string(line.Market), "pass"):
			hasPass = true
		case strings.HasPrefix(string(line.Market), "rec"):
			hasRec = true
		case strings.HasPrefix(string(line.Market), "rush"):
			hasRush = true
		}
	}

	switch {
	case hasPass:
		return models.PositionQB
	case hasRec && !hasRush:
		return models.PositionWR
	default:
		return models.PositionRB
	}
}
