package scoring

import (
	"sort"

	"github.com/draftboardhq/bigboard/internal/models"
)

// replacementSlots is how many players at a position a standard league
// starts per team, which sets where the replacement level sits.
var replacementSlots = map[models.Position]int{
	models.PositionQB: 1,
	models.PositionRB: 2,
	models.PositionWR: 2,
	models.PositionTE: 1,
}

// ReplacementBaselines finds the raw points of the replacement-level player
// at each position for the given league size. Short pools fall back to the
// positional median.
func ReplacementBaselines(players []models.ScoredPlayer, leagueSize int) map[models.Position]float64 {
	byPosition := make(map[models.Position][]float64)
	for _, player := range players {
		byPosition[player.Position] = append(byPosition[player.Position], player.RawPoints)
	}

	baselines := make(map[models.Position]float64, len(byPosition))
	for position, points := range byPosition {
		sort.Sort(sort.Reverse(sort.Float64Slice(points)))

		idx := replacementSlots[position]*leagueSize - 1
		if idx < len(points) {
			baselines[position] = points[idx]
		} else {
			baselines[position] = median(points)
		}
	}

	return baselines
}

// ApplyVOR sets each player's value over the positional replacement level.
func ApplyVOR(players []models.ScoredPlayer, baselines map[models.Position]float64) {
	for i := range players {
		players[i].VOR = players[i].RawPoints - baselines[players[i].Position]
	}
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
