package scoring

import (
	"sort"

	"github.com/draftboardhq/bigboard/internal/models"
)

// Rank orders scored players by weighted points and assigns overall and
// per-position ranks. Ties break on raw points, then player id, so the
// ordering is a deterministic total order. Only rankable players belong
// here; insufficient-data players live in a separate bucket.
func Rank(players []models.ScoredPlayer) []models.ScoredPlayer {
	ranked := make([]models.ScoredPlayer, len(players))
	copy(ranked, players)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].WeightedPoints != ranked[j].WeightedPoints {
			return ranked[i].WeightedPoints > ranked[j].WeightedPoints
		}
		if ranked[i].RawPoints != ranked[j].RawPoints {
			return ranked[i].RawPoints > ranked[j].RawPoints
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})

	positionCounts := make(map[models.Position]int)
	for i := range ranked {
		ranked[i].OverallRank = i + 1
		positionCounts[ranked[i].Position]++
		ranked[i].PositionRank = positionCounts[ranked[i].Position]
	}

	return ranked
}

// ApplyADP annotates ranked players with consensus draft position and the
// value delta against the model rank. Positive delta means the model has
// the player earlier than the market does. The adjusted delta rescales by
// league size so one unit means one full draft round. The match function
// is supplied by the caller; name matching is not this package's concern.
func ApplyADP(ranked []models.ScoredPlayer, match func(playerName string) (models.ADPEntry, bool), leagueSize int) {
	if match == nil {
		return
	}

	for i := range ranked {
		entry, ok := match(ranked[i].PlayerID)
		if !ok {
			continue
		}

		adpRank := entry.ADP
		delta := adpRank - float64(ranked[i].OverallRank)
		adjusted := delta / float64(leagueSize)

		ranked[i].ADPRank = &adpRank
		ranked[i].ADPDelta = &delta
		ranked[i].ADPAdjDelta = &adjusted
	}
}

// Recommendation maps a league-size-adjusted ADP delta to a draft-value
// tier. Nil means the player never matched the ADP data.
func Recommendation(adjDelta *float64) string {
	if adjDelta == nil {
		return "Not in ADP"
	}

	switch delta := *adjDelta; {
	case delta >= 1.0:
		return "Strong Buy"
	case delta >= 0.5:
		return "Buy"
	case delta >= 0.0:
		return "Slight Buy"
	case delta >= -0.5:
		return "Slight Avoid"
	case delta >= -1.0:
		return "Avoid"
	default:
		return "Strong Avoid"
	}
}
