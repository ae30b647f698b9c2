package scoring

import (
	"testing"

	"github.com/draftboardhq/bigboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_OrdersByWeightedPoints(t *testing.T) {
	players := []models.ScoredPlayer{
		{PlayerID: "Player B", Position: models.PositionWR, RawPoints: 16, WeightedPoints: 15.0},
		{PlayerID: "Player A", Position: models.PositionWR, RawPoints: 17, WeightedPoints: 16.9575},
	}

	ranked := Rank(players)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Player A", ranked[0].PlayerID)
	assert.Equal(t, 1, ranked[0].OverallRank)
	assert.Equal(t, "Player B", ranked[1].PlayerID)
	assert.Equal(t, 2, ranked[1].OverallRank)
}

func TestRank_TieBreaks(t *testing.T) {
	players := []models.ScoredPlayer{
		{PlayerID: "zeta", Position: models.PositionRB, RawPoints: 10, WeightedPoints: 9},
		{PlayerID: "alpha", Position: models.PositionRB, RawPoints: 10, WeightedPoints: 9},
		{PlayerID: "mid", Position: models.PositionRB, RawPoints: 12, WeightedPoints: 9},
	}

	ranked := Rank(players)

	// Equal weighted points: higher raw first, then player id ascending.
	assert.Equal(t, "mid", ranked[0].PlayerID)
	assert.Equal(t, "alpha", ranked[1].PlayerID)
	assert.Equal(t, "zeta", ranked[2].PlayerID)
}

func TestRank_StrictTotalOrder(t *testing.T) {
	players := []models.ScoredPlayer{
		{PlayerID: "a", Position: models.PositionQB, WeightedPoints: 20},
		{PlayerID: "b", Position: models.PositionRB, WeightedPoints: 20},
		{PlayerID: "c", Position: models.PositionRB, WeightedPoints: 18},
		{PlayerID: "d", Position: models.PositionWR, WeightedPoints: 18},
	}

	ranked := Rank(players)

	seen := make(map[int]bool)
	for _, player := range ranked {
		assert.False(t, seen[player.OverallRank], "duplicate overall rank %d", player.OverallRank)
		seen[player.OverallRank] = true
	}
}

func TestRank_PositionRanks(t *testing.T) {
	players := []models.ScoredPlayer{
		{PlayerID: "wr1", Position: models.PositionWR, WeightedPoints: 20},
		{PlayerID: "rb1", Position: models.PositionRB, WeightedPoints: 18},
		{PlayerID: "wr2", Position: models.PositionWR, WeightedPoints: 15},
	}

	ranked := Rank(players)

	assert.Equal(t, 1, ranked[0].PositionRank)
	assert.Equal(t, 1, ranked[1].PositionRank)
	assert.Equal(t, 2, ranked[2].PositionRank)
	assert.Equal(t, 3, ranked[2].OverallRank)
}

func TestRank_Deterministic(t *testing.T) {
	players := []models.ScoredPlayer{
		{PlayerID: "b", Position: models.PositionTE, WeightedPoints: 7},
		{PlayerID: "a", Position: models.PositionTE, WeightedPoints: 7},
	}

	first := Rank(players)
	second := Rank([]models.ScoredPlayer{players[1], players[0]})

	assert.Equal(t, first[0].PlayerID, second[0].PlayerID)
}

func TestApplyADP_Delta(t *testing.T) {
	ranked := []models.ScoredPlayer{
		{PlayerID: "Justin Jefferson", OverallRank: 1},
		{PlayerID: "Unknown Rookie", OverallRank: 2},
	}
	match := func(name string) (models.ADPEntry, bool) {
		if name == "Justin Jefferson" {
			return models.ADPEntry{PlayerName: name, ADP: 8}, true
		}
		return models.ADPEntry{}, false
	}

	ApplyADP(ranked, match, 14)

	require.NotNil(t, ranked[0].ADPRank)
	assert.InDelta(t, 8.0, *ranked[0].ADPRank, 1e-9)
	assert.InDelta(t, 7.0, *ranked[0].ADPDelta, 1e-9)
	assert.InDelta(t, 0.5, *ranked[0].ADPAdjDelta, 1e-9)

	assert.Nil(t, ranked[1].ADPRank)
	assert.Nil(t, ranked[1].ADPDelta)
}

func TestApplyADP_NilMatcherIsNoOp(t *testing.T) {
	ranked := []models.ScoredPlayer{{PlayerID: "a", OverallRank: 1}}
	ApplyADP(ranked, nil, 14)
	assert.Nil(t, ranked[0].ADPRank)
}

func TestRecommendation_Tiers(t *testing.T) {
	tier := func(v float64) string { return Recommendation(&v) }

	assert.Equal(t, "Not in ADP", Recommendation(nil))
	assert.Equal(t, "Strong Buy", tier(1.2))
	assert.Equal(t, "Buy", tier(0.6))
	assert.Equal(t, "Slight Buy", tier(0.1))
	assert.Equal(t, "Slight Avoid", tier(-0.2))
	assert.Equal(t, "Avoid", tier(-0.8))
	assert.Equal(t, "Strong Avoid", tier(-2.0))
}
