package scoring

import (
	"fmt"
	"testing"

	"github.com/draftboardhq/bigboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePool(position models.Position, count int, topPoints float64) []models.ScoredPlayer {
	players := make([]models.ScoredPlayer, count)
	for i := range players {
		players[i] = models.ScoredPlayer{
			PlayerID:  fmt.Sprintf("%s%d", position, i),
			Position:  position,
			RawPoints: topPoints - float64(i),
		}
	}
	return players
}

func TestReplacementBaselines(t *testing.T) {
	var pool []models.ScoredPlayer
	pool = append(pool, makePool(models.PositionQB, 20, 24)...)
	pool = append(pool, makePool(models.PositionRB, 30, 20)...)

	baselines := ReplacementBaselines(pool, 12)

	// QB replacement is the 12th best, RB the 24th best.
	require.Contains(t, baselines, models.PositionQB)
	assert.InDelta(t, 24-11, baselines[models.PositionQB], 1e-9)
	assert.InDelta(t, 20-23, baselines[models.PositionRB], 1e-9)
}

func TestReplacementBaselines_ShortPoolUsesMedian(t *testing.T) {
	pool := makePool(models.PositionTE, 5, 10) // 10, 9, 8, 7, 6

	baselines := ReplacementBaselines(pool, 12)
	assert.InDelta(t, 8.0, baselines[models.PositionTE], 1e-9)
}

func TestApplyVOR(t *testing.T) {
	players := []models.ScoredPlayer{
		{PlayerID: "star", Position: models.PositionWR, RawPoints: 18},
		{PlayerID: "replacement", Position: models.PositionWR, RawPoints: 10},
	}
	baselines := map[models.Position]float64{models.PositionWR: 10}

	ApplyVOR(players, baselines)

	assert.InDelta(t, 8.0, players[0].VOR, 1e-9)
	assert.InDelta(t, 0.0, players[1].VOR, 1e-9)
}
