package scoring

import (
	"errors"
	"fmt"

	"github.com/draftboardhq/bigboard/internal/models"
)

// DefaultWeights is the full-PPR scoring table: points per unit of each
// prop market. Markets absent from the table are ignored by the calculator.
var DefaultWeights = map[models.Market]float64{
	models.MarketPassYards:  0.04,
	models.MarketPassTDs:    4,
	models.MarketRushYards:  0.1,
	models.MarketRushTDs:    6,
	models.MarketReceptions: 1,
	models.MarketRecYards:   0.1,
	models.MarketRecTDs:     6,
}

// ErrNoQualifyingLines marks a player with no prop line in any weighted
// market. Absence is not a zero score; callers bucket these players.
var ErrNoQualifyingLines = errors.New("no qualifying prop lines")

// DataQualityError marks a player whose prop data is malformed. The player
// is flagged and excluded; the run continues.
type DataQualityError struct {
	PlayerID string
	Reason   string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("bad prop data for %s: %s", e.PlayerID, e.Reason)
}

type Calculator struct {
	weights map[models.Market]float64
}

func NewCalculator(weights map[models.Market]float64) *Calculator {
	return &Calculator{weights: weights}
}

// RawPoints converts one player's prop lines into expected fantasy points:
// line value times scoring weight, summed across weighted markets. Feeds
// repeat the same prop across events and list both sides of the line, so
// one value is kept per market (last wins) rather than summing duplicates.
func (c *Calculator) RawPoints(playerID string, lines []models.PropLine) (float64, error) {
	byMarket := make(map[models.Market]float64)

	for _, line := range lines {
		if _, ok := c.weights[line.Market]; !ok {
			continue
		}
		if line.Line < 0 {
			return 0, &DataQualityError{
				PlayerID: playerID,
				Reason:   fmt.Sprintf("negative line %.2f for market %s", line.Line, line.Market),
			}
		}
		byMarket[line.Market] = line.Line
	}

	if len(byMarket) == 0 {
		return 0, ErrNoQualifyingLines
	}

	var points float64
	for market, value := range byMarket {
		points += value * c.weights[market]
	}

	return points, nil
}
