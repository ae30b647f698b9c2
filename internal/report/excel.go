package report

import (
	"fmt"
	"math"

	"github.com/draftboardhq/bigboard/internal/models"
	"github.com/draftboardhq/bigboard/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const (
	sheetBigBoard = "Big Board"
	sheetADP      = "ADP Comparison"
	sheetFlagged  = "Flagged"
)

var positionSheets = []models.Position{
	models.PositionQB,
	models.PositionRB,
	models.PositionWR,
	models.PositionTE,
}

// tierColors are the conditional-formatting fills for ADP value tiers.
var tierColors = map[string]string{
	"Strong Buy":   "1ABC9C",
	"Buy":          "2ECC71",
	"Slight Buy":   "A9DFBF",
	"Slight Avoid": "F4D03F",
	"Avoid":        "E67E22",
	"Strong Avoid": "E74C3C",
	"Not in ADP":   "BB8FCE",
}

// WriteWorkbook serializes a board into a multi-sheet workbook. The file is
// only written once every sheet has been built, so a failed run never
// leaves a partial report behind.
func WriteWorkbook(board *models.BigBoard, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetBigBoard)

	if err := writeBigBoard(f, board); err != nil {
		return fmt.Errorf("writing big board sheet: %w", err)
	}
	if err := writeADPComparison(f, board); err != nil {
		return fmt.Errorf("writing ADP sheet: %w", err)
	}
	for _, position := range positionSheets {
		if err := writePositionSheet(f, board, position); err != nil {
			return fmt.Errorf("writing %s sheet: %w", position, err)
		}
	}
	if err := writeFlagged(f, board); err != nil {
		return fmt.Errorf("writing flagged sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeBigBoard(f *excelize.File, board *models.BigBoard) error {
	headers := []string{
		"Rank", "Player", "Team", "Pos", "Pos Rank",
		"Raw Pts", "Injury Factor", "Team Factor", "Weighted Pts",
		"VOR", "ADP", "ADP Delta", "Status", "DRAFTED",
	}
	if err := writeHeader(f, sheetBigBoard, headers); err != nil {
		return err
	}

	for i, player := range board.Ranked {
		row := i + 2
		values := []interface{}{
			player.OverallRank,
			player.PlayerID,
			player.Team,
			string(player.Position),
			player.PositionRank,
			round2(player.RawPoints),
			round4(player.InjuryFactor),
			round4(player.TeamFactor),
			round2(player.WeightedPoints),
			round2(player.VOR),
			floatOrBlank(player.ADPRank),
			floatOrBlank(player.ADPDelta),
			statusLabel(player),
			"", // DRAFTED: marked manually in the sheet
		}
		if err := writeRow(f, sheetBigBoard, row, values); err != nil {
			return err
		}
	}

	return sizeColumns(f, sheetBigBoard, len(headers))
}

func writeADPComparison(f *excelize.File, board *models.BigBoard) error {
	if _, err := f.NewSheet(sheetADP); err != nil {
		return err
	}

	headers := []string{
		"Rank", "Player", "Team", "Pos",
		"ADP", "ADP Delta", "Adj Delta", "Recommendation",
	}
	if err := writeHeader(f, sheetADP, headers); err != nil {
		return err
	}

	for i, player := range board.Ranked {
		row := i + 2
		recommendation := scoring.Recommendation(player.ADPAdjDelta)
		values := []interface{}{
			player.OverallRank,
			player.PlayerID,
			player.Team,
			string(player.Position),
			floatOrBlank(player.ADPRank),
			floatOrBlank(player.ADPDelta),
			floatOrBlank(player.ADPAdjDelta),
			recommendation,
		}
		if err := writeRow(f, sheetADP, row, values); err != nil {
			return err
		}

		if color, ok := tierColors[recommendation]; ok {
			if err := fillRow(f, sheetADP, row, len(headers), color); err != nil {
				return err
			}
		}
	}

	return sizeColumns(f, sheetADP, len(headers))
}

func writePositionSheet(f *excelize.File, board *models.BigBoard, position models.Position) error {
	sheet := string(position)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Pos Rank", "Overall", "Player", "Team", "Raw Pts", "Weighted Pts", "VOR"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return err
	}

	row := 2
	for _, player := range board.Ranked {
		if player.Position != position {
			continue
		}
		values := []interface{}{
			player.PositionRank,
			player.OverallRank,
			player.PlayerID,
			player.Team,
			round2(player.RawPoints),
			round2(player.WeightedPoints),
			round2(player.VOR),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	return sizeColumns(f, sheet, len(headers))
}

func writeFlagged(f *excelize.File, board *models.BigBoard) error {
	if _, err := f.NewSheet(sheetFlagged); err != nil {
		return err
	}

	headers := []string{"Player", "Team", "Pos", "Reason"}
	if err := writeHeader(f, sheetFlagged, headers); err != nil {
		return err
	}

	for i, player := range board.Flagged {
		values := []interface{}{
			player.PlayerID,
			player.Team,
			string(player.Position),
			player.FlagReason,
		}
		if err := writeRow(f, sheetFlagged, i+2, values); err != nil {
			return err
		}
	}

	return sizeColumns(f, sheetFlagged, len(headers))
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	return writeRow(f, sheet, 1, values)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func fillRow(f *excelize.File, sheet string, row, cols int, color string) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, styleID)
}

func sizeColumns(f *excelize.File, sheet string, cols int) error {
	end, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", end, 16)
}

func statusLabel(player models.ScoredPlayer) string {
	if player.Status == models.StatusContextMissing {
		return "context-missing"
	}
	return ""
}

func floatOrBlank(value *float64) interface{} {
	if value == nil {
		return ""
	}
	return round2(*value)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round4(value float64) float64 {
	return math.Round(value*10000) / 10000
}
