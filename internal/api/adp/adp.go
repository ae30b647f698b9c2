package adp

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/draftboardhq/bigboard/internal/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const matchThreshold = 0.85

// LoadCSV reads consensus ADP data from a two-column CSV (player name, adp).
// A header row is detected and skipped.
func LoadCSV(path string) ([]models.ADPEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ADP file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func Parse(r io.Reader) ([]models.ADPEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var entries []models.ADPEntry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ADP row: %w", err)
		}
		if len(row) < 2 {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			// Header or junk row.
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		entries = append(entries, models.ADPEntry{
			PlayerName:     name,
			NormalizedName: NormalizeName(name),
			ADP:            value,
		})
	}

	return entries, nil
}

// NormalizeName lowercases a player name and strips generational suffixes
// so names from different sources line up.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	suffixes := []string{" ii", " iii", " iv", " jr.", " sr.", " jr", " sr"}
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			name = name[:len(name)-len(suffix)]
			break
		}
	}

	return strings.Join(strings.Fields(name), " ")
}

// Match finds the ADP entry for a player, trying an exact normalized match
// before falling back to fuzzy matching.
func Match(playerName string, entries []models.ADPEntry) (models.ADPEntry, bool) {
	normalized := NormalizeName(playerName)

	for _, entry := range entries {
		if entry.NormalizedName == normalized {
			return entry, true
		}
	}

	var best models.ADPEntry
	bestSimilarity := -1.0

	for _, entry := range entries {
		distance := fuzzy.LevenshteinDistance(normalized, entry.NormalizedName)
		maxLen := float64(max(len(normalized), len(entry.NormalizedName)))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/maxLen

		if similarity >= matchThreshold && similarity > bestSimilarity {
			bestSimilarity = similarity
			best = entry
		}
	}

	if bestSimilarity < 0 {
		return models.ADPEntry{}, false
	}
	return best, true
}
