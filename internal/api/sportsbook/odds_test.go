package sportsbook

import (
	"net/http"
	"testing"

	"github.com/draftboardhq/bigboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlayerProps_FlattensPlayerMarkets(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/events/evt1/props", r.URL.Path)
		w.Write([]byte(`{
			"props": [
				{
					"name": "Receiving Yards",
					"type": "player",
					"outcomes": [
						{"player": {"name": "Puka Nacua"}, "team": {"name": "LA"}, "line": 82.5},
						{"player": {"name": ""}, "team": {"name": "LA"}, "line": 10}
					]
				},
				{
					"name": "Total Points",
					"type": "game",
					"outcomes": [{"line": 48.5}]
				},
				{
					"name": "Longest Completion",
					"type": "player",
					"outcomes": [{"player": {"name": "Matthew Stafford"}, "line": 38.5}]
				}
			]
		}`))
	}))
	api := NewAPI(client)

	lines, err := api.GetPlayerProps("evt1")
	require.NoError(t, err)

	// Game props and unmapped markets drop out; empty player names drop out.
	require.Len(t, lines, 1)
	assert.Equal(t, "Puka Nacua", lines[0].PlayerID)
	assert.Equal(t, "LA", lines[0].Team)
	assert.Equal(t, models.MarketRecYards, lines[0].Market)
	assert.InDelta(t, 82.5, lines[0].Line, 1e-9)
}

func TestApplyImpliedPoints(t *testing.T) {
	event := models.Event{
		EventID:  "evt1",
		HomeTeam: models.EventTeam{Name: "KC"},
		AwayTeam: models.EventTeam{Name: "LV"},
	}
	markets := []models.GameMarket{
		{
			Name:     "Total Points",
			Outcomes: []models.GameOutcome{{Line: 48}},
		},
		{
			Name: "Point Spread",
			Outcomes: []models.GameOutcome{
				{Team: models.EventTeam{Name: "KC"}, Line: -7},
				{Team: models.EventTeam{Name: "LV"}, Line: 7},
			},
		},
	}

	odds := make(map[string]TeamOdds)
	applyImpliedPoints(odds, event, markets)

	require.True(t, odds["KC"].HasPoints)
	assert.InDelta(t, 27.5, odds["KC"].ImpliedPoints, 1e-9)
	assert.InDelta(t, 20.5, odds["LV"].ImpliedPoints, 1e-9)
}

func TestApplyImpliedPoints_NoTotal(t *testing.T) {
	event := models.Event{
		HomeTeam: models.EventTeam{Name: "KC"},
		AwayTeam: models.EventTeam{Name: "LV"},
	}
	markets := []models.GameMarket{
		{
			Name: "Point Spread",
			Outcomes: []models.GameOutcome{
				{Team: models.EventTeam{Name: "KC"}, Line: -3},
			},
		},
	}

	odds := make(map[string]TeamOdds)
	applyImpliedPoints(odds, event, markets)
	assert.Empty(t, odds)
}

func TestGetNFLCompetitionKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"key": "epl", "name": "English Premier League"},
			{"key": "nfl-2025", "name": "NFL 2025 Season"}
		]`))
	}))
	api := NewAPI(client)

	key, err := api.GetNFLCompetitionKey()
	require.NoError(t, err)
	assert.Equal(t, "nfl-2025", key)
}
