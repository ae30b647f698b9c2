package sportsbook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/draftboardhq/bigboard/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// marketNames maps provider prop names to scoring markets. Props the
// scoring table has no use for are dropped at the edge.
var marketNames = map[string]models.Market{
	"passing yards":        models.MarketPassYards,
	"passing touchdowns":   models.MarketPassTDs,
	"rushing yards":        models.MarketRushYards,
	"rushing touchdowns":   models.MarketRushTDs,
	"receptions":           models.MarketReceptions,
	"receiving yards":      models.MarketRecYards,
	"receiving touchdowns": models.MarketRecTDs,
}

func (a *API) GetNFLCompetitionKey() (string, error) {
	var competitions models.CompetitionsResponse
	if err := a.client.Get("/v0/competitions/", nil, &competitions); err != nil {
		return "", fmt.Errorf("fetching competitions: %w", err)
	}

	for _, comp := range competitions {
		if strings.Contains(comp.Name, "NFL") {
			return comp.Key, nil
		}
	}

	return "", fmt.Errorf("NFL competition not found")
}

func (a *API) GetEvents(competitionKey string) ([]models.Event, error) {
	var eventsResponse models.EventsResponse
	endpoint := fmt.Sprintf("/v0/competitions/%s/events", competitionKey)

	if err := a.client.Get(endpoint, nil, &eventsResponse); err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	return eventsResponse.Events, nil
}

// GetPlayerProps fetches the prop markets for one event and flattens them
// into PropLine records. Team and game props are filtered out here.
func (a *API) GetPlayerProps(eventID string) ([]models.PropLine, error) {
	var propsResponse models.PropsResponse
	endpoint := fmt.Sprintf("/v0/events/%s/props", eventID)

	if err := a.client.Get(endpoint, nil, &propsResponse); err != nil {
		return nil, fmt.Errorf("fetching props for event %s: %w", eventID, err)
	}

	var lines []models.PropLine
	for _, prop := range propsResponse.Props {
		if prop.Type != "player" {
			continue
		}

		market, ok := marketNames[strings.ToLower(prop.Name)]
		if !ok {
			continue
		}

		for _, outcome := range prop.Outcomes {
			if outcome.Player.Name == "" {
				continue
			}
			lines = append(lines, models.PropLine{
				PlayerID:           outcome.Player.Name,
				Team:               outcome.Team.Name,
				Market:             market,
				Line:               outcome.Line,
				ImpliedProbability: outcome.ImpliedProb,
			})
		}
	}

	return lines, nil
}

// TeamOdds is the odds-derived slice of a team's context: implied points
// from the event total/spread, implied wins from the season futures market.
type TeamOdds struct {
	ImpliedPoints   float64
	ImpliedWinTotal float64
	HasPoints       bool
	HasWinTotal     bool
}

func (a *API) GetTeamOdds(competitionKey string, events []models.Event) (map[string]TeamOdds, error) {
	odds := make(map[string]TeamOdds)

	for _, event := range events {
		var marketsResponse models.GameMarketsResponse
		endpoint := fmt.Sprintf("/v0/events/%s/markets", event.EventID)

		if err := a.client.Get(endpoint, nil, &marketsResponse); err != nil {
			slog.Warn("Could not fetch game markets", "event", event.EventID, "error", err)
			continue
		}

		applyImpliedPoints(odds, event, marketsResponse.Markets)
	}

	var futuresResponse models.FuturesResponse
	endpoint := fmt.Sprintf("/v0/competitions/%s/futures", competitionKey)
	if err := a.client.Get(endpoint, nil, &futuresResponse); err != nil {
		slog.Warn("Could not fetch futures", "error", err)
		return odds, nil
	}

	for _, future := range futuresResponse.Futures {
		if !strings.Contains(strings.ToLower(future.Name), "win total") {
			continue
		}
		for _, outcome := range future.Outcomes {
			entry := odds[outcome.Team.Name]
			entry.ImpliedWinTotal = outcome.Line
			entry.HasWinTotal = true
			odds[outcome.Team.Name] = entry
		}
	}

	return odds, nil
}

// applyImpliedPoints derives each side's implied points from the game
// total and spread: total/2 - spread/2, where the spread line is from the
// team's own perspective (favorites negative).
func applyImpliedPoints(odds map[string]TeamOdds, event models.Event, markets []models.GameMarket) {
	var total float64
	var hasTotal bool
	spreads := make(map[string]float64)

	for _, market := range markets {
		name := strings.ToLower(market.Name)
		switch {
		case strings.Contains(name, "total"):
			if len(market.Outcomes) > 0 {
				total = market.Outcomes[0].Line
				hasTotal = true
			}
		case strings.Contains(name, "spread"):
			for _, outcome := range market.Outcomes {
				spreads[outcome.Team.Name] = outcome.Line
			}
		}
	}

	if !hasTotal {
		return
	}

	for _, team := range []string{event.HomeTeam.Name, event.AwayTeam.Name} {
		spread, ok := spreads[team]
		if !ok {
			continue
		}
		entry := odds[team]
		entry.ImpliedPoints = total/2 - spread/2
		entry.HasPoints = true
		odds[team] = entry
	}
}
