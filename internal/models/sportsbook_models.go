package models

type CompetitionsResponse []Competition

type Competition struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type EventsResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	EventID  string    `json:"eventID"`
	HomeTeam EventTeam `json:"homeTeam"`
	AwayTeam EventTeam `json:"awayTeam"`
}

type EventTeam struct {
	Name string `json:"name"`
}

type PropsResponse struct {
	Props []Prop `json:"props"`
}

type Prop struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Outcomes []PropOutcome `json:"outcomes"`
}

type PropOutcome struct {
	Player      PropPlayer `json:"player"`
	Team        EventTeam  `json:"team"`
	Line        float64    `json:"line"`
	ImpliedProb float64    `json:"impliedProbability"`
}

type PropPlayer struct {
	Name string `json:"name"`
}

type GameMarketsResponse struct {
	Markets []GameMarket `json:"markets"`
}

type GameMarket struct {
	Name     string        `json:"name"`
	Outcomes []GameOutcome `json:"outcomes"`
}

type GameOutcome struct {
	Team EventTeam `json:"team"`
	Line float64   `json:"line"`
}

type FuturesResponse struct {
	Futures []Future `json:"futures"`
}

type Future struct {
	Name     string          `json:"name"`
	Outcomes []FutureOutcome `json:"outcomes"`
}

type FutureOutcome struct {
	Team EventTeam `json:"team"`
	Line float64   `json:"line"`
}
