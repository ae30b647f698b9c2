package models

import "time"

type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
)

type Market string

const (
	MarketPassYards  Market = "pass_yards"
	MarketPassTDs    Market = "pass_tds"
	MarketRushYards  Market = "rush_yards"
	MarketRushTDs    Market = "rush_tds"
	MarketReceptions Market = "receptions"
	MarketRecYards   Market = "rec_yards"
	MarketRecTDs     Market = "rec_tds"
)

// PropLine is one bookmaker over/under for a player statistical category.
type PropLine struct {
	PlayerID           string
	Team               string
	Market             Market
	Line               float64
	ImpliedProbability float64
}

type PlayerContext struct {
	PlayerID    string
	Position    Position
	Age         int
	GamesPlayed int
	TeamID      string
}

type TeamContext struct {
	TeamID          string
	ImpliedWinTotal float64
	ImpliedPoints   float64
	PlaysPerGame    float64
}

// ScoreStatus distinguishes a fully scored player from one flagged during
// the run. A flagged player is never silently dropped or zero-scored.
type ScoreStatus string

const (
	StatusFullyScored      ScoreStatus = "fully_scored"
	StatusInsufficientData ScoreStatus = "insufficient_data"
	StatusContextMissing   ScoreStatus = "context_missing"
)

type ScoredPlayer struct {
	PlayerID       string
	Team           string
	Position       Position
	RawPoints      float64
	InjuryFactor   float64
	TeamFactor     float64
	WeightedPoints float64
	OverallRank    int
	PositionRank   int
	VOR            float64
	ADPRank        *float64
	ADPDelta       *float64
	ADPAdjDelta    *float64
	Status         ScoreStatus
	FlagReason     string
}

// BigBoard is the full output of one pipeline run. Ranked holds players in
// overall-rank order; Flagged holds the insufficient-data bucket, reported
// alongside rather than interleaved.
type BigBoard struct {
	Ranked      []ScoredPlayer
	Flagged     []ScoredPlayer
	LeagueSize  int
	GeneratedAt time.Time
}

type ADPEntry struct {
	PlayerName     string
	NormalizedName string
	ADP            float64
}
