package scoring

import "github.com/draftboardhq/bigboard/internal/models"

// injuryWindow is the recent-games window the availability ratio is taken
// over: one full regular season.
const injuryWindow = 17.0

// AgeBreakpoint applies Multiplier to players at or past MinAge.
type AgeBreakpoint struct {
	MinAge     int
	Multiplier float64
}

// DefaultAgeCurve is the position-dependent age adjustment. The cliffs for
// RB and WR reflect how those positions decline; QB and TE stay neutral.
// These are policy numbers, kept in one table so they can be audited and
// swapped without touching the computation.
var DefaultAgeCurve = map[models.Position][]AgeBreakpoint{
	models.PositionRB: {{MinAge: 28, Multiplier: 0.95}},
	models.PositionWR: {{MinAge: 30, Multiplier: 0.95}},
}

// InjuryFactor is the injury-proxy multiplier: availability over the recent
// window, scaled by the age curve. Monotonically non-decreasing in games
// played and clamped to [0, 1] before the age adjustment.
func InjuryFactor(ctx models.PlayerContext, curve map[models.Position][]AgeBreakpoint) float64 {
	availability := float64(ctx.GamesPlayed) / injuryWindow
	if availability > 1 {
		availability = 1
	}
	if availability < 0 {
		availability = 0
	}

	multiplier := 1.0
	for _, breakpoint := range curve[ctx.Position] {
		if ctx.Age >= breakpoint.MinAge {
			multiplier = breakpoint.Multiplier
		}
	}

	return availability * multiplier
}

// TeamFactorWeights holds the sensitivity of the team-context factor to
// each normalized component. Beta is position-specific: a strong team tilts
// toward the run game late, which helps RBs and costs pass catchers.
type TeamFactorWeights struct {
	Alpha float64
	Beta  map[models.Position]float64
	Gamma float64
}

var DefaultTeamFactorWeights = TeamFactorWeights{
	Alpha: 0.03,
	Beta: map[models.Position]float64{
		models.PositionRB: 0.01,
		models.PositionQB: -0.01,
		models.PositionWR: -0.01,
		models.PositionTE: -0.01,
	},
	Gamma: 0.01,
}

// LeagueAverages are the per-run normalization baselines, computed from the
// full set of team contexts fetched that run rather than fixed constants.
type LeagueAverages struct {
	ImpliedPoints float64
	WinTotal      float64
	Pace          float64
}

func ComputeLeagueAverages(teams map[string]models.TeamContext) LeagueAverages {
	if len(teams) == 0 {
		return LeagueAverages{}
	}

	var avg LeagueAverages
	for _, team := range teams {
		avg.ImpliedPoints += team.ImpliedPoints
		avg.WinTotal += team.ImpliedWinTotal
		avg.Pace += team.PlaysPerGame
	}

	n := float64(len(teams))
	avg.ImpliedPoints /= n
	avg.WinTotal /= n
	avg.Pace /= n
	return avg
}

// TeamFactor combines implied points, win total, and pace, each relative to
// the current slate's averages, into one multiplicative factor. Clamped at
// zero so weighted points stay non-negative.
func TeamFactor(team models.TeamContext, avg LeagueAverages, position models.Position, weights TeamFactorWeights) float64 {
	pointsComponent := 1 + weights.Alpha*((team.ImpliedPoints-avg.ImpliedPoints)/7)
	winComponent := 1 + weights.Beta[position]*(team.ImpliedWinTotal-avg.WinTotal)
	paceComponent := 1 + weights.Gamma*((team.PlaysPerGame-avg.Pace)/2)

	factor := pointsComponent * winComponent * paceComponent
	if factor < 0 {
		factor = 0
	}
	return factor
}
