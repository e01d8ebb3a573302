package sasku

import (
	"fmt"

	"sasku-server/pkg/deck"
)

// Outcome is the kind of result a round ended with
type Outcome int

// outcome constants
const (
	// OutcomeUniversal means everyone passed and the team with more points scored
	OutcomeUniversal Outcome = iota
	// OutcomeUniversalTie means everyone passed and the points were split 60-60
	OutcomeUniversalTie
	// OutcomeSweep means one team won all nine tricks ("karvane")
	OutcomeSweep
	// OutcomeMade means the trump maker's team took at least 61 points
	OutcomeMade
	// OutcomeDefeated means the trump maker's team took less than 60 points
	OutcomeDefeated
	// OutcomePokk means the points were split 60-60 with a trump maker. Nobody scores and the round is replayed
	OutcomePokk
)

var outcomeNames = [...]string{
	OutcomeUniversal:    "universal",
	OutcomeUniversalTie: "universal_tie",
	OutcomeSweep:        "sweep",
	OutcomeMade:         "made",
	OutcomeDefeated:     "defeated",
	OutcomePokk:         "pokk",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("outcome(%d)", int(o))
	}

	return outcomeNames[o]
}

// MarshalText encodes the outcome as its name
func (o Outcome) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(outcomeNames) {
		return nil, fmt.Errorf("unknown outcome %d", int(o))
	}

	return []byte(outcomeNames[o]), nil
}

// UnmarshalText decodes an outcome name
func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", string(text))
}

// game point values
const (
	universalPoints    = 2
	sweepPoints        = 6
	diamondsBasePoints = 4
	otherBasePoints    = 2
	bonusPoints        = 2
	madeThreshold      = 61
	jannThreshold      = 30
	splitPoints        = deck.TotalPoints / 2
	tricksPerRound     = deck.HandSize
)

// NoTeam is the team of a result nobody scored
const NoTeam = -1

// Result is the scoring of a finished round
type Result struct {
	Outcome Outcome `json:"outcome"`
	// Team is the team that scored, or NoTeam
	Team int `json:"team"`
	// Points is the number of game points awarded to Team, including any bonus
	Points int `json:"points"`
	// TeamPoints are the card points each team took
	TeamPoints [2]int `json:"teamPoints"`
	// TeamTricks are the tricks each team took
	TeamTricks [2]int `json:"teamTricks"`
	// Jann is true if the losing side took less than 30 points
	Jann bool `json:"jann"`
	// BlindBonus is true if the blind trump bonus was added
	BlindBonus bool `json:"blindBonus"`
	// PokkBonus is the bonus carried over from a previous pokk
	PokkBonus int `json:"pokkBonus"`
}

// teamPoints returns the card points of each team's tricks
func (r *Round) teamPoints() [2]int {
	var points [2]int
	for seat, tricks := range r.tricksWon {
		for _, trick := range tricks {
			points[Team(seat)] += trick.Points()
		}
	}

	return points
}

// score determines the result of the round from the tricks won
func (r *Round) score() Result {
	res := Result{
		Team:       NoTeam,
		TeamPoints: r.teamPoints(),
		TeamTricks: [2]int{r.TeamTricks(0), r.TeamTricks(1)},
	}

	if !r.HasTrumpMaker() {
		switch {
		case res.TeamPoints[0] == res.TeamPoints[1]:
			res.Outcome = OutcomeUniversalTie
		case res.TeamPoints[0] > res.TeamPoints[1]:
			res.Outcome, res.Team, res.Points = OutcomeUniversal, 0, universalPoints
		default:
			res.Outcome, res.Team, res.Points = OutcomeUniversal, 1, universalPoints
		}

		return res
	}

	makers := Team(r.trumpMaker)
	defenders := 1 - makers

	base := otherBasePoints
	if r.trumpSuit == deck.Diamonds {
		base = diamondsBasePoints
	}

	switch {
	case res.TeamTricks[makers] == tricksPerRound:
		res.Outcome, res.Team, res.Points = OutcomeSweep, makers, sweepPoints
	case res.TeamTricks[makers] == 0:
		res.Outcome, res.Team, res.Points = OutcomeSweep, defenders, sweepPoints
	case res.TeamPoints[makers] >= madeThreshold:
		res.Outcome, res.Team, res.Points = OutcomeMade, makers, base
		if res.TeamPoints[defenders] < jannThreshold {
			res.Jann = true
			res.Points += bonusPoints
		}
	case res.TeamPoints[makers] == splitPoints:
		res.Outcome = OutcomePokk
		return res
	default:
		res.Outcome, res.Team, res.Points = OutcomeDefeated, defenders, base+bonusPoints
		if res.TeamPoints[makers] < jannThreshold {
			res.Jann = true
			res.Points += bonusPoints
		}
	}

	if r.pimeRuutuBonus {
		res.BlindBonus = true
		res.Points += bonusPoints
	}

	return res
}

// scoreRound scores the finished round into the match
// A pokk leaves the scores alone and marks the round for replay. The next team that scores
// collects Options.PokkBonus on top
func (r *Round) scoreRound() {
	res := r.score()
	r.roundScores = res.TeamPoints

	switch {
	case res.Outcome == OutcomePokk:
		r.pokkPending = true
	case res.Team != NoTeam && r.pokkPending:
		res.PokkBonus = r.opts.PokkBonus
		res.Points += res.PokkBonus
		r.pokkPending = false
	}

	if res.Team != NoTeam {
		r.gameScores[res.Team] += res.Points
	}

	r.lastResult = &res
	if r.WinningTeam() >= 0 {
		r.phase = PhaseGameEnd
	}
}
