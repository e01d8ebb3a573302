package sasku

// AdvanceRound starts the next round of the match
// The deal moves one seat to the left, except after a pokk, when the same dealer deals the
// replay. Game scores and match wins carry over
func (r *Round) AdvanceRound() (*Round, error) {
	switch r.phase {
	case PhaseRoundEnd:
	case PhaseGameEnd:
		return nil, ErrGameIsOver
	default:
		return nil, ErrRoundNotOver
	}

	dealer := NextSeat(r.dealer)
	if r.lastResult != nil && r.lastResult.Outcome == OutcomePokk {
		dealer = r.dealer
	}

	n := newRound(r.opts, dealer)
	n.gameScores = r.gameScores
	n.matchWins = r.matchWins
	n.pokkPending = r.pokkPending
	if r.lastResult != nil {
		res := *r.lastResult
		n.lastResult = &res
	}

	return n, nil
}

// AdvanceMatch starts a new match after the game has ended
// The winning team is credited with a match win, the scores reset, and the deal moves one seat
// to the left
func (r *Round) AdvanceMatch() (*Round, error) {
	if r.phase != PhaseGameEnd {
		return nil, ErrGameNotOver
	}

	n := newRound(r.opts, NextSeat(r.dealer))
	n.matchWins = r.matchWins
	if winner := r.WinningTeam(); winner >= 0 {
		n.matchWins[winner]++
	}

	return n, nil
}
