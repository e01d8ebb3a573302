package sasku

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sasku-server/internal/rng"
	"sasku-server/pkg/deck"
)

// randomAction applies a random legal action for the current player
func randomAction(t *testing.T, r *Round, gen *rng.Seeded) *Round {
	t.Helper()

	seat := r.CurrentPlayer()

	var next *Round
	var err error
	switch r.Phase() {
	case PhaseDealChoice:
		options := []DealOption{DealNormal, DealNormal, DealBlindTrump, DealDraft}
		next, err = r.ChooseDeal(seat, options[gen.Intn(len(options))], gen)
	case PhasePackChoice:
		next, err = r.ChoosePack(seat, gen.Intn(r.PackCount()))
	case PhaseBidding:
		if r.AwaitingTrump() {
			trumps := r.LegalTrumps(seat)
			if !assert.NotEmpty(t, trumps) {
				t.FailNow()
			}

			next, err = r.ChooseTrump(seat, trumps[gen.Intn(len(trumps))])
			break
		}

		high, _ := r.HighBid()
		switch {
		case r.CanBid(seat, high, true) == nil && gen.Intn(3) == 0:
			next, err = r.Bid(seat, high, true)
		case r.CanBid(seat, max(high+1, MinBid), false) == nil && gen.Intn(2) == 0:
			next, err = r.Bid(seat, max(high+1, MinBid), false)
		default:
			next, err = r.Pass(seat)
		}
	case PhasePictureExchange:
		plain := r.Hand(Partner(seat)).Filter(func(c deck.Card) bool { return !c.IsPicture() })
		if gen.Intn(2) == 0 {
			next, err = r.DeclineExchange(seat)
		} else {
			next, err = r.ExchangePicture(seat, plain[gen.Intn(len(plain))])
		}
	case PhasePlaying:
		legal := r.LegalCards(seat)
		if !assert.NotEmpty(t, legal, "seat %d has no legal card", seat) {
			t.FailNow()
		}

		c := legal[gen.Intn(len(legal))]
		tricks := r.TeamTricks(0) + r.TeamTricks(1)
		next, err = r.PlayCard(seat, c)
		if err == nil && next.TeamTricks(0)+next.TeamTricks(1) > tricks {
			assertTrickWinner(t, next)
		}
	case PhaseRoundEnd:
		res, ok := r.LastResult()
		assert.True(t, ok)
		assert.Equal(t, deck.TotalPoints, res.TeamPoints[0]+res.TeamPoints[1])
		assert.Equal(t, 9, res.TeamTricks[0]+res.TeamTricks[1])
		next, err = r.AdvanceRound()
	}

	if !assert.NoError(t, err, "phase %s seat %d", r.Phase(), seat) {
		t.FailNow()
	}

	return next
}

// assertTrickWinner checks no card in the last trick beats the winner's card
func assertTrickWinner(t *testing.T, r *Round) {
	t.Helper()

	last, ok := r.LastTrick()
	assert.True(t, ok)
	assert.Len(t, last.Trick, NumSeats)

	var winner deck.Card
	for _, p := range last.Trick {
		if p.Seat == last.Winner {
			winner = p.Card
		}
	}

	lead := last.Trick[0].Card.Suit
	for _, p := range last.Trick {
		assert.False(t, deck.Beats(p.Card, winner, r.TrumpSuit(), lead), "%s beats winning %s", p.Card, winner)
	}

	assert.Equal(t, last.Winner, r.CurrentPlayer())
}

func TestRound_RandomMatches(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		gen := rng.NewSeeded(seed)
		opts := Options{
			Dealer:          int(seed % NumSeats),
			PictureExchange: seed%2 == 0,
			PokkBonus:       int(seed % 3),
		}

		r, err := NewMatch(opts)
		assert.NoError(t, err)

		actions := 0
		for r.Phase() != PhaseGameEnd && actions < 20000 {
			r = randomAction(t, r, gen)
			assertBijection(t, r)
			actions++
		}

		assert.Equal(t, PhaseGameEnd, r.Phase(), "seed %d", seed)
		winner := r.WinningTeam()
		assert.True(t, winner == 0 || winner == 1)
		assert.GreaterOrEqual(t, r.GameScores()[winner], DefaultGameEndThreshold)

		next, err := r.AdvanceMatch()
		assert.NoError(t, err)
		assert.Equal(t, 1, next.MatchWins()[0]+next.MatchWins()[1])
	}
}
