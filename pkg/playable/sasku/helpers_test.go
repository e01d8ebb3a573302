package sasku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sasku-server/pkg/deck"
)

// standardHands is a complete deal
// bidding values: seat 0 is 9, seat 1 is 8, seat 2 is 8, seat 3 is 5
var standardHands = [NumSeats]string{
	"Kc,Qc,Jc,Ks,Ac,10c,9c,8c,7c",
	"Qs,Js,Kh,Qh,Ah,10h,9h,8h,6s",
	"Jh,Kd,Qd,Jd,Ad,10d,9d,8d,7h",
	"6c,As,10s,9s,8s,7s,7d,6d,6h",
}

func hand(s string) deck.Hand {
	return deck.Hand(deck.CardsFromString(s))
}

func card(s string) deck.Card {
	return deck.CardFromString(s)
}

// setupBidding returns a round in bidding with dealer 3, so seat 0 bids first
func setupBidding(hands [NumSeats]string) *Round {
	r := newRound(DefaultOptions(), 3)
	for seat, h := range hands {
		r.hands[seat] = hand(h)
	}

	r.dealOption = DealNormal
	r.phase = PhaseBidding
	r.currentPlayer = 0
	return r
}

// setupPlaying returns a round ready for the first lead by seat 0
func setupPlaying(trump deck.Suit, trumpMaker int, hands ...string) *Round {
	r := newRound(DefaultOptions(), 3)
	for seat, h := range hands {
		r.hands[seat] = hand(h)
	}

	r.dealOption = DealNormal
	r.trumpSuit = trump
	r.trumpMaker = trumpMaker
	r.startPlay()
	return r
}

// trick builds a completed trick, played by seats 0-3
func trick(s string) Trick {
	t := make(Trick, 0, NumSeats)
	for i, c := range strings.Split(s, ",") {
		t = append(t, Play{Seat: i, Card: card(c)})
	}

	return t
}

// setupScoring returns a finished round. The makers' tricks go to the trump maker and the
// defenders' tricks to the seat after it
func setupScoring(trump deck.Suit, trumpMaker int, makers, defenders []string) *Round {
	r := newRound(DefaultOptions(), 3)
	r.dealOption = DealNormal
	r.trumpSuit = trump
	r.trumpMaker = trumpMaker

	winner := trumpMaker
	if !validSeat(winner) {
		winner = 0
	}

	for _, t := range makers {
		r.tricksWon[winner] = append(r.tricksWon[winner], trick(t))
	}

	for _, t := range defenders {
		r.tricksWon[NextSeat(winner)] = append(r.tricksWon[NextSeat(winner)], trick(t))
	}

	for seat := range r.hands {
		r.hands[seat] = deck.Hand{}
	}

	r.phase = PhaseRoundEnd
	return r
}

// assertBijection checks that every card of the deck is in exactly one place
func assertBijection(t *testing.T, r *Round) {
	t.Helper()

	cards := r.AllCards()
	if r.Phase() == PhaseDealChoice {
		assert.Empty(t, cards)
		return
	}

	assert.Len(t, cards, deck.Size)
	seen := make(map[deck.Card]bool)
	for _, c := range cards {
		assert.True(t, c.Valid(), "%v is not a card", c)
		assert.False(t, seen[c], "%s seen twice", c)
		seen[c] = true
	}
}

// playTrick plays the cards in order, starting with the current player
func playTrick(t *testing.T, r *Round, cards string) *Round {
	t.Helper()

	for _, c := range strings.Split(cards, ",") {
		next, err := r.PlayCard(r.CurrentPlayer(), card(c))
		if !assert.NoError(t, err, "playing %s", c) {
			t.FailNow()
		}

		r = next
	}

	return r
}
