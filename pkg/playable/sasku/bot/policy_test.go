package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sasku-server/internal/rng"
	"sasku-server/pkg/deck"
	"sasku-server/pkg/playable/sasku"
)

func hand(s string) deck.Hand {
	return deck.Hand(deck.CardsFromString(s))
}

func TestHandStrength(t *testing.T) {
	assert.Equal(t, 0.0, handStrength(nil))
	assert.Equal(t, 9.0, handStrength(hand("Ac,10c,Kd,Qs")))
	assert.Equal(t, 0.0, handStrength(hand("Jc,9c,8d,6h")))
}

func TestConcentrated(t *testing.T) {
	a := assert.New(t)
	a.True(concentrated(hand("Ac,10c,9c,8c,7d")))
	a.True(concentrated(hand("Ac,10c,9c,8d,7d,6d")))
	// pictures don't count towards a suit
	a.False(concentrated(hand("Kc,Qc,Jc,8c,7d,6d")))
	a.False(concentrated(hand("Ac,10s,9h,8d")))
}

func TestByValue(t *testing.T) {
	sorted := byValue(hand("Ac,Kc,6c,Jd,9c,10h"))
	assert.Equal(t, hand("6c,9c,Jd,Kc,10h,Ac"), sorted)
}

func TestDecideBid_NeverAboveValue(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		r, _ := sasku.NewMatch(sasku.Options{Dealer: 3})
		r, err := r.ChooseDeal(0, sasku.DealNormal, rng.NewSeeded(seed))
		if !assert.NoError(t, err) {
			return
		}

		for r.Phase() == sasku.PhaseBidding && !r.AwaitingTrump() {
			seat := r.CurrentPlayer()
			bid := DecideBid(r, seat)
			if bid.Pass {
				r, err = r.Pass(seat)
			} else {
				assert.GreaterOrEqual(t, bid.Amount, sasku.MinBid)
				assert.LessOrEqual(t, bid.Amount, r.BiddingValue(seat), "seed %d seat %d", seed, seat)
				r, err = r.Bid(seat, bid.Amount, bid.Reclaim)
			}

			if !assert.NoError(t, err) {
				return
			}
		}

		if r.AwaitingTrump() {
			seat := r.CurrentPlayer()
			assert.Contains(t, r.LegalTrumps(seat), DecideTrump(r, seat))
		}
	}
}

func TestDecidePack(t *testing.T) {
	r, _ := sasku.NewMatch(sasku.Options{Dealer: 3})
	r, err := r.ChooseDeal(0, sasku.DealDraft, rng.NewSeeded(3))
	assert.NoError(t, err)

	best := DecidePack(r, 0)
	top, bottom, ok := r.PackPreview(best)
	assert.True(t, ok)
	for i := 0; i < r.PackCount(); i++ {
		t2, b2, _ := r.PackPreview(i)
		assert.GreaterOrEqual(t, packWeight(top)+packWeight(bottom), packWeight(t2)+packWeight(b2))
	}
}

func TestDecideDeal(t *testing.T) {
	r, _ := sasku.NewMatch(sasku.Options{})
	assert.Equal(t, sasku.DealNormal, DecideDeal(r, 1))
}

// trick builds a trick led by seat from a comma separated list of cards
func trick(leader int, s string) sasku.Trick {
	cards := deck.CardsFromString(s)
	t := make(sasku.Trick, len(cards))
	for i, c := range cards {
		t[i] = sasku.Play{Seat: (leader + i) % sasku.NumSeats, Card: c}
	}

	return t
}

func TestLead(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want string
	}{
		{"ace of the longest suit", "Ah,6h,Ac,9c,8c,Kd", "Ac"},
		{"single ace", "Ad,9c,8c,7c", "Ad"},
		{"top of the suit with a ten", "7s,10s,9h,8h,6h,Kd", "10s"},
		{"top of the longest suit", "7s,9h,8h,6h", "9h"},
		{"pictures only", "Kd,Qc", "Qc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hand(tt.hand)
			assert.Equal(t, deck.CardFromString(tt.want), lead(h, h))
		})
	}
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name  string
		trick sasku.Trick
		seat  int
		legal string
		want  string
	}{
		{"cheapest winner", trick(0, "9c"), 1, "6c,Ac,10c", "10c"},
		{"cheapest trump winner", trick(0, "Ac"), 1, "Ah,6h,7d", "6h"},
		{"opponent winning", trick(0, "Ac"), 1, "10c,6c,9c", "6c"},
		{"partner winning, not last", trick(0, "Ac,6c"), 2, "10c,7c,9c", "9c"},
		{"partner winning, last", trick(1, "6c,Kc,7c"), 0, "Qd,Ad,10h", "Ad"},
		{"partner winning, last, pictures only", trick(1, "6c,Kc,7c"), 0, "Ks,Qd", "Ks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := follow(tt.trick, deck.Hearts, tt.seat, hand(tt.legal))
			assert.Equal(t, deck.CardFromString(tt.want), got)
		})
	}
}

func TestPickTrump(t *testing.T) {
	all := deck.Suits[:]
	tests := []struct {
		name  string
		hand  string
		suits []deck.Suit
		want  deck.Suit
	}{
		{"ten and length", "Ah,6h,10s,9s,8s", all, deck.Spades},
		{"ace over length", "Ad,7h,8h,9h", all, deck.Diamonds},
		{"king counts", "Kh,6d", []deck.Suit{deck.Hearts, deck.Diamonds}, deck.Hearts},
		{"clubs over spades", "7c,7s", all, deck.Clubs},
		{"spades over hearts", "7s,7h", []deck.Suit{deck.Spades, deck.Hearts, deck.Diamonds}, deck.Spades},
		{"only diamonds allowed", "Ac,10c", []deck.Suit{deck.Diamonds}, deck.Diamonds},
		{"no candidates", "Ac", nil, deck.Diamonds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickTrump(hand(tt.hand), tt.suits))
		})
	}
}

func TestTrumpScore(t *testing.T) {
	h := hand("Ac,10c,Kc,6c,Ah")
	assert.Equal(t, 14.5, trumpScore(h, deck.Clubs))
	assert.Equal(t, 6.0, trumpScore(h, deck.Hearts))
	assert.Equal(t, 0.3, trumpScore(h, deck.Spades))
}

func TestPickExchange(t *testing.T) {
	tests := []struct {
		name    string
		partner string
		want    string
		ok      bool
	}{
		{"ace", "Kc,Ah,10s,6d", "Ah", true},
		{"ten", "Kc,10s,6d", "10s", true},
		{"nothing worth taking", "Kc,9s,6d", "", false},
		{"pictures only", "Kc,Qd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := pickExchange(hand(tt.partner))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, deck.CardFromString(tt.want), c)
			}
		})
	}
}
