package sasku

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"sasku-server/internal/rng"
	"sasku-server/pkg/deck"
	"sasku-server/pkg/snapshot"
)

func roundTrip(t *testing.T, r *Round) *Round {
	t.Helper()

	data, err := json.Marshal(r)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	s, err := DecodeSnapshot(data)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	restored, err := Restore(s)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	again, err := json.Marshal(restored)
	assert.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
	return restored
}

func TestRound_Snapshot_RoundTrip(t *testing.T) {
	a := assert.New(t)

	r, _ := NewMatch(Options{Dealer: 3, PokkBonus: 2})
	restored := roundTrip(t, r)
	a.Equal(PhaseDealChoice, restored.Phase())
	a.Equal(2, restored.Options().PokkBonus)

	draft, _ := r.ChooseDeal(0, DealDraft, rng.NewSeeded(11))
	restored = roundTrip(t, draft)
	a.Equal(4, restored.PackCount())

	r = setupBidding(standardHands)
	r, _ = r.Bid(0, 7, false)
	r, _ = r.Bid(1, 8, false)
	r, _ = r.Pass(2)
	r, _ = r.Pass(3)
	r, _ = r.Pass(0)
	r, _ = r.ChooseTrump(1, deck.Hearts)
	r = playTrick(t, r, "7c,Ah,Jd,6c")
	r = playTrick(t, r, "Jh")

	restored = roundTrip(t, r)
	a.Equal(PhasePlaying, restored.Phase())
	a.Equal(deck.Hearts, restored.TrumpSuit())
	a.Equal(1, restored.TrumpMaker())
	a.Equal(r.Hand(1), restored.Hand(1))
	a.Equal(r.CurrentTrick(), restored.CurrentTrick())
	a.Equal(r.TricksWon(2), restored.TricksWon(2))
	a.Equal(r.LegalCards(3), restored.LegalCards(3))
	assertBijection(t, restored)

	last, ok := restored.LastTrick()
	a.True(ok)
	a.Equal(2, last.Winner)

	snapshot.ValidateSnapshot(t, r.Snapshot(), 0)
}

func TestRound_Snapshot_Universal(t *testing.T) {
	a := assert.New(t)

	r := setupBidding(standardHands)
	for seat := 0; seat < NumSeats; seat++ {
		r, _ = r.Pass(seat)
	}

	s := r.Snapshot()
	a.NotNil(s.TrumpMaker)
	a.Equal(NoTrumpMaker, *s.TrumpMaker)
	a.Nil(s.LastBidder)

	restored := roundTrip(t, r)
	a.Equal(NoTrumpMaker, restored.TrumpMaker())
}

func TestRestore_Legacy(t *testing.T) {
	a := assert.New(t)

	r := setupScoring(deck.Hearts, 1, madeMakers, madeDefenders)
	r.pimeRuutuBonus = true
	r.scoreRound()

	data, err := json.Marshal(r)
	a.NoError(err)

	// a version 1 snapshot has no version, match wins, blind trump flag or options
	var fields map[string]interface{}
	a.NoError(json.Unmarshal(data, &fields))
	delete(fields, "version")
	delete(fields, "matchWins")
	delete(fields, "pimeRuutuBonus")
	delete(fields, "options")
	legacy, _ := json.Marshal(fields)

	s, err := DecodeSnapshot(legacy)
	a.NoError(err)
	restored, err := Restore(s)
	a.NoError(err)
	a.Equal([2]int{}, restored.MatchWins())
	a.False(restored.PimeRuutuBonus())
	a.Equal(DefaultGameEndThreshold, restored.Options().GameEndThreshold)
	a.Equal(3, restored.Options().Dealer)
	a.Equal(r.GameScores(), restored.GameScores())
	a.Equal(PhaseRoundEnd, restored.Phase())
}

func TestRestore_Corrupt(t *testing.T) {
	a := assert.New(t)

	r := setupPlaying(deck.Hearts, 1, standardHands[:]...)
	valid := r.Snapshot()
	_, err := Restore(valid)
	a.NoError(err)

	// wonTrick moves the first card of each hand into a trick won by seat 0
	wonTrick := func(s *Snapshot, seats [NumSeats]int) {
		t := make(Trick, 0, NumSeats)
		for i, seat := range seats {
			t = append(t, Play{Seat: seat, Card: s.Hands[i][0]})
			s.Hands[i] = s.Hands[i][1:]
		}

		s.TricksWon = [][]Trick{{t}, nil, nil, nil}
	}

	moved := r.Snapshot()
	wonTrick(moved, [NumSeats]int{1, 2, 3, 0})
	_, err = Restore(moved)
	a.NoError(err)

	tests := map[string]func(s *Snapshot){
		"future version": func(s *Snapshot) { s.Version = SnapshotVersion + 1 },
		"bad phase":      func(s *Snapshot) { s.Phase = "dancing" },
		"no dealer":      func(s *Snapshot) { s.Dealer = nil },
		"bad player": func(s *Snapshot) {
			seat := 4
			s.CurrentPlayer = &seat
		},
		"bad deal option": func(s *Snapshot) { s.DealOption = "shuffled" },
		"missing hands":   func(s *Snapshot) { s.Hands = s.Hands[:3] },
		"missing bids":    func(s *Snapshot) { s.Bids = nil },
		"missing scores":  func(s *Snapshot) { s.GameScores = nil },
		"bad match wins":  func(s *Snapshot) { s.MatchWins = []int{1} },
		"low bid":         func(s *Snapshot) { s.Bids = []int{3, 0, 0, 0} },
		"lost card":       func(s *Snapshot) { s.Hands[0] = s.Hands[0][1:] },
		"duplicate card": func(s *Snapshot) {
			s.Hands[0] = append(s.Hands[0][1:], s.Hands[1][0])
		},
		"bad trump maker": func(s *Snapshot) {
			seat := 7
			s.TrumpMaker = &seat
		},
		"full trick in progress": func(s *Snapshot) {
			s.CurrentTrick = trick("6c,7c,8c,9c")
		},
		"short completed trick": func(s *Snapshot) {
			s.TricksWon = [][]Trick{{{{Seat: 0, Card: card("6c")}}}, nil, nil, nil}
		},
		"bad seat in completed trick": func(s *Snapshot) {
			wonTrick(s, [NumSeats]int{0, 1, 2, 9})
		},
		"seat twice in completed trick": func(s *Snapshot) {
			wonTrick(s, [NumSeats]int{0, 1, 1, 3})
		},
		"bad last trick winner": func(s *Snapshot) {
			s.LastTrick = &CompletedTrick{Trick: trick("6c,7c,8c,9c"), Winner: 5}
		},
		"bad seat in last trick": func(s *Snapshot) {
			s.LastTrick = &CompletedTrick{Trick: Trick{{Seat: -1, Card: card("6c")}}, Winner: 0}
		},
		"seat twice in trick in progress": func(s *Snapshot) {
			s.CurrentTrick = Trick{{Seat: 0, Card: s.Hands[0][0]}, {Seat: 0, Card: s.Hands[0][1]}}
			s.Hands[0] = s.Hands[0][2:]
		},
		"negative game score":  func(s *Snapshot) { s.GameScores = []int{-1, 0} },
		"negative round score": func(s *Snapshot) { s.RoundScores = []int{0, -30} },
		"negative match wins":  func(s *Snapshot) { s.MatchWins = []int{0, -2} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := r.Snapshot()
			mutate(s)
			restored, err := Restore(s)
			assert.Nil(t, restored)
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
		})
	}

	_, err = Restore(nil)
	a.ErrorIs(err, ErrCorruptSnapshot)
}

func TestDecodeSnapshot(t *testing.T) {
	a := assert.New(t)

	_, err := DecodeSnapshot([]byte(`{"hands":[["Xx"]]}`))
	a.ErrorIs(err, ErrCorruptSnapshot)

	_, err = DecodeSnapshot([]byte(`{"trumpSuit":"stars"}`))
	a.ErrorIs(err, ErrCorruptSnapshot)

	_, err = DecodeSnapshot([]byte(`not json`))
	a.ErrorIs(err, ErrCorruptSnapshot)

	s, err := DecodeSnapshot([]byte(`{"phase":"bidding"}`))
	a.NoError(err)
	_, err = Restore(s)
	a.ErrorIs(err, ErrCorruptSnapshot)
}
