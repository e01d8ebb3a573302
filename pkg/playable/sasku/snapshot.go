package sasku

import (
	"encoding/json"
	"fmt"

	"sasku-server/pkg/deck"
)

// SnapshotVersion is the version written by Snapshot
// Version 1 snapshots predate match wins and the blind trump bonus
const SnapshotVersion = 2

// Snapshot is the persisted form of a Round
// Cards are written as their codes ("Kc", "10h"). A nil seat means the seat is not known
type Snapshot struct {
	Version        int             `json:"version"`
	Options        *Options        `json:"options,omitempty"`
	Phase          string          `json:"phase"`
	Dealer         *int            `json:"dealer"`
	CurrentPlayer  *int            `json:"currentPlayer"`
	DealOption     string          `json:"dealOption"`
	PimeRuutuBonus bool            `json:"pimeRuutuBonus"`
	Hands          []deck.Hand     `json:"hands"`
	Packs          []deck.Hand     `json:"packs,omitempty"`
	Bids           []int           `json:"bids"`
	HasPassed      []bool          `json:"hasPassed"`
	LastBidder     *int            `json:"lastBidder"`
	TrumpSuit      deck.Suit       `json:"trumpSuit"`
	TrumpMaker     *int            `json:"trumpMaker"`
	CurrentTrick   Trick           `json:"currentTrick"`
	LeadPlayer     *int            `json:"leadPlayer"`
	TricksWon      [][]Trick       `json:"tricksWon"`
	LastTrick      *CompletedTrick `json:"lastTrick,omitempty"`
	RoundScores    []int           `json:"roundScores"`
	GameScores     []int           `json:"gameScores"`
	MatchWins      []int           `json:"matchWins,omitempty"`
	LastResult     *Result         `json:"lastResult,omitempty"`
	PokkPending    bool            `json:"pokkPending"`
}

func seatPtr(seat int) *int {
	if seat == NoSeat {
		return nil
	}

	return &seat
}

func seatValue(seat *int) int {
	if seat == nil {
		return NoSeat
	}

	return *seat
}

// Snapshot returns the persisted form of the round
func (r *Round) Snapshot() *Snapshot {
	opts := r.opts
	s := &Snapshot{
		Version:        SnapshotVersion,
		Options:        &opts,
		Phase:          r.phase.String(),
		Dealer:         seatPtr(r.dealer),
		CurrentPlayer:  seatPtr(r.currentPlayer),
		DealOption:     r.dealOption.String(),
		PimeRuutuBonus: r.pimeRuutuBonus,
		Hands:          make([]deck.Hand, NumSeats),
		Bids:           append([]int(nil), r.bids[:]...),
		HasPassed:      append([]bool(nil), r.hasPassed[:]...),
		LastBidder:     seatPtr(r.lastBidder),
		TrumpSuit:      r.trumpSuit,
		TrumpMaker:     seatPtr(r.trumpMaker),
		CurrentTrick:   r.currentTrick.Clone(),
		LeadPlayer:     seatPtr(r.leadPlayer),
		TricksWon:      make([][]Trick, NumSeats),
		RoundScores:    append([]int(nil), r.roundScores[:]...),
		GameScores:     append([]int(nil), r.gameScores[:]...),
		MatchWins:      append([]int(nil), r.matchWins[:]...),
		PokkPending:    r.pokkPending,
	}

	for seat := 0; seat < NumSeats; seat++ {
		s.Hands[seat] = r.hands[seat].Clone()
		s.TricksWon[seat] = cloneTricks(r.tricksWon[seat])
	}

	for _, pack := range r.packs {
		s.Packs = append(s.Packs, pack.Clone())
	}

	if lt, ok := r.LastTrick(); ok {
		s.LastTrick = &lt
	}

	if res, ok := r.LastResult(); ok {
		s.LastResult = &res
	}

	return s
}

// MarshalJSON encodes the round as its snapshot
func (r *Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}

// DecodeSnapshot parses a JSON snapshot
// Anything that does not decode, such as an unknown card code, is reported as ErrCorruptSnapshot
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptSnapshot, err)
	}

	return &s, nil
}

func corrupt(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorruptSnapshot, fmt.Sprintf(format, a...))
}

// Restore rebuilds a round from a snapshot
// Fields an older version did not write get their defaults. Anything else that is missing or
// inconsistent returns ErrCorruptSnapshot
func Restore(s *Snapshot) (*Round, error) {
	if s == nil {
		return nil, corrupt("nil snapshot")
	}

	if s.Version > SnapshotVersion {
		return nil, corrupt("unknown version %d", s.Version)
	}

	phase, ok := parsePhase(s.Phase)
	if !ok {
		return nil, corrupt("unknown phase %q", s.Phase)
	}

	if s.Dealer == nil || !validSeat(*s.Dealer) {
		return nil, corrupt("invalid dealer")
	}

	if s.CurrentPlayer == nil || !validSeat(*s.CurrentPlayer) {
		return nil, corrupt("invalid current player")
	}

	r := &Round{
		phase:          phase,
		dealer:         *s.Dealer,
		currentPlayer:  *s.CurrentPlayer,
		pimeRuutuBonus: s.PimeRuutuBonus,
		lastBidder:     seatValue(s.LastBidder),
		trumpSuit:      s.TrumpSuit,
		trumpMaker:     seatValue(s.TrumpMaker),
		leadPlayer:     seatValue(s.LeadPlayer),
		currentTrick:   s.CurrentTrick.Clone(),
		pokkPending:    s.PokkPending,
	}

	if s.Options != nil {
		r.opts = s.Options.withDefaults()
	} else {
		r.opts = DefaultOptions()
		r.opts.Dealer = r.dealer
	}

	if s.DealOption != "" {
		option, err := ParseDealOption(s.DealOption)
		if err != nil {
			return nil, corrupt("%s", err)
		}

		r.dealOption = option
	}

	for name, seat := range map[string]int{"last bidder": r.lastBidder, "lead player": r.leadPlayer} {
		if seat != NoSeat && !validSeat(seat) {
			return nil, corrupt("invalid %s %d", name, seat)
		}
	}

	if r.trumpMaker != NoSeat && r.trumpMaker != NoTrumpMaker && !validSeat(r.trumpMaker) {
		return nil, corrupt("invalid trump maker %d", r.trumpMaker)
	}

	if err := restoreSeats(r, s); err != nil {
		return nil, err
	}

	if err := restoreScores(r, s); err != nil {
		return nil, err
	}

	if s.LastTrick != nil {
		if !validSeat(s.LastTrick.Winner) {
			return nil, corrupt("invalid last trick winner %d", s.LastTrick.Winner)
		}

		if err := checkSeats("last trick", s.LastTrick.Trick); err != nil {
			return nil, err
		}

		lt := CompletedTrick{Trick: s.LastTrick.Trick.Clone(), Winner: s.LastTrick.Winner}
		r.lastTrick = &lt
	}

	if s.LastResult != nil {
		res := *s.LastResult
		r.lastResult = &res
	}

	if err := checkCards(r); err != nil {
		return nil, err
	}

	return r, nil
}

func restoreSeats(r *Round, s *Snapshot) error {
	if len(s.Hands) != NumSeats {
		return corrupt("expected %d hands, got %d", NumSeats, len(s.Hands))
	}

	if len(s.Bids) != NumSeats || len(s.HasPassed) != NumSeats {
		return corrupt("bids and passes must have %d seats", NumSeats)
	}

	if len(s.TricksWon) != 0 && len(s.TricksWon) != NumSeats {
		return corrupt("expected %d trick piles, got %d", NumSeats, len(s.TricksWon))
	}

	for seat := 0; seat < NumSeats; seat++ {
		r.hands[seat] = s.Hands[seat].Clone()

		if s.Bids[seat] != 0 && s.Bids[seat] < MinBid {
			return corrupt("invalid bid %d", s.Bids[seat])
		}

		r.bids[seat] = s.Bids[seat]
		r.hasPassed[seat] = s.HasPassed[seat]

		if len(s.TricksWon) > 0 {
			for _, trick := range s.TricksWon[seat] {
				if len(trick) != NumSeats {
					return corrupt("completed trick with %d cards", len(trick))
				}
			}

			r.tricksWon[seat] = cloneTricks(s.TricksWon[seat])
		}
	}

	if len(s.Packs) != 0 && len(s.Packs) != deck.NumHands {
		return corrupt("expected %d packs, got %d", deck.NumHands, len(s.Packs))
	}

	for _, pack := range s.Packs {
		r.packs = append(r.packs, pack.Clone())
	}

	if len(r.currentTrick) >= NumSeats {
		return corrupt("trick in progress has %d cards", len(r.currentTrick))
	}

	return nil
}

func restoreScores(r *Round, s *Snapshot) error {
	if len(s.RoundScores) != 2 || len(s.GameScores) != 2 {
		return corrupt("scores must have two teams")
	}

	switch len(s.MatchWins) {
	case 0:
		// older snapshots did not keep match wins
	case 2:
	default:
		return corrupt("match wins must have two teams")
	}

	for name, scores := range map[string][]int{"round score": s.RoundScores, "game score": s.GameScores, "match wins": s.MatchWins} {
		for _, n := range scores {
			if n < 0 {
				return corrupt("negative %s %d", name, n)
			}
		}
	}

	copy(r.roundScores[:], s.RoundScores)
	copy(r.gameScores[:], s.GameScores)
	copy(r.matchWins[:], s.MatchWins)
	return nil
}

// checkCards verifies that every card of the deck is in exactly one place
func checkCards(r *Round) error {
	cards := r.AllCards()
	if r.phase == PhaseDealChoice {
		if len(cards) != 0 {
			return corrupt("%d cards before the deal", len(cards))
		}

		return nil
	}

	if len(cards) != deck.Size {
		return corrupt("expected %d cards, got %d", deck.Size, len(cards))
	}

	seen := make(map[deck.Card]bool, deck.Size)
	for _, c := range cards {
		if !c.Valid() {
			return corrupt("invalid card")
		}

		if seen[c] {
			return corrupt("duplicate card %s", c.ID())
		}

		seen[c] = true
	}

	if err := checkSeats("trick in progress", r.currentTrick); err != nil {
		return err
	}

	for seat := range r.tricksWon {
		for _, trick := range r.tricksWon[seat] {
			if err := checkSeats("completed trick", trick); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkSeats verifies that each seat plays at most once to the trick
func checkSeats(name string, trick Trick) error {
	var played [NumSeats]bool
	for _, p := range trick {
		if !validSeat(p.Seat) {
			return corrupt("invalid seat %d in %s", p.Seat, name)
		}

		if played[p.Seat] {
			return corrupt("seat %d played twice to %s", p.Seat, name)
		}

		played[p.Seat] = true
	}

	return nil
}
