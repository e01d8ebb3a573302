package sasku

import (
	"fmt"

	"sasku-server/pkg/deck"
)

// NumSeats is the number of players at the table
const NumSeats = 4

// seat markers
const (
	// NoSeat means the seat is not known yet (no bidder, no trump maker, no lead player)
	NoSeat = -1
	// NoTrumpMaker means everyone passed and the round is played with diamonds as trump
	NoTrumpMaker = -2
)

// Phase is the phase of a round
type Phase int

// phase constants
const (
	PhaseDealChoice Phase = iota
	PhasePackChoice
	PhaseBidding
	PhasePictureExchange
	PhasePlaying
	PhaseRoundEnd
	PhaseGameEnd
)

var phaseNames = [...]string{
	PhaseDealChoice:      "deal_choice",
	PhasePackChoice:      "pack_choice",
	PhaseBidding:         "bidding",
	PhasePictureExchange: "picture_exchange",
	PhasePlaying:         "playing",
	PhaseRoundEnd:        "round_end",
	PhaseGameEnd:         "game_end",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}

	return phaseNames[p]
}

func parsePhase(s string) (Phase, bool) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), true
		}
	}

	return 0, false
}

// DealOption is the way the cards are dealt, chosen by the player after the dealer
type DealOption int

// deal options
const (
	// DealNone means the cards have not been dealt yet
	DealNone DealOption = iota
	// DealNormal shuffles and deals, then bidding starts
	DealNormal
	// DealBlindTrump fixes diamonds as trump before anyone sees a card ("pime ruutu")
	DealBlindTrump
	// DealDraft lets the chooser take one of four packs by its top and bottom card ("valida")
	DealDraft
)

var dealOptionNames = [...]string{
	DealNone:       "",
	DealNormal:     "normal",
	DealBlindTrump: "blind",
	DealDraft:      "draft",
}

func (d DealOption) String() string {
	if d < 0 || int(d) >= len(dealOptionNames) {
		return fmt.Sprintf("deal(%d)", int(d))
	}

	return dealOptionNames[d]
}

// ParseDealOption parses the name of a deal option
func ParseDealOption(s string) (DealOption, error) {
	for i, name := range dealOptionNames {
		if i != int(DealNone) && name == s {
			return DealOption(i), nil
		}
	}

	return DealNone, fmt.Errorf("%w: %q", ErrInvalidDealOption, s)
}

// Play is a single card played to a trick
type Play struct {
	Seat int       `json:"seat"`
	Card deck.Card `json:"card"`
}

// Trick is the ordered list of cards played to a trick
type Trick []Play

// Clone returns a copy of the trick
func (t Trick) Clone() Trick {
	if t == nil {
		return nil
	}

	t2 := make(Trick, len(t))
	copy(t2, t)
	return t2
}

// Points returns the card points in the trick
func (t Trick) Points() int {
	total := 0
	for _, p := range t {
		total += p.Card.Points()
	}

	return total
}

// CompletedTrick is the most recent trick together with the seat that won it
type CompletedTrick struct {
	Trick  Trick `json:"trick"`
	Winner int   `json:"winner"`
}

// Team returns the team of the seat. Seats 0 and 2 are team 0, seats 1 and 3 are team 1
func Team(seat int) int {
	return seat % 2
}

// Partner returns the seat across the table
func Partner(seat int) int {
	return (seat + 2) % NumSeats
}

// NextSeat returns the seat to the left
func NextSeat(seat int) int {
	return (seat + 1) % NumSeats
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < NumSeats
}

// Round is the complete state of a round within a match
// A Round is a value: every action returns a new *Round and never modifies the receiver, so
// older values stay valid for history and undo
type Round struct {
	opts Options

	phase          Phase
	hands          [NumSeats]deck.Hand
	dealer         int
	currentPlayer  int
	dealOption     DealOption
	pimeRuutuBonus bool

	// draft deal only
	packs []deck.Hand

	// bidding; a bid of 0 means the seat has not bid
	bids       [NumSeats]int
	hasPassed  [NumSeats]bool
	lastBidder int
	trumpSuit  deck.Suit
	trumpMaker int

	// playing
	currentTrick Trick
	leadPlayer   int
	tricksWon    [NumSeats][]Trick
	lastTrick    *CompletedTrick

	// scoring
	roundScores [2]int
	gameScores  [2]int
	matchWins   [2]int
	lastResult  *Result
	pokkPending bool
}

// NewMatch returns the first round of a new match, waiting for the deal choice
func NewMatch(opts Options) (*Round, error) {
	if !validSeat(opts.Dealer) {
		return nil, fmt.Errorf("dealer: %w", ErrInvalidSeat)
	}

	opts = opts.withDefaults()
	return newRound(opts, opts.Dealer), nil
}

func newRound(opts Options, dealer int) *Round {
	return &Round{
		opts:          opts,
		phase:         PhaseDealChoice,
		dealer:        dealer,
		currentPlayer: NextSeat(dealer),
		lastBidder:    NoSeat,
		trumpMaker:    NoSeat,
		leadPlayer:    NoSeat,
	}
}

// clone deep copies the round so the copy can be modified
func (r *Round) clone() *Round {
	n := *r

	for i := range r.hands {
		if r.hands[i] != nil {
			n.hands[i] = r.hands[i].Clone()
		}
	}

	if r.packs != nil {
		n.packs = make([]deck.Hand, len(r.packs))
		for i, pack := range r.packs {
			n.packs[i] = pack.Clone()
		}
	}

	n.currentTrick = r.currentTrick.Clone()
	for i := range r.tricksWon {
		n.tricksWon[i] = cloneTricks(r.tricksWon[i])
	}

	if r.lastTrick != nil {
		lt := CompletedTrick{Trick: r.lastTrick.Trick.Clone(), Winner: r.lastTrick.Winner}
		n.lastTrick = &lt
	}

	if r.lastResult != nil {
		res := *r.lastResult
		n.lastResult = &res
	}

	return &n
}

func cloneTricks(tricks []Trick) []Trick {
	if tricks == nil {
		return nil
	}

	out := make([]Trick, len(tricks))
	for i, t := range tricks {
		out[i] = t.Clone()
	}

	return out
}

// checkTurn verifies the phase and that it's the seat's turn
func (r *Round) checkTurn(seat int, phases ...Phase) error {
	if !validSeat(seat) {
		return ErrInvalidSeat
	}

	if err := r.checkPhase(phases...); err != nil {
		return err
	}

	if r.currentPlayer != seat {
		return ErrNotPlayersTurn
	}

	return nil
}

func (r *Round) checkPhase(phases ...Phase) error {
	for _, p := range phases {
		if r.phase == p {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrWrongPhase, r.phase)
}

// Options returns the options of the match
func (r *Round) Options() Options {
	return r.opts
}

// Phase returns the current phase
func (r *Round) Phase() Phase {
	return r.phase
}

// Hand returns a copy of the seat's hand
func (r *Round) Hand(seat int) deck.Hand {
	if !validSeat(seat) {
		return nil
	}

	return r.hands[seat].Clone()
}

// Dealer returns the dealer's seat
func (r *Round) Dealer() int {
	return r.dealer
}

// CurrentPlayer returns the seat whose action is expected
// During ROUND_END and GAME_END this is still set, but no seat action is accepted
func (r *Round) CurrentPlayer() int {
	return r.currentPlayer
}

// DealOption returns how the cards of this round were dealt
func (r *Round) DealOption() DealOption {
	return r.dealOption
}

// PimeRuutuBonus returns true if the round was dealt as blind trump
func (r *Round) PimeRuutuBonus() bool {
	return r.pimeRuutuBonus
}

// Bids returns the bids of every seat. Zero means no bid
func (r *Round) Bids() [NumSeats]int {
	return r.bids
}

// HasPassed returns which seats have passed
func (r *Round) HasPassed() [NumSeats]bool {
	return r.hasPassed
}

// HighBid returns the current high bid and who holds it
// If nobody has bid yet, it returns 0 and NoSeat
func (r *Round) HighBid() (amount, seat int) {
	if r.lastBidder == NoSeat {
		return 0, NoSeat
	}

	return r.bids[r.lastBidder], r.lastBidder
}

// TrumpSuit returns the trump suit, or deck.NoSuit if it has not been chosen yet
func (r *Round) TrumpSuit() deck.Suit {
	return r.trumpSuit
}

// TrumpMaker returns the seat of the trump maker, NoSeat if not decided yet, or NoTrumpMaker
// if everyone passed
func (r *Round) TrumpMaker() int {
	return r.trumpMaker
}

// HasTrumpMaker returns true if a seat made trump this round
func (r *Round) HasTrumpMaker() bool {
	return validSeat(r.trumpMaker)
}

// CurrentTrick returns a copy of the trick in progress
func (r *Round) CurrentTrick() Trick {
	return r.currentTrick.Clone()
}

// LeadPlayer returns the seat that led (or will lead) the current trick
func (r *Round) LeadPlayer() int {
	return r.leadPlayer
}

// TricksWon returns a copy of the tricks the seat has won this round
func (r *Round) TricksWon(seat int) []Trick {
	if !validSeat(seat) {
		return nil
	}

	return cloneTricks(r.tricksWon[seat])
}

// TeamTricks returns the number of tricks won by the team
func (r *Round) TeamTricks(team int) int {
	return len(r.tricksWon[team]) + len(r.tricksWon[team+2])
}

// LastTrick returns the most recently completed trick
func (r *Round) LastTrick() (CompletedTrick, bool) {
	if r.lastTrick == nil {
		return CompletedTrick{}, false
	}

	return CompletedTrick{Trick: r.lastTrick.Trick.Clone(), Winner: r.lastTrick.Winner}, true
}

// RoundScores returns the trick points of each team in this round
func (r *Round) RoundScores() [2]int {
	return r.roundScores
}

// GameScores returns the game points of each team in this match
func (r *Round) GameScores() [2]int {
	return r.gameScores
}

// MatchWins returns how many matches each team has won
func (r *Round) MatchWins() [2]int {
	return r.matchWins
}

// LastResult returns the scoring of the most recently finished round
func (r *Round) LastResult() (Result, bool) {
	if r.lastResult == nil {
		return Result{}, false
	}

	return *r.lastResult, true
}

// PokkPending returns true if the previous round ended in a pokk and is being replayed
func (r *Round) PokkPending() bool {
	return r.pokkPending
}

// WinningTeam returns the team that reached the game end threshold, or -1
func (r *Round) WinningTeam() int {
	threshold := r.opts.GameEndThreshold
	switch {
	case r.gameScores[0] >= threshold && r.gameScores[0] >= r.gameScores[1]:
		return 0
	case r.gameScores[1] >= threshold:
		return 1
	}

	return -1
}

// AllCards returns every card of the round: the hands, the packs, the tricks won and
// the trick in progress. Outside of DEAL_CHOICE this is always the full deck
func (r *Round) AllCards() []deck.Card {
	cards := make([]deck.Card, 0, deck.Size)
	for _, hand := range r.hands {
		cards = append(cards, hand...)
	}

	for _, pack := range r.packs {
		cards = append(cards, pack...)
	}

	for _, tricks := range r.tricksWon {
		for _, trick := range tricks {
			for _, p := range trick {
				cards = append(cards, p.Card)
			}
		}
	}

	for _, p := range r.currentTrick {
		cards = append(cards, p.Card)
	}

	return cards
}
