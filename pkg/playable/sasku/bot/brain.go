package bot

import (
	"fmt"

	"sasku-server/internal/rng"
	"sasku-server/pkg/deck"
	"sasku-server/pkg/playable/sasku"
)

// MoveKind is the kind of action a move makes
type MoveKind int

// move kinds
const (
	MoveDeal MoveKind = iota
	MovePack
	MoveBid
	MovePass
	MoveTrump
	MoveExchange
	MoveDeclineExchange
	MovePlay
)

var moveNames = [...]string{
	MoveDeal:            "chooseDeal",
	MovePack:            "choosePack",
	MoveBid:             "bid",
	MovePass:            "pass",
	MoveTrump:           "chooseTrump",
	MoveExchange:        "exchangePicture",
	MoveDeclineExchange: "declineExchange",
	MovePlay:            "playCard",
}

func (k MoveKind) String() string {
	if k < 0 || int(k) >= len(moveNames) {
		return fmt.Sprintf("move(%d)", int(k))
	}

	return moveNames[k]
}

// Move represents the decision made by a bot
type Move struct {
	Kind    MoveKind
	Deal    sasku.DealOption
	Pack    int
	Amount  int
	Reclaim bool
	Trump   deck.Suit
	Card    deck.Card
}

// Brain is the interface every bot strategy implements
type Brain interface {
	// Decide returns the move the seat makes. It is only called when it's the seat's turn
	Decide(r *sasku.Round, seat int) (Move, error)
}

// Level names a bot strategy
type Level string

// bot levels
const (
	LevelPolicy Level = "policy"
	LevelRandom Level = "random"
)

// NewBrain creates a new bot brain for the level
// gen is only used by the random level; nil means rng.Crypto
func NewBrain(level Level, gen rng.Generator) (Brain, error) {
	switch level {
	case LevelPolicy, "":
		return Policy{}, nil
	case LevelRandom:
		if gen == nil {
			gen = rng.Crypto{}
		}

		return &Random{gen: gen}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}

// Policy is the default strategy built on the Decide functions
type Policy struct{}

// Decide implements Brain
func (Policy) Decide(r *sasku.Round, seat int) (Move, error) {
	switch r.Phase() {
	case sasku.PhaseDealChoice:
		return Move{Kind: MoveDeal, Deal: DecideDeal(r, seat)}, nil
	case sasku.PhasePackChoice:
		return Move{Kind: MovePack, Pack: DecidePack(r, seat)}, nil
	case sasku.PhaseBidding:
		if r.AwaitingTrump() {
			return Move{Kind: MoveTrump, Trump: DecideTrump(r, seat)}, nil
		}

		bid := DecideBid(r, seat)
		if bid.Pass {
			return Move{Kind: MovePass}, nil
		}

		return Move{Kind: MoveBid, Amount: bid.Amount, Reclaim: bid.Reclaim}, nil
	case sasku.PhasePictureExchange:
		if c, ok := DecideExchange(r, seat); ok {
			return Move{Kind: MoveExchange, Card: c}, nil
		}

		return Move{Kind: MoveDeclineExchange}, nil
	case sasku.PhasePlaying:
		c, err := DecideCard(r, seat)
		if err != nil {
			return Move{}, err
		}

		return Move{Kind: MovePlay, Card: c}, nil
	}

	return Move{}, fmt.Errorf("%w: %s", sasku.ErrWrongPhase, r.Phase())
}

// Random makes a random legal move
// It is used to stress the engine in simulations
type Random struct {
	gen rng.Generator
}

// Decide implements Brain
func (b *Random) Decide(r *sasku.Round, seat int) (Move, error) {
	switch r.Phase() {
	case sasku.PhaseDealChoice:
		options := []sasku.DealOption{sasku.DealNormal, sasku.DealBlindTrump, sasku.DealDraft}
		return Move{Kind: MoveDeal, Deal: options[b.gen.Intn(len(options))]}, nil
	case sasku.PhasePackChoice:
		return Move{Kind: MovePack, Pack: b.gen.Intn(r.PackCount())}, nil
	case sasku.PhaseBidding:
		if r.AwaitingTrump() {
			trumps := r.LegalTrumps(seat)
			return Move{Kind: MoveTrump, Trump: trumps[b.gen.Intn(len(trumps))]}, nil
		}

		high, _ := r.HighBid()
		amount := high + 1
		if amount < sasku.MinBid {
			amount = sasku.MinBid
		}

		if b.gen.Intn(2) == 0 && r.CanBid(seat, amount, false) == nil {
			return Move{Kind: MoveBid, Amount: amount}, nil
		}

		return Move{Kind: MovePass}, nil
	case sasku.PhasePictureExchange:
		return Move{Kind: MoveDeclineExchange}, nil
	case sasku.PhasePlaying:
		legal := r.LegalCards(seat)
		if len(legal) == 0 {
			return Move{}, sasku.ErrNoLegalCard
		}

		return Move{Kind: MovePlay, Card: legal[b.gen.Intn(len(legal))]}, nil
	}

	return Move{}, fmt.Errorf("%w: %s", sasku.ErrWrongPhase, r.Phase())
}

// Apply makes the move for the seat
// gen shuffles the deck for a deal move; nil means rng.Crypto
func Apply(r *sasku.Round, seat int, m Move, gen rng.Generator) (*sasku.Round, error) {
	switch m.Kind {
	case MoveDeal:
		return r.ChooseDeal(seat, m.Deal, gen)
	case MovePack:
		return r.ChoosePack(seat, m.Pack)
	case MoveBid:
		return r.Bid(seat, m.Amount, m.Reclaim)
	case MovePass:
		return r.Pass(seat)
	case MoveTrump:
		return r.ChooseTrump(seat, m.Trump)
	case MoveExchange:
		return r.ExchangePicture(seat, m.Card)
	case MoveDeclineExchange:
		return r.DeclineExchange(seat)
	case MovePlay:
		return r.PlayCard(seat, m.Card)
	}

	return nil, fmt.Errorf("unknown move: %s", m.Kind)
}
