package sasku

import (
	"sasku-server/pkg/deck"
)

// CanChooseTrump returns nil if the seat may choose the suit as trump
// Diamonds are always allowed. Any other suit needs at least (bid - pictures) plain cards of that suit
func (r *Round) CanChooseTrump(seat int, suit deck.Suit) error {
	if err := r.checkTurn(seat, PhaseBidding); err != nil {
		return err
	}

	if !r.AwaitingTrump() {
		return ErrWrongPhase
	}

	if seat != r.trumpMaker {
		return ErrNotTrumpMaker
	}

	if !suit.Valid() {
		return ErrInvalidSuit
	}

	if suit == deck.Diamonds {
		return nil
	}

	hand := r.hands[seat]
	if hand.CountPlain(suit) < r.bids[seat]-hand.CountPictures() {
		return ErrTrumpNotAllowed
	}

	return nil
}

// LegalTrumps returns every suit the seat may choose, strongest suit first
func (r *Round) LegalTrumps(seat int) []deck.Suit {
	suits := make([]deck.Suit, 0, len(deck.Suits))
	for _, suit := range deck.Suits {
		if r.CanChooseTrump(seat, suit) == nil {
			suits = append(suits, suit)
		}
	}

	return suits
}

// ChooseTrump sets the trump suit and starts play
// With Options.PictureExchange, a trump maker holding a single picture is first offered the exchange
func (r *Round) ChooseTrump(seat int, suit deck.Suit) (*Round, error) {
	if err := r.CanChooseTrump(seat, suit); err != nil {
		return nil, err
	}

	n := r.clone()
	n.trumpSuit = suit
	if n.opts.PictureExchange && n.canExchangePicture() {
		n.phase = PhasePictureExchange
		n.currentPlayer = n.trumpMaker
		return n, nil
	}

	n.startPlay()
	return n, nil
}

// canExchangePicture returns true if the trump maker has exactly one picture and the partner has
// at least one plain card to give back
func (r *Round) canExchangePicture() bool {
	if !validSeat(r.trumpMaker) {
		return false
	}

	partnerHand := r.hands[Partner(r.trumpMaker)]
	return r.hands[r.trumpMaker].CountPictures() == 1 && partnerHand.CountPictures() < len(partnerHand)
}

// ExchangePicture gives the trump maker's only picture to the partner in exchange for the named
// plain card from the partner's hand
func (r *Round) ExchangePicture(seat int, card deck.Card) (*Round, error) {
	if err := r.checkTurn(seat, PhasePictureExchange); err != nil {
		return nil, err
	}

	partner := Partner(seat)
	if card.IsPicture() || !r.hands[partner].HasCard(card) {
		return nil, ErrExchangeCard
	}

	var picture deck.Card
	for _, c := range r.hands[seat] {
		if c.IsPicture() {
			picture = c
		}
	}

	n := r.clone()
	n.hands[seat], _ = n.hands[seat].Without(picture)
	n.hands[seat] = append(n.hands[seat], card)
	n.hands[partner], _ = n.hands[partner].Without(card)
	n.hands[partner] = append(n.hands[partner], picture)
	n.startPlay()
	return n, nil
}

// DeclineExchange keeps the hands as they are and starts play
func (r *Round) DeclineExchange(seat int) (*Round, error) {
	if err := r.checkTurn(seat, PhasePictureExchange); err != nil {
		return nil, err
	}

	n := r.clone()
	n.startPlay()
	return n, nil
}
