package sasku

import (
	"sasku-server/pkg/deck"
)

// winningIndex folds deck.Compare over the trick, in the context of the trick's lead suit
func winningIndex(trick Trick, trump deck.Suit) int {
	if len(trick) == 0 {
		return -1
	}

	lead := trick[0].Card.Suit
	best := 0
	for i := 1; i < len(trick); i++ {
		if deck.Beats(trick[i].Card, trick[best].Card, trump, lead) {
			best = i
		}
	}

	return best
}

// TrickWinner returns the play that wins the trick so far
func TrickWinner(trick Trick, trump deck.Suit) (Play, bool) {
	i := winningIndex(trick, trump)
	if i < 0 {
		return Play{}, false
	}

	return trick[i], true
}

// CurrentWinner returns the play currently winning the trick in progress
func (r *Round) CurrentWinner() (Play, bool) {
	return TrickWinner(r.currentTrick, r.trumpSuit)
}

// mustBeat applies the obligation to play trump, and to beat the best card with trump when possible
// candidates are the trump-class cards of the player; it returns nil if card satisfies the obligation
func mustBeat(candidates deck.Hand, card, best deck.Card, trump, lead deck.Suit) error {
	if len(candidates) == 0 {
		return nil
	}

	if !deck.IsTrumpClass(card, trump) {
		return ErrPlayTrumpClass
	}

	if deck.Beats(card, best, trump, lead) {
		return nil
	}

	for _, c := range candidates {
		if deck.Beats(c, best, trump, lead) {
			return ErrPlayToBeat
		}
	}

	return nil
}

// CanPlay returns nil if the seat can play the card now
func (r *Round) CanPlay(seat int, card deck.Card) error {
	if err := r.checkTurn(seat, PhasePlaying); err != nil {
		return err
	}

	hand := r.hands[seat]
	if !hand.HasCard(card) {
		return ErrCardNotInHand
	}

	if len(r.currentTrick) == 0 {
		return nil
	}

	trump := r.trumpSuit
	lead := r.currentTrick[0].Card
	best, _ := r.CurrentWinner()
	trumpClass := hand.Filter(func(c deck.Card) bool {
		return deck.IsTrumpClass(c, trump)
	})

	if deck.IsTrumpClass(lead, trump) {
		return mustBeat(trumpClass, card, best.Card, trump, lead.Suit)
	}

	if hand.CountPlain(lead.Suit) > 0 {
		if card.IsPicture() || card.Suit != lead.Suit {
			return ErrPlayOnSuit
		}

		return nil
	}

	return mustBeat(trumpClass, card, best.Card, trump, lead.Suit)
}

// LegalCards returns the cards the seat can play now, in hand order
func (r *Round) LegalCards(seat int) deck.Hand {
	if !validSeat(seat) {
		return deck.Hand{}
	}

	return r.hands[seat].Filter(func(c deck.Card) bool {
		return r.CanPlay(seat, c) == nil
	})
}

// PlayCard plays the card for the seat
// When the fourth card is played, the trick goes to the winner, who leads the next trick. After the
// ninth trick the round is scored
func (r *Round) PlayCard(seat int, card deck.Card) (*Round, error) {
	if err := r.CanPlay(seat, card); err != nil {
		return nil, err
	}

	n := r.clone()
	n.hands[seat], _ = n.hands[seat].Without(card)
	n.currentTrick = append(n.currentTrick, Play{Seat: seat, Card: card})

	if len(n.currentTrick) < NumSeats {
		n.currentPlayer = NextSeat(seat)
		return n, nil
	}

	winner := n.currentTrick[winningIndex(n.currentTrick, n.trumpSuit)].Seat
	n.tricksWon[winner] = append(n.tricksWon[winner], n.currentTrick)
	n.lastTrick = &CompletedTrick{Trick: n.currentTrick.Clone(), Winner: winner}
	n.currentTrick = nil
	n.leadPlayer = winner
	n.currentPlayer = winner

	if len(n.hands[winner]) == 0 {
		n.phase = PhaseRoundEnd
		n.scoreRound()
	}

	return n, nil
}

// PlayFallback plays the first legal card of the seat
// This is the recovery path when an automated player fails to produce a card
func (r *Round) PlayFallback(seat int) (*Round, deck.Card, error) {
	legal := r.LegalCards(seat)
	if len(legal) == 0 {
		if err := r.checkTurn(seat, PhasePlaying); err != nil {
			return nil, deck.Card{}, err
		}

		return nil, deck.Card{}, ErrNoLegalCard
	}

	n, err := r.PlayCard(seat, legal[0])
	if err != nil {
		return nil, deck.Card{}, err
	}

	return n, legal[0], nil
}
