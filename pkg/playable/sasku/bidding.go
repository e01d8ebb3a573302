package sasku

import (
	"fmt"

	"sasku-server/pkg/deck"
)

// BiddingValue returns the highest bid the seat may declare
func (r *Round) BiddingValue(seat int) int {
	if !validSeat(seat) {
		return 0
	}

	return deck.BiddingValue(r.hands[seat])
}

// AwaitingTrump returns true if bidding is over and the trump maker still has to choose trump
func (r *Round) AwaitingTrump() bool {
	return r.phase == PhaseBidding && validSeat(r.trumpMaker) && r.trumpSuit == deck.NoSuit
}

// passCount returns how many seats have passed
func (r *Round) passCount() int {
	n := 0
	for _, passed := range r.hasPassed {
		if passed {
			n++
		}
	}

	return n
}

// CanBid returns nil if the seat can bid the amount
// When reclaim is true, the seat re-declares the current high bid ("omale"). This is only open to a
// seat that earlier bid less than the current high bid
func (r *Round) CanBid(seat, amount int, reclaim bool) error {
	if err := r.checkTurn(seat, PhaseBidding); err != nil {
		return err
	}

	if r.AwaitingTrump() {
		return fmt.Errorf("%w: waiting for trump", ErrWrongPhase)
	}

	if r.hasPassed[seat] {
		return ErrAlreadyPassed
	}

	if amount < MinBid {
		return ErrBidTooLow
	}

	if amount > r.BiddingValue(seat) {
		return ErrBidAboveValue
	}

	high, holder := r.HighBid()
	if reclaim {
		if holder == NoSeat || holder == seat || r.bids[seat] == 0 || r.bids[seat] >= high {
			return ErrCannotReclaim
		}

		if amount != high {
			return ErrReclaimAmount
		}

		return nil
	}

	if amount <= high {
		return ErrBidNotHigher
	}

	return nil
}

// Bid places a bid for the seat
// A reclaim makes the seat the high bidder at the same amount and reopens bidding to every seat
func (r *Round) Bid(seat, amount int, reclaim bool) (*Round, error) {
	if err := r.CanBid(seat, amount, reclaim); err != nil {
		return nil, err
	}

	n := r.clone()
	n.bids[seat] = amount
	n.lastBidder = seat
	if reclaim {
		n.hasPassed = [NumSeats]bool{}
	}

	n.afterBiddingAction(seat)
	return n, nil
}

// Pass takes the seat out of the bidding
func (r *Round) Pass(seat int) (*Round, error) {
	if err := r.checkTurn(seat, PhaseBidding); err != nil {
		return nil, err
	}

	if r.AwaitingTrump() {
		return nil, fmt.Errorf("%w: waiting for trump", ErrWrongPhase)
	}

	if r.hasPassed[seat] {
		return nil, ErrAlreadyPassed
	}

	n := r.clone()
	n.hasPassed[seat] = true
	n.afterBiddingAction(seat)
	return n, nil
}

// afterBiddingAction ends the bidding or hands the turn to the next seat still in it
func (r *Round) afterBiddingAction(seat int) {
	switch r.passCount() {
	case NumSeats:
		// nobody made trump, diamonds are played "over the village"
		r.trumpMaker = NoTrumpMaker
		r.trumpSuit = deck.Diamonds
		r.startPlay()
		return
	case NumSeats - 1:
		remaining := r.nextActive(seat)
		r.currentPlayer = remaining
		if r.bids[remaining] > 0 {
			r.trumpMaker = remaining
		}
		return
	}

	r.currentPlayer = r.nextActive(seat)
}

// nextActive returns the next seat after seat that has not passed
func (r *Round) nextActive(seat int) int {
	next := NextSeat(seat)
	for i := 0; i < NumSeats; i++ {
		if !r.hasPassed[next] {
			return next
		}

		next = NextSeat(next)
	}

	return NoSeat
}
