package sasku

import (
	"fmt"

	"sasku-server/internal/rng"
	"sasku-server/pkg/deck"
)

// ChooseDeal deals the cards in the way the seat after the dealer chose
// gen is the only source of randomness in a round; nil means rng.Crypto
func (r *Round) ChooseDeal(seat int, option DealOption, gen rng.Generator) (*Round, error) {
	if err := r.checkTurn(seat, PhaseDealChoice); err != nil {
		return nil, err
	}

	if option != DealNormal && option != DealBlindTrump && option != DealDraft {
		return nil, ErrInvalidDealOption
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	d := deck.New()
	d.Shuffle(gen)
	n := r.clone()
	n.dealOption = option

	if option == DealDraft {
		packs, err := d.Packs()
		if err != nil {
			return nil, err
		}

		n.packs = packs
		n.phase = PhasePackChoice
		n.currentPlayer = seat
		return n, nil
	}

	hands, err := d.Deal()
	if err != nil {
		return nil, err
	}

	n.hands = hands
	if option == DealBlindTrump {
		n.trumpSuit = deck.Diamonds
		n.trumpMaker = seat
		n.pimeRuutuBonus = true
		n.startPlay()
		return n, nil
	}

	n.phase = PhaseBidding
	n.currentPlayer = NextSeat(n.dealer)

	return n, nil
}

// PackCount returns the number of packs on offer during PACK_CHOICE
func (r *Round) PackCount() int {
	return len(r.packs)
}

// PackPreview returns the exposed top and bottom card of the pack
// This is all the chooser may see of a pack
func (r *Round) PackPreview(index int) (top, bottom deck.Card, ok bool) {
	if r.phase != PhasePackChoice || index < 0 || index >= len(r.packs) {
		return deck.Card{}, deck.Card{}, false
	}

	pack := r.packs[index]
	return pack[0], pack[len(pack)-1], true
}

// ChoosePack gives the chosen pack to the chooser; the remaining packs go to the other seats in
// turn order
func (r *Round) ChoosePack(seat int, index int) (*Round, error) {
	if err := r.checkTurn(seat, PhasePackChoice); err != nil {
		return nil, err
	}

	if index < 0 || index >= len(r.packs) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPack, index)
	}

	n := r.clone()
	n.hands[seat] = n.packs[index]

	next := NextSeat(seat)
	for i, pack := range n.packs {
		if i == index {
			continue
		}

		n.hands[next] = pack
		next = NextSeat(next)
	}

	n.packs = nil
	n.phase = PhaseBidding
	n.currentPlayer = NextSeat(n.dealer)
	return n, nil
}

// startPlay moves the round to PLAYING with the seat after the dealer leading
func (r *Round) startPlay() {
	r.phase = PhasePlaying
	r.leadPlayer = NextSeat(r.dealer)
	r.currentPlayer = r.leadPlayer
	r.currentTrick = nil
}
