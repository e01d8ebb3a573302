package deck

import "sort"

// Hand represents a collection of cards
// The order of a hand carries no meaning for the rules
type Hand []Card

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Without returns a copy of the hand with the card removed
// The second return value is false if the card was not in the hand
func (h Hand) Without(card Card) (Hand, bool) {
	newHand := make(Hand, 0, len(h))
	found := false
	for _, c := range h {
		if !found && c == card {
			found = true
			continue
		}

		newHand = append(newHand, c)
	}

	return newHand, found
}

// CountPictures returns the number of pictures in the hand
func (h Hand) CountPictures() int {
	n := 0
	for _, c := range h {
		if c.IsPicture() {
			n++
		}
	}

	return n
}

// Plain returns the non-picture cards of the suit
func (h Hand) Plain(suit Suit) Hand {
	cards := make(Hand, 0)
	for _, c := range h {
		if !c.IsPicture() && c.Suit == suit {
			cards = append(cards, c)
		}
	}

	return cards
}

// CountPlain returns the number of non-picture cards of the suit
func (h Hand) CountPlain(suit Suit) int {
	return len(h.Plain(suit))
}

// Points returns the sum of card points in the hand
func (h Hand) Points() int {
	total := 0
	for _, c := range h {
		total += c.Points()
	}

	return total
}

// Filter returns the cards for which keep returns true
func (h Hand) Filter(keep func(Card) bool) Hand {
	cards := make(Hand, 0, len(h))
	for _, c := range h {
		if keep(c) {
			cards = append(cards, c)
		}
	}

	return cards
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// SortForDisplay returns a sorted copy of the hand: pictures first (rank, then suit), then the
// plain cards of the trump suit, then the remaining cards grouped by suit
// Pass NoSuit if the trump is not known yet. This order is for display only
func SortForDisplay(h Hand, trump Suit) Hand {
	sorted := h.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsPicture() != b.IsPicture() {
			return a.IsPicture()
		}

		if a.IsPicture() {
			if a.Rank != b.Rank {
				return a.Rank.Strength() > b.Rank.Strength()
			}

			return a.Suit.Strength() > b.Suit.Strength()
		}

		if trump != NoSuit {
			aTrump, bTrump := a.Suit == trump, b.Suit == trump
			if aTrump != bTrump {
				return aTrump
			}
		}

		if a.Suit != b.Suit {
			return a.Suit.Strength() > b.Suit.Strength()
		}

		return a.Rank.Strength() > b.Rank.Strength()
	})

	return sorted
}
