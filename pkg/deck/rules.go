package deck

// IsTrumpClass returns true if the card must be treated as trump: every picture, plus the plain
// cards of the trump suit
func IsTrumpClass(card Card, trump Suit) bool {
	return card.IsPicture() || (trump != NoSuit && card.Suit == trump)
}

// Compare determines which of two cards wins in the context of a trick
// It returns > 0 if a wins, < 0 if b wins, and 0 if neither can beat the other. The last case only
// happens for two plain cards of different suits that match neither the trump nor the lead suit
func Compare(a, b Card, trump, lead Suit) int {
	aPic, bPic := a.IsPicture(), b.IsPicture()
	switch {
	case aPic && bPic:
		if a.Rank != b.Rank {
			return a.Rank.Strength() - b.Rank.Strength()
		}

		return a.Suit.Strength() - b.Suit.Strength()
	case aPic:
		return 1
	case bPic:
		return -1
	}

	if a.Suit == b.Suit {
		return a.Rank.Strength() - b.Rank.Strength()
	}

	switch {
	case trump != NoSuit && a.Suit == trump:
		return 1
	case trump != NoSuit && b.Suit == trump:
		return -1
	case a.Suit == lead:
		return 1
	case b.Suit == lead:
		return -1
	}

	return 0
}

// Beats returns true if a strictly beats b
func Beats(a, b Card, trump, lead Suit) bool {
	return Compare(a, b, trump, lead) > 0
}

// BiddingValue is the highest bid the owner of the hand may declare:
// the number of pictures plus the length of the longest plain suit
func BiddingValue(hand Hand) int {
	longest := 0
	for _, suit := range Suits {
		if n := hand.CountPlain(suit); n > longest {
			longest = n
		}
	}

	return hand.CountPictures() + longest
}
