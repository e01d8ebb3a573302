package bot

import (
	"sort"

	"sasku-server/pkg/deck"
	"sasku-server/pkg/playable/sasku"
)

// Bid is a bidding decision
type Bid struct {
	Pass    bool
	Amount  int
	Reclaim bool
}

// bidding tuning
const (
	baseBidThreshold     = 7.0
	spreadHandStrength   = 8.0
	spreadHandValue      = 10
	partnerOverride      = 12.0
	partnerOverrideValue = 3
	openingStrength      = 5.0
	openingValue         = 6
	maxOpeningBid        = 8
	reclaimStrength      = 10.0
)

// cardWeight is how much a card adds to the strength of a hand
func cardWeight(c deck.Card) float64 {
	switch c.Rank {
	case deck.Ace:
		return 3
	case deck.Ten:
		return 2.5
	case deck.King:
		return 2
	case deck.Queen:
		return 1.5
	}

	return 0
}

// handStrength is the weighted count of aces, tens, kings and queens
func handStrength(h deck.Hand) float64 {
	strength := 0.0
	for _, c := range h {
		strength += cardWeight(c)
	}

	return strength
}

func suitLengths(h deck.Hand) map[deck.Suit]int {
	lengths := make(map[deck.Suit]int)
	for _, c := range h {
		if !c.IsPicture() {
			lengths[c.Suit]++
		}
	}

	return lengths
}

// concentrated is true with a plain suit of four or more, or two plain suits of three or more
func concentrated(h deck.Hand) bool {
	threes := 0
	for _, n := range suitLengths(h) {
		if n >= 4 {
			return true
		}

		if n >= 3 {
			threes++
		}
	}

	return threes >= 2
}

// DecideBid decides whether the seat bids, reclaims or passes
// The amount never exceeds the bidding value of the hand
func DecideBid(r *sasku.Round, seat int) Bid {
	pass := Bid{Pass: true}
	h := r.Hand(seat)
	value := r.BiddingValue(seat)
	strength := handStrength(h)
	high, holder := r.HighBid()

	if holder != sasku.NoSeat && sasku.Team(holder) != sasku.Team(seat) &&
		strength >= reclaimStrength && r.CanBid(seat, high, true) == nil {
		return Bid{Amount: high, Reclaim: true}
	}

	minBid := sasku.MinBid
	if high+1 > minBid {
		minBid = high + 1
	}

	if minBid > value {
		return pass
	}

	if len(suitLengths(h)) == len(deck.Suits) && strength < spreadHandStrength && value < spreadHandValue {
		return pass
	}

	if holder != sasku.NoSeat && holder == sasku.Partner(seat) {
		if strength < partnerOverride || value < high+partnerOverrideValue {
			return pass
		}
	}

	threshold := baseBidThreshold
	if seat == r.Dealer() {
		threshold--
	}

	if concentrated(h) {
		threshold--
	}

	amount := 0
	switch {
	case strength >= threshold:
		amount = minBid
	case high == 0 && value >= openingValue && strength >= openingStrength:
		amount = value - 2
		if amount > maxOpeningBid {
			amount = maxOpeningBid
		}

		if amount < minBid {
			amount = minBid
		}
	}

	if amount == 0 || r.CanBid(seat, amount, false) != nil {
		return pass
	}

	return Bid{Amount: amount}
}

// DecideTrump picks the legal trump suit with the best high cards and length
// Diamonds is always a candidate
func DecideTrump(r *sasku.Round, seat int) deck.Suit {
	return pickTrump(r.Hand(seat), r.LegalTrumps(seat))
}

// trumpScore weighs the ace, ten and king of the suit plus its plain length
// Clubs and spades get a little extra to break ties
func trumpScore(h deck.Hand, suit deck.Suit) float64 {
	score := float64(len(h.Plain(suit)))
	if h.HasCard(deck.Card{Suit: suit, Rank: deck.Ace}) {
		score += 5
	}

	if h.HasCard(deck.Card{Suit: suit, Rank: deck.Ten}) {
		score += 4
	}

	if h.HasCard(deck.Card{Suit: suit, Rank: deck.King}) {
		score += 2
	}

	switch suit {
	case deck.Clubs:
		score += 0.5
	case deck.Spades:
		score += 0.3
	}

	return score
}

func pickTrump(h deck.Hand, suits []deck.Suit) deck.Suit {
	best, bestScore := deck.Diamonds, -1.0
	for _, suit := range suits {
		if score := trumpScore(h, suit); score > bestScore {
			best, bestScore = suit, score
		}
	}

	return best
}

// DecideCard picks a legal card for the seat
// It returns sasku.ErrNoLegalCard only if the seat cannot play at all
func DecideCard(r *sasku.Round, seat int) (deck.Card, error) {
	legal := r.LegalCards(seat)
	switch len(legal) {
	case 0:
		return deck.Card{}, sasku.ErrNoLegalCard
	case 1:
		return legal[0], nil
	}

	if len(r.CurrentTrick()) == 0 {
		return lead(r.Hand(seat), legal), nil
	}

	return follow(r.CurrentTrick(), r.TrumpSuit(), seat, legal), nil
}

// lead prefers the ace of the longest suit, then the top of the strongest plain suit
func lead(h, legal deck.Hand) deck.Card {
	lengths := suitLengths(h)

	var ace *deck.Card
	for i, c := range legal {
		if c.Rank == deck.Ace && (ace == nil || lengths[c.Suit] > lengths[ace.Suit]) {
			ace = &legal[i]
		}
	}

	if ace != nil {
		return *ace
	}

	bestSuit, bestStrength := deck.NoSuit, 0.0
	for _, suit := range deck.Suits {
		cards := legal.Plain(suit)
		if len(cards) == 0 {
			continue
		}

		strength := float64(len(cards))
		if cards.HasCard(deck.Card{Suit: suit, Rank: deck.Ten}) {
			strength += 2
		}

		if cards.HasCard(deck.Card{Suit: suit, Rank: deck.Nine}) {
			strength += 0.5
		}

		if strength > bestStrength {
			bestSuit, bestStrength = suit, strength
		}
	}

	if bestSuit != deck.NoSuit {
		return strongest(legal.Plain(bestSuit))
	}

	return byValue(legal)[0]
}

// follow wins as cheaply as possible, feeds points to a partner who is winning, and
// otherwise throws the cheapest card
func follow(trick sasku.Trick, trump deck.Suit, seat int, legal deck.Hand) deck.Card {
	best, _ := sasku.TrickWinner(trick, trump)
	leadSuit := trick[0].Card.Suit

	winners := legal.Filter(func(c deck.Card) bool {
		return deck.Beats(c, best.Card, trump, leadSuit)
	})

	if len(winners) > 0 {
		return byValue(winners)[0]
	}

	sorted := byValue(legal)
	if sasku.Team(best.Seat) != sasku.Team(seat) {
		return sorted[0]
	}

	if len(trick) < sasku.NumSeats-1 {
		return sorted[len(sorted)/2]
	}

	nonRoyal := sorted.Filter(func(c deck.Card) bool {
		return c.Rank != deck.King && c.Rank != deck.Queen
	})

	if len(nonRoyal) > 0 {
		return nonRoyal[len(nonRoyal)-1]
	}

	return sorted[len(sorted)-1]
}

// byValue returns the cards cheapest first: by points, then by rank strength
func byValue(cards deck.Hand) deck.Hand {
	sorted := cards.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Points() != b.Points() {
			return a.Points() < b.Points()
		}

		if a.IsPicture() != b.IsPicture() {
			return !a.IsPicture()
		}

		return a.Rank.Strength() < b.Rank.Strength()
	})

	return sorted
}

func strongest(cards deck.Hand) deck.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank.Strength() > best.Rank.Strength() {
			best = c
		}
	}

	return best
}

// DecideDeal picks the deal option. Bots always deal normally
func DecideDeal(_ *sasku.Round, _ int) sasku.DealOption {
	return sasku.DealNormal
}

// DecidePack picks the pack whose exposed cards are strongest
func DecidePack(r *sasku.Round, _ int) int {
	best, bestStrength := 0, -1.0
	for i := 0; i < r.PackCount(); i++ {
		top, bottom, ok := r.PackPreview(i)
		if !ok {
			continue
		}

		strength := packWeight(top) + packWeight(bottom)
		if strength > bestStrength {
			best, bestStrength = i, strength
		}
	}

	return best
}

// packWeight is cardWeight plus a little for jacks
func packWeight(c deck.Card) float64 {
	if c.Rank == deck.Jack {
		return 1
	}

	return cardWeight(c)
}

// DecideExchange chooses the partner's card to take in a picture exchange
// It returns false to decline when the partner has no ace or ten to give
func DecideExchange(r *sasku.Round, seat int) (deck.Card, bool) {
	return pickExchange(r.Hand(sasku.Partner(seat)))
}

func pickExchange(partner deck.Hand) (deck.Card, bool) {
	plain := partner.Filter(func(c deck.Card) bool {
		return !c.IsPicture()
	})

	if len(plain) == 0 {
		return deck.Card{}, false
	}

	best := byValue(plain)[len(plain)-1]
	if best.Points() < deck.Ten.Points() {
		return deck.Card{}, false
	}

	return best, true
}
