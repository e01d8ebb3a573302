package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"fmt"

	"sasku-server/internal/rng"
)

// deck geometry
const (
	Size     = 36
	HandSize = 9
	NumHands = 4
)

// TotalPoints is the sum of all card points in the deck
const TotalPoints = 120

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will rebuild and shuffle the deck of cards using the generator
// The same generator sequence always produces the same order
func (d *Deck) Shuffle(gen rng.Generator) {
	// we always want to shuffle from an unshuffled deck
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.ID()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Deal partitions the deck into four hands of nine cards in seat order
// Seat 0 gets the first nine cards, seat 1 the next nine, and so on
func (d *Deck) Deal() ([NumHands]Hand, error) {
	var hands [NumHands]Hand
	if len(d.Cards) != Size {
		return hands, fmt.Errorf("cannot deal %d cards, expected %d", len(d.Cards), Size)
	}

	for i := range hands {
		hand := make(Hand, HandSize)
		copy(hand, d.Cards[i*HandSize:(i+1)*HandSize])
		hands[i] = hand
	}

	return hands, nil
}

// Packs returns the shuffled deck as four fixed packs of nine cards for a draft deal
// The packs are the same split Deal uses
func (d *Deck) Packs() ([]Hand, error) {
	hands, err := d.Deal()
	if err != nil {
		return nil, err
	}

	return hands[:], nil
}
