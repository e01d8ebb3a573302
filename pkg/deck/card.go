package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidCard is returned when a card code cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

// suit constants
// NoSuit is the zero value and means "not chosen yet"
const (
	NoSuit Suit = iota
	Clubs
	Spades
	Hearts
	Diamonds
)

// Suits lists every suit from strongest to weakest
var Suits = [...]Suit{Clubs, Spades, Hearts, Diamonds}

// suitStrength only breaks ties between two pictures of equal rank
var suitStrength = [...]int{
	Clubs:    4,
	Spades:   3,
	Hearts:   2,
	Diamonds: 1,
}

// Valid returns true if the suit is one of the four real suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Diamonds
}

// Strength returns the fixed tie-break strength of the suit
func (s Suit) Strength() int {
	if !s.Valid() {
		return 0
	}

	return suitStrength[s]
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	default:
		return ""
	}
}

// Symbol returns the suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Hearts:
		return "♡"
	case Diamonds:
		return "♢"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Suit) UnmarshalText(text []byte) error {
	suit, err := ParseSuit(string(text))
	if err != nil {
		return err
	}

	*s = suit
	return nil
}

// ParseSuit parses the long suit name ("clubs") or the suit letter ("c")
// An empty string parses to NoSuit
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "":
		return NoSuit, nil
	case "clubs", "c":
		return Clubs, nil
	case "spades", "s":
		return Spades, nil
	case "hearts", "h":
		return Hearts, nil
	case "diamonds", "d":
		return Diamonds, nil
	}

	return NoSuit, fmt.Errorf("unknown suit: %q", s)
}

// Rank represents a card rank
type Rank int

// rank constants
const (
	Six Rank = iota + 1
	Seven
	Eight
	Nine
	Ten
	Ace
	Jack
	Queen
	King
)

// Ranks lists every rank from strongest to weakest
var Ranks = [...]Rank{King, Queen, Jack, Ace, Ten, Nine, Eight, Seven, Six}

var rankStrength = [...]int{
	King:  9,
	Queen: 8,
	Jack:  7,
	Ace:   6,
	Ten:   5,
	Nine:  4,
	Eight: 3,
	Seven: 2,
	Six:   1,
}

var rankPoints = [...]int{
	King:  4,
	Queen: 3,
	Jack:  2,
	Ace:   11,
	Ten:   10,
	Nine:  0,
	Eight: 0,
	Seven: 0,
	Six:   0,
}

var rankCodes = [...]string{
	King:  "K",
	Queen: "Q",
	Jack:  "J",
	Ace:   "A",
	Ten:   "10",
	Nine:  "9",
	Eight: "8",
	Seven: "7",
	Six:   "6",
}

// Valid returns true if the rank is one of the nine ranks of the deck
func (r Rank) Valid() bool {
	return r >= Six && r <= King
}

// Strength returns the rank strength (K > Q > J > A > 10 > 9 > 8 > 7 > 6)
func (r Rank) Strength() int {
	if !r.Valid() {
		return 0
	}

	return rankStrength[r]
}

// Points returns how many trick points the rank is worth
func (r Rank) Points() int {
	if !r.Valid() {
		return 0
	}

	return rankPoints[r]
}

// IsPicture returns true for kings, queens and jacks
func (r Rank) IsPicture() bool {
	return r == King || r == Queen || r == Jack
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}

	return rankCodes[r]
}

// Card is an individual playing card
// Cards are values; two cards are equal iff they have the same suit and rank
type Card struct {
	Suit Suit
	Rank Rank
}

// IsPicture returns true if the card is a king, queen or jack
// Pictures are always trump, regardless of the suit printed on them
func (c Card) IsPicture() bool {
	return c.Rank.IsPicture()
}

// Points returns the trick points of the card
func (c Card) Points() int {
	return c.Rank.Points()
}

// ID returns a stable identifier for the card, e.g. "Kc" or "10h"
func (c Card) ID() string {
	return CardToString(c)
}

// Valid returns true if both suit and rank are valid
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// MarshalText implements encoding.TextMarshaler. Cards are encoded as their ID
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidCard
	}

	return []byte(CardToString(c)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

var cardRx = regexp.MustCompile(`(?i)^(K|Q|J|A|10|[6-9])([cdhs])\z`)

// ParseCard parses a card in the format of <rank><suit>, where rank is one of K, Q, J, A, 10, 9, 8, 7, 6
// and suit is one of [cshd]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank Rank
	for r, code := range rankCodes {
		if code != "" && strings.EqualFold(code, match[1]) {
			rank = Rank(r)
		}
	}

	suit, err := ParseSuit(match[2])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// CardFromString returns a Card from the string. It panics if the string is not a card
// This is meant for tests and fixtures; use ParseCard for untrusted input
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return card
}

// CardsFromString will return a slice of cards from a comma separated list
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (King of Clubs) to a string (Kc)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Spades:
		suit = "s"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	}

	return card.Rank.String() + suit
}

// CardsToString will convert a slice of cards to a string in the format of Kc,10h,6d,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
