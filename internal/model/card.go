package model

import (
	"fmt"
	"sort"
)

// Suit and Rank values match the strings the server puts on the wire.
type Suit string

const (
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
)

// Suits in the server's canonical order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) Known() bool {
	switch s {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}
	return false
}

func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks ascending; this order is ratings-significant, not just cosmetic.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankRatings = func() map[Rank]int {
	ratings := map[Rank]int{}
	for i, rank := range Ranks {
		ratings[rank] = i
	}
	return ratings
}()

func (r Rank) Known() bool {
	_, ok := rankRatings[r]
	return ok
}

// CompareRanks orders two ranks ascending, ace high.
func CompareRanks(l Rank, r Rank) int {
	return rankRatings[l] - rankRatings[r]
}

// DeckSize is the standard single deck the server deals from.
const DeckSize = 52

// Card is an immutable value; equality is structural. The wire field for
// the rank is "Number".
type Card struct {
	Suit   Suit
	Number Rank
}

func (card Card) Key() string {
	return fmt.Sprintf("%s-%s", card.Suit, card.Number)
}

func (card Card) String() string {
	return fmt.Sprintf("%s of %s", card.Number, card.Suit)
}

// GroupBySuit splits a hand into per-suit groups, suits in alphabetical
// order and cards ascending within each suit. This is the display order
// for the local player's hand.
func GroupBySuit(cards []Card) [][]Card {
	bySuit := map[Suit][]Card{}
	for _, card := range cards {
		bySuit[card.Suit] = append(bySuit[card.Suit], card)
	}
	suits := make([]Suit, 0, len(bySuit))
	for suit := range bySuit {
		suits = append(suits, suit)
	}
	sort.Slice(suits, func(i, j int) bool { return suits[i] < suits[j] })
	groups := make([][]Card, 0, len(suits))
	for _, suit := range suits {
		group := bySuit[suit]
		sort.Slice(group, func(i, j int) bool {
			return CompareRanks(group[i].Number, group[j].Number) < 0
		})
		groups = append(groups, group)
	}
	return groups
}

// MaxCardsPerPlayer is the largest legal hand size for a player count.
func MaxCardsPerPlayer(playerCount int) int {
	if playerCount < 1 {
		return 0
	}
	return DeckSize / playerCount
}
