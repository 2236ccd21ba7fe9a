// internal/game/deck.go
package game

import (
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/jason-s-yu/blackjack/internal/models"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
var ErrEmptyDeck = errors.New("deck is empty")

// DeckSize is the number of cards in a fresh deck.
const DeckSize = 52

type rankSpec struct {
	rank   string
	values []int
	icon   rune // offset into a suit's run of the Unicode playing card block
}

var (
	deckSuits = []string{models.Hearts, models.Spades, models.Diamonds, models.Clubs}

	// first code point (the ace) of each suit
	suitIconBase = map[string]rune{
		models.Spades:   0x1F0A1,
		models.Hearts:   0x1F0B1,
		models.Diamonds: 0x1F0C1,
		models.Clubs:    0x1F0D1,
	}

	deckRanks = buildRanks()
)

func buildRanks() []rankSpec {
	ranks := []rankSpec{{rank: "ace", values: []int{1, 11}, icon: 0}}
	for i := 2; i <= 10; i++ {
		ranks = append(ranks, rankSpec{rank: strconv.Itoa(i), values: []int{i}, icon: rune(i - 1)})
	}
	// the knight (offset 11) is not part of a standard deck
	ranks = append(ranks,
		rankSpec{rank: "jack", values: []int{10}, icon: 10},
		rankSpec{rank: "queen", values: []int{10}, icon: 12},
		rankSpec{rank: "king", values: []int{10}, icon: 13},
	)
	return ranks
}

// Deck is an ordered pile of cards. Draw takes from the end.
type Deck struct {
	cards []*models.Card
}

// NewDeck builds a standard 52 card deck and shuffles it with r.
// A time-seeded source is used when r is nil.
func NewDeck(r *rand.Rand) *Deck {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cards := make([]*models.Card, 0, DeckSize)
	for _, suit := range deckSuits {
		for _, rs := range deckRanks {
			icon := string(suitIconBase[suit] + rs.icon)
			cards = append(cards, models.NewCard(suit, rs.rank, rs.values, icon))
		}
	}
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// NewDeckFromCards builds a deck in the given order without shuffling.
// The last card is drawn first.
func NewDeckFromCards(cards []*models.Card) *Deck {
	c := make([]*models.Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (*models.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}
	idx := len(d.cards) - 1
	card := d.cards[idx]
	d.cards = d.cards[:idx]
	return card, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}
