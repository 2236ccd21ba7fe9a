// internal/console/terminal_test.go
package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBetRepromptsInvalidInput(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("abc\n0\n-3\n\n 20 \n"), &out)

	bet, err := term.ReadBet(100)
	require.NoError(t, err)
	assert.Equal(t, 20, bet)
	assert.Equal(t, 5, strings.Count(out.String(), "Please make your bet 100 : "))
}

func TestReadBetRepromptsOverlongLine(t *testing.T) {
	var out bytes.Buffer
	junk := strings.Repeat("x", 70*1024)
	term := NewTerminal(strings.NewReader(junk+"\n20\n"), &out)

	bet, err := term.ReadBet(100)
	require.NoError(t, err)
	assert.Equal(t, 20, bet)
	assert.Equal(t, 2, strings.Count(out.String(), "Please make your bet 100 : "))
}

func TestReadBetLastLineWithoutNewline(t *testing.T) {
	term := NewTerminal(strings.NewReader("15"), io.Discard)

	bet, err := term.ReadBet(100)
	require.NoError(t, err)
	assert.Equal(t, 15, bet)
}

func TestReadBetEOF(t *testing.T) {
	term := NewTerminal(strings.NewReader("nope\n"), io.Discard)

	_, err := term.ReadBet(100)
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecide(t *testing.T) {
	term := NewTerminal(strings.NewReader("x\nH\nstand\ns\nhit\n"), io.Discard)
	seat := game.NewSeat(game.PlayerRole(term))

	for _, want := range []game.Action{game.ActionHit, game.ActionStand, game.ActionStand, game.ActionHit} {
		got, err := term.Decide(seat)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := term.Decide(seat)
	assert.ErrorIs(t, err, io.EOF)
}

func TestShowEventRendersTable(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	term.ShowEvent(game.RoundEvent{
		Type:    game.EventHit,
		RoundID: uuid.New(),
		Seat:    game.PlayerName,
		Card:    &game.EventCard{ID: uuid.New(), Icon: "🂵"},
		State: &game.TableState{
			Dealer: game.SeatState{Cards: []string{"🂺"}, Hidden: true, Totals: []int{10}},
			Player: game.SeatState{Cards: []string{"🂺", "🂸", "🂵"}, Totals: []int{}},
		},
	})
	term.ShowEvent(game.RoundEvent{Type: game.EventBust, Seat: game.PlayerName})

	got := out.String()
	assert.Contains(t, got, "Dealer 🂺? [10]\n")
	assert.Contains(t, got, "Player 🂺🂸🂵 []\n")
	assert.Contains(t, got, "player dealt 🂵 and busted\n")
	assert.NotContains(t, got, "player is bust")
}

func TestShowEventFoldsBlackjackIntoHit(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	term.ShowEvent(game.RoundEvent{
		Type: game.EventHit,
		Seat: game.DealerName,
		Card: &game.EventCard{ID: uuid.New(), Icon: "🂡"},
		State: &game.TableState{
			Dealer: game.SeatState{Cards: []string{"🂺", "🂡"}, Totals: []int{11, 21}},
			Player: game.SeatState{Cards: []string{"🂺", "🂸"}, Totals: []int{18}},
		},
	})
	term.ShowEvent(game.RoundEvent{Type: game.EventBlackjack, Seat: game.DealerName})
	term.ShowEvent(game.RoundEvent{Type: game.EventBlackjack, Seat: game.PlayerName})

	got := out.String()
	assert.Contains(t, got, "dealer dealt 🂡 and has blackjack\n")
	assert.NotContains(t, got, "dealer has blackjack")
	assert.Contains(t, got, "player has blackjack\n", "a natural is still announced")
}

func TestShowEventPlainHit(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	term.ShowEvent(game.RoundEvent{
		Type: game.EventHit,
		Seat: game.PlayerName,
		Card: &game.EventCard{ID: uuid.New(), Icon: "🂢"},
		State: &game.TableState{
			Player: game.SeatState{Cards: []string{"🂺", "🂢"}, Totals: []int{12}},
		},
	})
	term.ShowEvent(game.RoundEvent{Type: game.EventStand, Seat: game.PlayerName})

	got := out.String()
	assert.Contains(t, got, "player dealt 🂢\n")
	assert.Contains(t, got, "player stands\n")
}

func TestShowEventQuietEvents(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	term.ShowEvent(game.RoundEvent{Type: game.EventRoundStart})
	term.ShowEvent(game.RoundEvent{Type: game.EventDeal, Seat: game.PlayerName})
	assert.Empty(t, out.String())
}

func TestBalanceAndFarewell(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	term.ShowBalance("player", 100)
	term.ShowFarewell()
	assert.Equal(t, "player has 100 chips\n"+Farewell+"\n", out.String())
}
