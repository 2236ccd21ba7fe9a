// internal/console/terminal.go
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jason-s-yu/blackjack/internal/game"
)

// Farewell is printed when the player runs out of chips or input.
const Farewell = "Thank you for playing, bring more gold next time"

var _ game.Console = (*Terminal)(nil)

// Terminal is a line-oriented console: prompts are read from in, the table is written to out.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// lastHit is the seat whose hit was shown last, so its bust or blackjack
	// is folded into the hit line.
	lastHit string
}

// NewTerminal wraps in and out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// readLine prompts and returns the next trimmed line, or io.EOF when input is
// closed. Lines of any length are accepted.
func (t *Terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadBet prompts until a positive integer is entered.
func (t *Terminal) ReadBet(balance int) (int, error) {
	for {
		line, err := t.readLine(fmt.Sprintf("Please make your bet %d : ", balance))
		if err != nil {
			return 0, err
		}
		bet, err := strconv.Atoi(line)
		if err != nil || bet <= 0 {
			continue
		}
		return bet, nil
	}
}

// Decide prompts for hit or stand until one is chosen.
func (t *Terminal) Decide(seat *game.Seat) (game.Action, error) {
	for {
		line, err := t.readLine("'h'it or 's'tand : ")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "h", "hit":
			return game.ActionHit, nil
		case "s", "stand":
			return game.ActionStand, nil
		}
	}
}

// ShowBalance prints the account's chip count.
func (t *Terminal) ShowBalance(account string, balance int) {
	fmt.Fprintf(t.out, "%s has %d chips\n", account, balance)
}

// ShowError prints a rejected bet or similar recoverable problem.
func (t *Terminal) ShowError(err error) {
	fmt.Fprintln(t.out, err)
}

// ShowFarewell prints the closing message.
func (t *Terminal) ShowFarewell() {
	fmt.Fprintln(t.out, Farewell)
}

// ShowEvent renders the table after each action, followed by what happened.
func (t *Terminal) ShowEvent(ev game.RoundEvent) {
	folded := t.lastHit != "" && t.lastHit == ev.Seat &&
		(ev.Type == game.EventBust || ev.Type == game.EventBlackjack)
	t.lastHit = ""
	if folded {
		return
	}

	switch ev.Type {
	case game.EventDealHidden, game.EventHit, game.EventReveal:
		if ev.State != nil {
			t.showState(*ev.State)
		}
	}
	if ev.Type == game.EventHit {
		t.lastHit = ev.Seat
	}
	if msg := describe(ev); msg != "" {
		fmt.Fprintln(t.out, msg)
	}
}

func (t *Terminal) showState(s game.TableState) {
	fmt.Fprintf(t.out, "Dealer %s\n", renderSeat(s.Dealer))
	fmt.Fprintf(t.out, "Player %s\n", renderSeat(s.Player))
}

// renderSeat shows card icons, "?" for a hidden card, and the valid totals.
func renderSeat(s game.SeatState) string {
	out := strings.Join(s.Cards, "")
	if s.Hidden {
		out += "?"
	}
	return out + fmt.Sprintf(" %v", s.Totals)
}

// hitSuffix reports the state a hit left the seat in, if it ended the turn.
func hitSuffix(ev game.RoundEvent) string {
	if ev.State == nil {
		return ""
	}
	seat := ev.State.Player
	if ev.Seat == game.DealerName {
		seat = ev.State.Dealer
	}
	if len(seat.Totals) == 0 {
		return " and busted"
	}
	for _, total := range seat.Totals {
		if total == game.BlackjackTotal {
			return " and has blackjack"
		}
	}
	return ""
}

func describe(ev game.RoundEvent) string {
	icon := ""
	if ev.Card != nil {
		icon = ev.Card.Icon
	}
	switch ev.Type {
	case game.EventHit:
		return fmt.Sprintf("%s dealt %s%s", ev.Seat, icon, hitSuffix(ev))
	case game.EventReveal:
		return fmt.Sprintf("%s reveals %s", ev.Seat, icon)
	case game.EventStand:
		return fmt.Sprintf("%s stands", ev.Seat)
	case game.EventBust:
		return fmt.Sprintf("%s is bust", ev.Seat)
	case game.EventBlackjack:
		return fmt.Sprintf("%s has blackjack", ev.Seat)
	case game.EventTurnSkipped:
		return fmt.Sprintf("%s does not play, player is bust", ev.Seat)
	case game.EventRoundEnd:
		return fmt.Sprintf("%v wins (player %v, dealer %v)",
			ev.Payload["winner"], ev.Payload["playerScore"], ev.Payload["dealerScore"])
	}
	return ""
}
