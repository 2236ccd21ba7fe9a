// internal/game/session.go
package game

import (
	"errors"

	"github.com/jason-s-yu/blackjack/internal/bank"
	"github.com/sirupsen/logrus"
)

// Console is the interactive surface a session plays through.
type Console interface {
	Decider

	// ReadBet blocks until a positive bet is entered.
	ReadBet(balance int) (int, error)
	ShowBalance(account string, balance int)
	ShowEvent(ev RoundEvent)
	ShowError(err error)
}

// Session plays rounds against one bank account until its chips run out.
type Session struct {
	Bank      *bank.Bank
	Account   string
	Console   Console
	Publisher ActionPublisher
	Logger    *logrus.Logger

	// NewDeck supplies the deck for each round. Defaults to a freshly shuffled deck.
	NewDeck func() *Deck

	Rounds int
}

// NewSession builds a session over an already opened account.
func NewSession(b *bank.Bank, account string, console Console, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Session{
		Bank:    b,
		Account: account,
		Console: console,
		Logger:  logger,
		NewDeck: func() *Deck { return NewDeck(nil) },
	}
}

// Run plays rounds until the balance is exhausted, then returns nil.
// Errors from the console (e.g. closed input) or the deck are returned as-is.
func (s *Session) Run() error {
	for {
		balance, err := s.Bank.Balance(s.Account)
		if err != nil {
			return err
		}
		s.Console.ShowBalance(s.Account, balance)
		if balance <= 0 {
			s.Logger.WithFields(logrus.Fields{
				"account": s.Account,
				"rounds":  s.Rounds,
			}).Info("funds exhausted, ending session")
			return nil
		}
		if _, err := s.PlayRound(); err != nil {
			return err
		}
	}
}

// PlayRound takes a bet, deals, plays both turns and settles the pot.
func (s *Session) PlayRound() (Outcome, error) {
	t := NewTable(s.NewDeck(), s.Console)
	t.BroadcastFn = s.Console.ShowEvent
	t.Publisher = s.Publisher
	t.Logger = s.Logger
	t.Start()

	if err := s.takeBet(t); err != nil {
		return Outcome{}, err
	}
	if err := t.Deal(); err != nil {
		return Outcome{}, err
	}
	if _, err := t.PlayerTurn(); err != nil {
		return Outcome{}, err
	}
	if _, err := t.DealerTurn(); err != nil {
		return Outcome{}, err
	}

	out, err := t.Settle(s.Bank, s.Account)
	if err != nil {
		return out, err
	}
	s.Rounds++
	s.Logger.WithFields(logrus.Fields{
		"round":   out.RoundID,
		"winner":  out.Winner,
		"player":  out.PlayerScore,
		"dealer":  out.DealerScore,
		"pot":     out.Pot,
		"balance": out.Balance,
	}).Info("round settled")
	return out, nil
}

// takeBet prompts until a bet the account can cover is placed.
func (s *Session) takeBet(t *Table) error {
	for {
		balance, err := s.Bank.Balance(s.Account)
		if err != nil {
			return err
		}
		amount, err := s.Console.ReadBet(balance)
		if err != nil {
			return err
		}
		err = t.PlaceBet(s.Bank, s.Account, amount)
		if err == nil {
			return nil
		}
		if errors.Is(err, bank.ErrInsufficientFunds) || errors.Is(err, bank.ErrInvalidAmount) {
			s.Console.ShowError(err)
			continue
		}
		return err
	}
}
