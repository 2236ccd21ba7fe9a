// internal/bank/bank.go
package bank

import (
	"errors"
	"fmt"
)

// ErrAccountExists indicates an account is already open under the given name.
var ErrAccountExists = errors.New("account already exists")

// ErrAccountNotFound indicates no account is open under the given name.
var ErrAccountNotFound = errors.New("account not found")

// ErrInsufficientFunds indicates a withdrawal larger than the account balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidAmount indicates an amount the operation cannot accept, e.g. a negative deposit.
var ErrInvalidAmount = errors.New("invalid amount")

// Bank is an in-memory ledger of chip balances keyed by account name.
// It is owned by a single session and is not safe for concurrent use.
type Bank struct {
	accounts map[string]int
}

// New returns an empty ledger.
func New() *Bank {
	return &Bank{accounts: make(map[string]int)}
}

// Open creates an account with the given starting balance.
func (b *Bank) Open(name string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("open %q: %w", name, ErrInvalidAmount)
	}
	if _, ok := b.accounts[name]; ok {
		return fmt.Errorf("open %q: %w", name, ErrAccountExists)
	}
	b.accounts[name] = amount
	return nil
}

// Withdraw removes amount from the account and returns the new balance.
// The balance is left unchanged on error.
func (b *Bank) Withdraw(name string, amount int) (int, error) {
	bal, ok := b.accounts[name]
	if !ok {
		return 0, fmt.Errorf("withdraw from %q: %w", name, ErrAccountNotFound)
	}
	if amount < 0 {
		return bal, fmt.Errorf("withdraw from %q: %w", name, ErrInvalidAmount)
	}
	if bal < amount {
		return bal, fmt.Errorf("withdraw %d from %q (balance %d): %w", amount, name, bal, ErrInsufficientFunds)
	}
	b.accounts[name] = bal - amount
	return b.accounts[name], nil
}

// Deposit adds amount to the account and returns the new balance.
func (b *Bank) Deposit(name string, amount int) (int, error) {
	bal, ok := b.accounts[name]
	if !ok {
		return 0, fmt.Errorf("deposit to %q: %w", name, ErrAccountNotFound)
	}
	if amount < 0 {
		return bal, fmt.Errorf("deposit to %q: %w", name, ErrInvalidAmount)
	}
	b.accounts[name] = bal + amount
	return b.accounts[name], nil
}

// Balance returns the account's current balance.
func (b *Bank) Balance(name string) (int, error) {
	bal, ok := b.accounts[name]
	if !ok {
		return 0, fmt.Errorf("balance of %q: %w", name, ErrAccountNotFound)
	}
	return bal, nil
}
