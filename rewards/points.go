package rewards

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNonPositive indicates a zero or negative point amount.
	ErrNonPositive = errors.New("rewards: points must be positive")

	// ErrInsufficientPoints indicates a redemption larger than the balance.
	ErrInsufficientPoints = errors.New("rewards: insufficient points")
)

// Engine is the points ledger. Accounts are created on first use with a
// zero balance.
type Engine struct {
	mu       sync.Mutex
	balances map[string]int
}

// NewEngine returns an empty ledger.
func NewEngine() *Engine {
	return &Engine{balances: make(map[string]int)}
}

// AddPoints credits points to user.
func (e *Engine) AddPoints(user string, points int) error {
	if points <= 0 {
		return fmt.Errorf("%w: add %d", ErrNonPositive, points)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.balances[user] += points
	return nil
}

// Redeem debits points from user. A failed redemption leaves the balance
// unchanged.
func (e *Engine) Redeem(user string, points int) error {
	if points <= 0 {
		return fmt.Errorf("%w: redeem %d", ErrNonPositive, points)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	have := e.balances[user]
	if points > have {
		return fmt.Errorf("%w: user %s has %d, wants %d", ErrInsufficientPoints, user, have, points)
	}
	e.balances[user] = have - points
	return nil
}

// Balance returns user's points; unknown users have zero.
func (e *Engine) Balance(user string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balances[user]
}
