package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*TestChecker)(nil)

type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

// TestChecker is a Checker backed by a map, for tests and local runs without redis.
type TestChecker struct {
	LoggedSessions map[string]bool
}

func NewTestChecker() *TestChecker {
	return &TestChecker{
		LoggedSessions: map[string]bool{},
	}
}

func (c *TestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	return c.LoggedSessions[token], nil
}
