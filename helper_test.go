package finbook

import (
	"fmt"
	"time"
)

// newTestStore returns a store with a fixed clock and sequential ids so
// tests are deterministic.
func newTestStore() *Store {
	s := NewStore()
	next := 0
	s.NewID = func() string {
		next++
		return fmt.Sprintf("id-%03d", next)
	}
	s.Now = func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

// checking is a shorthand creating a ready-to-use account in the store.
func checking(s *Store, name, currency string) Account {
	a, ok := s.AddAccount(Account{Name: name, Currency: currency})
	if !ok {
		panic("test account rejected: " + name)
	}
	return a
}
