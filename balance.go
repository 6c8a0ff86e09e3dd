package finbook

import (
	"github.com/shopspring/decimal"
)

// signedEffect returns the transaction's effect on the given account's
// balance: positive for money flowing in, negative for money flowing out,
// zero when the transaction does not touch the account.
func signedEffect(t Transaction, accountID string) decimal.Decimal {
	var effect decimal.Decimal
	if t.ToAccountID == accountID {
		effect = effect.Add(t.Amount)
	}
	if t.FromAccountID == accountID {
		effect = effect.Sub(t.Amount)
	}
	return effect
}

// latestRecord returns the balance record governing the account on asOf: the
// one with the greatest date not after asOf. Among same-date records the
// most recently created wins, then the greatest id, so a re-recorded
// checkpoint supersedes the earlier one.
func latestRecord(accountID string, records []BalanceRecord, asOf Date) (BalanceRecord, bool) {
	var best BalanceRecord
	found := false
	for _, r := range records {
		if r.AccountID != accountID || r.Date.After(asOf) {
			continue
		}
		if !found || r.Date.After(best.Date) ||
			(r.Date == best.Date && (r.CreatedAt.After(best.CreatedAt) ||
				(r.CreatedAt.Equal(best.CreatedAt) && r.ID > best.ID))) {
			best, found = r, true
		}
	}
	return best, found
}

// BalanceAsOf computes an account's balance on a date.
//
// A balance record is an authoritative checkpoint: the latest one dated on
// or before asOf overrides everything earlier, and only transactions dated
// strictly after it are replayed on top. A transaction dated exactly on the
// record date is considered already reflected in the recorded amount.
// Without any record the balance is the initial balance plus every
// transaction dated on or before asOf.
func BalanceAsOf(account Account, records []BalanceRecord, txs []Transaction, asOf Date) decimal.Decimal {
	balance := account.InitialBalance
	after := Date{} // replay transactions dated strictly after this
	if r, ok := latestRecord(account.ID, records, asOf); ok {
		balance = r.Amount
		after = r.Date
	}
	for _, t := range txs {
		if !t.Date.After(after) || t.Date.After(asOf) {
			continue
		}
		balance = balance.Add(signedEffect(t, account.ID))
	}
	return balance
}

// AccountBalance computes the balance of a stored account on a date. The
// second return is false when the account does not exist.
func (s *Store) AccountBalance(accountID string, asOf Date) (Money, bool) {
	a, ok := s.Account(accountID)
	if !ok {
		return Money{}, false
	}
	balance := BalanceAsOf(a, s.balanceRecords, s.transactions, asOf)
	return M(balance, a.Currency), true
}
