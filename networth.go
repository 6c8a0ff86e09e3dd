package finbook

import (
	"github.com/shopspring/decimal"
)

// ConvertFunc converts an amount between currencies. Implementations are
// expected to return the amount unchanged when from == to.
type ConvertFunc func(amount decimal.Decimal, from, to string) decimal.Decimal

// NetWorth sums the balances of the given accounts and the values of the
// given assets on a date, converted into the base currency.
//
// Each asset is valued in the currency of its owning account; an asset whose
// owning account is not in the given set is skipped. Assets are valued at
// their current price regardless of asOf: no price history is kept, so a
// point in the past still uses today's price.
func NetWorth(accounts []Account, assets []Asset, records []BalanceRecord, txs []Transaction, base string, convert ConvertFunc, asOf Date) decimal.Decimal {
	currencies := make(map[string]string, len(accounts))
	var total decimal.Decimal
	for _, a := range accounts {
		currencies[a.ID] = a.Currency
		balance := BalanceAsOf(a, records, txs, asOf)
		total = total.Add(convert(balance, a.Currency, base))
	}
	for _, asset := range assets {
		cur, ok := currencies[asset.AccountID]
		if !ok {
			continue
		}
		total = total.Add(convert(asset.Value(), cur, base))
	}
	return total
}

// NetWorthPoint is one sample of a net worth series.
type NetWorthPoint struct {
	Date  Date            `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// NetWorthHistory samples the net worth over the range, stepping by the
// interval from the range start. The range end is always included as the
// final point, even when the last step overshoots it.
func NetWorthHistory(accounts []Account, assets []Asset, records []BalanceRecord, txs []Transaction, base string, convert ConvertFunc, r Range, interval Period) []NetWorthPoint {
	var points []NetWorthPoint
	for d := range r.Steps(interval) {
		points = append(points, NetWorthPoint{
			Date:  d,
			Value: NetWorth(accounts, assets, records, txs, base, convert, d),
		})
	}
	if n := len(points); n == 0 || points[n-1].Date != r.To {
		points = append(points, NetWorthPoint{
			Date:  r.To,
			Value: NetWorth(accounts, assets, records, txs, base, convert, r.To),
		})
	}
	return points
}

// NetWorth computes the store's net worth on a date in the base currency.
// Archived accounts, and the assets they hold, are excluded.
func (s *Store) NetWorth(convert ConvertFunc, asOf Date) Money {
	total := NetWorth(s.ActiveAccounts(), s.assets, s.balanceRecords, s.transactions, s.settings.BaseCurrency, convert, asOf)
	return M(total, s.settings.BaseCurrency)
}

// NetWorthHistory samples the store's net worth over the range in the base
// currency, one point per interval step. Archived accounts are excluded.
func (s *Store) NetWorthHistory(convert ConvertFunc, r Range, interval Period) []NetWorthPoint {
	return NetWorthHistory(s.ActiveAccounts(), s.assets, s.balanceRecords, s.transactions, s.settings.BaseCurrency, convert, r, interval)
}
