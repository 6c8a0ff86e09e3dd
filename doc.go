// Package finbook provides the computation core of a local-first personal
// finance tracker: accounts, transactions, balance records, assets, budgets
// and categories, together with the engines that derive values from them.
//
// The core functionalities include:
//   - Ledger Store: an in-memory owner of all entity collections, exposing
//     CRUD mutators with referential-integrity guards and change
//     notification for reactive consumers.
//   - Balance Engine: reconstructs an account's balance as of any date from
//     its initial balance, user-entered balance-record checkpoints, and the
//     transaction history.
//   - Net Worth Engine: aggregates account balances and asset values across
//     currencies into a base currency, and produces historical series.
//   - Budget Engine: resolves a budget's (possibly recurring) period window
//     and derives the amount spent and remaining.
//   - Data Persistence: a versioned, human-readable JSON export format with
//     a tolerant importer for legacy layouts.
//
// All engines are pure functions over a snapshot of the store; they hold no
// state of their own and never mutate entities. This package serves as the
// foundational logic for the `fbk` command-line tool.
package finbook
