// Package till is a single-operator point of sale: a product catalog with
// prices and stock levels, the sales recorded against it, the daily opening
// balance of the cash drawer and the reports computed from them.
//
// The core is the sale workflow:
//   - Catalog: products, their unit price and stock, and a monotonic id
//     counter.
//   - Composer: builds one sale line by line, taking stock from the catalog
//     as lines are added, and commits it to the ledger.
//   - Ledger: the append-only history of sales and its aggregate reports.
//   - CashSession: the opening balance of the day and the closing balance.
//
// Each store owns its state and saves it whole through a Repository after
// every mutation. The Shop gathers the stores loaded at startup; the `cashier`
// command-line tool drives it.
package till
