package till

import (
	"fmt"
	"strings"

	"github.com/etnz/till/date"
	"github.com/shopspring/decimal"
)

// Prompter asks the operator for a line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// CashRecord is the persisted opening balance of one day.
type CashRecord struct {
	Date           date.Date       `json:"date"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// CashSession holds the opening balance of the cash drawer for the current day.
// Only the latest day is kept.
type CashSession struct {
	record *CashRecord
	repo   Repository[*CashRecord]
	ledger *Ledger
	audit  Auditor
}

// NewCashSession loads the cash record from repo.
func NewCashSession(repo Repository[*CashRecord], ledger *Ledger, audit Auditor) *CashSession {
	return &CashSession{record: load("cash session", repo), repo: repo, ledger: ledger, audit: orDiscard(audit)}
}

// OpeningBalance returns the balance declared for today, if any.
func (c *CashSession) OpeningBalance(today date.Date) (decimal.Decimal, bool) {
	if c.record == nil || c.record.Date != today {
		return decimal.Zero, false
	}
	return c.record.OpeningBalance, true
}

// OpeningBalanceFor returns the balance declared for today. On the first call
// of a day it prompts for it until a number is entered, and saves it.
func (c *CashSession) OpeningBalanceFor(today date.Date, p Prompter) (decimal.Decimal, error) {
	if v, ok := c.OpeningBalance(today); ok {
		return v, nil
	}
	for {
		in, err := p.Prompt("Opening cash balance for today: ")
		if err != nil {
			return decimal.Zero, err
		}
		v, err := decimal.NewFromString(strings.TrimSpace(in))
		if err != nil {
			continue
		}
		return v, c.Open(today, v)
	}
}

// Open declares the opening balance of a day, replacing any previous record.
func (c *CashSession) Open(day date.Date, balance decimal.Decimal) error {
	c.record = &CashRecord{Date: day, OpeningBalance: balance}
	c.audit.Record("cash opened", fmt.Sprintf("%s | Opening: %s", day, balance.StringFixed(2)))
	return save("cash session", c.repo, c.record)
}

// ClosingBalance is the opening balance of today plus the revenue of the
// ledger.
//
// The revenue is the all-time revenue of the ledger, not the revenue of today.
func (c *CashSession) ClosingBalance(today date.Date, p Prompter) (decimal.Decimal, error) {
	opening, err := c.OpeningBalanceFor(today, p)
	if err != nil {
		return decimal.Zero, err
	}
	return opening.Add(c.ledger.TotalRevenue()), nil
}
