package till

import (
	"errors"
	"testing"

	"github.com/etnz/till/date"
)

func TestCashSession_OpeningBalanceFor(t *testing.T) {
	repo := &memRepo[*CashRecord]{}
	rec := &recorder{}
	cash := NewCashSession(repo, NewLedger(&memRepo[[]Sale]{}), rec)
	day := date.New(2024, 1, 1)

	p := &script{answers: []string{"abc", " 100.00 "}}
	got, err := cash.OpeningBalanceFor(day, p)
	if err != nil {
		t.Fatalf("OpeningBalanceFor() error = %v", err)
	}
	if !got.Equal(D("100")) {
		t.Errorf("OpeningBalanceFor() = %s, want 100", got)
	}
	if len(p.asked) != 2 {
		t.Errorf("prompted %d times, want 2", len(p.asked))
	}

	// the second call of the day does not prompt.
	p = &script{}
	if got, err := cash.OpeningBalanceFor(day, p); err != nil || !got.Equal(D("100")) {
		t.Errorf("second OpeningBalanceFor() = %s, %v, want 100", got, err)
	}
	if len(p.asked) != 0 {
		t.Errorf("second call prompted %q", p.asked)
	}

	// the record survives a restart.
	reloaded := NewCashSession(repo, NewLedger(&memRepo[[]Sale]{}), nil)
	if v, ok := reloaded.OpeningBalance(day); !ok || !v.Equal(D("100")) {
		t.Errorf("reloaded OpeningBalance() = %s %v, want 100 true", v, ok)
	}
	if !rec.has("cash opened | 2024-01-01 | Opening: 100.00") {
		t.Errorf("audit = %q, want the opening", rec.events)
	}
}

func TestCashSession_NewDayPrompts(t *testing.T) {
	cash := NewCashSession(&memRepo[*CashRecord]{}, NewLedger(&memRepo[[]Sale]{}), nil)
	if err := cash.Open(date.New(2024, 1, 1), D("100")); err != nil {
		t.Fatal(err)
	}
	next := date.New(2024, 1, 2)
	if _, ok := cash.OpeningBalance(next); ok {
		t.Errorf("OpeningBalance(next day) is set")
	}
	p := &script{answers: []string{"20"}}
	if got, _ := cash.OpeningBalanceFor(next, p); !got.Equal(D("20")) {
		t.Errorf("OpeningBalanceFor(next day) = %s, want 20", got)
	}
	if _, ok := cash.OpeningBalance(date.New(2024, 1, 1)); ok {
		t.Errorf("the previous day is still kept")
	}
}

func TestCashSession_PromptError(t *testing.T) {
	repo := &memRepo[*CashRecord]{}
	cash := NewCashSession(repo, NewLedger(&memRepo[[]Sale]{}), nil)
	if _, err := cash.OpeningBalanceFor(date.New(2024, 1, 1), &script{answers: []string{"x"}}); !errors.Is(err, errEndOfScript) {
		t.Errorf("OpeningBalanceFor() error = %v, want %v", err, errEndOfScript)
	}
	if repo.saves != 0 {
		t.Errorf("a cancelled prompt saved the record")
	}
}

// The closing balance adds the revenue of every sale, not only today's.
func TestCashSession_ClosingBalance(t *testing.T) {
	ledger := NewLedger(&memRepo[[]Sale]{})
	ledger.Append(sale("2023-12-31 17:00:00", line("Soap", 2, "2.50")))
	ledger.Append(sale("2024-01-01 09:00:00", line("Towel", 1, "8")))
	cash := NewCashSession(&memRepo[*CashRecord]{}, ledger, nil)

	got, err := cash.ClosingBalance(date.New(2024, 1, 1), &script{answers: []string{"100"}})
	if err != nil {
		t.Fatalf("ClosingBalance() error = %v", err)
	}
	if !got.Equal(D("113")) {
		t.Errorf("ClosingBalance() = %s, want 113", got)
	}
}
