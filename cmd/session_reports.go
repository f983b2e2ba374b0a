package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/till"
	"github.com/etnz/till/date"
	"github.com/etnz/till/renderer"
)

func (s *Session) summary() error {
	s.out.markdown(renderer.SummaryMarkdown(s.shop.Summary(date.Today()), s.shop.Currency))
	return nil
}

func (s *Session) cash() error {
	// the opening balance was declared when the session started.
	closing, err := s.shop.Cash.ClosingBalance(date.Today(), s.prompt)
	if err != nil {
		return err
	}
	s.out.markdown(renderer.CashMarkdown(s.shop.Summary(date.Today()), closing, s.shop.Currency))
	return nil
}

// day asks for a date until a valid one is typed.
func (s *Session) day(label string) (date.Date, error) {
	for {
		in, err := text(s.prompt, label)
		if err != nil {
			return date.Date{}, err
		}
		d, err := till.ParseDay(in)
		if err == nil {
			return d, nil
		}
		s.report(err)
	}
}

func (s *Session) salesByRange() error {
	if s.shop.Ledger.Len() == 0 {
		s.out.printf("No sales recorded.\n")
		return nil
	}
	s.out.markdown(renderer.DatesMarkdown(s.shop.Ledger.Dates()))
	for {
		start, err := s.day("Start date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		end, err := s.day("End date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		sales, err := s.shop.Ledger.ByDateRange(start, end)
		if err != nil {
			s.report(err)
			continue
		}
		s.out.markdown(renderer.RangeMarkdown(start, end, sales, s.shop.Currency))
		return nil
	}
}

func (s *Session) productHistory() error {
	name, err := text(s.prompt, "Product name: ")
	if err != nil {
		return err
	}
	s.out.markdown(renderer.ProductHistoryMarkdown(s.shop.Ledger.ProductHistory(name), s.shop.Currency))
	return nil
}

func (s *Session) neverSold() error {
	s.out.markdown(renderer.NeverSoldMarkdown(s.shop.Ledger.NeverSold(s.shop.Catalog)))
	return nil
}

func (s *Session) salesByPeriod() error {
	in, err := text(s.prompt, "Period (day/week/month): ")
	if err != nil {
		return err
	}
	p, err := date.ParsePeriod(in)
	if err != nil {
		return fmt.Errorf("%w: %w", till.ErrValidation, err)
	}
	day := date.Today()
	in, err = s.prompt.Prompt("A day of the period (empty for today): ")
	if err != nil {
		return err
	}
	if in != "" {
		if day, err = till.ParseDay(in); err != nil {
			return err
		}
	}
	r, sales := s.shop.Ledger.ByPeriod(day, p)
	s.out.markdown(renderer.RangeMarkdown(r.From, r.To, sales, s.shop.Currency))
	return nil
}

func (s *Session) buckets(p date.Period) error {
	s.out.markdown(renderer.BucketsMarkdown(p, s.shop.Ledger.BucketedTotals(p), s.shop.Currency))
	return nil
}

func (s *Session) export() error {
	def := filepath.Join(s.exportDir, "sales.csv")
	name, err := s.prompt.Prompt(fmt.Sprintf("CSV file (empty for %s): ", def))
	if err != nil {
		return err
	}
	if name == "" {
		name = def
	}
	if err := exportCSV(name, s.shop.Ledger.Snapshot()); err != nil {
		return err
	}
	s.out.printf("Sales exported to %s.\n", name)
	return nil
}

// exportCSV writes the sales to the file name.
func exportCSV(name string, sales []till.Sale) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	if err := till.ExportCSV(f, sales); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
