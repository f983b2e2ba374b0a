package till

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/etnz/till/date"
)

// Auditor records operator events. It never fails: the trail is write-only
// and must not block the cashier.
type Auditor interface {
	Record(event, detail string)
}

type discard struct{}

func (discard) Record(string, string) {}

func orDiscard(a Auditor) Auditor {
	if a == nil {
		return discard{}
	}
	return a
}

// AuditLog writes "2006-01-02 15:04:05 | event | detail" lines.
type AuditLog struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAuditLog writes the trail to w.
func NewAuditLog(w io.Writer) *AuditLog { return &AuditLog{w: w} }

// OpenAuditLog appends the trail to a file, creating it if needed.
func OpenAuditLog(filename string) (*AuditLog, io.Closer, error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open audit log %q: %w", filename, err)
	}
	return NewAuditLog(f), f, nil
}

// FormatAuditLine returns the line recorded for an event at ts.
func FormatAuditLine(ts Timestamp, event, detail string) string {
	line := ts.String() + " | " + event
	if detail != "" {
		line += " | " + detail
	}
	return line
}

func (a *AuditLog) Record(event, detail string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	line := FormatAuditLine(NewTimestamp(date.Now()), event, strings.ReplaceAll(detail, "\n", " "))
	if _, err := io.WriteString(a.w, line+"\n"); err != nil {
		log.Printf("warning, audit event %q lost: %v", event, err)
	}
}
