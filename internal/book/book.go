// Package book implements the in-memory contact directory: an
// insertion-ordered collection of records keyed by name, plus the
// upcoming-birthday query.
//
// The book lives for the process and is driven by a single control loop, so
// it carries no locking.
package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/rolobook/rolo/internal/field"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrNotFound      = errors.New("book: contact not found")
	ErrPhoneNotFound = errors.New("book: phone not found")
)

// DefaultUpcomingWindow is the number of days ahead (inclusive) scanned by
// Upcoming when no window is configured.
const DefaultUpcomingWindow = 7

// Book is an insertion-ordered directory of contact records keyed by name.
// One record per name; records are destroyed only by explicit Delete.
type Book struct {
	index map[string]*Record
	names []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{index: make(map[string]*Record)}
}

// Add inserts a record, replacing any record with the same name without
// disturbing its position in iteration order.
func (b *Book) Add(rec *Record) {
	name := rec.Name()
	if _, ok := b.index[name]; !ok {
		b.names = append(b.names, name)
	}
	b.index[name] = rec
}

// Find returns the record for name, or an error wrapping ErrNotFound.
func (b *Book) Find(name string) (*Record, error) {
	rec, ok := b.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rec, nil
}

// FindOrCreate returns the record for name, creating it on first reference.
// The second result reports whether the record was newly created.
func (b *Book) FindOrCreate(name string) (*Record, bool, error) {
	if rec, ok := b.index[name]; ok {
		return rec, false, nil
	}
	rec, err := NewRecord(name)
	if err != nil {
		return nil, false, err
	}
	b.Add(rec)
	return rec, true, nil
}

// Delete removes the record for name.
// Returns an error wrapping ErrNotFound if no such contact exists.
func (b *Book) Delete(name string) error {
	if _, ok := b.index[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(b.index, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.names) }

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	recs := make([]*Record, 0, len(b.names))
	for _, name := range b.names {
		recs = append(recs, b.index[name])
	}
	return recs
}

// Greeting pairs a contact name with the date their birthday should be
// celebrated: the occurrence itself, or the following Monday when the
// occurrence lands on a weekend.
type Greeting struct {
	Name string
	Date time.Time
}

// DateString renders the greeting date as DD.MM.YYYY.
func (g Greeting) DateString() string {
	return g.Date.Format(field.BirthdayLayout)
}

// Upcoming returns, in directory order, a greeting for every contact whose
// next birthday occurrence falls within window days of today (inclusive on
// both ends). The occurrence used for the window comparison is never
// shifted; only the reported greeting date moves off weekends.
func (b *Book) Upcoming(today time.Time, window int) []Greeting {
	if window <= 0 {
		window = DefaultUpcomingWindow
	}
	today = midnight(today)

	var out []Greeting
	for _, rec := range b.Records() {
		if !rec.HasBirthday() {
			continue
		}
		occ := nextOccurrence(rec.Birthday(), today)
		days := int(occ.Sub(today).Hours() / 24)
		if days < 0 || days > window {
			continue
		}
		out = append(out, Greeting{Name: rec.Name(), Date: shiftWeekend(occ)})
	}
	return out
}

// nextOccurrence returns this year's occurrence of the birthday's month/day,
// rolled to next year if it already passed. Feb 29 normalizes to Mar 1 in
// non-leap years, per time.Date semantics.
func nextOccurrence(bd field.Birthday, today time.Time) time.Time {
	occ := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}

// shiftWeekend moves Saturday and Sunday dates to the following Monday.
func shiftWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	}
	return t
}

// midnight truncates t to the start of its day, in UTC so day arithmetic is
// immune to DST transitions.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
