// Package book implements the in-memory contact directory: records aggregate
// validated fields, and the address book keys records by contact name.
package book

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/field"
)

// ErrNotFound indicates a lookup or edit target is absent. Like the field
// sentinels, the message is user-facing and carries no package prefix.
var ErrNotFound = errors.New("not found")

// Record is one contact: a name, an ordered list of phones, and an optional
// birthday. Phones keep insertion order and may contain duplicates.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord creates a Record for the given raw name.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() string { return r.name.String() }

// Phones returns the stored phone numbers in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.String()
	}
	return out
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := field.NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// DeletePhone removes every phone equal to raw. Removing a number that is not
// stored is a no-op.
func (r *Record) DeletePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != raw {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldRaw with newRaw. The new
// number is validated before anything is touched, so a failed edit leaves the
// record unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := field.NewPhone(newRaw)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].String() == oldRaw {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: phone number %q", ErrNotFound, oldRaw)
}

// SetBirthday validates raw and replaces any existing birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := field.NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (field.Birthday, bool) {
	if r.birthday == nil {
		return field.Birthday{}, false
	}
	return *r.birthday, true
}

// BirthdaySummary renders the birthday line used in listings.
func (r *Record) BirthdaySummary() string {
	if r.birthday == nil {
		return "no birthday set"
	}
	return "birthday: " + r.birthday.String()
}

// String renders the full record on one line.
func (r *Record) String() string {
	return fmt.Sprintf("name: %s, phones: %s, %s",
		r.name, strings.Join(r.Phones(), "; "), r.BirthdaySummary())
}

// Book is the address book: records keyed by contact name, iterated in
// insertion order.
type Book struct {
	records map[string]*Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Len returns the number of stored records.
func (b *Book) Len() int { return len(b.records) }

// AddRecord inserts rec keyed by its name. Adding a record under an existing
// name overwrites the entry; the higher-level add workflow relies on this.
func (b *Book) AddRecord(rec *Record) {
	name := rec.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}

// DeleteRecord removes the record for name.
func (b *Book) DeleteRecord(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: record %q", ErrNotFound, name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindRecord returns the record for name. Lookups are expected to miss, so a
// miss is reported via ok rather than an error.
func (b *Book) FindRecord(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays returns records whose birthday falls within the next days
// days of today, in insertion order. The candidate date is the birthday's
// month and day placed in today's year only: birthdays already past this year
// are excluded, and a window reaching past Dec 31 never surfaces early-January
// birthdays. This mirrors the source behavior the tool has always had.
func (b *Book) UpcomingBirthdays(days int, today time.Time) []*Record {
	today = midnightUTC(today)

	var upcoming []*Record
	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}
		d := bd.Date()
		thisYear := time.Date(today.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		until := int(thisYear.Sub(today).Hours() / 24)
		if until >= 0 && until <= days {
			upcoming = append(upcoming, rec)
		}
	}
	return upcoming
}

// midnightUTC truncates t to a date at midnight UTC so day arithmetic is
// exact regardless of the wall clock.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
