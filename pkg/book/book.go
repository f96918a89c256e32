package book

import (
	"strings"
	"time"
)

// AddressBook is the keyed collection of all Records. Keys are
// lower-cased names, so lookups are case-insensitive, and iteration
// follows insertion order. Overwriting an existing key keeps the
// record's original position.
//
// AddRecord overwrites silently; rejecting duplicates is the command
// layer's responsibility.
type AddressBook struct {
	names   []string
	records map[string]*Record
}

// BirthdayEntry is one upcoming-birthday result: the record's name as
// stored and its birthday string verbatim.
type BirthdayEntry struct {
	Name     string
	Birthday string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord inserts or overwrites the entry keyed by the record's
// lower-cased name.
func (b *AddressBook) AddRecord(r *Record) {
	key := strings.ToLower(r.Name().String())
	if _, ok := b.records[key]; !ok {
		b.names = append(b.names, key)
	}
	b.records[key] = r
}

// Find returns the record stored under any case variant of name, or
// nil when absent.
func (b *AddressBook) Find(name string) *Record {
	return b.records[strings.ToLower(name)]
}

// Delete removes the record stored under any case variant of name.
// Deleting an absent name is a no-op.
func (b *AddressBook) Delete(name string) {
	key := strings.ToLower(name)
	if _, ok := b.records[key]; !ok {
		return
	}
	delete(b.records, key)
	for i, n := range b.names {
		if n == key {
			b.names = append(b.names[:i], b.names[i+1:]...)
			return
		}
	}
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.names))
	for _, key := range b.names {
		out = append(out, b.records[key])
	}
	return out
}

// UpcomingBirthdays returns, in insertion order, the contacts whose
// birthday falls strictly after now and no more than seven days ahead.
// The comparison projects each birthday's month and day onto now's year
// at midnight in now's location; there is no rollover into the next
// year, so a projection that lands before now is excluded even when the
// actual birthday is days away across the year boundary.
func (b *AddressBook) UpcomingBirthdays(now time.Time) []BirthdayEntry {
	weekAhead := now.AddDate(0, 0, 7)

	var upcoming []BirthdayEntry
	for _, r := range b.Records() {
		bd := r.Birthday()
		if bd.IsZero() {
			continue
		}
		date := bd.Date()
		projected := time.Date(now.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
		if projected.After(now) && !projected.After(weekAhead) {
			upcoming = append(upcoming, BirthdayEntry{
				Name:     r.Name().String(),
				Birthday: bd.String(),
			})
		}
	}
	return upcoming
}
