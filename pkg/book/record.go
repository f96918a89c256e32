package book

import (
	"fmt"
	"strings"
)

// Record is one contact: a name fixed at creation, phone numbers in
// insertion order, and an optional birthday. Phones may repeat; no
// de-duplication is applied within a record.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a Record with the given name.
// Returns ErrInvalidName when the name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone sequence in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the contact's birthday; zero when not set.
func (r *Record) Birthday() Birthday {
	return r.birthday
}

// AddPhone validates value and appends it to the phone sequence.
// Returns ErrInvalidPhone without modifying the record on failure.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone whose rendering equals value.
// Removing an absent value is a no-op.
func (r *Record) RemovePhone(value string) {
	for i, p := range r.phones {
		if p.String() == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces the first phone equal to oldValue with newValue in
// place, keeping its position. The replacement is validated; on
// ErrInvalidPhone the record is unchanged. Editing an absent value is a
// no-op.
func (r *Record) EditPhone(oldValue, newValue string) error {
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	for i, old := range r.phones {
		if old.String() == oldValue {
			r.phones[i] = p
			return nil
		}
	}
	return nil
}

// FindPhone returns the first phone whose rendering equals value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == value {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates value and sets or overwrites the birthday.
// Returns ErrInvalidBirthday without modifying the record on failure.
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// String renders the record as a single line:
//
//	Contact name: jane, phones: 0123456789; 9876543210, birthday: 01.02.1990
//
// An unset birthday renders as "N/A".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.String()
	}
	birthday := "N/A"
	if !r.birthday.IsZero() {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(values, "; "), birthday)
}
