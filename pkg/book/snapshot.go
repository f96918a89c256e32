package book

import "fmt"

// RecordSnapshot is the serializable form of one Record. Storage
// backends persist snapshots and never touch field internals directly.
type RecordSnapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Snapshot returns the record's serializable form.
func (r *Record) Snapshot() RecordSnapshot {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	snap := RecordSnapshot{
		Name:   r.name.String(),
		Phones: phones,
	}
	if !r.birthday.IsZero() {
		snap.Birthday = r.birthday.String()
	}
	return snap
}

// Snapshot returns all records' serializable forms in insertion order.
func (b *AddressBook) Snapshot() []RecordSnapshot {
	records := b.Records()
	out := make([]RecordSnapshot, len(records))
	for i, r := range records {
		out[i] = r.Snapshot()
	}
	return out
}

// Restore rebuilds an address book from snapshots, re-validating every
// field on the way in. The error names the offending record, wrapping
// the field validation error.
func Restore(snapshots []RecordSnapshot) (*AddressBook, error) {
	b := NewAddressBook()
	for _, snap := range snapshots {
		r, err := NewRecord(snap.Name)
		if err != nil {
			return nil, fmt.Errorf("restore record %q: %w", snap.Name, err)
		}
		for _, phone := range snap.Phones {
			if err := r.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("restore record %q: %w", snap.Name, err)
			}
		}
		if snap.Birthday != "" {
			if err := r.SetBirthday(snap.Birthday); err != nil {
				return nil, fmt.Errorf("restore record %q: %w", snap.Name, err)
			}
		}
		b.AddRecord(r)
	}
	return b, nil
}
