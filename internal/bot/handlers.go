package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// Handlers mutate or query the address book and return the success
// message plus an error for every expected failure mode. They never
// print; converting errors to user-facing text is dispatch's job.

// addContact creates a contact with the given phone. Names are stored
// lower-cased; the display layer capitalizes. An existing contact under
// any case variant of the name is rejected, and a contact whose phone
// fails validation is not inserted at all.
func addContact(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArguments
	}
	name, phone := args[0], args[1]
	if b.Find(name) != nil {
		return "", ErrContactExists
	}
	record, err := book.NewRecord(strings.ToLower(name))
	if err != nil {
		return "", err
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	b.AddRecord(record)
	return msgContactAdded, nil
}

// changeContact replaces the contact's first phone with the given one.
// The replacement is validated before anything is removed, so a failed
// change leaves the record untouched.
func changeContact(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArguments
	}
	name, phone := args[0], args[1]
	record := b.Find(name)
	if record == nil {
		return "", ErrContactNotFound
	}
	if _, err := book.NewPhone(phone); err != nil {
		return "", err
	}
	if phones := record.Phones(); len(phones) > 0 {
		record.RemovePhone(phones[0].String())
	}
	// Already validated above.
	_ = record.AddPhone(phone)
	return msgContactUpdated, nil
}

// showPhone renders the contact's phones joined with "; ". A contact
// with no phones renders as the empty string.
func showPhone(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArguments
	}
	record := b.Find(args[0])
	if record == nil {
		return "", ErrContactNotFound
	}
	return joinPhones(record.Phones()), nil
}

// listAll renders one line per contact in insertion order.
func listAll(b *book.AddressBook) string {
	if b.Len() == 0 {
		return msgNoContacts
	}
	lines := make([]string, 0, b.Len())
	for _, record := range b.Records() {
		lines = append(lines, fmt.Sprintf("%s: %s",
			capitalize(record.Name().String()), joinPhones(record.Phones())))
	}
	return strings.Join(lines, "\n")
}

// removeContact deletes the contact under any case variant of the name.
func removeContact(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingContactName
	}
	if b.Find(args[0]) == nil {
		return "", ErrContactNotFound
	}
	b.Delete(args[0])
	return msgContactRemoved, nil
}

// addBirthday sets or overwrites the contact's birthday.
func addBirthday(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingBirthdayArgs
	}
	record := b.Find(args[0])
	if record == nil {
		return "", ErrContactNotFound
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return msgBirthdayAdded, nil
}

// showBirthday renders the contact's birthday string.
func showBirthday(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingBirthdayArgs
	}
	record := b.Find(args[0])
	if record == nil {
		return "", ErrContactNotFound
	}
	if record.Birthday().IsZero() {
		return msgBirthdayNotSet, nil
	}
	return record.Birthday().String(), nil
}

// listBirthdays renders the contacts whose birthdays fall within the
// week after now, one "Name - DD.MM.YYYY" line under a header.
func listBirthdays(b *book.AddressBook, now time.Time) string {
	upcoming := b.UpcomingBirthdays(now)
	if len(upcoming) == 0 {
		return msgNoUpcoming
	}
	lines := make([]string, 0, len(upcoming)+1)
	lines = append(lines, msgUpcomingHeader)
	for _, entry := range upcoming {
		lines = append(lines, fmt.Sprintf("%s - %s", capitalize(entry.Name), entry.Birthday))
	}
	return strings.Join(lines, "\n")
}

func joinPhones(phones []book.Phone) string {
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, "; ")
}
