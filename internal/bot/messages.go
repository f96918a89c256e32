package bot

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// User-facing messages. Every command produces exactly one of these or
// a value rendered from the book; no error text leaks to the user in
// any other form.
const (
	msgWelcome        = "Welcome to the assistant bot!"
	msgGoodbye        = "Good bye!"
	msgHello          = "How can I help you?"
	msgInvalidCommand = "Invalid command."
	msgPrompt         = "Enter a command: "

	msgContactAdded    = "Contact added."
	msgContactExists   = "Contact already exists. Use 'change' to update."
	msgContactUpdated  = "Contact updated."
	msgContactNotFound = "Contact not found."
	msgContactRemoved  = "Contact removed."
	msgNoContacts      = "No contacts found."

	msgBirthdayAdded   = "Birthday added."
	msgBirthdayNotSet  = "Birthday not set."
	msgUpcomingHeader  = "Upcoming birthdays in the next week:"
	msgNoUpcoming      = "No upcoming birthdays in the next week."
	msgInvalidBirthday = "Invalid date format for birthday. Birthday should be in the format DD.MM.YYYY"

	msgInvalidPhone = "Phone number must be a 10-digit number"

	msgNeedNamePhone    = "Give me name and phone please."
	msgNeedRemoveName   = "Give me the name of the contact you want to remove."
	msgNeedBirthdayArgs = "Give me name and date of birth in the format DD.MM.YYYY."
)

// Handler failure modes beyond field validation.
var (
	ErrMissingArguments    = errors.New("missing arguments")
	ErrMissingContactName  = errors.New("missing contact name")
	ErrMissingBirthdayArgs = errors.New("missing birthday arguments")
	ErrContactNotFound     = errors.New("contact not found")
	ErrContactExists       = errors.New("contact already exists")
)

// errorMessage converts an expected handler failure into its user-facing
// message. This is the single dispatch-boundary mapping: handlers return
// errors, and only this function decides what the user reads.
// Unrecognized errors fall back to the generic arguments message.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, book.ErrInvalidPhone):
		return msgInvalidPhone
	case errors.Is(err, book.ErrInvalidBirthday):
		return msgInvalidBirthday
	case errors.Is(err, ErrContactNotFound):
		return msgContactNotFound
	case errors.Is(err, ErrContactExists):
		return msgContactExists
	case errors.Is(err, ErrMissingContactName):
		return msgNeedRemoveName
	case errors.Is(err, ErrMissingBirthdayArgs):
		return msgNeedBirthdayArgs
	default:
		return msgNeedNamePhone
	}
}

// capitalize upper-cases the first rune and lower-cases the remainder.
// Deliberately not full title-casing: "o'brien" renders as "O'brien".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
