package book

import (
	"errors"
	"fmt"
	"time"
)

// Field validation errors.
var (
	ErrInvalidName     = errors.New("name cannot be empty")
	ErrInvalidPhone    = errors.New("phone must be a 10-digit number")
	ErrInvalidBirthday = errors.New("birthday must be a valid date in the format DD.MM.YYYY")
)

// birthdayLayout is the wire format for birthdays: zero-padded day and
// month, four-digit year. time.Parse enforces the widths, so "1.1.2024"
// is rejected along with impossible dates like "30.02.2024".
const birthdayLayout = "02.01.2006"

// Name is a validated contact name. The value is held verbatim; the
// case-insensitive keying of contacts is the AddressBook's concern.
type Name struct {
	value string
}

// NewName creates a Name value object.
// Returns ErrInvalidName when value is empty.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: value}, nil
}

// String returns the stored name verbatim.
func (n Name) String() string {
	return n.value
}

// Phone is a validated phone number: exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone creates a Phone value object.
// Returns ErrInvalidPhone unless value is exactly ten ASCII digits.
func NewPhone(value string) (Phone, error) {
	if !isTenDigits(value) {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, value)
	}
	return Phone{value: value}, nil
}

// String returns the stored number verbatim.
func (p Phone) String() string {
	return p.value
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a validated date of birth. It keeps both the verbatim
// DD.MM.YYYY string, which is what renders back to the user, and the
// parsed date used by the birthday-window query. The zero Birthday
// means "not set".
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday creates a Birthday value object.
// Returns ErrInvalidBirthday when value does not parse as a real
// calendar date in DD.MM.YYYY form.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(birthdayLayout, value)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, value)
	}
	return Birthday{value: value, date: date}, nil
}

// String returns the stored date string verbatim.
func (b Birthday) String() string {
	return b.value
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time {
	return b.date
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool {
	return b.value == ""
}
