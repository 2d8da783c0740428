// Package field defines the validated value types a contact record is built
// from. Each type can only be constructed through a validator, so a value held
// in memory is always well-formed.
package field

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidFormat indicates a raw value was rejected by a field validator.
// All constructors wrap it, so callers can branch with errors.Is. The message
// carries no package prefix: the handler layer surfaces these verbatim.
var ErrInvalidFormat = errors.New("invalid format")

// BirthdayLayout is the wire format for birthdays on input and output.
const BirthdayLayout = "02.01.2006"

// phonePattern matches exactly 10 decimal digits, no signs or separators.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// birthdayPattern matches DD.MM.YYYY with zero-padded day and month.
// Calendar validity (Feb 30, Apr 31) is checked separately by time.Parse.
var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Name is a contact's display name. Always non-blank in memory.
type Name struct {
	value string
}

// NewName validates raw as a contact name. Whitespace-only names are rejected.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidFormat)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Phone is a 10-digit phone number.
type Phone struct {
	value string
}

// NewPhone validates raw as a phone number of exactly 10 decimal digits.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, fmt.Errorf("%w: phone number must contain exactly 10 digits", ErrInvalidFormat)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date, exchanged as DD.MM.YYYY strings.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw in DD.MM.YYYY format, rejecting dates that are not
// real calendar days.
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: birthday must use the DD.MM.YYYY format", ErrInvalidFormat)
	}
	d, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q is not a real calendar date", ErrInvalidFormat, raw)
	}
	return Birthday{date: d}, nil
}

// Date returns the parsed calendar date at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday back in its wire format.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
