// Package field implements the validated value types stored on a contact
// record. Each type validates its raw string once, at construction; there is
// no way to mutate a field afterwards, so a held value is always well-formed.
package field

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidFormat indicates a raw value that does not match the required
// format for its field type.
var ErrInvalidFormat = errors.New("field: invalid format")

// BirthdayLayout is the accepted (and emitted) calendar date layout.
const BirthdayLayout = "02.01.2006"

var (
	phoneRe    = regexp.MustCompile(`^\d{10}$`)
	birthdayRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

// Name is a contact's display name. Non-empty after trimming.
type Name struct {
	value string
}

// NewName validates and wraps a display name.
func NewName(raw string) (Name, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Name{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidFormat)
	}
	return Name{value: raw}, nil
}

// String returns the name as entered (trimmed).
func (n Name) String() string { return n.value }

// Phone is a phone number of exactly 10 decimal digits.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number. Anything other than exactly
// 10 digits is rejected; edits replace the value through this constructor.
func NewPhone(raw string) (Phone, error) {
	if !phoneRe.MatchString(raw) {
		return Phone{}, fmt.Errorf("%w: phone number must be 10 digits, got %q", ErrInvalidFormat, raw)
	}
	return Phone{value: raw}, nil
}

// String returns the 10-digit number.
func (p Phone) String() string { return p.value }

// Birthday is a real calendar date parsed from DD.MM.YYYY.
type Birthday struct {
	value time.Time
}

// NewBirthday validates and wraps a birthday. The raw string must match
// DD.MM.YYYY and name a date that exists (29.02.2021 fails, 29.02.2020 is
// fine).
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayRe.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: invalid date format, use DD.MM.YYYY", ErrInvalidFormat)
	}
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q is not a real date", ErrInvalidFormat, raw)
	}
	return Birthday{value: t}, nil
}

// Time returns the parsed date at midnight UTC.
func (b Birthday) Time() time.Time { return b.value }

// Day and Month expose the recurring parts of the birthday.
func (b Birthday) Day() int { return b.value.Day() }

// Month returns the birthday's calendar month.
func (b Birthday) Month() time.Month { return b.value.Month() }

// IsZero reports whether the birthday was never set.
func (b Birthday) IsZero() bool { return b.value.IsZero() }

// String renders the date back in DD.MM.YYYY.
func (b Birthday) String() string { return b.value.Format(BirthdayLayout) }
