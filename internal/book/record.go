package book

import (
	"fmt"
	"strings"

	"github.com/rolobook/rolo/internal/field"
)

// Record is a single contact: a unique display name, an ordered list of
// phones, and at most one optional birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday field.Birthday
}

// NewRecord creates a Record for the given raw name.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's display name.
func (r *Record) Name() string { return r.name.String() }

// Phones returns the contact's phone numbers in the order they were added.
func (r *Record) Phones() []field.Phone { return r.phones }

// Birthday returns the contact's birthday; check HasBirthday first.
func (r *Record) Birthday() field.Birthday { return r.birthday }

// HasBirthday reports whether a birthday has been set.
func (r *Record) HasBirthday() bool { return !r.birthday.IsZero() }

// AddPhone validates raw and appends it to the phone list.
func (r *Record) AddPhone(raw string) error {
	p, err := field.NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone deletes the first phone matching raw.
// Returns ErrPhoneNotFound if no phone matches.
func (r *Record) RemovePhone(raw string) error {
	for i, p := range r.phones {
		if p.String() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPhoneNotFound, raw)
}

// EditPhone replaces old with new in place, keeping list order.
// The new value is validated before the old one is touched.
func (r *Record) EditPhone(old, new string) error {
	p, err := field.NewPhone(new)
	if err != nil {
		return err
	}
	for i, cur := range r.phones {
		if cur.String() == old {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPhoneNotFound, old)
}

// FindPhone returns the phone matching raw, if present.
func (r *Record) FindPhone(raw string) (field.Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return field.Phone{}, false
}

// SetBirthday validates raw and sets (or replaces) the birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := field.NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// String renders the record as a one-line summary.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := "no birthday set"
	if r.HasBirthday() {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("%s: phones: %s, birthday: %s", r.Name(), strings.Join(phones, "; "), birthday)
}
