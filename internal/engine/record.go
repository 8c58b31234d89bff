package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record holds a single contact: a name, an ordered list of phones and an optional birthday.
// Every stored phone and birthday has passed validation; the fields are only reachable
// through methods that preserve that invariant.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday *BirthdayDate
}

// NewRecord creates an empty record for name.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the key under which the record is stored in a Directory.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []PhoneNumber {
	return slices.Clone(r.phones)
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone drops the first phone equal to raw. Absent values are ignored.
func (r *Record) RemovePhone(raw string) {
	if i := r.indexOf(raw); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping its position.
// The record is left untouched when either lookup or validation fails.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return notFound(config.ErrOldPhone)
	}
	phone, err := NewPhoneNumber(newRaw)
	if err != nil {
		return err
	}
	r.phones[i] = phone
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (PhoneNumber, bool) {
	if i := r.indexOf(raw); i >= 0 {
		return r.phones[i], true
	}
	return PhoneNumber{}, false
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p PhoneNumber) bool {
		return p.value == raw
	})
}

// SetBirthday validates raw and overwrites any previous birthday.
func (r *Record) SetBirthday(raw string) error {
	bday, err := NewBirthdayDate(raw)
	if err != nil {
		return err
	}
	r.birthday = &bday
	return nil
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (BirthdayDate, bool) {
	if r.birthday == nil {
		return BirthdayDate{}, false
	}
	return *r.birthday, true
}

// FormattedBirthday renders the birthday as DD.MM.YYYY.
func (r *Record) FormattedBirthday() (string, bool) {
	bday, ok := r.Birthday()
	if !ok {
		return "", false
	}
	return bday.String(), true
}

// PhoneList joins the phone values for display.
func (r *Record) PhoneList() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return strings.Join(values, config.PhoneSeparator)
}

func (r *Record) String() string {
	bday, ok := r.FormattedBirthday()
	if !ok {
		bday = config.NoBirthdaySet
	}
	return fmt.Sprintf(config.FormatRecord, r.name, r.PhoneList(), bday)
}
