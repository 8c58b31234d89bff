package engine

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Error kinds surfaced by the engine. Callers match them with errors.Is.
var (
	ErrInvalidFormat = errors.New(config.ErrInvalidFormat)
	ErrNotFound      = errors.New(config.ErrNotFound)
)

// fieldError carries a user-facing message while preserving the error kind.
type fieldError struct {
	kind error
	msg  string
}

func (e *fieldError) Error() string { return e.msg }
func (e *fieldError) Unwrap() error { return e.kind }

func invalidFormat(msg string) error { return &fieldError{kind: ErrInvalidFormat, msg: msg} }
func notFound(msg string) error      { return &fieldError{kind: ErrNotFound, msg: msg} }

var validate = validator.New()

// PhoneNumber is a validated string of exactly ten ASCII digits.
// The zero value is not a valid phone; use NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw and returns it as a PhoneNumber.
// No normalisation is applied: separators or country codes are rejected.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if err := validate.Var(raw, config.PhoneValidationTag); err != nil {
		return PhoneNumber{}, invalidFormat(config.ErrPhoneFormat)
	}
	return PhoneNumber{value: raw}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}

// BirthdayDate is a calendar date parsed from DD.MM.YYYY.
// It is stored as midnight UTC so that comparisons are by calendar day only.
type BirthdayDate struct {
	t time.Time
}

// NewBirthdayDate parses raw using the strict DD.MM.YYYY layout.
// time.Parse rejects out-of-range days, so 30.02.2020 and 29.02.2021 fail.
func NewBirthdayDate(raw string) (BirthdayDate, error) {
	t, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return BirthdayDate{}, invalidFormat(config.ErrDateFormat)
	}
	return BirthdayDate{t: t}, nil
}

// dateOf truncates t to its calendar day, keeping the day as seen in t's location.
func dateOf(t time.Time) BirthdayDate {
	y, m, d := t.Date()
	return BirthdayDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Time returns the date as midnight UTC.
func (b BirthdayDate) Time() time.Time { return b.t }

func (b BirthdayDate) Year() int { return b.t.Year() }
func (b BirthdayDate) Month() time.Month { return b.t.Month() }
func (b BirthdayDate) Day() int { return b.t.Day() }
func (b BirthdayDate) Weekday() time.Weekday { return b.t.Weekday() }

func (b BirthdayDate) Equal(o BirthdayDate) bool  { return b.t.Equal(o.t) }
func (b BirthdayDate) Before(o BirthdayDate) bool { return b.t.Before(o.t) }

// WithYear projects the month and day onto year.
// Feb 29 on a non-leap year normalises to Mar 1.
func (b BirthdayDate) WithYear(year int) BirthdayDate {
	return BirthdayDate{t: time.Date(year, b.t.Month(), b.t.Day(), 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days later.
func (b BirthdayDate) AddDays(n int) BirthdayDate {
	return BirthdayDate{t: b.t.AddDate(0, 0, n)}
}

// DaysUntil returns the whole number of days from b to o (negative if o is earlier).
func (b BirthdayDate) DaysUntil(o BirthdayDate) int {
	return int(o.t.Sub(b.t).Hours() / config.HoursPerDay)
}

func (b BirthdayDate) String() string {
	return b.t.Format(config.DateFormatBirthday)
}
