package engine

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Directory is an insertion-ordered collection of records keyed by unique name.
// It is not safe for concurrent use.
type Directory struct {
	index   map[string]int
	records []*Record
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{index: make(map[string]int)}
}

// AddRecord stores r under r.Name(). An existing record with the same name is replaced
// wholesale (phones and birthday are not merged) and keeps its listing position.
func (d *Directory) AddRecord(r *Record) {
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, r.Name(),
	)
	if i, ok := d.index[r.Name()]; ok {
		d.records[i] = r
		log.Debug(config.MsgRecordReplace)
		return
	}
	d.index[r.Name()] = len(d.records)
	d.records = append(d.records, r)
	log.Debug(config.MsgRecordAdded)
}

// Find returns the record stored under name.
func (d *Directory) Find(name string) (*Record, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.records[i], true
}

// Delete removes the record stored under name. Unknown names are ignored.
func (d *Directory) Delete(name string) {
	i, ok := d.index[name]
	if !ok {
		return
	}
	delete(d.index, name)
	d.records = slices.Delete(d.records, i, i+1)
	for j := i; j < len(d.records); j++ {
		d.index[d.records[j].Name()] = j
	}
	slog.Debug(config.MsgRecordDeleted,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name,
	)
}

// All returns the records in insertion order.
func (d *Directory) All() []*Record {
	return slices.Clone(d.records)
}

// Len reports the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}

// UpcomingBirthdays lists the records whose next birthday is between ref and ref+days
// inclusive, in directory order.
//
// The birthday is first projected onto ref's year; if that is strictly before ref it is
// projected onto the following year instead. A projection landing on Saturday or Sunday is
// congratulated on the next Monday. Feb 29 on a non-leap year is projected to Mar 1.
func (d *Directory) UpcomingBirthdays(ref time.Time, days int) []UpcomingBirthday {
	today := dateOf(ref)
	var upcoming []UpcomingBirthday

	for _, r := range d.records {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		next := bday.WithYear(today.Year())
		if next.Before(today) {
			next = bday.WithYear(today.Year() + 1)
		}

		delta := today.DaysUntil(next)
		if delta < 0 || delta > days {
			continue
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Name:               r.Name(),
			Occurrence:         next,
			CongratulationDate: congratulationDate(next),
			DaysAway:           delta,
		})
	}

	slog.Debug(config.MsgUpcoming,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDate, today.Time().Format(config.DateFormatLog),
		config.LogKeyWindow, days,
		config.LogKeyCount, len(upcoming),
	)
	return upcoming
}

// congratulationDate moves weekend dates forward to the next Monday.
func congratulationDate(day BirthdayDate) BirthdayDate {
	if !isWeekend(day.Weekday()) {
		return day
	}
	return nextWeekday(day, time.Monday)
}

func isWeekend(w time.Weekday) bool {
	return w == time.Saturday || w == time.Sunday
}

// nextWeekday returns the first date strictly after day that falls on target.
func nextWeekday(day BirthdayDate, target time.Weekday) BirthdayDate {
	ahead := int(target) - int(day.Weekday())
	if ahead <= 0 {
		ahead += 7
	}
	shifted := day.AddDays(ahead)
	slog.Debug(config.MsgWeekendShift,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDate, day.Time().Format(config.DateFormatLog),
		config.LogKeyShifted, shifted.Time().Format(config.DateFormatLog),
	)
	return shifted
}

func (d *Directory) String() string {
	lines := make([]string, len(d.records))
	for i, r := range d.records {
		lines[i] = r.String()
	}
	return strings.Join(lines, config.RecordSeparator)
}
