package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func newRecordWithBirthday(t *testing.T, name, birthday string) *engine.Record {
	t.Helper()
	r := engine.NewRecord(name)
	require.NoError(t, r.SetBirthday(birthday))
	return r
}

func names(records []*engine.Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Name())
	}
	return out
}

// -----------------------------------------------------------------------------
// Directory Operations
// -----------------------------------------------------------------------------

func TestDirectory_InsertionOrder(t *testing.T) {
	d := engine.NewDirectory()
	for _, n := range []string{"Zoe", "Adam", "Mike"} {
		d.AddRecord(engine.NewRecord(n))
	}

	assert.Equal(t, []string{"Zoe", "Adam", "Mike"}, names(d.All()), "Listing must follow insertion, not alphabet")
	assert.Equal(t, 3, d.Len())
}

func TestDirectory_AddRecord_ReplacesWholesale(t *testing.T) {
	d := engine.NewDirectory()

	first := newRecordWithPhones(t, "John", "1111111111")
	require.NoError(t, first.SetBirthday("03.01.1990"))
	d.AddRecord(first)
	d.AddRecord(engine.NewRecord("Jane"))

	second := newRecordWithPhones(t, "John", "2222222222")
	d.AddRecord(second)

	got, ok := d.Find("John")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, []string{"2222222222"}, phoneValues(got), "Phones are replaced, not merged")
	_, hasBday := got.Birthday()
	assert.False(t, hasBday, "Birthday of the replaced record is gone")

	assert.Equal(t, []string{"John", "Jane"}, names(d.All()), "Replacement keeps the listing position")
	assert.Equal(t, 2, d.Len())
}

func TestDirectory_FindAndDelete(t *testing.T) {
	d := engine.NewDirectory()
	d.AddRecord(engine.NewRecord("A"))
	d.AddRecord(engine.NewRecord("B"))
	d.AddRecord(engine.NewRecord("C"))

	_, ok := d.Find("missing")
	assert.False(t, ok)

	d.Delete("B")
	_, ok = d.Find("B")
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "C"}, names(d.All()))

	// Index must stay consistent after the shift.
	c, ok := d.Find("C")
	require.True(t, ok)
	assert.Equal(t, "C", c.Name())

	d.Delete("missing")
	assert.Equal(t, []string{"A", "C"}, names(d.All()), "Deleting an unknown name is a no-op")

	d.AddRecord(engine.NewRecord("B"))
	assert.Equal(t, []string{"A", "C", "B"}, names(d.All()), "Re-added record goes to the end")
}

func TestDirectory_String(t *testing.T) {
	d := engine.NewDirectory()
	d.AddRecord(newRecordWithPhones(t, "A", "1111111111"))
	d.AddRecord(engine.NewRecord("B"))

	want := "Contact name: A, phones: 1111111111, birthday: No birthday set\n" +
		"Contact name: B, phones: , birthday: No birthday set"
	assert.Equal(t, want, d.String())
}

// -----------------------------------------------------------------------------
// Upcoming Birthdays
// -----------------------------------------------------------------------------

func TestUpcomingBirthdays(t *testing.T) {
	// Reference: Monday, January 1st, 2024 (leap year)
	ref := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		birthday     string
		included     bool
		occurrence   string
		congratulate string
		daysAway     int
		desc         string
	}{
		{"Today", "01.01.1985", true, "01.01.2024", "01.01.2024", 0, "delta 0 counts as upcoming"},
		{"Wednesday", "03.01.1990", true, "03.01.2024", "03.01.2024", 2, "weekday, no shift"},
		{"Saturday", "06.01.1990", true, "06.01.2024", "08.01.2024", 5, "Saturday moves to Monday"},
		{"Sunday", "07.01.1990", true, "07.01.2024", "08.01.2024", 6, "Sunday moves to Monday"},
		{"Window edge", "08.01.1990", true, "08.01.2024", "08.01.2024", 7, "window is inclusive"},
		{"Past window", "09.01.1990", false, "", "", 0, "delta 8 is outside a 7 day window"},
		{"Late December", "25.12.1990", false, "", "", 0, "same-year projection is in the future, no roll-forward"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := engine.NewDirectory()
			d.AddRecord(newRecordWithBirthday(t, "Contact", tt.birthday))

			got := d.UpcomingBirthdays(ref, 7)
			if !tt.included {
				assert.Empty(t, got, tt.desc)
				return
			}
			require.Len(t, got, 1, tt.desc)
			assert.Equal(t, "Contact", got[0].Name)
			assert.Equal(t, tt.occurrence, got[0].Occurrence.String(), tt.desc)
			assert.Equal(t, tt.congratulate, got[0].CongratulationDate.String(), tt.desc)
			assert.Equal(t, tt.daysAway, got[0].DaysAway, tt.desc)
		})
	}
}

func TestUpcomingBirthdays_RollsIntoNextYear(t *testing.T) {
	// Reference: Saturday, December 28th, 2024
	ref := time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)
	d := engine.NewDirectory()
	d.AddRecord(newRecordWithBirthday(t, "NewYear", "02.01.1990"))

	got := d.UpcomingBirthdays(ref, 7)
	require.Len(t, got, 1)
	assert.Equal(t, "02.01.2025", got[0].Occurrence.String(), "Passed birthdays roll forward exactly one year")
	assert.Equal(t, "02.01.2025", got[0].CongratulationDate.String(), "Jan 2nd 2025 is a Thursday")
	assert.Equal(t, 5, got[0].DaysAway)
}

func TestUpcomingBirthdays_LeapDayOnNonLeapYear(t *testing.T) {
	// Reference: Thursday, February 27th, 2025. Feb 29 projects to Saturday, March 1st.
	ref := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)
	d := engine.NewDirectory()
	d.AddRecord(newRecordWithBirthday(t, "Leapling", "29.02.2000"))

	got := d.UpcomingBirthdays(ref, 7)
	require.Len(t, got, 1)
	assert.Equal(t, "01.03.2025", got[0].Occurrence.String())
	assert.Equal(t, "03.03.2025", got[0].CongratulationDate.String())
	assert.Equal(t, 2, got[0].DaysAway)
}

func TestUpcomingBirthdays_DirectoryOrder(t *testing.T) {
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := engine.NewDirectory()
	d.AddRecord(newRecordWithBirthday(t, "Later", "05.01.1990"))
	d.AddRecord(engine.NewRecord("NoBirthday"))
	d.AddRecord(newRecordWithBirthday(t, "Sooner", "02.01.1990"))

	got := d.UpcomingBirthdays(ref, 7)
	require.Len(t, got, 2)
	assert.Equal(t, "Later", got[0].Name, "Entries follow directory order, not date order")
	assert.Equal(t, "Sooner", got[1].Name)
}

func TestUpcomingBirthdays_IgnoresTimeOfDay(t *testing.T) {
	// Late evening in a zone east of UTC must still count as that local day.
	loc := time.FixedZone("UTC+9", 9*60*60)
	ref := time.Date(2024, 1, 1, 23, 59, 0, 0, loc)
	d := engine.NewDirectory()
	d.AddRecord(newRecordWithBirthday(t, "Today", "01.01.2000"))

	got := d.UpcomingBirthdays(ref, 0)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].DaysAway)
}

func TestUpcomingBirthdays_Empty(t *testing.T) {
	d := engine.NewDirectory()
	assert.Empty(t, d.UpcomingBirthdays(time.Now(), 7))
}
