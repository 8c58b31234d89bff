package engine

// UpcomingBirthday is a derived view of a record whose birthday falls inside a lookahead window.
// It is computed on demand and never stored.
type UpcomingBirthday struct {
	// Name is the directory key of the record.
	Name string

	// Occurrence is the birthday projected onto the reference year (or the next one).
	Occurrence BirthdayDate

	// CongratulationDate is Occurrence, moved to the following Monday when it falls on a weekend.
	CongratulationDate BirthdayDate

	// DaysAway is the distance from the reference date to Occurrence; 0 means today.
	DaysAway int
}
