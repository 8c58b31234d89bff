package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Exporter renders directory data in standard interchange formats.
type Exporter struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the UI to inject localized strings into the event summary.
	FormatSummary func(name string) string
}

// Calendar encodes upcoming birthdays as an iCalendar feed with one all-day event
// per entry, dated on the congratulation day.
func (e *Exporter) Calendar(entries []UpcomingBirthday) ([]byte, error) {
	// An empty window yields the minimal stub calendar.
	if len(entries) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(e.Clock.Now().UTC())

	for _, entry := range entries {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, eventUID(entry), config.ICalDomain))
		event.Props.SetText(config.PropSummary, e.summary(entry.Name))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(entry.CongratulationDate.Time())
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyEvents, len(cal.Children),
	)
	return buf.Bytes(), nil
}

func (e *Exporter) summary(name string) string {
	if e.FormatSummary != nil {
		return e.FormatSummary(name)
	}
	return fmt.Sprintf(config.FallbackSummary, name)
}

// eventUID is deterministic so that re-exporting the same window yields the same events.
func eventUID(entry UpcomingBirthday) string {
	input := fmt.Sprintf(config.FormatHashInput, entry.Name, entry.Occurrence.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// Card encodes a record as a vCard 4.0 with its phones and birthday.
func (e *Exporter) Card(r *Record) ([]byte, error) {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, r.Name())
	for _, p := range r.phones {
		card.AddValue(vcard.FieldTelephone, p.String())
	}
	if bday, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bday.Time().Format(config.DateFormatVCard))
	}
	vcard.ToV4(card)

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return buf.Bytes(), nil
}
