package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// commandFunc executes one command. Returned errors are turned into a reply by errorReply.
type commandFunc func(args []string) (string, error)

var errMissingArgs = errors.New(config.TKeyMissingArgs)

// invalidWindowError reports a malformed day count for birthdays/calendar.
type invalidWindowError struct {
	value string
}

func (e *invalidWindowError) Error() string { return config.TKeyInvalidWindow + ": " + e.value }

// contactError carries the name that could not be found.
type contactError struct {
	name string
}

func (e *contactError) Error() string { return config.TKeyContactNotFound + ": " + e.name }

func (a *Assistant) commandTable() map[string]commandFunc {
	return map[string]commandFunc{
		config.CmdHello:        a.hello,
		config.CmdHelp:         a.help,
		config.CmdAdd:          a.addContact,
		config.CmdChange:       a.changeContact,
		config.CmdRemovePhone:  a.removePhone,
		config.CmdPhone:        a.showPhone,
		config.CmdAll:          a.showAll,
		config.CmdDelete:       a.deleteContact,
		config.CmdAddBirthday:  a.addBirthday,
		config.CmdShowBirthday: a.showBirthday,
		config.CmdBirthdays:    a.birthdays,
		config.CmdCalendar:     a.calendar,
		config.CmdVCard:        a.vcard,
	}
}

// errorReply is the single place where errors become user-facing text.
func (a *Assistant) errorReply(err error) string {
	var window *invalidWindowError
	var contact *contactError
	switch {
	case errors.Is(err, errMissingArgs):
		return a.GetMsg(config.TKeyMissingArgs)
	case errors.As(err, &contact):
		return a.Msg(config.TKeyContactNotFound, map[string]any{"Name": contact.name})
	case errors.As(err, &window):
		return a.Msg(config.TKeyInvalidWindow, map[string]any{"Value": window.value})
	case errors.Is(err, engine.ErrInvalidFormat), errors.Is(err, engine.ErrNotFound):
		return a.Msg(config.TKeyErrorPrefix, map[string]any{"Message": err.Error()})
	default:
		return a.Msg(config.TKeyUnexpectedError, map[string]any{"Message": err.Error()})
	}
}

func requireArgs(args []string, n int) error {
	if len(args) < n {
		return errMissingArgs
	}
	return nil
}

func (a *Assistant) lookup(name string) (*engine.Record, error) {
	record, ok := a.Directory.Find(name)
	if !ok {
		return nil, &contactError{name: name}
	}
	return record, nil
}

// windowArg reads the optional day count at args[0].
func windowArg(args []string) (int, error) {
	if len(args) == 0 {
		return config.DefaultWindowDays, nil
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 {
		return 0, &invalidWindowError{value: args[0]}
	}
	return days, nil
}

func (a *Assistant) hello(_ []string) (string, error) {
	return a.GetMsg(config.TKeyHello), nil
}

func (a *Assistant) help(_ []string) (string, error) {
	return a.GetMsg(config.TKeyHelp), nil
}

// addContact creates the contact on first use, otherwise appends the phone.
// A new contact is only stored once its phone validated.
func (a *Assistant) addContact(args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	record, exists := a.Directory.Find(name)
	if !exists {
		record = engine.NewRecord(name)
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	if exists {
		return a.GetMsg(config.TKeyContactUpdated), nil
	}
	a.Directory.AddRecord(record)
	return a.GetMsg(config.TKeyContactAdded), nil
}

func (a *Assistant) changeContact(args []string) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	record, err := a.lookup(args[0])
	if err != nil {
		return "", err
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return a.GetMsg(config.TKeyPhoneUpdated), nil
}

func (a *Assistant) removePhone(args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	record, err := a.lookup(args[0])
	if err != nil {
		return "", err
	}
	record.RemovePhone(args[1])
	return a.Msg(config.TKeyPhoneRemoved, map[string]any{"Name": record.Name()}), nil
}

func (a *Assistant) showPhone(args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	record, err := a.lookup(args[0])
	if err != nil {
		return "", err
	}
	phones := record.PhoneList()
	if phones == "" {
		return a.Msg(config.TKeyNoPhones, map[string]any{"Name": record.Name()}), nil
	}
	return a.Msg(config.TKeyPhones, map[string]any{"Name": record.Name(), "Phones": phones}), nil
}

func (a *Assistant) showAll(_ []string) (string, error) {
	if a.Directory.Len() == 0 {
		return a.GetMsg(config.TKeyNoContacts), nil
	}
	return a.Directory.String(), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	record, err := a.lookup(args[0])
	if err != nil {
		return "", err
	}
	a.Directory.Delete(record.Name())
	return a.Msg(config.TKeyContactDeleted, map[string]any{"Name": record.Name()}), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	record, err := a.lookup(args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return a.Msg(config.TKeyBirthdayAdded, map[string]any{"Name": record.Name()}), nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	record, err := a.lookup(args[0])
	if err != nil {
		return "", err
	}
	bday, ok := record.FormattedBirthday()
	if !ok {
		return a.Msg(config.TKeyNoBirthday, map[string]any{"Name": record.Name()}), nil
	}
	return a.Msg(config.TKeyBirthdayShow, map[string]any{"Name": record.Name(), "Birthday": bday}), nil
}

func (a *Assistant) birthdays(args []string) (string, error) {
	days, err := windowArg(args)
	if err != nil {
		return "", err
	}
	upcoming := a.Directory.UpcomingBirthdays(a.Clock.Now(), days)
	if len(upcoming) == 0 {
		return a.GetMsg(config.TKeyNoUpcoming), nil
	}

	lines := make([]string, len(upcoming))
	for i, entry := range upcoming {
		lines[i] = a.Msg(config.TKeyUpcomingLine, map[string]any{
			"Name": entry.Name,
			"Date": entry.CongratulationDate.String(),
		})
	}
	return strings.Join(lines, config.RecordSeparator), nil
}

func (a *Assistant) calendar(args []string) (string, error) {
	days, err := windowArg(args)
	if err != nil {
		return "", err
	}
	data, err := a.Exporter.Calendar(a.Directory.UpcomingBirthdays(a.Clock.Now(), days))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (a *Assistant) vcard(args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	record, err := a.lookup(args[0])
	if err != nil {
		return "", err
	}
	data, err := a.Exporter.Card(record)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
