package config

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName    = "Go Contacts"
	AppCommand = "go-contacts"
	AppShort   = "Interactive contact and birthday assistant"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdCalendar     = "calendar"
	CmdVCard        = "vcard"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome         = "welcome"
	TKeyPrompt          = "prompt"
	TKeyGoodbye         = "goodbye"
	TKeyHello           = "hello"
	TKeyInvalidCommand  = "invalid_command"
	TKeyMissingArgs     = "err_missing_args"
	TKeyErrorPrefix     = "err_prefix"
	TKeyContactAdded    = "contact_added"
	TKeyContactUpdated  = "contact_updated"
	TKeyContactNotFound = "contact_not_found"
	TKeyContactDeleted  = "contact_deleted"
	TKeyPhoneUpdated    = "phone_updated"
	TKeyPhoneRemoved    = "phone_removed"
	TKeyPhones          = "phones"
	TKeyNoPhones        = "no_phones"
	TKeyBirthdayAdded   = "birthday_added"
	TKeyBirthdayShow    = "birthday_show"
	TKeyNoBirthday      = "no_birthday"
	TKeyUpcomingLine    = "upcoming_line"
	TKeyNoUpcoming      = "no_upcoming"
	TKeyNoContacts      = "no_contacts"
	TKeyInvalidWindow   = "err_invalid_window"
	TKeyHelp            = "help"
	TKeyUnexpectedError = "err_unexpected"
	TKeyEventSummary    = "event_summary"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage   = "en"
	DefaultWindowDays = 7
	PhoneDigits       = 10
	UIDSalt           = "go-contacts-v1-" // Salt for deterministic UID generation
	PhoneSeparator    = "; "
	RecordSeparator   = "\n"
)

// PhoneValidationTag is the go-playground/validator rule for a phone number.
const PhoneValidationTag = "required,len=10,number"

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the only accepted literal for birthdays (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"
	// DateFormatVCard is the basic ISO 8601 date used in vCard BDAY.
	DateFormatVCard = "20060102"
	// DateFormatLog is used for structured log values.
	DateFormatLog = "2006-01-02"

	HoursPerDay = 24
)

// -----------------------------------------------------------------------------
// Record Rendering
// -----------------------------------------------------------------------------

const (
	FormatRecord    = "Contact name: %s, phones: %s, birthday: %s"
	NoBirthdaySet   = "No birthday set"
	FallbackSummary = "Birthday: %s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Engine//EN"
	ICalCalName = "Upcoming Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Error Messages
// -----------------------------------------------------------------------------

const (
	ErrInvalidFormat = "invalid format"
	ErrNotFound      = "not found"
	ErrPhoneFormat   = "Phone must be 10 digits"
	ErrDateFormat    = "Invalid date format. Use DD.MM.YYYY"
	ErrOldPhone      = "Old phone not found"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrVCardEncode   = "failed to encode vCard data"
	ErrReadInput     = "failed to read command input"
	ErrWriteOutput   = "failed to write reply"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, leaving command loop"
	MsgInputClosed   = "Input closed, leaving command loop"
	MsgCommand       = "Command received"
	MsgCommandFailed = "Command failed"
	MsgRecordAdded   = "Record added"
	MsgRecordReplace = "Record replaced"
	MsgRecordDeleted = "Record deleted"
	MsgUpcoming      = "Upcoming birthdays computed"
	MsgWeekendShift  = "Congratulation moved to Monday"
	MsgGenSuccess    = "Calendar generation successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyName      = "name"
	LogKeyDate      = "date"
	LogKeyShifted   = "shifted_to"
	LogKeyWindow    = "window_days"
	LogKeyCount     = "count"
	LogKeyEvents    = "events"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompEngine   = "engine"
	CompCalendar = "calendar"
	CompMain     = "main"
	CompI18n     = "i18n"
)

