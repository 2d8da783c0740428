// Package handler translates parsed commands into address book operations.
// Every handler returns a user-facing string: field, book, and argument
// errors are converted here and never escape to the session layer.
package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
)

// ErrMissingArguments indicates a command received too few arguments.
var ErrMissingArguments = errors.New("not enough arguments for this command")

// Fixed messages exchanged with the session layer.
const (
	MsgWelcome  = "Welcome to the assistant!"
	MsgGreeting = "How can I help you?"
	MsgGoodbye  = "Good bye!"

	msgContactAdded   = "Contact added."
	msgContactUpdated = "Contact updated."
	msgContactDeleted = "Contact deleted."
	msgPhoneChanged   = "Phone number changed"
	msgBirthdayAdded  = "Birthday added"
	msgContactMissing = "Contact not found"
	msgNoUpcoming     = "No upcoming birthdays"
	msgBookEmpty      = "Address book is empty"
	msgInvalidCommand = "Invalid command."
)

// helpText lists the commands the assistant understands.
const helpText = `Commands:
  hello                                greet the assistant
  add <name> <phone>                   add a contact or another phone
  change <name> <old> <new>            replace a phone number
  phone <name>                         show a contact's phones
  add-birthday <name> <DD.MM.YYYY>     set a contact's birthday
  show-birthday <name>                 show a contact's birthday
  birthdays                            list upcoming birthdays
  all                                  list every contact
  delete <name>                        remove a contact
  close | exit                         leave the assistant`

// Assistant dispatches commands against a single address book.
type Assistant struct {
	book   *book.Book
	window int
	now    func() time.Time
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithWindow sets the upcoming-birthday window in days.
func WithWindow(days int) Option {
	return func(a *Assistant) { a.window = days }
}

// WithClock overrides the clock used for birthday queries. Tests use this to
// pin "today".
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// New creates an Assistant over b with a 7-day birthday window by default.
func New(b *book.Book, opts ...Option) *Assistant {
	a := &Assistant{book: b, window: 7, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Parse splits a raw input line into a command name and its arguments.
// A blank line yields an empty command.
func Parse(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

// Execute parses and dispatches one input line. The returned quit flag is
// true when the command ends the session.
func (a *Assistant) Execute(line string) (reply string, quit bool) {
	cmd, args := Parse(line)
	switch cmd {
	case "":
		return "", false
	case "close", "exit":
		return MsgGoodbye, true
	case "hello":
		return MsgGreeting, false
	case "help":
		return helpText, false
	case "add":
		return a.AddContact(args), false
	case "change":
		return a.ChangeContact(args), false
	case "phone":
		return a.ShowPhone(args), false
	case "all":
		return a.ShowAll(), false
	case "add-birthday":
		return a.AddBirthday(args), false
	case "show-birthday":
		return a.ShowBirthday(args), false
	case "birthdays":
		return a.Birthdays(), false
	case "delete":
		return a.DeleteContact(args), false
	default:
		return msgInvalidCommand, false
	}
}

// AddContact creates a record for a new name or appends a phone to an
// existing one. Arguments beyond name and phone are ignored.
func (a *Assistant) AddContact(args []string) string {
	if len(args) < 2 {
		return errorMessage(ErrMissingArguments)
	}
	name, phone := args[0], args[1]

	rec, ok := a.book.FindRecord(name)
	msg := msgContactUpdated
	if !ok {
		newRec, err := book.NewRecord(name)
		if err != nil {
			return errorMessage(err)
		}
		a.book.AddRecord(newRec)
		rec, msg = newRec, msgContactAdded
	}

	if err := rec.AddPhone(phone); err != nil {
		return errorMessage(err)
	}
	return msg
}

// ChangeContact replaces oldPhone with newPhone on the named record.
func (a *Assistant) ChangeContact(args []string) string {
	if len(args) < 3 {
		return errorMessage(ErrMissingArguments)
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, ok := a.book.FindRecord(name)
	if !ok {
		return msgContactMissing
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return errorMessage(err)
	}
	return msgPhoneChanged
}

// ShowPhone lists the named record's phone numbers.
func (a *Assistant) ShowPhone(args []string) string {
	if len(args) < 1 {
		return errorMessage(ErrMissingArguments)
	}
	name := args[0]

	rec, ok := a.book.FindRecord(name)
	if !ok {
		return msgContactMissing
	}
	return fmt.Sprintf("Phones for %s: %s", name, strings.Join(rec.Phones(), ", "))
}

// AddBirthday sets the named record's birthday.
func (a *Assistant) AddBirthday(args []string) string {
	if len(args) < 2 {
		return errorMessage(ErrMissingArguments)
	}
	name, birthday := args[0], args[1]

	rec, ok := a.book.FindRecord(name)
	if !ok {
		return msgContactMissing
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return errorMessage(err)
	}
	return msgBirthdayAdded
}

// ShowBirthday renders the named record's birthday summary.
func (a *Assistant) ShowBirthday(args []string) string {
	if len(args) < 1 {
		return errorMessage(ErrMissingArguments)
	}
	rec, ok := a.book.FindRecord(args[0])
	if !ok {
		return msgContactMissing
	}
	return rec.BirthdaySummary()
}

// Birthdays lists records whose birthday falls within the configured window.
func (a *Assistant) Birthdays() string {
	upcoming := a.book.UpcomingBirthdays(a.window, a.now())
	if len(upcoming) == 0 {
		return msgNoUpcoming
	}

	lines := make([]string, 0, len(upcoming)+1)
	lines = append(lines, "Upcoming birthdays:")
	for _, rec := range upcoming {
		bd, _ := rec.Birthday()
		lines = append(lines, fmt.Sprintf("%s: %s", rec.Name(), bd))
	}
	return strings.Join(lines, "\n")
}

// ShowAll renders every record in the book.
func (a *Assistant) ShowAll() string {
	records := a.book.Records()
	if len(records) == 0 {
		return msgBookEmpty
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n")
}

// DeleteContact removes the named record from the book.
func (a *Assistant) DeleteContact(args []string) string {
	if len(args) < 1 {
		return errorMessage(ErrMissingArguments)
	}
	if err := a.book.DeleteRecord(args[0]); err != nil {
		return msgContactMissing
	}
	return msgContactDeleted
}

// errorMessage converts an error kind into its user-facing string.
func errorMessage(err error) string {
	if errors.Is(err, ErrMissingArguments) {
		return "Not enough arguments for this command"
	}
	return fmt.Sprintf("Error: %s", err)
}
