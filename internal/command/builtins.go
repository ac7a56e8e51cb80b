package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/rolobook/rolo/internal/book"
)

// now is stubbed in tests to pin the upcoming-birthday reference date.
var now = time.Now

// registerBuiltins wires the full command set into the dispatcher.
func (d *Dispatcher) registerBuiltins() {
	d.register(spec{
		name:    "hello",
		usage:   "hello",
		summary: "Greet the assistant.",
		handler: func([]string, *book.Book) (string, error) {
			return "How can I help you?", nil
		},
	})
	d.register(spec{
		name:    "add",
		usage:   "add <name> <phone>",
		summary: "Add a contact, or another phone to an existing one.",
		minArgs: 2,
		handler: addContact,
	})
	d.register(spec{
		name:    "change",
		usage:   "change <name> <old-phone> <new-phone>",
		summary: "Replace one of a contact's phone numbers.",
		minArgs: 3,
		handler: changePhone,
	})
	d.register(spec{
		name:    "phone",
		usage:   "phone <name>",
		summary: "Show a contact's phone numbers.",
		minArgs: 1,
		handler: showPhones,
	})
	d.register(spec{
		name:    "remove-phone",
		usage:   "remove-phone <name> <phone>",
		summary: "Remove one phone number from a contact.",
		minArgs: 2,
		handler: removePhone,
	})
	d.register(spec{
		name:    "all",
		usage:   "all",
		summary: "List every contact.",
		handler: showAll,
	})
	d.register(spec{
		name:    "add-birthday",
		usage:   "add-birthday <name> <DD.MM.YYYY>",
		summary: "Set a contact's birthday.",
		minArgs: 2,
		handler: addBirthday,
	})
	d.register(spec{
		name:    "show-birthday",
		usage:   "show-birthday <name>",
		summary: "Show a contact's birthday.",
		minArgs: 1,
		handler: showBirthday,
	})
	d.register(spec{
		name:    "birthdays",
		usage:   "birthdays",
		summary: "List birthdays coming up in the next week.",
		handler: d.upcomingBirthdays,
	})
	d.register(spec{
		name:    "delete",
		usage:   "delete <name>",
		summary: "Delete a contact.",
		minArgs: 1,
		handler: deleteContact,
	})
	d.register(spec{
		name:    "help",
		usage:   "help",
		summary: "Show this command list.",
		handler: func([]string, *book.Book) (string, error) {
			return strings.Join(d.Commands(), "\n"), nil
		},
	})
	for _, name := range []string{"close", "exit"} {
		d.register(spec{
			name:    name,
			usage:   name,
			summary: "Leave the assistant.",
			handler: func([]string, *book.Book) (string, error) {
				return "Good bye!", ErrExit
			},
		})
	}
}

// addContact creates the record on first reference and appends the phone.
func addContact(args []string, b *book.Book) (string, error) {
	rec, created, err := b.FindOrCreate(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(args[1]); err != nil {
		if created {
			// Do not keep an empty record from a rejected first add.
			_ = b.Delete(rec.Name())
		}
		return "", err
	}
	if created {
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

func changePhone(args []string, b *book.Book) (string, error) {
	rec, err := b.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Phone number changed.", nil
}

func showPhones(args []string, b *book.Book) (string, error) {
	rec, err := b.Find(args[0])
	if err != nil {
		return "", err
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phone numbers.", rec.Name()), nil
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", rec.Name(), strings.Join(parts, "; ")), nil
}

func removePhone(args []string, b *book.Book) (string, error) {
	rec, err := b.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return "Phone number removed.", nil
}

func showAll(_ []string, b *book.Book) (string, error) {
	recs := b.Records()
	if len(recs) == 0 {
		return "No contacts in the address book.", nil
	}
	lines := make([]string, len(recs))
	for i, rec := range recs {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n"), nil
}

func addBirthday(args []string, b *book.Book) (string, error) {
	rec, err := b.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func showBirthday(args []string, b *book.Book) (string, error) {
	rec, err := b.Find(args[0])
	if err != nil {
		return "", err
	}
	if !rec.HasBirthday() {
		return fmt.Sprintf("No birthday set for %s.", rec.Name()), nil
	}
	return fmt.Sprintf("%s's birthday is %s", rec.Name(), rec.Birthday()), nil
}

// upcomingBirthdays lists greetings for the configured window, weekend
// occurrences shifted to Monday.
func (d *Dispatcher) upcomingBirthdays(_ []string, b *book.Book) (string, error) {
	upcoming := b.Upcoming(now(), d.window)
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := make([]string, len(upcoming))
	for i, g := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", g.Name, g.DateString())
	}
	return strings.Join(lines, "\n"), nil
}

func deleteContact(args []string, b *book.Book) (string, error) {
	if err := b.Delete(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}
