// Package menucmd runs the interactive seven-action menu over a catalog.
package menucmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"library/src/internal/book"
	"library/src/internal/catalog"
	"library/src/internal/config"
	"library/src/internal/liberr"
	"library/src/internal/logging"
	"library/src/internal/prompt"
	"library/src/internal/render"
	"library/src/internal/sanitize"
	"library/src/internal/store"
)

// Title is the menu heading.
const Title = "Personal Library Manager"

// Options lists the menu actions in choice order.
var Options = []string{
	"Add a book",
	"Remove a book",
	"Search for a book",
	"Display all books",
	"Update a book",
	"Display statistics",
	"Exit",
}

// Run opens the configured catalog and runs the menu on cmd's streams until
// the user exits or input ends.
func Run(cmd *cobra.Command, cfg *config.Config) error {
	log := logging.Configure(&logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		NoColor: cfg.NoColor,
		Output:  cmd.ErrOrStderr(),
	})

	st := store.New(cfg.File, store.WithLogger(log))
	if err := st.Check(); err != nil {
		return fmt.Errorf("catalog file %s is unusable: %w", st.Path(), err)
	}
	cat, err := catalog.Open(st, catalog.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info().Str("path", st.Path()).Int("books", cat.Len()).Msg("catalog opened")

	m := New(cat, prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()), render.New(cmd.OutOrStdout(), cfg.NoColor))
	return m.Run()
}

// Menu maps numeric choices to catalog operations.
type Menu struct {
	cat *catalog.Catalog
	in  *prompt.Reader
	out *render.Printer
}

// New returns a Menu over cat.
func New(cat *catalog.Catalog, in *prompt.Reader, out *render.Printer) *Menu {
	return &Menu{cat: cat, in: in, out: out}
}

// Run shows the menu until exit. End of input behaves like choosing exit.
func (m *Menu) Run() error {
	for {
		m.out.Menu(Title, Options)
		choice, err := m.in.Ask("Enter your choice: ")
		if err == nil {
			var quit bool
			quit, err = m.Dispatch(choice)
			if err == nil && quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return m.exit()
		}
		if err != nil {
			return err
		}
	}
}

// Dispatch runs one menu action. It reports quit after a successful exit.
// Catalog outcomes are printed; only input or final-save errors are returned.
func (m *Menu) Dispatch(choice string) (quit bool, err error) {
	switch choice {
	case "1":
		return false, m.add()
	case "2":
		return false, m.remove()
	case "3":
		return false, m.search()
	case "4":
		return false, m.out.Books(m.cat.Books())
	case "5":
		return false, m.update()
	case "6":
		m.out.Statistics(m.cat.Statistics())
		return false, nil
	case "7":
		return true, m.exit()
	default:
		m.out.Failure("Invalid choice! Please try again.")
		return false, nil
	}
}

func (m *Menu) add() error {
	m.out.Heading("Enter book details:")
	var b book.Book
	var err error
	if b.Title, err = m.askText("Title: ", "title"); err != nil {
		return err
	}
	if b.Author, err = m.askText("Author: ", "author"); err != nil {
		return err
	}
	if b.Year, err = m.askYear("Publication Year: "); err != nil {
		return err
	}
	if b.Genre, err = m.askText("Genre: ", "genre"); err != nil {
		return err
	}
	answer, err := m.in.Ask("Have you read this book? (yes/no): ")
	if err != nil {
		return err
	}
	b.Read = book.Affirmative(answer)

	if _, err := m.cat.Add(b); err != nil {
		m.reportMutation(err)
		return nil
	}
	m.out.Success("Book added successfully!")
	return nil
}

// askText repeats the question until the answer is acceptable text.
func (m *Menu) askText(label, field string) (string, error) {
	for {
		answer, err := m.in.Ask(label)
		if err != nil {
			return "", err
		}
		text, err := sanitize.Text(field, answer)
		if err == nil {
			return text, nil
		}
		m.out.Failure("%v", err)
	}
}

// askYear repeats the question until the answer is a whole number.
func (m *Menu) askYear(label string) (int, error) {
	for {
		answer, err := m.in.Ask(label)
		if err != nil {
			return 0, err
		}
		y, err := book.ParseYear(answer)
		if err == nil {
			return y, nil
		}
		m.out.Failure("%v", err)
	}
}

func (m *Menu) remove() error {
	title, err := m.in.Ask("Enter the title of the book to remove: ")
	if err != nil {
		return err
	}
	if _, err := m.cat.Remove(title); err != nil {
		m.reportMutation(err)
		return nil
	}
	m.out.Success("Book removed successfully!")
	return nil
}

func (m *Menu) search() error {
	choice, err := m.in.Ask("Search by (1) Title, (2) Author or (3) Both? Enter choice: ")
	if err != nil {
		return err
	}
	keyword, err := m.in.Ask("Enter the search term: ")
	if err != nil {
		return err
	}
	m.out.Matches(m.cat.Search(keyword, scopeFor(choice)))
	return nil
}

func scopeFor(choice string) catalog.Scope {
	switch choice {
	case "1":
		return catalog.ScopeTitle
	case "2":
		return catalog.ScopeAuthor
	default:
		return catalog.ScopeAny
	}
}

func (m *Menu) update() error {
	title, err := m.in.Ask("Enter the title of the book to update: ")
	if err != nil {
		return err
	}
	current, err := m.cat.Find(title)
	if err != nil {
		m.reportMutation(err)
		return nil
	}

	m.out.Heading("Leave blank to keep the current value.")
	var p book.Patch
	answer, err := m.askText(fmt.Sprintf("New title [%s]: ", current.Title), "title")
	if err != nil {
		return err
	}
	p.Title = book.Text(answer)
	if answer, err = m.askText(fmt.Sprintf("New author [%s]: ", current.Author), "author"); err != nil {
		return err
	}
	p.Author = book.Text(answer)
	if p.Year, err = m.askOptionalYear(fmt.Sprintf("New publication year [%d]: ", current.Year)); err != nil {
		return err
	}
	if answer, err = m.askText(fmt.Sprintf("New genre [%s]: ", current.Genre), "genre"); err != nil {
		return err
	}
	p.Genre = book.Text(answer)
	if answer, err = m.in.Ask(fmt.Sprintf("Have you read this book? (yes/no) [%s]: ", current.Status())); err != nil {
		return err
	}
	p.Read = book.ReadAnswer(answer)

	if _, err := m.cat.Update(title, p); err != nil {
		m.reportMutation(err)
		return nil
	}
	m.out.Success("Book updated successfully!")
	return nil
}

// askOptionalYear is askYear where a blank answer means keep.
func (m *Menu) askOptionalYear(label string) (*int, error) {
	for {
		answer, err := m.in.Ask(label)
		if err != nil {
			return nil, err
		}
		y, err := book.YearAnswer(answer)
		if err == nil {
			return y, nil
		}
		m.out.Failure("%v", err)
	}
}

func (m *Menu) reportMutation(err error) {
	switch {
	case liberr.IsNotFound(err):
		m.out.Warning("Book not found!")
	case liberr.IsNotPersisted(err):
		m.out.Failure("%v", err)
		m.out.Warning("The change may not survive a restart.")
	default:
		m.out.Failure("%v", err)
	}
}

func (m *Menu) exit() error {
	if err := m.cat.Save(); err != nil {
		m.out.Failure("Library could not be saved: %v", err)
		return err
	}
	m.out.Success("Library saved successfully. Goodbye!")
	return nil
}
