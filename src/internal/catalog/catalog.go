// Package catalog holds the in-memory book collection and the operations the
// menu drives. Every mutation is written through to the Store before returning.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"library/src/internal/book"
	"library/src/internal/liberr"
	"library/src/internal/logging"
	"library/src/internal/store"
)

// Scope selects which fields Search matches against.
type Scope int

const (
	// ScopeAny matches the title or the author.
	ScopeAny Scope = iota
	ScopeTitle
	ScopeAuthor
)

func (s Scope) String() string {
	switch s {
	case ScopeTitle:
		return "title"
	case ScopeAuthor:
		return "author"
	default:
		return "title or author"
	}
}

// Stats summarizes the read status of the catalog.
type Stats struct {
	Total   int
	Read    int
	Percent float64
}

// Catalog is the ordered collection of books for one session. It is not safe
// for concurrent use.
type Catalog struct {
	books []book.Book
	store store.Store
	log   zerolog.Logger
	fold  cases.Caser
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for catalog events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Catalog) { c.log = l }
}

// Open loads the catalog from st.
func Open(st store.Store, opts ...Option) (*Catalog, error) {
	c := &Catalog{store: st, log: *logging.Default(), fold: cases.Fold()}
	for _, opt := range opts {
		opt(c)
	}
	books, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c.books = books
	return c, nil
}

// Len returns the number of books.
func (c *Catalog) Len() int { return len(c.books) }

// Books returns a copy of the collection in catalog order.
func (c *Catalog) Books() []book.Book { return slices.Clone(c.books) }

// Add appends b as given and returns the new catalog length.
func (c *Catalog) Add(b book.Book) (int, error) {
	c.books = append(c.books, b)
	c.log.Debug().Str("title", b.Title).Int("books", len(c.books)).Msg("book added")
	return len(c.books), c.persist("add")
}

// Find returns the first book whose title equals title, ignoring case.
func (c *Catalog) Find(title string) (book.Book, error) {
	i := c.index(title)
	if i < 0 {
		return book.Book{}, liberr.NewNotFoundError("book", title)
	}
	return c.books[i], nil
}

// Remove deletes the first book whose title equals title, ignoring case.
func (c *Catalog) Remove(title string) (book.Book, error) {
	i := c.index(title)
	if i < 0 {
		c.log.Debug().Str("title", title).Msg("remove: no match")
		return book.Book{}, liberr.NewNotFoundError("book", title)
	}
	removed := c.books[i]
	c.books = slices.Delete(c.books, i, i+1)
	c.log.Debug().Str("title", removed.Title).Int("books", len(c.books)).Msg("book removed")
	return removed, c.persist("remove")
}

// Search returns the books whose scoped fields contain keyword, ignoring case,
// in catalog order. An empty keyword matches every book.
func (c *Catalog) Search(keyword string, scope Scope) []book.Book {
	k := c.fold.String(keyword)
	var out []book.Book
	for _, b := range c.books {
		if c.matches(b, k, scope) {
			out = append(out, b)
		}
	}
	c.log.Debug().Str("keyword", keyword).Stringer("scope", scope).Int("matches", len(out)).Msg("search")
	return out
}

func (c *Catalog) matches(b book.Book, k string, scope Scope) bool {
	inTitle := func() bool { return strings.Contains(c.fold.String(b.Title), k) }
	inAuthor := func() bool { return strings.Contains(c.fold.String(b.Author), k) }
	switch scope {
	case ScopeTitle:
		return inTitle()
	case ScopeAuthor:
		return inAuthor()
	default:
		return inTitle() || inAuthor()
	}
}

// Update applies p to the first book whose title equals title, ignoring case,
// and returns the result. An empty patch changes nothing and skips the save.
func (c *Catalog) Update(title string, p book.Patch) (book.Book, error) {
	i := c.index(title)
	if i < 0 {
		c.log.Debug().Str("title", title).Msg("update: no match")
		return book.Book{}, liberr.NewNotFoundError("book", title)
	}
	if p.Empty() {
		c.log.Debug().Str("title", c.books[i].Title).Msg("update: nothing to change")
		return c.books[i], nil
	}
	c.books[i] = p.Apply(c.books[i])
	c.log.Debug().Str("title", c.books[i].Title).Msg("book updated")
	return c.books[i], c.persist("update")
}

// Statistics counts books and read books. Percent is 0 for an empty catalog.
func (c *Catalog) Statistics() Stats {
	s := Stats{Total: len(c.books)}
	for _, b := range c.books {
		if b.Read {
			s.Read++
		}
	}
	if s.Total > 0 {
		s.Percent = float64(s.Read) / float64(s.Total) * 100
	}
	return s
}

// Save writes the current collection to the store.
func (c *Catalog) Save() error {
	if err := c.store.Save(c.books); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// index compares titles without surrounding whitespace, since files written
// by other tools may keep the padding the prompt strips.
func (c *Catalog) index(title string) int {
	t := c.fold.String(strings.TrimSpace(title))
	return slices.IndexFunc(c.books, func(b book.Book) bool {
		return c.fold.String(strings.TrimSpace(b.Title)) == t
	})
}

// persist saves after a mutation. The mutation stays applied in memory when
// the save fails.
func (c *Catalog) persist(op string) error {
	if err := c.store.Save(c.books); err != nil {
		c.log.Error().Err(err).Str("op", op).Msg("catalog not saved")
		return &liberr.PersistError{Operation: op, Err: err}
	}
	return nil
}
