package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"library/src/internal/liberr"
)

// Book is a single catalog record as stored on disk.
type Book struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Year   int    `yaml:"year" json:"year"`
	Genre  string `yaml:"genre" json:"genre"`
	Read   bool   `yaml:"read" json:"read"`
}

// Status returns the human label for the read flag.
func (b Book) Status() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// wireJSON mirrors Book with every key optional so missing keys can be detected.
type wireJSON struct {
	Title  *string         `json:"title"`
	Author *string         `json:"author"`
	Year   json.RawMessage `json:"year"`
	Genre  *string         `json:"genre"`
	Read   *bool           `json:"read"`
}

// UnmarshalJSON accepts a record only when all five keys are present. The year
// may be a number or a string holding an integer.
func (b *Book) UnmarshalJSON(data []byte) error {
	var w wireJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := requireFields(w.Title != nil, w.Author != nil, len(w.Year) > 0 && string(w.Year) != "null", w.Genre != nil, w.Read != nil); err != nil {
		return err
	}
	year, err := yearFromJSON(w.Year)
	if err != nil {
		return err
	}
	*b = Book{Title: *w.Title, Author: *w.Author, Year: year, Genre: *w.Genre, Read: *w.Read}
	return nil
}

func yearFromJSON(raw json.RawMessage) (int, error) {
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return ParseYear(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, liberr.NewValidationError("year", string(raw), "must be a whole number")
	}
	v, err := n.Int64()
	if err != nil {
		return 0, liberr.NewValidationError("year", n.String(), "must be a whole number")
	}
	return int(v), nil
}

type wireYAML struct {
	Title  *string   `yaml:"title"`
	Author *string   `yaml:"author"`
	Year   yaml.Node `yaml:"year"`
	Genre  *string   `yaml:"genre"`
	Read   *bool     `yaml:"read"`
}

// UnmarshalYAML applies the same presence and coercion rules as UnmarshalJSON.
func (b *Book) UnmarshalYAML(value *yaml.Node) error {
	if value == nil || value.Kind != yaml.MappingNode {
		return errors.New("book must be a mapping")
	}
	var w wireYAML
	if err := value.Decode(&w); err != nil {
		return err
	}
	hasYear := w.Year.Kind == yaml.ScalarNode && w.Year.ShortTag() != "!!null"
	if err := requireFields(w.Title != nil, w.Author != nil, hasYear, w.Genre != nil, w.Read != nil); err != nil {
		return err
	}
	year, err := ParseYear(w.Year.Value)
	if err != nil {
		return err
	}
	*b = Book{Title: *w.Title, Author: *w.Author, Year: year, Genre: *w.Genre, Read: *w.Read}
	return nil
}

func requireFields(title, author, year, genre, read bool) error {
	var missing []string
	for _, f := range []struct {
		name string
		ok   bool
	}{{"title", title}, {"author", author}, {"year", year}, {"genre", genre}, {"read", read}} {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("book is missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseYear coerces raw input to a year. Surrounding whitespace is ignored.
func ParseYear(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, liberr.NewValidationError("year", strconv.Quote(s), "must be a whole number")
	}
	return y, nil
}

// Affirmative reports whether a yes/no answer means yes.
// Anything other than "yes" or "y" (any case) is no.
func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}
