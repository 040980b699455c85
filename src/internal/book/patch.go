package book

import "strings"

// Patch is a partial Book. A nil field leaves the current value unchanged,
// so "set read to false" and "keep read" are distinct.
type Patch struct {
	Title  *string
	Author *string
	Year   *int
	Genre  *string
	Read   *bool
}

// Apply returns b with every non-nil patch field copied over it.
func (p Patch) Apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.Read != nil {
		b.Read = *p.Read
	}
	return b
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Year == nil && p.Genre == nil && p.Read == nil
}

// Text maps a blank answer to nil (keep) and anything else to a pointer.
func Text(answer string) *string {
	if strings.TrimSpace(answer) == "" {
		return nil
	}
	return &answer
}

// YearAnswer maps a blank answer to nil and otherwise parses a year.
func YearAnswer(answer string) (*int, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, nil
	}
	y, err := ParseYear(answer)
	if err != nil {
		return nil, err
	}
	return &y, nil
}

// ReadAnswer maps a blank answer to nil (keep), and otherwise to Affirmative(answer).
func ReadAnswer(answer string) *bool {
	if strings.TrimSpace(answer) == "" {
		return nil
	}
	v := Affirmative(answer)
	return &v
}
