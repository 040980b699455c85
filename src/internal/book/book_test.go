package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"library/src/internal/liberr"
)

func TestUnmarshalJSON_Valid(t *testing.T) {
	var b Book
	err := json.Unmarshal([]byte(`{"title":"Dune","author":"Herbert","year":1965,"genre":"SciFi","read":true}`), &b)
	require.NoError(t, err)
	assert.Equal(t, Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "SciFi", Read: true}, b)
}

func TestUnmarshalJSON_StringYear(t *testing.T) {
	// Files edited by older tools may carry the year as a string.
	var b Book
	err := json.Unmarshal([]byte(`{"title":"Emma","author":"Austen","year":" 1815 ","genre":"Novel","read":false}`), &b)
	require.NoError(t, err)
	assert.Equal(t, 1815, b.Year)
}

func TestUnmarshalJSON_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing read":   `{"title":"a","author":"b","year":1,"genre":"c"}`,
		"missing title":  `{"author":"b","year":1,"genre":"c","read":true}`,
		"null year":      `{"title":"a","author":"b","year":null,"genre":"c","read":true}`,
		"word year":      `{"title":"a","author":"b","year":"soon","genre":"c","read":true}`,
		"float year":     `{"title":"a","author":"b","year":19.5,"genre":"c","read":true}`,
		"bool year":      `{"title":"a","author":"b","year":true,"genre":"c","read":true}`,
		"string read":    `{"title":"a","author":"b","year":1,"genre":"c","read":"yes"}`,
		"not an object":  `["a"]`,
		"numeric author": `{"title":"a","author":7,"year":1,"genre":"c","read":true}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			var b Book
			assert.Error(t, json.Unmarshal([]byte(in), &b))
		})
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var books []Book
	in := "- title: Dune\n  author: Herbert\n  year: \"1965\"\n  genre: SciFi\n  read: false\n"
	require.NoError(t, yaml.Unmarshal([]byte(in), &books))
	require.Len(t, books, 1)
	assert.Equal(t, 1965, books[0].Year)

	var b Book
	err := yaml.Unmarshal([]byte("title: x\nauthor: y\ngenre: z\nread: true\n"), &b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing year")

	err = yaml.Unmarshal([]byte("title: x\nauthor: y\nyear: ~\ngenre: z\nread: true\n"), &b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing year")

	require.NoError(t, yaml.Unmarshal([]byte("title: x\nauthor: y\nyear: 2001\ngenre: z\nread: true\n"), &b))
	assert.Equal(t, Book{Title: "x", Author: "y", Year: 2001, Genre: "z", Read: true}, b)

	err = yaml.Unmarshal([]byte("- just\n- a list\n"), &b)
	assert.Error(t, err)
}

func TestParseYear(t *testing.T) {
	y, err := ParseYear(" 2001 ")
	require.NoError(t, err)
	assert.Equal(t, 2001, y)

	_, err = ParseYear("MMI")
	require.Error(t, err)
	assert.True(t, liberr.IsValidationError(err))
}

func TestAffirmative(t *testing.T) {
	for _, in := range []string{"yes", "YES", " y ", "Yes"} {
		assert.True(t, Affirmative(in), in)
	}
	for _, in := range []string{"", "no", "yep", "true", "n"} {
		assert.False(t, Affirmative(in), in)
	}
}

func TestPatchApply(t *testing.T) {
	orig := Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "SciFi", Read: true}

	assert.Equal(t, orig, Patch{}.Apply(orig))
	assert.True(t, Patch{}.Empty())

	year := 1966
	got := Patch{Title: Text("Dune Messiah"), Year: &year}.Apply(orig)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.Equal(t, 1966, got.Year)
	assert.Equal(t, "Herbert", got.Author)
	assert.True(t, got.Read)
}

// The read flag is tri-state in a patch: blank keeps it, an explicit "no" clears it.
func TestReadAnswer_TriState(t *testing.T) {
	orig := Book{Title: "Dune", Read: true}

	assert.Nil(t, ReadAnswer("  "))
	assert.True(t, Patch{Read: ReadAnswer("")}.Apply(orig).Read, "blank must keep read=true")
	assert.False(t, Patch{Read: ReadAnswer("no")}.Apply(orig).Read, "explicit no must clear read")
	assert.True(t, Patch{Read: ReadAnswer("yes")}.Apply(Book{}).Read)
}

func TestYearAnswer(t *testing.T) {
	y, err := YearAnswer("")
	require.NoError(t, err)
	assert.Nil(t, y)

	y, err = YearAnswer("1999")
	require.NoError(t, err)
	require.NotNil(t, y)
	assert.Equal(t, 1999, *y)

	_, err = YearAnswer("next year")
	assert.True(t, liberr.IsValidationError(err))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Read", Book{Read: true}.Status())
	assert.Equal(t, "Unread", Book{}.Status())
}
