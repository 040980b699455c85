package store

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"library/src/internal/book"
)

// codec converts a whole catalog to and from its file representation.
type codec interface {
	name() string
	marshal(books []book.Book) ([]byte, error)
	unmarshal(data []byte) ([]book.Book, error)
}

// codecFor picks the codec from the file extension; JSON unless .yaml/.yml.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) name() string { return "json" }

func (jsonCodec) marshal(books []book.Book) ([]byte, error) {
	if books == nil {
		books = []book.Book{}
	}
	b, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (jsonCodec) unmarshal(data []byte) ([]book.Book, error) {
	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	return books, nil
}

type yamlCodec struct{}

func (yamlCodec) name() string { return "yaml" }

func (yamlCodec) marshal(books []book.Book) ([]byte, error) {
	if books == nil {
		books = []book.Book{}
	}
	return yaml.Marshal(books)
}

func (yamlCodec) unmarshal(data []byte) ([]book.Book, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, errNotSequence
	}
	var books []book.Book
	if err := doc.Content[0].Decode(&books); err != nil {
		return nil, err
	}
	return books, nil
}
