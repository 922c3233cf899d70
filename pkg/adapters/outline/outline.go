// Package outline provides a ports.TreeDelegate over a YAML outline
// document: a nested list of items, optionally flagged as group headers.
//
// Document format:
//
//	title: Reading list
//	items:
//	  - text: Fiction
//	    group: true
//	    items:
//	      - text: Piranesi
//	      - text: The Dispossessed
//	  - text: Inbox
package outline

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is one outline entry and the represented object for its node.
// Identity is pointer identity: the same *Item keeps the same node across
// rebuilds for as long as the document it belongs to is in place.
type Item struct {
	Text  string  `yaml:"text"`
	Group bool    `yaml:"group,omitempty"`
	Items []*Item `yaml:"items,omitempty"`
}

// Document is a parsed outline file.
type Document struct {
	Title string  `yaml:"title,omitempty"`
	Items []*Item `yaml:"items"`
}

// Parse decodes an outline document. Unknown fields and items without text
// are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse outline: %w", err)
	}
	if err := validateItems(doc.Items); err != nil {
		return nil, err
	}
	return &doc, nil
}

func validateItems(items []*Item) error {
	for _, item := range items {
		if item == nil || item.Text == "" {
			return fmt.Errorf("outline item missing text")
		}
		if err := validateItems(item.Items); err != nil {
			return err
		}
	}
	return nil
}

// Load reads and parses the outline file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open outline: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
