// Package events exposes a status document as a flat stream of XML parse
// events. The etree parser owns all lexical concerns (entity unescaping,
// well-formedness checking), so consumers only ever see clean element and
// text events in document order.
package events

import (
	"errors"

	"github.com/beevik/etree"
)

// Attr is one attribute as it appeared on a start tag, in source order.
type Attr struct {
	Name  string
	Value string
}

// Handler consumes the event stream of one document.
type Handler interface {
	StartElement(name string, attrs []Attr)
	Text(data string)
	EndElement(name string)
}

// Walk parses data and replays the whole document to h. On malformed or
// rootless input it returns an error without delivering any events.
func Walk(data string, h Handler) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return err
	}
	root := doc.Root()
	if root == nil {
		return errors.New("document has no root element")
	}
	walk(root, h)
	return nil
}

func walk(el *etree.Element, h Handler) {
	attrs := make([]Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		attrs = append(attrs, Attr{Name: a.Key, Value: a.Value})
	}
	h.StartElement(el.Tag, attrs)
	for _, tok := range el.Child {
		switch c := tok.(type) {
		case *etree.Element:
			walk(c, h)
		case *etree.CharData:
			h.Text(c.Data)
		}
	}
	h.EndElement(el.Tag)
}
