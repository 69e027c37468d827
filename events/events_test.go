package events

import (
	"reflect"
	"testing"
)

type recorded struct {
	kind  string
	name  string
	attrs []Attr
	text  string
}

type recorder struct {
	events []recorded
}

func (r *recorder) StartElement(name string, attrs []Attr) {
	r.events = append(r.events, recorded{kind: "start", name: name, attrs: attrs})
}

func (r *recorder) Text(data string) {
	r.events = append(r.events, recorded{kind: "text", text: data})
}

func (r *recorder) EndElement(name string) {
	r.events = append(r.events, recorded{kind: "end", name: name})
}

func TestWalkDocumentOrder(t *testing.T) {
	in := `<vmix><version>24</version><inputs><input key="a1" number="1"/></inputs></vmix>`

	var rec recorder
	if err := Walk(in, &rec); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []recorded{
		{kind: "start", name: "vmix", attrs: []Attr{}},
		{kind: "start", name: "version", attrs: []Attr{}},
		{kind: "text", text: "24"},
		{kind: "end", name: "version"},
		{kind: "start", name: "inputs", attrs: []Attr{}},
		{kind: "start", name: "input", attrs: []Attr{{Name: "key", Value: "a1"}, {Name: "number", Value: "1"}}},
		{kind: "end", name: "input"},
		{kind: "end", name: "inputs"},
		{kind: "end", name: "vmix"},
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("Walk() events = %#v, want %#v", rec.events, want)
	}
}

func TestWalkUnescapesEntities(t *testing.T) {
	in := `<v t="a &amp; b">&lt;hi&gt;</v>`

	var rec recorder
	if err := Walk(in, &rec); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if got := rec.events[0].attrs[0].Value; got != "a & b" {
		t.Errorf("attribute value = %q, want unescaped", got)
	}
	if got := rec.events[1].text; got != "<hi>" {
		t.Errorf("text = %q, want unescaped", got)
	}
}

func TestWalkMalformedInput(t *testing.T) {
	for _, in := range []string{
		"",
		"just text",
		"<vmix><input",
		"<a><b></a></b>",
	} {
		var rec recorder
		if err := Walk(in, &rec); err == nil {
			t.Errorf("Walk(%q) expected error", in)
		}
		if len(rec.events) != 0 {
			t.Errorf("Walk(%q) delivered %d events for bad input", in, len(rec.events))
		}
	}
}
