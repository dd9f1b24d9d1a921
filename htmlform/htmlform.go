// Package htmlform adapts the fields of a parsed HTML document to the
// binding capabilities: CSS selectors resolve to input and textarea
// elements, and each element's attributes back the field's derived
// configuration. Input values are written to the value attribute and
// textarea values to the element's content, so an edited document
// serializes with its current state.
package htmlform

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/eugenmihailescu/myinputmask/binding"
)

// Document wraps a parsed HTML document and hands out stable field handles:
// resolving the same element twice yields the same *Field, which is what
// keeps re-binding idempotent across Resolve calls.
type Document struct {
	doc    *goquery.Document
	fields map[*html.Node]*Field
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc, fields: make(map[*html.Node]*Field)}, nil
}

// Locator returns the selector-resolution capability over this document.
func (d *Document) Locator() binding.Locator {
	return locator{d}
}

// Fields resolves a selector directly to concrete fields, for hosts that
// need more than the Handle surface (names, focus cycling).
func (d *Document) Fields(selector string) []*Field {
	var out []*Field
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if !s.Is("input") && !s.Is("textarea") {
			return
		}
		out = append(out, d.field(s))
	})
	return out
}

func (d *Document) field(s *goquery.Selection) *Field {
	n := s.Get(0)
	f, ok := d.fields[n]
	if !ok {
		f = &Field{sel: s, textarea: s.Is("textarea")}
		f.caret = len(f.Text())
		d.fields[n] = f
	}
	return f
}

// Render serializes the document, including any values written to fields.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.doc.Get(0))
}

type locator struct {
	d *Document
}

func (l locator) Resolve(selector string) []binding.Handle {
	fields := l.d.Fields(selector)
	out := make([]binding.Handle, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

// Field is one input or textarea element, implementing binding.Handle. The
// element owns the text, through its value attribute or its content; the
// caret lives on the handle, since a document carries no selection state of
// its own.
type Field struct {
	sel      *goquery.Selection
	textarea bool
	caret    int
}

// Name returns the field's form name.
func (f *Field) Name() string {
	return f.sel.AttrOr("name", "")
}

func (f *Field) Attr(name string) (string, bool) {
	return f.sel.Attr(name)
}

func (f *Field) SetAttr(name, value string) {
	f.sel.SetAttr(name, value)
}

func (f *Field) Text() string {
	if f.textarea {
		return f.sel.Text()
	}
	return f.sel.AttrOr("value", "")
}

func (f *Field) SetText(s string) {
	if f.textarea {
		f.sel.SetText(s)
	} else {
		f.sel.SetAttr("value", s)
	}
	if f.caret > len(s) {
		f.caret = len(s)
	}
}

func (f *Field) Caret() (int, bool) {
	return f.caret, true
}

func (f *Field) SetCaret(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := len(f.Text()); pos > n {
		pos = n
	}
	f.caret = pos
}

// Selection always reports no active selection; document fields have none.
func (f *Field) Selection() int {
	return 0
}
