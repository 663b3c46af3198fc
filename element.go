package thredds

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/jmgilman/go/errors"
)

// An Element is a node of a parsed catalog document. It is the only view of
// the XML the node model relies upon.
type Element interface {
	// Tag returns the local name of the element.
	Tag() string

	// Attr returns the value of the named attribute. Namespaced attributes
	// are looked up by prefix, e.g. "xlink:href".
	Attr(name string) (string, bool)

	// Child returns the first direct child with the given tag or nil.
	Child(tag string) Element

	// Children returns all direct children with the given tag in document
	// order.
	Children(tag string) []Element

	// Text returns the character data of the element.
	Text() string
}

// ParseElement parses an XML document from r and returns its root element.
func ParseElement(r io.Reader) (Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "parsing catalog document")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.CodeInvalidInput, "catalog document has no root element")
	}
	return &xmlElement{el: root}, nil
}

// xmlElement adapts an etree element to Element.
type xmlElement struct {
	el *etree.Element
}

func (e *xmlElement) Tag() string { return e.el.Tag }

func (e *xmlElement) Attr(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func (e *xmlElement) Child(tag string) Element {
	c := e.el.SelectElement(tag)
	if c == nil {
		return nil
	}
	return &xmlElement{el: c}
}

func (e *xmlElement) Children(tag string) []Element {
	var out []Element
	for _, c := range e.el.SelectElements(tag) {
		out = append(out, &xmlElement{el: c})
	}
	return out
}

func (e *xmlElement) Text() string { return strings.TrimSpace(e.el.Text()) }

// attr returns the named attribute of el, or the empty string.
func attr(el Element, name string) string {
	v, _ := el.Attr(name)
	return v
}
