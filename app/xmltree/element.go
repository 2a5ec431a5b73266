// Package xmltree holds an ordered, generic XML element tree and renders it
// as a document.
//
// Values in the tree are raw strings; Render escapes them exactly once.
package xmltree

// Attr is a single attribute. Name may carry the predeclared xml prefix,
// as in xml:lang.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the tree.
//
// An empty Namespace inherits the parent's default namespace. InnerXML is
// trusted markup written verbatim after Text; elements carrying Text or
// InnerXML are never re-indented.
type Element struct {
	Name      string
	Namespace string
	Attrs     []Attr
	Text      string
	InnerXML  string
	Children  []*Element
}

func NewElement(name string) *Element {
	return &Element{Name: name}
}

// SetAttr appends an attribute and returns e.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetAttrIf appends the attribute only when value is not empty.
func (e *Element) SetAttrIf(name, value string) *Element {
	if value != "" {
		e.SetAttr(name, value)
	}
	return e
}

// Append adds child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// AddText appends a child element holding text and returns it.
func (e *Element) AddText(name, text string) *Element {
	return e.Append(&Element{Name: name, Text: text})
}

// Find returns the first child named name, or nil.
func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns the children named name in document order.
func (e *Element) FindAll(name string) []*Element {
	var found []*Element
	for _, c := range e.Children {
		if c.Name == name {
			found = append(found, c)
		}
	}
	return found
}

// AttrValue returns the value of the named attribute.
func (e *Element) AttrValue(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) textBearing() bool {
	return e.Text != "" || e.InnerXML != ""
}
