package atom

import "strings"

// Category is an Atom category element (RFC 4287 section 4.2.2).
type Category struct {
	term   string
	scheme string
	label  string
}

// NewCategory builds a Category. scheme and label are optional.
func NewCategory(term, scheme, label string) (Category, error) {
	if strings.TrimSpace(term) == "" {
		return Category{}, invalid("category", "term", "is required")
	}
	if err := checkURI("category", "scheme", scheme); err != nil {
		return Category{}, err
	}
	return Category{term: term, scheme: scheme, label: label}, nil
}

func (c Category) Term() string   { return c.term }
func (c Category) Scheme() string { return c.scheme }
func (c Category) Label() string  { return c.label }
