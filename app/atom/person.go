package atom

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Person is an Atom Person construct (RFC 4287 section 3.2), rendered as
// author or contributor.
type Person struct {
	name  string
	uri   string
	email string
}

// NewPerson builds a Person. uri and email are optional.
func NewPerson(name, uri, email string) (Person, error) {
	if strings.TrimSpace(name) == "" {
		return Person{}, invalid("person", "name", "is required")
	}
	if err := checkURI("person", "uri", uri); err != nil {
		return Person{}, err
	}
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return Person{}, invalid("person", "email", "%q is not an address", email)
		}
	}
	return Person{name: name, uri: uri, email: email}, nil
}

func (p Person) Name() string  { return p.name }
func (p Person) URI() string   { return p.uri }
func (p Person) Email() string { return p.email }

// checkURI accepts the empty string as an absent value.
func checkURI(construct, field, s string) error {
	if s == "" {
		return nil
	}
	if strings.TrimSpace(s) != s {
		return invalid(construct, field, "%q has surrounding whitespace", s)
	}
	if _, err := url.Parse(s); err != nil {
		return invalid(construct, field, "%v", err)
	}
	return nil
}
