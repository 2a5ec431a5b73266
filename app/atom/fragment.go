package atom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const fragmentOpen = "<fragment>"

// fragment describes markup that is embedded verbatim as the children of a
// single element.
type fragment struct {
	roots      int
	text       bool
	rootOffset int
	root       xml.StartElement
}

// scanFragment reports whether s can be embedded without breaking the
// enclosing document. Namespace prefixes must be declared inside s, as the
// enclosing document only declares a default namespace.
func scanFragment(s string) (fragment, error) {
	var f fragment
	d := xml.NewDecoder(strings.NewReader(fragmentOpen + s + "</fragment>"))

	var stack []xml.Name
	var scopes []map[string]bool
	closed := false
	for {
		offset := int(d.InputOffset())
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return f, fmt.Errorf("not well-formed: %w", err)
		}
		if closed {
			return f, errors.New("not well-formed: markup after fragment end")
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			scope := make(map[string]bool)
			for _, a := range tok.Attr {
				if a.Name.Space == "xmlns" {
					scope[a.Name.Local] = true
				}
			}
			scopes = append(scopes, scope)
			if !declared(scopes, tok.Name.Space) {
				return f, fmt.Errorf("undeclared namespace prefix %q on <%s:%s>", tok.Name.Space, tok.Name.Space, tok.Name.Local)
			}
			for _, a := range tok.Attr {
				if a.Name.Space != "xmlns" && !declared(scopes, a.Name.Space) {
					return f, fmt.Errorf("undeclared namespace prefix %q on attribute %s:%s", a.Name.Space, a.Name.Space, a.Name.Local)
				}
			}
			if len(stack) == 1 {
				f.roots++
				if f.roots == 1 {
					f.rootOffset = offset - len(fragmentOpen)
					f.root = tok.Copy()
				}
			}
			stack = append(stack, tok.Name)
		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1] != tok.Name {
				return f, fmt.Errorf("not well-formed: unexpected end element </%s>", tok.Name.Local)
			}
			stack = stack[:len(stack)-1]
			scopes = scopes[:len(scopes)-1]
			if len(stack) == 0 {
				closed = true
			}
		case xml.CharData:
			if len(stack) == 1 && strings.TrimSpace(string(tok)) != "" {
				f.text = true
			}
		case xml.ProcInst:
			if strings.EqualFold(tok.Target, "xml") {
				return f, errors.New("XML declaration is not allowed in embedded markup")
			}
		case xml.Directive:
			return f, errors.New("directives are not allowed in embedded markup")
		}
	}
	if !closed {
		return f, errors.New("not well-formed: unterminated fragment")
	}
	return f, nil
}

func declared(scopes []map[string]bool, prefix string) bool {
	switch prefix {
	case "":
		return true
	case "xml":
		return true
	case "xmlns":
		return false
	}
	for i := len(scopes) - 1; i >= 0; i-- {
		if scopes[i][prefix] {
			return true
		}
	}
	return false
}

// checkFragment validates mixed content such as the children of an XHTML
// div.
func checkFragment(s string) error {
	_, err := scanFragment(s)
	return err
}

// checkElement validates s as a single element with optional surrounding
// whitespace and comments. An unprefixed root without its own default
// namespace is given xmlns="" so it does not fall into the namespace of the
// enclosing element.
func checkElement(s string) (string, error) {
	f, err := scanFragment(s)
	if err != nil {
		return "", err
	}
	if f.text {
		return "", errors.New("must be a single element, found text outside it")
	}
	if f.roots != 1 {
		return "", fmt.Errorf("must be a single element, found %d top-level elements", f.roots)
	}
	if f.root.Name.Space != "" {
		return s, nil
	}
	for _, a := range f.root.Attr {
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			return s, nil
		}
	}
	at := f.rootOffset + len("<") + len(f.root.Name.Local)
	return s[:at] + ` xmlns=""` + s[at:], nil
}
