package xmltree

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnsupportedEncoding is returned for encodings without a known IANA
// mapping.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Options controls rendering. The zero value renders pretty-printed UTF-8
// indented by two spaces.
type Options struct {
	Encoding string // IANA charset name
	Compact  bool
	Indent   string
}

// Render serializes root as a complete XML document with a declaration
// naming the output encoding.
//
// Characters the encoding cannot represent are written as numeric
// character references.
func Render(root *Element, opts Options) ([]byte, error) {
	if root == nil {
		return nil, errors.New("xmltree: nil root element")
	}
	enc, name, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="`)
	buf.WriteString(name)
	buf.WriteString(`"?>`)
	buf.WriteString("\n")

	w := &writer{buf: &buf, indent: cmp.Or(opts.Indent, "  ")}
	if err := w.element(root, 0, "", !opts.Compact); err != nil {
		return nil, err
	}

	if enc == nil {
		return buf.Bytes(), nil
	}
	out, err := encoding.HTMLEscapeUnsupported(enc.NewEncoder()).Bytes(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as %s: %w", name, err)
	}
	return out, nil
}

// lookupEncoding returns a nil encoding for UTF-8, which needs no
// transcoding.
func lookupEncoding(name string) (encoding.Encoding, string, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return nil, "UTF-8", nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	if canonical == "UTF-8" {
		return nil, canonical, nil
	}
	return enc, canonical, nil
}

type writer struct {
	buf    *bytes.Buffer
	indent string
}

func (w *writer) element(e *Element, depth int, inheritedNS string, pretty bool) error {
	if !validName(e.Name) {
		return fmt.Errorf("xmltree: invalid element name %q", e.Name)
	}
	if pretty {
		w.writeIndent(depth)
	}
	w.buf.WriteByte('<')
	w.buf.WriteString(e.Name)

	ns := inheritedNS
	if e.Namespace != "" && e.Namespace != inheritedNS {
		ns = e.Namespace
		w.attr("xmlns", ns)
	}

	seen := make(map[string]bool, len(e.Attrs))
	for _, a := range e.Attrs {
		if !validName(a.Name) {
			return fmt.Errorf("xmltree: invalid attribute name %q on <%s>", a.Name, e.Name)
		}
		if a.Name == "xmlns" || strings.HasPrefix(a.Name, "xmlns:") {
			return fmt.Errorf("xmltree: namespace declaration %q on <%s> must use Element.Namespace", a.Name, e.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("xmltree: duplicate attribute %q on <%s>", a.Name, e.Name)
		}
		seen[a.Name] = true
		w.attr(a.Name, a.Value)
	}

	switch {
	case e.textBearing():
		w.buf.WriteByte('>')
		escapeText(w.buf, e.Text)
		w.buf.WriteString(e.InnerXML)
		for _, c := range e.Children {
			if err := w.element(c, 0, ns, false); err != nil {
				return err
			}
		}
		w.closeTag(e.Name)
	case len(e.Children) == 0:
		w.buf.WriteString("/>")
	default:
		w.buf.WriteByte('>')
		if pretty {
			w.buf.WriteByte('\n')
		}
		for _, c := range e.Children {
			if err := w.element(c, depth+1, ns, pretty); err != nil {
				return err
			}
		}
		if pretty {
			w.writeIndent(depth)
		}
		w.closeTag(e.Name)
	}

	if pretty {
		w.buf.WriteByte('\n')
	}
	return nil
}

func (w *writer) attr(name, value string) {
	w.buf.WriteByte(' ')
	w.buf.WriteString(name)
	w.buf.WriteString(`="`)
	xml.EscapeText(w.buf, []byte(value))
	w.buf.WriteByte('"')
}

func (w *writer) closeTag(name string) {
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

func (w *writer) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		w.buf.WriteString(w.indent)
	}
}

// escapeText escapes character data. Line feeds and tabs are kept as is;
// carriage returns become references so parsers do not normalize them away.
func escapeText(buf *bytes.Buffer, s string) {
	for _, r := range s {
		switch {
		case r == '&':
			buf.WriteString("&amp;")
		case r == '<':
			buf.WriteString("&lt;")
		case r == '>':
			buf.WriteString("&gt;")
		case r == '\r':
			buf.WriteString("&#xD;")
		case !isXMLChar(r):
			buf.WriteRune('\uFFFD')
		default:
			buf.WriteRune(r)
		}
	}
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09, r == 0x0A, r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	}
	return r >= 0x10000 && r <= 0x10FFFF
}

// validName accepts ASCII XML names, optionally prefixed.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && c >= '0' && c <= '9':
		case i > 0 && (c == '-' || c == '.' || c == ':'):
		default:
			return false
		}
	}
	return !strings.HasSuffix(name, ":")
}
