package atom

import (
	"mime"
	"strings"
)

// ContentParams describes an entry's content. Body and Src are mutually
// exclusive: Body is inline content, Src references content elsewhere.
type ContentParams struct {
	Body string
	Type string
	Src  string
}

// Content is an Atom content element (RFC 4287 section 4.1.3).
type Content struct {
	body string
	typ  string
	src  string
}

// NewContent builds Content. Type is text, html, xhtml or a MIME media
// type; it defaults to text for inline content.
//
// Inline content of an XML media type must be a single element. When that
// element is unprefixed and declares no default namespace, Body returns it
// with xmlns="" added.
func NewContent(p ContentParams) (Content, error) {
	if p.Body != "" && p.Src != "" {
		return Content{}, invalid("content", "src", "inline body and src are mutually exclusive")
	}
	typ := p.Type
	if typ == "" && p.Src == "" {
		typ = string(TextPlain)
	}
	if typ != "" && !TextType(typ).valid() {
		mediaType, _, err := mime.ParseMediaType(typ)
		if err != nil {
			return Content{}, invalid("content", "type", "%q is neither a text type nor a media type", typ)
		}
		if strings.HasPrefix(mediaType, "multipart/") || strings.HasPrefix(mediaType, "message/") {
			return Content{}, invalid("content", "type", "composite type %q is not allowed", mediaType)
		}
	}
	if p.Src != "" {
		if err := checkURI("content", "src", p.Src); err != nil {
			return Content{}, err
		}
	}
	c := Content{body: p.Body, typ: typ, src: p.Src}
	switch {
	case c.OutOfLine():
	case c.typ == string(TextXHTML):
		if err := checkFragment(c.body); err != nil {
			return Content{}, invalid("content", "body", "%v", err)
		}
	case c.XML():
		body, err := checkElement(c.body)
		if err != nil {
			return Content{}, invalid("content", "body", "%v", err)
		}
		c.body = body
	}
	return c, nil
}

func (c Content) Body() string { return c.body }
func (c Content) Type() string { return c.typ }
func (c Content) Src() string  { return c.src }

// OutOfLine reports whether the content is referenced by src.
func (c Content) OutOfLine() bool { return c.src != "" }

// XML reports whether inline content is embedded as markup rather than
// text: xhtml, or an XML media type.
func (c Content) XML() bool {
	if c.typ == string(TextXHTML) {
		return true
	}
	mediaType := c.mediaType()
	return strings.HasSuffix(mediaType, "+xml") || strings.HasSuffix(mediaType, "/xml")
}

// Base64 reports whether inline content is binary and is base64 encoded
// on output.
func (c Content) Base64() bool {
	if c.OutOfLine() || c.XML() {
		return false
	}
	mediaType := c.mediaType()
	return mediaType != "" && !strings.HasPrefix(mediaType, "text/")
}

func (c Content) mediaType() string {
	if c.typ == "" || TextType(c.typ).valid() {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(c.typ)
	if err != nil {
		return ""
	}
	return mediaType
}

// IsZero reports whether c was never built.
func (c Content) IsZero() bool { return c.typ == "" && c.src == "" }
