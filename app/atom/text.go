package atom

// TextType is the type attribute of an Atom Text construct.
type TextType string

const (
	TextPlain TextType = "text"
	TextHTML  TextType = "html"
	TextXHTML TextType = "xhtml"
)

func (t TextType) valid() bool {
	switch t {
	case TextPlain, TextHTML, TextXHTML:
		return true
	}
	return false
}

// Text is an Atom Text construct (RFC 4287 section 3.1), used for titles,
// subtitles, summaries and rights.
type Text struct {
	content string
	typ     TextType
}

// NewText builds a Text construct. An empty typ defaults to TextPlain.
// xhtml content must be a well-formed XML fragment; it is embedded as the
// children of an XHTML div on output.
func NewText(content string, typ TextType) (Text, error) {
	if typ == "" {
		typ = TextPlain
	}
	if !typ.valid() {
		return Text{}, invalid("text", "type", "%q is not one of text, html, xhtml", typ)
	}
	if typ == TextXHTML {
		if err := checkFragment(content); err != nil {
			return Text{}, invalid("text", "content", "%v", err)
		}
	}
	return Text{content: content, typ: typ}, nil
}

// PlainText builds a Text construct of type text, which cannot fail.
func PlainText(content string) Text {
	return Text{content: content, typ: TextPlain}
}

func (t Text) Content() string { return t.content }
func (t Text) Type() TextType  { return t.typ }

// IsZero reports whether t was never built.
func (t Text) IsZero() bool { return t.typ == "" }
