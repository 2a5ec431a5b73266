package atom

import "strings"

// Well-known link relations (RFC 4287 section 4.2.7.2).
const (
	RelAlternate = "alternate"
	RelSelf      = "self"
	RelRelated   = "related"
	RelEnclosure = "enclosure"
	RelVia       = "via"
)

// LinkAttrs holds the optional attributes of a link. Zero values are
// omitted on output.
type LinkAttrs struct {
	Rel      string
	Type     string
	Hreflang string
	Title    string
	Length   int64
}

// Link is an Atom link element (RFC 4287 section 4.2.7).
type Link struct {
	href  string
	attrs LinkAttrs
}

// NewLink builds a Link to href.
func NewLink(href string, attrs LinkAttrs) (Link, error) {
	if href == "" {
		return Link{}, invalid("link", "href", "is required")
	}
	if err := checkURI("link", "href", href); err != nil {
		return Link{}, err
	}
	if attrs.Length < 0 {
		return Link{}, invalid("link", "length", "%d is negative", attrs.Length)
	}
	if strings.ContainsAny(attrs.Rel, " \t\n") {
		return Link{}, invalid("link", "rel", "%q contains whitespace", attrs.Rel)
	}
	return Link{href: href, attrs: attrs}, nil
}

func (l Link) Href() string     { return l.href }
func (l Link) Rel() string      { return l.attrs.Rel }
func (l Link) Type() string     { return l.attrs.Type }
func (l Link) Hreflang() string { return l.attrs.Hreflang }
func (l Link) Title() string    { return l.attrs.Title }
func (l Link) Length() int64    { return l.attrs.Length }

// Relation returns the effective relation; a link without rel is an
// alternate link.
func (l Link) Relation() string {
	if l.attrs.Rel == "" {
		return RelAlternate
	}
	return l.attrs.Rel
}

type alternateKey struct {
	typ      string
	hreflang string
}

// checkLinks enforces one alternate link per (type, hreflang) and, when
// singleSelf is set, at most one self link.
func checkLinks(construct string, links []Link, singleSelf bool) error {
	seen := make(map[alternateKey]bool)
	selfCount := 0
	for _, l := range links {
		switch l.Relation() {
		case RelAlternate:
			key := alternateKey{typ: strings.ToLower(l.Type()), hreflang: strings.ToLower(l.Hreflang())}
			if seen[key] {
				return invalid(construct, "links", "duplicate alternate link for type %q and hreflang %q", l.Type(), l.Hreflang())
			}
			seen[key] = true
		case RelSelf:
			selfCount++
			if singleSelf && selfCount > 1 {
				return invalid(construct, "links", "more than one self link")
			}
		}
	}
	return nil
}

func hasAlternate(links []Link) bool {
	for _, l := range links {
		if l.Relation() == RelAlternate {
			return true
		}
	}
	return false
}
