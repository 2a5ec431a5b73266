package feed

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lysyi3m/atomfeed/app/atom"
	"github.com/lysyi3m/atomfeed/app/xmltree"
)

// BuilderError reports a value that cannot be mapped onto a valid Atom
// element, typically a construct that bypassed its New* function.
type BuilderError struct {
	Element string
	Field   string
	Reason  string
}

func (e *BuilderError) Error() string {
	return fmt.Sprintf("cannot build <%s>: %s %s", e.Element, e.Field, e.Reason)
}

func missing(element, field string) *BuilderError {
	return &BuilderError{Element: element, Field: field, Reason: "is missing"}
}

// Builder maps a Feed onto an XML element tree in RFC 4287 element order.
//
// In strict mode an entry without content must carry an alternate link and
// a summary; otherwise the gap is only logged.
type Builder struct {
	Strict bool
}

func NewBuilder(strict bool) *Builder {
	return &Builder{Strict: strict}
}

func (b *Builder) Build(f atom.Feed) (*xmltree.Element, error) {
	if err := requireHead("feed", f.ID(), f.Title(), f.Updated()); err != nil {
		return nil, err
	}

	root := &xmltree.Element{Name: "feed", Namespace: atom.Namespace}
	root.SetAttrIf("xml:lang", f.Lang())

	addHead(root, f.ID(), f.Title(), f.Updated())
	addPeople(root, "author", f.Authors())
	addLinks(root, f.Links())
	addCategories(root, f.Categories())
	addPeople(root, "contributor", f.Contributors())
	addGenerator(root, f.Generator())
	addURI(root, "icon", f.Icon())
	addURI(root, "logo", f.Logo())
	addText(root, "rights", f.Rights())
	addText(root, "subtitle", f.Subtitle())

	entries := f.Entries()
	for i, e := range entries {
		el, err := b.buildEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		root.Append(el)
	}

	slog.Debug("Feed tree built", "id", f.ID().String(), "entries", len(entries))
	return root, nil
}

func (b *Builder) buildEntry(e atom.Entry) (*xmltree.Element, error) {
	if err := requireHead("entry", e.ID(), e.Title(), e.Updated()); err != nil {
		return nil, err
	}
	if e.Content().IsZero() {
		if err := b.checkContentless(e); err != nil {
			return nil, err
		}
	}

	el := xmltree.NewElement("entry")
	addHead(el, e.ID(), e.Title(), e.Updated())
	addPeople(el, "author", e.Authors())
	addLinks(el, e.Links())
	addCategories(el, e.Categories())
	addPeople(el, "contributor", e.Contributors())
	addContent(el, e.Content())
	addDate(el, "published", e.Published())
	addText(el, "rights", e.Rights())
	if src := e.Source(); !src.IsZero() {
		el.Append(buildSource(src))
	}
	addText(el, "summary", e.Summary())
	return el, nil
}

func (b *Builder) checkContentless(e atom.Entry) error {
	var problem *BuilderError
	switch {
	case !e.HasAlternate():
		problem = &BuilderError{Element: "entry", Field: "link", Reason: "with rel=alternate is required when content is absent"}
	case e.Summary().IsZero():
		problem = &BuilderError{Element: "entry", Field: "summary", Reason: "is required when content is absent"}
	default:
		return nil
	}
	if b.Strict {
		return problem
	}
	slog.Warn("Entry without content is incomplete", "id", e.ID().String(), "field", problem.Field, "reason", problem.Reason)
	return nil
}

func buildSource(s atom.Source) *xmltree.Element {
	el := xmltree.NewElement("source")
	addHead(el, s.ID(), s.Title(), s.Updated())
	addPeople(el, "author", s.Authors())
	addLinks(el, s.Links())
	addCategories(el, s.Categories())
	addPeople(el, "contributor", s.Contributors())
	addGenerator(el, s.Generator())
	addURI(el, "icon", s.Icon())
	addURI(el, "logo", s.Logo())
	addText(el, "rights", s.Rights())
	addText(el, "subtitle", s.Subtitle())
	return el
}

func requireHead(element string, id atom.ID, title atom.Text, updated atom.Date) error {
	switch {
	case title.IsZero():
		return missing(element, "title")
	case id.IsZero():
		return missing(element, "id")
	case updated.IsZero():
		return missing(element, "updated")
	}
	return nil
}

// addHead writes title, id and updated, skipping zero values; sources
// may omit all three.
func addHead(parent *xmltree.Element, id atom.ID, title atom.Text, updated atom.Date) {
	addText(parent, "title", title)
	if !id.IsZero() {
		parent.AddText("id", id.String())
	}
	addDate(parent, "updated", updated)
}

func addText(parent *xmltree.Element, name string, t atom.Text) {
	if t.IsZero() {
		return
	}
	el := parent.Append(xmltree.NewElement(name))
	if t.Type() != atom.TextPlain {
		el.SetAttr("type", string(t.Type()))
	}
	if t.Type() == atom.TextXHTML {
		el.Append(xhtmlDiv(t.Content()))
		return
	}
	el.Text = t.Content()
}

func xhtmlDiv(markup string) *xmltree.Element {
	return &xmltree.Element{Name: "div", Namespace: atom.XHTMLNamespace, InnerXML: markup}
}

func addDate(parent *xmltree.Element, name string, d atom.Date) {
	if d.IsZero() {
		return
	}
	parent.AddText(name, d.Render())
}

func addURI(parent *xmltree.Element, name, uri string) {
	if uri == "" {
		return
	}
	parent.AddText(name, uri)
}

func addPeople(parent *xmltree.Element, name string, people []atom.Person) {
	for _, p := range people {
		el := parent.Append(xmltree.NewElement(name))
		el.AddText("name", p.Name())
		if p.URI() != "" {
			el.AddText("uri", p.URI())
		}
		if p.Email() != "" {
			el.AddText("email", p.Email())
		}
	}
}

func addLinks(parent *xmltree.Element, links []atom.Link) {
	for _, l := range links {
		el := parent.Append(xmltree.NewElement("link"))
		el.SetAttr("href", l.Href())
		el.SetAttrIf("rel", l.Rel())
		el.SetAttrIf("type", l.Type())
		el.SetAttrIf("hreflang", l.Hreflang())
		el.SetAttrIf("title", l.Title())
		if l.Length() > 0 {
			el.SetAttr("length", strconv.FormatInt(l.Length(), 10))
		}
	}
}

func addCategories(parent *xmltree.Element, categories []atom.Category) {
	for _, c := range categories {
		parent.Append(xmltree.NewElement("category")).
			SetAttr("term", c.Term()).
			SetAttrIf("scheme", c.Scheme()).
			SetAttrIf("label", c.Label())
	}
}

func addGenerator(parent *xmltree.Element, g atom.Generator) {
	if g.IsZero() {
		return
	}
	parent.AddText("generator", g.Name()).
		SetAttrIf("uri", g.URI()).
		SetAttrIf("version", g.Version())
}

func addContent(parent *xmltree.Element, c atom.Content) {
	if c.IsZero() {
		return
	}
	el := parent.Append(xmltree.NewElement("content"))
	if c.Type() != string(atom.TextPlain) {
		el.SetAttrIf("type", c.Type())
	}
	switch {
	case c.OutOfLine():
		el.SetAttr("src", c.Src())
	case c.Type() == string(atom.TextXHTML):
		el.Append(xhtmlDiv(c.Body()))
	case c.XML():
		el.InnerXML = c.Body()
	case c.Base64():
		el.Text = base64.StdEncoding.EncodeToString([]byte(c.Body()))
	default:
		el.Text = c.Body()
	}
}
