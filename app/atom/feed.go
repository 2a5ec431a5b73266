package atom

import "slices"

// FeedParams holds the fields of a feed. Title and Updated are required;
// a zero ID is replaced by a random one.
type FeedParams struct {
	ID           ID
	Title        Text
	Updated      Date
	Authors      []Person
	Categories   []Category
	Contributors []Person
	Generator    Generator
	Icon         string
	Logo         string
	Links        []Link
	Rights       Text
	Subtitle     Text
	Entries      []Entry

	// Lang is the natural language of the feed, emitted as xml:lang.
	Lang string
}

// Feed is an Atom feed document (RFC 4287 section 4.1.1).
type Feed struct {
	common
	generator Generator
	icon      string
	logo      string
	subtitle  Text
	entries   []Entry
	lang      string
}

// NewFeed builds a Feed. Authors are required unless every entry has an
// author of its own or one inherited from its source.
func NewFeed(p FeedParams) (Feed, error) {
	if p.Title.IsZero() {
		return Feed{}, invalid("feed", "title", "is required")
	}
	if p.Updated.IsZero() {
		return Feed{}, invalid("feed", "updated", "is required")
	}
	if p.ID.IsZero() {
		p.ID = NewID()
	}
	f := Feed{
		common:    newCommon(p.ID, p.Title, p.Updated, p.Authors, p.Categories, p.Contributors, p.Links, p.Rights),
		generator: p.Generator,
		icon:      p.Icon,
		logo:      p.Logo,
		subtitle:  p.Subtitle,
		entries:   slices.Clone(p.Entries),
		lang:      p.Lang,
	}
	if err := checkCommon("feed", &f.common); err != nil {
		return Feed{}, err
	}
	if err := checkLinks("feed", f.links, true); err != nil {
		return Feed{}, err
	}
	if err := checkURI("feed", "icon", f.icon); err != nil {
		return Feed{}, err
	}
	if err := checkURI("feed", "logo", f.logo); err != nil {
		return Feed{}, err
	}
	for i, e := range f.entries {
		if e.IsZero() {
			return Feed{}, invalid("feed", "entries", "entry %d was not built with NewEntry", i)
		}
		if len(f.authors) == 0 && !e.HasAuthor() {
			return Feed{}, invalid("feed", "authors", "required because entry %d (%s) has no author", i, e.id)
		}
	}
	return f, nil
}

func (f Feed) Generator() Generator { return f.generator }
func (f Feed) Icon() string         { return f.icon }
func (f Feed) Logo() string         { return f.logo }
func (f Feed) Subtitle() Text       { return f.subtitle }
func (f Feed) Entries() []Entry     { return slices.Clone(f.entries) }
func (f Feed) Lang() string         { return f.lang }
