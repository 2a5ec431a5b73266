package atom

// EntryParams holds the fields of an entry. Title and Updated are
// required; a zero ID is replaced by a random one.
type EntryParams struct {
	ID           ID
	Title        Text
	Updated      Date
	Authors      []Person
	Categories   []Category
	Contributors []Person
	Links        []Link
	Content      Content
	Published    Date
	Rights       Text
	Source       Source
	Summary      Text
}

// Entry is an Atom entry (RFC 4287 section 4.1.2).
type Entry struct {
	common
	content   Content
	published Date
	source    Source
	summary   Text
}

// NewEntry builds an Entry.
//
// Authors may be left empty when the entry's source carries authors or the
// owning feed does; the latter is checked by NewFeed.
func NewEntry(p EntryParams) (Entry, error) {
	if p.Title.IsZero() {
		return Entry{}, invalid("entry", "title", "is required")
	}
	if p.Updated.IsZero() {
		return Entry{}, invalid("entry", "updated", "is required")
	}
	if p.ID.IsZero() {
		p.ID = NewID()
	}
	e := Entry{
		common:    newCommon(p.ID, p.Title, p.Updated, p.Authors, p.Categories, p.Contributors, p.Links, p.Rights),
		content:   p.Content,
		published: p.Published,
		source:    p.Source,
		summary:   p.Summary,
	}
	if err := checkCommon("entry", &e.common); err != nil {
		return Entry{}, err
	}
	if err := checkLinks("entry", e.links, false); err != nil {
		return Entry{}, err
	}
	if (e.content.OutOfLine() || e.content.Base64()) && e.summary.IsZero() {
		return Entry{}, invalid("entry", "summary", "is required when content is out-of-line or base64 encoded")
	}
	return e, nil
}

func (e Entry) Content() Content { return e.content }
func (e Entry) Published() Date  { return e.published }
func (e Entry) Source() Source   { return e.source }
func (e Entry) Summary() Text    { return e.summary }

// HasAuthor reports whether the entry names an author itself or through
// its source.
func (e Entry) HasAuthor() bool {
	return len(e.authors) > 0 || len(e.source.authors) > 0
}

// HasAlternate reports whether the entry links to an alternate version.
func (e Entry) HasAlternate() bool {
	return hasAlternate(e.links)
}

// IsZero reports whether e was never built.
func (e Entry) IsZero() bool { return e.id.IsZero() }
