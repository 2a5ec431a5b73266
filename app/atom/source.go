package atom

// SourceParams describes the feed an entry was copied from. Every field is
// optional.
type SourceParams struct {
	ID           ID
	Title        Text
	Updated      Date
	Authors      []Person
	Categories   []Category
	Contributors []Person
	Links        []Link
	Generator    Generator
	Icon         string
	Logo         string
	Rights       Text
	Subtitle     Text
}

// Source preserves the metadata of an entry's original feed (RFC 4287
// section 4.2.11).
type Source struct {
	common
	generator Generator
	icon      string
	logo      string
	subtitle  Text
	built     bool
}

func NewSource(p SourceParams) (Source, error) {
	s := Source{
		common:    newCommon(p.ID, p.Title, p.Updated, p.Authors, p.Categories, p.Contributors, p.Links, p.Rights),
		generator: p.Generator,
		icon:      p.Icon,
		logo:      p.Logo,
		subtitle:  p.Subtitle,
		built:     true,
	}
	if err := checkCommon("source", &s.common); err != nil {
		return Source{}, err
	}
	if err := checkLinks("source", s.links, true); err != nil {
		return Source{}, err
	}
	if err := checkURI("source", "icon", s.icon); err != nil {
		return Source{}, err
	}
	if err := checkURI("source", "logo", s.logo); err != nil {
		return Source{}, err
	}
	return s, nil
}

func (s Source) Generator() Generator { return s.generator }
func (s Source) Icon() string         { return s.icon }
func (s Source) Logo() string         { return s.logo }
func (s Source) Subtitle() Text       { return s.subtitle }

// IsZero reports whether s was never built.
func (s Source) IsZero() bool { return !s.built }
