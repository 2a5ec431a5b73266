package feed

import (
	"fmt"

	"github.com/lysyi3m/atomfeed/app/atom"
	"gopkg.in/yaml.v3"
)

// FeedIDPrefix is prepended to the feed name to derive the ID of a feed
// whose definition does not set one.
const FeedIDPrefix = "atomfeed:"

// Definition is a feed described in YAML, one file per feed. Entries must
// carry an id; the feed id defaults to one derived from the feed name.
type Definition struct {
	Name string `yaml:"-"` // Derived from filename (without extension)

	ID           string               `yaml:"id"`
	Title        *TextDefinition      `yaml:"title" validate:"required"`
	Subtitle     *TextDefinition      `yaml:"subtitle"`
	Rights       *TextDefinition      `yaml:"rights"`
	Updated      string               `yaml:"updated" validate:"required"`
	TimeFormat   string               `yaml:"time_format"`
	Lang         string               `yaml:"lang"`
	Icon         string               `yaml:"icon" validate:"omitempty,uri"`
	Logo         string               `yaml:"logo" validate:"omitempty,uri"`
	Authors      []PersonDefinition   `yaml:"authors" validate:"dive"`
	Categories   []CategoryDefinition `yaml:"categories" validate:"dive"`
	Links        []LinkDefinition     `yaml:"links" validate:"dive"`
	Generator    *GeneratorDefinition `yaml:"generator"`
	Contributors []PersonDefinition   `yaml:"contributors" validate:"dive"`
	Entries      []EntryDefinition    `yaml:"entries" validate:"dive"`
}

type EntryDefinition struct {
	ID           string               `yaml:"id" validate:"required"`
	Title        *TextDefinition      `yaml:"title" validate:"required"`
	Updated      string               `yaml:"updated" validate:"required"`
	Published    string               `yaml:"published"`
	Authors      []PersonDefinition   `yaml:"authors" validate:"dive"`
	Contributors []PersonDefinition   `yaml:"contributors" validate:"dive"`
	Categories   []CategoryDefinition `yaml:"categories" validate:"dive"`
	Links        []LinkDefinition     `yaml:"links" validate:"dive"`
	Content      *ContentDefinition   `yaml:"content"`
	Summary      *TextDefinition      `yaml:"summary"`
	Rights       *TextDefinition      `yaml:"rights"`
	Source       *SourceDefinition    `yaml:"source"`
}

type SourceDefinition struct {
	ID           string               `yaml:"id"`
	Title        *TextDefinition      `yaml:"title"`
	Subtitle     *TextDefinition      `yaml:"subtitle"`
	Rights       *TextDefinition      `yaml:"rights"`
	Updated      string               `yaml:"updated"`
	Icon         string               `yaml:"icon" validate:"omitempty,uri"`
	Logo         string               `yaml:"logo" validate:"omitempty,uri"`
	Authors      []PersonDefinition   `yaml:"authors" validate:"dive"`
	Contributors []PersonDefinition   `yaml:"contributors" validate:"dive"`
	Categories   []CategoryDefinition `yaml:"categories" validate:"dive"`
	Links        []LinkDefinition     `yaml:"links" validate:"dive"`
	Generator    *GeneratorDefinition `yaml:"generator"`
}

// TextDefinition accepts either a plain string or a mapping with type and
// content.
type TextDefinition struct {
	Type    string `yaml:"type" validate:"omitempty,oneof=text html xhtml"`
	Content string `yaml:"content" validate:"required"`
}

func (t *TextDefinition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.Type = string(atom.TextPlain)
		t.Content = node.Value
		return nil
	}
	type plain TextDefinition
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*t = TextDefinition(p)
	return nil
}

// ContentDefinition accepts either a plain string, taken as text content,
// or a mapping.
type ContentDefinition struct {
	Type string `yaml:"type"`
	Body string `yaml:"body" validate:"excluded_with=Src"`
	Src  string `yaml:"src" validate:"omitempty,uri"`
}

func (c *ContentDefinition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Type = string(atom.TextPlain)
		c.Body = node.Value
		return nil
	}
	type plain ContentDefinition
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = ContentDefinition(p)
	return nil
}

type PersonDefinition struct {
	Name  string `yaml:"name" validate:"required"`
	URI   string `yaml:"uri" validate:"omitempty,uri"`
	Email string `yaml:"email" validate:"omitempty,email"`
}

type CategoryDefinition struct {
	Term   string `yaml:"term" validate:"required"`
	Scheme string `yaml:"scheme" validate:"omitempty,uri"`
	Label  string `yaml:"label"`
}

type LinkDefinition struct {
	Href     string `yaml:"href" validate:"required"`
	Rel      string `yaml:"rel"`
	Type     string `yaml:"type"`
	Hreflang string `yaml:"hreflang"`
	Title    string `yaml:"title"`
	Length   int64  `yaml:"length" validate:"gte=0"`
}

type GeneratorDefinition struct {
	Name    string `yaml:"name" validate:"required"`
	URI     string `yaml:"uri" validate:"omitempty,uri"`
	Version string `yaml:"version"`
}

// Feed converts the definition into an atom.Feed. Every value passes
// through the atom constructors, so all feed invariants apply.
func (d *Definition) Feed() (atom.Feed, error) {
	c := converter{layout: d.TimeFormat}
	p := atom.FeedParams{
		Icon: d.Icon,
		Logo: d.Logo,
		Lang: d.Lang,
	}

	var err error
	if p.ID, err = d.feedID(); err != nil {
		return atom.Feed{}, err
	}
	if p.Title, err = c.text("title", d.Title); err != nil {
		return atom.Feed{}, err
	}
	if p.Subtitle, err = c.text("subtitle", d.Subtitle); err != nil {
		return atom.Feed{}, err
	}
	if p.Rights, err = c.text("rights", d.Rights); err != nil {
		return atom.Feed{}, err
	}
	if p.Updated, err = c.date("updated", d.Updated); err != nil {
		return atom.Feed{}, err
	}
	if p.Authors, err = c.people("authors", d.Authors); err != nil {
		return atom.Feed{}, err
	}
	if p.Contributors, err = c.people("contributors", d.Contributors); err != nil {
		return atom.Feed{}, err
	}
	if p.Categories, err = c.categories(d.Categories); err != nil {
		return atom.Feed{}, err
	}
	if p.Links, err = c.links(d.Links); err != nil {
		return atom.Feed{}, err
	}
	if p.Generator, err = c.generator(d.Generator); err != nil {
		return atom.Feed{}, err
	}

	for i := range d.Entries {
		entry, err := c.entry(&d.Entries[i])
		if err != nil {
			return atom.Feed{}, fmt.Errorf("entry %d: %w", i, err)
		}
		p.Entries = append(p.Entries, entry)
	}

	return atom.NewFeed(p)
}

// feedID returns the configured ID, or one derived from the feed name so
// that regenerating a feed keeps its identity.
func (d *Definition) feedID() (atom.ID, error) {
	if d.ID != "" {
		return atom.ParseID(d.ID)
	}
	if d.Name == "" {
		return atom.ID{}, &atom.ValidationError{Construct: "feed", Field: "id", Reason: "is required when the feed has no name"}
	}
	return atom.NameID(FeedIDPrefix + d.Name), nil
}

type converter struct {
	layout string
}

func (c converter) entry(d *EntryDefinition) (atom.Entry, error) {
	var p atom.EntryParams
	var err error
	if p.ID, err = atom.ParseID(d.ID); err != nil {
		return atom.Entry{}, err
	}
	if p.Title, err = c.text("title", d.Title); err != nil {
		return atom.Entry{}, err
	}
	if p.Updated, err = c.date("updated", d.Updated); err != nil {
		return atom.Entry{}, err
	}
	if p.Published, err = c.date("published", d.Published); err != nil {
		return atom.Entry{}, err
	}
	if p.Authors, err = c.people("authors", d.Authors); err != nil {
		return atom.Entry{}, err
	}
	if p.Contributors, err = c.people("contributors", d.Contributors); err != nil {
		return atom.Entry{}, err
	}
	if p.Categories, err = c.categories(d.Categories); err != nil {
		return atom.Entry{}, err
	}
	if p.Links, err = c.links(d.Links); err != nil {
		return atom.Entry{}, err
	}
	if p.Summary, err = c.text("summary", d.Summary); err != nil {
		return atom.Entry{}, err
	}
	if p.Rights, err = c.text("rights", d.Rights); err != nil {
		return atom.Entry{}, err
	}
	if d.Content != nil {
		p.Content, err = atom.NewContent(atom.ContentParams{Body: d.Content.Body, Type: d.Content.Type, Src: d.Content.Src})
		if err != nil {
			return atom.Entry{}, err
		}
	}
	if d.Source != nil {
		if p.Source, err = c.source(d.Source); err != nil {
			return atom.Entry{}, fmt.Errorf("source: %w", err)
		}
	}
	return atom.NewEntry(p)
}

func (c converter) source(d *SourceDefinition) (atom.Source, error) {
	p := atom.SourceParams{Icon: d.Icon, Logo: d.Logo}
	var err error
	if d.ID != "" {
		if p.ID, err = atom.ParseID(d.ID); err != nil {
			return atom.Source{}, err
		}
	}
	if p.Title, err = c.text("title", d.Title); err != nil {
		return atom.Source{}, err
	}
	if p.Subtitle, err = c.text("subtitle", d.Subtitle); err != nil {
		return atom.Source{}, err
	}
	if p.Rights, err = c.text("rights", d.Rights); err != nil {
		return atom.Source{}, err
	}
	if p.Updated, err = c.date("updated", d.Updated); err != nil {
		return atom.Source{}, err
	}
	if p.Authors, err = c.people("authors", d.Authors); err != nil {
		return atom.Source{}, err
	}
	if p.Contributors, err = c.people("contributors", d.Contributors); err != nil {
		return atom.Source{}, err
	}
	if p.Categories, err = c.categories(d.Categories); err != nil {
		return atom.Source{}, err
	}
	if p.Links, err = c.links(d.Links); err != nil {
		return atom.Source{}, err
	}
	if p.Generator, err = c.generator(d.Generator); err != nil {
		return atom.Source{}, err
	}
	return atom.NewSource(p)
}

func (c converter) text(field string, d *TextDefinition) (atom.Text, error) {
	if d == nil {
		return atom.Text{}, nil
	}
	t, err := atom.NewText(d.Content, atom.TextType(d.Type))
	if err != nil {
		return atom.Text{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

func (c converter) date(field, s string) (atom.Date, error) {
	if s == "" {
		return atom.Date{}, nil
	}
	d, err := atom.ParseDate(s, c.layout)
	if err != nil {
		return atom.Date{}, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func (c converter) people(field string, defs []PersonDefinition) ([]atom.Person, error) {
	people := make([]atom.Person, 0, len(defs))
	for i, d := range defs {
		p, err := atom.NewPerson(d.Name, d.URI, d.Email)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		people = append(people, p)
	}
	return people, nil
}

func (c converter) categories(defs []CategoryDefinition) ([]atom.Category, error) {
	categories := make([]atom.Category, 0, len(defs))
	for i, d := range defs {
		cat, err := atom.NewCategory(d.Term, d.Scheme, d.Label)
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (c converter) links(defs []LinkDefinition) ([]atom.Link, error) {
	links := make([]atom.Link, 0, len(defs))
	for i, d := range defs {
		l, err := atom.NewLink(d.Href, atom.LinkAttrs{
			Rel:      d.Rel,
			Type:     d.Type,
			Hreflang: d.Hreflang,
			Title:    d.Title,
			Length:   d.Length,
		})
		if err != nil {
			return nil, fmt.Errorf("links[%d]: %w", i, err)
		}
		links = append(links, l)
	}
	return links, nil
}

func (c converter) generator(d *GeneratorDefinition) (atom.Generator, error) {
	if d == nil {
		return atom.Generator{}, nil
	}
	return atom.NewGenerator(d.Name, d.URI, d.Version)
}
