package atom

import "slices"

// common holds the metadata shared by feeds, entries and sources.
type common struct {
	id           ID
	title        Text
	updated      Date
	authors      []Person
	categories   []Category
	contributors []Person
	links        []Link
	rights       Text
}

func (c common) ID() ID                 { return c.id }
func (c common) Title() Text            { return c.title }
func (c common) Updated() Date          { return c.updated }
func (c common) Authors() []Person      { return slices.Clone(c.authors) }
func (c common) Categories() []Category { return slices.Clone(c.categories) }
func (c common) Contributors() []Person { return slices.Clone(c.contributors) }
func (c common) Links() []Link          { return slices.Clone(c.links) }
func (c common) Rights() Text           { return c.rights }
func (c common) HasOwnAuthor() bool     { return len(c.authors) > 0 }

func newCommon(id ID, title Text, updated Date, authors []Person, categories []Category,
	contributors []Person, links []Link, rights Text) common {
	return common{
		id:           id,
		title:        title,
		updated:      updated,
		authors:      slices.Clone(authors),
		categories:   slices.Clone(categories),
		contributors: slices.Clone(contributors),
		links:        slices.Clone(links),
		rights:       rights,
	}
}

func checkPeople(construct, field string, people []Person) error {
	for i, p := range people {
		if p.name == "" {
			return invalid(construct, field, "person %d was not built with NewPerson", i)
		}
	}
	return nil
}

func checkCommon(construct string, c *common) error {
	if err := checkPeople(construct, "authors", c.authors); err != nil {
		return err
	}
	if err := checkPeople(construct, "contributors", c.contributors); err != nil {
		return err
	}
	for i, cat := range c.categories {
		if cat.term == "" {
			return invalid(construct, "categories", "category %d was not built with NewCategory", i)
		}
	}
	for i, l := range c.links {
		if l.href == "" {
			return invalid(construct, "links", "link %d was not built with NewLink", i)
		}
	}
	return nil
}
