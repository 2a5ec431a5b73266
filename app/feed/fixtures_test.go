package feed

import (
	"testing"
	"time"

	"github.com/lysyi3m/atomfeed/app/atom"
)

var testUpdated = must(atom.NewDate(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))

// must unwraps constructor results in fixtures, which are always valid.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// minimalFeed is a feed with one entry and no optional fields other than
// the feed author.
func minimalFeed(t *testing.T) atom.Feed {
	t.Helper()
	entry := must(atom.NewEntry(atom.EntryParams{
		Title:   atom.PlainText("Hello World"),
		Updated: testUpdated,
	}))
	return must(atom.NewFeed(atom.FeedParams{
		Title:   atom.PlainText("Example Feed"),
		Updated: testUpdated,
		Authors: []atom.Person{must(atom.NewPerson("John Doe", "", ""))},
		Entries: []atom.Entry{entry},
	}))
}

// richFeed sets every field of the feed, its entries and a source.
func richFeed(t *testing.T) atom.Feed {
	t.Helper()
	author := must(atom.NewPerson("John Doe", "http://example.org/~john", "john@example.org"))
	contributor := must(atom.NewPerson("Jane Roe", "", ""))
	category := must(atom.NewCategory("go", "http://example.org/tags", "Go"))
	generator := must(atom.NewGenerator("atomgen", "http://example.org/atomgen", "1.0"))
	alternate := must(atom.NewLink("http://example.org/", atom.LinkAttrs{Type: "text/html", Hreflang: "en"}))
	self := must(atom.NewLink("http://example.org/feed.atom", atom.LinkAttrs{Rel: atom.RelSelf, Type: "application/atom+xml"}))
	enclosure := must(atom.NewLink("http://example.org/a.mp3", atom.LinkAttrs{Rel: atom.RelEnclosure, Type: "audio/mpeg", Length: 1337, Title: "Episode 1"}))
	published := must(atom.NewDate(time.Date(2020, 12, 31, 12, 0, 0, 0, time.UTC)))

	source := must(atom.NewSource(atom.SourceParams{
		ID:        atom.NewID(),
		Title:     atom.PlainText("Origin"),
		Updated:   published,
		Authors:   []atom.Person{contributor},
		Generator: generator,
		Icon:      "http://origin.example.org/icon.png",
		Subtitle:  atom.PlainText("Where it came from"),
	}))

	textEntry := must(atom.NewEntry(atom.EntryParams{
		Title:        must(atom.NewText("<em>Hello</em> & World", atom.TextHTML)),
		Updated:      testUpdated,
		Authors:      []atom.Person{author},
		Categories:   []atom.Category{category},
		Contributors: []atom.Person{contributor},
		Links:        []atom.Link{alternate, enclosure},
		Content:      must(atom.NewContent(atom.ContentParams{Body: "Fish & Chips"})),
		Published:    published,
		Rights:       atom.PlainText("Copyright 2021"),
		Source:       source,
		Summary:      atom.PlainText("A greeting"),
	}))
	xhtmlEntry := must(atom.NewEntry(atom.EntryParams{
		Title:   must(atom.NewText("<p>Hi <b>there</b></p>", atom.TextXHTML)),
		Updated: testUpdated,
		Links:   []atom.Link{alternate},
		Content: must(atom.NewContent(atom.ContentParams{Body: "<p>Body &amp; soul</p>", Type: "xhtml"})),
	}))
	binaryEntry := must(atom.NewEntry(atom.EntryParams{
		Title:   atom.PlainText("Binary"),
		Updated: testUpdated,
		Links:   []atom.Link{alternate},
		Content: must(atom.NewContent(atom.ContentParams{Body: "\x00\x01\x02", Type: "application/octet-stream"})),
		Summary: atom.PlainText("Three bytes"),
	}))
	remoteEntry := must(atom.NewEntry(atom.EntryParams{
		Title:   atom.PlainText("Remote"),
		Updated: testUpdated,
		Content: must(atom.NewContent(atom.ContentParams{Src: "http://example.org/doc.pdf", Type: "application/pdf"})),
		Summary: atom.PlainText("A document"),
	}))

	return must(atom.NewFeed(atom.FeedParams{
		Title:        atom.PlainText("Example Feed"),
		Updated:      testUpdated,
		Authors:      []atom.Person{author},
		Categories:   []atom.Category{category},
		Contributors: []atom.Person{contributor},
		Generator:    generator,
		Icon:         "http://example.org/icon.png",
		Logo:         "http://example.org/logo.png",
		Links:        []atom.Link{alternate, self},
		Rights:       atom.PlainText("Copyright 2021"),
		Subtitle:     atom.PlainText("A subtitle"),
		Entries:      []atom.Entry{textEntry, xhtmlEntry, binaryEntry, remoteEntry},
		Lang:         "en",
	}))
}
