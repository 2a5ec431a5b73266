package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/lysyi3m/atomfeed/app/atom"
)

func loadExample(t *testing.T) *Definition {
	t.Helper()
	dir := t.TempDir()
	definition, err := NewLoader(dir).LoadFile(writeDefinition(t, dir, "example.yaml", exampleDefinition))
	if err != nil {
		t.Fatalf("Failed to load definition: %v", err)
	}
	return definition
}

func TestDefinition_Feed(t *testing.T) {
	f, err := loadExample(t).Feed()
	if err != nil {
		t.Fatalf("Failed to convert definition: %v", err)
	}

	if f.ID().String() != "urn:uuid:60a76c80-d399-11d9-b93c-0003939e0af6" {
		t.Errorf("Unexpected feed ID '%s'", f.ID())
	}
	if f.Title().Content() != "Example Feed" {
		t.Errorf("Expected title 'Example Feed', got '%s'", f.Title().Content())
	}
	if f.Subtitle().Type() != atom.TextHTML {
		t.Errorf("Expected html subtitle, got '%s'", f.Subtitle().Type())
	}
	if !f.Updated().Time().Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected updated time %v", f.Updated().Time())
	}
	if f.Lang() != "en" {
		t.Errorf("Expected lang 'en', got '%s'", f.Lang())
	}
	if f.Generator().Version() != "1.0" {
		t.Errorf("Expected generator version '1.0', got '%s'", f.Generator().Version())
	}
	if got := len(f.Links()); got != 2 {
		t.Errorf("Expected 2 links, got %d", got)
	}

	entries := f.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Content().Body() != "Some text." {
		t.Errorf("Expected entry content 'Some text.', got '%s'", entries[0].Content().Body())
	}
	if entries[0].Summary().Content() != "A greeting" {
		t.Errorf("Expected entry summary 'A greeting', got '%s'", entries[0].Summary().Content())
	}

	data, err := NewGenerator(GeneratorOptions{Strict: true}).Run(f)
	if err != nil {
		t.Fatalf("Failed to generate feed: %v", err)
	}
	if err := NewVerifier().Verify(data, f); err != nil {
		t.Errorf("Generated feed failed verification: %v", err)
	}
}

func TestDefinition_DerivesFeedID(t *testing.T) {
	definition := &Definition{
		Name:    "example",
		Title:   &TextDefinition{Content: "Example Feed"},
		Updated: "2021-01-01T00:00:00Z",
		Authors: []PersonDefinition{{Name: "John Doe"}},
	}

	first, err := definition.Feed()
	if err != nil {
		t.Fatalf("Failed to convert definition: %v", err)
	}
	second, err := definition.Feed()
	if err != nil {
		t.Fatalf("Failed to convert definition: %v", err)
	}
	if first.ID().IsZero() {
		t.Fatal("Expected derived feed ID")
	}
	if first.ID() != second.ID() {
		t.Errorf("Expected the same ID on every conversion, got '%s' and '%s'", first.ID(), second.ID())
	}
	if want := atom.NameID(FeedIDPrefix + "example"); first.ID() != want {
		t.Errorf("Expected ID '%s', got '%s'", want, first.ID())
	}

	definition.Name = "other"
	other, err := definition.Feed()
	if err != nil {
		t.Fatalf("Failed to convert definition: %v", err)
	}
	if other.ID() == first.ID() {
		t.Error("Expected feeds with different names to get different IDs")
	}
}

func TestDefinition_RequiresIDs(t *testing.T) {
	tests := []struct {
		name       string
		definition Definition
	}{
		{"feed without id or name", Definition{Title: &TextDefinition{Content: "x"}, Updated: "2021-01-01T00:00:00Z"}},
		{"entry without id", Definition{
			Name:    "example",
			Title:   &TextDefinition{Content: "x"},
			Updated: "2021-01-01T00:00:00Z",
			Authors: []PersonDefinition{{Name: "John Doe"}},
			Entries: []EntryDefinition{{Title: &TextDefinition{Content: "e"}, Updated: "2021-01-01T00:00:00Z"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.definition.Feed()
			var verr *atom.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Construct != "id" && verr.Field != "id" {
				t.Errorf("Expected an id error, got %v", verr)
			}
		})
	}
}

func TestDefinition_TimeFormat(t *testing.T) {
	definition := &Definition{
		Name:       "example",
		Title:      &TextDefinition{Content: "Example Feed"},
		Updated:    "01 Jan 21 00:00 +0000",
		TimeFormat: time.RFC822Z,
	}

	f, err := definition.Feed()
	if err != nil {
		t.Fatalf("Failed to convert definition: %v", err)
	}
	if f.Updated().Render() != "01 Jan 21 00:00 +0000" {
		t.Errorf("Expected RFC 822 rendering, got '%s'", f.Updated().Render())
	}

	definition.TimeFormat = ""
	_, err = definition.Feed()
	var ferr *atom.FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("Expected FormatError with default layout, got %v", err)
	}
}

func TestDefinition_ConstructorErrors(t *testing.T) {
	tests := []struct {
		name       string
		definition Definition
	}{
		{"bad id", Definition{ID: "not-a-uuid", Title: &TextDefinition{Content: "x"}, Updated: "2021-01-01T00:00:00Z"}},
		{"broken xhtml", Definition{Name: "x", Title: &TextDefinition{Type: "xhtml", Content: "<p>"}, Updated: "2021-01-01T00:00:00Z"}},
		{"duplicate alternate", Definition{
			Name:    "x",
			Title:   &TextDefinition{Content: "x"},
			Updated: "2021-01-01T00:00:00Z",
			Links:   []LinkDefinition{{Href: "http://example.org/a"}, {Href: "http://example.org/b"}},
		}},
		{"entry without author", Definition{
			Name:    "x",
			Title:   &TextDefinition{Content: "x"},
			Updated: "2021-01-01T00:00:00Z",
			Entries: []EntryDefinition{{
				ID:      "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a",
				Title:   &TextDefinition{Content: "e"},
				Updated: "2021-01-01T00:00:00Z",
			}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.definition.Feed()
			var verr *atom.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Expected ValidationError, got %v", err)
			}
		})
	}
}
