package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lysyi3m/atomfeed/app/atom"
	"github.com/mmcdole/gofeed"
)

// Verifier reads a rendered document back with a general-purpose feed
// parser and checks it against the feed it was generated from.
type Verifier struct {
	gofeedParser *gofeed.Parser
}

func NewVerifier() *Verifier {
	return &Verifier{
		gofeedParser: gofeed.NewParser(),
	}
}

func (v *Verifier) Verify(data []byte, f atom.Feed) error {
	parsed, err := v.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse rendered feed: %w", err)
	}

	if parsed.FeedType != "atom" {
		return fmt.Errorf("rendered document detected as %q, expected atom", parsed.FeedType)
	}
	// xhtml titles come back as markup, so only text and html are compared.
	title := f.Title()
	if title.Type() != atom.TextXHTML && parsed.Title != strings.TrimSpace(title.Content()) {
		return fmt.Errorf("rendered title %q does not match %q", parsed.Title, title.Content())
	}
	if want := len(f.Entries()); len(parsed.Items) != want {
		return fmt.Errorf("rendered document has %d entries, expected %d", len(parsed.Items), want)
	}
	for i, e := range f.Entries() {
		if got := parsed.Items[i].GUID; got != e.ID().String() {
			return fmt.Errorf("entry %d has id %q, expected %q", i, got, e.ID())
		}
	}
	return nil
}
