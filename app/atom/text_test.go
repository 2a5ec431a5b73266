package atom

import (
	"errors"
	"testing"
)

func TestNewText_DefaultsToPlain(t *testing.T) {
	text, err := NewText("Example Feed", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text.Type() != TextPlain {
		t.Errorf("Expected type 'text', got '%s'", text.Type())
	}
	if text.Content() != "Example Feed" {
		t.Errorf("Expected content 'Example Feed', got '%s'", text.Content())
	}
	if text.IsZero() {
		t.Error("Built text should not be zero")
	}
}

func TestNewText_Types(t *testing.T) {
	tests := []struct {
		name    string
		content string
		typ     TextType
		wantErr bool
	}{
		{"plain", "a < b & c", TextPlain, false},
		{"html", "<p>escaped markup</p>", TextHTML, false},
		{"html not well-formed", "<p>unclosed", TextHTML, false},
		{"xhtml fragment", "<p>Hello <b>World</b></p>", TextXHTML, false},
		{"xhtml text only", "just text", TextXHTML, false},
		{"xhtml unclosed", "<p>unclosed", TextXHTML, true},
		{"xhtml bare ampersand", "fish & chips", TextXHTML, true},
		{"xhtml stray close", "</p>", TextXHTML, true},
		{"unknown type", "x", TextType("markdown"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewText(tt.content, tt.typ)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("Expected ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestText_ZeroValue(t *testing.T) {
	var text Text
	if !text.IsZero() {
		t.Error("Zero text should report IsZero")
	}
	if PlainText("").IsZero() {
		t.Error("Empty plain text is still a built construct")
	}
}
