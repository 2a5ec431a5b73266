package atom

import "strings"

// Generator identifies the agent that produced a feed (RFC 4287 section
// 4.2.4). Its body is plain text, so name and version are strings.
type Generator struct {
	name    string
	uri     string
	version string
}

func NewGenerator(name, uri, version string) (Generator, error) {
	if strings.TrimSpace(name) == "" {
		return Generator{}, invalid("generator", "name", "is required")
	}
	if err := checkURI("generator", "uri", uri); err != nil {
		return Generator{}, err
	}
	return Generator{name: name, uri: uri, version: version}, nil
}

func (g Generator) Name() string    { return g.name }
func (g Generator) URI() string     { return g.uri }
func (g Generator) Version() string { return g.version }

// IsZero reports whether g was never built.
func (g Generator) IsZero() bool { return g.name == "" }
