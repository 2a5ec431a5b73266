package feed

import (
	"fmt"
	"log/slog"

	"github.com/lysyi3m/atomfeed/app/atom"
	"github.com/lysyi3m/atomfeed/app/xmltree"
)

type GeneratorOptions struct {
	Encoding string
	Compact  bool
	Strict   bool
}

// Generator renders feeds as Atom documents.
type Generator struct {
	builder *Builder
	render  xmltree.Options
}

func NewGenerator(opts GeneratorOptions) *Generator {
	return &Generator{
		builder: NewBuilder(opts.Strict),
		render:  xmltree.Options{Encoding: opts.Encoding, Compact: opts.Compact},
	}
}

func (g *Generator) Run(f atom.Feed) ([]byte, error) {
	root, err := g.builder.Build(f)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed %s: %w", f.ID(), err)
	}

	data, err := xmltree.Render(root, g.render)
	if err != nil {
		return nil, fmt.Errorf("failed to render feed %s: %w", f.ID(), err)
	}

	slog.Debug("Feed rendered", "id", f.ID().String(), "bytes", len(data))
	return data, nil
}

// WriteFile renders f and atomically replaces path with the result.
func (g *Generator) WriteFile(f atom.Feed, path string) error {
	root, err := g.builder.Build(f)
	if err != nil {
		return fmt.Errorf("failed to build feed %s: %w", f.ID(), err)
	}

	if err := xmltree.Write(root, path, g.render); err != nil {
		return fmt.Errorf("failed to write feed %s: %w", f.ID(), err)
	}

	slog.Debug("Feed written", "id", f.ID().String(), "path", path)
	return nil
}
