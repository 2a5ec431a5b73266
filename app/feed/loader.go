package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lysyi3m/atomfeed/app/atom"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of feed definitions
type Loader struct {
	feedsDir string
	validate *validator.Validate
}

func NewLoader(feedsDir string) *Loader {
	return &Loader{
		feedsDir: feedsDir,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// LoadAll loads every YAML definition in the feeds directory, keyed by
// feed name. A missing directory yields no definitions.
func (l *Loader) LoadAll() (map[string]*Definition, error) {
	definitions := make(map[string]*Definition)

	if _, err := os.Stat(l.feedsDir); os.IsNotExist(err) {
		return definitions, nil
	}

	files, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	ymlFiles, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		definition, err := l.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
		if _, ok := definitions[definition.Name]; ok {
			return nil, fmt.Errorf("duplicate feed name %q in %s", definition.Name, file)
		}

		definitions[definition.Name] = definition
		slog.Debug("Definition loaded", "feed", definition.Name, "entries", len(definition.Entries))
	}

	return definitions, nil
}

// LoadFile loads and validates a single definition. The feed name is the
// file name without its extension.
func (l *Loader) LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var definition Definition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Base(path)
	definition.Name = strings.TrimSuffix(base, filepath.Ext(base))
	l.setDefaults(&definition)

	if err := l.validate.Struct(&definition); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	return &definition, nil
}

func (l *Loader) setDefaults(definition *Definition) {
	if definition.TimeFormat == "" {
		definition.TimeFormat = atom.DefaultTimeFormat
	}
}
