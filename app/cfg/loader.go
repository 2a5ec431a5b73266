package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input and output
	FeedsDir  string `long:"feeds-dir" env:"FEEDS_DIR" default:"./feeds" description:"Directory containing feed definition files"`
	OutputDir string `long:"output-dir" env:"OUTPUT_DIR" default:"./public" description:"Directory the rendered .atom documents are written to"`

	// Rendering
	Encoding string `long:"encoding" env:"ENCODING" default:"UTF-8" description:"Character encoding of the output documents (IANA name)"`
	Compact  bool   `long:"compact" env:"COMPACT" description:"Write documents without indentation"`
	Strict   bool   `long:"strict" env:"STRICT" description:"Reject entries without content that lack an alternate link or summary"`
	Verify   bool   `long:"verify" env:"VERIFY" description:"Parse every written document back and compare it with its definition"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load parses command-line flags and environment variables. It returns
// nil without an error when help was requested.
func Load() (*Cfg, error) {
	return load(nil)
}

func load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedsDir:  raw.FeedsDir,
		OutputDir: raw.OutputDir,
		Encoding:  raw.Encoding,
		Compact:   raw.Compact,
		Strict:    raw.Strict,
		Verify:    raw.Verify,
		Debug:     raw.Debug,
		Version:   GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
