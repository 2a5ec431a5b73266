package cfg

type Cfg struct {
	// Input and output
	FeedsDir  string
	OutputDir string

	// Rendering
	Encoding string
	Compact  bool
	Strict   bool
	Verify   bool

	// Application metadata
	Debug   bool
	Version string
}
