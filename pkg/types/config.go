package types

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// InputDir is the directory scanned for PDF files in batch mode (default "input").
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory Markdown output is written to (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Frontmatter controls whether YAML provenance frontmatter is prepended
	// to each output file (default true).
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`

	// HeadingMaxLen is the maximum length, in runes, for a lone line to be
	// treated as a heading candidate (default 60).
	HeadingMaxLen int `json:"heading_max_len" yaml:"heading_max_len"`
}

// HistoryConfig holds settings for the conversion ledger.
type HistoryConfig struct {
	// Enabled controls whether completed conversions are recorded (default true).
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Config groups all stage configurations.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	History HistoryConfig `json:"history" yaml:"history"`
}
