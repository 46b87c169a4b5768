package domain

// OutputFormat controls how command results are rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText prints plain, human-readable lines.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON prints a single JSON document.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// AppSettings holds user preferences.
type AppSettings struct {
	Output  OutputSettings `json:"output"`
	Verbose bool           `json:"verbose"`
}

// OutputSettings configures result rendering.
type OutputSettings struct {
	Format OutputFormat `json:"format"`
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Format: OutputFormatText,
		},
		Verbose: false,
	}
}
