package config

// Report formats accepted by OutputConfig.Format.
var outputFormats = []string{"text", "json"}

// OutputConfig holds settings for the end-of-game report.
type OutputConfig struct {
	Format    string `mapstructure:"format"`     // "text" or "json"
	ShowBoard bool   `mapstructure:"show_board"` // render the final board
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    "text",
		ShowBoard: true,
	}
}

// Validate checks the output format.
func (c *OutputConfig) Validate() error {
	if !contains(outputFormats, c.Format) {
		return invalid("output format", c.Format, outputFormats)
	}
	return nil
}
