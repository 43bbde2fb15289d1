package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSON enables JSON output instead of the text report
	JSON bool

	// ShowBoard includes an ASCII diagram of the position
	ShowBoard bool

	// ShowMoves lists the legal moves of every piece of the side to move
	ShowMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowMoves: true,
	}
}
