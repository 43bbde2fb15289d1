package config

// BatchConfig holds settings for analysing many positions at once.
type BatchConfig struct {
	// Workers is the number of analysis goroutines; 0 means one per CPU
	Workers int

	// BufferSize is the capacity of the work and result channels; 0 means workers*2
	BufferSize int

	// SuppressDuplicates drops positions already seen in the batch
	SuppressDuplicates bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{}
}
