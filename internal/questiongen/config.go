package questiongen

// Config controls the behavior of the LLM question source.
type Config struct {
	// MaxTokens is the token budget for the LLM response. A full batch
	// of 20 sentences with translations and hints fits comfortably.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Kept high
	// so repeated sessions on the same topic produce fresh sentences.
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.8,
	}
}
