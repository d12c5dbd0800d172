package llm

import "fmt"

// Default generation parameters applied when a task config or caller
// leaves a field unset.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2048
	DefaultTopP        = 0.95
)

// Options enumerates the generation parameters the service supports.
// Unknown parameters have no representation here and therefore cannot
// be smuggled through to the endpoint.
type Options struct {
	Temperature float64 `toml:"temperature" json:"temperature"`
	MaxTokens   int     `toml:"max_tokens" json:"max_tokens"`
	TopP        float64 `toml:"top_p" json:"top_p"`
}

// DefaultOptions returns the baseline generation parameters.
func DefaultOptions() Options {
	return Options{
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TopP:        DefaultTopP,
	}
}

// Merge overwrites non-zero fields from overlay.
func (o *Options) Merge(overlay Options) {
	if overlay.Temperature != 0 {
		o.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		o.MaxTokens = overlay.MaxTokens
	}
	if overlay.TopP != 0 {
		o.TopP = overlay.TopP
	}
}

// Finalize applies defaults to unset fields and validates the result.
func (o *Options) Finalize() error {
	if o.Temperature == 0 {
		o.Temperature = DefaultTemperature
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.TopP == 0 {
		o.TopP = DefaultTopP
	}
	return o.Validate()
}

// Validate checks that all parameters are within endpoint-accepted ranges.
func (o Options) Validate() error {
	if o.Temperature < 0 || o.Temperature > 2 {
		return fmt.Errorf("temperature out of range [0, 2]: %v", o.Temperature)
	}
	if o.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive: %d", o.MaxTokens)
	}
	if o.TopP <= 0 || o.TopP > 1 {
		return fmt.Errorf("top_p out of range (0, 1]: %v", o.TopP)
	}
	return nil
}
