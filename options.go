package mathify

import (
	"github.com/riverfjs/mathify-go/internal/types"
)

// Option is a function that configures a Config.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithSkipTags replaces the set of tags never entered.
func WithSkipTags(tags ...string) Option {
	return func(c *Config) {
		c.SkipTags = tags
	}
}

// WithIgnoreClass sets the class pattern that suppresses entry.
func WithIgnoreClass(pattern string) Option {
	return func(c *Config) {
		c.IgnoreClass = pattern
	}
}

// WithProcessClass sets the class pattern that forces entry.
func WithProcessClass(pattern string) Option {
	return func(c *Config) {
		c.ProcessClass = pattern
	}
}

// WithProcessScriptType sets the <script> type treated as math source.
// An empty string disables script handling.
func WithProcessScriptType(scriptType string) Option {
	return func(c *Config) {
		c.ProcessScriptType = scriptType
	}
}

// WithProcessEnvironments toggles whole-run handling of \begin{ text.
func WithProcessEnvironments(enable bool) Option {
	return func(c *Config) {
		c.ProcessEnvironments = enable
	}
}

// WithPreserveOriginalContent toggles the data-*original-content attribute
// on rendered output.
func WithPreserveOriginalContent(enable bool) Option {
	return func(c *Config) {
		c.PreserveOriginalContent = enable
	}
}

// WithNamespace prefixes generated data-* attributes.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithInlineDelimiters replaces the inline delimiter pairs.
func WithInlineDelimiters(pairs ...DelimiterPair) Option {
	return func(c *Config) {
		c.Delimiters.Inline = pairs
	}
}

// WithDisplayDelimiters replaces the display delimiter pairs.
func WithDisplayDelimiters(pairs ...DelimiterPair) Option {
	return func(c *Config) {
		c.Delimiters.Display = pairs
	}
}

// WithDelimiters replaces the whole delimiter configuration.
func WithDelimiters(delims Delimiters) Option {
	return func(c *Config) {
		c.Delimiters = delims
	}
}

// applyOptions applies the given options to the default configuration
// and compiles the result.
func applyOptions(opts ...Option) (*types.Compiled, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Compile()
}
