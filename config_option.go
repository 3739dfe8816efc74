package upy

import (
	"github.com/upyorm/upy/clause"
	"github.com/upyorm/upy/logger"
	"github.com/upyorm/upy/schema"
)

// ConfigOption use functional option for upy Config.
type ConfigOption func(c *Config)

// WithNamingStrategy set schema namer.
func WithNamingStrategy(namer schema.Namer) ConfigOption {
	return func(c *Config) {
		c.NamingStrategy = namer
	}
}

// WithLogger set logger.
func WithLogger(logger logger.Interface) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPlaceholder set bind marker style.
func WithPlaceholder(style clause.PlaceholderStyle) ConfigOption {
	return func(c *Config) {
		c.Placeholder = style
	}
}
