package upy

import (
	"sync"

	"github.com/upyorm/upy/clause"
	"github.com/upyorm/upy/logger"
	"github.com/upyorm/upy/schema"
)

// Config upy config
type Config struct {
	// NamingStrategy tables, columns naming strategy
	NamingStrategy schema.Namer
	// Logger
	Logger logger.Interface
	// Placeholder bind marker style of built queries
	Placeholder clause.PlaceholderStyle

	cacheStore *sync.Map
}
