package upy

import (
	"context"
	"fmt"
	"sync"

	"github.com/upyorm/upy/logger"
	"github.com/upyorm/upy/schema"
)

// Registry table models sharing one config
type Registry struct {
	*Config
}

// New initialize a registry with options
func New(opts ...ConfigOption) *Registry {
	config := &Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(config)
		}
	}

	if config.NamingStrategy == nil {
		config.NamingStrategy = schema.NamingStrategy{}
	}

	if config.Logger == nil {
		config.Logger = logger.Default
	}

	if config.cacheStore == nil {
		config.cacheStore = &sync.Map{}
	}

	return &Registry{Config: config}
}

// Table parse model into a table, models are parsed once per registry
func (r *Registry) Table(model interface{}) (*Table, error) {
	s, err := schema.Parse(model, r.cacheStore, r.NamingStrategy)
	if err != nil {
		r.Logger.Error(context.Background(), "failed to parse model %T: %v", model, err)
		return nil, err
	}

	r.Logger.Info(context.Background(), "table %s bound to %s", s.Table, s)
	return &Table{Schema: s, config: r.Config}, nil
}

// MustTable like Table but panics if the model can not be parsed
func (r *Registry) MustTable(model interface{}) *Table {
	table, err := r.Table(model)
	if err != nil {
		panic(err)
	}
	return table
}

// Table a parsed model, the entry point of query building
type Table struct {
	*schema.Schema
	config *Config
}

// TryF field by struct field name or column name
func (table *Table) TryF(name string) (*schema.Field, error) {
	if field := table.LookUpField(name); field != nil {
		return field, nil
	}
	return nil, fmt.Errorf("%w: %s has no field %q", ErrInvalidField, table.Schema.Table, name)
}

// F like TryF but panics on unknown fields, for use with names known at compile time
func (table *Table) F(name string) *schema.Field {
	field, err := table.TryF(name)
	if err != nil {
		panic(err)
	}
	return field
}

// Objects new query builder of the table
func (table *Table) Objects() *QueryBuilder {
	return &QueryBuilder{table: table, strict: true, ctx: context.Background()}
}
