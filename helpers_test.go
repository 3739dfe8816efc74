package upy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/upyorm/upy"
	"github.com/upyorm/upy/logger"
)

type Record struct {
	ID     int
	Name   string
	Active bool
}

func (Record) TableName() string {
	return "table"
}

func newTable(t *testing.T, opts ...upy.ConfigOption) *upy.Table {
	t.Helper()

	registry := upy.New(append([]upy.ConfigOption{upy.WithLogger(logger.Discard)}, opts...)...)
	table, err := registry.Table(&Record{})
	require.NoError(t, err)
	return table
}
