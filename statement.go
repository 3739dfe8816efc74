package upy

import (
	"context"
	"strings"

	"github.com/upyorm/upy/clause"
)

// Statement sql text and bind vars of a statement under construction
type Statement struct {
	Context context.Context
	Table   string
	Clauses map[string]clause.Interface

	// SQL Builder
	SQL  strings.Builder
	Vars []interface{}
}

// NewStatement statement for table
func NewStatement(ctx context.Context, table string) *Statement {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Statement{Context: ctx, Table: table, Clauses: map[string]clause.Interface{}}
}

// WriteString write string
func (stmt *Statement) WriteString(str string) (int, error) {
	return stmt.SQL.WriteString(str)
}

// WriteByte write byte
func (stmt *Statement) WriteByte(c byte) error {
	return stmt.SQL.WriteByte(c)
}

// AddVar add var as a ? marker, operands write their own sql and params
func (stmt *Statement) AddVar(writer clause.Writer, vars ...interface{}) {
	for idx, v := range vars {
		if idx > 0 {
			writer.WriteString(", ")
		}

		switch v := v.(type) {
		case clause.Operand:
			writer.WriteString(v.SQL())
			stmt.Vars = append(stmt.Vars, v.Params()...)
		default:
			stmt.Vars = append(stmt.Vars, v)
			writer.WriteByte('?')
		}
	}
}

// AddClause add clause, replacing the clause of the same name
func (stmt *Statement) AddClause(v clause.Interface) {
	stmt.Clauses[v.Name()] = v
}

// Build build sql with clauses names
func (stmt *Statement) Build(clauses ...string) {
	var firstClauseWritten bool

	for _, name := range clauses {
		if c, ok := stmt.Clauses[name]; ok {
			if firstClauseWritten {
				stmt.WriteByte(' ')
			}

			firstClauseWritten = true
			c.Build(stmt)
		}
	}
}

// Query built sql and vars
func (stmt *Statement) Query() Query {
	return Query{SQL: stmt.SQL.String(), Params: stmt.Vars}
}
