package clause_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upyorm/upy"
	"github.com/upyorm/upy/clause"
)

func checkBuildClauses(t *testing.T, clauses []clause.Interface, result string, vars []interface{}) {
	t.Helper()

	var (
		buildNames []string
		stmt       = upy.NewStatement(context.Background(), "users")
	)

	for _, c := range clauses {
		buildNames = append(buildNames, c.Name())
		stmt.AddClause(c)
	}

	stmt.Build(buildNames...)

	assert.Equal(t, result, stmt.SQL.String())
	assert.Equal(t, vars, stmt.Vars)
}
