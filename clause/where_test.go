package clause_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/upyorm/upy/clause"
)

func TestWhere(t *testing.T) {
	either, err := clause.NewCondition("users.id = ?", 1).Or(clause.NewCondition("users.id = ?", 2))
	require.NoError(t, err)

	both, err := clause.NewConditionGroup(clause.NewCondition("users.age > ?", 18)).And(either)
	require.NoError(t, err)

	results := []struct {
		Clauses []clause.Interface
		Result  string
		Vars    []interface{}
	}{
		{
			[]clause.Interface{clause.Delete{}, clause.From{Table: "users"}, clause.Where{Group: either}},
			"DELETE FROM users WHERE users.id = ? OR users.id = ?", []interface{}{1, 2},
		},
		{
			[]clause.Interface{clause.Delete{}, clause.From{Table: "users"}, clause.Where{Group: both}},
			"DELETE FROM users WHERE users.age > ? AND (users.id = ? OR users.id = ?)", []interface{}{18, 1, 2},
		},
		{
			[]clause.Interface{clause.Where{}},
			"", nil,
		},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			checkBuildClauses(t, result.Clauses, result.Result, result.Vars)
		})
	}
}
