package clause_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upyorm/upy/clause"
)

func TestSet(t *testing.T) {
	results := []struct {
		Clauses []clause.Interface
		Result  string
		Vars    []interface{}
	}{
		{
			[]clause.Interface{
				clause.Update{Table: "users"},
				clause.Set{clause.NewExpression("users.id = ?", 1)},
			},
			"UPDATE users SET users.id = ?", []interface{}{1},
		},
		{
			[]clause.Interface{
				clause.Update{Table: "users"},
				clause.Set{clause.NewExpression("users.id = ?", 1), clause.NewExpression("name = upper(name)"), clause.NewExpression("age = coalesce(age, ?) + ?", 0, 1)},
			},
			"UPDATE users SET users.id = ?, name = upper(name), age = coalesce(age, ?) + ?", []interface{}{1, 0, 1},
		},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			checkBuildClauses(t, result.Clauses, result.Result, result.Vars)
		})
	}
}

func TestAssignments(t *testing.T) {
	set := clause.Assignments(map[string]interface{}{
		"name": "jinzhu",
		"age":  18,
	})

	assert.Equal(t, []clause.Assignment{
		{Column: "age", Value: 18},
		{Column: "name", Value: "jinzhu"},
	}, set)
	assert.Empty(t, clause.Assignments(nil))
}
