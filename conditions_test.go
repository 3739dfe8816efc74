package upy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upyorm/upy"
	"github.com/upyorm/upy/clause"
	"github.com/upyorm/upy/schema"
)

func TestGenerateConditionGroupByArguments(t *testing.T) {
	id := schema.NewField("id", "users")
	either, err := id.Eq(1).Or(id.Eq(2))
	require.NoError(t, err)

	results := []struct {
		Name    string
		Args    []interface{}
		Default string
		SQL     string
		Params  []interface{}
	}{
		{"default", nil, "true", "true", nil},
		{"empty", nil, "", "", nil},
		{"default ignored", []interface{}{id.Eq(1)}, "true", "users.id = ?", []interface{}{1}},
		{"conditions", []interface{}{id.Eq(1), id.Ne(2)}, "", "users.id = ? AND users.id <> ?", []interface{}{1, 2}},
		{"group first", []interface{}{either, id.Ne(3)}, "", "(users.id = ? OR users.id = ?) AND users.id <> ?", []interface{}{1, 2, 3}},
		{"group last", []interface{}{id.Ne(3), either}, "", "users.id <> ? AND (users.id = ? OR users.id = ?)", []interface{}{3, 1, 2}},
		{"plain", []interface{}{"users.age > 18", clause.Plain("users.deleted_at IS NULL")}, "", "users.age > 18 AND users.deleted_at IS NULL", nil},
		{"expression", []interface{}{clause.NewExpression("users.score > ?", 10)}, "", "users.score > ?", []interface{}{10}},
		{"field", []interface{}{schema.NewField("active", "users"), *schema.NewField("verified", "users")}, "", "users.active AND users.verified", nil},
	}

	for _, result := range results {
		t.Run(result.Name, func(t *testing.T) {
			group, err := upy.GenerateConditionGroupByArguments(result.Args, result.Default)
			require.NoError(t, err)
			assert.Equal(t, result.SQL, group.SQL())
			assert.Equal(t, result.Params, group.Params())
		})
	}
}

func TestGenerateConditionGroupByArgumentsSeedsFromGroup(t *testing.T) {
	id := schema.NewField("id", "users")
	either, err := id.Eq(1).Or(id.Eq(2))
	require.NoError(t, err)

	group, err := upy.GenerateConditionGroupByArguments([]interface{}{either}, "")
	require.NoError(t, err)
	assert.Equal(t, either.SQL(), group.SQL())
	assert.Equal(t, clause.OrOperator, group.LastOperator())
}

func TestGenerateConditionGroupByArgumentsInvalid(t *testing.T) {
	var nilField *schema.Field
	for _, arg := range []interface{}{nil, 1, []string{"a"}, nilField} {
		_, err := upy.GenerateConditionGroupByArguments([]interface{}{arg}, "true")
		assert.True(t, errors.Is(err, upy.ErrInvalidFilterArgument), "%v got %v", arg, err)
	}
}
