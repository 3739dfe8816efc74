package clause_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upyorm/upy/clause"
)

func TestRebind(t *testing.T) {
	sql := "UPDATE users SET name = ? WHERE id = ? AND note <> 'why?'"

	results := []struct {
		Style  clause.PlaceholderStyle
		Result string
	}{
		{clause.Question, sql},
		{clause.Dollar, "UPDATE users SET name = $1 WHERE id = $2 AND note <> 'why?'"},
		{clause.Format, "UPDATE users SET name = %s WHERE id = %s AND note <> 'why?'"},
	}

	for _, result := range results {
		t.Run(result.Style.String(), func(t *testing.T) {
			assert.Equal(t, result.Result, result.Style.Rebind(sql))
		})
	}
}

func TestRebindFormatEscapesPercent(t *testing.T) {
	assert.Equal(t,
		"SELECT 1 WHERE name LIKE 'a%%' AND rate = 5%% AND id = %s",
		clause.Format.Rebind("SELECT 1 WHERE name LIKE 'a%' AND rate = 5% AND id = ?"),
	)
	assert.Equal(t, "name LIKE 'a%'", clause.Format.Rebind("name LIKE 'a%'"))
	assert.Equal(t, "name LIKE 'a%?'", clause.Format.Rebind("name LIKE 'a%?'"))
	assert.Equal(t, "name LIKE 'a%' AND id = $1", clause.Dollar.Rebind("name LIKE 'a%' AND id = ?"))
}

func TestCountPlaceholders(t *testing.T) {
	assert.Equal(t, 0, clause.CountPlaceholders("true"))
	assert.Equal(t, 2, clause.CountPlaceholders("a = ? AND b IN (?)"))
	assert.Equal(t, 1, clause.CountPlaceholders("a = ? AND b = 'it''s ?'"))
}
