package upy

import (
	"regexp"
	"strings"

	"github.com/upyorm/upy/clause"
	"github.com/upyorm/upy/logger"
)

var dollarPlaceholder = regexp.MustCompile(`\$(\d+)`)

// Query built sql with its bind params, in the order their markers appear
type Query struct {
	SQL         string
	Params      []interface{}
	Placeholder clause.PlaceholderStyle
}

// Explain sql with params inlined, for logs and debugging only
func (q Query) Explain() string {
	switch q.Placeholder {
	case clause.Dollar:
		return logger.ExplainSQL(q.SQL, dollarPlaceholder, "'", q.Params...)
	case clause.Format:
		if len(q.Params) == 0 {
			return q.SQL
		}
		return logger.ExplainSQL(unbindFormat(q.SQL), nil, "'", q.Params...)
	default:
		return logger.ExplainSQL(q.SQL, nil, "'", q.Params...)
	}
}

func (q Query) String() string {
	return q.SQL
}

// unbindFormat turns %s markers back into ? and %% into %
func unbindFormat(sql string) string {
	var builder strings.Builder
	builder.Grow(len(sql))

	for i := 0; i < len(sql); i++ {
		if sql[i] == '%' && i+1 < len(sql) {
			switch sql[i+1] {
			case 's':
				builder.WriteByte('?')
				i++
				continue
			case '%':
				builder.WriteByte('%')
				i++
				continue
			}
		}
		builder.WriteByte(sql[i])
	}
	return builder.String()
}
