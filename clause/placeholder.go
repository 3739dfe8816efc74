package clause

import (
	"strconv"
	"strings"
)

// PlaceholderStyle bind marker syntax of the target driver
type PlaceholderStyle int

const (
	// Question ? markers (mysql, sqlite)
	Question PlaceholderStyle = iota
	// Dollar $1, $2 ... markers (postgres)
	Dollar
	// Format %s markers (DB-API drivers such as psycopg)
	Format
)

func (style PlaceholderStyle) String() string {
	switch style {
	case Dollar:
		return "dollar"
	case Format:
		return "format"
	default:
		return "question"
	}
}

// Rebind rewrites the ? markers of sql into the style's markers.
// Markers inside single quoted literals are left untouched.
//
// With Format markers every literal % is doubled, as DB-API drivers apply %-formatting
// to the whole statement once params are bound. Sql without markers is returned as is,
// those drivers leave it unformatted.
func (style PlaceholderStyle) Rebind(sql string) string {
	if style == Question || CountPlaceholders(sql) == 0 {
		return sql
	}

	var (
		builder strings.Builder
		idx     int
	)
	builder.Grow(len(sql) + 8)

	scanPlaceholders(sql, func(c byte, marker bool) {
		if !marker {
			if c == '%' && style == Format {
				builder.WriteByte('%')
			}
			builder.WriteByte(c)
			return
		}

		idx++
		switch style {
		case Dollar:
			builder.WriteByte('$')
			builder.WriteString(strconv.Itoa(idx))
		case Format:
			builder.WriteString("%s")
		}
	})

	return builder.String()
}

// CountPlaceholders number of ? markers outside single quoted literals
func CountPlaceholders(sql string) (count int) {
	scanPlaceholders(sql, func(_ byte, marker bool) {
		if marker {
			count++
		}
	})
	return
}

func scanPlaceholders(sql string, visit func(c byte, marker bool)) {
	var quoted bool
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case c == '\'':
			quoted = !quoted
		case c == '?' && !quoted:
			visit(c, true)
			continue
		}
		visit(c, false)
	}
}
