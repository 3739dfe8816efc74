package logger

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const tmFmtWithMS = "2006-01-02 15:04:05.999"

func isPrintable(s []byte) bool {
	for _, r := range s {
		if !unicode.IsPrint(rune(r)) {
			return false
		}
	}
	return true
}

// ExplainSQL generate sql string with given parameters, the generated SQL is expected to be used in logger, execute it might introduce a SQL injection vulnerability
//
// With a nil numericPlaceholder, `?` markers outside single-quoted literals are replaced in order.
// A placeholder pattern with a capture group, e.g. `\$(\d+)`, selects vars by 1-based index;
// one without, e.g. `%s`, replaces matches in order.
func ExplainSQL(sql string, numericPlaceholder *regexp.Regexp, escaper string, vars ...interface{}) string {
	values := make([]string, len(vars))
	for idx, v := range vars {
		values[idx] = explainValue(v, escaper)
	}

	if numericPlaceholder == nil {
		var (
			builder strings.Builder
			quoted  bool
			idx     int
		)
		for _, r := range sql {
			switch {
			case r == '\'':
				quoted = !quoted
			case r == '?' && !quoted && idx < len(values):
				builder.WriteString(values[idx])
				idx++
				continue
			}
			builder.WriteRune(r)
		}
		return builder.String()
	}

	idx := 0
	return numericPlaceholder.ReplaceAllStringFunc(sql, func(match string) string {
		if numericPlaceholder.NumSubexp() == 0 {
			if idx >= len(values) {
				return match
			}
			idx++
			return values[idx-1]
		}

		submatch := numericPlaceholder.FindStringSubmatch(match)
		n, err := strconv.Atoi(submatch[1])
		if err != nil || n < 1 || n > len(values) {
			return match
		}
		return values[n-1]
	})
}

func explainValue(v interface{}, escaper string) string {
	if valuer, ok := v.(driver.Valuer); ok {
		v, _ = valuer.Value()
	}

	switch v := v.(type) {
	case nil:
		return "NULL"
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		if v.IsZero() {
			return escaper + "0000-00-00 00:00:00" + escaper
		}
		return escaper + v.Format(tmFmtWithMS) + escaper
	case *time.Time:
		if v == nil {
			return "NULL"
		}
		return explainValue(*v, escaper)
	case []byte:
		if isPrintable(v) {
			return escape(string(v), escaper)
		}
		return escaper + "<binary>" + escaper
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float64, float32:
		return fmt.Sprintf("%.6f", v)
	case string:
		return escape(v, escaper)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return escape(rv.String(), escaper)
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return explainValue(rv.Bytes(), escaper)
	case rv.Kind() == reflect.Ptr && rv.IsNil():
		return "NULL"
	case rv.Kind() == reflect.Ptr:
		return explainValue(rv.Elem().Interface(), escaper)
	}
	return escape(fmt.Sprint(v), escaper)
}

func escape(v, escaper string) string {
	return escaper + strings.ReplaceAll(v, escaper, escaper+escaper) + escaper
}
