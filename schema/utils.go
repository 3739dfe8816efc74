package schema

import (
	"reflect"
	"strings"
)

// ParseTagSetting parse `upy:"column:name;-"` style tags into upper-cased keys
func ParseTagSetting(tags reflect.StructTag) map[string]string {
	setting := map[string]string{}
	str := tags.Get("upy")
	if str == "" {
		return setting
	}

	for _, value := range strings.Split(str, ";") {
		if value = strings.TrimSpace(value); value == "" {
			continue
		}
		v := strings.Split(value, ":")
		k := strings.TrimSpace(strings.ToUpper(v[0]))
		if len(v) >= 2 {
			setting[k] = strings.TrimSpace(strings.Join(v[1:], ":"))
		} else {
			setting[k] = k
		}
	}
	return setting
}

func isList(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Slice:
		// []byte is bound as a single value
		return value.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

func listValues(value reflect.Value) []interface{} {
	values := make([]interface{}, value.Len())
	for i := range values {
		values[i] = value.Index(i).Interface()
	}
	return values
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
