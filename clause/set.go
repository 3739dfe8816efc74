package clause

import "sort"

// Set assignments of an update clause, each one a fragment such as `users.name = ?`
type Set []Expression

// Name set clause name
func (set Set) Name() string {
	return "SET"
}

// Build build set clause
func (set Set) Build(builder Builder) {
	builder.WriteString("SET ")
	for idx, assignment := range set {
		if idx > 0 {
			builder.WriteString(", ")
		}
		builder.AddVar(builder, assignment)
	}
}

// Assignment column = value
type Assignment struct {
	Column string
	Value  interface{}
}

// Assignments assignments of values, ordered by column name
func Assignments(values map[string]interface{}) []Assignment {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	assignments := make([]Assignment, len(keys))
	for idx, key := range keys {
		assignments[idx] = Assignment{Column: key, Value: values[key]}
	}
	return assignments
}
