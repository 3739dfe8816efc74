package clause

// From from clause
type From struct {
	Table string
}

// Name from clause name
func (from From) Name() string {
	return "FROM"
}

// Build build from clause
func (from From) Build(builder Builder) {
	builder.WriteString("FROM ")
	builder.WriteString(from.Table)
}
