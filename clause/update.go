package clause

// Update update clause
type Update struct {
	Modifier string
	Table    string
}

// Name update clause name
func (update Update) Name() string {
	return "UPDATE"
}

// Build build update clause
func (update Update) Build(builder Builder) {
	builder.WriteString("UPDATE ")
	if update.Modifier != "" {
		builder.WriteString(update.Modifier)
		builder.WriteByte(' ')
	}
	builder.WriteString(update.Table)
}
