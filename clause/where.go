package clause

// Where where clause, built from a folded condition group
type Where struct {
	Group ConditionGroup
}

// Name where clause name
func (where Where) Name() string {
	return "WHERE"
}

// Build build where clause, an empty group builds nothing
func (where Where) Build(builder Builder) {
	if where.Group.IsEmpty() {
		return
	}

	builder.WriteString("WHERE ")
	builder.AddVar(builder, where.Group)
}
