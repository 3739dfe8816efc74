package clause

import "fmt"

// Condition atomic boolean fragment, e.g. the result of comparing a field with a value
//
//	NewCondition("users.id = ?", 7)
//
// Condition is an immutable value, combining it never changes it.
type Condition struct {
	sql    string
	params []interface{}
}

// NewCondition build condition from sql and its bind values
func NewCondition(sql string, params ...interface{}) Condition {
	return Condition{sql: sql, params: cloneParams(params)}
}

// SQL sql text of the condition
func (c Condition) SQL() string {
	return c.sql
}

// Params bind values of the condition, in placeholder order
func (c Condition) Params() []interface{} {
	return cloneParams(c.params)
}

func (Condition) operand() {}

// And joins the condition with other using AND, the result is always a ConditionGroup
func (c Condition) And(other Operand) (ConditionGroup, error) {
	return c.combine(AndOperator, other)
}

// Or joins the condition with other using OR, the result is always a ConditionGroup
func (c Condition) Or(other Operand) (ConditionGroup, error) {
	return c.combine(OrOperator, other)
}

func (c Condition) combine(op Operator, other Operand) (ConditionGroup, error) {
	switch v := other.(type) {
	case Plain:
		return c.combine(op, NewCondition(string(v)))
	case Condition, Expression:
		return NewConditionGroup(c).fold(op, v, false)
	case ConditionGroup:
		// c stands on the left of the group's existing structure
		return v.fold(op, c, true)
	}

	return ConditionGroup{}, fmt.Errorf("%w: operator %s can't be resolved with type %T", ErrInvalidConditionComparison, op, other)
}
