package clause

import "fmt"

// ConditionGroup folds conditions and groups into a single boolean expression.
//
// The zero value is the empty group, the identity of every combination. Each
// combinator returns a new group, so a group can be shared between derived filters.
type ConditionGroup struct {
	sql          string
	params       []interface{}
	lastOperator Operator
	seeded       bool
}

// NewConditionGroup returns a group seeded from seed, or the empty group when seed is nil
func NewConditionGroup(seed Operand) ConditionGroup {
	switch v := seed.(type) {
	case nil:
		return ConditionGroup{}
	case ConditionGroup:
		return v
	case Plain:
		return seedGroup(NewCondition(string(v)))
	default:
		return seedGroup(v)
	}
}

// SQL sql text of the group, empty when nothing was folded in
func (group ConditionGroup) SQL() string {
	return group.sql
}

// Params bind values of the group, in placeholder order
func (group ConditionGroup) Params() []interface{} {
	return cloneParams(group.params)
}

// LastOperator operator that joined the outermost level of SQL, empty for zero or one term
func (group ConditionGroup) LastOperator() Operator {
	return group.lastOperator
}

// IsEmpty reports whether nothing was folded into the group
func (group ConditionGroup) IsEmpty() bool {
	return !group.seeded
}

func (ConditionGroup) operand() {}

// And appends other with AND
func (group ConditionGroup) And(other Operand) (ConditionGroup, error) {
	return group.fold(AndOperator, other, false)
}

// Or appends other with OR
func (group ConditionGroup) Or(other Operand) (ConditionGroup, error) {
	return group.fold(OrOperator, other, false)
}

// RAnd prepends other with AND, other must not be a ConditionGroup
func (group ConditionGroup) RAnd(other Operand) (ConditionGroup, error) {
	return group.fold(AndOperator, other, true)
}

// ROr prepends other with OR, other must not be a ConditionGroup
func (group ConditionGroup) ROr(other Operand) (ConditionGroup, error) {
	return group.fold(OrOperator, other, true)
}

func (group ConditionGroup) fold(op Operator, other Operand, right bool) (ConditionGroup, error) {
	switch v := other.(type) {
	case Plain:
		other = NewCondition(string(v))
	case Condition, Expression:
	case ConditionGroup:
		if right {
			return ConditionGroup{}, fmt.Errorf("%w: operator right %s can't be resolved with type %T", ErrInvalidConditionGroupComparison, op, other)
		}
		if v.IsEmpty() {
			return group, nil
		}
	default:
		return ConditionGroup{}, fmt.Errorf("%w: operator %s can't be resolved with type %T", ErrInvalidConditionGroupComparison, op, other)
	}

	if group.IsEmpty() {
		return seedGroup(other), nil
	}

	// AND binds tighter than OR, an OR-joined left side has to be grouped first
	self := group.sql
	if op == AndOperator && group.lastOperator == OrOperator {
		self = "(" + self + ")"
	}

	operandSQL := other.SQL()
	if op == AndOperator && !right {
		if g, ok := other.(ConditionGroup); ok && g.lastOperator == OrOperator {
			operandSQL = "(" + operandSQL + ")"
		}
	}

	result := ConditionGroup{lastOperator: op, seeded: true}
	if right {
		result.sql = operandSQL + " " + string(op) + " " + self
		result.params = joinParams(other.Params(), group.params)
	} else {
		result.sql = self + " " + string(op) + " " + operandSQL
		result.params = joinParams(group.params, other.Params())
	}
	return result, nil
}

func seedGroup(seed Operand) ConditionGroup {
	group := ConditionGroup{sql: seed.SQL(), params: seed.Params(), seeded: true}
	if g, ok := seed.(ConditionGroup); ok {
		group.lastOperator = g.lastOperator
	}
	return group
}
