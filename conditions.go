package upy

import (
	"fmt"

	"github.com/upyorm/upy/clause"
	"github.com/upyorm/upy/schema"
)

// GenerateConditionGroupByArguments AND-fold filter arguments into one condition group.
//
// Arguments may be strings, clause operands or fields; a field takes part as its bare
// qualified column. Without arguments the group is seeded from defaultSQL when it is not empty.
func GenerateConditionGroupByArguments(args []interface{}, defaultSQL string) (clause.ConditionGroup, error) {
	var group clause.ConditionGroup

	if len(args) == 0 && defaultSQL != "" {
		return group.And(clause.NewCondition(defaultSQL))
	}

	for idx, arg := range args {
		var operand clause.Operand
		switch v := arg.(type) {
		case string:
			operand = clause.Plain(v)
		case clause.Plain:
			operand = v
		case clause.Condition:
			operand = v
		case clause.ConditionGroup:
			operand = v
		case clause.Expression:
			operand = v
		case *schema.Field:
			if v == nil {
				return clause.ConditionGroup{}, fmt.Errorf("%w: argument %d is a nil field", ErrInvalidFilterArgument, idx)
			}
			operand = v.Expression()
		case schema.Field:
			operand = v.Expression()
		default:
			return clause.ConditionGroup{}, fmt.Errorf("%w: object of type %T can not be used in filtering", ErrInvalidFilterArgument, arg)
		}

		var err error
		if group, err = group.And(operand); err != nil {
			return clause.ConditionGroup{}, err
		}
	}

	return group, nil
}
