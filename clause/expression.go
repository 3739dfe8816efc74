package clause

// Operand is a SQL fragment that takes part in AND/OR combination.
// The set of implementations is closed: Condition, ConditionGroup, Expression and Plain.
type Operand interface {
	SQL() string
	Params() []interface{}
	operand()
}

// Expression raw SQL fragment with bind values, e.g. a column reference or a function call
//
//	NewExpression("sum(orders.total)")
//	NewExpression("coalesce(users.name, ?)", "anonymous")
type Expression struct {
	sql    string
	params []interface{}
}

// NewExpression build expression from sql and its bind values
func NewExpression(sql string, params ...interface{}) Expression {
	return Expression{sql: sql, params: cloneParams(params)}
}

// SQL sql text of the expression
func (expr Expression) SQL() string {
	return expr.sql
}

// Params bind values of the expression
func (expr Expression) Params() []interface{} {
	return cloneParams(expr.params)
}

func (Expression) operand() {}

// Plain sql text without bind values, folded as a zero-param Condition
type Plain string

// SQL sql text
func (p Plain) SQL() string {
	return string(p)
}

// Params always empty
func (Plain) Params() []interface{} {
	return nil
}

func (Plain) operand() {}

func cloneParams(params []interface{}) []interface{} {
	if len(params) == 0 {
		return nil
	}
	values := make([]interface{}, len(params))
	copy(values, params)
	return values
}

// joinParams returns a fresh slice holding first followed by second
func joinParams(first, second []interface{}) []interface{} {
	if len(first)+len(second) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(first)+len(second))
	values = append(values, first...)
	return append(values, second...)
}
