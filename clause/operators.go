package clause

// Operator logical operator joining two fragments
type Operator string

const (
	AndOperator Operator = "AND"
	OrOperator  Operator = "OR"
)

func (op Operator) String() string {
	return string(op)
}
