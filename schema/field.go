package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/upyorm/upy/clause"
)

// Field column of a table model. Comparing a field with a value builds a clause.Condition
//
//	users.F("Age").Gt(18)        // users.age > ?
//	users.F("Name").Eq(nil)      // users.name IS NULL
//	users.F("ID").Ne([]int{1, 2}) // users.id NOT IN (?, ?)
type Field struct {
	Name        string
	DBName      string
	Table       string
	PrimaryKey  bool
	StructField reflect.StructField
	TagSettings map[string]string
}

// NewField field of table prefix named name, used for columns not declared by a model
func NewField(name, prefix string) *Field {
	return &Field{Name: name, DBName: name, Table: prefix}
}

// FieldFromAlias parse table__column or table.column
func FieldFromAlias(alias string) (*Field, error) {
	for _, sep := range []string{"__", "."} {
		if parts := strings.SplitN(alias, sep, 2); len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			return NewField(parts[1], parts[0]), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidAlias, alias)
}

// Alias qualified column name
func (field *Field) Alias() string {
	if field.Table == "" {
		return field.DBName
	}
	return field.Table + "." + field.DBName
}

// Expression the qualified column as a raw fragment, e.g. a boolean column used unadorned
func (field *Field) Expression() clause.Expression {
	return clause.NewExpression(field.Alias())
}

// Set assignment of value to the field, for update statements
func (field *Field) Set(value interface{}) clause.Assignment {
	return clause.Assignment{Column: field.Alias(), Value: value}
}

// Eq field = value, IS NULL for nil and IN for slices
func (field *Field) Eq(value interface{}) clause.Condition {
	operand := resolveComparand(value)
	switch operand.kind {
	case nullComparand:
		return clause.NewCondition(field.Alias() + " IS NULL")
	case listComparand:
		if len(operand.params) == 0 {
			return clause.NewCondition("FALSE")
		}
		return clause.NewCondition(fmt.Sprintf("%s IN (%s)", field.Alias(), placeholders(len(operand.params))), operand.params...)
	}
	return field.compare("=", operand)
}

// Ne field <> value, IS NOT NULL for nil and NOT IN for slices
func (field *Field) Ne(value interface{}) clause.Condition {
	operand := resolveComparand(value)
	switch operand.kind {
	case nullComparand:
		return clause.NewCondition(field.Alias() + " IS NOT NULL")
	case listComparand:
		if len(operand.params) == 0 {
			return clause.NewCondition("TRUE")
		}
		return clause.NewCondition(fmt.Sprintf("%s NOT IN (%s)", field.Alias(), placeholders(len(operand.params))), operand.params...)
	}
	return field.compare("<>", operand)
}

// Gt field > value
func (field *Field) Gt(value interface{}) (clause.Condition, error) {
	return field.ordered(">", value)
}

// Ge field >= value
func (field *Field) Ge(value interface{}) (clause.Condition, error) {
	return field.ordered(">=", value)
}

// Lt field < value
func (field *Field) Lt(value interface{}) (clause.Condition, error) {
	return field.ordered("<", value)
}

// Le field <= value
func (field *Field) Le(value interface{}) (clause.Condition, error) {
	return field.ordered("<=", value)
}

// Like field LIKE value
func (field *Field) Like(value interface{}) (clause.Condition, error) {
	return field.ordered("LIKE", value)
}

func (field *Field) ordered(op string, value interface{}) (clause.Condition, error) {
	operand := resolveComparand(value)
	switch operand.kind {
	case nullComparand:
		return clause.Condition{}, fmt.Errorf("%w: can not use '%s' operator with nil", ErrInvalidOperatorComparison, op)
	case listComparand:
		return clause.Condition{}, fmt.Errorf("%w: can not use '%s' operator with %T", ErrInvalidOperatorComparison, op, value)
	}
	return field.compare(op, operand), nil
}

func (field *Field) compare(op string, operand comparand) clause.Condition {
	return clause.NewCondition(field.Alias()+" "+op+" "+operand.sql, operand.params...)
}

type comparandKind int

const (
	valueComparand comparandKind = iota
	nullComparand
	rawComparand
	listComparand
)

// comparand right hand side of a field comparison
type comparand struct {
	kind   comparandKind
	sql    string
	params []interface{}
}

func resolveComparand(value interface{}) comparand {
	switch v := value.(type) {
	case nil:
		return comparand{kind: nullComparand}
	case *Field:
		if v == nil {
			return comparand{kind: nullComparand}
		}
		return comparand{kind: rawComparand, sql: v.Alias()}
	case Field:
		return comparand{kind: rawComparand, sql: v.Alias()}
	case clause.Expression:
		return comparand{kind: rawComparand, sql: v.SQL(), params: v.Params()}
	}

	if rv := reflect.ValueOf(value); isList(rv) {
		return comparand{kind: listComparand, params: listValues(rv)}
	}
	return comparand{kind: valueComparand, sql: "?", params: []interface{}{value}}
}
