package upy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/upyorm/upy/clause"
	"github.com/upyorm/upy/schema"
)

// QueryBuilder builds UPDATE and DELETE statements of a table.
//
// Every method returns a new builder, so a partially filtered builder can be shared
// and extended independently.
type QueryBuilder struct {
	// Error first error recorded while chaining, returned by the next build
	Error error

	table  *Table
	ctx    context.Context
	where  clause.ConditionGroup
	strict bool
}

func (qb *QueryBuilder) getInstance() *QueryBuilder {
	tx := *qb
	return &tx
}

// AddError add error to the builder
func (qb *QueryBuilder) AddError(err error) error {
	if qb.Error == nil {
		qb.Error = err
	} else if err != nil {
		qb.Error = fmt.Errorf("%v; %w", qb.Error, err)
	}
	return qb.Error
}

// WithContext change the context passed to the logger
func (qb *QueryBuilder) WithContext(ctx context.Context) *QueryBuilder {
	tx := qb.getInstance()
	tx.ctx = ctx
	return tx
}

// Strict strict builders never add `WHERE true` to a delete without conditions
func (qb *QueryBuilder) Strict(strict bool) *QueryBuilder {
	tx := qb.getInstance()
	tx.strict = strict
	return tx
}

// Where current where condition group
func (qb *QueryBuilder) Where() clause.ConditionGroup {
	return qb.where
}

// Filter AND the filter arguments into the where condition
func (qb *QueryBuilder) Filter(args ...interface{}) *QueryBuilder {
	tx := qb.getInstance()
	if len(args) == 0 {
		return tx
	}

	group, err := GenerateConditionGroupByArguments(args, "")
	if err != nil {
		tx.AddError(err)
		return tx
	}

	if tx.where, err = tx.where.And(group); err != nil {
		tx.AddError(err)
	}
	return tx
}

// ByPK filter by the primary key, a slice of values filters with IN
func (qb *QueryBuilder) ByPK(value interface{}) *QueryBuilder {
	if qb.table == nil {
		tx := qb.getInstance()
		tx.AddError(ErrUndefinedTable)
		return tx
	}

	field := qb.table.PrioritizedPrimaryField
	if field == nil {
		tx := qb.getInstance()
		tx.AddError(fmt.Errorf("%w: %s", ErrPrimaryKeyRequired, qb.table.Schema.Table))
		return tx
	}
	return qb.Filter(field.Eq(value))
}

// BuildUpdate build UPDATE statement.
//
// Assignments may be conditions or expressions used as written, clause.Assignment values
// and map[string]interface{} values expanded in column order. Plain column names get the
// table prefix once any condition or expression assignment or a where condition is present.
func (qb *QueryBuilder) BuildUpdate(sets ...interface{}) (Query, error) {
	begin := time.Now()
	stmt, err := qb.buildUpdate(sets)
	return qb.finish(begin, stmt, err)
}

// BuildDelete build DELETE statement, args are filtered into the where condition of this statement only
func (qb *QueryBuilder) BuildDelete(args ...interface{}) (Query, error) {
	begin := time.Now()
	stmt, err := qb.Filter(args...).buildDelete()
	return qb.finish(begin, stmt, err)
}

func (qb *QueryBuilder) buildUpdate(sets []interface{}) (*Statement, error) {
	if qb.Error != nil {
		return nil, qb.Error
	}
	if qb.table == nil {
		return nil, ErrUndefinedTable
	}

	var (
		stmt        = NewStatement(qb.ctx, qb.table.Schema.Table)
		assignments []clause.Assignment
		prefixed    = !qb.where.IsEmpty()
	)

	for _, set := range sets {
		switch v := set.(type) {
		case clause.Condition, clause.Expression:
			prefixed = true
		case clause.Assignment:
			assignments = append(assignments, v)
		case []clause.Assignment:
			assignments = append(assignments, v...)
		case map[string]interface{}:
			assignments = append(assignments, clause.Assignments(v)...)
		default:
			return nil, fmt.Errorf("%w: object of type %T can not be used in update", ErrInvalidUpdateArgument, set)
		}
	}

	var (
		set     = make(clause.Set, 0, len(sets)+len(assignments))
		columns = map[string]bool{}
	)
	add := func(assignment clause.Assignment) error {
		column, expr, err := qb.assign(assignment, prefixed)
		if err != nil {
			return err
		}
		key := strings.TrimPrefix(column, qb.table.Schema.Table+".")
		if columns[key] {
			return fmt.Errorf("%w: column %s assigned more than once", ErrInvalidUpdateArgument, key)
		}
		columns[key] = true
		set = append(set, expr)
		return nil
	}

	for _, item := range sets {
		switch v := item.(type) {
		case clause.Condition:
			set = append(set, clause.NewExpression(v.SQL(), v.Params()...))
		case clause.Expression:
			set = append(set, v)
		case clause.Assignment:
			if err := add(v); err != nil {
				return nil, err
			}
		case []clause.Assignment:
			for _, assignment := range v {
				if err := add(assignment); err != nil {
					return nil, err
				}
			}
		case map[string]interface{}:
			for _, assignment := range clause.Assignments(v) {
				if err := add(assignment); err != nil {
					return nil, err
				}
			}
		}
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAssignments, stmt.Table)
	}

	stmt.AddClause(clause.Update{Table: stmt.Table})
	stmt.AddClause(set)
	if !qb.where.IsEmpty() {
		stmt.AddClause(clause.Where{Group: qb.where})
	}
	stmt.Build("UPDATE", "SET", "WHERE")
	return stmt, nil
}

// assign render an assignment as `column = ?`, an operand value is written in place of the marker
func (qb *QueryBuilder) assign(assignment clause.Assignment, prefixed bool) (string, clause.Expression, error) {
	column := assignment.Column
	switch {
	case column == "":
		return "", clause.Expression{}, fmt.Errorf("%w: assignment without column", ErrInvalidUpdateArgument)
	case strings.Contains(column, ".") || strings.Contains(column, "__"):
		field, err := schema.FieldFromAlias(column)
		if err != nil {
			return "", clause.Expression{}, err
		}
		column = field.Alias()
	default:
		if field := qb.table.LookUpField(column); field != nil {
			column = field.DBName
		}
		if prefixed {
			column = qb.table.Schema.Table + "." + column
		}
	}

	if operand, ok := assignment.Value.(clause.Operand); ok {
		return column, clause.NewExpression(column+" = "+operand.SQL(), operand.Params()...), nil
	}
	return column, clause.NewExpression(column+" = ?", assignment.Value), nil
}

func (qb *QueryBuilder) buildDelete() (*Statement, error) {
	if qb.Error != nil {
		return nil, qb.Error
	}
	if qb.table == nil {
		return nil, ErrUndefinedTable
	}

	stmt := NewStatement(qb.ctx, qb.table.Schema.Table)
	where := qb.where
	if where.IsEmpty() {
		if qb.strict {
			qb.table.config.Logger.Warn(stmt.Context, "DELETE FROM %s without conditions removes every row", stmt.Table)
		} else {
			where = clause.NewConditionGroup(clause.Plain("true"))
		}
	}

	stmt.AddClause(clause.Delete{})
	stmt.AddClause(clause.From{Table: stmt.Table})
	if !where.IsEmpty() {
		stmt.AddClause(clause.Where{Group: where})
	}
	stmt.Build("DELETE", "FROM", "WHERE")
	return stmt, nil
}

// finish trace the built statement and rebind its markers
func (qb *QueryBuilder) finish(begin time.Time, stmt *Statement, err error) (Query, error) {
	if qb.table == nil {
		return Query{}, err
	}

	config := qb.table.config
	ctx := qb.ctx
	if stmt != nil {
		ctx = stmt.Context
	}

	config.Logger.Trace(ctx, begin, func() (string, []interface{}) {
		if stmt == nil {
			return "", nil
		}
		return stmt.SQL.String(), stmt.Vars
	}, err)

	if err != nil {
		return Query{}, err
	}

	query := stmt.Query()
	query.SQL = config.Placeholder.Rebind(query.SQL)
	query.Placeholder = config.Placeholder
	return query, nil
}
