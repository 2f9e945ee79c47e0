package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidQuery wraps every builder validation failure.
var ErrInvalidQuery = errors.New("querybuilder: invalid query")

// Table and Column are SQL identifiers. Keeping them apart from plain strings stops a bound
// value from ending up in identifier position.
type (
	Table  string
	Column string
)

// All selects every column.
const All Column = "*"

func joinColumns(columns []Column) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

type Condition interface {
	appendSQL(w *argWriter)
}

type eqCondition struct {
	column Column
	value  any
}

func Eq(column Column, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(w *argWriter) {
	w.buf.WriteString(string(c.column))
	w.buf.WriteString(" = ")
	w.bind(c.value)
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw predicate; each ? binds the next arg.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(w *argWriter) {
	w.expr(c.expr, c.args)
}

// Order is one ORDER BY term.
type Order struct {
	column Column
	desc   bool
}

func Asc(column Column) Order  { return Order{column: column} }
func Desc(column Column) Order { return Order{column: column, desc: true} }

func (o Order) String() string {
	if o.desc {
		return string(o.column) + " DESC"
	}
	return string(o.column)
}

// argWriter accumulates SQL text and its positional args, numbering placeholders $1..$n.
type argWriter struct {
	buf  strings.Builder
	args []any
}

func (w *argWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

func (w *argWriter) expr(expr string, exprArgs []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			w.bind(exprArgs[next])
			next++
			continue
		}
		w.buf.WriteByte(expr[i])
	}
}

func (w *argWriter) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.buf.WriteString(" AND ")
		}
		c.appendSQL(w)
	}
}

func (w *argWriter) suffix(sql string) {
	if sql == "" {
		return
	}
	w.buf.WriteString(" ")
	w.buf.WriteString(sql)
}

func (w *argWriter) result() (string, []any, error) {
	return w.buf.String(), w.args, nil
}

func invalid(format string, args ...any) (string, []any, error) {
	return "", nil, fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

type SelectBuilder struct {
	columns []Column
	table   Table
	where   []Condition
	orderBy []Order
	limit   int
}

func Select(columns ...Column) *SelectBuilder {
	return &SelectBuilder{columns: append([]Column(nil), columns...)}
}

func (b *SelectBuilder) From(table Table) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(orders ...Order) *SelectBuilder {
	b.orderBy = append(b.orderBy, orders...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return invalid("select columns are required")
	}
	if strings.TrimSpace(string(b.table)) == "" {
		return invalid("select table is required")
	}

	var w argWriter
	w.buf.WriteString("SELECT ")
	w.buf.WriteString(joinColumns(b.columns))
	w.buf.WriteString(" FROM ")
	w.buf.WriteString(string(b.table))
	w.where(b.where)

	if len(b.orderBy) > 0 {
		w.buf.WriteString(" ORDER BY ")
		for i, o := range b.orderBy {
			if i > 0 {
				w.buf.WriteString(", ")
			}
			w.buf.WriteString(o.String())
		}
	}
	if b.limit > 0 {
		w.buf.WriteString(" LIMIT ")
		w.buf.WriteString(strconv.Itoa(b.limit))
	}
	return w.result()
}

type InsertBuilder struct {
	table   Table
	columns []Column
	rows    [][]any
	suffix  string
}

func InsertInto(table Table) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...Column) *InsertBuilder {
	b.columns = append([]Column(nil), columns...)
	return b
}

// Values appends one row; call it once per row for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(string(b.table)) == "" {
		return invalid("insert table is required")
	}
	if len(b.columns) == 0 {
		return invalid("insert columns are required")
	}
	if len(b.rows) == 0 {
		return invalid("insert into %s has no rows", b.table)
	}

	var w argWriter
	w.args = make([]any, 0, len(b.rows)*len(b.columns))
	w.buf.WriteString("INSERT INTO ")
	w.buf.WriteString(string(b.table))
	w.buf.WriteString(" (")
	w.buf.WriteString(joinColumns(b.columns))
	w.buf.WriteString(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return invalid("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.buf.WriteString(", ")
			}
			w.bind(value)
		}
		w.buf.WriteString(")")
	}
	w.suffix(b.suffix)
	return w.result()
}

type setClause struct {
	column Column
	value  any
	expr   *exprCondition
}

type UpdateBuilder struct {
	table  Table
	sets   []setClause
	where  []Condition
	suffix string
}

func Update(table Table) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column Column, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column Column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, expr: &exprCondition{expr: expr, args: args}})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

// ToSQL refuses an update without a condition, like DeleteBuilder.
func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(string(b.table)) == "" {
		return invalid("update table is required")
	}
	if len(b.sets) == 0 {
		return invalid("update %s sets no columns", b.table)
	}
	if len(b.where) == 0 {
		return invalid("update %s requires a condition", b.table)
	}

	var w argWriter
	w.buf.WriteString("UPDATE ")
	w.buf.WriteString(string(b.table))
	w.buf.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(string(s.column))
		w.buf.WriteString(" = ")
		if s.expr != nil {
			w.expr(s.expr.expr, s.expr.args)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)
	w.suffix(b.suffix)
	return w.result()
}
