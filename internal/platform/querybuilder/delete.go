package querybuilder

import "strings"

type DeleteBuilder struct {
	table Table
	where []Condition
}

func DeleteFrom(table Table) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL refuses to build an unconditional delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(string(b.table)) == "" {
		return invalid("delete table is required")
	}
	if len(b.where) == 0 {
		return invalid("delete from %s requires a condition", b.table)
	}

	var w argWriter
	w.buf.WriteString("DELETE FROM ")
	w.buf.WriteString(string(b.table))
	w.where(b.where)
	return w.result()
}
