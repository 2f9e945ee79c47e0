package querybuilder

import (
	"reflect"
	"strings"
)

// InsertModel inserts one row built from the db-tagged fields of model.
func InsertModel(table Table, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// InsertModels inserts every model as one multi-row statement. All models share the
// column list of the first.
func InsertModels[M any](table Table, models []M, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return invalid("insert into %s has no rows", table)
	}

	b := InsertInto(table).Suffix(suffix)
	for i, model := range models {
		cols, vals, err := columnsAndValuesFromModel(model)
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			b.Columns(cols...)
		}
		b.Values(vals...)
	}
	return b.ToSQL()
}

// UpdateModel sets every db-tagged field of model on the rows matching conditions.
func UpdateModel(table Table, model any, conditions ...Condition) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	b := Update(table)
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b.Where(conditions...).ToSQL()
}

func columnsAndValuesFromModel(model any) ([]Column, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			_, _, err := invalid("model cannot be nil")
			return nil, nil, err
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		_, _, err := invalid("model must be a struct, got %s", value.Kind())
		return nil, nil, err
	}

	typ := value.Type()
	cols := make([]Column, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, Column(name))
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		_, _, err := invalid("model %s has no db columns", typ.Name())
		return nil, nil, err
	}
	return cols, vals, nil
}
