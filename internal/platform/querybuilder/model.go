package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

type modelColumn struct {
	name  string
	value any
}

// UpsertModel inserts the db-tagged fields of model and overwrites every
// other column when the row already exists on conflictOn.
func UpsertModel(table string, model any, conflictOn ...string) (string, []any, error) {
	columns, err := modelColumns(model)
	if err != nil {
		return "", nil, fmt.Errorf("upsert %s: %w", table, err)
	}

	names := make([]string, len(columns))
	values := make([]any, len(columns))
	for i, c := range columns {
		names[i] = c.name
		values[i] = c.value
	}
	return InsertInto(table).Columns(names...).Values(values...).OnConflict(conflictOn).ToSQL()
}

// modelColumns lists exported struct fields carrying a db tag, in
// declaration order. Embedded structs are not flattened.
func modelColumns(model any) ([]modelColumn, error) {
	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return nil, fmt.Errorf("model cannot be nil")
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	var out []modelColumn
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		out = append(out, modelColumn{name: name, value: v.Field(i).Interface()})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", t.Name())
	}
	return out, nil
}
