package export

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Renderer turns a dataset into a downloadable document.
type Renderer interface {
	Render(data Dataset, title string) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat resolves the renderer for a format name ("csv" or "pdf").
func ForFormat(format string) (Renderer, bool) {
	switch strings.ToLower(format) {
	case "", "csv":
		return NewCSVExporter(), true
	case "pdf":
		return NewPDFExporter(), true
	default:
		return nil, false
	}
}

var timeType = reflect.TypeOf(time.Time{})

// Tabulate flattens a slice of structs (or struct pointers) into a dataset.
// Headers follow the json names in declaration order, embedded structs first.
// Fields tagged json:"-" are skipped.
func Tabulate(items interface{}) (Dataset, error) {
	v := reflect.ValueOf(items)
	if v.Kind() != reflect.Slice {
		return Dataset{}, fmt.Errorf("tabulate expects a slice, got %s", v.Kind())
	}

	elem := v.Type().Elem()
	for elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return Dataset{}, fmt.Errorf("tabulate expects struct elements, got %s", elem.Kind())
	}

	cols := columns(elem, nil)
	data := Dataset{Headers: make([]string, len(cols)), Rows: make([]map[string]string, 0, v.Len())}
	for i, col := range cols {
		data.Headers[i] = col.name
	}

	for i := 0; i < v.Len(); i++ {
		item := v.Index(i)
		for item.Kind() == reflect.Ptr {
			if item.IsNil() {
				break
			}
			item = item.Elem()
		}
		if item.Kind() != reflect.Struct {
			continue
		}
		row := make(map[string]string, len(cols))
		for _, col := range cols {
			row[col.name] = format(item.FieldByIndex(col.index))
		}
		data.Rows = append(data.Rows, row)
	}
	return data, nil
}

type column struct {
	name  string
	index []int
}

func columns(t reflect.Type, prefix []int) []column {
	var out []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			out = append(out, columns(field.Type, index)...)
			continue
		}
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		out = append(out, column{name: name, index: index})
	}
	return out
}

func format(v reflect.Value) string {
	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return ""
		}
		return format(v.Elem())
	default:
		return fmt.Sprint(v.Interface())
	}
}
