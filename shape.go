package dumper

import (
	"fmt"
	"reflect"
	"time"
)

// Shape represents a rendering shape of a value
type Shape int

const (
	//ShapeScalar represents numbers, booleans, strings, date/time, nil and other atomic values
	ShapeScalar Shape = iota
	//ShapeEnumerable represents slices, arrays, maps and ElementLister values
	ShapeEnumerable
	//ShapeComposite represents structs and FieldLister values
	ShapeComposite
)

// String returns shape name
func (s Shape) String() string {
	switch s {
	case ShapeEnumerable:
		return "enumerable"
	case ShapeComposite:
		return "composite"
	default:
		return "scalar"
	}
}

type (
	// ValueRenderer is implemented by types rendered as a single scalar token
	ValueRenderer interface {
		DumpValue() string
	}

	// ElementLister is implemented by types rendered as an enumerable of elements
	ElementLister interface {
		DumpElements() []interface{}
	}

	// FieldLister is implemented by types rendered as a composite of named fields
	FieldLister interface {
		DumpFields() []Field
	}

	// Field represents a named composite member
	Field struct {
		Name  string
		Value interface{}
	}

	// MapEntry represents a map element
	MapEntry struct {
		Key   interface{}
		Value interface{}
	}
)

var timeType = reflect.TypeOf(time.Time{})

// Classify returns value shape using default options
func Classify(value interface{}) Shape {
	return defaultDumper.classify(value)
}

func (d *Dumper) classify(value interface{}) Shape {
	shape, _ := d.resolve(value)
	return shape
}

// resolve classifies value and returns its dereferenced form, nil pointers and interfaces resolve to nil scalars
func (d *Dumper) resolve(value interface{}) (Shape, interface{}) {
	if value == nil {
		return ShapeScalar, nil
	}
	rValue := reflect.ValueOf(value)
	if isNil(rValue) {
		return ShapeScalar, nil
	}
	if shape, ok := d.capability(value); ok {
		return shape, value
	}
	for rValue.Kind() == reflect.Ptr || rValue.Kind() == reflect.Interface {
		if isNil(rValue.Elem()) {
			return ShapeScalar, nil
		}
		if rValue.Kind() == reflect.Ptr && rValue.Elem().Kind() == reflect.Struct && rValue.Elem().Type() != timeType {
			return ShapeComposite, rValue.Interface()
		}
		rValue = rValue.Elem()
		if !rValue.CanInterface() {
			return ShapeScalar, value
		}
		value = rValue.Interface()
		if shape, ok := d.capability(value); ok {
			return shape, value
		}
	}
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return ShapeEnumerable, value
	case reflect.Struct:
		return ShapeComposite, value
	}
	return ShapeScalar, value
}

func (d *Dumper) capability(value interface{}) (Shape, bool) {
	switch value.(type) {
	case ValueRenderer, time.Time, *time.Time, error:
		return ShapeScalar, true
	case ElementLister:
		return ShapeEnumerable, true
	case FieldLister:
		return ShapeComposite, true
	}
	if d.stringers {
		if _, ok := value.(fmt.Stringer); ok {
			return ShapeScalar, true
		}
	}
	return 0, false
}

func isNil(rValue reflect.Value) bool {
	switch rValue.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
}
