package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf dynamically creates a visitor over any slice or array value.
func SliceVisitorOf(value interface{}) (Visitor[int, interface{}], error) {
	switch actual := value.(type) {
	case []interface{}:
		return TypedSliceVisitorOf[interface{}](actual), nil
	case []string:
		return TypedSliceVisitorOf[string](actual), nil
	case []int:
		return TypedSliceVisitorOf[int](actual), nil
	case []int64:
		return TypedSliceVisitorOf[int64](actual), nil
	case []float64:
		return TypedSliceVisitorOf[float64](actual), nil
	case []bool:
		return TypedSliceVisitorOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i := 0; i < val.Len(); i++ {
			continueVisit, err := f(i, val.Index(i).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// TypedSliceVisitorOf returns a visitor over a typed slice
func TypedSliceVisitorOf[E any](slice []E) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
