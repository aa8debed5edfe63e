package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MapVisitorOf dynamically creates a visitor over any map value.
// Entries are visited in key order: numbers and strings compare by value, other keys by their text,
// so that repeated visits of the same map produce the same sequence.
func MapVisitorOf(value interface{}) (Visitor[interface{}, interface{}], error) {
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		keys := val.MapKeys()
		sort.SliceStable(keys, func(i, j int) bool {
			return lessKey(keys[i], keys[j])
		})
		for _, key := range keys {
			continueVisit, err := f(key.Interface(), val.MapIndex(key).Interface())
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

func lessKey(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		case reflect.Bool:
			return !a.Bool() && b.Bool()
		}
	}
	return keyText(a) < keyText(b)
}

func keyText(key reflect.Value) string {
	if !key.IsValid() {
		return ""
	}
	if key.CanInterface() {
		return fmt.Sprintf("%T:%+v", key.Interface(), key.Interface())
	}
	return key.String()
}
