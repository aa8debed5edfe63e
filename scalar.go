package dumper

import (
	"fmt"
	"reflect"
	"time"

	"golang.org/x/text/number"
)

const nullToken = "null"

// text returns a scalar display form, timeLayout overrides dumper time layout when not empty
func (d *Dumper) text(value interface{}, timeLayout string) string {
	if value == nil || isNil(reflect.ValueOf(value)) {
		return nullToken
	}
	if timeLayout == "" {
		timeLayout = d.timeLayout
	}
	switch actual := value.(type) {
	case ValueRenderer:
		return actual.DumpValue()
	case time.Time:
		return actual.Format(timeLayout)
	case *time.Time:
		return actual.Format(timeLayout)
	case string:
		return actual
	case error:
		return actual.Error()
	}
	if d.stringers {
		if stringer, ok := value.(fmt.Stringer); ok {
			return stringer.String()
		}
	}
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr || rValue.Kind() == reflect.Interface {
		rValue = rValue.Elem()
		if isNil(rValue) {
			return nullToken
		}
		if rValue.CanInterface() {
			if _, ok := d.capability(rValue.Interface()); ok {
				return d.text(rValue.Interface(), timeLayout)
			}
		}
	}
	switch rValue.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rValue.Type().String()
	case reflect.Slice, reflect.Array, reflect.Map:
		return enumerablePlaceholder
	case reflect.Struct:
		return compositePlaceholder
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if d.printer != nil && rValue.CanInterface() {
			return d.printer.Sprintf("%v", number.Decimal(rValue.Interface()))
		}
	}
	if rValue.CanInterface() {
		return fmt.Sprint(rValue.Interface())
	}
	return rValue.String()
}
