package visitor

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/xunsafe"
)

// DumpTag defines a tag hiding field from dump output with dump:"-"
const DumpTag = "dump"

var structCache = NewSyncMap[reflect.Type, *Struct]()

type valueRenderer interface {
	DumpValue() string
}

var (
	timeType          = reflect.TypeOf(time.Time{})
	errorType         = reflect.TypeOf((*error)(nil)).Elem()
	valueRendererType = reflect.TypeOf((*valueRenderer)(nil)).Elem()
)

type (
	// Field represents a readable struct field
	Field struct {
		// Name is an output name, it is either tag defined or the struct field name
		Name string
		// Explicit is true when Name comes from a tag
		Explicit   bool
		Omitempty  bool
		TimeLayout string
		Type       reflect.Type
		xField     *xunsafe.Field
		inline     *Struct
		ptrInline  bool
	}

	// Struct represents readable fields of a struct type, in declaration order
	Struct struct {
		Type   reflect.Type
		Fields []*Field
	}
)

// Value returns field value for the supplied struct pointer
func (f *Field) Value(ptr unsafe.Pointer) interface{} {
	return f.xField.Value(ptr)
}

// IsInline returns true for embedded structs whose fields are promoted
func (f *Field) IsInline() bool {
	return f.inline != nil
}

// Visit visits fields of the struct located at ptr, promoted fields of embedded structs are visited in place
func (s *Struct) Visit(ptr unsafe.Pointer, f func(field *Field, value interface{}) (bool, error)) error {
	_, err := s.visit(ptr, f)
	return err
}

func (s *Struct) visit(ptr unsafe.Pointer, f func(field *Field, value interface{}) (bool, error)) (bool, error) {
	for _, field := range s.Fields {
		if field.inline != nil {
			fieldPtr := field.xField.Pointer(ptr)
			if field.ptrInline {
				fieldPtr = *(*unsafe.Pointer)(fieldPtr)
				if fieldPtr == nil {
					continue
				}
			}
			next, err := field.inline.visit(fieldPtr, f)
			if err != nil || !next {
				return next, err
			}
			continue
		}
		next, err := f(field, field.Value(ptr))
		if err != nil || !next {
			return next, err
		}
	}
	return true, nil
}

// StructOf returns cached readable fields for the supplied struct type
func StructOf(structType reflect.Type) *Struct {
	if ret, ok := structCache.Get(structType); ok {
		return ret
	}
	ret := newStruct(structType, map[reflect.Type]bool{})
	structCache.Put(structType, ret)
	return ret
}

func newStruct(structType reflect.Type, inProgress map[reflect.Type]bool) *Struct {
	inProgress[structType] = true
	defer delete(inProgress, structType)
	ret := &Struct{Type: structType}
	for i := 0; i < structType.NumField(); i++ {
		sf := structType.Field(i)
		if sf.Tag.Get(DumpTag) == "-" {
			continue
		}
		tag, err := format.Parse(sf.Tag)
		if err != nil {
			tag = &format.Tag{}
		}
		if tag.Ignore {
			continue
		}
		if (sf.Anonymous && tag.Name == "") || tag.Inline {
			embedded, isPtr := sf.Type, false
			if embedded.Kind() == reflect.Ptr {
				embedded, isPtr = embedded.Elem(), true
			}
			if embedded.Kind() == reflect.Struct && !inProgress[embedded] && isPromotable(embedded) {
				ret.Fields = append(ret.Fields, &Field{
					Name:      sf.Name,
					Type:      sf.Type,
					xField:    xunsafe.NewField(sf),
					inline:    newStruct(embedded, inProgress),
					ptrInline: isPtr,
				})
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		field := &Field{
			Name:      sf.Name,
			Omitempty: tag.Omitempty,
			Type:      sf.Type,
			xField:    xunsafe.NewField(sf),
		}
		if tag.Name != "" || tag.CaseFormat != "" {
			named := &format.Tag{Name: tag.Name, CaseFormat: tag.CaseFormat}
			if named.Name == "" {
				named.Name = sf.Name
			}
			if name := named.CaseFormatName(""); name != "" {
				field.Name = name
				field.Explicit = true
			}
		}
		if tag.TimeLayout != "" {
			field.TimeLayout = tag.TimeLayout
		} else if tag.DateFormat != "" {
			field.TimeLayout = ftime.DateFormatToTimeLayout(tag.DateFormat)
		}
		ret.Fields = append(ret.Fields, field)
	}
	return ret
}

// isPromotable returns true when embedded struct fields are visited in place of the struct itself,
// value-like structs and structs without readable fields stay a single field
func isPromotable(structType reflect.Type) bool {
	if structType == timeType {
		return false
	}
	for _, candidate := range []reflect.Type{structType, reflect.PointerTo(structType)} {
		if candidate.Implements(errorType) || candidate.Implements(valueRendererType) {
			return false
		}
	}
	for i := 0; i < structType.NumField(); i++ {
		if sf := structType.Field(i); sf.IsExported() || sf.Anonymous {
			return true
		}
	}
	return false
}

// StructVisitorOf creates a visitor over readable fields of any struct value.
func StructVisitorOf(value interface{}) (Visitor[*Field, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	}
	if structType == nil || structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	ptr := xunsafe.AsPointer(value)
	if ptr == nil {
		return nil, fmt.Errorf("expected non nil pointer to struct, got %T", value)
	}
	aStruct := StructOf(structType)
	return func(f func(field *Field, value interface{}) (bool, error)) error {
		return aStruct.Visit(ptr, f)
	}, nil
}
