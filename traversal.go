package dumper

import (
	"reflect"

	"github.com/viant/dumper/internal/line"
	"github.com/viant/dumper/visitor"
)

type (
	// identity identifies a reference value on the current visit path
	identity struct {
		rType reflect.Type
		ptr   uintptr
		size  int
	}

	// session holds traversal state of one dump call
	session struct {
		*Dumper
		out      *line.Writer
		level    int
		depth    int
		visiting map[identity]bool
	}

	member struct {
		name       string
		value      interface{}
		timeLayout string
	}
)

func (s *session) visit(prefix string, value interface{}) {
	shape, resolved := s.resolve(value)
	if shape == ShapeScalar {
		s.line(prefix, s.text(resolved, ""))
		return
	}
	if id, ok := identityOf(resolved); ok {
		if s.visiting[id] {
			s.line(prefix, s.cycleMarker)
			return
		}
		s.visiting[id] = true
		defer delete(s.visiting, id)
	}
	if shape == ShapeEnumerable {
		s.visitEnumerable(prefix, resolved)
		return
	}
	s.visitComposite(prefix, resolved)
}

func (s *session) visitEnumerable(prefix string, value interface{}) {
	s.elements(value, func(element interface{}) {
		if shape, _ := s.resolve(element); shape != ShapeEnumerable {
			s.visit(prefix, element)
			return
		}
		s.line(prefix, enumerablePlaceholder)
		if s.level < s.depth {
			s.level++
			s.visit(prefix, element)
			s.level--
		}
	})
}

func (s *session) visitComposite(prefix string, value interface{}) {
	members := s.members(value)
	if len(members) == 0 {
		s.line(prefix, compositePlaceholder)
		return
	}
	s.out.Indent(s.level)
	s.out.WriteString(prefix)
	for i, m := range members {
		if i > 0 {
			s.out.Tab()
		}
		s.out.WriteString(m.name)
		s.out.WriteString("=")
		s.out.WriteString(s.inline(m))
	}
	s.out.NewLine()
	if s.level >= s.depth {
		return
	}
	for _, m := range members {
		if shape, _ := s.resolve(m.value); shape == ShapeScalar {
			continue
		}
		s.level++
		s.visit(m.name+": ", m.value)
		s.level--
	}
}

// inline returns member text used on the composite field line
func (s *session) inline(m *member) string {
	shape, resolved := s.resolve(m.value)
	switch shape {
	case ShapeEnumerable:
		return enumerablePlaceholder
	case ShapeComposite:
		return compositePlaceholder
	}
	return s.text(resolved, m.timeLayout)
}

func (s *session) line(prefix, text string) {
	s.out.Indent(s.level)
	s.out.WriteString(prefix)
	s.out.WriteString(text)
	s.out.NewLine()
}

func (s *session) elements(value interface{}, onElement func(element interface{})) {
	if lister, ok := value.(ElementLister); ok {
		for _, element := range lister.DumpElements() {
			onElement(element)
		}
		return
	}
	if reflect.ValueOf(value).Kind() == reflect.Map {
		visit, err := visitor.MapVisitorOf(value)
		if err != nil {
			return
		}
		_ = visit(func(key interface{}, element interface{}) (bool, error) {
			onElement(&MapEntry{Key: key, Value: element})
			return true, nil
		})
		return
	}
	visit, err := visitor.SliceVisitorOf(value)
	if err != nil {
		return
	}
	_ = visit(func(_ int, element interface{}) (bool, error) {
		onElement(element)
		return true, nil
	})
}

func (s *session) members(value interface{}) []*member {
	if lister, ok := value.(FieldLister); ok {
		fields := lister.DumpFields()
		result := make([]*member, 0, len(fields))
		for _, field := range fields {
			result = append(result, &member{name: field.Name, value: field.Value})
		}
		return result
	}
	visit, err := visitor.StructVisitorOf(value)
	if err != nil {
		return nil
	}
	var result []*member
	_ = visit(func(field *visitor.Field, fieldValue interface{}) (bool, error) {
		if field.Omitempty && isZero(fieldValue) {
			return true, nil
		}
		name := field.Name
		if !field.Explicit {
			name = s.fieldName(name)
		}
		result = append(result, &member{name: name, value: fieldValue, timeLayout: field.TimeLayout})
		return true, nil
	})
	return result
}

func isZero(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}

func identityOf(value interface{}) (identity, bool) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{rType: rValue.Type(), ptr: rValue.Pointer()}, true
	case reflect.Map:
		return identity{rType: rValue.Type(), ptr: rValue.Pointer()}, true
	case reflect.Slice:
		if rValue.Len() == 0 || rValue.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{rType: rValue.Type(), ptr: rValue.Pointer(), size: rValue.Len()}, true
	}
	return identity{}, false
}
