package dumper

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type money int

func (m money) DumpValue() string {
	return fmt.Sprintf("$%d.%02d", int(m)/100, int(m)%100)
}

type basket struct {
	items []string
}

func (b *basket) DumpElements() []interface{} {
	result := make([]interface{}, len(b.items))
	for i, item := range b.items {
		result[i] = item
	}
	return result
}

type pair struct {
	left, right interface{}
}

func (p pair) DumpFields() []Field {
	return []Field{{Name: "Left", Value: p.left}, {Name: "Right", Value: p.right}}
}

func TestClassify(t *testing.T) {
	now := time.Now()
	var nilPoint *Point
	var nilSlice []int
	var testCases = []struct {
		description string
		value       interface{}
		expect      Shape
	}{
		{description: "nil", value: nil, expect: ShapeScalar},
		{description: "int", value: 1, expect: ShapeScalar},
		{description: "float", value: 1.5, expect: ShapeScalar},
		{description: "bool", value: true, expect: ShapeScalar},
		{description: "rune", value: 'x', expect: ShapeScalar},
		{description: "string", value: "abc", expect: ShapeScalar},
		{description: "string pointer", value: &[]string{"a"}[0], expect: ShapeScalar},
		{description: "time", value: now, expect: ShapeScalar},
		{description: "time pointer", value: &now, expect: ShapeScalar},
		{description: "error", value: errors.New("x"), expect: ShapeScalar},
		{description: "typed nil pointer", value: nilPoint, expect: ShapeScalar},
		{description: "nil slice", value: nilSlice, expect: ShapeScalar},
		{description: "value renderer", value: money(150), expect: ShapeScalar},
		{description: "slice", value: []int{1}, expect: ShapeEnumerable},
		{description: "empty slice", value: []int{}, expect: ShapeEnumerable},
		{description: "array", value: [2]int{}, expect: ShapeEnumerable},
		{description: "map", value: map[string]int{}, expect: ShapeEnumerable},
		{description: "bytes", value: []byte("ab"), expect: ShapeEnumerable},
		{description: "slice pointer", value: &[]int{1}, expect: ShapeEnumerable},
		{description: "element lister", value: &basket{}, expect: ShapeEnumerable},
		{description: "struct", value: Point{}, expect: ShapeComposite},
		{description: "struct pointer", value: &Point{}, expect: ShapeComposite},
		{description: "field lister", value: pair{}, expect: ShapeComposite},
		{description: "func", value: func() {}, expect: ShapeScalar},
		{description: "chan", value: make(chan int), expect: ShapeScalar},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Classify(testCase.value), testCase.description)
	}
}

func TestSdump_Capabilities(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		depth       int
		expect      string
	}{
		{
			description: "value renderer",
			value:       money(1505),
			expect:      lines("$15.05"),
		},
		{
			description: "value renderer field",
			value:       struct{ Price money }{Price: 99},
			expect:      lines("Price=$0.99"),
		},
		{
			description: "element lister",
			value:       &basket{items: []string{"apple", "pear"}},
			expect:      lines("apple", "pear"),
		},
		{
			description: "field lister",
			value:       pair{left: 1, right: "x"},
			expect:      lines("Left=1  Right=x"),
		},
		{
			description: "field lister with nested lister",
			value:       pair{left: &basket{items: []string{"a"}}, right: pair{left: 2}},
			depth:       1,
			expect: lines(
				"Left=...        Right={ }",
				"  Left: a",
				"  Right: Left=2         Right=null",
			),
		},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Sdump(testCase.value, testCase.depth), testCase.description)
	}
}

func TestShape_String(t *testing.T) {
	assert.EqualValues(t, "scalar", ShapeScalar.String())
	assert.EqualValues(t, "enumerable", ShapeEnumerable.String())
	assert.EqualValues(t, "composite", ShapeComposite.String())
}
