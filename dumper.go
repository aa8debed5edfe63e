package dumper

import (
	"io"
	"os"
	"strings"

	"github.com/viant/dumper/internal/line"
	"github.com/viant/dumper/visitor"
	"github.com/viant/tagly/format/text"
	"golang.org/x/text/message"
)

const (
	//DefaultTimeLayout renders calendar date only
	DefaultTimeLayout = "2006-01-02"
	//DefaultCycleMarker is printed instead of re-entering a value already on the visit path
	DefaultCycleMarker = "<cycle>"

	enumerablePlaceholder = "..."
	compositePlaceholder  = "{ }"
)

var defaultDumper = New()

// Dumper renders arbitrary values as indented text.
// Dumper is immutable once created; each dump call owns its traversal state.
type Dumper struct {
	indent      string
	tabWidth    int
	timeLayout  string
	cycleMarker string
	caseFormat  text.CaseFormat
	stringers   bool
	printer     *message.Printer
	names       *visitor.SyncMap[string, string]
}

// Fdump writes value to w, expanding nested values up to depth levels
func (d *Dumper) Fdump(w io.Writer, value interface{}, depth int) error {
	if depth < 0 {
		depth = 0
	}
	sess := &session{
		Dumper:   d,
		out:      line.New(w, d.indent, d.tabWidth),
		depth:    depth,
		visiting: map[identity]bool{},
	}
	sess.visit("", value)
	return sess.out.Flush()
}

// Sdump returns value text
func (d *Dumper) Sdump(value interface{}, depth int) string {
	builder := &strings.Builder{}
	_ = d.Fdump(builder, value, depth)
	return builder.String()
}

func (d *Dumper) fieldName(name string) string {
	if d.caseFormat == "" {
		return name
	}
	return d.names.GetOrCompute(name, func(name string) string {
		if name == "ID" {
			switch d.caseFormat {
			case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
				return "id"
			}
		}
		src := text.DetectCaseFormat(name)
		if !src.IsDefined() {
			src = text.CaseFormatUpperCamel
		}
		return src.Format(name, d.caseFormat)
	})
}

// New creates a dumper
func New(opts ...Option) *Dumper {
	ret := &Dumper{
		indent:      line.DefaultIndent,
		tabWidth:    line.DefaultTabWidth,
		timeLayout:  DefaultTimeLayout,
		cycleMarker: DefaultCycleMarker,
		names:       visitor.NewSyncMap[string, string](),
	}
	Options(opts).Apply(ret)
	return ret
}

// Dump writes value to standard output
func Dump(value interface{}, depth int) {
	_ = defaultDumper.Fdump(os.Stdout, value, depth)
}

// Fdump writes value to w
func Fdump(w io.Writer, value interface{}, depth int, opts ...Option) error {
	return dumperFor(opts).Fdump(w, value, depth)
}

// Sdump returns value text
func Sdump(value interface{}, depth int, opts ...Option) string {
	return dumperFor(opts).Sdump(value, depth)
}

func dumperFor(opts []Option) *Dumper {
	if len(opts) == 0 {
		return defaultDumper
	}
	return New(opts...)
}
