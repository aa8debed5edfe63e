package dumper

import (
	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//Option dumper option
type Option func(d *Dumper)

//Options represents dumper options
type Options []Option

//Apply applies options
func (o Options) Apply(d *Dumper) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		if opt != nil {
			opt(d)
		}
	}
}

//WithTimeLayout sets time layout used for date/time values
func WithTimeLayout(layout string) Option {
	return func(d *Dumper) {
		if layout != "" {
			d.timeLayout = layout
		}
	}
}

//WithDateFormat sets ISO style date format (i.e. YYYY/MM/DD) used for date/time values
func WithDateFormat(dateFormat string) Option {
	return func(d *Dumper) {
		if dateFormat != "" {
			d.timeLayout = ftime.DateFormatToTimeLayout(dateFormat)
		}
	}
}

//WithCaseFormat sets case format for field names not explicitly named with a format tag
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(d *Dumper) {
		d.caseFormat = caseFormat
	}
}

//WithIndent sets a per level indentation unit
func WithIndent(indent string) Option {
	return func(d *Dumper) {
		d.indent = indent
	}
}

//WithTabWidth sets tab stop width used to align composite fields, 0 disables padding
func WithTabWidth(width int) Option {
	return func(d *Dumper) {
		if width >= 0 {
			d.tabWidth = width
		}
	}
}

//WithStringers renders fmt.Stringer implementations as scalars
func WithStringers(enabled bool) Option {
	return func(d *Dumper) {
		d.stringers = enabled
	}
}

//WithNumberLanguage renders numbers as language specific grouped decimals
func WithNumberLanguage(tag language.Tag) Option {
	return func(d *Dumper) {
		d.printer = message.NewPrinter(tag)
	}
}

//WithCycleMarker sets a token printed instead of re-entering a value already on the visit path
func WithCycleMarker(marker string) Option {
	return func(d *Dumper) {
		if marker != "" {
			d.cycleMarker = marker
		}
	}
}
