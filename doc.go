// Package dumper renders arbitrary Go values as indented, human-readable text.
//
// Each visited value is classified as a scalar, an enumerable or a composite (see Shape).
// Scalars print on their own line, enumerable elements print one per line, and composite
// fields print as name=value pairs aligned on tab stops. Nested enumerables and composites
// print as "..." and "{ }" placeholders, then expand on following lines while the nesting
// level is below the requested depth.
//
//	dumper.Dump(customer, 1)
//	text := dumper.Sdump(orders, 2, dumper.WithDateFormat("YYYY/MM/DD"))
//
// Types may opt into a shape by implementing ValueRenderer, ElementLister or FieldLister;
// other values are inspected with reflection, exported struct fields only.
// Struct fields honour the format tag (name, caseFormat, dateFormat, omitempty, ignore, inline)
// and dump:"-".
//
// Values already on the current visit path print as "<cycle>" instead of being expanded again.
package dumper
