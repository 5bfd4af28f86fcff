package beanxml

// Document is the root <java> element of a bean XML file.
type Document struct {
	Version string
	Class   string
	Objects []Object
}

// Object is one <object> bean instance. Class is kept for diagnostics only.
type Object struct {
	Class      string
	Properties []Property
}

// Property is one <void property="..."> assignment. Value is nil when the
// element carries no payload. Names are not unique within an Object.
type Property struct {
	Name  string
	Value Value
}

// Kind identifies the payload variant of a Property.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindInt
	KindByte
	KindLong
	KindDate
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindByte:
		return "byte"
	case KindLong:
		return "long"
	case KindDate:
		return "date"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the closed set of payloads a Property can hold: String, Int,
// Byte, Long, *Date or *Array.
type Value interface {
	Kind() Kind
	isValue()
}

// KindOf reports the Kind of v, treating nil as KindAbsent.
func KindOf(v Value) Kind {
	if v == nil {
		return KindAbsent
	}
	return v.Kind()
}

type (
	String string
	Int    int32
	Byte   int8
	// Long is written as <long> but only ever carries 32-bit values in
	// the files this package reads.
	Long int32
)

// Date is a nested <object> holding milliseconds since the Unix epoch.
type Date struct {
	Class  *string
	Millis *int64
}

// Array is a nested <array> of indexed bytes. Length echoes the length
// attribute and is not authoritative; len(Elements) is.
type Array struct {
	Class    *string
	Length   *int32
	Elements []IndexedByte
}

// IndexedByte is one <void index="..."><byte>..</byte></void> array element.
// Index is kept as written; elements are consumed in document order.
type IndexedByte struct {
	Index string
	Value int8
}

func (String) Kind() Kind { return KindString }
func (Int) Kind() Kind    { return KindInt }
func (Byte) Kind() Kind   { return KindByte }
func (Long) Kind() Kind   { return KindLong }
func (*Date) Kind() Kind  { return KindDate }
func (*Array) Kind() Kind { return KindArray }

func (String) isValue() {}
func (Int) isValue()    {}
func (Byte) isValue()   {}
func (Long) isValue()   {}
func (*Date) isValue()  {}
func (*Array) isValue() {}
