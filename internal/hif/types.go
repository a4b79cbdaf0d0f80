package hif

// ReferencedType is a type node referring to a declaration by name rather
// than describing structure inline.
type ReferencedType interface {
	Type
	Named
	isReferencedType()
}

// Array is an indexed composite with an element type and a span.
type Array struct {
	compositeTypeBase
	signed bool
	span   *Range
}

func NewArray() *Array {
	n := &Array{}
	n.init(n)
	return n
}

func (n *Array) Class() ClassID { return ClassArray }

func (n *Array) Signed() bool     { return n.signed }
func (n *Array) SetSigned(v bool) { n.signed = v }

func (n *Array) Span() *Range           { return n.span }
func (n *Array) SetSpan(r *Range) *Range { return setChild(n, "span", &n.span, r) }

func (n *Array) slots() []Slot {
	return []Slot{
		fieldSlot(n, "span", FacetSpan, &n.span),
		n.elemSlot(),
	}
}

func (n *Array) sameAttrs(o Object, opt *EqualsOptions) bool {
	other := o.(*Array)
	if !n.typeAttrsEqual(&other.typeBase, opt) {
		return false
	}
	return !opt.CheckSignedFlag || n.signed == other.signed
}

func (n *Array) shallowClone() Object {
	c := NewArray()
	c.variant = n.variant
	c.signed = n.signed
	return c
}

// Bit is a single-bit type; logic selects 9-valued logic, resolved a
// resolved signal type.
type Bit struct {
	simpleTypeBase
	logic    bool
	resolved bool
}

func NewBit() *Bit {
	n := &Bit{}
	n.init(n)
	return n
}

func (n *Bit) Class() ClassID { return ClassBit }

func (n *Bit) Logic() bool        { return n.logic }
func (n *Bit) SetLogic(v bool)    { n.logic = v }
func (n *Bit) Resolved() bool     { return n.resolved }
func (n *Bit) SetResolved(v bool) { n.resolved = v }

func (n *Bit) slots() []Slot { return nil }

func (n *Bit) sameAttrs(o Object, opt *EqualsOptions) bool {
	other := o.(*Bit)
	if !n.simpleAttrsEqual(&other.simpleTypeBase, opt) {
		return false
	}
	if opt.CheckLogicFlag && n.logic != other.logic {
		return false
	}
	return !opt.CheckResolvedFlag || n.resolved == other.resolved
}

func (n *Bit) shallowClone() Object {
	c := NewBit()
	c.variant, c.constexpr = n.variant, n.constexpr
	c.logic, c.resolved = n.logic, n.resolved
	return c
}

// Bitvector is a vector of bits with a span.
type Bitvector struct {
	simpleTypeBase
	signed   bool
	logic    bool
	resolved bool
	span     *Range
}

func NewBitvector() *Bitvector {
	n := &Bitvector{}
	n.init(n)
	return n
}

func (n *Bitvector) Class() ClassID { return ClassBitvector }

func (n *Bitvector) Signed() bool       { return n.signed }
func (n *Bitvector) SetSigned(v bool)   { n.signed = v }
func (n *Bitvector) Logic() bool        { return n.logic }
func (n *Bitvector) SetLogic(v bool)    { n.logic = v }
func (n *Bitvector) Resolved() bool     { return n.resolved }
func (n *Bitvector) SetResolved(v bool) { n.resolved = v }

func (n *Bitvector) Span() *Range           { return n.span }
func (n *Bitvector) SetSpan(r *Range) *Range { return setChild(n, "span", &n.span, r) }

func (n *Bitvector) slots() []Slot {
	return []Slot{fieldSlot(n, "span", FacetSpan, &n.span)}
}

func (n *Bitvector) sameAttrs(o Object, opt *EqualsOptions) bool {
	other := o.(*Bitvector)
	if !n.simpleAttrsEqual(&other.simpleTypeBase, opt) {
		return false
	}
	if opt.CheckSignedFlag && n.signed != other.signed {
		return false
	}
	if opt.CheckLogicFlag && n.logic != other.logic {
		return false
	}
	return !opt.CheckResolvedFlag || n.resolved == other.resolved
}

func (n *Bitvector) shallowClone() Object {
	c := NewBitvector()
	c.variant, c.constexpr = n.variant, n.constexpr
	c.signed, c.logic, c.resolved = n.signed, n.logic, n.resolved
	return c
}

// Bool is the boolean type.
type Bool struct{ simpleTypeBase }

func NewBool() *Bool {
	n := &Bool{}
	n.init(n)
	return n
}

func (n *Bool) Class() ClassID { return ClassBool }
func (n *Bool) slots() []Slot  { return nil }

func (n *Bool) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*Bool).simpleTypeBase, opt)
}

func (n *Bool) shallowClone() Object {
	c := NewBool()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// Char is the character type.
type Char struct{ simpleTypeBase }

func NewChar() *Char {
	n := &Char{}
	n.init(n)
	return n
}

func (n *Char) Class() ClassID { return ClassChar }
func (n *Char) slots() []Slot  { return nil }

func (n *Char) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*Char).simpleTypeBase, opt)
}

func (n *Char) shallowClone() Object {
	c := NewChar()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// Enum is an enumeration type owning its value declarations.
type Enum struct {
	typeBase
	Values BList[*EnumValue]
}

func NewEnum() *Enum {
	n := &Enum{}
	n.init(n)
	initBList(&n.Values, n, "values")
	return n
}

func (n *Enum) Class() ClassID { return ClassEnum }

func (n *Enum) slots() []Slot {
	return []Slot{listSlot(FacetChild, &n.Values.core)}
}

func (n *Enum) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.typeAttrsEqual(&o.(*Enum).typeBase, opt)
}

func (n *Enum) shallowClone() Object {
	c := NewEnum()
	c.variant = n.variant
	return c
}

// Event is the event type used by wait sensitivity.
type Event struct{ simpleTypeBase }

func NewEvent() *Event {
	n := &Event{}
	n.init(n)
	return n
}

func (n *Event) Class() ClassID { return ClassEvent }
func (n *Event) slots() []Slot  { return nil }

func (n *Event) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*Event).simpleTypeBase, opt)
}

func (n *Event) shallowClone() Object {
	c := NewEvent()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// File is a file-of-element type.
type File struct{ compositeTypeBase }

func NewFile() *File {
	n := &File{}
	n.init(n)
	return n
}

func (n *File) Class() ClassID { return ClassFile }
func (n *File) slots() []Slot  { return []Slot{n.elemSlot()} }

func (n *File) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.typeAttrsEqual(&o.(*File).typeBase, opt)
}

func (n *File) shallowClone() Object {
	c := NewFile()
	c.variant = n.variant
	return c
}

// Int is an integer type, optionally constrained by a span.
type Int struct {
	simpleTypeBase
	signed bool
	span   *Range
}

func NewInt() *Int {
	n := &Int{}
	n.init(n)
	n.signed = true
	return n
}

func (n *Int) Class() ClassID { return ClassInt }

func (n *Int) Signed() bool     { return n.signed }
func (n *Int) SetSigned(v bool) { n.signed = v }

func (n *Int) Span() *Range           { return n.span }
func (n *Int) SetSpan(r *Range) *Range { return setChild(n, "span", &n.span, r) }

func (n *Int) slots() []Slot {
	return []Slot{fieldSlot(n, "span", FacetSpan, &n.span)}
}

func (n *Int) sameAttrs(o Object, opt *EqualsOptions) bool {
	other := o.(*Int)
	if !n.simpleAttrsEqual(&other.simpleTypeBase, opt) {
		return false
	}
	return !opt.CheckSignedFlag || n.signed == other.signed
}

func (n *Int) shallowClone() Object {
	c := NewInt()
	c.variant, c.constexpr = n.variant, n.constexpr
	c.signed = n.signed
	return c
}

// Pointer is a pointer-to-element type.
type Pointer struct{ compositeTypeBase }

func NewPointer() *Pointer {
	n := &Pointer{}
	n.init(n)
	return n
}

func (n *Pointer) Class() ClassID { return ClassPointer }
func (n *Pointer) slots() []Slot  { return []Slot{n.elemSlot()} }

func (n *Pointer) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.typeAttrsEqual(&o.(*Pointer).typeBase, opt)
}

func (n *Pointer) shallowClone() Object {
	c := NewPointer()
	c.variant = n.variant
	return c
}

// Real is a floating point type, optionally constrained by a span.
type Real struct {
	simpleTypeBase
	span *Range
}

func NewReal() *Real {
	n := &Real{}
	n.init(n)
	return n
}

func (n *Real) Class() ClassID { return ClassReal }

func (n *Real) Span() *Range           { return n.span }
func (n *Real) SetSpan(r *Range) *Range { return setChild(n, "span", &n.span, r) }

func (n *Real) slots() []Slot {
	return []Slot{fieldSlot(n, "span", FacetSpan, &n.span)}
}

func (n *Real) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*Real).simpleTypeBase, opt)
}

func (n *Real) shallowClone() Object {
	c := NewReal()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// Record is a field-composite type.
type Record struct {
	typeBase
	packed bool
	union  bool
	Fields BList[*Field]
}

func NewRecord() *Record {
	n := &Record{}
	n.init(n)
	initBList(&n.Fields, n, "fields")
	return n
}

func (n *Record) Class() ClassID { return ClassRecord }

func (n *Record) Packed() bool     { return n.packed }
func (n *Record) SetPacked(v bool) { n.packed = v }
func (n *Record) Union() bool      { return n.union }
func (n *Record) SetUnion(v bool)  { n.union = v }

func (n *Record) slots() []Slot {
	return []Slot{listSlot(FacetChild, &n.Fields.core)}
}

func (n *Record) sameAttrs(o Object, opt *EqualsOptions) bool {
	other := o.(*Record)
	if !n.typeAttrsEqual(&other.typeBase, opt) {
		return false
	}
	return n.packed == other.packed && n.union == other.union
}

func (n *Record) shallowClone() Object {
	c := NewRecord()
	c.variant = n.variant
	c.packed, c.union = n.packed, n.union
	return c
}

// Reference wraps another type transparently; the equality and matching
// engines step through it unless told otherwise.
type Reference struct{ compositeTypeBase }

func NewReference() *Reference {
	n := &Reference{}
	n.init(n)
	return n
}

func (n *Reference) Class() ClassID { return ClassReference }
func (n *Reference) slots() []Slot  { return []Slot{n.elemSlot()} }

func (n *Reference) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.typeAttrsEqual(&o.(*Reference).typeBase, opt)
}

func (n *Reference) shallowClone() Object {
	c := NewReference()
	c.variant = n.variant
	return c
}

// Signed is a signed numeric vector with a span.
type Signed struct {
	simpleTypeBase
	span *Range
}

func NewSigned() *Signed {
	n := &Signed{}
	n.init(n)
	return n
}

func (n *Signed) Class() ClassID { return ClassSigned }

func (n *Signed) Span() *Range           { return n.span }
func (n *Signed) SetSpan(r *Range) *Range { return setChild(n, "span", &n.span, r) }

func (n *Signed) slots() []Slot {
	return []Slot{fieldSlot(n, "span", FacetSpan, &n.span)}
}

func (n *Signed) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*Signed).simpleTypeBase, opt)
}

func (n *Signed) shallowClone() Object {
	c := NewSigned()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// String is a text type with optional span information.
type String struct {
	simpleTypeBase
	spanInfo *Range
}

func NewString() *String {
	n := &String{}
	n.init(n)
	return n
}

func (n *String) Class() ClassID { return ClassString }

func (n *String) SpanInformation() *Range { return n.spanInfo }
func (n *String) SetSpanInformation(r *Range) *Range {
	return setChild(n, "spanInformation", &n.spanInfo, r)
}

func (n *String) slots() []Slot {
	return []Slot{fieldSlot(n, "spanInformation", FacetStringSpan, &n.spanInfo)}
}

func (n *String) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*String).simpleTypeBase, opt)
}

func (n *String) shallowClone() Object {
	c := NewString()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// Time is the physical time type.
type Time struct{ simpleTypeBase }

func NewTime() *Time {
	n := &Time{}
	n.init(n)
	return n
}

func (n *Time) Class() ClassID { return ClassTime }
func (n *Time) slots() []Slot  { return nil }

func (n *Time) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*Time).simpleTypeBase, opt)
}

func (n *Time) shallowClone() Object {
	c := NewTime()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// TypeReference refers to a type declaration by name, optionally
// constraining it with ranges and template arguments.
type TypeReference struct {
	typeBase
	named
	instance  Value
	Ranges    BList[*Range]
	TPAssigns BList[TPAssign]
}

func NewTypeReference(name string) *TypeReference {
	n := &TypeReference{}
	n.named.name = name
	n.init(n)
	initBList(&n.Ranges, n, "ranges")
	initBList(&n.TPAssigns, n, "templateParameterAssigns")
	return n
}

func (*TypeReference) isSymbol()         {}
func (*TypeReference) isReferencedType() {}
func (n *TypeReference) Class() ClassID  { return ClassTypeReference }

func (n *TypeReference) Instance() Value { return n.instance }
func (n *TypeReference) SetInstance(v Value) Value {
	return setChild[Value](n, "instance", &n.instance, v)
}

func (n *TypeReference) slots() []Slot {
	return []Slot{
		fieldSlot(n, "instance", FacetInstance, &n.instance),
		listSlot(FacetChild, &n.Ranges.core),
		listSlot(FacetChild, &n.TPAssigns.core),
	}
}

func (n *TypeReference) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.typeAttrsEqual(&o.(*TypeReference).typeBase, opt)
}

func (n *TypeReference) shallowClone() Object {
	c := NewTypeReference(n.name)
	c.variant = n.variant
	return c
}

// Unsigned is an unsigned numeric vector with a span.
type Unsigned struct {
	simpleTypeBase
	span *Range
}

func NewUnsigned() *Unsigned {
	n := &Unsigned{}
	n.init(n)
	return n
}

func (n *Unsigned) Class() ClassID { return ClassUnsigned }

func (n *Unsigned) Span() *Range           { return n.span }
func (n *Unsigned) SetSpan(r *Range) *Range { return setChild(n, "span", &n.span, r) }

func (n *Unsigned) slots() []Slot {
	return []Slot{fieldSlot(n, "span", FacetSpan, &n.span)}
}

func (n *Unsigned) sameAttrs(o Object, opt *EqualsOptions) bool {
	return n.simpleAttrsEqual(&o.(*Unsigned).simpleTypeBase, opt)
}

func (n *Unsigned) shallowClone() Object {
	c := NewUnsigned()
	c.variant, c.constexpr = n.variant, n.constexpr
	return c
}

// ViewReference refers to a view of a design unit.
type ViewReference struct {
	typeBase
	named
	unitName  string
	instance  Value
	TPAssigns BList[TPAssign]
}

func NewViewReference(unitName, viewName string) *ViewReference {
	n := &ViewReference{unitName: unitName}
	n.named.name = viewName
	n.init(n)
	initBList(&n.TPAssigns, n, "templateParameterAssigns")
	return n
}

func (*ViewReference) isSymbol()         {}
func (*ViewReference) isReferencedType() {}
func (n *ViewReference) Class() ClassID  { return ClassViewReference }

// UnitName returns the name of the referenced design unit.
func (n *ViewReference) UnitName() string     { return n.unitName }
func (n *ViewReference) SetUnitName(s string) { n.unitName = s }

func (n *ViewReference) Instance() Value { return n.instance }
func (n *ViewReference) SetInstance(v Value) Value {
	return setChild[Value](n, "instance", &n.instance, v)
}

func (n *ViewReference) slots() []Slot {
	return []Slot{
		fieldSlot(n, "instance", FacetInstance, &n.instance),
		listSlot(FacetChild, &n.TPAssigns.core),
	}
}

func (n *ViewReference) sameAttrs(o Object, opt *EqualsOptions) bool {
	other := o.(*ViewReference)
	if !n.typeAttrsEqual(&other.typeBase, opt) {
		return false
	}
	return n.unitName == other.unitName
}

func (n *ViewReference) shallowClone() Object {
	c := NewViewReference(n.unitName, n.name)
	c.variant = n.variant
	return c
}
