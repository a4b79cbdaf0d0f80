package hif

// Literal value nodes. Each carries its constant plus an optional syntactic
// type child describing how the literal was written.

// BitValue is a single-bit literal.
type BitValue struct {
	constValueBase
	value BitConstant
}

func NewBitValue(v BitConstant) *BitValue {
	n := &BitValue{value: v}
	n.init(n)
	return n
}

func (n *BitValue) Class() ClassID { return ClassBitValue }

func (n *BitValue) Value() BitConstant     { return n.value }
func (n *BitValue) SetValue(v BitConstant) { n.value = v }

func (n *BitValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *BitValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.value == o.(*BitValue).value
}

func (n *BitValue) shallowClone() Object { return NewBitValue(n.value) }

// BitvectorValue is a literal bit string such as "01xz".
type BitvectorValue struct {
	constValueBase
	value string
}

func NewBitvectorValue(bits string) *BitvectorValue {
	n := &BitvectorValue{value: bits}
	n.init(n)
	return n
}

func (n *BitvectorValue) Class() ClassID { return ClassBitvectorValue }

func (n *BitvectorValue) Value() string     { return n.value }
func (n *BitvectorValue) SetValue(v string) { n.value = v }

func (n *BitvectorValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *BitvectorValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.value == o.(*BitvectorValue).value
}

func (n *BitvectorValue) shallowClone() Object { return NewBitvectorValue(n.value) }

// BoolValue is a boolean literal.
type BoolValue struct {
	constValueBase
	value bool
}

func NewBoolValue(v bool) *BoolValue {
	n := &BoolValue{value: v}
	n.init(n)
	return n
}

func (n *BoolValue) Class() ClassID { return ClassBoolValue }

func (n *BoolValue) Value() bool     { return n.value }
func (n *BoolValue) SetValue(v bool) { n.value = v }

func (n *BoolValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *BoolValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.value == o.(*BoolValue).value
}

func (n *BoolValue) shallowClone() Object { return NewBoolValue(n.value) }

// CharValue is a character literal.
type CharValue struct {
	constValueBase
	value rune
}

func NewCharValue(v rune) *CharValue {
	n := &CharValue{value: v}
	n.init(n)
	return n
}

func (n *CharValue) Class() ClassID { return ClassCharValue }

func (n *CharValue) Value() rune     { return n.value }
func (n *CharValue) SetValue(v rune) { n.value = v }

func (n *CharValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *CharValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.value == o.(*CharValue).value
}

func (n *CharValue) shallowClone() Object { return NewCharValue(n.value) }

// IntValue is an integer literal.
type IntValue struct {
	constValueBase
	value int64
}

func NewIntValue(v int64) *IntValue {
	n := &IntValue{value: v}
	n.init(n)
	return n
}

func (n *IntValue) Class() ClassID { return ClassIntValue }

func (n *IntValue) Value() int64     { return n.value }
func (n *IntValue) SetValue(v int64) { n.value = v }

func (n *IntValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *IntValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.value == o.(*IntValue).value
}

func (n *IntValue) shallowClone() Object { return NewIntValue(n.value) }

// RealValue is a floating point literal.
type RealValue struct {
	constValueBase
	value float64
}

func NewRealValue(v float64) *RealValue {
	n := &RealValue{value: v}
	n.init(n)
	return n
}

func (n *RealValue) Class() ClassID { return ClassRealValue }

func (n *RealValue) Value() float64     { return n.value }
func (n *RealValue) SetValue(v float64) { n.value = v }

func (n *RealValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *RealValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.value == o.(*RealValue).value
}

func (n *RealValue) shallowClone() Object { return NewRealValue(n.value) }

// StringValue is a text literal.
type StringValue struct {
	constValueBase
	value string
}

func NewStringValue(v string) *StringValue {
	n := &StringValue{value: v}
	n.init(n)
	return n
}

func (n *StringValue) Class() ClassID { return ClassStringValue }

func (n *StringValue) Value() string     { return n.value }
func (n *StringValue) SetValue(v string) { n.value = v }

func (n *StringValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *StringValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.value == o.(*StringValue).value
}

func (n *StringValue) shallowClone() Object { return NewStringValue(n.value) }

// TimeValue is a physical time literal.
type TimeValue struct {
	constValueBase
	value float64
	unit  TimeUnit
}

func NewTimeValue(v float64, unit TimeUnit) *TimeValue {
	n := &TimeValue{value: v, unit: unit}
	n.init(n)
	return n
}

func (n *TimeValue) Class() ClassID { return ClassTimeValue }

func (n *TimeValue) Value() float64     { return n.value }
func (n *TimeValue) SetValue(v float64) { n.value = v }
func (n *TimeValue) Unit() TimeUnit     { return n.unit }
func (n *TimeValue) SetUnit(u TimeUnit) { n.unit = u }

func (n *TimeValue) slots() []Slot { return []Slot{n.typeSlot()} }

func (n *TimeValue) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*TimeValue)
	return n.value == other.value && n.unit == other.unit
}

func (n *TimeValue) shallowClone() Object { return NewTimeValue(n.value, n.unit) }
