package hif

// Identifier is a plain name referring to a declaration in scope.
type Identifier struct {
	valueBase
	named
}

func NewIdentifier(name string) *Identifier {
	n := &Identifier{}
	n.named.name = name
	n.init(n)
	return n
}

func (*Identifier) isSymbol()          {}
func (n *Identifier) Class() ClassID   { return ClassIdentifier }
func (n *Identifier) slots() []Slot    { return nil }
func (n *Identifier) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Identifier) shallowClone() Object                  { return NewIdentifier(n.name) }

// Expression applies an operator to one or two operand values.
type Expression struct {
	valueBase
	op     Operator
	value1 Value
	value2 Value
}

func NewExpression(op Operator, v1, v2 Value) *Expression {
	n := &Expression{op: op}
	n.init(n)
	n.SetValue1(v1)
	n.SetValue2(v2)
	return n
}

func (n *Expression) Class() ClassID { return ClassExpression }

func (n *Expression) Operator() Operator      { return n.op }
func (n *Expression) SetOperator(op Operator) { n.op = op }

func (n *Expression) Value1() Value          { return n.value1 }
func (n *Expression) SetValue1(v Value) Value { return setChild[Value](n, "value1", &n.value1, v) }
func (n *Expression) Value2() Value          { return n.value2 }
func (n *Expression) SetValue2(v Value) Value { return setChild[Value](n, "value2", &n.value2, v) }

func (n *Expression) slots() []Slot {
	return []Slot{
		fieldSlot(n, "value1", FacetChild, &n.value1),
		fieldSlot(n, "value2", FacetChild, &n.value2),
	}
}

func (n *Expression) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.op == o.(*Expression).op
}

func (n *Expression) shallowClone() Object {
	c := &Expression{op: n.op}
	c.init(c)
	return c
}

// FunctionCall invokes a function by name.
type FunctionCall struct {
	valueBase
	named
	instance Value
	// ParameterAssigns binds actual arguments to formal parameters.
	ParameterAssigns BList[*ParameterAssign]
}

func NewFunctionCall(name string) *FunctionCall {
	n := &FunctionCall{}
	n.named.name = name
	n.init(n)
	initBList(&n.ParameterAssigns, n, "parameterAssigns")
	return n
}

func (*FunctionCall) isSymbol()        {}
func (n *FunctionCall) Class() ClassID { return ClassFunctionCall }

// Instance returns the value the call is invoked on, if any.
func (n *FunctionCall) Instance() Value          { return n.instance }
func (n *FunctionCall) SetInstance(v Value) Value { return setChild[Value](n, "instance", &n.instance, v) }

func (n *FunctionCall) slots() []Slot {
	return []Slot{
		fieldSlot(n, "instance", FacetInstance, &n.instance),
		listSlot(FacetChild, &n.ParameterAssigns.core),
	}
}

func (n *FunctionCall) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *FunctionCall) shallowClone() Object                  { return NewFunctionCall(n.name) }

// FieldReference selects a named field of a prefix value.
type FieldReference struct {
	valueBase
	named
	prefix Value
}

func NewFieldReference(prefix Value, name string) *FieldReference {
	n := &FieldReference{}
	n.named.name = name
	n.init(n)
	n.SetPrefix(prefix)
	return n
}

func (*FieldReference) isSymbol()        {}
func (n *FieldReference) Class() ClassID { return ClassFieldReference }

func (n *FieldReference) Prefix() Value          { return n.prefix }
func (n *FieldReference) SetPrefix(v Value) Value { return setChild[Value](n, "prefix", &n.prefix, v) }

func (n *FieldReference) slots() []Slot {
	return []Slot{fieldSlot(n, "prefix", FacetChild, &n.prefix)}
}

func (n *FieldReference) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *FieldReference) shallowClone() Object {
	c := &FieldReference{named: named{name: n.name}}
	c.init(c)
	return c
}

// Member indexes a prefix value with a single index expression.
type Member struct {
	valueBase
	prefix Value
	index  Value
}

func NewMember(prefix, index Value) *Member {
	n := &Member{}
	n.init(n)
	n.SetPrefix(prefix)
	n.SetIndex(index)
	return n
}

func (n *Member) Class() ClassID { return ClassMember }

func (n *Member) Prefix() Value          { return n.prefix }
func (n *Member) SetPrefix(v Value) Value { return setChild[Value](n, "prefix", &n.prefix, v) }
func (n *Member) Index() Value           { return n.index }
func (n *Member) SetIndex(v Value) Value  { return setChild[Value](n, "index", &n.index, v) }

func (n *Member) slots() []Slot {
	return []Slot{
		fieldSlot(n, "prefix", FacetChild, &n.prefix),
		fieldSlot(n, "index", FacetChild, &n.index),
	}
}

func (n *Member) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Member) shallowClone() Object                  { c := &Member{}; c.init(c); return c }

// Slice selects a span of a prefix value.
type Slice struct {
	valueBase
	prefix Value
	span   *Range
}

func NewSlice(prefix Value, span *Range) *Slice {
	n := &Slice{}
	n.init(n)
	n.SetPrefix(prefix)
	n.SetSpan(span)
	return n
}

func (n *Slice) Class() ClassID { return ClassSlice }

func (n *Slice) Prefix() Value           { return n.prefix }
func (n *Slice) SetPrefix(v Value) Value  { return setChild[Value](n, "prefix", &n.prefix, v) }
func (n *Slice) Span() *Range            { return n.span }
func (n *Slice) SetSpan(r *Range) *Range  { return setChild(n, "span", &n.span, r) }

func (n *Slice) slots() []Slot {
	return []Slot{
		fieldSlot(n, "prefix", FacetChild, &n.prefix),
		fieldSlot(n, "span", FacetSpan, &n.span),
	}
}

func (n *Slice) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Slice) shallowClone() Object                  { c := &Slice{}; c.init(c); return c }

// Cast converts a value to a target type.
type Cast struct {
	valueBase
	typ Type
	op  Value
}

func NewCast(t Type, op Value) *Cast {
	n := &Cast{}
	n.init(n)
	n.SetType(t)
	n.SetOp(op)
	return n
}

func (n *Cast) Class() ClassID { return ClassCast }

func (n *Cast) Type() Type         { return n.typ }
func (n *Cast) SetType(t Type) Type { return setChild[Type](n, "type", &n.typ, t) }
func (n *Cast) Op() Value          { return n.op }
func (n *Cast) SetOp(v Value) Value { return setChild[Value](n, "op", &n.op, v) }

func (n *Cast) slots() []Slot {
	return []Slot{
		fieldSlot(n, "type", FacetChild, &n.typ),
		fieldSlot(n, "op", FacetChild, &n.op),
	}
}

func (n *Cast) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Cast) shallowClone() Object                  { c := &Cast{}; c.init(c); return c }

// Aggregate is a composite value built from indexed alternatives plus an
// optional catch-all.
type Aggregate struct {
	valueBase
	Alts   BList[*AggregateAlt]
	others Value
}

func NewAggregate() *Aggregate {
	n := &Aggregate{}
	n.init(n)
	initBList(&n.Alts, n, "alts")
	return n
}

func (n *Aggregate) Class() ClassID { return ClassAggregate }

func (n *Aggregate) Others() Value          { return n.others }
func (n *Aggregate) SetOthers(v Value) Value { return setChild[Value](n, "others", &n.others, v) }

func (n *Aggregate) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Alts.core),
		fieldSlot(n, "others", FacetChild, &n.others),
	}
}

func (n *Aggregate) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Aggregate) shallowClone() Object                  { return NewAggregate() }

// AggregateAlt assigns a value to one or more indices of an aggregate.
type AggregateAlt struct {
	altBase
	Indices BList[Value]
	value   Value
}

func NewAggregateAlt() *AggregateAlt {
	n := &AggregateAlt{}
	n.init(n)
	initBList(&n.Indices, n, "indices")
	return n
}

func (n *AggregateAlt) Class() ClassID { return ClassAggregateAlt }

func (n *AggregateAlt) Value() Value          { return n.value }
func (n *AggregateAlt) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }

func (n *AggregateAlt) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Indices.core),
		fieldSlot(n, "value", FacetChild, &n.value),
	}
}

func (n *AggregateAlt) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *AggregateAlt) shallowClone() Object                  { return NewAggregateAlt() }

// RecordValue is a record-shaped composite value.
type RecordValue struct {
	valueBase
	Alts BList[*RecordValueAlt]
}

func NewRecordValue() *RecordValue {
	n := &RecordValue{}
	n.init(n)
	initBList(&n.Alts, n, "alts")
	return n
}

func (n *RecordValue) Class() ClassID { return ClassRecordValue }

func (n *RecordValue) slots() []Slot {
	return []Slot{listSlot(FacetChild, &n.Alts.core)}
}

func (n *RecordValue) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *RecordValue) shallowClone() Object                  { return NewRecordValue() }

// RecordValueAlt assigns a value to one named record field.
type RecordValueAlt struct {
	altBase
	named
	value Value
}

func NewRecordValueAlt(name string, v Value) *RecordValueAlt {
	n := &RecordValueAlt{}
	n.named.name = name
	n.init(n)
	n.SetValue(v)
	return n
}

func (n *RecordValueAlt) Class() ClassID { return ClassRecordValueAlt }

func (n *RecordValueAlt) Value() Value          { return n.value }
func (n *RecordValueAlt) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }

func (n *RecordValueAlt) slots() []Slot {
	return []Slot{fieldSlot(n, "value", FacetChild, &n.value)}
}

func (n *RecordValueAlt) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *RecordValueAlt) shallowClone() Object                  { c := &RecordValueAlt{named: named{name: n.name}}; c.init(c); return c }

// When is a chain of condition/value alternatives with a default, the
// expression form of if.
type When struct {
	valueBase
	logicTernary bool
	Alts         BList[*WhenAlt]
	def          Value
}

func NewWhen() *When {
	n := &When{}
	n.init(n)
	initBList(&n.Alts, n, "alts")
	return n
}

func (n *When) Class() ClassID { return ClassWhen }

// LogicTernary reports whether the when uses ternary X/Z propagation.
func (n *When) LogicTernary() bool     { return n.logicTernary }
func (n *When) SetLogicTernary(v bool) { n.logicTernary = v }

func (n *When) Default() Value          { return n.def }
func (n *When) SetDefault(v Value) Value { return setChild[Value](n, "default", &n.def, v) }

func (n *When) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Alts.core),
		fieldSlot(n, "default", FacetChild, &n.def),
	}
}

func (n *When) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.logicTernary == o.(*When).logicTernary
}

func (n *When) shallowClone() Object {
	c := NewWhen()
	c.logicTernary = n.logicTernary
	return c
}

// WhenAlt is one condition/value pair of a When.
type WhenAlt struct {
	altBase
	condition Value
	value     Value
}

func NewWhenAlt(cond, v Value) *WhenAlt {
	n := &WhenAlt{}
	n.init(n)
	n.SetCondition(cond)
	n.SetValue(v)
	return n
}

func (n *WhenAlt) Class() ClassID { return ClassWhenAlt }

func (n *WhenAlt) Condition() Value          { return n.condition }
func (n *WhenAlt) SetCondition(v Value) Value { return setChild[Value](n, "condition", &n.condition, v) }
func (n *WhenAlt) Value() Value              { return n.value }
func (n *WhenAlt) SetValue(v Value) Value     { return setChild[Value](n, "value", &n.value, v) }

func (n *WhenAlt) slots() []Slot {
	return []Slot{
		fieldSlot(n, "condition", FacetChild, &n.condition),
		fieldSlot(n, "value", FacetChild, &n.value),
	}
}

func (n *WhenAlt) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *WhenAlt) shallowClone() Object                  { c := &WhenAlt{}; c.init(c); return c }

// With selects among alternatives by comparing a condition value, the
// expression form of switch.
type With struct {
	valueBase
	caseSemantics CaseSemantics
	condition     Value
	Alts          BList[*WithAlt]
	def           Value
}

func NewWith() *With {
	n := &With{}
	n.init(n)
	initBList(&n.Alts, n, "alts")
	return n
}

func (n *With) Class() ClassID { return ClassWith }

func (n *With) CaseSemantics() CaseSemantics     { return n.caseSemantics }
func (n *With) SetCaseSemantics(c CaseSemantics) { n.caseSemantics = c }

func (n *With) Condition() Value          { return n.condition }
func (n *With) SetCondition(v Value) Value { return setChild[Value](n, "condition", &n.condition, v) }
func (n *With) Default() Value            { return n.def }
func (n *With) SetDefault(v Value) Value   { return setChild[Value](n, "default", &n.def, v) }

func (n *With) slots() []Slot {
	return []Slot{
		fieldSlot(n, "condition", FacetChild, &n.condition),
		listSlot(FacetChild, &n.Alts.core),
		fieldSlot(n, "default", FacetChild, &n.def),
	}
}

func (n *With) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.caseSemantics == o.(*With).caseSemantics
}

func (n *With) shallowClone() Object {
	c := NewWith()
	c.caseSemantics = n.caseSemantics
	return c
}

// WithAlt is one alternatives/value pair of a With.
type WithAlt struct {
	altBase
	Conditions BList[Value]
	value      Value
}

func NewWithAlt() *WithAlt {
	n := &WithAlt{}
	n.init(n)
	initBList(&n.Conditions, n, "conditions")
	return n
}

func (n *WithAlt) Class() ClassID { return ClassWithAlt }

func (n *WithAlt) Value() Value          { return n.value }
func (n *WithAlt) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }

func (n *WithAlt) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Conditions.core),
		fieldSlot(n, "value", FacetChild, &n.value),
	}
}

func (n *WithAlt) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *WithAlt) shallowClone() Object                  { return NewWithAlt() }

// Range is a bound pair describing a vector span or iteration range.
type Range struct {
	valueBase
	dir   RangeDirection
	left  Value
	right Value
}

func NewRange(dir RangeDirection, left, right Value) *Range {
	n := &Range{dir: dir}
	n.init(n)
	n.SetLeftBound(left)
	n.SetRightBound(right)
	return n
}

func (n *Range) Class() ClassID { return ClassRange }

func (n *Range) Direction() RangeDirection       { return n.dir }
func (n *Range) SetDirection(d RangeDirection)   { n.dir = d }

func (n *Range) LeftBound() Value           { return n.left }
func (n *Range) SetLeftBound(v Value) Value  { return setChild[Value](n, "leftBound", &n.left, v) }
func (n *Range) RightBound() Value          { return n.right }
func (n *Range) SetRightBound(v Value) Value { return setChild[Value](n, "rightBound", &n.right, v) }

func (n *Range) slots() []Slot {
	return []Slot{
		fieldSlot(n, "leftBound", FacetChild, &n.left),
		fieldSlot(n, "rightBound", FacetChild, &n.right),
	}
}

func (n *Range) sameAttrs(o Object, opt *EqualsOptions) bool {
	return !opt.CheckSpanDirection || n.dir == o.(*Range).dir
}

func (n *Range) shallowClone() Object {
	c := &Range{dir: n.dir}
	c.init(c)
	return c
}

// Instance instantiates a referenced design view and binds its ports.
type Instance struct {
	valueBase
	named
	ref         ReferencedType
	PortAssigns BList[*PortAssign]
	initial     Value
}

func NewInstance(name string) *Instance {
	n := &Instance{}
	n.named.name = name
	n.init(n)
	initBList(&n.PortAssigns, n, "portAssigns")
	return n
}

func (*Instance) isSymbol()        {}
func (n *Instance) Class() ClassID { return ClassInstance }

// ReferencedDesign returns the reference to the instantiated view.
func (n *Instance) ReferencedDesign() ReferencedType { return n.ref }
func (n *Instance) SetReferencedDesign(r ReferencedType) ReferencedType {
	return setChild[ReferencedType](n, "referencedType", &n.ref, r)
}

func (n *Instance) Initial() Value          { return n.initial }
func (n *Instance) SetInitial(v Value) Value { return setChild[Value](n, "initialValue", &n.initial, v) }

func (n *Instance) slots() []Slot {
	return []Slot{
		fieldSlot(n, "referencedType", FacetChild, &n.ref),
		listSlot(FacetChild, &n.PortAssigns.core),
		fieldSlot(n, "initialValue", FacetInitialValue, &n.initial),
	}
}

func (n *Instance) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Instance) shallowClone() Object                  { return NewInstance(n.name) }
