package hif

// ParameterAssign binds an actual value to a named formal parameter.
type ParameterAssign struct {
	base
	named
	dir   PortDirection
	value Value
}

func NewParameterAssign(name string, v Value) *ParameterAssign {
	n := &ParameterAssign{}
	n.named.name = name
	n.init(n)
	n.SetValue(v)
	return n
}

func (*ParameterAssign) isSymbol()        {}
func (n *ParameterAssign) Class() ClassID { return ClassParameterAssign }

func (n *ParameterAssign) Direction() PortDirection     { return n.dir }
func (n *ParameterAssign) SetDirection(d PortDirection) { n.dir = d }

func (n *ParameterAssign) Value() Value          { return n.value }
func (n *ParameterAssign) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }

func (n *ParameterAssign) slots() []Slot {
	return []Slot{fieldSlot(n, "value", FacetChild, &n.value)}
}

func (n *ParameterAssign) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.dir == o.(*ParameterAssign).dir
}

func (n *ParameterAssign) shallowClone() Object {
	c := &ParameterAssign{named: named{name: n.name}, dir: n.dir}
	c.init(c)
	return c
}

// PortAssign binds an actual value to a named formal port, optionally
// recording the bound type.
type PortAssign struct {
	base
	named
	dir   PortDirection
	value Value
	typ   Type
}

func NewPortAssign(name string, v Value) *PortAssign {
	n := &PortAssign{}
	n.named.name = name
	n.init(n)
	n.SetValue(v)
	return n
}

func (*PortAssign) isSymbol()        {}
func (n *PortAssign) Class() ClassID { return ClassPortAssign }

func (n *PortAssign) Direction() PortDirection     { return n.dir }
func (n *PortAssign) SetDirection(d PortDirection) { n.dir = d }

func (n *PortAssign) Value() Value          { return n.value }
func (n *PortAssign) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }
func (n *PortAssign) BoundType() Type       { return n.typ }
func (n *PortAssign) SetBoundType(t Type) Type {
	return setChild[Type](n, "type", &n.typ, t)
}

func (n *PortAssign) slots() []Slot {
	return []Slot{
		fieldSlot(n, "value", FacetChild, &n.value),
		fieldSlot(n, "type", FacetChild, &n.typ),
	}
}

func (n *PortAssign) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.dir == o.(*PortAssign).dir
}

func (n *PortAssign) shallowClone() Object {
	c := &PortAssign{named: named{name: n.name}, dir: n.dir}
	c.init(c)
	return c
}

// ValueTPAssign binds a value to a named value template parameter.
type ValueTPAssign struct {
	base
	named
	value Value
}

func NewValueTPAssign(name string, v Value) *ValueTPAssign {
	n := &ValueTPAssign{}
	n.named.name = name
	n.init(n)
	n.SetValue(v)
	return n
}

func (*ValueTPAssign) isSymbol()        {}
func (*ValueTPAssign) isTPAssign()      {}
func (n *ValueTPAssign) Class() ClassID { return ClassValueTPAssign }

func (n *ValueTPAssign) Value() Value          { return n.value }
func (n *ValueTPAssign) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }

func (n *ValueTPAssign) slots() []Slot {
	return []Slot{fieldSlot(n, "value", FacetChild, &n.value)}
}

func (n *ValueTPAssign) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *ValueTPAssign) shallowClone() Object {
	c := &ValueTPAssign{named: named{name: n.name}}
	c.init(c)
	return c
}

// TypeTPAssign binds a type to a named type template parameter.
type TypeTPAssign struct {
	base
	named
	typ Type
}

func NewTypeTPAssign(name string, t Type) *TypeTPAssign {
	n := &TypeTPAssign{}
	n.named.name = name
	n.init(n)
	n.SetAssignedType(t)
	return n
}

func (*TypeTPAssign) isSymbol()        {}
func (*TypeTPAssign) isTPAssign()      {}
func (n *TypeTPAssign) Class() ClassID { return ClassTypeTPAssign }

func (n *TypeTPAssign) AssignedType() Type { return n.typ }
func (n *TypeTPAssign) SetAssignedType(t Type) Type {
	return setChild[Type](n, "type", &n.typ, t)
}

func (n *TypeTPAssign) slots() []Slot {
	return []Slot{fieldSlot(n, "type", FacetChild, &n.typ)}
}

func (n *TypeTPAssign) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *TypeTPAssign) shallowClone() Object {
	c := &TypeTPAssign{named: named{name: n.name}}
	c.init(c)
	return c
}
