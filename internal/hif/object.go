package hif

import "reflect"

// CodeInfo records the source position a node was created from.
type CodeInfo struct {
	FileName string
	Line     uint32
	Column   uint32
}

// Property is one entry of a node's ordered property bag. A non-nil value is
// owned by the node carrying the property.
type Property struct {
	Name  string
	Value Object
}

// Object is the polymorphic tree node every front end, analysis pass and back
// end operates on. The variant set is closed; all implementations live in
// this package, so an exhaustive switch over ClassID covers every node a
// caller can ever see.
//
// Ownership is strict: at any moment a node is a root, sits in exactly one
// singular field of one parent, or occupies exactly one slot of one BList.
// Parent and owning-slot back-references are maintained by the attach/detach
// operations and are never writable directly.
type Object interface {
	// Class returns the concrete variant tag.
	Class() ClassID
	// Parent returns the node currently owning this one, nil for roots.
	Parent() Object
	// CodeInfo returns the recorded source position, if any.
	CodeInfo() CodeInfo
	SetCodeInfo(CodeInfo)

	// SetProperty adds or replaces a property. A replaced owned value is
	// destroyed. A non-nil value must be unowned; it becomes owned by the
	// receiver.
	SetProperty(name string, value Object)
	// PropertyValue returns the value of a property and whether the
	// property exists (marker properties exist with a nil value).
	PropertyValue(name string) (Object, bool)
	// RemoveProperty detaches and returns the property value, nil if the
	// property does not exist or is a marker.
	RemoveProperty(name string) Object
	// Properties returns the property bag in insertion order.
	Properties() []Property

	// InBList reports whether the node currently occupies a BList slot.
	InBList() bool
	// OwnerField returns the name of the singular field or list currently
	// holding this node, and false for roots.
	OwnerField() (string, bool)

	impl() *base
	slots() []Slot
	sameAttrs(other Object, opt *EqualsOptions) bool
	shallowClone() Object
}

// Named is implemented by every variant that carries a name attribute.
type Named interface {
	Object
	Name() string
	SetName(string)
}

// NameOf returns o's name attribute, with ok=false for unnamed variants.
func NameOf(o Object) (string, bool) {
	if n, isNamed := o.(Named); isNamed {
		return n.Name(), true
	}
	return "", false
}

// Category interfaces. These mirror the abstract groups of the variant set
// and are the element constraints of the owned lists.
type (
	// Value is an expression-like node.
	Value interface {
		Object
		isValue()
	}
	// ConstValue is a literal value node.
	ConstValue interface {
		Value
		isConstValue()
	}
	// Type is a type-describing node.
	Type interface {
		Object
		isType()
	}
	// Action is a statement-like node.
	Action interface {
		Object
		isAction()
	}
	// Declaration introduces a named entity.
	Declaration interface {
		Object
		Named
		isDeclaration()
	}
	// DataDeclaration is a declaration carrying a type and an optional
	// initial value (signals, ports, variables, constants, ...).
	DataDeclaration interface {
		Declaration
		DeclType() Type
		Initial() Value
		isDataDeclaration()
	}
	// Generate is a generate-block node (ForGenerate, IfGenerate).
	Generate interface {
		Object
		isGenerate()
	}
	// TPAssign binds a template parameter to a value or type.
	TPAssign interface {
		Object
		Named
		isTPAssign()
	}
	// Alt is one alternative of a multi-way construct.
	Alt interface {
		Object
		isAlt()
	}
	// Symbol is a node capable of referring to a declaration elsewhere in
	// the tree.
	Symbol interface {
		Object
		Named
		isSymbol()
	}
)

// IsSymbol reports whether o can refer to a declaration.
func IsSymbol(o Object) bool {
	_, ok := o.(Symbol)
	return ok
}

// slotRef identifies the place that currently owns a node: a list slot, or a
// singular field (by name) of the parent.
type slotRef struct {
	entry *entry
	field string
}

// base carries the state shared by every variant. Concrete variants embed it
// (directly or through a category base) and get the Object plumbing for free.
type base struct {
	self   Object
	parent Object
	owner  slotRef
	props  []Property
	code   CodeInfo
	dead   bool
}

func (b *base) init(self Object)       { b.self = self }
func (b *base) impl() *base            { return b }
func (b *base) Parent() Object         { return b.parent }
func (b *base) CodeInfo() CodeInfo     { return b.code }
func (b *base) SetCodeInfo(ci CodeInfo) { b.code = ci }
func (b *base) InBList() bool          { return b.owner.entry != nil }

func (b *base) OwnerField() (string, bool) {
	switch {
	case b.owner.entry != nil:
		return b.owner.entry.list.name, true
	case b.owner.field != "":
		return b.owner.field, true
	default:
		return "", false
	}
}

func (b *base) SetProperty(name string, value Object) {
	mustAlive("Object.SetProperty", b.self)
	for i := range b.props {
		if b.props[i].Name != name {
			continue
		}
		old := b.props[i].Value
		if old == value {
			return
		}
		if value != nil {
			adoptField("Object.SetProperty", b.self, "property "+name, value)
		}
		if old != nil {
			releaseChild(old)
			destroy(old)
		}
		b.props[i].Value = value
		return
	}
	if value != nil {
		adoptField("Object.SetProperty", b.self, "property "+name, value)
	}
	b.props = append(b.props, Property{Name: name, Value: value})
}

func (b *base) PropertyValue(name string) (Object, bool) {
	for i := range b.props {
		if b.props[i].Name == name {
			return b.props[i].Value, true
		}
	}
	return nil, false
}

func (b *base) RemoveProperty(name string) Object {
	for i := range b.props {
		if b.props[i].Name == name {
			v := b.props[i].Value
			b.props = append(b.props[:i], b.props[i+1:]...)
			if v != nil {
				releaseChild(v)
			}
			return v
		}
	}
	return nil
}

func (b *base) Properties() []Property { return b.props }

// named provides the name attribute.
type named struct{ name string }

func (n *named) Name() string     { return n.name }
func (n *named) SetName(s string) { n.name = s }

// keywords is the additional-keywords set of declaration-like variants.
type keywords struct{ kw []string }

// AddKeyword records a language keyword on the declaration; duplicates are
// ignored.
func (k *keywords) AddKeyword(s string) {
	for _, have := range k.kw {
		if have == s {
			return
		}
	}
	k.kw = append(k.kw, s)
}

func (k *keywords) HasKeyword(s string) bool {
	for _, have := range k.kw {
		if have == s {
			return true
		}
	}
	return false
}

func (k *keywords) Keywords() []string { return k.kw }

// Category bases.

type valueBase struct{ base }

func (*valueBase) isValue() {}

type constValueBase struct {
	valueBase
	typ Type
}

func (*constValueBase) isConstValue() {}

// SyntacticType returns the literal's declared type node, if any.
func (c *constValueBase) SyntacticType() Type { return c.typ }

func (c *constValueBase) SetSyntacticType(t Type) Type {
	return setChild(c.self, "type", &c.typ, t)
}

func (c *constValueBase) typeSlot() Slot {
	return fieldSlot(c.self, "type", FacetChild, &c.typ)
}

type actionBase struct{ base }

func (*actionBase) isAction() {}

type altBase struct{ base }

func (*altBase) isAlt() {}

type declBase struct {
	base
	named
	keywords
}

func (*declBase) isDeclaration() {}

type dataDeclBase struct {
	declBase
	typ     Type
	initial Value
}

func (*dataDeclBase) isDataDeclaration() {}

// DeclType returns the declared type.
func (d *dataDeclBase) DeclType() Type { return d.typ }

func (d *dataDeclBase) SetDeclType(t Type) Type {
	return setChild(d.self, "type", &d.typ, t)
}

// Initial returns the initial value, nil when the declaration has none.
func (d *dataDeclBase) Initial() Value { return d.initial }

func (d *dataDeclBase) SetInitial(v Value) Value {
	return setChild(d.self, "initialValue", &d.initial, v)
}

func (d *dataDeclBase) dataSlots() []Slot {
	return []Slot{
		fieldSlot(d.self, "type", FacetChild, &d.typ),
		fieldSlot(d.self, "initialValue", FacetInitialValue, &d.initial),
	}
}

type typeBase struct {
	base
	variant TypeVariant
}

func (*typeBase) isType() {}

func (t *typeBase) TypeVariant() TypeVariant       { return t.variant }
func (t *typeBase) SetTypeVariant(v TypeVariant)   { t.variant = v }

func (t *typeBase) typeAttrsEqual(o *typeBase, opt *EqualsOptions) bool {
	return !opt.CheckTypeVariantField || t.variant == o.variant
}

type simpleTypeBase struct {
	typeBase
	constexpr bool
}

// Constexpr reports whether the type is a compile-time constant type.
func (t *simpleTypeBase) Constexpr() bool        { return t.constexpr }
func (t *simpleTypeBase) SetConstexpr(v bool)    { t.constexpr = v }

func (t *simpleTypeBase) simpleAttrsEqual(o *simpleTypeBase, opt *EqualsOptions) bool {
	if !t.typeAttrsEqual(&o.typeBase, opt) {
		return false
	}
	return !opt.CheckConstexprFlag || t.constexpr == o.constexpr
}

type compositeTypeBase struct {
	typeBase
	elem Type
}

// BaseType returns the element (inner) type of the composite.
func (c *compositeTypeBase) BaseType() Type { return c.elem }

func (c *compositeTypeBase) SetBaseType(t Type) Type {
	return setChild(c.self, "type", &c.elem, t)
}

func (c *compositeTypeBase) elemSlot() Slot {
	return fieldSlot(c.self, "type", FacetInnerType, &c.elem)
}

// Attach and detach plumbing. Every ownership transfer in the package funnels
// through these.

func isNilObj(o Object) bool {
	if o == nil {
		return true
	}
	if v := reflect.ValueOf(o); v.Kind() == reflect.Pointer && v.IsNil() {
		return true
	}
	return false
}

func objOrNil[T Object](t T) Object {
	var o Object = t
	if isNilObj(o) {
		return nil
	}
	return o
}

// adoptField attaches child to the named singular field of parent.
// The child must be alive and unowned.
func adoptField(op string, parent Object, field string, child Object) {
	cb := child.impl()
	if cb.dead {
		violate(op, field, "attach of destroyed "+child.Class().String())
	}
	if cb.parent != nil || cb.owner.entry != nil {
		violate(op, field, child.Class().String()+" is already owned elsewhere")
	}
	if isAncestorOrSelf(child, parent) {
		violate(op, field, child.Class().String()+" already owns this parent")
	}
	cb.parent = parent
	cb.owner = slotRef{field: field}
}

// releaseChild clears the parent and owning-slot back-references; ownership
// returns to the caller.
func releaseChild(child Object) {
	cb := child.impl()
	cb.parent = nil
	cb.owner = slotRef{}
}

// setChild installs child into (parent, field), detaching and returning the
// previous occupant. A nil child just empties the field.
func setChild[T Object](parent Object, field string, dst *T, child T) T {
	mustAlive("set "+field, parent)
	old := *dst
	if sameObject(objOrNil(old), objOrNil(child)) {
		return old
	}
	if !isNilObj(objOrNil(old)) {
		releaseChild(old)
	}
	var zero T
	if isNilObj(objOrNil(child)) {
		*dst = zero
		return old
	}
	adoptField("set "+field, parent, field, child)
	*dst = child
	return old
}

func sameObject(a, b Object) bool { return a == b }

// destroy marks o's whole subtree dead. Any later tree operation through a
// dead node panics with a ContractViolation.
func destroy(o Object) {
	if isNilObj(o) {
		return
	}
	work := []Object{o}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		nb := n.impl()
		if nb.dead {
			continue
		}
		nb.dead = true
		for _, p := range nb.props {
			if p.Value != nil {
				work = append(work, p.Value)
			}
		}
		for _, s := range n.slots() {
			if s.IsList() {
				for e := s.list.head; e != nil; e = e.next {
					work = append(work, e.obj)
				}
			} else if c := s.get(); c != nil {
				work = append(work, c)
			}
		}
	}
}

// Destroy detaches o from its owner, if any, and destroys its subtree.
func Destroy(o Object) {
	if isNilObj(o) {
		return
	}
	Detach(o)
	destroy(o)
}

// Detach removes o from whatever currently owns it; ownership returns to the
// caller. Detaching a root is a no-op. Returns o's former parent, nil if o
// was a root.
func Detach(o Object) Object {
	mustAlive("Detach", o)
	ob := o.impl()
	parent := ob.parent
	switch {
	case ob.owner.entry != nil:
		ob.owner.entry.list.detach(ob.owner.entry)
	case ob.owner.field != "":
		if parent != nil {
			for _, s := range parent.slots() {
				if !s.IsList() && s.get() == o {
					s.set(nil)
					break
				}
			}
		}
		// property values are fields too
		if ob.parent != nil {
			pb := ob.parent.impl()
			for i := range pb.props {
				if pb.props[i].Value == o {
					pb.props[i].Value = nil
					releaseChild(o)
					break
				}
			}
		}
	}
	releaseChild(o)
	return parent
}

// Replace substitutes with for old in old's current slot (singular field or
// list position). with must be unowned. Returns false when old is a root.
func Replace(old, with Object) bool {
	mustAlive("Replace", old)
	mustAlive("Replace", with)
	ob := old.impl()
	switch {
	case ob.owner.entry != nil:
		e := ob.owner.entry
		l := e.list
		if l.accepts != nil && !l.accepts(with) {
			violate("Replace", l.ident(), with.Class().String()+" not acceptable here")
		}
		wb := with.impl()
		if wb.parent != nil || wb.owner.entry != nil {
			violate("Replace", l.ident(), "replacement is already owned elsewhere")
		}
		if isAncestorOrSelf(with, l.owner) {
			violate("Replace", l.ident(), with.Class().String()+" already owns this list")
		}
		releaseChild(old)
		e.obj = with
		wb.parent = l.owner
		wb.owner = slotRef{entry: e}
		return true
	case ob.owner.field != "":
		parent := ob.parent
		if parent == nil {
			return false
		}
		for _, s := range parent.slots() {
			if !s.IsList() && s.get() == old {
				if !s.Accepts(with) {
					violate("Replace", s.Name, with.Class().String()+" not acceptable here")
				}
				s.set(nil)
				s.set(with)
				return true
			}
		}
		return false
	default:
		return false
	}
}
