package hif

// Const is a constant data declaration.
type Const struct {
	dataDeclBase
	define bool
}

func NewConst(name string) *Const {
	n := &Const{}
	n.named.name = name
	n.init(n)
	return n
}

func (n *Const) Class() ClassID { return ClassConst }

// Define reports whether the constant is a textual define rather than a
// typed constant.
func (n *Const) Define() bool     { return n.define }
func (n *Const) SetDefine(v bool) { n.define = v }

func (n *Const) slots() []Slot { return n.dataSlots() }

func (n *Const) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.define == o.(*Const).define
}

func (n *Const) shallowClone() Object {
	c := NewConst(n.name)
	c.define = n.define
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Variable is a mutable data declaration.
type Variable struct{ dataDeclBase }

func NewVariable(name string) *Variable {
	n := &Variable{}
	n.named.name = name
	n.init(n)
	return n
}

func (n *Variable) Class() ClassID                        { return ClassVariable }
func (n *Variable) slots() []Slot                         { return n.dataSlots() }
func (n *Variable) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *Variable) shallowClone() Object {
	c := NewVariable(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Signal is a signal data declaration.
type Signal struct {
	dataDeclBase
	standard bool
	wrapper  bool
}

func NewSignal(name string) *Signal {
	n := &Signal{}
	n.named.name = name
	n.init(n)
	return n
}

func (n *Signal) Class() ClassID { return ClassSignal }

// Standard reports whether the signal belongs to a standard library.
func (n *Signal) Standard() bool     { return n.standard }
func (n *Signal) SetStandard(v bool) { n.standard = v }
// Wrapper reports whether the signal only adapts another one at a boundary.
func (n *Signal) Wrapper() bool     { return n.wrapper }
func (n *Signal) SetWrapper(v bool) { n.wrapper = v }

func (n *Signal) slots() []Slot { return n.dataSlots() }

func (n *Signal) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*Signal)
	return n.standard == other.standard && n.wrapper == other.wrapper
}

func (n *Signal) shallowClone() Object {
	c := NewSignal(n.name)
	c.standard, c.wrapper = n.standard, n.wrapper
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Port is a directional interface data declaration.
type Port struct {
	dataDeclBase
	dir     PortDirection
	wrapper bool
}

func NewPort(name string, dir PortDirection) *Port {
	n := &Port{dir: dir}
	n.named.name = name
	n.init(n)
	return n
}

func (n *Port) Class() ClassID { return ClassPort }

func (n *Port) Direction() PortDirection     { return n.dir }
func (n *Port) SetDirection(d PortDirection) { n.dir = d }
func (n *Port) Wrapper() bool                { return n.wrapper }
func (n *Port) SetWrapper(v bool)            { n.wrapper = v }

func (n *Port) slots() []Slot { return n.dataSlots() }

func (n *Port) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*Port)
	return n.dir == other.dir && n.wrapper == other.wrapper
}

func (n *Port) shallowClone() Object {
	c := NewPort(n.name, n.dir)
	c.wrapper = n.wrapper
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Parameter is a directional subprogram parameter declaration.
type Parameter struct {
	dataDeclBase
	dir PortDirection
}

func NewParameter(name string, dir PortDirection) *Parameter {
	n := &Parameter{dir: dir}
	n.named.name = name
	n.init(n)
	return n
}

func (n *Parameter) Class() ClassID { return ClassParameter }

func (n *Parameter) Direction() PortDirection     { return n.dir }
func (n *Parameter) SetDirection(d PortDirection) { n.dir = d }

func (n *Parameter) slots() []Slot { return n.dataSlots() }

func (n *Parameter) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.dir == o.(*Parameter).dir
}

func (n *Parameter) shallowClone() Object {
	c := NewParameter(n.name, n.dir)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Field is a record member declaration.
type Field struct{ dataDeclBase }

func NewField(name string) *Field {
	n := &Field{}
	n.named.name = name
	n.init(n)
	return n
}

func (n *Field) Class() ClassID                        { return ClassField }
func (n *Field) slots() []Slot                         { return n.dataSlots() }
func (n *Field) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *Field) shallowClone() Object {
	c := NewField(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Alias names another object.
type Alias struct{ dataDeclBase }

func NewAlias(name string) *Alias {
	n := &Alias{}
	n.named.name = name
	n.init(n)
	return n
}

func (n *Alias) Class() ClassID                        { return ClassAlias }
func (n *Alias) slots() []Slot                         { return n.dataSlots() }
func (n *Alias) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *Alias) shallowClone() Object {
	c := NewAlias(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// EnumValue is one declared value of an Enum type.
type EnumValue struct{ dataDeclBase }

func NewEnumValue(name string) *EnumValue {
	n := &EnumValue{}
	n.named.name = name
	n.init(n)
	return n
}

func (n *EnumValue) Class() ClassID                        { return ClassEnumValue }
func (n *EnumValue) slots() []Slot                         { return n.dataSlots() }
func (n *EnumValue) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *EnumValue) shallowClone() Object {
	c := NewEnumValue(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// ValueTP declares a value template parameter.
type ValueTP struct {
	dataDeclBase
	compileTimeConstant bool
}

func NewValueTP(name string) *ValueTP {
	n := &ValueTP{compileTimeConstant: true}
	n.named.name = name
	n.init(n)
	return n
}

func (n *ValueTP) Class() ClassID { return ClassValueTP }

func (n *ValueTP) CompileTimeConstant() bool     { return n.compileTimeConstant }
func (n *ValueTP) SetCompileTimeConstant(v bool) { n.compileTimeConstant = v }

func (n *ValueTP) slots() []Slot { return n.dataSlots() }

func (n *ValueTP) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.compileTimeConstant == o.(*ValueTP).compileTimeConstant
}

func (n *ValueTP) shallowClone() Object {
	c := NewValueTP(n.name)
	c.compileTimeConstant = n.compileTimeConstant
	c.kw = append([]string(nil), n.kw...)
	return c
}

// TypeTP declares a type template parameter.
type TypeTP struct {
	declBase
	typ Type
}

func NewTypeTP(name string) *TypeTP {
	n := &TypeTP{}
	n.named.name = name
	n.init(n)
	return n
}

func (n *TypeTP) Class() ClassID { return ClassTypeTP }

// DeclType returns the default type bound to the parameter, if any.
func (n *TypeTP) DeclType() Type         { return n.typ }
func (n *TypeTP) SetDeclType(t Type) Type { return setChild[Type](n, "type", &n.typ, t) }

func (n *TypeTP) slots() []Slot {
	return []Slot{fieldSlot(n, "type", FacetChild, &n.typ)}
}

func (n *TypeTP) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *TypeTP) shallowClone() Object {
	c := NewTypeTP(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Function is a subprogram with a return type; its state table is the body
// and is skipped in signature mode.
type Function struct {
	declBase
	Parameters BList[*Parameter]
	returnType Type
	body       *StateTable
}

func NewFunction(name string) *Function {
	n := &Function{}
	n.named.name = name
	n.init(n)
	initBList(&n.Parameters, n, "parameters")
	return n
}

func (n *Function) Class() ClassID { return ClassFunction }

func (n *Function) ReturnType() Type { return n.returnType }
func (n *Function) SetReturnType(t Type) Type {
	return setChild[Type](n, "returnType", &n.returnType, t)
}

func (n *Function) Body() *StateTable { return n.body }
func (n *Function) SetBody(st *StateTable) *StateTable {
	return setChild(n, "stateTable", &n.body, st)
}

func (n *Function) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Parameters.core),
		fieldSlot(n, "returnType", FacetChild, &n.returnType),
		fieldSlot(n, "stateTable", FacetBody, &n.body),
	}
}

func (n *Function) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *Function) shallowClone() Object {
	c := NewFunction(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Procedure is a subprogram without a return type.
type Procedure struct {
	declBase
	Parameters BList[*Parameter]
	body       *StateTable
}

func NewProcedure(name string) *Procedure {
	n := &Procedure{}
	n.named.name = name
	n.init(n)
	initBList(&n.Parameters, n, "parameters")
	return n
}

func (n *Procedure) Class() ClassID { return ClassProcedure }

func (n *Procedure) Body() *StateTable { return n.body }
func (n *Procedure) SetBody(st *StateTable) *StateTable {
	return setChild(n, "stateTable", &n.body, st)
}

func (n *Procedure) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Parameters.core),
		fieldSlot(n, "stateTable", FacetBody, &n.body),
	}
}

func (n *Procedure) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *Procedure) shallowClone() Object {
	c := NewProcedure(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// TypeDef declares a named type. The defined type is its body; the range is
// an additional declaration constraint.
type TypeDef struct {
	declBase
	opaque         bool
	external       bool
	typ            Type
	rangeConstraint *Range
	TemplateParameters BList[Declaration]
}

func NewTypeDef(name string) *TypeDef {
	n := &TypeDef{}
	n.named.name = name
	n.init(n)
	initBList(&n.TemplateParameters, n, "templateParameters")
	return n
}

func (n *TypeDef) Class() ClassID { return ClassTypeDef }

// Opaque reports whether the definition hides its structure.
func (n *TypeDef) Opaque() bool        { return n.opaque }
func (n *TypeDef) SetOpaque(v bool)    { n.opaque = v }
func (n *TypeDef) External() bool      { return n.external }
func (n *TypeDef) SetExternal(v bool)  { n.external = v }

func (n *TypeDef) DefinedType() Type         { return n.typ }
func (n *TypeDef) SetDefinedType(t Type) Type { return setChild[Type](n, "type", &n.typ, t) }

func (n *TypeDef) RangeConstraint() *Range { return n.rangeConstraint }
func (n *TypeDef) SetRangeConstraint(r *Range) *Range {
	return setChild(n, "range", &n.rangeConstraint, r)
}

func (n *TypeDef) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.TemplateParameters.core),
		fieldSlot(n, "type", FacetBody, &n.typ),
		fieldSlot(n, "range", FacetDeclRange, &n.rangeConstraint),
	}
}

func (n *TypeDef) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*TypeDef)
	return n.opaque == other.opaque && n.external == other.external
}

func (n *TypeDef) shallowClone() Object {
	c := NewTypeDef(n.name)
	c.opaque, c.external = n.opaque, n.external
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Library references a declaration library by name.
type Library struct {
	declBase
	filename string
	standard bool
	system   bool
}

func NewLibrary(name string) *Library {
	n := &Library{}
	n.named.name = name
	n.init(n)
	return n
}

func (*Library) isSymbol()         {}
func (*Library) isType()           {}
func (*Library) isReferencedType() {}
func (n *Library) Class() ClassID  { return ClassLibrary }

func (n *Library) Filename() string     { return n.filename }
func (n *Library) SetFilename(s string) { n.filename = s }
func (n *Library) Standard() bool       { return n.standard }
func (n *Library) SetStandard(v bool)   { n.standard = v }
func (n *Library) System() bool         { return n.system }
func (n *Library) SetSystem(v bool)     { n.system = v }

func (n *Library) slots() []Slot { return nil }

func (n *Library) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*Library)
	return n.filename == other.filename && n.standard == other.standard && n.system == other.system
}

func (n *Library) shallowClone() Object {
	c := NewLibrary(n.name)
	c.filename, c.standard, c.system = n.filename, n.standard, n.system
	c.kw = append([]string(nil), n.kw...)
	return c
}

// LibraryDef is a package of declarations.
type LibraryDef struct {
	declBase
	standard     bool
	Libraries    BList[*Library]
	Declarations BList[Declaration]
}

func NewLibraryDef(name string) *LibraryDef {
	n := &LibraryDef{}
	n.named.name = name
	n.init(n)
	initBList(&n.Libraries, n, "libraries")
	initBList(&n.Declarations, n, "declarations")
	return n
}

func (n *LibraryDef) Class() ClassID { return ClassLibraryDef }

func (n *LibraryDef) Standard() bool     { return n.standard }
func (n *LibraryDef) SetStandard(v bool) { n.standard = v }

func (n *LibraryDef) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Libraries.core),
		listSlot(FacetChild, &n.Declarations.core),
	}
}

func (n *LibraryDef) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.standard == o.(*LibraryDef).standard
}

func (n *LibraryDef) shallowClone() Object {
	c := NewLibraryDef(n.name)
	c.standard = n.standard
	c.kw = append([]string(nil), n.kw...)
	return c
}

// DesignUnit is a named group of alternative views of one design.
type DesignUnit struct {
	declBase
	Views BList[*View]
}

func NewDesignUnit(name string) *DesignUnit {
	n := &DesignUnit{}
	n.named.name = name
	n.init(n)
	initBList(&n.Views, n, "views")
	return n
}

func (n *DesignUnit) Class() ClassID { return ClassDesignUnit }

func (n *DesignUnit) slots() []Slot {
	return []Slot{listSlot(FacetChild, &n.Views.core)}
}

func (n *DesignUnit) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *DesignUnit) shallowClone() Object {
	c := NewDesignUnit(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// View is one concrete form of a design unit: an interface entity plus
// contents, in a given source language.
type View struct {
	declBase
	standard           bool
	language           LanguageID
	Libraries          BList[*Library]
	TemplateParameters BList[Declaration]
	Inheritances       BList[*ViewReference]
	entity             *Entity
	contents           *Contents
}

func NewView(name string) *View {
	n := &View{}
	n.named.name = name
	n.init(n)
	initBList(&n.Libraries, n, "libraries")
	initBList(&n.TemplateParameters, n, "templateParameters")
	initBList(&n.Inheritances, n, "inheritances")
	return n
}

func (n *View) Class() ClassID { return ClassView }

func (n *View) Standard() bool            { return n.standard }
func (n *View) SetStandard(v bool)        { n.standard = v }
func (n *View) Language() LanguageID      { return n.language }
func (n *View) SetLanguage(l LanguageID)  { n.language = l }

func (n *View) Entity() *Entity { return n.entity }
func (n *View) SetEntity(e *Entity) *Entity {
	return setChild(n, "entity", &n.entity, e)
}

func (n *View) Contents() *Contents { return n.contents }
func (n *View) SetContents(c *Contents) *Contents {
	return setChild(n, "contents", &n.contents, c)
}

func (n *View) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Libraries.core),
		listSlot(FacetChild, &n.TemplateParameters.core),
		listSlot(FacetChild, &n.Inheritances.core),
		fieldSlot(n, "entity", FacetChild, &n.entity),
		fieldSlot(n, "contents", FacetViewContents, &n.contents),
	}
}

func (n *View) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*View)
	return n.standard == other.standard && n.language == other.language
}

func (n *View) shallowClone() Object {
	c := NewView(n.name)
	c.standard, c.language = n.standard, n.language
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Entity is the interface of a view: its template parameters and ports.
type Entity struct {
	declBase
	Parameters BList[*Parameter]
	Ports      BList[*Port]
}

func NewEntity(name string) *Entity {
	n := &Entity{}
	n.named.name = name
	n.init(n)
	initBList(&n.Parameters, n, "parameters")
	initBList(&n.Ports, n, "ports")
	return n
}

func (n *Entity) Class() ClassID { return ClassEntity }

func (n *Entity) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Parameters.core),
		listSlot(FacetChild, &n.Ports.core),
	}
}

func (n *Entity) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *Entity) shallowClone() Object {
	c := NewEntity(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// Contents is the implementation part of a view.
type Contents struct {
	base
	Libraries    BList[*Library]
	Declarations BList[Declaration]
	Instances    BList[*Instance]
	Generates    BList[Generate]
	globalAction *GlobalAction
}

func NewContents() *Contents {
	n := &Contents{}
	n.init(n)
	initBList(&n.Libraries, n, "libraries")
	initBList(&n.Declarations, n, "declarations")
	initBList(&n.Instances, n, "instances")
	initBList(&n.Generates, n, "generates")
	return n
}

func (n *Contents) Class() ClassID { return ClassContents }

func (n *Contents) GlobalAction() *GlobalAction { return n.globalAction }
func (n *Contents) SetGlobalAction(g *GlobalAction) *GlobalAction {
	return setChild(n, "globalAction", &n.globalAction, g)
}

func (n *Contents) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Libraries.core),
		listSlot(FacetChild, &n.Declarations.core),
		listSlot(FacetChild, &n.Instances.core),
		listSlot(FacetChild, &n.Generates.core),
		fieldSlot(n, "globalAction", FacetChild, &n.globalAction),
	}
}

func (n *Contents) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Contents) shallowClone() Object                  { return NewContents() }

// GlobalAction collects the concurrent actions of a contents block.
type GlobalAction struct {
	base
	Actions BList[Action]
}

func NewGlobalAction() *GlobalAction {
	n := &GlobalAction{}
	n.init(n)
	initBList(&n.Actions, n, "actions")
	return n
}

func (n *GlobalAction) Class() ClassID { return ClassGlobalAction }

func (n *GlobalAction) slots() []Slot {
	return []Slot{listSlot(FacetChild, &n.Actions.core)}
}

func (n *GlobalAction) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *GlobalAction) shallowClone() Object                  { return NewGlobalAction() }

// StateTable is a process body: declarations, sensitivity and states.
type StateTable struct {
	declBase
	entryStateName string
	dontInitialize bool
	Declarations   BList[Declaration]
	Sensitivity    BList[Value]
	States         BList[*State]
}

func NewStateTable(name string) *StateTable {
	n := &StateTable{}
	n.named.name = name
	n.init(n)
	initBList(&n.Declarations, n, "declarations")
	initBList(&n.Sensitivity, n, "sensitivity")
	initBList(&n.States, n, "states")
	return n
}

func (n *StateTable) Class() ClassID { return ClassStateTable }

func (n *StateTable) EntryStateName() string     { return n.entryStateName }
func (n *StateTable) SetEntryStateName(s string) { n.entryStateName = s }
func (n *StateTable) DontInitialize() bool       { return n.dontInitialize }
func (n *StateTable) SetDontInitialize(v bool)   { n.dontInitialize = v }

func (n *StateTable) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Declarations.core),
		listSlot(FacetChild, &n.Sensitivity.core),
		listSlot(FacetChild, &n.States.core),
	}
}

func (n *StateTable) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*StateTable)
	return n.entryStateName == other.entryStateName && n.dontInitialize == other.dontInitialize
}

func (n *StateTable) shallowClone() Object {
	c := NewStateTable(n.name)
	c.entryStateName, c.dontInitialize = n.entryStateName, n.dontInitialize
	c.kw = append([]string(nil), n.kw...)
	return c
}

// State is one state of a state table.
type State struct {
	declBase
	priority int64
	atomic   bool
	Actions  BList[Action]
}

func NewState(name string) *State {
	n := &State{}
	n.named.name = name
	n.init(n)
	initBList(&n.Actions, n, "actions")
	return n
}

func (n *State) Class() ClassID { return ClassState }

func (n *State) Priority() int64     { return n.priority }
func (n *State) SetPriority(p int64) { n.priority = p }
func (n *State) Atomic() bool        { return n.atomic }
func (n *State) SetAtomic(v bool)    { n.atomic = v }

func (n *State) slots() []Slot {
	return []Slot{listSlot(FacetChild, &n.Actions.core)}
}

func (n *State) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*State)
	return n.priority == other.priority && n.atomic == other.atomic
}

func (n *State) shallowClone() Object {
	c := NewState(n.name)
	c.priority, c.atomic = n.priority, n.atomic
	c.kw = append([]string(nil), n.kw...)
	return c
}

// ForGenerate replicates contents over an iteration range at elaboration
// time.
type ForGenerate struct {
	declBase
	InitDecls    BList[DataDeclaration]
	InitValues   BList[Action]
	condition    Value
	StepActions  BList[Action]
	Declarations BList[Declaration]
	Instances    BList[*Instance]
	Generates    BList[Generate]
	globalAction *GlobalAction
}

func NewForGenerate(label string) *ForGenerate {
	n := &ForGenerate{}
	n.named.name = label
	n.init(n)
	initBList(&n.InitDecls, n, "initDeclarations")
	initBList(&n.InitValues, n, "initValues")
	initBList(&n.StepActions, n, "stepActions")
	initBList(&n.Declarations, n, "declarations")
	initBList(&n.Instances, n, "instances")
	initBList(&n.Generates, n, "generates")
	return n
}

func (*ForGenerate) isGenerate()       {}
func (n *ForGenerate) Class() ClassID  { return ClassForGenerate }

func (n *ForGenerate) Condition() Value { return n.condition }
func (n *ForGenerate) SetCondition(v Value) Value {
	return setChild[Value](n, "condition", &n.condition, v)
}

func (n *ForGenerate) GlobalAction() *GlobalAction { return n.globalAction }
func (n *ForGenerate) SetGlobalAction(g *GlobalAction) *GlobalAction {
	return setChild(n, "globalAction", &n.globalAction, g)
}

func (n *ForGenerate) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.InitDecls.core),
		listSlot(FacetChild, &n.InitValues.core),
		fieldSlot(n, "condition", FacetChild, &n.condition),
		listSlot(FacetChild, &n.StepActions.core),
		listSlot(FacetChild, &n.Declarations.core),
		listSlot(FacetChild, &n.Instances.core),
		listSlot(FacetChild, &n.Generates.core),
		fieldSlot(n, "globalAction", FacetChild, &n.globalAction),
	}
}

func (n *ForGenerate) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *ForGenerate) shallowClone() Object {
	c := NewForGenerate(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// IfGenerate includes contents only when its condition holds at elaboration
// time.
type IfGenerate struct {
	declBase
	condition    Value
	Declarations BList[Declaration]
	Instances    BList[*Instance]
	Generates    BList[Generate]
	globalAction *GlobalAction
}

func NewIfGenerate(label string) *IfGenerate {
	n := &IfGenerate{}
	n.named.name = label
	n.init(n)
	initBList(&n.Declarations, n, "declarations")
	initBList(&n.Instances, n, "instances")
	initBList(&n.Generates, n, "generates")
	return n
}

func (*IfGenerate) isGenerate()      {}
func (n *IfGenerate) Class() ClassID { return ClassIfGenerate }

func (n *IfGenerate) Condition() Value { return n.condition }
func (n *IfGenerate) SetCondition(v Value) Value {
	return setChild[Value](n, "condition", &n.condition, v)
}

func (n *IfGenerate) GlobalAction() *GlobalAction { return n.globalAction }
func (n *IfGenerate) SetGlobalAction(g *GlobalAction) *GlobalAction {
	return setChild(n, "globalAction", &n.globalAction, g)
}

func (n *IfGenerate) slots() []Slot {
	return []Slot{
		fieldSlot(n, "condition", FacetChild, &n.condition),
		listSlot(FacetChild, &n.Declarations.core),
		listSlot(FacetChild, &n.Instances.core),
		listSlot(FacetChild, &n.Generates.core),
		fieldSlot(n, "globalAction", FacetChild, &n.globalAction),
	}
}

func (n *IfGenerate) sameAttrs(Object, *EqualsOptions) bool { return true }

func (n *IfGenerate) shallowClone() Object {
	c := NewIfGenerate(n.name)
	c.kw = append([]string(nil), n.kw...)
	return c
}

// System is the root of a whole design description.
type System struct {
	declBase
	version      string
	LibraryDefs  BList[*LibraryDef]
	DesignUnits  BList[*DesignUnit]
	Declarations BList[Declaration]
	Libraries    BList[*Library]
	Actions      BList[Action]
}

func NewSystem(name string) *System {
	n := &System{}
	n.named.name = name
	n.init(n)
	initBList(&n.LibraryDefs, n, "libraryDefs")
	initBList(&n.DesignUnits, n, "designUnits")
	initBList(&n.Declarations, n, "declarations")
	initBList(&n.Libraries, n, "libraries")
	initBList(&n.Actions, n, "actions")
	return n
}

func (n *System) Class() ClassID { return ClassSystem }

func (n *System) Version() string     { return n.version }
func (n *System) SetVersion(s string) { n.version = s }

func (n *System) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.LibraryDefs.core),
		listSlot(FacetChild, &n.DesignUnits.core),
		listSlot(FacetChild, &n.Declarations.core),
		listSlot(FacetChild, &n.Libraries.core),
		listSlot(FacetChild, &n.Actions.core),
	}
}

func (n *System) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.version == o.(*System).version
}

func (n *System) shallowClone() Object {
	c := NewSystem(n.name)
	c.version = n.version
	c.kw = append([]string(nil), n.kw...)
	return c
}
