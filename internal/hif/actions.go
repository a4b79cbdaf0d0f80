package hif

// Assign drives a target from a source value, optionally after a delay.
type Assign struct {
	actionBase
	lhs   Value
	rhs   Value
	delay Value
}

func NewAssign(lhs, rhs Value) *Assign {
	n := &Assign{}
	n.init(n)
	n.SetLeftHand(lhs)
	n.SetRightHand(rhs)
	return n
}

func (n *Assign) Class() ClassID { return ClassAssign }

func (n *Assign) LeftHand() Value           { return n.lhs }
func (n *Assign) SetLeftHand(v Value) Value  { return setChild[Value](n, "leftHandSide", &n.lhs, v) }
func (n *Assign) RightHand() Value          { return n.rhs }
func (n *Assign) SetRightHand(v Value) Value { return setChild[Value](n, "rightHandSide", &n.rhs, v) }
func (n *Assign) Delay() Value              { return n.delay }
func (n *Assign) SetDelay(v Value) Value     { return setChild[Value](n, "delay", &n.delay, v) }

func (n *Assign) slots() []Slot {
	return []Slot{
		fieldSlot(n, "leftHandSide", FacetChild, &n.lhs),
		fieldSlot(n, "rightHandSide", FacetChild, &n.rhs),
		fieldSlot(n, "delay", FacetChild, &n.delay),
	}
}

func (n *Assign) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Assign) shallowClone() Object                  { c := &Assign{}; c.init(c); return c }

// Break exits the named enclosing loop.
type Break struct {
	actionBase
	named
}

func NewBreak(label string) *Break {
	n := &Break{}
	n.named.name = label
	n.init(n)
	return n
}

func (n *Break) Class() ClassID                        { return ClassBreak }
func (n *Break) slots() []Slot                         { return nil }
func (n *Break) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Break) shallowClone() Object                  { return NewBreak(n.name) }

// Continue restarts the named enclosing loop.
type Continue struct {
	actionBase
	named
}

func NewContinue(label string) *Continue {
	n := &Continue{}
	n.named.name = label
	n.init(n)
	return n
}

func (n *Continue) Class() ClassID                        { return ClassContinue }
func (n *Continue) slots() []Slot                         { return nil }
func (n *Continue) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Continue) shallowClone() Object                  { return NewContinue(n.name) }

// If is a chain of condition/action alternatives with default actions.
type If struct {
	actionBase
	Alts     BList[*IfAlt]
	Defaults BList[Action]
}

func NewIf() *If {
	n := &If{}
	n.init(n)
	initBList(&n.Alts, n, "alts")
	initBList(&n.Defaults, n, "defaults")
	return n
}

func (n *If) Class() ClassID { return ClassIf }

func (n *If) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Alts.core),
		listSlot(FacetChild, &n.Defaults.core),
	}
}

func (n *If) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *If) shallowClone() Object                  { return NewIf() }

// IfAlt is one condition/actions pair of an If.
type IfAlt struct {
	altBase
	condition Value
	Actions   BList[Action]
}

func NewIfAlt(cond Value) *IfAlt {
	n := &IfAlt{}
	n.init(n)
	initBList(&n.Actions, n, "actions")
	n.SetCondition(cond)
	return n
}

func (n *IfAlt) Class() ClassID { return ClassIfAlt }

func (n *IfAlt) Condition() Value          { return n.condition }
func (n *IfAlt) SetCondition(v Value) Value { return setChild[Value](n, "condition", &n.condition, v) }

func (n *IfAlt) slots() []Slot {
	return []Slot{
		fieldSlot(n, "condition", FacetChild, &n.condition),
		listSlot(FacetChild, &n.Actions.core),
	}
}

func (n *IfAlt) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *IfAlt) shallowClone() Object                  { c := &IfAlt{}; c.init(c); initBList(&c.Actions, c, "actions"); return c }

// For is a counted loop with init declarations or init assignments.
type For struct {
	actionBase
	named
	InitDecls   BList[DataDeclaration]
	InitValues  BList[Action]
	condition   Value
	StepActions BList[Action]
	ForActions  BList[Action]
}

func NewFor(label string) *For {
	n := &For{}
	n.named.name = label
	n.init(n)
	initBList(&n.InitDecls, n, "initDeclarations")
	initBList(&n.InitValues, n, "initValues")
	initBList(&n.StepActions, n, "stepActions")
	initBList(&n.ForActions, n, "forActions")
	return n
}

func (n *For) Class() ClassID { return ClassFor }

func (n *For) Condition() Value          { return n.condition }
func (n *For) SetCondition(v Value) Value { return setChild[Value](n, "condition", &n.condition, v) }

func (n *For) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.InitDecls.core),
		listSlot(FacetChild, &n.InitValues.core),
		fieldSlot(n, "condition", FacetChild, &n.condition),
		listSlot(FacetChild, &n.StepActions.core),
		listSlot(FacetChild, &n.ForActions.core),
	}
}

func (n *For) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *For) shallowClone() Object                  { return NewFor(n.name) }

// While loops on a condition; DoWhile selects bottom-tested form.
type While struct {
	actionBase
	named
	doWhile   bool
	condition Value
	Actions   BList[Action]
}

func NewWhile(label string) *While {
	n := &While{}
	n.named.name = label
	n.init(n)
	initBList(&n.Actions, n, "actions")
	return n
}

func (n *While) Class() ClassID { return ClassWhile }

func (n *While) DoWhile() bool        { return n.doWhile }
func (n *While) SetDoWhile(v bool)    { n.doWhile = v }
func (n *While) Condition() Value     { return n.condition }
func (n *While) SetCondition(v Value) Value {
	return setChild[Value](n, "condition", &n.condition, v)
}

func (n *While) slots() []Slot {
	return []Slot{
		fieldSlot(n, "condition", FacetChild, &n.condition),
		listSlot(FacetChild, &n.Actions.core),
	}
}

func (n *While) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.doWhile == o.(*While).doWhile
}

func (n *While) shallowClone() Object {
	c := NewWhile(n.name)
	c.doWhile = n.doWhile
	return c
}

// Null is the no-op action.
type Null struct{ actionBase }

func NewNull() *Null {
	n := &Null{}
	n.init(n)
	return n
}

func (n *Null) Class() ClassID                        { return ClassNull }
func (n *Null) slots() []Slot                         { return nil }
func (n *Null) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Null) shallowClone() Object                  { return NewNull() }

// ProcedureCall invokes a procedure by name.
type ProcedureCall struct {
	actionBase
	named
	instance         Value
	ParameterAssigns BList[*ParameterAssign]
}

func NewProcedureCall(name string) *ProcedureCall {
	n := &ProcedureCall{}
	n.named.name = name
	n.init(n)
	initBList(&n.ParameterAssigns, n, "parameterAssigns")
	return n
}

func (*ProcedureCall) isSymbol()        {}
func (n *ProcedureCall) Class() ClassID { return ClassProcedureCall }

func (n *ProcedureCall) Instance() Value { return n.instance }
func (n *ProcedureCall) SetInstance(v Value) Value {
	return setChild[Value](n, "instance", &n.instance, v)
}

func (n *ProcedureCall) slots() []Slot {
	return []Slot{
		fieldSlot(n, "instance", FacetInstance, &n.instance),
		listSlot(FacetChild, &n.ParameterAssigns.core),
	}
}

func (n *ProcedureCall) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *ProcedureCall) shallowClone() Object                  { return NewProcedureCall(n.name) }

// Return leaves a subprogram, optionally yielding a value.
type Return struct {
	actionBase
	value Value
}

func NewReturn(v Value) *Return {
	n := &Return{}
	n.init(n)
	n.SetValue(v)
	return n
}

func (n *Return) Class() ClassID { return ClassReturn }

func (n *Return) Value() Value          { return n.value }
func (n *Return) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }

func (n *Return) slots() []Slot {
	return []Slot{fieldSlot(n, "value", FacetChild, &n.value)}
}

func (n *Return) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *Return) shallowClone() Object                  { c := &Return{}; c.init(c); return c }

// Switch selects among alternatives by a condition value.
type Switch struct {
	actionBase
	caseSemantics CaseSemantics
	condition     Value
	Alts          BList[*SwitchAlt]
	Defaults      BList[Action]
}

func NewSwitch() *Switch {
	n := &Switch{}
	n.init(n)
	initBList(&n.Alts, n, "alts")
	initBList(&n.Defaults, n, "defaults")
	return n
}

func (n *Switch) Class() ClassID { return ClassSwitch }

func (n *Switch) CaseSemantics() CaseSemantics     { return n.caseSemantics }
func (n *Switch) SetCaseSemantics(c CaseSemantics) { n.caseSemantics = c }

func (n *Switch) Condition() Value { return n.condition }
func (n *Switch) SetCondition(v Value) Value {
	return setChild[Value](n, "condition", &n.condition, v)
}

func (n *Switch) slots() []Slot {
	return []Slot{
		fieldSlot(n, "condition", FacetChild, &n.condition),
		listSlot(FacetChild, &n.Alts.core),
		listSlot(FacetChild, &n.Defaults.core),
	}
}

func (n *Switch) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.caseSemantics == o.(*Switch).caseSemantics
}

func (n *Switch) shallowClone() Object {
	c := NewSwitch()
	c.caseSemantics = n.caseSemantics
	return c
}

// SwitchAlt is one conditions/actions pair of a Switch.
type SwitchAlt struct {
	altBase
	Conditions BList[Value]
	Actions    BList[Action]
}

func NewSwitchAlt() *SwitchAlt {
	n := &SwitchAlt{}
	n.init(n)
	initBList(&n.Conditions, n, "conditions")
	initBList(&n.Actions, n, "actions")
	return n
}

func (n *SwitchAlt) Class() ClassID { return ClassSwitchAlt }

func (n *SwitchAlt) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Conditions.core),
		listSlot(FacetChild, &n.Actions.core),
	}
}

func (n *SwitchAlt) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *SwitchAlt) shallowClone() Object                  { return NewSwitchAlt() }

// Wait suspends a process until a condition, sensitivity event or timeout.
type Wait struct {
	actionBase
	repetitions int64
	condition   Value
	time        Value
	Sensitivity BList[Value]
	Actions     BList[Action]
}

func NewWait() *Wait {
	n := &Wait{}
	n.init(n)
	initBList(&n.Sensitivity, n, "sensitivity")
	initBList(&n.Actions, n, "actions")
	return n
}

func (n *Wait) Class() ClassID { return ClassWait }

func (n *Wait) Repetitions() int64     { return n.repetitions }
func (n *Wait) SetRepetitions(v int64) { n.repetitions = v }

func (n *Wait) Condition() Value          { return n.condition }
func (n *Wait) SetCondition(v Value) Value { return setChild[Value](n, "condition", &n.condition, v) }
func (n *Wait) Time() Value               { return n.time }
func (n *Wait) SetTime(v Value) Value      { return setChild[Value](n, "time", &n.time, v) }

func (n *Wait) slots() []Slot {
	return []Slot{
		fieldSlot(n, "condition", FacetChild, &n.condition),
		fieldSlot(n, "time", FacetChild, &n.time),
		listSlot(FacetChild, &n.Sensitivity.core),
		listSlot(FacetChild, &n.Actions.core),
	}
}

func (n *Wait) sameAttrs(o Object, _ *EqualsOptions) bool {
	return n.repetitions == o.(*Wait).repetitions
}

func (n *Wait) shallowClone() Object {
	c := NewWait()
	c.repetitions = n.repetitions
	return c
}

// ValueStatement evaluates a value for its side effects.
type ValueStatement struct {
	actionBase
	value Value
}

func NewValueStatement(v Value) *ValueStatement {
	n := &ValueStatement{}
	n.init(n)
	n.SetValue(v)
	return n
}

func (n *ValueStatement) Class() ClassID { return ClassValueStatement }

func (n *ValueStatement) Value() Value          { return n.value }
func (n *ValueStatement) SetValue(v Value) Value { return setChild[Value](n, "value", &n.value, v) }

func (n *ValueStatement) slots() []Slot {
	return []Slot{fieldSlot(n, "value", FacetChild, &n.value)}
}

func (n *ValueStatement) sameAttrs(Object, *EqualsOptions) bool { return true }
func (n *ValueStatement) shallowClone() Object                  { c := &ValueStatement{}; c.init(c); return c }

// Transition moves a state machine from a source state to this one when its
// enabling conditions hold.
type Transition struct {
	actionBase
	named
	prevName string
	priority int64
	Enabling BList[Value]
	Updates  BList[Action]
}

func NewTransition(name string) *Transition {
	n := &Transition{}
	n.named.name = name
	n.init(n)
	initBList(&n.Enabling, n, "enabling")
	initBList(&n.Updates, n, "updates")
	return n
}

func (n *Transition) Class() ClassID { return ClassTransition }

// PrevName returns the name of the source state.
func (n *Transition) PrevName() string     { return n.prevName }
func (n *Transition) SetPrevName(s string) { n.prevName = s }
func (n *Transition) Priority() int64      { return n.priority }
func (n *Transition) SetPriority(p int64)  { n.priority = p }

func (n *Transition) slots() []Slot {
	return []Slot{
		listSlot(FacetChild, &n.Enabling.core),
		listSlot(FacetChild, &n.Updates.core),
	}
}

func (n *Transition) sameAttrs(o Object, _ *EqualsOptions) bool {
	other := o.(*Transition)
	return n.prevName == other.prevName && n.priority == other.priority
}

func (n *Transition) shallowClone() Object {
	c := NewTransition(n.name)
	c.prevName = n.prevName
	c.priority = n.priority
	return c
}
