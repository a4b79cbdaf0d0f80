package main

import "hif/internal/hif"

// buildSampleDesign assembles a small but representative design: a system
// holding one library definition and a counter design unit whose RTL view
// carries an entity with ports, local declarations and a clocked process.
func buildSampleDesign() *hif.System {
	sys := hif.NewSystem("work")
	sys.LibraryDefs.PushBack(hif.NewLibraryDef("ieee"))

	du := hif.NewDesignUnit("counter")
	view := hif.NewView("rtl")
	view.SetLanguage(hif.LangVHDL)

	entity := hif.NewEntity("counter")
	clk := hif.NewPort("clk", hif.DirIn)
	clk.SetDeclType(logicBit())
	rst := hif.NewPort("rst", hif.DirIn)
	rst.SetDeclType(logicBit())
	count := hif.NewPort("count", hif.DirOut)
	count.SetDeclType(logicVector(7, 0))
	entity.Ports.PushBack(clk)
	entity.Ports.PushBack(rst)
	entity.Ports.PushBack(count)
	view.SetEntity(entity)

	contents := hif.NewContents()
	reg := hif.NewSignal("count_reg")
	reg.SetDeclType(logicVector(7, 0))
	reg.SetInitial(hif.NewBitvectorValue("00000000"))
	contents.Declarations.PushBack(reg)

	proc := hif.NewStateTable("tick")
	proc.Sensitivity.PushBack(hif.NewIdentifier("clk"))
	st := hif.NewState("work")
	increment := hif.NewAssign(
		hif.NewIdentifier("count_reg"),
		hif.NewExpression(hif.OpPlus, hif.NewIdentifier("count_reg"), hif.NewIntValue(1)),
	)
	reset := hif.NewIf()
	alt := hif.NewIfAlt(hif.NewIdentifier("rst"))
	alt.Actions.PushBack(hif.NewAssign(hif.NewIdentifier("count_reg"), hif.NewBitvectorValue("00000000")))
	reset.Alts.PushBack(alt)
	reset.Defaults.PushBack(increment)
	st.Actions.PushBack(reset)
	proc.States.PushBack(st)
	contents.Declarations.PushBack(proc)

	ga := hif.NewGlobalAction()
	ga.Actions.PushBack(hif.NewAssign(hif.NewIdentifier("count"), hif.NewIdentifier("count_reg")))
	contents.SetGlobalAction(ga)
	view.SetContents(contents)

	du.Views.PushBack(view)
	sys.DesignUnits.PushBack(du)
	return sys
}

func logicBit() *hif.Bit {
	b := hif.NewBit()
	b.SetLogic(true)
	return b
}

func logicVector(left, right int64) *hif.Bitvector {
	v := hif.NewBitvector()
	v.SetLogic(true)
	v.SetSpan(hif.NewRange(hif.DirDownto, hif.NewIntValue(left), hif.NewIntValue(right)))
	return v
}
