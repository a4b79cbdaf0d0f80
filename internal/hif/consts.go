package hif

// Operator is the operator of an Expression node.
type Operator uint8

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpMult
	OpDiv
	OpMod
	OpRem
	OpPow
	OpAbs
	OpConcat
	OpAnd
	OpOr
	OpXor
	OpNot
	OpBAnd
	OpBOr
	OpBXor
	OpBNot
	OpSll
	OpSrl
	OpSla
	OpSra
	OpRol
	OpRor
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLe
	OpGe
	OpCaseEq
	OpCaseNeq
	OpRef
	OpDeref
)

var operatorNames = [...]string{
	OpNone: "none", OpPlus: "+", OpMinus: "-", OpMult: "*", OpDiv: "/",
	OpMod: "mod", OpRem: "rem", OpPow: "**", OpAbs: "abs", OpConcat: "&",
	OpAnd: "and", OpOr: "or", OpXor: "xor", OpNot: "not",
	OpBAnd: "band", OpBOr: "bor", OpBXor: "bxor", OpBNot: "bnot",
	OpSll: "sll", OpSrl: "srl", OpSla: "sla", OpSra: "sra",
	OpRol: "rol", OpRor: "ror",
	OpEq: "==", OpNeq: "!=", OpLt: "<", OpGt: ">", OpLe: "<=", OpGe: ">=",
	OpCaseEq: "===", OpCaseNeq: "!==", OpRef: "ref", OpDeref: "deref",
}

func (o Operator) String() string {
	if int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return "unknown"
}

// RangeDirection is the direction of a span.
type RangeDirection uint8

const (
	DirUpto RangeDirection = iota
	DirDownto
)

func (d RangeDirection) String() string {
	if d == DirDownto {
		return "downto"
	}
	return "upto"
}

// PortDirection is the direction of a port, parameter or assign binding.
type PortDirection uint8

const (
	DirNone PortDirection = iota
	DirIn
	DirOut
	DirInout
)

func (d PortDirection) String() string {
	switch d {
	case DirIn:
		return "in"
	case DirOut:
		return "out"
	case DirInout:
		return "inout"
	default:
		return "none"
	}
}

// CaseSemantics selects how case alternatives treat unknown bits.
type CaseSemantics uint8

const (
	CaseLiteral CaseSemantics = iota
	CaseX
	CaseZ
)

// BitConstant is the value of a single BitValue literal.
type BitConstant uint8

const (
	BitZero BitConstant = iota
	BitOne
	BitX
	BitZ
	BitU
	BitL
	BitH
	BitW
	BitDontCare
)

var bitNames = [...]string{"0", "1", "x", "z", "u", "l", "h", "w", "-"}

func (b BitConstant) String() string {
	if int(b) < len(bitNames) {
		return bitNames[b]
	}
	return "?"
}

// TimeUnit scales a TimeValue.
type TimeUnit uint8

const (
	TimeFS TimeUnit = iota
	TimePS
	TimeNS
	TimeUS
	TimeMS
	TimeSec
	TimeMin
	TimeHour
)

var timeUnitNames = [...]string{"fs", "ps", "ns", "us", "ms", "s", "min", "h"}

func (u TimeUnit) String() string {
	if int(u) < len(timeUnitNames) {
		return timeUnitNames[u]
	}
	return "?"
}

// LanguageID tags a View with its source language.
type LanguageID uint8

const (
	LangNone LanguageID = iota
	LangVHDL
	LangVerilog
	LangSystemC
)

// TypeVariant distinguishes alternative encodings of a type in generated
// code.
type TypeVariant uint8

const (
	VariantNative TypeVariant = iota
	VariantSystemBitfield
	VariantImplementation
)
