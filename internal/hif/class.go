package hif

// ClassID identifies the concrete variant of a tree node.
// The set is closed: every node in a design tree is one of these.
type ClassID uint8

const (
	ClassNone ClassID = iota

	// Values.
	ClassIdentifier
	ClassExpression
	ClassFunctionCall
	ClassFieldReference
	ClassMember
	ClassSlice
	ClassCast
	ClassAggregate
	ClassAggregateAlt
	ClassRecordValue
	ClassRecordValueAlt
	ClassWhen
	ClassWhenAlt
	ClassWith
	ClassWithAlt
	ClassRange
	ClassInstance

	// Constant values.
	ClassBitValue
	ClassBitvectorValue
	ClassBoolValue
	ClassCharValue
	ClassIntValue
	ClassRealValue
	ClassStringValue
	ClassTimeValue

	// Actions.
	ClassAssign
	ClassBreak
	ClassContinue
	ClassIf
	ClassIfAlt
	ClassFor
	ClassWhile
	ClassNull
	ClassProcedureCall
	ClassReturn
	ClassSwitch
	ClassSwitchAlt
	ClassWait
	ClassValueStatement
	ClassTransition

	// Declarations.
	ClassConst
	ClassVariable
	ClassSignal
	ClassPort
	ClassParameter
	ClassField
	ClassAlias
	ClassEnumValue
	ClassValueTP
	ClassTypeTP
	ClassFunction
	ClassProcedure
	ClassTypeDef
	ClassLibraryDef
	ClassDesignUnit
	ClassView
	ClassEntity
	ClassContents
	ClassLibrary
	ClassStateTable
	ClassState
	ClassGlobalAction
	ClassForGenerate
	ClassIfGenerate
	ClassSystem

	// Types.
	ClassArray
	ClassBit
	ClassBitvector
	ClassBool
	ClassChar
	ClassEnum
	ClassEvent
	ClassFile
	ClassInt
	ClassPointer
	ClassReal
	ClassRecord
	ClassReference
	ClassSigned
	ClassString
	ClassTime
	ClassTypeReference
	ClassUnsigned
	ClassViewReference

	// Parameter, port and template-parameter assigns.
	ClassParameterAssign
	ClassPortAssign
	ClassValueTPAssign
	ClassTypeTPAssign

	classCount
)

var classNames = [...]string{
	ClassNone:           "None",
	ClassIdentifier:     "Identifier",
	ClassExpression:     "Expression",
	ClassFunctionCall:   "FunctionCall",
	ClassFieldReference: "FieldReference",
	ClassMember:         "Member",
	ClassSlice:          "Slice",
	ClassCast:           "Cast",
	ClassAggregate:      "Aggregate",
	ClassAggregateAlt:   "AggregateAlt",
	ClassRecordValue:    "RecordValue",
	ClassRecordValueAlt: "RecordValueAlt",
	ClassWhen:           "When",
	ClassWhenAlt:        "WhenAlt",
	ClassWith:           "With",
	ClassWithAlt:        "WithAlt",
	ClassRange:          "Range",
	ClassInstance:       "Instance",
	ClassBitValue:       "BitValue",
	ClassBitvectorValue: "BitvectorValue",
	ClassBoolValue:      "BoolValue",
	ClassCharValue:      "CharValue",
	ClassIntValue:       "IntValue",
	ClassRealValue:      "RealValue",
	ClassStringValue:    "StringValue",
	ClassTimeValue:      "TimeValue",
	ClassAssign:         "Assign",
	ClassBreak:          "Break",
	ClassContinue:       "Continue",
	ClassIf:             "If",
	ClassIfAlt:          "IfAlt",
	ClassFor:            "For",
	ClassWhile:          "While",
	ClassNull:           "Null",
	ClassProcedureCall:  "ProcedureCall",
	ClassReturn:         "Return",
	ClassSwitch:         "Switch",
	ClassSwitchAlt:      "SwitchAlt",
	ClassWait:           "Wait",
	ClassValueStatement: "ValueStatement",
	ClassTransition:     "Transition",
	ClassConst:          "Const",
	ClassVariable:       "Variable",
	ClassSignal:         "Signal",
	ClassPort:           "Port",
	ClassParameter:      "Parameter",
	ClassField:          "Field",
	ClassAlias:          "Alias",
	ClassEnumValue:      "EnumValue",
	ClassValueTP:        "ValueTP",
	ClassTypeTP:         "TypeTP",
	ClassFunction:       "Function",
	ClassProcedure:      "Procedure",
	ClassTypeDef:        "TypeDef",
	ClassLibraryDef:     "LibraryDef",
	ClassDesignUnit:     "DesignUnit",
	ClassView:           "View",
	ClassEntity:         "Entity",
	ClassContents:       "Contents",
	ClassLibrary:        "Library",
	ClassStateTable:     "StateTable",
	ClassState:          "State",
	ClassGlobalAction:   "GlobalAction",
	ClassForGenerate:    "ForGenerate",
	ClassIfGenerate:     "IfGenerate",
	ClassSystem:         "System",
	ClassArray:          "Array",
	ClassBit:            "Bit",
	ClassBitvector:      "Bitvector",
	ClassBool:           "Bool",
	ClassChar:           "Char",
	ClassEnum:           "Enum",
	ClassEvent:          "Event",
	ClassFile:           "File",
	ClassInt:            "Int",
	ClassPointer:        "Pointer",
	ClassReal:           "Real",
	ClassRecord:         "Record",
	ClassReference:      "Reference",
	ClassSigned:         "Signed",
	ClassString:         "String",
	ClassTime:           "Time",
	ClassTypeReference:  "TypeReference",
	ClassUnsigned:       "Unsigned",
	ClassViewReference:  "ViewReference",
	ClassParameterAssign: "ParameterAssign",
	ClassPortAssign:      "PortAssign",
	ClassValueTPAssign:   "ValueTPAssign",
	ClassTypeTPAssign:    "TypeTPAssign",
}

// String returns the variant name, e.g. "Assign".
func (c ClassID) String() string {
	if int(c) < len(classNames) && classNames[c] != "" {
		return classNames[c]
	}
	return "Unknown"
}

// IsVectorClass reports whether c is one of the numeric-vector type variants
// that the equality engine may canonicalize into a single vector shape.
func (c ClassID) IsVectorClass() bool {
	switch c {
	case ClassSigned, ClassUnsigned, ClassBitvector:
		return true
	default:
		return false
	}
}
