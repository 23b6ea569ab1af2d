package progs

// Opcode is a virtual machine instruction code.
type Opcode uint16

// Enumeration of opcodes.  The numbering is part of the progs format.
const (
	OpDone = Opcode(iota)
	OpMulF
	OpMulV
	OpMulFV
	OpMulVF
	OpDivF
	OpAddF
	OpAddV
	OpSubF
	OpSubV

	OpEqF
	OpEqV
	OpEqS
	OpEqE
	OpEqFnc

	OpNeF
	OpNeV
	OpNeS
	OpNeE
	OpNeFnc

	OpLE
	OpGE
	OpLT
	OpGT

	OpLoadF
	OpLoadV
	OpLoadS
	OpLoadEnt
	OpLoadFld
	OpLoadFnc

	OpAddress

	OpStoreF
	OpStoreV
	OpStoreS
	OpStoreEnt
	OpStoreFld
	OpStoreFnc

	OpStorePF
	OpStorePV
	OpStorePS
	OpStorePEnt
	OpStorePFld
	OpStorePFnc

	OpReturn
	OpNotF
	OpNotV
	OpNotS
	OpNotEnt
	OpNotFnc
	OpIf
	OpIfNot
	OpCall0
	OpCall1
	OpCall2
	OpCall3
	OpCall4
	OpCall5
	OpCall6
	OpCall7
	OpCall8
	OpState
	OpGoto
	OpAnd
	OpOr

	OpBitAnd
	OpBitOr

	OpMulStoreF
	OpMulStoreV
	OpMulStorePF
	OpMulStorePV

	OpDivStoreF
	OpDivStorePF

	OpAddStoreF
	OpAddStoreV
	OpAddStorePF
	OpAddStorePV

	OpSubStoreF
	OpSubStoreV
	OpSubStorePF
	OpSubStorePV

	OpFetchGblF
	OpFetchGblV
	OpFetchGblS
	OpFetchGblE
	OpFetchGblFnc

	OpCState
	OpCWState

	OpThinkTime

	OpBitSet
	OpBitSetP
	OpBitClr
	OpBitClrP

	OpRand0
	OpRand1
	OpRand2
	OpRandV0
	OpRandV1
	OpRandV2

	OpSwitchF
	OpSwitchV
	OpSwitchS
	OpSwitchE
	OpSwitchFnc

	OpCase
	OpCaseRange

	NumOpcodes
)

// opNames holds the mnemonic of each opcode, indexed by opcode.
var opNames = [NumOpcodes]string{
	"DONE", "MUL_F", "MUL_V", "MUL_FV", "MUL_VF", "DIV", "ADD_F", "ADD_V", "SUB_F", "SUB_V",
	"EQ_F", "EQ_V", "EQ_S", "EQ_E", "EQ_FNC",
	"NE_F", "NE_V", "NE_S", "NE_E", "NE_FNC",
	"LE", "GE", "LT", "GT",
	"INDIRECT", "INDIRECT", "INDIRECT", "INDIRECT", "INDIRECT", "INDIRECT",
	"ADDRESS",
	"STORE_F", "STORE_V", "STORE_S", "STORE_ENT", "STORE_FLD", "STORE_FNC",
	"STOREP_F", "STOREP_V", "STOREP_S", "STOREP_ENT", "STOREP_FLD", "STOREP_FNC",
	"RETURN", "NOT_F", "NOT_V", "NOT_S", "NOT_ENT", "NOT_FNC", "IF", "IFNOT",
	"CALL0", "CALL1", "CALL2", "CALL3", "CALL4", "CALL5", "CALL6", "CALL7", "CALL8",
	"STATE", "GOTO", "AND", "OR", "BITAND", "BITOR",
	"MULSTORE_F", "MULSTORE_V", "MULSTOREP_F", "MULSTOREP_V",
	"DIVSTORE_F", "DIVSTOREP_F",
	"ADDSTORE_F", "ADDSTORE_V", "ADDSTOREP_F", "ADDSTOREP_V",
	"SUBSTORE_F", "SUBSTORE_V", "SUBSTOREP_F", "SUBSTOREP_V",
	"FETCH_GBL_F", "FETCH_GBL_V", "FETCH_GBL_S", "FETCH_GBL_E", "FETCH_GBL_FNC",
	"CSTATE", "CWSTATE", "THINKTIME",
	"BITSET", "BITSETP", "BITCLR", "BITCLRP",
	"RAND0", "RAND1", "RAND2", "RANDV0", "RANDV1", "RANDV2",
	"SWITCH_F", "SWITCH_V", "SWITCH_S", "SWITCH_E", "SWITCH_FNC",
	"CASE", "CASERANGE",
}

// Name returns the mnemonic of the opcode.
func (op Opcode) Name() string {
	if op < NumOpcodes {
		return opNames[op]
	}

	return "BAD_OP"
}

// IsConditional reports whether op is a conditional jump.  Its b operand is a
// branch delta.
func (op Opcode) IsConditional() bool {
	return op == OpIf || op == OpIfNot
}

// IsStore reports whether op is one of the plain store opcodes whose b operand
// is a destination.
func (op Opcode) IsStore() bool {
	return op >= OpStoreF && op <= OpStoreFnc
}

// IsSwitch reports whether op is a multi-way dispatch.  Its b operand is a
// branch delta.
func (op Opcode) IsSwitch() bool {
	return op >= OpSwitchF && op <= OpSwitchFnc
}
