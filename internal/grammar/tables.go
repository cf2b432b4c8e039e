// Package grammar holds the assembler's static instruction tables (opcode,
// condition, register, shift-kind) together with the operand-tail parsers
// and the ordered form list the matcher dispatches through.
//
// This follows spec.md §9's preferred design over the source's regex
// Cartesian-expansion: operand tails are parsed once into a small
// tagged-variant AST (Operand2, AddrMode2) and encoders switch on the
// variant instead of probing named regex captures by key.
package grammar

// OpcodeTable maps each data-processing mnemonic to its 4-bit opcode field.
var OpcodeTable = map[string]uint8{
	"and": 0x0,
	"eor": 0x1,
	"sub": 0x2,
	"rsb": 0x3,
	"add": 0x4,
	"adc": 0x5,
	"sbc": 0x6,
	"rsc": 0x7,
	"tst": 0x8,
	"teq": 0x9,
	"cmp": 0xA,
	"cmn": 0xB,
	"orr": 0xC,
	"mov": 0xD,
	"bic": 0xE,
	"mvn": 0xF,
}

// compareMnemonics never take an S suffix: S is implicitly 1.
var compareMnemonics = map[string]bool{
	"cmp": true, "cmn": true, "tst": true, "teq": true,
}

// unaryMnemonics take no Rn operand (Rd, operand2 only); Rn defaults to 0.
var unaryMnemonics = map[string]bool{
	"mov": true, "mvn": true,
}

// IsCompareMnemonic reports whether base is one of cmp/cmn/tst/teq, which
// always set S=1 and never take an Rd operand.
func IsCompareMnemonic(base string) bool { return compareMnemonics[base] }

// IsUnaryMnemonic reports whether base is mov/mvn, which take no Rn
// operand.
func IsUnaryMnemonic(base string) bool { return unaryMnemonics[base] }

// ConditionTable is the 15-entry condition-code table; absence of a suffix
// means "al".
var ConditionTable = map[string]uint8{
	"eq": 0x0,
	"ne": 0x1,
	"cs": 0x2,
	"cc": 0x3,
	"mi": 0x4,
	"pl": 0x5,
	"vs": 0x6,
	"vc": 0x7,
	"hi": 0x8,
	"ls": 0x9,
	"ge": 0xA,
	"lt": 0xB,
	"gt": 0xC,
	"le": 0xD,
	"al": 0xE,
}

// RegisterTable maps register names to their 4-bit index. Deliberately
// covers only r0-r13: the grammar's register token lexically accepts
// r0-r15, but the lookup table does not carry r14/r15, reproducing the
// original source's enc_reg gap (spec.md §9 open question 1 — preserved,
// not fixed). Looking up "r14"/"r15" is a caller error, not a diagnostic.
var RegisterTable = map[uint8]uint8{
	0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6,
	7: 7, 8: 8, 9: 9, 10: 10, 11: 11, 12: 12, 13: 13,
}

// ShiftKind is one of the five ARM shift operators.
type ShiftKind int

const (
	ShiftNone ShiftKind = iota
	ShiftLSL
	ShiftLSR
	ShiftASR
	ShiftROR
	ShiftRRX
)

// shiftTypeCode is the 2-bit shift-type field; RRX shares ROR's code with
// amount forced to 0, per ARM encoding (handled specially by callers).
var shiftTypeCode = map[ShiftKind]uint8{
	ShiftLSL: 0b00,
	ShiftLSR: 0b01,
	ShiftASR: 0b10,
	ShiftROR: 0b11,
}

// ShiftTypeCode returns the 2-bit field for a shift kind.
func ShiftTypeCode(k ShiftKind) uint8 {
	return shiftTypeCode[k]
}

var shiftNames = map[string]ShiftKind{
	"lsl": ShiftLSL,
	"lsr": ShiftLSR,
	"asr": ShiftASR,
	"ror": ShiftROR,
	"rrx": ShiftRRX,
}
