package encoder

import (
	"strings"

	"github.com/lookbusy1344/a32asm/internal/diag"
	"github.com/lookbusy1344/a32asm/internal/grammar"
)

// splitDataProcessingTail separates the tail into its register operand(s)
// and the remaining operand2 string, according to which shape the base
// mnemonic takes: "Rd, op2" (unary), "Rn, op2" (compare), or
// "Rd, Rn, op2" (the rest).
func splitDataProcessingTail(base, tail string) (rd, rn grammar.Reg, hasRd, hasRn bool, op2Tail string, ok bool) {
	parts := grammar.SplitTopLevel(tail)
	switch {
	case grammar.IsUnaryMnemonic(base):
		if len(parts) < 2 {
			return grammar.Reg{}, grammar.Reg{}, false, false, "", false
		}
		r, regOK := grammar.ParseRegister(parts[0])
		if !regOK {
			return grammar.Reg{}, grammar.Reg{}, false, false, "", false
		}
		return r, grammar.Reg{}, true, false, strings.Join(parts[1:], ", "), true
	case grammar.IsCompareMnemonic(base):
		if len(parts) < 2 {
			return grammar.Reg{}, grammar.Reg{}, false, false, "", false
		}
		r, regOK := grammar.ParseRegister(parts[0])
		if !regOK {
			return grammar.Reg{}, grammar.Reg{}, false, false, "", false
		}
		return grammar.Reg{}, r, false, true, strings.Join(parts[1:], ", "), true
	default:
		if len(parts) < 3 {
			return grammar.Reg{}, grammar.Reg{}, false, false, "", false
		}
		rdReg, rdOK := grammar.ParseRegister(parts[0])
		rnReg, rnOK := grammar.ParseRegister(parts[1])
		if !rdOK || !rnOK {
			return grammar.Reg{}, grammar.Reg{}, false, false, "", false
		}
		return rdReg, rnReg, true, true, strings.Join(parts[2:], ", "), true
	}
}

func encodeDataProcessing(req Request) (uint32, bool, error) {
	base := req.Form.Base
	rd, rn, hasRd, hasRn, op2Tail, ok := splitDataProcessingTail(base, req.Tail)
	if !ok {
		return 0, false, nil
	}

	op2, ok := grammar.ParseOperand2(op2Tail)
	if !ok {
		return 0, false, nil
	}

	var rdIdx, rnIdx uint32
	if hasRd {
		v, err := rd.Lookup()
		if err != nil {
			return 0, true, err
		}
		rdIdx = uint32(v)
	}
	if hasRn {
		v, err := rn.Lookup()
		if err != nil {
			return 0, true, err
		}
		rnIdx = uint32(v)
	}

	iBit, op2Field, err := encodeOperand2(req.Diag, req.File, req.Line, op2)
	if err != nil {
		return 0, true, err
	}

	sBit := uint32(0)
	if req.SFlag || grammar.IsCompareMnemonic(base) {
		sBit = 1
	}

	opcode := uint32(grammar.OpcodeTable[base])
	word := condCode(req.Cond)<<conditionShift |
		iBit<<iBitShift |
		opcode<<opcodeShift |
		sBit<<sBitShift |
		rnIdx<<rnShift |
		rdIdx<<rdShift |
		op2Field
	return word, true, nil
}

// encodeOperand2 encodes a data-processing second operand, returning the I
// bit and the 12-bit operand2 field. Range violations append a diagnostic
// but still return the masked field, per spec's "emit the word anyway"
// policy.
func encodeOperand2(d *diag.List, file string, line int, op2 grammar.Operand2) (iBit, field uint32, err error) {
	switch v := op2.(type) {
	case grammar.Op2Reg:
		rm, e := v.Rm.Lookup()
		if e != nil {
			return 0, 0, e
		}
		return 0, uint32(rm), nil

	case grammar.Op2Rrx:
		rm, e := v.Rm.Lookup()
		if e != nil {
			return 0, 0, e
		}
		return 0, (0b00000_11_0 << 4) | uint32(rm), nil

	case grammar.Op2ShiftImm:
		rm, e := v.Rm.Lookup()
		if e != nil {
			return 0, 0, e
		}
		if v.Amount < 0 || v.Amount > maxImm5 {
			d.Add(file, line, diag.Error, "invalid constant %#x after fixup", v.Amount)
		}
		amount := uint32(v.Amount) & mask5Bit
		typeCode := uint32(grammar.ShiftTypeCode(v.Kind))
		return 0, (amount << 7) | (typeCode << 5) | uint32(rm), nil

	case grammar.Op2ShiftReg:
		rm, e := v.Rm.Lookup()
		if e != nil {
			return 0, 0, e
		}
		rs, e := v.Rs.Lookup()
		if e != nil {
			return 0, 0, e
		}
		typeCode := uint32(grammar.ShiftTypeCode(v.Kind))
		return 0, (uint32(rs) << 8) | (typeCode << 5) | (1 << 4) | uint32(rm), nil

	case grammar.Op2Imm:
		if v.Value < 0 || v.Value > maxImm12 {
			d.Add(file, line, diag.Error, "invalid constant %#x after fixup", v.Value)
		}
		return 1, uint32(v.Value) & mask12Bit, nil

	default:
		return 0, 0, nil
	}
}
