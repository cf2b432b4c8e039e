package encoder

import (
	"strings"

	"github.com/lookbusy1344/a32asm/internal/diag"
	"github.com/lookbusy1344/a32asm/internal/grammar"
)

// sdtTypeField is the fixed 3-bit single-data-transfer class marker,
// 0b011 placed at bits 27..25. Deliberately folded in as one constant, with
// no separate I-bit term: the original source's enc_sdt never computes an
// I bit from the addressing mode, so bit 25 (I) is always 1 here,
// regardless of whether the offset is immediate or register (spec.md §9,
// preserved rather than fixed). Register-offset forms therefore get the
// standard ARM encoding, while immediate-offset forms do not: ARM reads
// I=1 as a register offset.
const sdtTypeField = 0b011 << 25

// encodeMemory encodes LDR/LDRB/STR/STRB, addressing mode 2 only.
func encodeMemory(req Request) (uint32, bool, error) {
	rd, mode, ok := grammar.ParseMemoryOperands(req.Tail)
	if !ok {
		return 0, false, nil
	}

	rdIdx, err := rd.Lookup()
	if err != nil {
		return 0, true, err
	}
	rnIdx, err := mode.Rn.Lookup()
	if err != nil {
		return 0, true, err
	}

	base := req.Form.Base
	lBit := uint32(1)
	if strings.HasPrefix(base, "s") {
		lBit = 0
	}
	bBit := uint32(0)
	if strings.HasSuffix(base, "b") {
		bBit = 1
	}
	pBit := uint32(0)
	if mode.PreIndex {
		pBit = 1
	}
	wBit := uint32(0)
	if mode.PreIndex && mode.Writeback {
		wBit = 1
	}
	uBit := uint32(1)
	if mode.Negative {
		uBit = 0
	}

	offsetField, err := encodeAddrOffset(req.Diag, req.File, req.Line, mode.Offset)
	if err != nil {
		return 0, true, err
	}

	word := condCode(req.Cond)<<conditionShift |
		sdtTypeField |
		pBit<<pBitShift |
		uBit<<uBitShift |
		bBit<<bBitShift |
		wBit<<wBitShift |
		lBit<<lBitShift |
		uint32(rnIdx)<<rnShift |
		uint32(rdIdx)<<rdShift |
		offsetField
	return word, true, nil
}

// encodeAddrOffset encodes the 12-bit a_mode2 offset field: the immediate
// value directly for an immediate offset (range-checked against 4095), or
// the amount/shift-type/Rm layout for a register or shifted-register
// offset (amount is 0 for a bare register, and for RRX).
func encodeAddrOffset(d *diag.List, file string, line int, off grammar.AddrOffset) (uint32, error) {
	switch v := off.(type) {
	case nil:
		return 0, nil
	case grammar.OffImm:
		if v.Value < 0 || v.Value > maxImm12 {
			d.Add(file, line, diag.Error, "invalid constant %#x after fixup", v.Value)
		}
		return uint32(v.Value) & mask12Bit, nil
	case grammar.OffReg:
		rm, err := v.Rm.Lookup()
		if err != nil {
			return 0, err
		}
		return uint32(rm), nil
	case grammar.OffRrx:
		rm, err := v.Rm.Lookup()
		if err != nil {
			return 0, err
		}
		return (0b00000_11_0 << 4) | uint32(rm), nil
	case grammar.OffShiftImm:
		rm, err := v.Rm.Lookup()
		if err != nil {
			return 0, err
		}
		if v.Amount < 0 || v.Amount > maxImm5 {
			d.Add(file, line, diag.Error, "invalid constant %#x after fixup", v.Amount)
		}
		amount := uint32(v.Amount) & mask5Bit
		typeCode := uint32(grammar.ShiftTypeCode(v.Kind))
		return (amount << 7) | (typeCode << 5) | uint32(rm), nil
	default:
		return 0, nil
	}
}
