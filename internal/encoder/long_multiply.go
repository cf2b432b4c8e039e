package encoder

import "github.com/lookbusy1344/a32asm/internal/grammar"

const longMultiplyTypeShift = 23

// encodeLongMultiply encodes UMULL/UMLAL/SMULL/SMLAL: RdLo, RdHi, Rm, Rs.
func encodeLongMultiply(req Request) (uint32, bool, error) {
	parts := grammar.SplitTopLevel(req.Tail)
	if len(parts) != 4 {
		return 0, false, nil
	}
	rdLo, ok1 := grammar.ParseRegister(parts[0])
	rdHi, ok2 := grammar.ParseRegister(parts[1])
	rm, ok3 := grammar.ParseRegister(parts[2])
	rs, ok4 := grammar.ParseRegister(parts[3])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, false, nil
	}

	rdLoIdx, err := rdLo.Lookup()
	if err != nil {
		return 0, true, err
	}
	rdHiIdx, err := rdHi.Lookup()
	if err != nil {
		return 0, true, err
	}
	rmIdx, err := rm.Lookup()
	if err != nil {
		return 0, true, err
	}
	rsIdx, err := rs.Lookup()
	if err != nil {
		return 0, true, err
	}

	base := req.Form.Base
	uBit := uint32(0)
	if base == "umull" || base == "umlal" {
		uBit = 1
	}
	aBit := uint32(0)
	if base == "umlal" || base == "smlal" {
		aBit = 1
	}
	sBit := uint32(0)
	if req.SFlag {
		sBit = 1
	}

	word := condCode(req.Cond)<<conditionShift |
		0b00001<<longMultiplyTypeShift |
		uBit<<22 |
		aBit<<21 |
		sBit<<sBitShift |
		uint32(rdHiIdx)<<rnShift |
		uint32(rdLoIdx)<<rdShift |
		uint32(rsIdx)<<rsShift |
		multiplyPattern<<4 |
		uint32(rmIdx)
	return word, true, nil
}
