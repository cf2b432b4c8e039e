package encoder

import "github.com/lookbusy1344/a32asm/internal/grammar"

const (
	multiplyAShift  = 21
	multiplyPattern = 0b1001 // bits 7..4 marker shared by mul/mla/long-multiply
)

// encodeMultiply encodes MUL (3 operands: Rd, Rm, Rs) and MLA (4 operands:
// Rd, Rm, Rs, Rn).
func encodeMultiply(req Request) (uint32, bool, error) {
	parts := grammar.SplitTopLevel(req.Tail)
	isMLA := req.Form.Base == "mla"
	want := 3
	if isMLA {
		want = 4
	}
	if len(parts) != want {
		return 0, false, nil
	}

	rd, ok1 := grammar.ParseRegister(parts[0])
	rm, ok2 := grammar.ParseRegister(parts[1])
	rs, ok3 := grammar.ParseRegister(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return 0, false, nil
	}

	rdIdx, err := rd.Lookup()
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

	var rnIdx uint8
	var aBit uint32
	if isMLA {
		rn, ok4 := grammar.ParseRegister(parts[3])
		if !ok4 {
			return 0, false, nil
		}
		rnIdx, err = rn.Lookup()
		if err != nil {
			return 0, true, err
		}
		aBit = 1
	}

	sBit := uint32(0)
	if req.SFlag {
		sBit = 1
	}

	word := condCode(req.Cond)<<conditionShift |
		aBit<<multiplyAShift |
		sBit<<sBitShift |
		uint32(rdIdx)<<rnShift |
		uint32(rnIdx)<<rdShift |
		uint32(rsIdx)<<rsShift |
		multiplyPattern<<4 |
		uint32(rmIdx)
	return word, true, nil
}
