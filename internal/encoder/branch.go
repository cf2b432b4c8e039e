package encoder

import (
	"strings"

	"github.com/lookbusy1344/a32asm/internal/grammar"
)

// encodeBranchExchange encodes BX Rn.
func encodeBranchExchange(req Request) (uint32, bool, error) {
	tail := strings.TrimSpace(req.Tail)
	rn, ok := grammar.ParseRegister(tail)
	if !ok {
		return 0, false, nil
	}
	word := condCode(req.Cond)<<conditionShift | 0x12FFF1<<4 | uint32(rn.LookupFull())
	return word, true, nil
}

// encodeBranch encodes B/BL #imm. Deliberately preserves the original
// source's behavior: the offset is the literal decimal immediate, not a
// PC-relative displacement — there is no symbol table (spec.md §9 open
// question, preserved not fixed).
func encodeBranch(req Request) (uint32, bool, error) {
	tail := strings.TrimSpace(req.Tail)
	value, ok := grammar.ParseImmediateToken(tail)
	if !ok {
		return 0, false, nil
	}

	lBit := uint32(0)
	if req.Form.Base == "bl" {
		lBit = 1
	}

	offset := uint32(value) & mask24Bit
	word := condCode(req.Cond)<<conditionShift |
		0b101<<branchTypeShift |
		lBit<<branchLinkShift |
		offset
	return word, true, nil
}
