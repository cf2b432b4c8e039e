package encoder

import "strings"

// encodeNOP encodes NOP as the canonical mov r0, r0 alternate pattern.
// Matches only an empty operand tail (spec.md §8 boundary case: empty
// operand tail matches nop only).
func encodeNOP(req Request) (uint32, bool, error) {
	if strings.TrimSpace(req.Tail) != "" {
		return 0, false, nil
	}
	word := condCode(req.Cond)<<conditionShift | 0x0320F000
	return word, true, nil
}
