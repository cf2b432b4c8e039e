package grammar

import (
	"strconv"
	"strings"
)

// splitTopLevel splits s on commas that are not nested inside a '[' ']'
// pair, trimming whitespace from each piece. This lets addressing-mode-2
// operand tails such as "r0, [r1, #4]!" or "r0, [r1], #4" be tokenized
// without a bracket-aware regex.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}

// SplitTopLevel exposes splitTopLevel for encoders that need to separate a
// data-processing tail into its leading register(s) and its operand2 tail.
func SplitTopLevel(s string) []string { return splitTopLevel(s) }

// ParseRegister exposes parseReg for encoders outside this package.
func ParseRegister(tok string) (Reg, bool) { return parseReg(tok) }

// parseReg parses a bare register token, e.g. "r13", "r15". It accepts
// r0-r15 lexically (the lookup-table gap is applied later, at Reg.Lookup).
func parseReg(tok string) (Reg, bool) {
	tok = strings.TrimSpace(tok)
	if len(tok) < 2 || tok[0] != 'r' {
		return Reg{}, false
	}
	n, err := strconv.ParseUint(tok[1:], 10, 8)
	if err != nil || n > 15 {
		return Reg{}, false
	}
	return Reg{Index: uint8(n)}, true
}

// ParseImmediateToken exposes parseImmValue for encoders that need to parse
// a bare "#"-prefixed immediate outside the Operand2/AddrMode2 grammars
// (e.g. a branch target).
func ParseImmediateToken(tok string) (int64, bool) { return parseImmValue(tok) }

// parseImmValue parses a "#"-prefixed signed decimal immediate.
func parseImmValue(tok string) (int64, bool) {
	tok = strings.TrimSpace(tok)
	if !strings.HasPrefix(tok, "#") {
		return 0, false
	}
	v, err := strconv.ParseInt(tok[1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseShiftSpec parses the tail of a shift, e.g. "lsl #2" or "lsl r4" or
// "rrx", returning the kind and, for non-RRX kinds, either an immediate
// amount or a register.
func parseShiftSpec(s string) (kind ShiftKind, amount int64, rs Reg, hasAmount, hasReg, ok bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 1 && fields[0] == "rrx" {
		return ShiftRRX, 0, Reg{}, false, false, true
	}
	if len(fields) != 2 {
		return 0, 0, Reg{}, false, false, false
	}
	k, known := shiftNames[fields[0]]
	if !known || k == ShiftRRX {
		return 0, 0, Reg{}, false, false, false
	}
	if amt, isImm := parseImmValue(fields[1]); isImm {
		return k, amt, Reg{}, true, false, true
	}
	if reg, isReg := parseReg(fields[1]); isReg {
		return k, 0, reg, false, true, true
	}
	return 0, 0, Reg{}, false, false, false
}

// ParseOperand2 parses a data-processing second-operand tail: a bare
// register, a register RRX'd, a register shifted by an immediate or
// register, or a bare decimal immediate.
func ParseOperand2(tail string) (Operand2, bool) {
	parts := splitTopLevel(tail)
	if len(parts) == 0 || parts[0] == "" {
		return nil, false
	}
	first := parts[0]

	if reg, isReg := parseReg(first); isReg {
		switch len(parts) {
		case 1:
			return Op2Reg{Rm: reg}, true
		case 2:
			if parts[1] == "rrx" {
				return Op2Rrx{Rm: reg}, true
			}
			kind, amount, rs, hasAmount, hasReg, ok := parseShiftSpec(parts[1])
			if !ok {
				return nil, false
			}
			if hasAmount {
				return Op2ShiftImm{Rm: reg, Kind: kind, Amount: amount}, true
			}
			if hasReg {
				return Op2ShiftReg{Rm: reg, Kind: kind, Rs: rs}, true
			}
		}
		return nil, false
	}

	if len(parts) == 1 {
		if imm, isImm := parseImmValue(first); isImm {
			return Op2Imm{Value: imm}, true
		}
	}
	return nil, false
}

// parseOffset parses a single addressing-mode offset token (with an
// optional leading sign already stripped by the caller) plus an optional
// following shift-spec part, returning the offset variant.
func parseOffset(offTok string, shiftTok string, hasShift bool) (AddrOffset, bool) {
	if imm, ok := parseImmValue(offTok); ok && !hasShift {
		return OffImm{Value: imm}, true
	}
	rm, ok := parseReg(offTok)
	if !ok {
		return nil, false
	}
	if !hasShift {
		return OffReg{Rm: rm}, true
	}
	kind, amount, _, hasAmount, _, ok := parseShiftSpec(shiftTok)
	if !ok {
		return nil, false
	}
	if kind == ShiftRRX {
		return OffRrx{Rm: rm}, true
	}
	if !hasAmount {
		// Addressing-mode shifts only ever carry an immediate amount.
		return nil, false
	}
	return OffShiftImm{Rm: rm, Kind: kind, Amount: amount}, true
}

func stripSign(tok string) (neg bool, rest string) {
	if strings.HasPrefix(tok, "-") {
		return true, tok[1:]
	}
	if strings.HasPrefix(tok, "+") {
		return false, tok[1:]
	}
	return false, tok
}

// ParseMemoryOperands parses a full LDR/STR-family operand tail, e.g.
// "r0, [r1, #4]!" or "r0, [r1], r2, lsl #2", into a destination/source
// register and an addressing-mode-2 descriptor. Every addressing-mode-2
// alternative carries an offset; a bare "[Rn]" with nothing after it is not
// one of them and is rejected.
func ParseMemoryOperands(tail string) (rd Reg, mode AddrMode2, ok bool) {
	parts := splitTopLevel(tail)
	if len(parts) < 2 {
		return Reg{}, AddrMode2{}, false
	}
	rd, ok = parseReg(parts[0])
	if !ok {
		return Reg{}, AddrMode2{}, false
	}

	bracket := parts[1]
	writeback := strings.HasSuffix(bracket, "]!")
	if writeback {
		bracket = strings.TrimSuffix(bracket, "!")
	}
	if !strings.HasPrefix(bracket, "[") || !strings.HasSuffix(bracket, "]") {
		return Reg{}, AddrMode2{}, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(bracket, "["), "]")
	innerParts := splitTopLevel(inner)
	if len(innerParts) == 0 {
		return Reg{}, AddrMode2{}, false
	}
	rn, ok := parseReg(innerParts[0])
	if !ok {
		return Reg{}, AddrMode2{}, false
	}

	mode.Rn = rn

	switch {
	case len(parts) == 2 && len(innerParts) == 2:
		// "[Rn, #off]" / "[Rn, Rm]" pre-indexed.
		neg, offTok := stripSign(innerParts[1])
		off, ok := parseOffset(offTok, "", false)
		if !ok {
			return Reg{}, AddrMode2{}, false
		}
		mode.PreIndex = true
		mode.Writeback = writeback
		mode.Negative = neg
		mode.Offset = off
		return rd, mode, true

	case len(parts) == 2 && len(innerParts) == 3:
		// "[Rn, Rm, lsl #n]" / "[Rn, Rm, rrx]" pre-indexed.
		neg, offTok := stripSign(innerParts[1])
		off, ok := parseOffset(offTok, innerParts[2], true)
		if !ok {
			return Reg{}, AddrMode2{}, false
		}
		mode.PreIndex = true
		mode.Writeback = writeback
		mode.Negative = neg
		mode.Offset = off
		return rd, mode, true

	case len(parts) == 3 && len(innerParts) == 1 && !writeback:
		// "[Rn], #off" / "[Rn], Rm" post-indexed.
		neg, offTok := stripSign(parts[2])
		off, ok := parseOffset(offTok, "", false)
		if !ok {
			return Reg{}, AddrMode2{}, false
		}
		mode.PreIndex = false
		mode.Negative = neg
		mode.Offset = off
		return rd, mode, true

	case len(parts) == 4 && len(innerParts) == 1 && !writeback:
		// "[Rn], Rm, lsl #n" / "[Rn], Rm, rrx" post-indexed.
		neg, offTok := stripSign(parts[2])
		off, ok := parseOffset(offTok, parts[3], true)
		if !ok {
			return Reg{}, AddrMode2{}, false
		}
		mode.PreIndex = false
		mode.Negative = neg
		mode.Offset = off
		return rd, mode, true
	}

	return Reg{}, AddrMode2{}, false
}
