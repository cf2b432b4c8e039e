// Package encoder turns a matched instruction form into a 32-bit ARM word,
// one file per instruction class, mirroring the teacher project's
// encoder/{data_processing,other,branch,memory}.go split.
//
// Every Encode* function returns (word, matched, err): matched is false when
// the operand tail did not parse as this class's grammar (the caller turns
// that into a "no such data for" diagnostic); err is non-nil only for the
// register-table lookup gap on r14/r15 (spec.md §9 open question 1), which
// is deliberately not a diagnostic — it propagates like the original
// source's uncaught KeyError.
package encoder

import (
	"fmt"

	"github.com/lookbusy1344/a32asm/internal/diag"
	"github.com/lookbusy1344/a32asm/internal/grammar"
)

// Request bundles everything an encoder needs: the resolved mnemonic,
// condition, and S flag from the matcher, plus the raw operand tail to
// parse, plus the diagnostic list and source position to append range
// violations to.
type Request struct {
	Form  grammar.Form
	Cond  string
	SFlag bool
	Tail  string

	File string
	Line int
	Diag *diag.List
}

func condCode(cond string) uint32 {
	return uint32(grammar.ConditionTable[cond])
}

// Encode dispatches a Request to the encoder for its form's class.
func Encode(req Request) (word uint32, matched bool, err error) {
	switch req.Form.Class {
	case grammar.ClassDataProcessing:
		return encodeDataProcessing(req)
	case grammar.ClassMultiply:
		return encodeMultiply(req)
	case grammar.ClassLongMultiply:
		return encodeLongMultiply(req)
	case grammar.ClassBranchExchange:
		return encodeBranchExchange(req)
	case grammar.ClassBranch:
		return encodeBranch(req)
	case grammar.ClassMemory:
		return encodeMemory(req)
	case grammar.ClassNoOp:
		return encodeNOP(req)
	default:
		return 0, false, fmt.Errorf("unknown instruction class %v", req.Form.Class)
	}
}
