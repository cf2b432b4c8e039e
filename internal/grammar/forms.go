package grammar

// Class identifies which encoder family a form belongs to.
type Class int

const (
	ClassDataProcessing Class = iota
	ClassMultiply
	ClassLongMultiply
	ClassBranchExchange
	ClassBranch
	ClassMemory
	ClassNoOp
)

// Form is one entry of the ordered instruction-form list: a base mnemonic,
// the encoder class it belongs to, and whether it accepts a condition
// suffix and/or an S-flag suffix.
type Form struct {
	Base      string
	Class     Class
	AllowCond bool
	AllowS    bool
}

// Forms is the ordered form list the matcher dispatches through, grouped by
// class in the same order spec.md §4.5 lists the encoder families.
var Forms = buildForms()

func buildForms() []Form {
	var forms []Form
	for _, m := range []string{
		"mov", "mvn", "add", "adc", "sub", "sbc", "rsb", "rsc",
		"cmp", "cmn", "tst", "teq", "and", "eor", "orr", "bic",
	} {
		forms = append(forms, Form{
			Base:      m,
			Class:     ClassDataProcessing,
			AllowCond: true,
			AllowS:    !compareMnemonics[m],
		})
	}
	for _, m := range []string{"mul", "mla"} {
		forms = append(forms, Form{Base: m, Class: ClassMultiply, AllowCond: true, AllowS: true})
	}
	for _, m := range []string{"umull", "umlal", "smull", "smlal"} {
		forms = append(forms, Form{Base: m, Class: ClassLongMultiply, AllowCond: true, AllowS: true})
	}
	forms = append(forms, Form{Base: "bx", Class: ClassBranchExchange, AllowCond: true})
	forms = append(forms, Form{Base: "bl", Class: ClassBranch, AllowCond: true})
	forms = append(forms, Form{Base: "b", Class: ClassBranch, AllowCond: true})
	for _, m := range []string{"ldr", "ldrb", "str", "strb"} {
		forms = append(forms, Form{Base: m, Class: ClassMemory, AllowCond: true})
	}
	forms = append(forms, Form{Base: "nop", Class: ClassNoOp})
	return forms
}

// splitSuffix checks whether rest is a valid (cond, s) suffix for a form
// that allows the given combination, returning the resolved condition (or
// "al" if absent) and whether S is set.
func splitSuffix(rest string, allowCond, allowS bool) (cond string, sFlag bool, ok bool) {
	if rest == "" {
		return "al", false, true
	}
	if allowS && rest == "s" {
		return "al", true, true
	}
	if allowCond && len(rest) == 2 {
		if _, known := ConditionTable[rest]; known {
			return rest, false, true
		}
	}
	if allowCond && allowS && len(rest) == 3 && rest[2] == 's' {
		c := rest[:2]
		if _, known := ConditionTable[c]; known {
			return c, true, true
		}
	}
	return "", false, false
}

// MatchMnemonic finds the first form whose base mnemonic, optional
// condition suffix, and optional S suffix match token, returning the form,
// resolved condition code, and S flag.
func MatchMnemonic(token string) (form Form, cond string, sFlag bool, ok bool) {
	for _, f := range Forms {
		if len(token) < len(f.Base) || token[:len(f.Base)] != f.Base {
			continue
		}
		rest := token[len(f.Base):]
		c, s, matched := splitSuffix(rest, f.AllowCond, f.AllowS)
		if matched {
			return f, c, s, true
		}
	}
	return Form{}, "", false, false
}
