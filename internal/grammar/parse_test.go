package grammar_test

import (
	"testing"

	"github.com/lookbusy1344/a32asm/internal/grammar"
)

func TestParseOperand2(t *testing.T) {
	tests := []struct {
		name string
		tail string
		want grammar.Operand2
	}{
		{"bare register", "r1", grammar.Op2Reg{Rm: grammar.Reg{Index: 1}}},
		{"immediate", "#17", grammar.Op2Imm{Value: 17}},
		{"rrx", "r3, rrx", grammar.Op2Rrx{Rm: grammar.Reg{Index: 3}}},
		{"shift by immediate", "r0, lsl #2", grammar.Op2ShiftImm{Rm: grammar.Reg{Index: 0}, Kind: grammar.ShiftLSL, Amount: 2}},
		{"shift by register", "r0, ror r5", grammar.Op2ShiftReg{Rm: grammar.Reg{Index: 0}, Kind: grammar.ShiftROR, Rs: grammar.Reg{Index: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := grammar.ParseOperand2(tt.tail)
			if !ok {
				t.Fatalf("ParseOperand2(%q) failed to match", tt.tail)
			}
			if got != tt.want {
				t.Errorf("ParseOperand2(%q) = %#v, want %#v", tt.tail, got, tt.want)
			}
		})
	}
}

func TestParseOperand2Rejects(t *testing.T) {
	for _, tail := range []string{"", "r1, r2, r3", "lsl #2"} {
		if _, ok := grammar.ParseOperand2(tail); ok {
			t.Errorf("ParseOperand2(%q) unexpectedly matched", tail)
		}
	}
}

func TestParseMemoryOperandsPreIndexed(t *testing.T) {
	rd, mode, ok := grammar.ParseMemoryOperands("r0, [r1, #4]")
	if !ok {
		t.Fatal("expected match")
	}
	if rd.Index != 0 || mode.Rn.Index != 1 || !mode.PreIndex || mode.Writeback {
		t.Fatalf("unexpected mode: %+v", mode)
	}
	off, ok := mode.Offset.(grammar.OffImm)
	if !ok || off.Value != 4 {
		t.Fatalf("unexpected offset: %+v", mode.Offset)
	}
}

func TestParseMemoryOperandsPreIndexedWriteback(t *testing.T) {
	_, mode, ok := grammar.ParseMemoryOperands("r0, [r1, #4]!")
	if !ok || !mode.PreIndex || !mode.Writeback {
		t.Fatalf("expected pre-indexed writeback, got mode=%+v ok=%v", mode, ok)
	}
}

func TestParseMemoryOperandsPostIndexed(t *testing.T) {
	_, mode, ok := grammar.ParseMemoryOperands("r0, [r1], #4")
	if !ok || mode.PreIndex {
		t.Fatalf("expected post-indexed, got mode=%+v ok=%v", mode, ok)
	}
	if off, ok := mode.Offset.(grammar.OffImm); !ok || off.Value != 4 {
		t.Fatalf("unexpected offset: %+v", mode.Offset)
	}
}

func TestParseMemoryOperandsNegativeOffset(t *testing.T) {
	_, mode, ok := grammar.ParseMemoryOperands("r0, [r1, -#4]")
	if !ok || !mode.Negative {
		t.Fatalf("expected negative offset, got mode=%+v ok=%v", mode, ok)
	}
}

func TestParseMemoryOperandsShiftedRegisterOffset(t *testing.T) {
	_, mode, ok := grammar.ParseMemoryOperands("r0, [r1, r2, lsl #2]")
	if !ok {
		t.Fatal("expected match")
	}
	off, ok := mode.Offset.(grammar.OffShiftImm)
	if !ok || off.Rm.Index != 2 || off.Kind != grammar.ShiftLSL || off.Amount != 2 {
		t.Fatalf("unexpected offset: %+v", mode.Offset)
	}
}

func TestParseMemoryOperandsBareBaseRegisterRejected(t *testing.T) {
	// Addressing-mode-2 has no bare-"[Rn]" alternative: every one of the 14
	// forms carries an offset.
	if _, _, ok := grammar.ParseMemoryOperands("r0, [r1]"); ok {
		t.Fatal("expected ParseMemoryOperands(\"r0, [r1]\") to fail to match")
	}
}
