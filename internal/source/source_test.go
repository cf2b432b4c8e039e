package source_test

import (
	"testing"

	"github.com/lookbusy1344/a32asm/internal/source"
)

func TestNormalizeBasic(t *testing.T) {
	text := "  MOV r0, r1  \n\nadd r1, r2, r3\n"
	lines := source.Normalize(text)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Mnemonic != "mov" || lines[0].Tail != "r0, r1" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[0].Number != 1 {
		t.Errorf("expected line number 1, got %d", lines[0].Number)
	}
	if lines[1].Mnemonic != "add" || lines[1].Tail != "r1, r2, r3" {
		t.Errorf("line 1 = %+v", lines[1])
	}
}

func TestNormalizeStripsBlockComments(t *testing.T) {
	text := "mov r0, r1 /* trailing */\n/* a whole\nline */\nnop\n"
	lines := source.Normalize(text)
	var mnemonics []string
	for _, l := range lines {
		mnemonics = append(mnemonics, l.Mnemonic)
	}
	if len(mnemonics) != 2 || mnemonics[0] != "mov" || mnemonics[1] != "nop" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestNormalizeBlockCommentStripIsGreedyAcrossComments(t *testing.T) {
	// Two separate /* */ blocks with a real instruction between them: a
	// lazy regex would strip each comment individually and keep "add"; the
	// greedy match spans from the first "/*" to the *last* "*/" and takes
	// "add" down with it, mirroring the original source's behavior.
	text := "mov r0, r1\n/* one */\nadd r1, r2, r3\n/* two */\nnop\n"
	lines := source.Normalize(text)
	var mnemonics []string
	for _, l := range lines {
		mnemonics = append(mnemonics, l.Mnemonic)
	}
	if len(mnemonics) != 2 || mnemonics[0] != "mov" || mnemonics[1] != "nop" {
		t.Fatalf("expected greedy strip to remove \"add\" along with both comments, got: %+v", lines)
	}
}

func TestNormalizeSkipsBlankLines(t *testing.T) {
	lines := source.Normalize("\n   \n\t\nnop\n")
	if len(lines) != 1 || lines[0].Mnemonic != "nop" {
		t.Fatalf("expected single nop line, got %+v", lines)
	}
}

func TestNormalizeEmptyTail(t *testing.T) {
	lines := source.Normalize("nop\n")
	if len(lines) != 1 || lines[0].Tail != "" {
		t.Fatalf("expected empty tail, got %+v", lines)
	}
}
