package assemble_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/a32asm/internal/assemble"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFilesAssemblesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.s", "mov r0, r1\nnop\n")

	result, err := assemble.Files([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if result.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics.Items())
	}
	if len(result.Words) != 2 {
		t.Fatalf("got %d words, want 2", len(result.Words))
	}
	if result.Words[0] != 0xE1A00001 {
		t.Errorf("word[0] = %#08x, want 0xe1a00001", result.Words[0])
	}
	if result.Words[1] != 0xE320F000 {
		t.Errorf("word[1] = %#08x, want 0xe320f000", result.Words[1])
	}
}

func TestFilesUnknownMnemonicProducesDiagnostic(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.s", "frobnicate r0\n")

	result, err := assemble.Files([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Diagnostics.HasErrors() {
		t.Fatal("expected a diagnostic for an unknown mnemonic")
	}
}

// TestFilesMissingFileShortCircuitsRemainingFiles pins down spec.md §7's
// preprocessing policy: a file-open failure stops further file processing
// entirely, rather than skipping just the one file that failed to open.
func TestFilesMissingFileShortCircuitsRemainingFiles(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.s")
	ok := writeFile(t, dir, "ok.s", "nop\n")

	result, err := assemble.Files([]string{missing, ok})
	require.NoError(t, err)
	assert.True(t, result.Diagnostics.HasErrors(), "expected a diagnostic for the missing file")
	assert.Empty(t, result.Words, "a file-open failure should discard the whole batch")
}

// TestFilesMissingFileAfterReadableFileStillAborts confirms the
// short-circuit takes effect regardless of where in the given order the
// unreadable path falls.
func TestFilesMissingFileAfterReadableFileStillAborts(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.s", "nop\n")
	missing := filepath.Join(dir, "missing.s")

	result, err := assemble.Files([]string{ok, missing})
	require.NoError(t, err)
	assert.True(t, result.Diagnostics.HasErrors(), "expected a diagnostic for the missing file")
	assert.Empty(t, result.Words, "a file-open failure should discard the whole batch including already-assembled words")
}

func TestFilesDeduplicatesPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.s", "nop\n")

	result, err := assemble.Files([]string{path, path})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Words) != 1 {
		t.Fatalf("duplicate paths should be deduplicated, got %d words", len(result.Words))
	}
}

func TestFilesR14RegisterLookupGapHaltsRun(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.s", "mov r0, r14\n")

	_, err := assemble.Files([]string{path})
	if err == nil {
		t.Fatal("expected a Go error for the r14 register-table lookup gap")
	}
}
