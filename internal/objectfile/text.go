// Package objectfile assembles a sequence of 32-bit words into either a
// text hex listing (with its verilog-define sidecar) or a minimal ELF32
// relocatable object, mirroring the teacher project's one-file-per-concern
// split (encoder/memory.go vs encoder/branch.go) applied to output instead
// of input.
package objectfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteHex renders words as one 8-hex-digit line per word. Always pads to
// exactly 8 digits — the original source's `%<04x` padding was a no-op bug
// that let values >= 2^20 overflow the field width; spec.md §9 calls for
// fixing this rather than reproducing it.
func WriteHex(words []uint32) []byte {
	var b strings.Builder
	for _, w := range words {
		fmt.Fprintf(&b, "%08x\n", w)
	}
	return []byte(b.String())
}

// WriteTextMode writes spec.md §6's dual-file text-mode output: the hex
// listing goes to outfile, and a sidecar in the same directory, named after
// outfile's base name with a leading ".", holds one line, a verilog-style
// `define` directive naming the sidecar itself. This
// inversion (hex in OUTFILE, directive in the dot-prefixed sidecar) is
// unusual but is exactly what spec.md specifies; it is preserved rather
// than "corrected" to the shape a reader might expect.
func WriteTextMode(outfile string, words []uint32) error {
	if err := os.WriteFile(outfile, WriteHex(words), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	sidecar := filepath.Join(filepath.Dir(outfile), "."+filepath.Base(outfile))
	directive := fmt.Sprintf("`define filename \"%s\"\n", sidecar)
	if err := os.WriteFile(sidecar, []byte(directive), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("writing %s: %w", sidecar, err)
	}
	return nil
}
