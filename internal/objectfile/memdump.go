package objectfile

import (
	"fmt"
	"os"
	"strings"
)

// WriteMemFile writes the supplemented legacy memory-dump format: each
// word's 4 bytes, least-significant-byte first, one byte per line as two
// hex digits. Grounded on original_source/tools/assembler.py's main(),
// which always wrote this as a fixed ".memory" sidecar; here it is opt-in
// via -mem-file rather than an always-on fixed path (spec.md §4.6's
// "byte-serialized memory file ... when requested").
func WriteMemFile(path string, words []uint32) error {
	var b strings.Builder
	for _, w := range words {
		for i := 0; i < 4; i++ {
			fmt.Fprintf(&b, "%02x\n", byte(w>>(8*uint(i))))
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
