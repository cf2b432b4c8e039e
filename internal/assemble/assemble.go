// Package assemble wires source normalization, grammar matching, and
// encoding into the single synchronous driver described by spec.md §5: no
// suspension points, no concurrency, one diagnostic list and one word
// slice threaded through by explicit argument.
package assemble

import (
	"fmt"
	"os"

	"github.com/lookbusy1344/a32asm/internal/diag"
	"github.com/lookbusy1344/a32asm/internal/encoder"
	"github.com/lookbusy1344/a32asm/internal/grammar"
	"github.com/lookbusy1344/a32asm/internal/source"
)

// Result is the outcome of assembling one batch of files: the in-order
// word stream and the accumulated diagnostics. Per spec.md's invariant, a
// non-empty Diagnostics means Words should not be written to any output.
type Result struct {
	Words       []uint32
	Diagnostics *diag.List
}

// Files assembles the given input file paths, deduplicated while preserving
// their given order (per spec.md §6, order among inputs is otherwise
// unspecified). A file-open failure short-circuits preprocessing of the
// remaining files, mirroring the original source's preprocess(), which
// returns [] immediately on the first failed open rather than skipping just
// that one file.
func Files(paths []string) (Result, error) {
	d := &diag.List{}
	seen := make(map[string]struct{}, len(paths))
	var unique []string
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}

	var words []uint32
	for _, p := range unique {
		text, err := os.ReadFile(p) //nolint:gosec
		if err != nil {
			d.AddGlobal(diag.Error, "can't open %s", p)
			return Result{Diagnostics: d}, nil
		}
		fileWords, err := assembleFile(p, string(text), d)
		if err != nil {
			return Result{}, err
		}
		words = append(words, fileWords...)
	}
	return Result{Words: words, Diagnostics: d}, nil
}

// assembleFile runs the normalizer/matcher/encoder pipeline over a single
// file's contents, appending diagnostics to d. It returns a Go error only
// for the register-table lookup gap on r14/r15 (spec.md §9 open question
// 1), which is not a diagnostic — it halts the whole run immediately, like
// the original source's uncaught KeyError.
func assembleFile(file, text string, d *diag.List) ([]uint32, error) {
	lines := source.Normalize(text)
	words := make([]uint32, 0, len(lines))

	for _, ln := range lines {
		form, cond, sFlag, ok := grammar.MatchMnemonic(ln.Mnemonic)
		if !ok {
			d.Add(file, ln.Number, diag.Error, "no such instruction opcode: %q", ln.Mnemonic)
			continue
		}

		word, matched, err := encoder.Encode(encoder.Request{
			Form:  form,
			Cond:  cond,
			SFlag: sFlag,
			Tail:  ln.Tail,
			File:  file,
			Line:  ln.Number,
			Diag:  d,
		})
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", file, ln.Number, err)
		}
		if !matched {
			d.Add(file, ln.Number, diag.Error, "no such data for %q: %q", ln.Mnemonic, ln.Tail)
			continue
		}
		words = append(words, word)
	}
	return words, nil
}
