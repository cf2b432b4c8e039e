// Command a32asm assembles ARMv5-subset (A32) source files into a hex text
// listing or a minimal ELF32 relocatable object. See SPEC_FULL.md.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/a32asm/internal/assemble"
	"github.com/lookbusy1344/a32asm/internal/config"
	"github.com/lookbusy1344/a32asm/internal/diag"
	"github.com/lookbusy1344/a32asm/internal/objectfile"
)

var (
	outPath    string
	format     string
	memFile    string
	configPath string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds and executes the root command, translating any cobra/pflag
// parse error (e.g. an unrecognized flag) into the same diagnostic channel
// the assembler itself uses, rather than letting cobra print its own usage
// text — spec.md §7's "unrecognized option" is still just another
// diagnostic.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(preprocessArgs(args))
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		d := &diag.List{}
		d.AddGlobal(diag.Error, "unrecognized option: %q", flagTextFromError(err))
		d.Print(os.Stdout)
		return 1
	}
	return exitCode
}

// exitCode is set by runAssemble since cobra's RunE only returns an error,
// and a clean "no diagnostics, nothing to do" run must still exit 0.
var exitCode int

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "a32asm [flags] FILE...",
		Short:         "Assemble ARMv5-subset (A32) source into a hex listing or ELF32 object",
		Args:          cobra.ArbitraryArgs,
		RunE:          runAssemble,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file path (default a.out)")
	cmd.Flags().StringVar(&format, "format", "", "output format: t (text, default) or b (ELF32 binary)")
	cmd.Flags().StringVar(&memFile, "mem-file", "", "also write a legacy byte-per-line memory dump to PATH")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML config file")
	return cmd
}

// preprocessArgs rewrites spec.md §6's single-dash long flags ("-format=t",
// "-config=FILE") into the double-dash form pflag expects, leaving
// shorthand flags ("-o", "-oFILE") and positional arguments untouched. This
// is the one shim a GNU-style flag library needs to speak the original
// CLI's argparse-style single-dash-long-flag grammar.
func preprocessArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		for _, long := range []string{"-format", "-config", "-mem-file", "-output"} {
			if a == long || strings.HasPrefix(a, long+"=") {
				a = "-" + a
				break
			}
		}
		out = append(out, a)
	}
	return out
}

func flagTextFromError(err error) string {
	msg := err.Error()
	const prefix = "unknown flag: "
	if strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	const shorthandPrefix = "unknown shorthand flag: "
	if strings.HasPrefix(msg, shorthandPrefix) {
		return strings.TrimPrefix(msg, shorthandPrefix)
	}
	return msg
}

func runAssemble(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = cfg.Output.Path
	}
	outFormat := format
	if outFormat == "" {
		outFormat = cfg.Output.Format
	}
	mem := memFile
	if mem == "" {
		mem = cfg.Output.MemFile
	}

	result, err := assemble.Files(args)
	if err != nil {
		return err
	}

	if result.Diagnostics.HasErrors() {
		result.Diagnostics.SetLimit(cfg.Output.MaxDiagnostic)
		result.Diagnostics.Print(cmd.OutOrStdout())
		exitCode = 1
		return nil
	}

	switch outFormat {
	case "b":
		if err := os.WriteFile(out, objectfile.WriteELF(result.Words), 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("writing %s: %w", out, err)
		}
	default:
		if err := objectfile.WriteTextMode(out, result.Words); err != nil {
			return err
		}
	}

	if mem != "" {
		if err := objectfile.WriteMemFile(mem, result.Words); err != nil {
			return err
		}
	}

	exitCode = 0
	return nil
}
