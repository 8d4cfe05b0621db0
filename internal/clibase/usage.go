// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"alnedit/internal/version"
)

// UsageCommon installs the grouped Usage() handler on fs. extra prints
// sections ahead of the flag blocks (usage lines, notes).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – alignment ↔ edit-sequence codec\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nJob:")
		fmt.Fprintf(out, "      --mode string           extract | align | local | distance [%s]\n", def("mode"))
		fmt.Fprintln(out, "      --row-a string          Expanded row A (extract) [*]")
		fmt.Fprintln(out, "      --row-b string          Expanded row B (extract) [*]")
		fmt.Fprintln(out, "      --seq-a string          Ungapped sequence A / read [*]")
		fmt.Fprintln(out, "      --seq-b string          Ungapped sequence B / reference, or @ID [*]")
		fmt.Fprintf(out, "      --anchor int            Window offset in the reference (local, distance) [%s]\n", def("anchor"))
		fmt.Fprintln(out, "      --edits string          Edit sequence over M/I/D [*]")
		fmt.Fprintf(out, "      --cigar                 Edits are run-length CIGAR (1M1D6M) [%s]\n", def("cigar"))

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  FILE ...                    Job TSV file(s), globs allowed, '-' for STDIN")
		fmt.Fprintln(out, "      --reference file        FASTA resolving @ID references (repeatable, gzip ok)")
		fmt.Fprintln(out, "      --config file           TOML defaults file (or $ALNEDIT_CONFIG)")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --pretty                Alignment block after each text row [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --color string          Colour mismatches: auto | always | never [%s]\n", def("color"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --fail-fast             Stop at the first failed job [%s]\n", def("fail-fast"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings and the summary [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
