// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"alnedit-core/records"
	"alnedit/internal/clibase"
	"alnedit/internal/config"
)

// Output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Mode records.Mode

	// Inline job
	RowA   string
	RowB   string
	SeqA   string
	SeqB   string
	Anchor int
	Edits  string

	// Job files / reference
	JobFiles  []string
	Reference []string
	Cigar     bool // edit columns are run-length CIGAR

	// Performance
	Threads int

	// Output
	Output   string
	Pretty   bool
	Color    string
	Header   bool // true unless --no-header
	FailFast bool
	Quiet    bool

	ConfigPath string
	Version    bool

	// Explicit records which flags were given on the command line.
	Explicit map[string]bool
}

// Inline reports whether the job was given through flags rather than files.
func (o Options) Inline() bool {
	for _, n := range inlineFlags {
		if o.Explicit[n] {
			return true
		}
	}
	return false
}

// shorthands maps single-letter aliases to their long flag.
var shorthands = map[string]string{"t": "threads", "o": "output", "q": "quiet"}

var inlineFlags = []string{"row-a", "row-b", "seq-a", "seq-b", "anchor", "edits"}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --mode extract --row-a ROW --row-b ROW\n", name)
		fmt.Fprintf(out, "  %s --mode align|local|distance --seq-a SEQ --seq-b SEQ [--anchor N] --edits OPS\n", name)
		fmt.Fprintf(out, "  %s --mode MODE [flags] jobs.tsv [more.tsv ...]\n", name)
	})
	return fs
}

// PrintExamples writes the --examples quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintln(w, "  # edit sequence of a pairwise alignment")
		fmt.Fprintf(w, "  %s --mode extract --row-a ACCACAGT-CATA --row-b A-CAGAGTACAAA\n\n", name)
		fmt.Fprintln(w, "  # rebuild the alignment from sequences and edits")
		fmt.Fprintf(w, "  %s --mode align --seq-a ACCACAGTCATA --seq-b ACAGAGTACAAA --edits 1M1D6M1I4M --cigar --pretty\n\n", name)
		fmt.Fprintln(w, "  # distance of reads placed on a reference (ref column \"@chr2\")")
		fmt.Fprintf(w, "  %s --mode distance --reference ref.fa.gz --output jsonl reads.tsv\n", name)
	})
}

// ParseArgs registers and parses all flags, merges the defaults file and
// returns a validated Options struct. Flags and job files may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var mode string
	var refs stringSlice

	fs.StringVar(&mode, "mode", string(records.ModeDistance), "operation: extract | align | local | distance [distance]")

	fs.StringVar(&opt.RowA, "row-a", "", "expanded row A (extract) [*]")
	fs.StringVar(&opt.RowB, "row-b", "", "expanded row B (extract) [*]")
	fs.StringVar(&opt.SeqA, "seq-a", "", "ungapped sequence A / read (align, local, distance) [*]")
	fs.StringVar(&opt.SeqB, "seq-b", "", "ungapped sequence B / reference or @ID (align, local, distance) [*]")
	fs.IntVar(&opt.Anchor, "anchor", 0, "offset of the window in the reference (local, distance) [0]")
	fs.StringVar(&opt.Edits, "edits", "", "edit sequence over M/I/D [*]")
	fs.BoolVar(&opt.Cigar, "cigar", false, "edits are run-length CIGAR (3M1I...) [false]")

	fs.Var(&refs, "reference", "FASTA file resolving @ID references (repeatable, gzip ok)")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "number of worker threads (shorthand)")

	fs.StringVar(&opt.Output, "output", FormatText, "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", FormatText, "output format (shorthand)")
	fs.BoolVar(&opt.Pretty, "pretty", false, "append an alignment block after each text row [false]")
	fs.StringVar(&opt.Color, "color", ColorAuto, "colour mismatches in pretty blocks: auto | always | never [auto]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.FailFast, "fail-fast", false, "stop at the first job that fails [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings and the summary line [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand)")

	fs.StringVar(&opt.ConfigPath, "config", "", "TOML defaults file (or $"+config.EnvVar+")")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")
	examples := false
	fs.BoolVar(&examples, "examples", false, "show usage examples and exit [false]")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)

	opt.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := shorthands[name]; ok {
			name = long
		}
		opt.Explicit[name] = true
	})
	opt.Header = !noHeader
	opt.Reference = refs

	if p := config.Path(opt.ConfigPath); p != "" {
		f, err := config.Load(p)
		if err != nil {
			return opt, err
		}
		applyFile(&opt, &mode, f)
	}

	m, err := records.ParseMode(mode)
	if err != nil {
		return opt, err
	}
	opt.Mode = m

	files, err := ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.JobFiles = files

	return opt, validate(opt)
}

// applyFile copies config values into opt for flags not set explicitly.
func applyFile(opt *Options, mode *string, f config.File) {
	set := func(name string) bool { return !opt.Explicit[name] }
	if f.Mode != nil && set("mode") {
		*mode = *f.Mode
	}
	if f.Output != nil && set("output") {
		opt.Output = *f.Output
	}
	if f.Threads != nil && set("threads") {
		opt.Threads = *f.Threads
	}
	if f.Pretty != nil && set("pretty") {
		opt.Pretty = *f.Pretty
	}
	if f.Color != nil && set("color") {
		opt.Color = *f.Color
	}
	if f.Header != nil && set("no-header") {
		opt.Header = *f.Header
	}
	if f.Cigar != nil && set("cigar") {
		opt.Cigar = *f.Cigar
	}
	if f.FailFast != nil && set("fail-fast") {
		opt.FailFast = *f.FailFast
	}
	if f.Quiet != nil && set("quiet") {
		opt.Quiet = *f.Quiet
	}
	if len(f.Reference) > 0 && set("reference") {
		opt.Reference = append([]string(nil), f.Reference...)
	}
}

func validate(opt Options) error {
	inline := opt.Inline()
	switch {
	case inline && len(opt.JobFiles) > 0:
		return errors.New("inline --row-*/--seq-*/--edits conflict with job files")
	case !inline && len(opt.JobFiles) == 0:
		return errors.New("provide job files or an inline job (--row-a/--row-b or --seq-a/--seq-b/--edits)")
	}
	if inline {
		if err := validateInline(opt); err != nil {
			return err
		}
	}
	if len(opt.Reference) > 0 && (opt.Mode == records.ModeExtract || opt.Mode == records.ModeAlign) {
		return fmt.Errorf("--reference only applies to local and distance modes, not %s", opt.Mode)
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case FormatText, FormatJSON, FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	switch opt.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid --color %q", opt.Color)
	}
	return nil
}

func validateInline(opt Options) error {
	has := func(names ...string) []string {
		var got []string
		for _, n := range names {
			if opt.Explicit[n] {
				got = append(got, "--"+n)
			}
		}
		return got
	}
	var need, forbid []string
	switch opt.Mode {
	case records.ModeExtract:
		need, forbid = []string{"row-a", "row-b"}, []string{"seq-a", "seq-b", "anchor", "edits"}
	case records.ModeAlign:
		need, forbid = []string{"seq-a", "seq-b", "edits"}, []string{"row-a", "row-b", "anchor"}
	default:
		need, forbid = []string{"seq-a", "seq-b", "edits"}, []string{"row-a", "row-b"}
	}
	if bad := has(forbid...); len(bad) > 0 {
		return fmt.Errorf("%s not allowed in %s mode", strings.Join(bad, ", "), opt.Mode)
	}
	if got := has(need...); len(got) != len(need) {
		return fmt.Errorf("%s mode needs --%s", opt.Mode, strings.Join(need, ", --"))
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
