package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/erraggy/flist"
	"github.com/erraggy/flist/internal/cliutil"
	"github.com/erraggy/flist/lister"
	"github.com/erraggy/flist/sorter"
	"github.com/erraggy/flist/walker"
)

// listFlags contains flags for the list command.
type listFlags struct {
	types         string
	pattern       string
	caseSensitive bool
	basic         bool
	depth         int
	follow        bool
	oneFileSystem bool
	trailingSlash bool
	sort          string
	lang          string
	maxSize       int
	format        string
	output        string
	quiet         bool
	noColor       bool
	verbose       bool
}

func setupListFlags() (*flag.FlagSet, *listFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &listFlags{}

	fs.StringVar(&flags.types, "type", "", "comma-separated entry types to include (regular, directory, symlink, fifo, socket, char-device, block-device, unknown)")
	fs.StringVar(&flags.pattern, "pattern", "", "include only entries whose base name matches this regular expression")
	fs.BoolVar(&flags.caseSensitive, "case-sensitive", false, "match the pattern case-sensitively")
	fs.BoolVar(&flags.basic, "basic", false, "interpret the pattern as POSIX syntax with leftmost-longest matching")
	fs.IntVar(&flags.depth, "depth", -1, "directory recursion limit (-1 = unlimited, 0 = no recursion)")
	fs.BoolVar(&flags.follow, "follow-symlinks", false, "classify symlinks by their target and descend into symlinked directories")
	fs.BoolVar(&flags.oneFileSystem, "one-file-system", false, "never descend into mount points on other filesystems")
	fs.BoolVar(&flags.trailingSlash, "trailing-slash", false, "append / to directory entries")
	fs.StringVar(&flags.sort, "sort", "default", "sort method: none, default, natural, collate, ascii")
	fs.StringVar(&flags.lang, "lang", "", "BCP-47 language tag for the collate sort method (e.g. da, de, sv)")
	fs.IntVar(&flags.maxSize, "max-size", 0, "ceiling on listed entries (0 = library default)")
	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, yaml")
	fs.StringVar(&flags.output, "o", "", "write paths to file instead of stdout (text format only)")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress the summary line")
	fs.BoolVar(&flags.quiet, "q", false, "suppress the summary line (shorthand)")
	fs.BoolVar(&flags.noColor, "no-color", false, "disable colorized output")
	fs.BoolVar(&flags.verbose, "v", false, "log skipped entries (cycles, unreadable directories) to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: flist list [flags] <directory>\n\n")
		cliutil.Writef(output, "List a directory tree as ordered paths.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  flist list /srv/data\n")
		cliutil.Writef(output, "  flist list -type regular -pattern '\\.log$' -sort natural /var/log\n")
		cliutil.Writef(output, "  flist list -depth 1 -trailing-slash -format json .\n")
	}

	return fs, flags
}

// listResult is the structured output shape for json/yaml formats.
type listResult struct {
	Count     int      `json:"count"      yaml:"count"`
	Truncated bool     `json:"truncated"  yaml:"truncated"`
	Paths     []string `json:"paths"      yaml:"paths"`
}

// HandleList implements the "list" command.
func HandleList(args []string) error {
	fs, flags := setupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("list command requires exactly one directory argument")
	}

	opts, err := listOptions(fs.Arg(0), flags)
	if err != nil {
		return err
	}

	list, err := lister.ListWithOptions(opts...)
	if err != nil && !lister.Truncated(err) {
		return fmt.Errorf("listing %s: %w", fs.Arg(0), err)
	}

	if flags.format != FormatText {
		return OutputStructured(listResult{
			Count:     list.Len(),
			Truncated: list.Truncated,
			Paths:     list.Paths,
		}, flags.format)
	}

	if flags.output != "" {
		if err := WritePathList(list.Paths, flags.output); err != nil {
			return err
		}
	} else {
		renderPaths(list.Paths, flags.noColor)
	}
	if !flags.quiet {
		summary := fmt.Sprintf("%d entries", list.Len())
		if list.Truncated {
			summary += color.YellowString(" (truncated)")
		}
		fmt.Fprintln(os.Stderr, summary)
	}
	return nil
}

// listOptions translates parsed flags into lister options.
func listOptions(dir string, flags *listFlags) ([]lister.Option, error) {
	opts := []lister.Option{lister.WithStartDir(dir)}

	if flags.types != "" {
		var types []walker.EntryType
		for _, name := range strings.Split(flags.types, ",") {
			name = strings.TrimSpace(name)
			t, ok := walker.ParseEntryType(name)
			if !ok {
				return nil, fmt.Errorf("invalid entry type '%s'", name)
			}
			types = append(types, t)
		}
		opts = append(opts, lister.WithTypes(types...))
	}
	if flags.pattern != "" {
		opts = append(opts, lister.WithPattern(flags.pattern))
		if flags.caseSensitive {
			opts = append(opts, lister.WithCaseSensitivePattern())
		}
		if flags.basic {
			opts = append(opts, lister.WithPatternDialect(lister.DialectBasic))
		}
	}
	opts = append(opts, lister.WithDepth(flags.depth))
	if flags.follow {
		opts = append(opts, lister.WithFollowSymlinks())
	}
	if flags.oneFileSystem {
		opts = append(opts, lister.WithStayOnDevice())
	}
	if flags.trailingSlash {
		opts = append(opts, lister.WithTrailingSeparator())
	}

	method, err := ParseSortMethod(flags.sort)
	if err != nil {
		return nil, err
	}
	opts = append(opts, lister.WithSortMethod(method))
	if method == sorter.MethodCollate || flags.lang != "" {
		tag, err := ParseCollationLanguage(flags.lang)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lister.WithCollationLanguage(tag))
	}
	if flags.maxSize > 0 {
		opts = append(opts, lister.WithMaxSize(flags.maxSize))
	}
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, lister.WithLogger(flist.NewSlogAdapter(slog.New(handler))))
	}

	return opts, nil
}

// renderPaths prints paths to stdout, colorizing directory entries
// (those carrying a trailing slash) when color is enabled.
func renderPaths(paths []string, noColor bool) {
	dir := color.New(color.FgBlue, color.Bold)
	for _, p := range paths {
		if !noColor && strings.HasSuffix(p, "/") {
			_, _ = dir.Println(p)
			continue
		}
		fmt.Println(p)
	}
}
