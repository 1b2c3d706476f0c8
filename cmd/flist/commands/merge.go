package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/flist/internal/cliutil"
	"github.com/erraggy/flist/lister"
)

// mergeFlags contains flags for the merge command.
type mergeFlags struct {
	sort   string
	format string
	output string
}

func setupMergeFlags() (*flag.FlagSet, *mergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &mergeFlags{}

	fs.StringVar(&flags.sort, "sort", "default", "sort method for the merged list: none appends in input order; any other method re-sorts in default order")
	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, yaml")
	fs.StringVar(&flags.output, "o", "", "write merged paths to file instead of stdout (text format only)")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: flist merge [flags] <list-file> <list-file> [list-file...]\n\n")
		cliutil.Writef(output, "Merge newline-separated path-list files into one ordered list.\n")
		cliutil.Writef(output, "Use '-' to read one list from stdin.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  flist merge part1.txt part2.txt\n")
		cliutil.Writef(output, "  flist merge -sort none -o combined.txt part1.txt part2.txt\n")
	}

	return fs, flags
}

// HandleMerge implements the "merge" command.
func HandleMerge(args []string) error {
	fs, flags := setupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("merge command requires at least two list files")
	}
	method, err := ParseSortMethod(flags.sort)
	if err != nil {
		return err
	}

	paths, err := ReadPathList(fs.Arg(0))
	if err != nil {
		return err
	}
	merged := &lister.List{Paths: paths}
	for _, arg := range fs.Args()[1:] {
		paths, err := ReadPathList(arg)
		if err != nil {
			return err
		}
		if _, err := lister.Merge(merged, &lister.List{Paths: paths}, method); err != nil {
			return fmt.Errorf("merging %s: %w", arg, err)
		}
	}

	if flags.format != FormatText {
		return OutputStructured(listResult{
			Count: merged.Len(),
			Paths: merged.Paths,
		}, flags.format)
	}
	return WritePathList(merged.Paths, flags.output)
}
