package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/flist/internal/cliutil"
	"github.com/erraggy/flist/sorter"
)

// sortFlags contains flags for the sort command.
type sortFlags struct {
	sort   string
	lang   string
	format string
	output string
}

func setupSortFlags() (*flag.FlagSet, *sortFlags) {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	flags := &sortFlags{}

	fs.StringVar(&flags.sort, "sort", "default", "sort method: default, natural, collate, ascii")
	fs.StringVar(&flags.lang, "lang", "", "BCP-47 language tag for the collate method (e.g. da, de, sv)")
	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, yaml")
	fs.StringVar(&flags.output, "o", "", "write sorted paths to file instead of stdout (text format only)")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: flist sort [flags] <list-file>\n\n")
		cliutil.Writef(output, "Sort a newline-separated path-list file.\n")
		cliutil.Writef(output, "Paths order by directory part first, then base name.\n")
		cliutil.Writef(output, "Use '-' to read the list from stdin.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  flist sort -sort natural paths.txt\n")
		cliutil.Writef(output, "  find . | flist sort -\n")
	}

	return fs, flags
}

// HandleSort implements the "sort" command.
func HandleSort(args []string) error {
	fs, flags := setupSortFlags()

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
		return fmt.Errorf("sort command requires exactly one list file")
	}
	method, err := ParseSortMethod(flags.sort)
	if err != nil {
		return err
	}
	tag, err := ParseCollationLanguage(flags.lang)
	if err != nil {
		return err
	}

	paths, err := ReadPathList(fs.Arg(0))
	if err != nil {
		return err
	}
	if c := sorter.ForMethodTag(method, tag); c != nil {
		sorter.SortWith(paths, c)
	}

	if flags.format != FormatText {
		return OutputStructured(listResult{
			Count: len(paths),
			Paths: paths,
		}, flags.format)
	}
	return WritePathList(paths, flags.output)
}
