// Package commands provides CLI command handlers for flist.
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/language"

	"github.com/erraggy/flist/internal/fileutil"
	"github.com/erraggy/flist/sorter"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ParseSortMethod resolves a sort method flag value, with a helpful
// error listing the valid names.
func ParseSortMethod(value string) (sorter.Method, error) {
	m, ok := sorter.ParseMethod(value)
	if !ok {
		return sorter.MethodNone, fmt.Errorf("invalid sort method '%s'. Valid methods: %s",
			value, strings.Join(sorter.ValidMethods(), ", "))
	}
	return m, nil
}

// ParseCollationLanguage resolves a BCP-47 language tag flag value.
// An empty value is the language-neutral tag.
func ParseCollationLanguage(value string) (language.Tag, error) {
	if value == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language tag '%s': %w", value, err)
	}
	return tag, nil
}

// ReadPathList reads a newline-separated path list from a file, or from
// stdin when path is [StdinFilePath]. Blank lines are dropped.
func ReadPathList(path string) ([]string, error) {
	var r io.Reader
	if path == StdinFilePath {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading path list: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading path list %s: %w", path, err)
	}
	return paths, nil
}

// WritePathList writes paths newline-separated to outPath, or to stdout
// when outPath is empty.
func WritePathList(paths []string, outPath string) error {
	if outPath == "" {
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	}

	var sb strings.Builder
	for _, p := range paths {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(outPath, []byte(sb.String()), fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing path list: %w", err)
	}
	return nil
}
