package lister

import (
	"golang.org/x/text/language"

	"github.com/erraggy/flist"
	"github.com/erraggy/flist/flerrors"
	"github.com/erraggy/flist/sorter"
	"github.com/erraggy/flist/walker"
)

// PatternDialect selects the name-pattern flavor.
type PatternDialect string

const (
	// DialectExtended is the default: full regular-expression syntax.
	DialectExtended PatternDialect = "extended"
	// DialectBasic restricts patterns to POSIX syntax with
	// leftmost-longest matching.
	DialectBasic PatternDialect = "basic"
)

// IsValidDialect checks if a dialect string is valid.
func IsValidDialect(dialect string) bool {
	switch PatternDialect(dialect) {
	case DialectExtended, DialectBasic:
		return true
	default:
		return false
	}
}

// ValidDialects returns all valid dialect strings.
func ValidDialects() []string {
	return []string{string(DialectExtended), string(DialectBasic)}
}

// Option is a function that configures a list operation.
type Option func(*config) error

// config holds configuration for one list operation.
type config struct {
	startDir      string
	types         walker.TypeMask
	pattern       string
	caseSensitive bool
	dialect       PatternDialect
	depth         int
	followLinks   bool
	trailingSep   bool
	stayOnDevice  bool
	sortMethod    sorter.Method
	collation     language.Tag
	maxSize       int
	logger        flist.Logger
}

func defaultConfig() *config {
	return &config{
		types:      walker.AllTypes,
		dialect:    DialectExtended,
		depth:      -1,
		sortMethod: sorter.MethodDefault,
		collation:  language.Und,
		maxSize:    DefaultMaxSize,
		logger:     flist.NopLogger{},
	}
}

// WithStartDir sets the directory the search starts in. Repeated and
// trailing separators are collapsed before traversal. Required.
func WithStartDir(dir string) Option {
	return func(c *config) error {
		c.startDir = dir
		return nil
	}
}

// WithTypes restricts the list to the given entry types. Without this
// option (or with an empty list) every type is admitted.
func WithTypes(types ...walker.EntryType) Option {
	return func(c *config) error {
		c.types = walker.MaskOf(types...)
		return nil
	}
}

// WithTypeMask restricts the list to the types admitted by mask.
// The zero mask admits every type.
func WithTypeMask(mask walker.TypeMask) Option {
	return func(c *config) error {
		c.types = mask
		return nil
	}
}

// WithPattern keeps only entries whose base name matches pattern.
// The pattern is matched against base names, never full paths, and is
// case-insensitive unless [WithCaseSensitivePattern] is given. An empty
// pattern means no name filtering.
func WithPattern(pattern string) Option {
	return func(c *config) error {
		c.pattern = pattern
		return nil
	}
}

// WithCaseSensitivePattern makes the name pattern match case-sensitively.
func WithCaseSensitivePattern() Option {
	return func(c *config) error {
		c.caseSensitive = true
		return nil
	}
}

// WithPatternDialect selects the pattern flavor, [DialectExtended]
// (the default) or [DialectBasic].
func WithPatternDialect(dialect PatternDialect) Option {
	return func(c *config) error {
		if !IsValidDialect(string(dialect)) {
			return &flerrors.ConfigError{Option: "pattern-dialect", Message: "unknown dialect " + string(dialect)}
		}
		c.dialect = dialect
		return nil
	}
}

// WithDepth limits directory recursion. Negative means unlimited (the
// default), 0 means no recursion, and n > 0 descends n levels.
func WithDepth(depth int) Option {
	return func(c *config) error {
		if depth < 0 {
			depth = -1
		}
		c.depth = depth
		return nil
	}
}

// WithFollowSymlinks resolves symlinks during traversal: entries are
// classified and filtered by their target's type and symlinked
// directories are descended into (cycles are detected).
func WithFollowSymlinks() Option {
	return func(c *config) error {
		c.followLinks = true
		return nil
	}
}

// WithTrailingSeparator appends a directory separator to list entries
// that denote directories.
func WithTrailingSeparator() Option {
	return func(c *config) error {
		c.trailingSep = true
		return nil
	}
}

// WithStayOnDevice keeps the traversal on the start directory's
// filesystem; mount points are listed but never descended into.
func WithStayOnDevice() Option {
	return func(c *config) error {
		c.stayOnDevice = true
		return nil
	}
}

// WithSortMethod selects the ordering of the final list. The default is
// [sorter.MethodDefault]; [sorter.MethodNone] keeps enumeration order.
func WithSortMethod(m sorter.Method) Option {
	return func(c *config) error {
		if !m.IsValid() {
			return &flerrors.ConfigError{Option: "sort-method", Message: "unknown sort method " + m.String()}
		}
		c.sortMethod = m
		return nil
	}
}

// WithCollationLanguage sets the language used by
// [sorter.MethodCollate]. The default is the language-neutral und tag.
func WithCollationLanguage(tag language.Tag) Option {
	return func(c *config) error {
		c.collation = tag
		return nil
	}
}

// WithMaxSize caps the number of list entries. When the cap is reached
// the call returns the partial list with an error matching
// [flerrors.ErrSizeLimit]. The default is [DefaultMaxSize].
func WithMaxSize(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return &flerrors.ConfigError{Option: "max-size", Message: "maximum list size must be positive"}
		}
		c.maxSize = n
		return nil
	}
}

// WithLogger sets the logger for recoverable-skip diagnostics.
// The default is [flist.NopLogger].
func WithLogger(logger flist.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}
