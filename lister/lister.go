package lister

import (
	"errors"
	"fmt"

	"github.com/erraggy/flist/flerrors"
	"github.com/erraggy/flist/internal/pathutil"
	"github.com/erraggy/flist/sorter"
	"github.com/erraggy/flist/walker"
)

// ListWithOptions traverses a directory tree and returns the matching
// entries as an ordered list.
//
// Example:
//
//	list, err := lister.ListWithOptions(
//	    lister.WithStartDir("/srv/data"),
//	    lister.WithTypes(walker.TypeRegular),
//	    lister.WithPattern(`\.log$`),
//	)
//
// When the size limit is reached the partial list collected so far is
// returned together with an error matching [flerrors.ErrSizeLimit]; the
// partial list holds exactly the limit's worth of entries and is sorted
// like a complete one.
func ListWithOptions(opts ...Option) (*List, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("lister: %w", err)
		}
	}

	startDir := pathutil.Clean(cfg.startDir)
	if startDir == "" {
		return nil, fmt.Errorf("lister: %w", &flerrors.ConfigError{
			Option:  "start-dir",
			Message: "no start directory specified: use WithStartDir",
		})
	}

	f, err := newFilter(cfg)
	if err != nil {
		return nil, fmt.Errorf("lister: %w", err)
	}

	buf := newResultBuffer(cfg.maxSize)
	truncated := false
	handler := func(e walker.Entry) walker.Action {
		if !f.includes(e.Type, e.Name) {
			return walker.Continue
		}
		path := e.Path
		if cfg.trailingSep && e.Type == walker.TypeDir {
			path += string(pathutil.Separator)
		}
		if err := buf.append(path); err != nil {
			truncated = true
			cfg.logger.Warn("list size limit reached, returning partial result",
				"limit", cfg.maxSize, "path", path)
			return walker.Stop
		}
		return walker.Continue
	}

	walkOpts := []walker.Option{
		walker.WithRoot(startDir),
		walker.WithMaxDepth(cfg.depth),
		walker.WithEntryHandler(handler),
		walker.WithLogger(cfg.logger),
	}
	if cfg.followLinks {
		walkOpts = append(walkOpts, walker.WithFollowSymlinks())
	}
	if cfg.stayOnDevice {
		walkOpts = append(walkOpts, walker.WithStayOnDevice())
	}
	if err := walker.WalkWithOptions(walkOpts...); err != nil {
		return nil, fmt.Errorf("lister: %w", err)
	}

	list := &List{Paths: buf.finalize(), Truncated: truncated}
	if c := sorter.ForMethodTag(cfg.sortMethod, cfg.collation); c != nil {
		sorter.SortWith(list.Paths, c)
	}

	if truncated {
		return list, fmt.Errorf("lister: %w", &flerrors.LimitError{Limit: cfg.maxSize})
	}
	return list, nil
}

// Truncated reports whether err indicates a size-limited, partial
// result. It is a convenience wrapper around errors.Is with
// [flerrors.ErrSizeLimit].
func Truncated(err error) bool {
	return errors.Is(err, flerrors.ErrSizeLimit)
}
