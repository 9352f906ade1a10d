package stream

import (
	"github.com/gobwas/glob"

	"vigil/internal/app/errors"
)

// Filter matches log messages against include and exclude patterns
type Filter interface {
	Match(message string) bool
}

// filter implements the Filter interface
type filter struct {
	includes []glob.Glob
	excludes []glob.Glob
}

// NewFilter compiles include and exclude glob patterns. Empty includes
// match everything; excludes win over includes.
func NewFilter(includes, excludes []string) (Filter, error) {
	f := &filter{
		includes: make([]glob.Glob, 0, len(includes)),
		excludes: make([]glob.Glob, 0, len(excludes)),
	}

	for _, p := range includes {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.ErrInvalidGlobPattern
		}

		f.includes = append(f.includes, g)
	}

	for _, p := range excludes {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.ErrInvalidGlobPattern
		}

		f.excludes = append(f.excludes, g)
	}

	return f, nil
}

// Match reports whether a message passes the filter
func (f *filter) Match(message string) bool {
	for _, g := range f.excludes {
		if g.Match(message) {
			return false
		}
	}

	if len(f.includes) == 0 {
		return true
	}

	for _, g := range f.includes {
		if g.Match(message) {
			return true
		}
	}

	return false
}
