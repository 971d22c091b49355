package logspec

import (
	"bytes"
	"regexp"

	"github.com/pkg/errors"
)

// Filter tests rendered message text against the pattern given after the
// "/" in a specification string. There is at most one filter per Logger,
// shared by all modules.
type Filter interface {
	// Match reports whether msg passes the filter.
	Match(msg []byte) bool

	// String returns the original pattern.
	String() string
}

// regexFilter matches messages with an unanchored regular expression.
type regexFilter struct {
	re *regexp.Regexp
}

func (f regexFilter) Match(msg []byte) bool { return f.re.Match(msg) }
func (f regexFilter) String() string        { return f.re.String() }

// literalFilter matches messages containing the pattern as a plain
// substring. It never fails to compile.
type literalFilter string

func (f literalFilter) Match(msg []byte) bool { return bytes.Contains(msg, []byte(f)) }
func (f literalFilter) String() string        { return string(f) }

// newFilter compiles pattern with the matching strategy chosen when the
// Builder was configured.
func newFilter(pattern string, literal bool) (Filter, error) {
	if literal {
		return literalFilter(pattern), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid filter pattern %q", pattern)
	}
	return regexFilter{re}, nil
}
