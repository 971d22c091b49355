package logspec

import (
	"fmt"
	"os"
	"strings"
)

const envVar = "LOGSPEC"

// parseSpec parses a logging specification (e.g. "app,app.db=warn/slow")
// into directives and an optional message filter. Malformed tokens are
// reported on stderr and skipped; only a specification with more than one
// "/" is rejected outright.
func parseSpec(spec string, literal bool) ([]directive, Filter) {
	parts := strings.Split(spec, "/")
	if len(parts) > 2 {
		fmt.Fprintf(os.Stderr, "warning: invalid logging spec '%s', ignoring it (too many '/'s)\n", spec)
		return nil, nil
	}

	var dirs []directive
	for _, s := range strings.Split(parts[0], ",") {
		if s == "" {
			continue
		}
		var (
			module string
			level  Level
		)
		switch eq := strings.Split(s, "="); len(eq) {
		case 1:
			// A bare level name or number applies globally; anything
			// else is a module enabled at full verbosity.
			if lvl, err := parseLevel(eq[0]); err == nil {
				level = lvl
			} else {
				module, level = eq[0], maxLevel
			}
		case 2:
			rhs := strings.TrimSpace(eq[1])
			if rhs == "" {
				// "module=" means full verbosity for that module.
				module, level = eq[0], maxLevel
			} else if lvl, err := parseLevel(rhs); err == nil {
				module, level = eq[0], lvl
			} else {
				fmt.Fprintf(os.Stderr, "warning: invalid logging spec '%s', ignoring it\n", rhs)
				continue
			}
		default:
			fmt.Fprintf(os.Stderr, "warning: invalid logging spec '%s', ignoring it\n", s)
			continue
		}
		dirs = append(dirs, directive{module: module, level: level})
	}

	var filter Filter
	if len(parts) == 2 {
		f, err := newFilter(parts[1], literal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s\n", err)
		} else {
			filter = f
		}
	}

	return dirs, filter
}
