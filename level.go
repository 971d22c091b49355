package logspec

import (
	"errors"
	"strconv"
	"strings"
)

// Level is the verbosity ceiling of a directive and the severity of an
// event. Higher values are more verbose: a directive at a given level
// admits every event at or below it, so Trace admits everything and Off
// admits nothing.
type Level int

const (
	Off Level = iota
	Error
	Warn
	Info
	Debug
	Trace

	maxLevel = Trace
)

// parseLevel accepts a level name or its integer rank.
func parseLevel(s string) (level Level, err error) {
	switch strings.ToLower(s) {
	case "off":
		return Off, nil
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warn, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "trace":
		return Trace, nil
	}

	// Otherwise expect an explicit numeric level.
	if n, ierr := strconv.Atoi(s); ierr != nil {
		err = errors.New("invalid logging level: " + s)
	} else {
		level = Level(n)
		if level < Off || level > maxLevel {
			err = errors.New("numeric level out of range: " + s)
		}
	}
	return
}

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		return strconv.Itoa(int(l))
	}
}
