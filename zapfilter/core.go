// Package zapfilter gates zap entries against a logspec specification
// before they reach the wrapped core. The entry's logger name, as set
// with Logger.Named, is the module path matched by directives.
package zapfilter

import (
	"go.uber.org/zap/zapcore"

	"github.com/waimea/logspec"
)

// Core filters entries before delegating to the core it wraps.
type Core struct {
	next zapcore.Core
	res  *logspec.Logger
}

var _ zapcore.Core = (*Core)(nil)

// New wraps next with a filter configured from the LOGSPEC environment
// variable.
func New(next zapcore.Core) *Core {
	return &Core{next: next, res: logspec.New(nil)}
}

// NewSpec wraps next with a filter parsed from an explicit specification
// string.
func NewSpec(next zapcore.Core, spec string) *Core {
	return &Core{next: next, res: logspec.NewBuilder(nil).Parse(spec).Build()}
}

// Enabled coarsely checks the level against the most verbose directive.
// The per-module decision happens in Check, where the logger name is
// known.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return fromZap(lvl) <= c.res.MaxLevel()
}

func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	return &Core{next: c.next.With(fields), res: c.res}
}

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.res.Enabled(fromZap(ent.Level), ent.LoggerName) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if f := c.res.Filter(); f != nil && !f.Match([]byte(ent.Message)) {
		return nil
	}
	return c.next.Write(ent, fields)
}

func (c *Core) Sync() error { return c.next.Sync() }

// fromZap collapses zap's level scale onto the directive scale. Zap has
// no trace level; everything below debug maps to debug.
func fromZap(l zapcore.Level) logspec.Level {
	switch {
	case l >= zapcore.ErrorLevel:
		return logspec.Error
	case l >= zapcore.WarnLevel:
		return logspec.Warn
	case l >= zapcore.InfoLevel:
		return logspec.Info
	default:
		return logspec.Debug
	}
}
