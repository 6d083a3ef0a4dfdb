package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// LevelSwitch is a zerolog hook that drops events below a level that can be
// changed at runtime. Loggers copied before a change observe it too.
type LevelSwitch struct {
	level atomic.Int32
}

// NewLevelSwitch returns a switch set to level.
func NewLevelSwitch(level zerolog.Level) *LevelSwitch {
	s := &LevelSwitch{}
	s.Set(level)
	return s
}

// Set changes the minimum level.
func (s *LevelSwitch) Set(level zerolog.Level) { s.level.Store(int32(level)) }

// Level returns the minimum level.
func (s *LevelSwitch) Level() zerolog.Level { return zerolog.Level(s.level.Load()) }

// Run implements zerolog.Hook.
func (s *LevelSwitch) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level < s.Level() || s.Level() == zerolog.Disabled {
		e.Discard()
	}
}

// NewSwitchable builds a logger whose level is governed by the returned switch.
func NewSwitchable(cfg Config) (zerolog.Logger, *LevelSwitch) {
	sw := NewLevelSwitch(cfg.Level)
	cfg.Level = zerolog.TraceLevel
	return New(cfg).Hook(sw), sw
}
