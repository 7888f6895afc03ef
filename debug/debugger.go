// Package debug provides per-mode debug tracing for the kinetic state machine.
package debug

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Mode is a debug category that can be toggled independently.
type Mode uint32

const (
	ModeSetup Mode = 1 << iota
	ModeInitialize
	ModeUpdate
	ModeKnockBack
	ModeDamage
	ModeClamp
	ModeScheduler
)

var modeNames = map[string]Mode{
	"setup":      ModeSetup,
	"initialize": ModeInitialize,
	"update":     ModeUpdate,
	"knockback":  ModeKnockBack,
	"damage":     ModeDamage,
	"clamp":      ModeClamp,
	"scheduler":  ModeScheduler,
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, bool) {
	m, ok := modeNames[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ParseModes parses a comma separated list of mode names. "all" enables every mode.
func ParseModes(list string) (Mode, error) {
	var modes Mode
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if strings.TrimSpace(name) == "all" {
			for _, m := range modeNames {
				modes |= m
			}
			continue
		}
		m, ok := ParseMode(name)
		if !ok {
			return 0, fmt.Errorf("unknown debug mode %q", name)
		}
		modes |= m
	}
	return modes, nil
}

// Debugger logs debug messages for enabled modes. A nil *Debugger discards everything.
type Debugger struct {
	log   *slog.Logger
	modes Mode
}

// New returns a Debugger writing to log with the given modes enabled.
func New(log *slog.Logger, modes Mode) *Debugger {
	return &Debugger{log: log, modes: modes}
}

// Toggle flips the given mode.
func (d *Debugger) Toggle(mode Mode) {
	d.modes ^= mode
}

// Enabled returns true if the mode is enabled.
func (d *Debugger) Enabled(mode Mode) bool {
	return d != nil && d.modes&mode != 0
}

// Notify logs the formatted message if the mode is enabled and cond is true.
func (d *Debugger) Notify(mode Mode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) || d.log == nil {
		return
	}
	d.log.Debug(fmt.Sprintf(format, args...), "mode", mode.String())
}

func (m Mode) String() string {
	var names []string
	for name, v := range modeNames {
		if m&v != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	slices.Sort(names)
	return strings.Join(names, ",")
}
