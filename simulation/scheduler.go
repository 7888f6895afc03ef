package simulation

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
	"github.com/oomph-ac/kinetic/kinetic"
)

// Counts is the amount of updates a reset type was handled or deferred for.
type Counts struct {
	Handled  int
	Deferred int
}

// Scheduler steps every actor of a world once per frame, in id order. When Enabled is false the stop energy
// state machine is bypassed and the default behaviour runs for every call.
type Scheduler struct {
	World   *World
	Enabled bool
	Dbg     *debug.Debugger

	frame  int
	counts *orderedmap.OrderedMap[kinetic.ResetType, Counts]
}

// NewScheduler returns an enabled scheduler for the world.
func NewScheduler(w *World, dbg *debug.Debugger) *Scheduler {
	return &Scheduler{
		World:   w,
		Enabled: true,
		Dbg:     dbg,
		counts:  orderedmap.NewOrderedMap[kinetic.ResetType, Counts](),
	}
}

// Frame returns the amount of frames stepped so far.
func (s *Scheduler) Frame() int {
	return s.frame
}

// Setup transitions the actor's stop energy into the reset type.
func (s *Scheduler) Setup(a *Actor, t kinetic.ResetType, speed mgl32.Vec2) {
	if !s.Enabled {
		s.Dbg.Notify(debug.ModeScheduler, true, "frame %d: actor %d default setup %v", s.frame, a.id, t)
		a.stop.Reset(t, speed)
		return
	}
	a.stop.Setup(a, t, speed)
}

// Initialize re-derives the actor's brake and limit. The default initialization keeps them as they are.
func (s *Scheduler) Initialize(a *Actor) {
	if !s.Enabled {
		return
	}
	a.stop.Initialize(a)
}

// Update runs one frame of the actor's stop energy and returns how it was resolved. A deferred update runs the
// default integration step.
func (s *Scheduler) Update(a *Actor) kinetic.Result {
	res := kinetic.Deferred
	if s.Enabled {
		res = a.stop.Update(a)
	}
	if res == kinetic.Deferred && a.stop.Enabled() {
		Integrate(a.stop)
	}

	rt := a.stop.ResetType()
	c, _ := s.counts.Get(rt)
	if res == kinetic.Handled {
		c.Handled++
	} else {
		c.Deferred++
	}
	s.counts.Set(rt, c)

	s.Dbg.Notify(debug.ModeScheduler, res == kinetic.Deferred, "frame %d: actor %d %v fell back to default update", s.frame, a.id, rt)
	return res
}

// Step updates every actor and moves it by its resulting speed. The callback, if not nil, is called for each
// actor after it has moved.
func (s *Scheduler) Step(f func(a *Actor, res kinetic.Result)) {
	for _, a := range s.World.Actors() {
		res := s.Update(a)
		a.advance()
		if f != nil {
			f(a, res)
		}
	}
	s.frame++
}

// Counts returns the update results per reset type, in the order reset types were first updated.
func (s *Scheduler) Counts() *orderedmap.OrderedMap[kinetic.ResetType, Counts] {
	return s.counts
}
