package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinetic/debug"
	"github.com/oomph-ac/kinetic/kinetic"
	"github.com/oomph-ac/kinetic/param"
	"github.com/oomph-ac/kinetic/trajectory"
	"gopkg.in/yaml.v3"
)

// Scenario describes a scripted simulation: a set of actors, the reset types they start in and the events
// that change their environment on specific frames.
type Scenario struct {
	Name string `yaml:"name"`
	// Enabled toggles the stop energy state machine for the run. It defaults to true.
	Enabled *bool `yaml:"enabled"`
	Frames  int   `yaml:"frames"`
	// Params overrides the default parameters of every actor, grouped like the parameter files.
	Params map[string]any `yaml:"params"`

	Actors []ActorSpec `yaml:"actors"`
	Events []Event     `yaml:"events"`
}

// StopSpec is a reset type transition.
type StopSpec struct {
	Type  kinetic.ResetType `yaml:"type"`
	Speed mgl32.Vec2        `yaml:"speed"`
}

// DamageSpec is the damage log entry of an actor.
type DamageSpec struct {
	Attacker      uint32 `yaml:"attacker"`
	HitStopFrames int32  `yaml:"hitstop_frames"`
}

// ActorSpec describes an actor at the start of a scenario.
type ActorSpec struct {
	ID           uint32            `yaml:"id"`
	Params       map[string]any    `yaml:"params"`
	Position     mgl32.Vec3        `yaml:"position"`
	Situation    kinetic.Situation `yaml:"situation"`
	GroundNormal *mgl32.Vec2       `yaml:"ground_normal"`
	LimitExempt  bool              `yaml:"limit_exempt"`
	JostleArea   kinetic.AreaKind  `yaml:"jostle_area"`
	// Areas maps an area kind to its extents relative to the actor, as min x, y, z followed by max x, y, z.
	Areas map[kinetic.AreaKind][6]float32 `yaml:"areas"`
	// Joints maps a joint to its position relative to the actor. Names are either "primary", "secondary" or
	// a numeric joint hash.
	Joints map[string]mgl32.Vec3       `yaml:"joints"`
	Damage DamageSpec                  `yaml:"damage"`
	Links  map[kinetic.LinkSlot]uint32 `yaml:"links"`
	Motion []mgl32.Vec3                `yaml:"motion"`
	Stop   StopSpec                    `yaml:"stop"`
}

// InterpolateSpec moves the speed of an actor toward Speed over Frames frames.
type InterpolateSpec struct {
	Speed  mgl32.Vec2 `yaml:"speed"`
	Frames uint32     `yaml:"frames"`
}

// Event changes an actor before the frame it is scheduled for is stepped. Only the fields that are set are
// applied.
type Event struct {
	Frame int    `yaml:"frame"`
	Actor uint32 `yaml:"actor"`

	Setup          *StopSpec          `yaml:"setup"`
	Initialize     bool               `yaml:"initialize"`
	Situation      *kinetic.Situation `yaml:"situation"`
	TrailingGround *bool              `yaml:"trailing_ground"`
	LimitExempt    *bool              `yaml:"limit_exempt"`
	Dead           *bool              `yaml:"dead"`
	Damage         *DamageSpec        `yaml:"damage"`
	Motion         []mgl32.Vec3       `yaml:"motion"`
	SpeedMax       *mgl32.Vec2        `yaml:"speed_max"`
	Sync           bool               `yaml:"sync"`
	Interpolate    *InterpolateSpec   `yaml:"interpolate"`
	TargetLimit    *float32           `yaml:"target_limit"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := DecodeScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// DecodeScenario decodes and validates a YAML scenario.
func DecodeScenario(data []byte) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Frames <= 0 {
		return fmt.Errorf("scenario %q: frames must be positive", sc.Name)
	}
	ids := make(map[uint32]struct{}, len(sc.Actors))
	for _, a := range sc.Actors {
		if a.ID == 0 {
			return fmt.Errorf("scenario %q: actor ids must be non-zero", sc.Name)
		}
		if _, ok := ids[a.ID]; ok {
			return fmt.Errorf("scenario %q: duplicate actor %d", sc.Name, a.ID)
		}
		ids[a.ID] = struct{}{}
		for name := range a.Joints {
			if _, err := jointID(name); err != nil {
				return fmt.Errorf("scenario %q: actor %d: %w", sc.Name, a.ID, err)
			}
		}
	}
	for _, ev := range sc.Events {
		if _, ok := ids[ev.Actor]; !ok {
			return fmt.Errorf("scenario %q: event on frame %d targets unknown actor %d", sc.Name, ev.Frame, ev.Actor)
		}
		if ev.Frame < 0 || ev.Frame >= sc.Frames {
			return fmt.Errorf("scenario %q: event frame %d outside of [0, %d)", sc.Name, ev.Frame, sc.Frames)
		}
	}
	return nil
}

func jointID(name string) (kinetic.JointID, error) {
	switch name {
	case "primary":
		return kinetic.JointKnockBackPrimary, nil
	case "secondary":
		return kinetic.JointKnockBackSecondary, nil
	}
	v, err := strconv.ParseUint(name, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown joint %q", name)
	}
	return kinetic.JointID(v), nil
}

// Run simulates the scenario on top of the base parameters and returns one frame per actor per simulated
// frame. A nil base uses the default parameters.
func (sc *Scenario) Run(ctx context.Context, base *param.Store, log *slog.Logger, dbg *debug.Debugger) ([]trajectory.Frame, error) {
	if base == nil {
		base = param.Defaults()
	}
	shared := base.Clone()
	if err := shared.Apply(sc.Params); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	w := NewWorld(log)
	sched := NewScheduler(w, dbg)
	if sc.Enabled != nil {
		sched.Enabled = *sc.Enabled
	}

	for _, spec := range sc.Actors {
		params := shared.Clone()
		if err := params.Apply(spec.Params); err != nil {
			return nil, fmt.Errorf("scenario %q: actor %d: %w", sc.Name, spec.ID, err)
		}
		a := NewActor(spec.ID, params)
		a.SetDebugger(dbg)
		a.State = spec.state()
		w.AddActor(a)
	}
	// Actors are set up once all of them exist, so the knockback query can find its attacker.
	for _, spec := range sc.Actors {
		a, _ := w.Actor(spec.ID)
		sched.Setup(a, spec.Stop.Type, spec.Stop.Speed)
	}

	events := make(map[int][]Event, len(sc.Events))
	for _, ev := range sc.Events {
		events[ev.Frame] = append(events[ev.Frame], ev)
	}

	frames := make([]trajectory.Frame, 0, sc.Frames*len(sc.Actors))
	for i := 0; i < sc.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, ev := range events[i] {
			a, _ := w.Actor(ev.Actor)
			ev.apply(sched, a)
		}
		sched.Step(func(a *Actor, res kinetic.Result) {
			speed, pos := a.stop.Speed(), a.State.Position
			frames = append(frames, trajectory.Frame{
				Frame:     i,
				Actor:     a.id,
				ResetType: a.stop.ResetType().String(),
				Result:    res.String(),
				SpeedX:    speed[0],
				SpeedY:    speed[1],
				PosX:      pos[0],
				PosY:      pos[1],
			})
		})
	}
	w.log.Info("scenario finished", "name", sc.Name, "frames", sc.Frames, "actors", len(sc.Actors))
	for el := sched.Counts().Front(); el != nil; el = el.Next() {
		w.log.Info("reset type results", "name", sc.Name, "reset_type", el.Key, "handled", el.Value.Handled, "deferred", el.Value.Deferred)
	}
	return frames, nil
}

func (spec ActorSpec) state() ActorState {
	s := ActorState{
		Position:     spec.Position,
		Situation:    spec.Situation,
		GroundNormal: FlatGround,
		LimitExempt:  spec.LimitExempt,
		JostleArea:   spec.JostleArea,
		Areas:        make(map[kinetic.AreaKind]cube.BBox, len(spec.Areas)),
		Joints:       make(map[kinetic.JointID]mgl32.Vec3, len(spec.Joints)),
		LastDamage:   kinetic.DamageLog{AttackerID: spec.Damage.Attacker, HitStopFrames: spec.Damage.HitStopFrames},
		Links:        spec.Links,
		Motion:       spec.Motion,
	}
	if spec.GroundNormal != nil {
		s.GroundNormal = *spec.GroundNormal
	}
	for kind, b := range spec.Areas {
		s.Areas[kind] = cube.Box(b[0], b[1], b[2], b[3], b[4], b[5])
	}
	for name, pos := range spec.Joints {
		// Names were checked by validate.
		id, _ := jointID(name)
		s.Joints[id] = pos
	}
	return s
}

func (ev Event) apply(sched *Scheduler, a *Actor) {
	if ev.Situation != nil {
		a.State.Situation = *ev.Situation
	}
	if ev.TrailingGround != nil {
		a.State.TrailingGround = *ev.TrailingGround
	}
	if ev.LimitExempt != nil {
		a.State.LimitExempt = *ev.LimitExempt
	}
	if ev.Dead != nil {
		a.State.Dead = *ev.Dead
	}
	if ev.Damage != nil {
		a.State.LastDamage = kinetic.DamageLog{AttackerID: ev.Damage.Attacker, HitStopFrames: ev.Damage.HitStopFrames}
	}
	if ev.Motion != nil {
		a.State.Motion, a.State.MotionFrame = ev.Motion, 0
	}
	if ev.Setup != nil {
		sched.Setup(a, ev.Setup.Type, ev.Setup.Speed)
	}
	if ev.Initialize {
		sched.Initialize(a)
	}
	if ev.SpeedMax != nil {
		a.stop.SetSpeedMax(*ev.SpeedMax)
	}
	if ev.Sync {
		a.stop.RequestDamageSpeedSync()
	}
	if ev.Interpolate != nil {
		a.stop.InterpolateSpeed(ev.Interpolate.Speed, ev.Interpolate.Frames)
	}
	if ev.TargetLimit != nil {
		a.stop.TargetPosition(*ev.TargetLimit)
	}
}
