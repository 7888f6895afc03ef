package simulation

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/oomph-ac/kinetic/kinetic"
	"github.com/sasha-s/go-deadlock"
)

// World holds every actor of a simulation. Actors look each other up through it, which is how the knockback
// proximity query reaches the attacker.
type World struct {
	actors map[uint32]*Actor
	nextID uint32

	log *slog.Logger

	deadlock.RWMutex
}

// NewWorld returns an empty world.
func NewWorld(log *slog.Logger) *World {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &World{
		actors: make(map[uint32]*Actor),
		nextID: 1,
		log:    log,
	}
}

// AddActor adds an actor to the world. An actor with a zero id is assigned the next free id. Adding an actor
// with the id of an existing actor replaces it.
func (w *World) AddActor(a *Actor) {
	w.Lock()
	defer w.Unlock()

	if a.id == 0 {
		for w.actors[w.nextID] != nil {
			w.nextID++
		}
		a.id = w.nextID
	}
	if _, ok := w.actors[a.id]; ok {
		w.log.Warn("replacing actor", "id", a.id)
	}
	a.world = w
	w.actors[a.id] = a
}

// RemoveActor removes the actor with the given id. Lookups of the id fail afterwards.
func (w *World) RemoveActor(id uint32) {
	w.Lock()
	defer w.Unlock()

	if a, ok := w.actors[id]; ok {
		a.world = nil
		delete(w.actors, id)
	}
}

// Actor returns the actor with the given id.
func (w *World) Actor(id uint32) (*Actor, bool) {
	w.RLock()
	a, ok := w.actors[id]
	w.RUnlock()

	return a, ok
}

// Actors returns every actor ordered by id, which is the order frames are stepped in.
func (w *World) Actors() []*Actor {
	w.RLock()
	actors := make([]*Actor, 0, len(w.actors))
	for _, a := range w.actors {
		actors = append(actors, a)
	}
	w.RUnlock()

	slices.SortFunc(actors, func(a, b *Actor) int {
		return cmp.Compare(a.id, b.id)
	})
	return actors
}

// object resolves a battle object id for the kinetic proximity query.
func (w *World) object(id uint32) (kinetic.Object, bool) {
	a, ok := w.Actor(id)
	if !ok {
		return nil, false
	}
	return a, true
}
