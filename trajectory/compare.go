package trajectory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mismatch is the first field of a recording that differs from the expected recording.
type Mismatch struct {
	Index int
	Frame int
	Actor uint32
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("frame %d actor %d: %s = %s, want %s", m.Frame, m.Actor, m.Field, m.Got, m.Want)
}

// Diff summarises the differences between two recordings. Float fields only match if their bits are equal.
type Diff struct {
	Frames     int
	Mismatches int
	First      *Mismatch

	// Distance is the euclidean distance between all speed and position values of both recordings.
	Distance  float64
	MaxDelta  float64
	MeanDelta float64
}

// Equal returns true if no field differed.
func (d Diff) Equal() bool {
	return d.Mismatches == 0
}

// Compare compares got against want frame by frame. The recordings must have the same frames in the same
// order.
func Compare(want, got []Frame) (Diff, error) {
	if len(want) != len(got) {
		return Diff{}, fmt.Errorf("frame count differs: want %d, got %d", len(want), len(got))
	}
	d := Diff{Frames: len(want)}
	wantValues := make([]float64, 0, len(want)*4)
	gotValues := make([]float64, 0, len(got)*4)

	for i := range want {
		w, g := want[i], got[i]
		if w.Frame != g.Frame || w.Actor != g.Actor {
			return Diff{}, fmt.Errorf("row %d is frame %d actor %d, want frame %d actor %d", i, g.Frame, g.Actor, w.Frame, w.Actor)
		}
		mismatch := func(field, want, got string) {
			d.Mismatches++
			if d.First == nil {
				d.First = &Mismatch{Index: i, Frame: w.Frame, Actor: w.Actor, Field: field, Want: want, Got: got}
			}
		}
		if w.ResetType != g.ResetType {
			mismatch("reset_type", w.ResetType, g.ResetType)
		}
		if w.Result != g.Result {
			mismatch("result", w.Result, g.Result)
		}
		for _, f := range [...]struct {
			name      string
			want, got float32
		}{
			{"speed_x", w.SpeedX, g.SpeedX},
			{"speed_y", w.SpeedY, g.SpeedY},
			{"pos_x", w.PosX, g.PosX},
			{"pos_y", w.PosY, g.PosY},
		} {
			if math.Float32bits(f.want) != math.Float32bits(f.got) {
				mismatch(f.name, fmt.Sprintf("%v (%#08x)", f.want, math.Float32bits(f.want)), fmt.Sprintf("%v (%#08x)", f.got, math.Float32bits(f.got)))
			}
			wantValues = append(wantValues, float64(f.want))
			gotValues = append(gotValues, float64(f.got))
		}
	}
	if len(wantValues) == 0 {
		return d, nil
	}

	d.Distance = floats.Distance(gotValues, wantValues, 2)
	deltas := make([]float64, len(gotValues))
	floats.SubTo(deltas, gotValues, wantValues)
	for i, v := range deltas {
		deltas[i] = math.Abs(v)
	}
	d.MaxDelta = floats.Max(deltas)
	d.MeanDelta = stat.Mean(deltas, nil)
	return d, nil
}
