package trajectory

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleFrames() []Frame {
	return []Frame{
		{Frame: 0, Actor: 1, ResetType: "DamageKnockBack", Result: "handled", SpeedX: 0.25, PosX: 0.25},
		{Frame: 1, Actor: 1, ResetType: "DamageKnockBack", Result: "handled", SpeedX: math.Float32frombits(0x3d39eb88), PosX: 0.29539064},
		{Frame: 2, Actor: 1, ResetType: "Ground", Result: "deferred", SpeedX: -1.5, SpeedY: 1e-7, PosX: -3, PosY: 12.125},
	}
}

func TestRecordingRoundTrip(t *testing.T) {
	rec := NewRecording("knockback", sampleFrames())
	var buf bytes.Buffer
	require.NoError(t, rec.Write(&buf))
	require.True(t, strings.HasPrefix(buf.String(), "# version: 1\n"))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, rec.RunID, got.RunID)
	require.Equal(t, "knockback", got.Scenario)
	require.Equal(t, rec.Frames, got.Frames)

	d, err := Compare(rec.Frames, got.Frames)
	require.NoError(t, err)
	require.True(t, d.Equal())
	require.Zero(t, d.Distance)
}

func TestRecordingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")
	rec := NewRecording("empty", nil)
	require.NoError(t, rec.WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, rec.RunID, got.RunID)
	require.Empty(t, got.Frames)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	_, err := Read(strings.NewReader("# version: 9\nframe,actor\n"))
	require.Error(t, err)

	_, err = Read(strings.NewReader("# nonsense\n"))
	require.Error(t, err)
}

func TestCompareReportsFirstMismatch(t *testing.T) {
	want := sampleFrames()
	got := sampleFrames()
	got[1].SpeedX = math.Float32frombits(0x3d39eb89)
	got[2].Result = "handled"

	d, err := Compare(want, got)
	require.NoError(t, err)
	require.False(t, d.Equal())
	require.Equal(t, 2, d.Mismatches)
	require.NotNil(t, d.First)
	require.Equal(t, 1, d.First.Frame)
	require.Equal(t, "speed_x", d.First.Field)
	require.Greater(t, d.MaxDelta, 0.0)
	require.Less(t, d.MaxDelta, 1e-8)
	require.Greater(t, d.MeanDelta, 0.0)

	_, err = Compare(want, got[:2])
	require.Error(t, err)

	got = sampleFrames()
	got[0].Actor = 2
	_, err = Compare(want, got)
	require.Error(t, err)
}
