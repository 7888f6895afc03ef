package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/kinetic/param"
	"github.com/oomph-ac/kinetic/trajectory"
	"github.com/stretchr/testify/require"
)

const knockBackScenario = "../../simulation/testdata/knockback.yaml"

func TestRunScenarioRecordsAndCompares(t *testing.T) {
	log := slog.New(slog.DiscardHandler)
	dir := t.TempDir()

	require.NoError(t, runScenario(context.Background(), knockBackScenario, param.Defaults(), log, nil, false, dir, ""))
	rec, err := trajectory.ReadFile(filepath.Join(dir, "knockback.csv"))
	require.NoError(t, err)
	require.Equal(t, "knockback", rec.Scenario)
	require.NotEmpty(t, rec.Frames)

	// A second run must reproduce the first one bit for bit.
	require.NoError(t, runScenario(context.Background(), knockBackScenario, param.Defaults(), log, nil, false, "", dir))

	// Disabling the state machine changes the trajectory.
	require.Error(t, runScenario(context.Background(), knockBackScenario, param.Defaults(), log, nil, true, "", dir))
}

func TestWriteParams(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeParams(&buf, param.Defaults()))

	again := bytes.Buffer{}
	require.NoError(t, writeParams(&again, param.Defaults()))
	require.Equal(t, buf.String(), again.String())
	require.Contains(t, buf.String(), "battle_object.damage_speed_limit = 10\n")
	require.Contains(t, buf.String(), "common.damage_ground_mul = 1.2\n")
}
