// Package trajectory records the per-frame output of a simulation and compares recordings against each other.
package trajectory

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// CurrentVersion is the version written to the header of new recordings.
const CurrentVersion = "1"

// Frame is the state of one actor after one simulated frame.
type Frame struct {
	Frame     int     `csv:"frame"`
	Actor     uint32  `csv:"actor"`
	ResetType string  `csv:"reset_type"`
	Result    string  `csv:"result"`
	SpeedX    float32 `csv:"speed_x"`
	SpeedY    float32 `csv:"speed_y"`
	PosX      float32 `csv:"pos_x"`
	PosY      float32 `csv:"pos_y"`
}

// Recording is a scenario run. It is stored as a few "# key: value" header lines followed by the frames as
// CSV.
type Recording struct {
	Version  string
	RunID    uuid.UUID
	Scenario string

	Frames []Frame
}

// NewRecording returns a recording of the frames with a new run id.
func NewRecording(scenario string, frames []Frame) *Recording {
	return &Recording{
		Version:  CurrentVersion,
		RunID:    uuid.New(),
		Scenario: scenario,
		Frames:   frames,
	}
}

// Write writes the recording to w.
func (r *Recording) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# version: %s\n# run: %s\n# scenario: %s\n", r.Version, r.RunID, r.Scenario); err != nil {
		return err
	}
	if len(r.Frames) == 0 {
		return nil
	}
	return gocsv.Marshal(r.Frames, w)
}

// WriteFile writes the recording to the file at path, replacing it if it exists.
func (r *Recording) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Read reads a recording written by Write.
func Read(rd io.Reader) (*Recording, error) {
	br := bufio.NewReader(rd)
	r := &Recording{}
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if b[0] != '#' {
			break
		}
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
		if !ok {
			return nil, fmt.Errorf("malformed header line %q", strings.TrimSpace(line))
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "version":
			r.Version = value
		case "run":
			id, err := uuid.Parse(value)
			if err != nil {
				return nil, fmt.Errorf("parse run id: %w", err)
			}
			r.RunID = id
		case "scenario":
			r.Scenario = value
		}
	}
	if r.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported recording version %q", r.Version)
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(rest)) == 0 {
		return r, nil
	}
	if err := gocsv.UnmarshalBytes(rest, &r.Frames); err != nil {
		return nil, fmt.Errorf("decode frames: %w", err)
	}
	return r, nil
}

// ReadFile reads the recording at path.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r, nil
}
