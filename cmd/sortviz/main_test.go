package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/trace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestTraceJSON(t *testing.T) {
	out, err := execute(t, "trace", "merge", "--bars", "6", "--seed", "5")
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}

	var data trace.ExportData
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Algorithm != "merge" || data.Seed != 5 {
		t.Errorf("unexpected header: %+v", data)
	}
	if len(data.Input) != 6 || !data.Output.IsSorted() {
		t.Errorf("unexpected sequences: in=%v out=%v", data.Input, data.Output)
	}
	if data.Counts.Total() != len(data.Steps) {
		t.Errorf("counts %d != steps %d", data.Counts.Total(), len(data.Steps))
	}
}

func TestTraceCSV(t *testing.T) {
	out, err := execute(t, "trace", "bubbleSort", "--bars", "4", "--seed", "1", "--format", "csv")
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "step,kind,i,j,value" {
		t.Errorf("unexpected header %q", lines[0])
	}
	compares := 0
	for _, l := range lines[1:] {
		if strings.Contains(l, ",compare,") {
			compares++
		}
	}
	if compares != 6 {
		t.Errorf("expected 6 compares for 4 bars, got %d", compares)
	}
}

func TestTraceErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown algorithm", []string{"trace", "bogo"}, "unknown algorithm"},
		{"unknown format", []string{"trace", "heap", "--format", "xml"}, "unknown format"},
		{"unknown preset", []string{"trace", "heap", "--preset", "huge"}, "unknown preset"},
		{"too many bars", []string{"trace", "heap", "--bars", "500"}, "bars must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats", "--bars", "10", "--seed", "2", "--max-n", "8")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{"ALGORITHM", "Quick Sort", "Merge Sort", "total steps vs n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPlayHeadless(t *testing.T) {
	out, err := execute(t, "play", "heap", "--bars", "4", "--seed", "9", "--delay", "1")
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if !strings.Contains(out, "Heap Sort on 4 bars") {
		t.Errorf("missing header: %s", out)
	}
	if !strings.Contains(out, "paint") || !strings.Contains(out, "output:") {
		t.Errorf("missing playback output: %s", out)
	}
}

func TestListings(t *testing.T) {
	out, err := execute(t, "algorithms")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "bubble") || !strings.Contains(out, "Quick Sort") {
		t.Errorf("unexpected algorithms output: %s", out)
	}

	out, err = execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "tiny") || !strings.Contains(out, "dense") {
		t.Errorf("unexpected presets output: %s", out)
	}
}
