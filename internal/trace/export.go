package trace

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	Algorithm string   `json:"algorithm"`
	Seed      int64    `json:"seed"`
	Input     Sequence `json:"input"`
	Output    Sequence `json:"output"`
	Counts    Counts   `json:"counts"`
	Steps     Trace    `json:"steps"`
}

func NewExport(algorithm string, seed int64, input Sequence, t Trace) (*ExportData, error) {
	out, err := Apply(input, t)
	if err != nil {
		return nil, err
	}
	if t == nil {
		t = Trace{}
	}
	return &ExportData{
		Algorithm: algorithm,
		Seed:      seed,
		Input:     input,
		Output:    out,
		Counts:    CountSteps(t),
		Steps:     t,
	}, nil
}

func WriteJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per step: index, kind, i, j, value.
func WriteCSV(w io.Writer, t Trace) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "kind", "i", "j", "value"}); err != nil {
		return err
	}

	for n, s := range t {
		row := []string{strconv.Itoa(n), s.Kind.String(), strconv.Itoa(s.I), "", ""}
		if s.Kind == Overwrite {
			row[4] = strconv.Itoa(s.Value)
		} else {
			row[3] = strconv.Itoa(s.J)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
