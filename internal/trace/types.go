package trace

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

// Sequence holds bar heights.
type Sequence []int

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// IsSorted reports whether s is in non-decreasing order.
func (s Sequence) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

// Random draws n values uniformly from [min, max].
func Random(rng *rand.Rand, n, min, max int) Sequence {
	s := make(Sequence, n)
	for i := range s {
		s[i] = min + rng.Intn(max-min+1)
	}
	return s
}

type Kind uint8

const (
	Compare Kind = iota
	Swap
	Overwrite
)

var kindNames = [...]string{"compare", "swap", "overwrite"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("trace: unknown step kind %q", text)
}

// Step is one recorded operation. Compare and Swap use the pair (I, J);
// Overwrite writes Value at position I and ignores J.
type Step struct {
	Kind  Kind `json:"kind"`
	I     int  `json:"i"`
	J     int  `json:"j,omitempty"`
	Value int  `json:"value,omitempty"`
}

func CompareStep(i, j int) Step       { return Step{Kind: Compare, I: i, J: j} }
func SwapStep(i, j int) Step          { return Step{Kind: Swap, I: i, J: j} }
func OverwriteStep(i, value int) Step { return Step{Kind: Overwrite, I: i, Value: value} }

func (s Step) String() string {
	if s.Kind == Overwrite {
		return fmt.Sprintf("overwrite(%d)=%d", s.I, s.Value)
	}
	return fmt.Sprintf("%s(%d,%d)", s.Kind, s.I, s.J)
}

// Trace is the ordered list of steps a generator recorded.
type Trace []Step

type Counts struct {
	Compares   int `json:"compares"`
	Swaps      int `json:"swaps"`
	Overwrites int `json:"overwrites"`
}

func (c Counts) Total() int { return c.Compares + c.Swaps + c.Overwrites }

func CountSteps(t Trace) Counts {
	return Counts{
		Compares:   lo.CountBy(t, func(s Step) bool { return s.Kind == Compare }),
		Swaps:      lo.CountBy(t, func(s Step) bool { return s.Kind == Swap }),
		Overwrites: lo.CountBy(t, func(s Step) bool { return s.Kind == Overwrite }),
	}
}

// Validate checks every step against a sequence of length n.
func Validate(t Trace, n int) error {
	for idx, s := range t {
		if !inRange(s.I, n) || (s.Kind != Overwrite && !inRange(s.J, n)) {
			return &StepError{Index: idx, Step: s, Len: n, Wrapped: ErrIndexOutOfRange}
		}
		if s.Kind > Overwrite {
			return &StepError{Index: idx, Step: s, Len: n, Wrapped: ErrUnknownKind}
		}
	}
	return nil
}

// Apply replays t onto a copy of seq. Compare steps are no-ops.
func Apply(seq Sequence, t Trace) (Sequence, error) {
	if err := Validate(t, len(seq)); err != nil {
		return nil, err
	}
	out := seq.Clone()
	for _, s := range t {
		switch s.Kind {
		case Swap:
			out[s.I], out[s.J] = out[s.J], out[s.I]
		case Overwrite:
			out[s.I] = s.Value
		}
	}
	return out, nil
}

func inRange(i, n int) bool { return i >= 0 && i < n }
