// core/ori/detector.go
package ori

import (
	"fmt"
	"sort"

	"plasmid-core/dna"
)

// DnaABox is the canonical 9-mer DnaA-binding consensus.
const DnaABox = dna.Sequence("TTATCCACA")

// Weights are the tunable composite-score coefficients. They are injected
// rather than package-level constants so callers can probe sensitivity.
type Weights struct {
	GCSkew    float64 `mapstructure:"gc-skew"`
	DnaABox   float64 `mapstructure:"dnaa-box"`
	ATContent float64 `mapstructure:"at-content"`
}

// Config controls the windowed scan.
type Config struct {
	Window      int     `mapstructure:"window"`
	Step        int     `mapstructure:"step"`
	BoxMismatch int     `mapstructure:"box-mismatch"`
	ATThreshold float64 `mapstructure:"at-threshold"`
	Weights     Weights `mapstructure:"weights"`
}

// DefaultConfig returns the stock scan parameters.
func DefaultConfig() Config {
	return Config{
		Window:      250,
		Step:        10,
		BoxMismatch: 1,
		ATThreshold: 0.55,
		Weights:     Weights{GCSkew: 0.4, DnaABox: 0.35, ATContent: 0.25},
	}
}

// Candidate is one scored window. Composite is the weighted sum of the three
// normalized sub-scores.
type Candidate struct {
	Pos            int     `json:"pos"`
	Length         int     `json:"length"`
	GCSkewScore    float64 `json:"gcSkewScore"`
	DnaABoxCount   int     `json:"dnaABoxCount"`
	ATContentScore float64 `json:"atContentScore"`
	Composite      float64 `json:"compositeScore"`
}

// SequenceTooShortError means the input is smaller than one scan window.
type SequenceTooShortError struct {
	SeqLen, Window int
}

func (e *SequenceTooShortError) Error() string {
	return fmt.Sprintf("sequence length %d is shorter than the ORI scan window %d; supply a longer sequence or a smaller window", e.SeqLen, e.Window)
}

// Detector scores candidate replication origins.
type Detector struct {
	cfg Config
}

// New returns a Detector for cfg; zero-value fields fall back to defaults.
func New(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.ATThreshold <= 0 || cfg.ATThreshold >= 1 {
		cfg.ATThreshold = def.ATThreshold
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	return &Detector{cfg: cfg}
}

// Detect slides a fixed window across seq and returns every window as a
// ranked Candidate: composite score descending, ties broken by leftmost
// position. The scan is linear; no wrap-around window is formed at the
// sequence end even though plasmids are circular.
//
// Identical (seq, Config) always yields an identical ranking.
func (d *Detector) Detect(seq dna.Sequence) ([]Candidate, error) {
	w := d.cfg.Window
	if len(seq) < w {
		return nil, &SequenceTooShortError{SeqLen: len(seq), Window: w}
	}

	rcBox := DnaABox.RevComp()

	var skews, shifts, ats []float64
	var boxes []int
	var positions []int
	for pos := 0; pos+w <= len(seq); pos += d.cfg.Step {
		win := seq[pos : pos+w]

		g, c := win.Count('G'), win.Count('C')
		skew := 0.0
		if g+c > 0 {
			skew = float64(g-c) / float64(g+c)
		}

		n := len(dna.FindApprox(win, DnaABox, d.cfg.BoxMismatch))
		if rcBox != DnaABox {
			n += len(dna.FindApprox(win, rcBox, d.cfg.BoxMismatch))
		}

		positions = append(positions, pos)
		skews = append(skews, skew)
		boxes = append(boxes, n)
		ats = append(ats, win.AT())
	}

	// Origins sit at a skew transition, so score the signed-skew derivative
	// across consecutive windows rather than the skew itself.
	shifts = make([]float64, len(skews))
	maxShift := 0.0
	for i := 1; i < len(skews); i++ {
		s := skews[i] - skews[i-1]
		if s < 0 {
			s = -s
		}
		shifts[i] = s
		if s > maxShift {
			maxShift = s
		}
	}
	maxBoxes := 0
	for _, n := range boxes {
		if n > maxBoxes {
			maxBoxes = n
		}
	}

	out := make([]Candidate, len(positions))
	for i, pos := range positions {
		skewScore := 0.0
		if maxShift > 0 {
			skewScore = shifts[i] / maxShift
		}
		boxScore := 0.0
		if maxBoxes > 0 {
			boxScore = float64(boxes[i]) / float64(maxBoxes)
		}
		atScore := (ats[i] - d.cfg.ATThreshold) / (1 - d.cfg.ATThreshold)
		if atScore < 0 {
			atScore = 0
		}
		wts := d.cfg.Weights
		out[i] = Candidate{
			Pos:            pos,
			Length:         w,
			GCSkewScore:    skewScore,
			DnaABoxCount:   boxes[i],
			ATContentScore: atScore,
			Composite:      wts.GCSkew*skewScore + wts.DnaABox*boxScore + wts.ATContent*atScore,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Composite != out[j].Composite {
			return out[i].Composite > out[j].Composite
		}
		return out[i].Pos < out[j].Pos
	})
	return out, nil
}
