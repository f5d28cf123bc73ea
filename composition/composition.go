// Package composition computes amino acid composition of protein
// sequences and plots it.
package composition

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// AminoAcids are the canonical amino acids in alphabetical order.
const AminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// Composition stores amino acid counts, indexed as AminoAcids.
type Composition struct {
	Counts [len(AminoAcids)]int
	// Other counts letters which are not canonical amino acids.
	Other int
}

// Count computes composition of a protein sequence.
func Count(protein string) (c Composition) {
	c.Add(protein)
	return
}

// Add adds letters of a protein sequence to the composition.
func (c *Composition) Add(protein string) {
	for i := 0; i < len(protein); i++ {
		j := strings.IndexByte(AminoAcids, protein[i])
		if j < 0 {
			c.Other++
			continue
		}
		c.Counts[j]++
	}
}

// Total returns the number of counted letters.
func (c Composition) Total() (n int) {
	for _, v := range c.Counts {
		n += v
	}
	return n + c.Other
}

// Fractions returns relative frequencies of canonical amino acids.
func (c Composition) Fractions() map[string]float64 {
	res := make(map[string]float64, len(AminoAcids))
	n := c.Total()
	for i, v := range c.Counts {
		f := 0.0
		if n > 0 {
			f = float64(v) / float64(n)
		}
		res[AminoAcids[i:i+1]] = f
	}
	return res
}

// Summary is storing summary information on a set of proteins.
type Summary struct {
	// N is the number of proteins.
	N int `json:"n"`
	// Empty is the number of zero length proteins.
	Empty int `json:"empty"`
	// MeanLength is the mean protein length.
	MeanLength float64 `json:"meanLength"`
	// SDLength is the standard deviation of protein length.
	SDLength float64 `json:"sdLength"`
	// Composition is the pooled amino acid composition.
	Composition Composition `json:"-"`
	// Fractions are the pooled amino acid frequencies.
	Fractions map[string]float64 `json:"fractions"`
}

// Summarize computes summary statistics of the proteins.
func Summarize(proteins []string) (s Summary) {
	s.N = len(proteins)
	lengths := make([]float64, len(proteins))
	for i, p := range proteins {
		lengths[i] = float64(len(p))
		if len(p) == 0 {
			s.Empty++
		}
		s.Composition.Add(p)
	}
	switch {
	case s.N == 1:
		s.MeanLength = lengths[0]
	case s.N > 1:
		s.MeanLength, s.SDLength = stat.MeanStdDev(lengths, nil)
	}
	s.Fractions = s.Composition.Fractions()
	return
}

func (s Summary) String() string {
	return fmt.Sprintf("<Summary: n=%d, empty=%d, length=%.2f±%.2f>", s.N, s.Empty, s.MeanLength, s.SDLength)
}

// Plot saves a bar chart of the pooled amino acid composition. File
// format is determined by the extension (png, svg, pdf, ...).
func Plot(s Summary, fn string) error {
	if s.Composition.Total() == 0 {
		return errors.New("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "Amino acid composition"
	p.X.Label.Text = "Amino acid"
	p.Y.Label.Text = "Fraction"

	values := make(plotter.Values, len(AminoAcids))
	names := make([]string, len(AminoAcids))
	for i := range values {
		names[i] = AminoAcids[i : i+1]
		values[i] = s.Fractions[names[i]]
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(bars)
	p.NominalX(names...)

	return p.Save(8*vg.Inch, 4*vg.Inch, fn)
}
