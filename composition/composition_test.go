package composition

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const smallDiff = 1e-9

func TestCount(tst *testing.T) {
	c := Count("MKPMX")
	if c.Counts[10] != 2 { // M
		tst.Error("expected 2 M, got", c.Counts[10])
	}
	if c.Other != 1 {
		tst.Error("expected 1 other letter, got", c.Other)
	}
	if c.Total() != 5 {
		tst.Error("expected total 5, got", c.Total())
	}
	f := c.Fractions()
	if math.Abs(f["M"]-0.4) > smallDiff || math.Abs(f["K"]-0.2) > smallDiff || f["W"] != 0 {
		tst.Error("wrong fractions:", f)
	}
	if len(f) != 20 {
		tst.Error("expected 20 fractions, got", len(f))
	}
}

func TestSummarize(tst *testing.T) {
	s := Summarize([]string{"MK", "MKPW", ""})
	if s.N != 3 || s.Empty != 1 {
		tst.Error("wrong counts:", s)
	}
	if math.Abs(s.MeanLength-2) > smallDiff {
		tst.Error("expected mean 2, got", s.MeanLength)
	}
	// unbiased sd of 2, 4, 0
	if math.Abs(s.SDLength-2) > smallDiff {
		tst.Error("expected sd 2, got", s.SDLength)
	}
	if math.Abs(s.Fractions["M"]-1./3) > smallDiff {
		tst.Error("wrong M fraction:", s.Fractions["M"])
	}
}

func TestSummarizeSmall(tst *testing.T) {
	s := Summarize(nil)
	if s.N != 0 || s.MeanLength != 0 || s.SDLength != 0 {
		tst.Error("wrong empty summary:", s)
	}
	s = Summarize([]string{"MKP"})
	if s.MeanLength != 3 || s.SDLength != 0 {
		tst.Error("wrong single summary:", s)
	}
}

func TestPlot(tst *testing.T) {
	dir, err := os.MkdirTemp("", "dnaprot-plot")
	if err != nil {
		tst.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "composition.svg")
	if err := Plot(Summarize([]string{"MKPW", "MAAG"}), fn); err != nil {
		tst.Fatal("Error plotting", err)
	}
	if st, err := os.Stat(fn); err != nil || st.Size() == 0 {
		tst.Error("plot is not written", err)
	}

	if err := Plot(Summarize([]string{""}), fn); err == nil {
		tst.Error("expected error plotting empty composition")
	}
}
