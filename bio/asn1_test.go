package bio

import (
	"bytes"
	"os"
	"testing"
)

func readCodes(tst *testing.T, fn string) ([]*GeneticCode, error) {
	f, err := os.Open(fn)
	if err != nil {
		tst.Fatal("Error opening file", err)
	}
	defer f.Close()
	return ParseGeneticCodes(f)
}

func TestParseGeneticCodes(tst *testing.T) {
	codes, err := readCodes(tst, "testdata/gc.prt")
	if err != nil {
		tst.Fatal("Error parsing genetic codes", err)
	}
	if len(codes) != 4 {
		tst.Fatal("expected 4 genetic codes, got", len(codes))
	}

	gc, ok := FindGeneticCode(codes, 1)
	if !ok {
		tst.Fatal("standard code not found")
	}
	if gc.Name != "Standard" || gc.ShortName != "SGC0" {
		tst.Error("wrong names:", gc)
	}
	if err := gc.Agrees(StandardCode); err != nil {
		tst.Error("standard code doesn't match the table:", err)
	}

	mold, _ := FindGeneticCode(codes, 4)
	if mold.Name != "Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma" {
		tst.Error("multi-line name is not joined:", mold.Name)
	}

	bact, _ := FindGeneticCode(codes, 11)
	if bact.Name != "Bacterial, Archaeal and Plant Plastid" || bact.ShortName != "" {
		tst.Error("wrong names:", bact)
	}
	if err := bact.Agrees(StandardCode); err != nil {
		tst.Error("bacterial code should translate as the standard one:", err)
	}

	mito, _ := FindGeneticCode(codes, 2)
	if mito.Map["TGA"] != 'W' || mito.Map["AGA"] != StopSymbol {
		tst.Error("wrong vertebrate mitochondrial code")
	}
	if err := mito.Agrees(StandardCode); err == nil {
		tst.Error("vertebrate mitochondrial code can't agree with the standard one")
	}

	if _, ok := FindGeneticCode(codes, 99); ok {
		tst.Error("unexpected genetic code 99")
	}
}

func TestParseGeneticCodesShort(tst *testing.T) {
	_, err := readCodes(tst, "testdata/short.prt")
	if err == nil {
		tst.Error("expected error for a short ncbieaa string")
	}
}

func TestParseGeneticCodesBroken(tst *testing.T) {
	for _, s := range []string{
		"",
		"Genetic-code-table ::= {",
		"Genetic-code-table := {}",
		"Something ::= { }",
		"Genetic-code-table ::= { } }",
		"Genetic-code-table ::= { { name Standard } }",
	} {
		if _, err := ParseGeneticCodes(bytes.NewBufferString(s)); err == nil {
			tst.Errorf("expected error parsing %q", s)
		}
	}
}

func TestStandardGeneticCode(tst *testing.T) {
	if err := Standard.Agrees(StandardCode); err != nil {
		tst.Error(err)
	}
	if NCBICodon(0) != "TTT" || NCBICodon(14) != "TGA" || NCBICodon(63) != "GGG" {
		tst.Error("wrong NCBI codon order")
	}
}
