package bio

import (
	"fmt"
)

// ncbiBases is the base order used by NCBI genetic code strings.
const ncbiBases = "TCAG"

// GeneticCode is a genetic code in the NCBI representation.
//
// More information is available here:
// - https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
// - ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	// Ncbieaa holds 64 amino acids, codons ordered TTT, TTC, TTA,
	// TTG, TCT, ... GGG.
	Ncbieaa string
	// Sncbieaa marks start codons with 'M'.
	Sncbieaa string
	// Map is codon to amino acid mapping built from Ncbieaa.
	Map map[string]byte
}

// Standard is the standard genetic code (NCBI id 1).
var Standard = MustGeneticCode(1,
	"Standard",
	"SGC0",
	"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	"---M------**--*----M---------------M----------------------------")

// NCBICodon returns codon number i (0..63) in the NCBI order.
func NCBICodon(i int) string {
	return string([]byte{
		ncbiBases[i/16],
		ncbiBases[(i/4)%4],
		ncbiBases[i%4],
	})
}

// NewGeneticCode creates a genetic code from NCBI strings.
func NewGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) (*GeneticCode, error) {
	if len(ncbieaa) != 64 {
		return nil, fmt.Errorf("genetic code %d: ncbieaa has %d symbols, expected 64", id, len(ncbieaa))
	}
	if sncbieaa != "" && len(sncbieaa) != 64 {
		return nil, fmt.Errorf("genetic code %d: sncbieaa has %d symbols, expected 64", id, len(sncbieaa))
	}
	gc := &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		Ncbieaa:   ncbieaa,
		Sncbieaa:  sncbieaa,
		Map:       make(map[string]byte, 64),
	}
	for i := 0; i < 64; i++ {
		gc.Map[NCBICodon(i)] = ncbieaa[i]
	}
	return gc, nil
}

// MustGeneticCode is like NewGeneticCode but panics on error.
func MustGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	gc, err := NewGeneticCode(id, name, shortName, ncbieaa, sncbieaa)
	if err != nil {
		panic(err)
	}
	return gc
}

// Agrees returns nil if the genetic code maps every codon exactly as
// the code table given.
func (gc *GeneticCode) Agrees(table map[string]byte) error {
	if len(table) != len(gc.Map) {
		return fmt.Errorf("genetic code %d: %d codons, reference has %d", gc.ID, len(gc.Map), len(table))
	}
	for codon, aa := range table {
		if gc.Map[codon] != aa {
			return fmt.Errorf("genetic code %d: codon %s is %q, reference has %q",
				gc.ID, codon, gc.Map[codon], aa)
		}
	}
	return nil
}

func (gc GeneticCode) String() string {
	return fmt.Sprintf("<GC: Name=\"%s\", ShortName=\"%s\", Id=%d, A=\"%s\", S=\"%s\">",
		gc.Name, gc.ShortName, gc.ID, gc.Ncbieaa, gc.Sncbieaa)
}
