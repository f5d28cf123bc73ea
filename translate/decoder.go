package translate

import (
	"fmt"
	"os"

	"bitbucket.org/Davydov/dnaprot/bio"
)

// Symbol is a result of decoding a single codon: an amino acid letter,
// Stop or Unmapped.
type Symbol byte

const (
	// Unmapped is returned for codons absent from a code table.
	Unmapped Symbol = 0
	// Stop is returned for stop codons.
	Stop Symbol = bio.StopSymbol
)

// Decoder decodes codons into symbols. An error means the decoder
// itself failed, not that the codon is unknown.
type Decoder interface {
	Name() string
	Decode(codon string) (Symbol, error)
}

// Loader initializes a decoder. A loader returning an error is
// treated as an unavailable strategy.
type Loader func() (Decoder, error)

// TableDecoder decodes codons using the embedded standard genetic
// code table.
type TableDecoder struct{}

// Name returns decoder name.
func (TableDecoder) Name() string {
	return "table"
}

// Decode never fails.
func (TableDecoder) Decode(codon string) (Symbol, error) {
	aa, ok := bio.StandardCode[codon]
	if !ok {
		return Unmapped, nil
	}
	return Symbol(aa), nil
}

// NCBIDecoder decodes codons with an NCBI genetic code.
type NCBIDecoder struct {
	gc *bio.GeneticCode
}

// NewNCBIDecoder creates a decoder using the genetic code. The code
// has to agree with the embedded standard table.
func NewNCBIDecoder(gc *bio.GeneticCode) (*NCBIDecoder, error) {
	if err := gc.Agrees(bio.StandardCode); err != nil {
		return nil, err
	}
	return &NCBIDecoder{gc: gc}, nil
}

// Name returns decoder name.
func (d *NCBIDecoder) Name() string {
	return fmt.Sprintf("ncbi:%d", d.gc.ID)
}

// Decode returns an error if the genetic code contains anything but
// amino acid letters and stops.
func (d *NCBIDecoder) Decode(codon string) (Symbol, error) {
	aa, ok := d.gc.Map[codon]
	if !ok {
		return Unmapped, nil
	}
	if aa == bio.StopSymbol || (aa >= 'A' && aa <= 'Z') {
		return Symbol(aa), nil
	}
	return Unmapped, fmt.Errorf("genetic code %d: bad symbol %q for codon %s", d.gc.ID, aa, codon)
}

// LoadNCBI returns a loader reading genetic code id from an NCBI
// gc.prt file.
func LoadNCBI(fn string, id int) Loader {
	return func() (Decoder, error) {
		f, err := os.Open(fn)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		codes, err := bio.ParseGeneticCodes(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", fn, err)
		}
		gc, ok := bio.FindGeneticCode(codes, id)
		if !ok {
			return nil, fmt.Errorf("%s: no genetic code with id=%d", fn, id)
		}
		log.Infof("Genetic code: %d, \"%s\"", gc.ID, gc.Name)
		return NewNCBIDecoder(gc)
	}
}
