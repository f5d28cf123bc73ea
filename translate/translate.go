// Package translate translates nucleotide sequences into protein
// sequences.
//
// Translation starts at the first "ATG" found anywhere in the
// sequence (or at the beginning if there is none) and proceeds by
// non-overlapping codons until a stop codon or the end of the
// sequence. The start search is a plain substring search, so the
// reading frame is fixed by the position of ATG and not by the
// beginning of the sequence. Stop codons are not emitted, codons
// missing from the code table are skipped and an incomplete trailing
// codon is ignored.
package translate

import (
	"strings"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/dnaprot/bio"
)

// log is the global logging variable.
var log = logging.MustGetLogger("translate")

// StartCodon anchors the translation start.
const StartCodon = "ATG"

// State is the terminal state of a translation.
type State int

const (
	// Exhausted means the sequence ended without a stop codon.
	Exhausted State = iota
	// Stopped means a stop codon was reached.
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "exhausted"
}

// Result holds a translation with some details on how it was
// obtained.
type Result struct {
	Protein string
	// Offset is the position translation started from.
	Offset int
	// StartFound is true if Offset points to a start codon.
	StartFound bool
	State      State
	// Skipped is the number of codons absent from the code table.
	Skipped int
	// Decoder is the name of the decoder which produced the result.
	Decoder string
}

// Engine translates sequences using an ordered list of decoders. The
// first decoder which doesn't fail is used. Engine is safe for
// concurrent use.
type Engine struct {
	decoders []Decoder
}

// NewEngine initializes the loaders in order. Loaders returning an
// error are skipped. The embedded table decoder is always the last
// one.
func NewEngine(loaders ...Loader) *Engine {
	e := &Engine{decoders: make([]Decoder, 0, len(loaders)+1)}
	for i, load := range loaders {
		d, err := load()
		if err != nil {
			log.Warningf("Translation backend #%d is not available: %v", i+1, err)
			continue
		}
		log.Infof("Using translation backend %s", d.Name())
		e.decoders = append(e.decoders, d)
	}
	e.decoders = append(e.decoders, TableDecoder{})
	return e
}

// Decoders returns names of the decoders in the order they are tried.
func (e *Engine) Decoders() []string {
	names := make([]string, len(e.decoders))
	for i, d := range e.decoders {
		names[i] = d.Name()
	}
	return names
}

// Start returns the position translation starts from in a normalized
// sequence and whether it is a start codon.
func Start(seq string) (int, bool) {
	i := strings.Index(seq, StartCodon)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Translate translates the sequence into a protein. The sequence is
// expected to be validated, see bio.ValidateSequence.
func (e *Engine) Translate(seq string) string {
	return e.TranslateDetail(seq).Protein
}

// TranslateDetail is like Translate but also returns translation
// details.
func (e *Engine) TranslateDetail(seq string) Result {
	seq = bio.Normalize(seq)
	offset, found := Start(seq)

	for _, d := range e.decoders {
		res, err := decode(d, seq[offset:])
		if err != nil {
			log.Debugf("Decoder %s failed, falling back: %v", d.Name(), err)
			continue
		}
		res.Offset = offset
		res.StartFound = found
		return res
	}

	// only reachable for an Engine without the table decoder
	return Result{Offset: offset, StartFound: found}
}

// decode reads codons until a stop codon or the end of the coding
// sequence.
func decode(d Decoder, coding string) (res Result, err error) {
	var b strings.Builder
	b.Grow(len(coding) / 3)

	res.Decoder = d.Name()
	res.State = Exhausted
	for i := 0; i+3 <= len(coding); i += 3 {
		s, err := d.Decode(coding[i : i+3])
		if err != nil {
			return Result{}, err
		}
		if s == Stop {
			res.State = Stopped
			break
		}
		if s == Unmapped {
			res.Skipped++
			continue
		}
		b.WriteByte(byte(s))
	}
	res.Protein = b.String()
	return
}

// defaultEngine uses only the embedded table.
var defaultEngine = NewEngine()

// ValidateSequence reports whether the sequence is a non-empty
// sequence of A, T, C and G (any case, surrounding white space
// ignored).
func ValidateSequence(seq string) bool {
	return bio.ValidateSequence(seq)
}

// TranslateDNAToProtein translates a validated sequence using the
// embedded standard genetic code table.
func TranslateDNAToProtein(seq string) string {
	return defaultEngine.Translate(seq)
}
