// Package bio provides functions related to the genetic code and
// nucleotide sequences.
package bio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// StopSymbol marks stop codons in genetic code tables.
const StopSymbol = '*'

var (
	// StandardCode is a map, codon string (capital letters) is the key,
	// amino acids (capital letter) are values. Stop codons map to
	// StopSymbol.
	StandardCode = map[string]byte{
		"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
		"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
		"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
		"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
		"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
		"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
		"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
		"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
		"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
		"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
		"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
		"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
		"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
		"TAC": 'Y', "TAT": 'Y', "TAA": '*', "TAG": '*',
		"TGC": 'C', "TGT": 'C', "TGA": '*', "TGG": 'W'}

	// ErrInvalidSequence is returned when a sequence is empty or
	// contains letters other than A, T, C and G.
	ErrInvalidSequence = errors.New("invalid sequence")
)

// IsStopCodon tests if the string is a stop-codon (DNA alphabet,
// capital letters).
func IsStopCodon(codon string) bool {
	return StandardCode[codon] == StopSymbol
}

// Normalize removes surrounding white space and converts the
// sequence to upper case.
func Normalize(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}

func isNucleotide(c byte) bool {
	switch c {
	case 'A', 'T', 'C', 'G', 'a', 't', 'c', 'g':
		return true
	}
	return false
}

// CheckSequence returns nil if the sequence, after trimming
// surrounding white space, is non-empty and consists of A, T, C and
// G only (any case). Otherwise the error wraps ErrInvalidSequence.
func CheckSequence(seq string) error {
	seq = strings.TrimSpace(seq)
	if seq == "" {
		return fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	for i := 0; i < len(seq); i++ {
		if !isNucleotide(seq[i]) {
			return fmt.Errorf("%w: unexpected character %q at position %d",
				ErrInvalidSequence, seq[i], i+1)
		}
	}
	return nil
}

// ValidateSequence reports whether the sequence passes CheckSequence.
func ValidateSequence(seq string) bool {
	return CheckSequence(seq) == nil
}

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	// genome-sized lines are not unusual
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: strings.TrimSpace(line[1:])}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) string {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() string {
	return ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() string {
	var b strings.Builder
	for _, seq := range seqs {
		b.WriteString(seq.String())
	}
	return strings.TrimSuffix(b.String(), "\n")
}
