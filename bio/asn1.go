package bio

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// asn1Mode is a state of the genetic code file parser.
type asn1Mode int

const (
	// Default parsing mode.
	asn1Normal asn1Mode = iota
	asn1Table
	asn1Assign
	asn1List
	asn1Element
	asn1ElementPar
	asn1ElementPreComma
	asn1PreComma
	asn1End
)

// ncbiCode holds values of a single gc.prt element while parsing.
type ncbiCode struct {
	name      string
	shortName string
	id        int
	ncbieaa   string
	sncbieaa  string
}

func unquote(s string) (string, error) {
	if (!strings.HasPrefix(s, "\"")) || (!strings.HasSuffix(s, "\"")) {
		return "", errors.New("string is not quoted")
	}
	return strings.Trim(s, "\""), nil
}

func aNumMinus(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// asn1Split is a bufio.SplitFunc splitting ASN.1 value notation into
// tokens. Comments are returned as tokens starting with "--".
func asn1Split(data []byte, atEOF bool) (int, []byte, error) {
	i := 0

	for ; i < len(data); i++ {
		if !unicode.IsSpace(rune(data[i])) {
			break
		}
	}
	data = data[i:]
	advance := i

	if len(data) == 0 {
		return advance, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] == '-' {
			a, t, e := bufio.ScanLines(data, atEOF)
			return a + advance, t, e
		}
		return 0, nil, errors.New("unexpected character after '-'")
	case ':':
		if len(data) < 3 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] == ':' && data[2] == '=' {
			return advance + 3, data[:3], nil
		}
		return 0, nil, errors.New("unexpected character after ':'")
	case '"':
		for i := 1; i < len(data); i++ {
			if data[i] == '"' {
				return advance + i + 1, data[:i+1], nil
			}
		}
		if !atEOF {
			return advance, nil, nil
		}
		return 0, nil, errors.New("unfinished string literal")
	case '{', '}', ',':
		return advance + 1, data[:1], nil
	}
	if aNumMinus(data[0]) {
		i := 1
		for ; i < len(data); i++ {
			if !aNumMinus(data[i]) {
				break
			}
		}
		if i == len(data) {
			if atEOF {
				return advance + i, data, nil
			}
			return advance, nil, nil
		}
		return advance + i, data[:i], nil
	}
	return 0, nil, errors.New("unknown token")
}

// ParseGeneticCodes parses genetic codes from an NCBI gc.prt file
// (ASN.1 value notation).
func ParseGeneticCodes(rd io.Reader) (res []*GeneticCode, err error) {
	scanner := bufio.NewScanner(rd)

	scanner.Split(asn1Split)

	mode := asn1Normal

	var nc ncbiCode
	var parName string

	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "--") {
			continue
		}

		switch mode {
		case asn1Normal:
			if text != "Genetic-code-table" {
				return nil, errors.New("expecting 'Genetic-code-table'")
			}
			mode = asn1Table
		case asn1Table:
			if text != "::=" {
				return nil, errors.New("expecting '::='")
			}
			mode = asn1Assign
		case asn1Assign:
			if text != "{" {
				return nil, errors.New("expecting '{'")
			}
			mode = asn1List
		case asn1List:
			switch text {
			case "{":
				nc = ncbiCode{}
				mode = asn1Element
			case "}":
				mode = asn1End
			default:
				return nil, errors.New("expecting '{' or '}'")
			}
		case asn1Element:
			parName = text
			mode = asn1ElementPar
		case asn1ElementPar:
			switch parName {
			case "name":
				uq, err := unquote(text)
				if err != nil {
					return nil, err
				}
				uq = strings.Join(strings.Fields(uq), " ")
				if nc.name == "" {
					nc.name = uq
				} else {
					nc.shortName = uq
				}
			case "id":
				id, err := strconv.Atoi(text)
				if err != nil {
					return nil, err
				}
				nc.id = id
			case "ncbieaa":
				code, err := unquote(text)
				if err != nil {
					return nil, err
				}
				nc.ncbieaa = code
			case "sncbieaa":
				code, err := unquote(text)
				if err != nil {
					return nil, err
				}
				nc.sncbieaa = code
			}
			mode = asn1ElementPreComma
		case asn1ElementPreComma:
			switch text {
			case ",":
				mode = asn1Element
			case "}":
				gc, err := NewGeneticCode(nc.id, nc.name, nc.shortName, nc.ncbieaa, nc.sncbieaa)
				if err != nil {
					return nil, err
				}
				res = append(res, gc)
				mode = asn1PreComma
			default:
				return nil, errors.New("expecting ',' or '}'")
			}
		case asn1PreComma:
			switch text {
			case ",":
				mode = asn1List
			case "}":
				mode = asn1End
			default:
				return nil, errors.New("expecting ',' or '}'")
			}
		case asn1End:
			return nil, errors.New("unexpected symbols at the end of file")
		}
	}

	err = scanner.Err()
	if err != nil {
		return nil, err
	}

	if mode != asn1End {
		return nil, errors.New("unexpected end of stream")
	}

	return
}

// FindGeneticCode returns the genetic code with the given id.
func FindGeneticCode(codes []*GeneticCode, id int) (*GeneticCode, bool) {
	for _, gc := range codes {
		if gc.ID == id {
			return gc, true
		}
	}
	return nil, false
}
