package main

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/pgzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// input is a file reader which may be decompressing.
type input struct {
	io.Reader
	closers []io.Closer
}

// Close closes the decompressor and the file.
func (in *input) Close() (err error) {
	for _, c := range in.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return
}

// openInput opens a file, gzipped files are decompressed on the fly.
func openInput(fn string) (io.ReadCloser, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	return newInput(f, f)
}

func newInput(rd io.Reader, c io.Closer) (io.ReadCloser, error) {
	brd := bufio.NewReader(rd)
	magic, _ := brd.Peek(len(gzipMagic))
	if !bytes.Equal(magic, gzipMagic) {
		return &input{Reader: brd, closers: []io.Closer{c}}, nil
	}

	log.Debug("Reading gzipped input")
	zrd, err := pgzip.NewReader(brd)
	if err != nil {
		c.Close()
		return nil, err
	}
	return &input{Reader: zrd, closers: []io.Closer{zrd, c}}, nil
}
