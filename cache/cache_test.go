package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
)

func init() {
	logging.SetLevel(logging.ERROR, "cache")
}

func openTemp(tst *testing.T) (*Cache, func()) {
	dir, err := os.MkdirTemp("", "dnaprot-cache")
	if err != nil {
		tst.Fatal("Error creating temporary directory", err)
	}
	c, err := Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		os.RemoveAll(dir)
		tst.Fatal("Error opening database", err)
	}
	return c, func() {
		c.Close()
		os.RemoveAll(dir)
	}
}

func TestPutGet(tst *testing.T) {
	c, cleanup := openTemp(tst)
	defer cleanup()

	e, err := c.Get("ATGAAACCC")
	if err != nil || e != nil {
		tst.Fatal("expected empty cache, got", e, err)
	}

	err = c.Put("ATGAAACCC", &Entry{Protein: "MKP", Decoder: "table", Stopped: false})
	if err != nil {
		tst.Fatal("Error saving", err)
	}

	// the key doesn't depend on case or white space
	e, err = c.Get(" atgaaaccc\n")
	if err != nil {
		tst.Fatal("Error loading", err)
	}
	if e == nil || e.Protein != "MKP" || e.Decoder != "table" {
		tst.Fatal("wrong entry:", e)
	}
	if e.Time.IsZero() {
		tst.Error("time is not set")
	}

	e, err = c.Get("ATGAAACCA")
	if err != nil || e != nil {
		tst.Error("unexpected entry", e, err)
	}
}

func TestReopen(tst *testing.T) {
	dir, err := os.MkdirTemp("", "dnaprot-cache")
	if err != nil {
		tst.Fatal(err)
	}
	defer os.RemoveAll(dir)
	fn := filepath.Join(dir, "cache.db")

	c, err := Open(fn)
	if err != nil {
		tst.Fatal(err)
	}
	if err := c.Put("TTTGGGCC", &Entry{Protein: "FG", Decoder: "ncbi:1"}); err != nil {
		tst.Fatal(err)
	}
	c.Close()

	c, err = Open(fn)
	if err != nil {
		tst.Fatal(err)
	}
	defer c.Close()
	e, err := c.Get("TTTGGGCC")
	if err != nil || e == nil || e.Protein != "FG" || e.Decoder != "ncbi:1" {
		tst.Error("entry is lost after reopening:", e, err)
	}
}

func TestNilDatabase(tst *testing.T) {
	c := New(nil)
	if err := c.Put("ATG", &Entry{Protein: "M"}); err != nil {
		tst.Error("unexpected error", err)
	}
	e, err := c.Get("ATG")
	if err != nil || e != nil {
		tst.Error("expected nothing, got", e, err)
	}
	if err := c.Close(); err != nil {
		tst.Error(err)
	}
}
