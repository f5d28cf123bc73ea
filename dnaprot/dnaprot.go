/*

Dnaprot translates nucleotide sequences into protein sequences using
the standard genetic code.

Translation starts from the first ATG found in the sequence (or from
the beginning if there is none) and stops at the first stop codon.

Translate a single sequence:

	dnaprot translate AAAATGAAACCC

Translate all records of a FASTA file (plain or gzipped), caching
results and writing a summary:

	dnaprot fasta -db cache.db -json summary.json genes.fst.gz

Use an NCBI genetic code file as the authoritative codon table:

	dnaprot -gcfile gc.prt translate ATGAAATAG

To see all the options run:

	dnaprot -h

*/
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"bitbucket.org/Davydov/dnaprot/bio"
	"bitbucket.org/Davydov/dnaprot/cache"
	"bitbucket.org/Davydov/dnaprot/composition"
	"bitbucket.org/Davydov/dnaprot/translate"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("dnaprot")
var formatter = logging.MustStringFormatter(`%{message}`)

// errColor is used for user facing errors.
var errColor = color.New(color.FgRed, color.Bold)

// command-line options
var (
	// application
	app = kingpin.New("dnaprot", "nucleotide to protein sequence translator").Version(version)

	// translation backend
	gcFileName = app.Flag("gcfile", "NCBI genetic code file (gc.prt) used as the authoritative codon table; "+
		"the embedded table is used if it can't be loaded").Envar("DNAPROT_GCFILE").String()
	gcodeID = app.Flag("gcode", "NCBI genetic code id in the gc.prt file, "+
		"has to translate as the standard code").Envar("DNAPROT_GCODE").Default("1").Int()

	// technical
	nThreads = app.Flag("nt", "number of threads to use").Int()
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")

	// translate
	translateCmd = app.Command("translate", "validate and translate a sequence")
	translateSeq = translateCmd.Arg("sequence", "nucleotide sequence (A, T, C, G)").Required().String()

	// validate
	validateCmd = app.Command("validate", "validate a sequence")
	validateSeq = validateCmd.Arg("sequence", "nucleotide sequence (A, T, C, G)").Required().String()

	// fasta
	fastaCmd      = app.Command("fasta", "translate all sequences from a FASTA file")
	fastaFileName = fastaCmd.Arg("fasta", "FASTA file, can be gzipped").Required().ExistingFile()
	outF          = fastaCmd.Flag("out", "write protein sequences to a file").String()
	dbF           = fastaCmd.Flag("db", "translation cache database").Envar("DNAPROT_DB").String()
	jsonF         = fastaCmd.Flag("json", "write json output to a file").String()
	plotF         = fastaCmd.Flag("plot", "plot amino acid composition to a file (png, svg, pdf)").String()

	// shell
	shellCmd = app.Command("shell", "translate sequences from standard input, one per line")

	// codes
	codesCmd      = app.Command("codes", "list genetic codes from an NCBI gc.prt file")
	codesFileName = codesCmd.Arg("gcfile", "NCBI genetic code file").Required().ExistingFile()
)

// newEngine creates the translation engine with the configured
// backends.
func newEngine() *translate.Engine {
	var loaders []translate.Loader
	if *gcFileName != "" {
		loaders = append(loaders, translate.LoadNCBI(*gcFileName, *gcodeID))
	}
	e := translate.NewEngine(loaders...)
	log.Infof("Decoders: %s", strings.Join(e.Decoders(), ", "))
	return e
}

// translateOne validates and translates a single sequence.
func translateOne(e *translate.Engine, seq string, out, errOut io.Writer) bool {
	if err := bio.CheckSequence(seq); err != nil {
		errColor.Fprintln(errOut, "Error:", err)
		return false
	}
	fmt.Fprintln(out, e.Translate(seq))
	return true
}

// validateOne prints the validation result.
func validateOne(seq string, out io.Writer) bool {
	if err := bio.CheckSequence(seq); err != nil {
		fmt.Fprintln(out, "invalid:", err)
		return false
	}
	fmt.Fprintln(out, "valid")
	return true
}

// runShell translates sequences line by line. It returns the number
// of invalid lines.
func runShell(e *translate.Engine, in io.Reader, out, errOut io.Writer) (invalid int, err error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !translateOne(e, line, out, errOut) {
			invalid++
		}
	}
	return invalid, scanner.Err()
}

// listCodes prints genetic codes found in a gc.prt file, marking
// those usable as a translation backend.
func listCodes(rd io.Reader, out io.Writer) error {
	codes, err := bio.ParseGeneticCodes(rd)
	if err != nil {
		return err
	}
	for _, gc := range codes {
		usable := "no"
		if gc.Agrees(bio.StandardCode) == nil {
			usable = "yes"
		}
		fmt.Fprintf(out, "%d\t%s\t%s\n", gc.ID, usable, gc.Name)
	}
	return nil
}

// runFasta translates a FASTA file.
func runFasta(e *translate.Engine) (summary *BatchSummary) {
	startTime := time.Now()

	f, err := openInput(*fastaFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	seqs, err := bio.ParseFasta(f)
	if err != nil {
		log.Fatal("Error reading FASTA file:", err)
	}
	log.Infof("Read %d sequences", len(seqs))

	c := cache.New(nil)
	if *dbF != "" {
		c, err = cache.Open(*dbF)
		if err != nil {
			log.Fatal("Error opening cache database:", err)
		}
		defer c.Close()
	}

	summary = &BatchSummary{Input: *fastaFileName}
	summary.Records = translateRecords(e, c, seqs, *nThreads)

	proteins := make(bio.Sequences, 0, len(seqs))
	translated := make([]string, 0, len(seqs))
	for _, r := range summary.Records {
		switch {
		case r.Error != "":
			summary.Invalid++
			continue
		case r.Cached:
			summary.Cached++
		}
		proteins = append(proteins, bio.Sequence{Name: r.Name, Sequence: r.Protein})
		translated = append(translated, r.Protein)
	}
	if summary.Invalid > 0 {
		log.Warningf("%d invalid sequences skipped", summary.Invalid)
	}
	log.Infof("Translated %d sequences, %d from cache", len(proteins), summary.Cached)

	out := os.Stdout
	if *outF != "" {
		out, err = os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating output file:", err)
		}
		defer out.Close()
	}
	if len(proteins) > 0 {
		fmt.Fprintln(out, proteins)
	}

	summary.Composition = composition.Summarize(translated)
	log.Info(summary.Composition)

	if *plotF != "" {
		if err := composition.Plot(summary.Composition, *plotF); err != nil {
			log.Error("Error plotting composition:", err)
		}
	}

	summary.Time = time.Since(startTime).Seconds()
	log.Noticef("Running time: %v", time.Since(startTime))
	return
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "dnaprot")
	logging.SetLevel(level, "translate")
	logging.SetLevel(level, "cache")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *nThreads > 0 {
		runtime.GOMAXPROCS(*nThreads)
	}

	e := newEngine()

	switch cmd {
	case translateCmd.FullCommand():
		if !translateOne(e, *translateSeq, os.Stdout, os.Stderr) {
			os.Exit(1)
		}
	case validateCmd.FullCommand():
		if !validateOne(*validateSeq, os.Stdout) {
			os.Exit(1)
		}
	case shellCmd.FullCommand():
		invalid, err := runShell(e, os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
		if invalid > 0 {
			os.Exit(1)
		}
	case codesCmd.FullCommand():
		f, err := os.Open(*codesFileName)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := listCodes(f, os.Stdout); err != nil {
			log.Fatal("Error reading genetic codes:", err)
		}
	case fastaCmd.FullCommand():
		summary := runFasta(e)
		summary.Version = version
		summary.CommandLine = os.Args
		summary.NThreads = runtime.GOMAXPROCS(0)
		summary.Decoders = e.Decoders()

		// output summary in json format
		if *jsonF != "" {
			j, err := json.Marshal(summary)
			if err != nil {
				log.Error(err)
			} else {
				log.Debug(string(j))
				f, err := os.Create(*jsonF)
				if err != nil {
					log.Error("Error creating json output file:", err)
				} else {
					f.Write(j)
					f.Close()
				}
			}
		}
	}
}
