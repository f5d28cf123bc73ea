package main

import (
	"runtime"
	"sync"

	"bitbucket.org/Davydov/dnaprot/bio"
	"bitbucket.org/Davydov/dnaprot/cache"
	"bitbucket.org/Davydov/dnaprot/translate"
)

// translateRecords validates and translates sequences using nThreads
// workers (all available processors if nThreads <= 0). Records keep
// the order of the sequences.
func translateRecords(e *translate.Engine, c *cache.Cache, seqs bio.Sequences, nThreads int) []Record {
	if nThreads <= 0 {
		nThreads = runtime.GOMAXPROCS(0)
	}

	records := make([]Record, len(seqs))
	tasks := make(chan int, len(seqs))
	var wg sync.WaitGroup

	for i := 0; i < nThreads; i++ {
		wg.Add(1)
		go func() {
			for i := range tasks {
				records[i] = translateRecord(e, c, seqs[i])
			}
			wg.Done()
		}()
	}

	for i := range seqs {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return records
}

// translateRecord translates a single sequence, using the cache if
// possible.
func translateRecord(e *translate.Engine, c *cache.Cache, seq bio.Sequence) (r Record) {
	r.Name = seq.Name

	if err := bio.CheckSequence(seq.Sequence); err != nil {
		log.Warningf("Skipping %s: %v", seq.Name, err)
		r.Error = err.Error()
		return
	}

	entry, err := c.Get(seq.Sequence)
	if err != nil {
		log.Error("Error reading cache:", err)
	}
	if entry != nil {
		r.Protein = entry.Protein
		r.Decoder = entry.Decoder
		r.Offset = entry.Offset
		r.Stopped = entry.Stopped
		r.Cached = true
		return
	}

	res := e.TranslateDetail(seq.Sequence)
	if res.Skipped > 0 {
		log.Debugf("%s: %d unmapped codons skipped", seq.Name, res.Skipped)
	}
	r.Protein = res.Protein
	r.Decoder = res.Decoder
	r.Offset = res.Offset
	r.Stopped = res.State == translate.Stopped

	// Put logs errors itself
	c.Put(seq.Sequence, &cache.Entry{
		Protein: r.Protein,
		Decoder: r.Decoder,
		Offset:  r.Offset,
		Stopped: r.Stopped,
	})
	return
}
