package main

import "bitbucket.org/Davydov/dnaprot/composition"

// BatchSummary is storing summary information of a FASTA file
// translation.
type BatchSummary struct {
	// Version stores dnaprot version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// Decoders are the translation decoders in the order they are tried.
	Decoders []string `json:"decoders"`
	// Input is the FASTA file name.
	Input string `json:"input"`
	// Invalid is the number of sequences which didn't pass validation.
	Invalid int `json:"invalid"`
	// Cached is the number of translations found in the cache.
	Cached int `json:"cached"`
	// Records stores per sequence results.
	Records []Record `json:"records"`
	// Composition is the summary of the translated proteins.
	Composition composition.Summary `json:"composition"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// Record is the translation result of a single sequence.
type Record struct {
	Name    string `json:"name"`
	Protein string `json:"protein"`
	// Error is set for sequences which didn't pass validation.
	Error   string `json:"error,omitempty"`
	Decoder string `json:"decoder,omitempty"`
	Offset  int    `json:"offset"`
	Stopped bool   `json:"stopped"`
	Cached  bool   `json:"cached,omitempty"`
}
