package adsb

import (
	"sort"
	"sync"
)

// ParallelPreambleChunkSamples is the magnitude-stream size above which
// Decode splits the preamble scan across a bounded worker pool instead of
// scanning straight-line. Below this size the overhead of splitting and
// merging isn't worth it.
const ParallelPreambleChunkSamples = 2_000_000

// ParallelPreambleWorkers bounds how many chunk scans run concurrently.
const ParallelPreambleWorkers = 4

// DetectPreamblesParallel splits mags into chunkSize-sized, overlapping
// windows and scans them concurrently across up to workers goroutines,
// then merges the results back into ascending sample-index order. The
// overlap (CandidateSamples-1) ensures no candidate straddling a chunk
// boundary is missed; duplicate detections of the same global index,
// which can occur within the overlap region, are collapsed to one.
// Falls back to the straight-line scan when the input is too small to
// benefit from splitting.
func DetectPreamblesParallel(mags []float64, alpha float64, chunkSize, workers int) []Candidate {
	if len(mags) <= chunkSize || workers <= 1 {
		return DetectPreambles(mags, alpha)
	}

	overlap := CandidateSamples - 1

	type span struct{ start, end int }
	var chunks []span
	for start := 0; start < len(mags); start += chunkSize {
		end := start + chunkSize + overlap
		if end > len(mags) {
			end = len(mags)
		}
		chunks = append(chunks, span{start, end})
		if end == len(mags) {
			break
		}
	}

	results := make([][]Candidate, len(chunks))
	jobs := make(chan int)
	var wg sync.WaitGroup

	n := workers
	if n > len(chunks) {
		n = len(chunks)
	}

	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				c := chunks[i]
				local := DetectPreambles(mags[c.start:c.end], alpha)
				for j := range local {
					local[j].Index += c.start
				}
				results[i] = local
			}
		}()
	}
	for i := range chunks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	seen := make(map[int]bool)
	var merged []Candidate
	for _, chunkCands := range results {
		for _, c := range chunkCands {
			if seen[c.Index] {
				continue
			}
			seen[c.Index] = true
			merged = append(merged, c)
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Index < merged[j].Index })
	return merged
}
