package kakuro

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/jellos/pykakuro/internal/kakuro/combo"
)

// comboCacheFile is the on-disk encoding of the full (sum, k)
// combination table. It is keyed only by its fixed dimensions
// (1..45 x 1..9), making it a pure function of nothing but the table
// itself (spec.md §6, "Persisted state"): absence or corruption always
// triggers an in-memory rebuild, never a correctness difference.
//
// Grounded on the teacher's internal/puzzles/loader.go (a single
// top-level struct read whole from one file via a package-level
// sync.Once-guarded loader), swapping JSON for gob since this payload
// has no cross-language consumer.
type comboCacheFile struct {
	Entries map[[2]int][]combo.Tuple
}

// WarmComboCache forces the combination table to build and, if path is
// non-empty, writes it to disk. combo.Combinations/Union always serve
// from the in-memory table, which every process builds from scratch;
// nothing in this package reads the written table back into it.
func WarmComboCache(path string) error {
	entries := make(map[[2]int][]combo.Tuple)
	for sum := 1; sum <= 45; sum++ {
		for k := 1; k <= 9; k++ {
			if t := combo.Combinations(sum, k); t != nil {
				entries[[2]int{sum, k}] = t
			}
		}
	}
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating combo cache file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(comboCacheFile{Entries: entries}); err != nil {
		return fmt.Errorf("encoding combo cache file: %w", err)
	}
	return nil
}

// LoadComboCache reads a previously persisted table as a freshness
// check, returning whether a readable file existed at path. The decoded
// entries are discarded; the in-memory table is not populated from
// them. A missing file is not an error.
func LoadComboCache(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("opening combo cache file: %w", err)
	}
	defer f.Close()

	var file comboCacheFile
	if err := gob.NewDecoder(f).Decode(&file); err != nil {
		return false, fmt.Errorf("decoding combo cache file: %w", err)
	}
	return true, nil
}
