package sorter

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"file-sorter/core/record"

	"github.com/stretchr/testify/require"
)

// testConfig returns a small configuration rooted in a fresh temp dir.
func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.WorkDir = t.TempDir()
	cfg.ShardSizeBytes = 256
	cfg.ReadChunkBytes = 32
	cfg.SortWorkers = 3
	cfg.MergeFanIn = 3
	cfg.MergeWorkers = 2
	cfg.QueueBatch = 4
	cfg.FlushBytes = 64
	return cfg
}

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

var words = []string{"apple", "banana", "cherry", "date", "elder", "fig", "grape", "Apple", "apple pie", ""}

// randomLines returns n canonical lines with many duplicate texts and numbers.
func randomLines(seed int64, n int) []string {
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d. %s", rng.Intn(50)-10, words[rng.Intn(len(words))])
	}
	return lines
}

// sortedCanonical sorts lines by the record order.
func sortedCanonical(t *testing.T, lines []string) []string {
	t.Helper()
	recs := make([]record.Record, 0, len(lines))
	for _, l := range lines {
		r, err := record.Parse(l)
		require.NoError(t, err)
		recs = append(recs, r)
	}
	slices.SortFunc(recs, record.Compare)
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = strings.TrimSpace(r.String())
	}
	return out
}
