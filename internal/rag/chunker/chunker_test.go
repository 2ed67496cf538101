package chunker

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func numberedWords(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "t" + strconv.Itoa(i)
	}
	return strings.Join(parts, " ")
}

func TestSplit_WindowBoundaries(t *testing.T) {
	// 1200 words, size 500, overlap 50 -> windows [0:500], [450:950], [900:1200]
	chunks, err := Split(numberedWords(1200), 500, 50)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}

	checks := []struct {
		chunk int
		first string
		last  string
		count int
	}{
		{0, "t0", "t499", 500},
		{1, "t450", "t949", 500},
		{2, "t900", "t1199", 300},
	}
	for _, c := range checks {
		got := strings.Fields(chunks[c.chunk])
		if len(got) != c.count {
			t.Errorf("chunk %d: got %d words, want %d", c.chunk, len(got), c.count)
		}
		if got[0] != c.first || got[len(got)-1] != c.last {
			t.Errorf("chunk %d: spans %s..%s, want %s..%s", c.chunk, got[0], got[len(got)-1], c.first, c.last)
		}
	}
}

func TestSplit_OverlapInvariant(t *testing.T) {
	chunks, err := Split(numberedWords(37), 10, 3)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	// Each window starts exactly size-overlap tokens after the previous one.
	for i := 1; i < len(chunks); i++ {
		prev := strings.Fields(chunks[i-1])
		curr := strings.Fields(chunks[i])
		if curr[0] != prev[7] {
			t.Errorf("window %d starts at %s, want %s", i, curr[0], prev[7])
		}
	}
}

func TestSplit_ShortAndEmptyInputs(t *testing.T) {
	chunks, err := Split("one two three", 500, 50)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(chunks) != 1 || chunks[0] != "one two three" {
		t.Errorf("short input should yield one chunk, got %v", chunks)
	}

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		chunks, err := Split(text, 10, 2)
		if err != nil {
			t.Fatalf("Split(%q) failed: %v", text, err)
		}
		if len(chunks) != 0 {
			t.Errorf("Split(%q) = %v, want no chunks", text, chunks)
		}
	}
}

func TestSplit_RejectsNonTerminatingParams(t *testing.T) {
	cases := []struct {
		size    int
		overlap int
	}{
		{10, 10},
		{10, 15},
		{0, 0},
		{-1, 0},
		{10, -1},
	}
	for _, c := range cases {
		_, err := Split("some words here", c.size, c.overlap)
		if !errors.Is(err, ErrInvalidChunkParams) {
			t.Errorf("Split(size=%d overlap=%d) err = %v, want ErrInvalidChunkParams", c.size, c.overlap, err)
		}
	}
}
