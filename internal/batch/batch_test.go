package batch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chronos-tachyon/texthuff"
)

func TestRun(t *testing.T) {
	r, err := New(Config{Workers: 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	lines := []string{"aaabbc", "abracadabra", "zzzz", "aaabbc", "hello, world"}
	results, err := r.Run(context.Background(), lines)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != len(lines) {
		t.Fatalf("expected %d results, got %d", len(lines), len(results))
	}
	for index, result := range results {
		if result.Text != lines[index] {
			t.Errorf("result %d out of order: expected %q, got %q", index, lines[index], result.Text)
		}
		if !result.Lossless() {
			t.Errorf("result %d: expected lossless run, got %d mismatches", index, result.Mismatch)
		}
	}
	if results[0].Encoded != "000111110" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "000111110", results[0].Encoded)
	}
	if n := r.CacheLen(); n != 4 {
		t.Errorf("expected 4 cached codecs, got %d", n)
	}
}

func TestRun_SharedCodec(t *testing.T) {
	r, err := New(Config{Workers: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	results, err := r.Run(context.Background(), []string{"aaabbc", "aaabbc"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if results[0].Codec != results[1].Codec {
		t.Errorf("expected repeated line to reuse the cached codec")
	}
}

func TestRun_NoCache(t *testing.T) {
	r, err := New(Config{Workers: 2, CacheSize: -1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	results, err := r.Run(context.Background(), []string{"aaabbc", "aaabbc"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if results[0].Codec == results[1].Codec {
		t.Errorf("expected separate codecs without a cache")
	}
	if n := r.CacheLen(); n != 0 {
		t.Errorf("expected empty cache, got %d", n)
	}
}

func TestRun_EmptyLine(t *testing.T) {
	r, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	results, err := r.Run(context.Background(), []string{"abc", "", "def"})
	if !errors.Is(err, texthuff.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to name line 2, got %q", err.Error())
	}
	if results != nil {
		t.Errorf("expected no results on failure")
	}
}

func TestRun_Canceled(t *testing.T) {
	r, err := New(Config{Workers: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx, []string{"abc", "def"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
