// Package batch compresses many independent lines concurrently.
//
// Each line is its own compression run with its own tree.  Runs share nothing
// except a cache of codecs, so repeated lines skip tree construction.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/chronos-tachyon/texthuff"
)

// DefaultCacheSize is the number of codecs kept when Config.CacheSize is 0.
const DefaultCacheSize = 128

// Config holds the settings of a Runner.
type Config struct {
	// Workers is the maximum number of lines compressed at once.  Zero
	// means runtime.NumCPU().
	Workers int

	// CacheSize is the number of codecs to keep, keyed by line.  Zero
	// means DefaultCacheSize; negative disables the cache.
	CacheSize int

	// Logger receives one debug record per run.  Nil means slog.Default().
	Logger *slog.Logger
}

// Runner compresses batches of lines.  A Runner is safe for concurrent use.
type Runner struct {
	workers int
	cache   *lru.Cache[string, *texthuff.Codec]
	logger  *slog.Logger
}

// New returns a Runner for the given configuration.
func New(cfg Config) (*Runner, error) {
	r := &Runner{
		workers: cfg.Workers,
		logger:  cfg.Logger,
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	size := cfg.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		cache, err := lru.New[string, *texthuff.Codec](size)
		if err != nil {
			return nil, fmt.Errorf("batch: creating codec cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// Run compresses every line and returns the results in input order.  The
// first failure cancels the remaining work and is returned, annotated with
// its 1-based line number.
func (r *Runner) Run(ctx context.Context, lines []string) ([]*texthuff.Result, error) {
	results := make([]*texthuff.Result, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for index, line := range lines {
		index, line := index, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.compress(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", index+1, err)
			}
			r.logger.Debug("compressed line",
				"line", index+1,
				"symbols", result.Frequencies.Len(),
				"inputBits", result.InputBits,
				"encodedBits", result.EncodedBits,
				"lossless", result.Lossless())
			results[index] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) compress(line string) (*texthuff.Result, error) {
	if r.cache == nil {
		return texthuff.Compress(line)
	}

	if codec, found := r.cache.Get(line); found {
		return texthuff.CompressWith(codec, line)
	}

	codec, err := texthuff.NewCodecForText(line)
	if err != nil {
		return nil, err
	}
	r.cache.Add(line, codec)
	return texthuff.CompressWith(codec, line)
}

// CacheLen returns the number of cached codecs.
func (r *Runner) CacheLen() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Len()
}
