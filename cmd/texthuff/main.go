// Command texthuff reads text from standard input, Huffman-codes it, decodes
// it again, and reports the codes, the sizes and whether the round trip was
// lossless.
//
// By default only the first line is used.  With -all, every line is an
// independent run.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chronos-tachyon/texthuff/internal/batch"
	"github.com/chronos-tachyon/texthuff/internal/report"
)

const maxLineSize = 16 << 20

type options struct {
	all     bool
	workers int
	cache   int
	sorted  bool
}

func main() {
	var opts options
	var verbose bool
	flag.BoolVar(&opts.all, "all", false, "compress every input line, not just the first")
	flag.IntVar(&opts.workers, "workers", 0, "lines compressed at once with -all (0 = number of CPUs)")
	flag.IntVar(&opts.cache, "cache", batch.DefaultCacheSize, "codecs cached for repeated lines (negative disables)")
	flag.BoolVar(&opts.sorted, "sorted", false, "list codes in symbol order instead of tree order")
	flag.BoolVar(&verbose, "v", false, "log every run at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, opts, logger); err != nil {
		logger.Error("texthuff failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, opts options, logger *slog.Logger) error {
	lines, err := readLines(in, opts.all)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	runner, err := batch.New(batch.Config{
		Workers:   opts.workers,
		CacheSize: opts.cache,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	results, err := runner.Run(ctx, lines)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for index, result := range results {
		if index != 0 {
			if _, err := w.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := report.Write(w, result, report.Options{Sorted: opts.sorted}); err != nil {
			return err
		}
		if !result.Lossless() {
			logger.Warn("round trip lost data", "line", index+1, "mismatch", result.Mismatch)
		}
	}
	return w.Flush()
}

// readLines returns the first line of in, or every line if all is set.
// Empty input counts as one empty line, which the compressor rejects.
func readLines(in io.Reader, all bool) ([]string, error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
		if !all {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines, nil
}
