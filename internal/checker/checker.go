// Package checker finds the misspelled words of documents using a loaded
// dictionary.
package checker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	"github.com/milden6/dictionary"
)

// Lookup answers whether a word is spelled correctly. It must be safe for
// concurrent use; a loaded *dictionary.Dictionary is.
type Lookup interface {
	Check(word string) bool
}

// Options configures a Checker.
type Options struct {
	// MaxWordLength is the longest word checked; longer ones are skipped.
	MaxWordLength int
	// CacheSize is the number of verdicts cached; 0 disables the cache.
	CacheSize int
	// Workers is the number of documents CheckFiles reads at once.
	Workers int
	// Encoding of the documents: utf-8 (default) or latin1.
	Encoding string
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// Report is the result of checking one document.
type Report struct {
	Name       string        `json:"name"`
	Misspelled []string      `json:"misspelled"`
	Words      int           `json:"words"`
	CheckTime  time.Duration `json:"check_time_ns"`
}

// Stats counts verdict cache activity.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// Checker checks documents against a dictionary.
type Checker struct {
	dict   Lookup
	cache  *lru.Cache[string, bool]
	opts   Options
	logger *slog.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a Checker for dict.
func New(dict Lookup, opts Options) (*Checker, error) {
	if opts.MaxWordLength <= 0 {
		opts.MaxWordLength = dictionary.MaxWordLength
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	c := &Checker{dict: dict, opts: opts, logger: opts.Logger}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New[string, bool](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create verdict cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

// Stats returns the cache counters.
func (c *Checker) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Correct returns true if word is in the dictionary.
func (c *Checker) Correct(word string) bool {
	if c.cache == nil {
		return c.dict.Check(word)
	}

	key := strings.ToLower(word)
	if ok, found := c.cache.Get(key); found {
		c.hits.Add(1)
		return ok
	}
	c.misses.Add(1)

	ok := c.dict.Check(key)
	c.cache.Add(key, ok)
	return ok
}

func (c *Checker) decode(r io.Reader) (io.Reader, error) {
	switch strings.ToLower(c.opts.Encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", c.opts.Encoding)
}

// Check reads the document r and reports its misspelled words in the order
// they appear.
func (c *Checker) Check(ctx context.Context, name string, r io.Reader) (*Report, error) {
	r, err := c.decode(r)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: name, Misspelled: []string{}}
	start := time.Now()

	err = Words(r, c.opts.MaxWordLength, func(word string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Words++
		if !c.Correct(word) {
			report.Misspelled = append(report.Misspelled, word)
		}
		return nil
	})
	report.CheckTime = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", name, err)
	}

	c.logger.Debug("document checked",
		slog.String("name", name),
		slog.Int("words", report.Words),
		slog.Int("misspelled", len(report.Misspelled)),
		slog.Duration("elapsed", report.CheckTime))

	return report, nil
}

// CheckFile checks the document at path.
func (c *Checker) CheckFile(ctx context.Context, path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	return c.Check(ctx, path, f)
}

// CheckFiles checks several documents concurrently, at most Workers at a
// time. Reports are returned in the order of paths. The first failure
// cancels the remaining checks.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) ([]*Report, error) {
	reports := make([]*Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			report, err := c.CheckFile(ctx, path)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
