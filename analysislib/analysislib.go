// Package analysislib runs the word cloud pipeline:
// clean text, extract nouns, filter, count and render.
package analysislib

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"goWordCloud/cloudlib"
	"goWordCloud/freqlib"
	"goWordCloud/morphlib"
	"goWordCloud/stringlib"
)

var (
	// ErrNoAnalyzableWords means filtering left nothing to count
	ErrNoAnalyzableWords = errors.New("no analyzable words")
	// ErrRendering wraps analyzer and renderer failures
	ErrRendering = errors.New("word cloud generation failed")
)

// Renderer turns a frequency table into an image
type Renderer interface {
	Render(t *freqlib.Table, o cloudlib.Options) (image.Image, error)
}

// Params are the per request settings
type Params struct {
	MinLength int
	Cloud     cloudlib.Options
}

// Result of one analysis request
type Result struct {
	Words []string // filtered words, in text order
	Table *freqlib.Table
	Cloud image.Image
}

// Pipeline is safe for concurrent use as long as its analyzer and renderer are
type Pipeline struct {
	analyzer morphlib.Analyzer
	renderer Renderer
	nouns    *cache.Cache
	logger   *log.Logger
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithLogger sends progress lines to l
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithCacheTTL keeps extracted nouns for ttl; 0 disables the cache
func WithCacheTTL(ttl time.Duration) Option {
	return func(p *Pipeline) {
		if ttl <= 0 {
			p.nouns = nil
			return
		}
		p.nouns = cache.New(ttl, 2*ttl)
	}
}

// New builds a pipeline around an analyzer and a renderer
func New(a morphlib.Analyzer, r Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		analyzer: a,
		renderer: r,
		nouns:    cache.New(10*time.Minute, 20*time.Minute),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func cacheKey(cleaned string) string {
	sum := sha1.Sum([]byte(cleaned))
	return hex.EncodeToString(sum[:])
}

// extract runs the analyzer, turning panics into errors
func (p *Pipeline) extract(cleaned string) (nouns []string, err error) {
	key := cacheKey(cleaned)
	if p.nouns != nil {
		if cached, found := p.nouns.Get(key); found {
			p.logger.Printf("nouns [CACHE] %s", key[:8])
			return cached.([]string), nil
		}
	}

	defer func() {
		if r := recover(); r != nil {
			nouns, err = nil, fmt.Errorf("analyzer panic: %v", r)
		}
	}()
	nouns, err = p.analyzer.Nouns(cleaned)
	if err != nil {
		return nil, err
	}

	if p.nouns != nil {
		p.nouns.Set(key, nouns, cache.DefaultExpiration)
	}

	return nouns, nil
}

// Analyze cleans the text, extracts nouns, filters and counts them
func (p *Pipeline) Analyze(text string, minLength int) ([]string, *freqlib.Table, error) {
	cleaned := stringlib.CleanHangul(text)

	nouns, err := p.extract(cleaned)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRendering, err)
	}

	words := freqlib.Filter(nouns, minLength)
	p.logger.Printf("extracted %d words (%d candidates)", len(words), len(nouns))
	if len(words) == 0 {
		return nil, nil, ErrNoAnalyzableWords
	}

	return words, freqlib.Count(words), nil
}

// Generate runs the whole pipeline and renders the cloud
func (p *Pipeline) Generate(text string, params Params) (res *Result, err error) {
	words, table, err := p.Analyze(text, params.MinLength)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w: renderer panic: %v", ErrRendering, r)
		}
	}()
	img, err := p.renderer.Render(table, params.Cloud)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendering, err)
	}
	p.logger.Printf("rendered %d distinct words", table.Len())

	return &Result{Words: words, Table: table, Cloud: img}, nil
}
