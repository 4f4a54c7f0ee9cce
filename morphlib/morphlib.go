// Package morphlib extracts noun candidates from cleaned Hangul text.
//
// The analyzers are opaque to the rest of the program: text goes in,
// an ordered list of tokens comes out, duplicates included.
package morphlib

import (
	"fmt"
	"strings"
	"sync"

	ko "github.com/ikawaha/kagome-dict-ko"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/jdkato/prose/v2"
)

// Analyzer names accepted by New
const (
	KagomeName = "kagome"
	ProseName  = "prose"
)

// Analyzer turns text into an ordered sequence of noun tokens
type Analyzer interface {
	Nouns(text string) ([]string, error)
}

// New returns the analyzer registered under name
func New(name string) (Analyzer, error) {
	switch strings.ToLower(name) {
	case KagomeName, "":
		return NewKagome(), nil
	case ProseName:
		return Prose{}, nil
	}
	return nil, fmt.Errorf("morphlib: unknown analyzer %q", name)
}

// mecab-ko-dic noun classes: common, proper, bound, numeral, pronoun
var nounTags = map[string]bool{
	"NNG": true,
	"NNP": true,
	"NNB": true,
	"NR":  true,
	"NP":  true,
}

// IsNounTag tells whether a mecab-ko-dic part of speech tag starts with a noun class.
// Compound tags look like "NNG+JKS".
func IsNounTag(tag string) bool {
	if i := strings.IndexByte(tag, '+'); i >= 0 {
		tag = tag[:i]
	}
	return nounTags[tag]
}

/***************************************************************************************************************
* Kagome *******************************************************************************************************
***************************************************************************************************************/

// Kagome tags text with the mecab-ko-dic dictionary. The dictionary is loaded on first use.
type Kagome struct {
	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

// NewKagome returns an analyzer whose dictionary is not loaded yet
func NewKagome() *Kagome {
	return &Kagome{}
}

func (k *Kagome) load() error {
	k.once.Do(func() {
		k.tok, k.err = tokenizer.New(ko.Dict(), tokenizer.OmitBosEos())
		if k.err != nil {
			k.err = fmt.Errorf("morphlib: loading mecab-ko-dic: %w", k.err)
		}
	})
	return k.err
}

// Nouns returns the surface form of every noun token, in text order
func (k *Kagome) Nouns(text string) ([]string, error) {
	if err := k.load(); err != nil {
		return nil, err
	}

	var nouns []string
	for _, t := range k.tok.Tokenize(text) {
		if t.Class == tokenizer.DUMMY {
			continue
		}
		features := t.Features()
		if len(features) == 0 || !IsNounTag(features[0]) {
			continue
		}
		if s := strings.TrimSpace(t.Surface); s != "" {
			nouns = append(nouns, s)
		}
	}

	return nouns, nil
}

/***************************************************************************************************************
* Prose ********************************************************************************************************
***************************************************************************************************************/

// Prose splits text with the prose tokenizer and keeps every token.
// It has no Korean morphology, so particles stay attached to their nouns.
type Prose struct{}

// Nouns returns every token of text
func (Prose) Nouns(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("morphlib: prose: %w", err)
	}

	var tokens []string
	for _, t := range doc.Tokens() {
		if s := strings.TrimSpace(t.Text); s != "" {
			tokens = append(tokens, s)
		}
	}

	return tokens, nil
}
