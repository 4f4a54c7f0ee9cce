// Package cloudlib lays out and rasterizes a word cloud from a frequency table.
// Every rendering setting travels in Options, there is no package level state.
package cloudlib

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/psykhi/wordclouds"

	"goWordCloud/freqlib"
	"goWordCloud/iolib"
)

// Options configures a single rendering
type Options struct {
	Width      int
	Height     int
	MaxWords   int
	Palette    string
	Background string
	FontPath   string
}

// ErrFontNotFound is returned when the TTF file can not be opened
var ErrFontNotFound = errors.New("font file not found")

var palettes = map[string][]string{
	"Set3":     {"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f"},
	"viridis":  {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	"plasma":   {"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"},
	"inferno":  {"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"},
	"magma":    {"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f", "#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"},
	"coolwarm": {"#3b4cc0", "#6282ea", "#8db0fe", "#b8d0f9", "#dddcdc", "#f5c4ad", "#f49a7b", "#de604d", "#b40426"},
}

var namedColors = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
}

// Palettes lists the palette names in a stable order
func Palettes() []string {
	return []string{"Set3", "viridis", "plasma", "inferno", "magma", "coolwarm"}
}

// IsPalette tells whether name is one of Palettes
func IsPalette(name string) bool {
	_, ok := palettes[name]
	return ok
}

// PaletteColors returns the colors of a palette
func PaletteColors(name string) ([]color.Color, error) {
	hexes, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q, want one of %s", name, strings.Join(Palettes(), ", "))
	}

	colors := make([]color.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}

	return colors, nil
}

// ParseColor accepts "white", "black" or #rrggbb
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if h, ok := namedColors[s]; ok {
		s = h
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return c, nil
}

// Validate checks the options before any layout work
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", o.Width, o.Height)
	}
	if o.MaxWords <= 0 {
		return fmt.Errorf("invalid max words %d", o.MaxWords)
	}
	if !IsPalette(o.Palette) {
		return fmt.Errorf("unknown palette %q", o.Palette)
	}
	if _, err := ParseColor(o.Background); err != nil {
		return err
	}
	if !iolib.FileExists(o.FontPath) {
		return fmt.Errorf("%w: %s", ErrFontNotFound, o.FontPath)
	}

	return nil
}

// Words keeps the top MaxWords entries of the table as the layout input
func Words(t *freqlib.Table, maxWords int) map[string]int {
	top := t.Top(maxWords)
	m := make(map[string]int, len(top))
	for _, e := range top {
		m[e.Word] = e.Count
	}

	return m
}

// fontSizes scales the largest word to a fifth of the canvas height
func fontSizes(o Options) (lo, hi int) {
	hi = o.Height / 5
	if hi < 20 {
		hi = 20
	}
	lo = hi / 12
	if lo < 8 {
		lo = 8
	}

	return
}

// Renderer draws word clouds with psykhi/wordclouds
type Renderer struct{}

// Render lays out the table and returns the rasterized cloud
func (Renderer) Render(t *freqlib.Table, o Options) (img image.Image, err error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if t == nil || t.Len() == 0 {
		return nil, errors.New("empty frequency table")
	}

	colors, err := PaletteColors(o.Palette)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(o.Background)
	if err != nil {
		return nil, err
	}
	minSize, maxSize := fontSizes(o)

	// wordclouds panics on font and layout errors
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("wordclouds: %v", r)
		}
	}()

	wc := wordclouds.NewWordcloud(
		Words(t, o.MaxWords),
		wordclouds.FontFile(o.FontPath),
		wordclouds.Width(o.Width),
		wordclouds.Height(o.Height),
		wordclouds.Colors(colors),
		wordclouds.BackgroundColor(bg),
		wordclouds.FontMaxSize(maxSize),
		wordclouds.FontMinSize(minSize),
		wordclouds.RandomPlacement(false),
	)

	return wc.Draw(), nil
}
