package exportlib

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goWordCloud/freqlib"
)

func sampleTable() *freqlib.Table {
	return freqlib.Count([]string{"사과", "바나나", "사과", "포도", "사과", "포도", "딸기"})
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.csv", CSV},
		{"OUT.CSV", CSV},
		{"freq.xlsx", Spreadsheet},
		{"cloud.png", PNG},
		{"cloud.jpg", JPEG},
		{"cloud.JPEG", JPEG},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("cloud.gif")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = FormatFromPath("noext")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestFormatKinds(t *testing.T) {
	assert.True(t, CSV.IsTable())
	assert.True(t, Spreadsheet.IsTable())
	assert.False(t, PNG.IsTable())
	assert.True(t, JPEG.IsImage())
	assert.False(t, CSV.IsImage())
	assert.Equal(t, "xlsx", Spreadsheet.String())
}

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, sampleTable().Ranked()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), utf8BOM))
	want := "단어,빈도수\n사과,3\n포도,2\n바나나,1\n딸기,1\n"
	assert.Equal(t, want, string(bytes.TrimPrefix(buf.Bytes(), utf8BOM)))
}

func TestTableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	table := sampleTable()

	for _, name := range []string{"freq.csv", "freq.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			f, err := FormatFromPath(path)
			require.NoError(t, err)
			require.NoError(t, WriteTable(path, f, table.Ranked()))

			entries, err := ReadTable(path)
			require.NoError(t, err)
			assert.Equal(t, table.Ranked(), entries)
			assert.Equal(t, table.Map(), freqlib.FromEntries(entries).Map())
		})
	}
}

func TestWriteTableSortsByCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.csv")
	unsorted := []freqlib.Entry{{Rank: 1, Word: "바나나", Count: 1}, {Rank: 2, Word: "사과", Count: 3}, {Rank: 3, Word: "포도", Count: 1}}
	require.NoError(t, WriteTable(path, CSV, unsorted))

	entries, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []freqlib.Entry{
		{Rank: 1, Word: "사과", Count: 3},
		{Rank: 2, Word: "바나나", Count: 1},
		{Rank: 3, Word: "포도", Count: 1},
	}, entries)
	assert.Equal(t, "바나나", unsorted[0].Word)
}

func TestWriteTableWrongFormat(t *testing.T) {
	err := WriteTable(filepath.Join(t.TempDir(), "x.png"), PNG, sampleTable().Ranked())
	assert.ErrorIs(t, err, ErrExport)
}

func TestWriteTableUnwritable(t *testing.T) {
	err := WriteTable(filepath.Join(t.TempDir(), "missing", "freq.csv"), CSV, sampleTable().Ranked())
	assert.ErrorIs(t, err, ErrExport)
}

func TestDecodeCSVErrors(t *testing.T) {
	_, err := DecodeCSV(bytes.NewBufferString(""))
	assert.Error(t, err)

	_, err = DecodeCSV(bytes.NewBufferString("단어,빈도수\n사과,many\n"))
	assert.Error(t, err)
}

func TestWriteImage(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "cloud.png")
	require.NoError(t, WriteImage(pngPath, PNG, testImage()))
	file, err := os.Open(pngPath)
	require.NoError(t, err)
	decoded, err := png.Decode(file)
	file.Close()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), decoded.Bounds())

	jpgPath := filepath.Join(dir, "cloud.jpg")
	require.NoError(t, WriteImage(jpgPath, JPEG, testImage()))
	file, err = os.Open(jpgPath)
	require.NoError(t, err)
	_, err = jpeg.Decode(file)
	file.Close()
	require.NoError(t, err)
}

func TestWriteImageErrors(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, WriteImage(filepath.Join(dir, "a.png"), PNG, nil), ErrExport)
	assert.ErrorIs(t, WriteImage(filepath.Join(dir, "a.csv"), CSV, testImage()), ErrExport)
	assert.ErrorIs(t, WriteImage(filepath.Join(dir, "no", "a.png"), PNG, testImage()), ErrExport)
}

func TestSaveTable(t *testing.T) {
	dir := t.TempDir()
	entries := sampleTable().Ranked()

	path := filepath.Join(dir, "a.csv")
	require.NoError(t, SaveTable(path, entries))
	got, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	assert.ErrorIs(t, SaveTable(filepath.Join(dir, "a.png"), entries), ErrFormat)
	assert.ErrorIs(t, SaveTable(filepath.Join(dir, "a.bmp"), entries), ErrExport)
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, SaveImage(filepath.Join(dir, "a.jpg"), testImage()))
	assert.FileExists(t, filepath.Join(dir, "a.jpg"))

	assert.ErrorIs(t, SaveImage(filepath.Join(dir, "a.xlsx"), testImage()), ErrFormat)
	assert.ErrorIs(t, SaveImage(filepath.Join(dir, "a.bmp"), testImage()), ErrExport)
	assert.ErrorIs(t, SaveImage(filepath.Join(dir, "b.png"), nil), ErrExport)
}
