// Package exportlib writes the rendered cloud and the frequency table to disk
package exportlib

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"goWordCloud/freqlib"
)

// Format is an export target, resolved once from the file name
type Format int

const (
	Unknown Format = iota
	CSV
	Spreadsheet
	PNG
	JPEG
)

// Column headers shared by CSV and spreadsheet output
const (
	HeaderWord  = "단어"
	HeaderCount = "빈도수"
	SheetName   = "단어빈도"
)

const jpegQuality = 95

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrExport matches every write failure of this package
var ErrExport = errors.New("export failed")

// ErrFormat is returned for extensions that map to no format, or to the wrong kind of format
var ErrFormat = errors.New("unsupported export format")

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case Spreadsheet:
		return "xlsx"
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	}
	return "unknown"
}

// IsTable tells whether f holds the frequency table
func (f Format) IsTable() bool {
	return f == CSV || f == Spreadsheet
}

// IsImage tells whether f holds the rendered cloud
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG
}

// FormatFromPath maps the file extension to a Format
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return Spreadsheet, nil
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

func exportErr(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
}

/***************************************************************************************************************
* Tables *******************************************************************************************************
***************************************************************************************************************/

// WriteTable saves the entries as word/count rows, highest count first.
// Entries with equal counts keep the order they were given in.
func WriteTable(path string, f Format, entries []freqlib.Entry) error {
	entries = byCount(entries)
	switch f {
	case CSV:
		var buf bytes.Buffer
		if err := EncodeCSV(&buf, entries); err != nil {
			return exportErr(path, err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return exportErr(path, err)
		}
		return nil
	case Spreadsheet:
		if err := writeXLSX(path, entries); err != nil {
			return exportErr(path, err)
		}
		return nil
	}
	return exportErr(path, fmt.Errorf("%w: %s is not a table format", ErrFormat, f))
}

func byCount(entries []freqlib.Entry) []freqlib.Entry {
	out := append([]freqlib.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}

// EncodeCSV writes a UTF-8 CSV with byte order mark so spreadsheet apps detect the encoding
func EncodeCSV(w io.Writer, entries []freqlib.Entry) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{HeaderWord, HeaderCount}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Word, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// DecodeCSV reads rows written by EncodeCSV
func DecodeCSV(r io.Reader) ([]freqlib.Entry, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(b, utf8BOM))).ReadAll()
	if err != nil {
		return nil, err
	}

	return parseRows(records)
}

func writeXLSX(path string, entries []freqlib.Entry) error {
	xf := excelize.NewFile()
	defer xf.Close()

	if err := xf.SetSheetName(xf.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := xf.SetSheetRow(SheetName, "A1", &[]interface{}{HeaderWord, HeaderCount}); err != nil {
		return err
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := xf.SetSheetRow(SheetName, cell, &[]interface{}{e.Word, e.Count}); err != nil {
			return err
		}
	}

	return xf.SaveAs(path)
}

func readXLSX(path string) ([]freqlib.Entry, error) {
	xf, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xf.Close()

	rows, err := xf.GetRows(xf.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	return parseRows(rows)
}

// parseRows skips the header row and ranks the rest in file order
func parseRows(rows [][]string) ([]freqlib.Entry, error) {
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}
	entries := make([]freqlib.Entry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: want 2 columns, got %d", i+2, len(row))
		}
		n, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, freqlib.Entry{Rank: i + 1, Word: row[0], Count: n})
	}

	return entries, nil
}

// ReadTable loads a table previously saved with WriteTable
func ReadTable(path string) ([]freqlib.Entry, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	switch f {
	case CSV:
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return DecodeCSV(file)
	case Spreadsheet:
		return readXLSX(path)
	}
	return nil, fmt.Errorf("%w: %s is not a table format", ErrFormat, f)
}

/***************************************************************************************************************
* Images *******************************************************************************************************
***************************************************************************************************************/

// EncodeImage writes img as PNG or JPEG
func EncodeImage(w io.Writer, f Format, img image.Image) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	}
	return fmt.Errorf("%w: %s is not an image format", ErrFormat, f)
}

// WriteImage saves the rendered cloud
func WriteImage(path string, f Format, img image.Image) (err error) {
	if img == nil {
		return exportErr(path, errors.New("no image to save"))
	}
	if !f.IsImage() {
		return exportErr(path, fmt.Errorf("%w: %s is not an image format", ErrFormat, f))
	}

	file, err := os.Create(path)
	if err != nil {
		return exportErr(path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = exportErr(path, cerr)
		}
	}()

	if err := EncodeImage(file, f, img); err != nil {
		return exportErr(path, err)
	}

	return nil
}

// SaveTable resolves the format of path and writes the frequency table, rejecting image extensions
func SaveTable(path string, entries []freqlib.Entry) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return exportErr(path, err)
	}

	return WriteTable(path, f, entries)
}

// SaveImage resolves the format of path and writes the cloud, rejecting table extensions
func SaveImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return exportErr(path, err)
	}

	return WriteImage(path, f, img)
}
