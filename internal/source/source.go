// Package source opens and reads the delimited district and voter sources, as
// plain text files or XLSX workbooks.
package source

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/encoding/htmlindex"
)

// Delimiter separates fields in text sources.
const Delimiter = ","

// Options configures how a source is read.
type Options struct {
	Encoding   string // charset label for text sources; "" reads bytes as UTF-8
	SheetIndex int    // XLSX sheet to read, default 0
}

// Row is one record of a source.
type Row struct {
	Num    int      // 1-based line or sheet row number
	Line   string   // raw text of the record
	Fields []string // set for XLSX rows, nil for text rows
}

// File is an opened source. Close must be called once reading is done.
type File struct {
	path  string
	opts  Options
	text  *os.File
	sheet *xlsx.Sheet
}

// Open opens the source at path. Files ending in .xlsx are read as workbooks,
// everything else as line-oriented text.
func Open(path string, opts Options) (*File, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		wb, err := xlsx.OpenFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "source: open workbook %s", path)
		}
		sheet, err := getSheet(wb, opts.SheetIndex)
		if err != nil {
			return nil, err
		}
		return &File{path: path, opts: opts, sheet: sheet}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: open %s", path)
	}
	return &File{path: path, opts: opts, text: f}, nil
}

// Path returns the path the source was opened from.
func (f *File) Path() string {
	return f.path
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	if f.text == nil {
		return nil
	}
	return f.text.Close()
}

// Each calls fn for every record of the source in order. Reading stops at the
// first error returned by fn or by the reader.
func (f *File) Each(ctx context.Context, fn func(Row) error) error {
	if f.sheet != nil {
		return eachSheetRow(ctx, f.sheet, fn)
	}

	r, err := decode(f.text, f.opts.Encoding)
	if err != nil {
		return err
	}
	return EachLine(ctx, r, fn)
}

// EachLine calls fn for every line of r. Line terminators, including a
// trailing carriage return, are stripped.
func EachLine(ctx context.Context, r io.Reader, fn func(Row) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	num := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return eris.Wrap(ctx.Err(), "source: context cancelled")
		}
		num++
		if err := fn(Row{Num: num, Line: scanner.Text()}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return eris.Wrap(err, "source: read line")
	}
	return nil
}

func decode(r io.Reader, charset string) (io.Reader, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return r, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, eris.Wrapf(err, "source: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(r), nil
}

func eachSheetRow(ctx context.Context, sheet *xlsx.Sheet, fn func(Row) error) error {
	for i, row := range sheet.Rows {
		if ctx.Err() != nil {
			return eris.Wrap(ctx.Err(), "source: context cancelled")
		}
		fields := rowToStrings(row)
		if err := fn(Row{Num: i + 1, Line: strings.Join(fields, Delimiter), Fields: fields}); err != nil {
			return err
		}
	}
	return nil
}

func getSheet(wb *xlsx.File, index int) (*xlsx.Sheet, error) {
	if index < 0 || index >= len(wb.Sheets) {
		return nil, eris.Errorf("source: sheet index %d out of range (workbook has %d sheets)", index, len(wb.Sheets))
	}
	return wb.Sheets[index], nil
}

// rowToStrings drops trailing empty cells so padded rows read like text lines.
func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
