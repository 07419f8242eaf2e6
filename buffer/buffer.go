// Package buffer holds a loaded file as an ordered list of immutable rows.
package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Row is one line of the source file with its line terminator removed.
// The content is kept as raw bytes and is not required to be valid UTF-8.
type Row struct {
	chars []byte
}

func (r Row) Len() int {
	return len(r.chars)
}

// Bytes returns the row content. Callers must not modify it.
func (r Row) Bytes() []byte {
	return r.chars
}

// Document is the read-only line buffer. The zero value is an empty document.
type Document struct {
	rows []Row
}

// New builds a document from already split lines, stripping any trailing
// line terminators.
func New(lines ...string) *Document {
	d := &Document{rows: make([]Row, 0, len(lines))}
	for _, l := range lines {
		d.appendRow([]byte(l))
	}
	return d
}

// Load opens the file at path and reads it into a Document.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return d, nil
}

// Read splits r into rows. A line ends at '\n' or at EOF; every trailing
// '\r' and '\n' is stripped.
func Read(r io.Reader) (*Document, error) {
	d := &Document{}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			d.appendRow(line)
		}
		if err == io.EOF {
			return d, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (d *Document) appendRow(line []byte) {
	line = bytes.TrimRight(line, "\r\n")
	chars := make([]byte, len(line))
	copy(chars, line)
	d.rows = append(d.rows, Row{chars: chars})
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Row returns the row at index i. ok is false if i is out of range.
func (d *Document) Row(i int) (row Row, ok bool) {
	if i < 0 || i >= d.RowCount() {
		return Row{}, false
	}
	return d.rows[i], true
}
