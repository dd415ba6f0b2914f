package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"briq-utils/core/utils"
)

var (
	// ErrMissingFile is returned when a required table file does not exist.
	ErrMissingFile = errors.New("missing table file")
	// ErrMissingColumn is returned when a header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrOverflow is returned when an integer field does not fit its declared width.
	ErrOverflow = utils.ErrOverflow
)

// ParseError locates a failure inside a table file.
type ParseError struct {
	Table  string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.Table, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %s: %v", e.Table, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// row gives typed access to the fields of one CSV record. The first conversion
// failure is kept in err and later accessors become no-ops.
type row struct {
	table  string
	line   int
	header map[string]int
	fields []string
	err    error
}

func (r *row) str(col string) string {
	if r.err != nil {
		return ""
	}
	return r.fields[r.header[col]]
}

func (r *row) fail(col string, err error) {
	if r.err == nil {
		r.err = &ParseError{Table: r.table, Line: r.line, Column: col, Err: err}
	}
}

func (r *row) u16(col string) uint16 {
	v, err := utils.ToUint16(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *row) u32(col string) uint32 {
	v, err := utils.ToUint32(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *row) i32(col string) int32 {
	v, err := utils.ToInt32(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *row) optU16(col string) *uint16 {
	v, err := utils.ToOptionalUint16(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *row) optU32(col string) *uint32 {
	v, err := utils.ToOptionalUint32(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *row) boolean(col string) bool {
	v, err := utils.ToBool(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

// decoder describes how to turn the records of one table into T.
type decoder[T any] struct {
	table   string
	columns []string
	decode  func(r *row) T
}

// Read decodes every record of src. name is used in error messages.
func (d decoder[T]) Read(src io.Reader) ([]T, error) {
	cr := csv.NewReader(src)
	cr.ReuseRecord = true

	head, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Table: d.table, Line: 1, Err: errors.New("empty file, header row expected")}
	}
	if err != nil {
		return nil, &ParseError{Table: d.table, Line: 1, Err: err}
	}

	header := make(map[string]int, len(head))
	for i, name := range head {
		header[name] = i
	}
	for _, col := range d.columns {
		if _, ok := header[col]; !ok {
			return nil, &ParseError{Table: d.table, Line: 1, Column: col, Err: ErrMissingColumn}
		}
	}

	var out []T
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Table: d.table, Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, &ParseError{Table: d.table, Err: err}
		}
		line, _ := cr.FieldPos(0)

		r := &row{table: d.table, line: line, header: header, fields: fields}
		rec := d.decode(r)
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReadFile opens path and decodes it.
func (d decoder[T]) ReadFile(path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return d.Read(f)
}
