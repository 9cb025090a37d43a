// Package excel writes tabular data to XLSX workbooks.
package excel

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 characters.
const maxSheetName = 31

// DataSource supplies one sheet of data.
type DataSource interface {
	SheetName() string
	Headers() []string
	// Rows returns a function yielding the next row until ok is false.
	Rows(ctx context.Context) (func() (row []interface{}, ok bool, err error), error)
}

type ExportOptions struct {
	IncludeHeaders bool
	AutoFilter     bool
	FreezeHeader   bool
	// MaxRows stops the export after that many data rows; 0 means no limit.
	MaxRows int
}

func DefaultOptions() *ExportOptions {
	return &ExportOptions{IncludeHeaders: true, AutoFilter: true, FreezeHeader: true}
}

type StyleOptions struct {
	HeaderBold  bool
	HeaderFill  string
	ColumnWidth float64
}

func DefaultStyleOptions() *StyleOptions {
	return &StyleOptions{HeaderBold: true, HeaderFill: "#E5E7EB", ColumnWidth: 20}
}

type ExcelExporter struct {
	opts  *ExportOptions
	style *StyleOptions
}

func NewExcelExporter(opts *ExportOptions, style *StyleOptions) *ExcelExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	if style == nil {
		style = DefaultStyleOptions()
	}
	return &ExcelExporter{opts: opts, style: style}
}

var sheetNameReplacer = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")")

func sheetName(ds DataSource) string {
	name := sheetNameReplacer.Replace(strings.TrimSpace(ds.SheetName()))
	if name == "" {
		name = "Sheet1"
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}

// Export renders ds to an XLSX workbook and returns its bytes.
func (e *ExcelExporter) Export(ctx context.Context, ds DataSource) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(ds)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	headers := ds.Headers()
	row := 1
	if e.opts.IncludeHeaders && len(headers) > 0 {
		if err := e.writeHeaders(f, sheet, headers); err != nil {
			return nil, err
		}
		row++
	}

	next, err := ds.Rows(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "open rows")
	}
	written := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.opts.MaxRows > 0 && written >= e.opts.MaxRows {
			break
		}
		values, ok, err := next()
		if err != nil {
			return nil, errors.Wrapf(err, "read row %d", written+1)
		}
		if !ok {
			break
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, errors.Wrap(err, "cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, errors.Wrapf(err, "write row %d", written+1)
		}
		row++
		written++
	}

	if len(headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(headers))
		if err != nil {
			return nil, errors.Wrap(err, "column name")
		}
		if e.style.ColumnWidth > 0 {
			if err := f.SetColWidth(sheet, "A", last, e.style.ColumnWidth); err != nil {
				return nil, errors.Wrap(err, "set column width")
			}
		}
		if e.opts.IncludeHeaders && e.opts.AutoFilter && written > 0 {
			corner, err := excelize.CoordinatesToCellName(len(headers), row-1)
			if err != nil {
				return nil, errors.Wrap(err, "cell name")
			}
			if err := f.AutoFilter(sheet, "A1:"+corner, nil); err != nil {
				return nil, errors.Wrap(err, "auto filter")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}

func (e *ExcelExporter) writeHeaders(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return errors.Wrap(err, "write headers")
	}
	if e.style.HeaderBold || e.style.HeaderFill != "" {
		style := &excelize.Style{Font: &excelize.Font{Bold: e.style.HeaderBold}}
		if e.style.HeaderFill != "" {
			style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{e.style.HeaderFill}}
		}
		id, err := f.NewStyle(style)
		if err != nil {
			return errors.Wrap(err, "header style")
		}
		last, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}
		if err := f.SetCellStyle(sheet, "A1", last, id); err != nil {
			return errors.Wrap(err, "apply header style")
		}
	}
	if e.opts.FreezeHeader {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return errors.Wrap(err, "freeze header")
		}
	}
	return nil
}
