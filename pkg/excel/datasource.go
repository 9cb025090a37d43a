package excel

import "context"

// SliceDataSource serves rows held in memory.
type SliceDataSource struct {
	sheet   string
	headers []string
	rows    [][]interface{}
}

func NewSliceDataSource(headers []string, rows [][]interface{}) *SliceDataSource {
	return &SliceDataSource{headers: headers, rows: rows}
}

func (s *SliceDataSource) WithSheetName(name string) *SliceDataSource {
	s.sheet = name
	return s
}

func (s *SliceDataSource) SheetName() string {
	return s.sheet
}

func (s *SliceDataSource) Headers() []string {
	return s.headers
}

func (s *SliceDataSource) Rows(context.Context) (func() ([]interface{}, bool, error), error) {
	i := 0
	return func() ([]interface{}, bool, error) {
		if i >= len(s.rows) {
			return nil, false, nil
		}
		row := s.rows[i]
		i++
		return row, true, nil
	}, nil
}
