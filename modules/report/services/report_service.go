package services

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/text/language"

	"github.com/county-directory/console/components/table"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/excel"
	"github.com/county-directory/console/pkg/spotlight"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrNothingToPrint is returned when a county has no contacts to put in a
// report.
var ErrNothingToPrint = errors.New("report: no contacts to print")

type ReportService struct {
	api      *apiclient.Client
	exporter *excel.ExcelExporter
}

func NewReportService(api *apiclient.Client) *ReportService {
	return &ReportService{
		api:      api,
		exporter: excel.NewExcelExporter(excel.DefaultOptions(), excel.DefaultStyleOptions()),
	}
}

// Counties lists the counties whose name matches q, best match first.
func (s *ReportService) Counties(ctx context.Context, q string) ([]apiclient.County, error) {
	counties, err := s.api.Counties(ctx)
	if err != nil {
		return nil, err
	}
	return spotlight.Filter(q, counties, func(c apiclient.County) string { return c.Name }), nil
}

func (s *ReportService) Search(ctx context.Context, county string) ([]apiclient.Contact, error) {
	return s.api.ContactsByCounty(ctx, county)
}

// PrintableContacts loads the contacts of county and fails with
// ErrNothingToPrint when there are none, before any report is requested.
func (s *ReportService) PrintableContacts(ctx context.Context, county string) ([]apiclient.Contact, error) {
	if strings.TrimSpace(county) == "" {
		return nil, ErrNothingToPrint
	}
	contacts, err := s.Search(ctx, county)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrNothingToPrint
	}
	return contacts, nil
}

func (s *ReportService) CountyPDF(ctx context.Context, county string) (*apiclient.Document, error) {
	return s.api.CountyReportPDF(ctx, county)
}

// Export renders contacts as an XLSX workbook with the report's columns.
func (s *ReportService) Export(ctx context.Context, locale language.Tag, county string, contacts []apiclient.Contact) (*apiclient.Document, error) {
	columns := table.DefaultColumns()
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}
	rows := make([][]interface{}, len(contacts))
	for i, contact := range contacts {
		rec := contact.Record()
		row := make([]interface{}, len(columns))
		for j, c := range columns {
			row[j] = table.Cell(locale, rec, c.Accessor)
		}
		rows[i] = row
	}

	ds := excel.NewSliceDataSource(headers, rows).WithSheetName(county)
	data, err := s.exporter.Export(ctx, ds)
	if err != nil {
		return nil, errors.Wrapf(err, "export contacts of %q", county)
	}
	return &apiclient.Document{
		ContentType: xlsxMIME,
		Filename:    "contacts-" + county + ".xlsx",
		Body:        data,
	}, nil
}
