package controllers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/county-directory/console/modules/core"
	"github.com/county-directory/console/modules/report"
	"github.com/county-directory/console/modules/report/presentation/controllers"
	"github.com/county-directory/console/pkg/itf"
)

const pdfPath = "/persons/pdf-report/county/Nairobi"

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

func countiesAPI(t *testing.T) *itf.FakeAPI {
	t.Helper()
	return itf.NewFakeAPI(t).JSON(http.MethodGet, "/counties", http.StatusOK, []map[string]any{
		{"id": 1, "name": "Nairobi", "code": 47},
		{"id": 2, "name": "Mombasa", "code": 1},
		{"id": 3, "name": "Nakuru", "code": 32},
	})
}

func nairobiContacts(api *itf.FakeAPI) *itf.FakeAPI {
	return api.JSON(http.MethodGet, "/persons/county/Nairobi", http.StatusOK, []map[string]any{
		{"id": 1, "fullName": "Jane Doe", "email": "jane@example.com", "phone": "0700", "dateOfBirth": "1990-04-01", "gender": "Female", "countyName": "Nairobi"},
		{"id": 2, "fullName": "John Roe", "email": "john@example.com", "phone": "0711", "dateOfBirth": "1985-02-03", "gender": "Male", "countyName": "Nairobi"},
	})
}

func newSuite(t *testing.T, api *itf.FakeAPI) *itf.Suite {
	t.Helper()
	suite := itf.NewSuiteBuilder(t).WithModules(core.NewModule(), report.NewModule()).WithAPI(api).Build()
	suite.Register(controllers.NewReportController(suite.Env().App))
	return suite
}

func expectPrintDisabled(resp *itf.Response) {
	resp.ExpectNoElement(`a[href^="/contacts-report/print"]`).
		ExpectNoElement(`a[href^="/contacts-report/export"]`).
		ExpectElementCount(`button[disabled]`, 2)
}

func TestReport_Index(t *testing.T) {
	t.Parallel()
	api := countiesAPI(t)
	suite := newSuite(t, api)

	resp := suite.GET("/contacts-report").Assert(t).ExpectOK().
		ExpectText("h1", "Contacts Report by County").
		ExpectText(`select[name="county"] option[value=""]`, "-- Select a County --").
		ExpectElementCount(`select[name="county"] option`, 4).
		ExpectNoElement(`[role="alert"]`).
		ExpectNoElement("table")
	expectPrintDisabled(resp)
	assert.Len(t, api.Calls(), 1)
}

func TestReport_EmptySelectionIssuesNoSearch(t *testing.T) {
	t.Parallel()
	api := countiesAPI(t)
	suite := newSuite(t, api)

	resp := suite.GET("/contacts-report?county=").Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "Please select a county to search.")
	expectPrintDisabled(resp)
	assert.Equal(t, 1, api.CallCount(http.MethodGet, "/counties"))
	assert.Len(t, api.Calls(), 1)
}

func TestReport_Search(t *testing.T) {
	t.Parallel()
	api := nairobiContacts(countiesAPI(t))
	suite := newSuite(t, api)

	suite.GET("/contacts-report").WithQuery(map[string]string{"county": "Nairobi"}).Assert(t).ExpectOK().
		ExpectNoElement(`[role="alert"]`).
		ExpectElementCount("tbody tr", 2).
		ExpectElementCount("thead th", 6).
		ExpectAttr(`select[name="county"] option[selected]`, "value", "Nairobi").
		ExpectAttr(`td a[href="/contacts/1"]`, "href", "/contacts/1").
		ExpectAttr(`a[href^="/contacts-report/print"]`, "href", "/contacts-report/print?county=Nairobi").
		ExpectAttr(`a[href^="/contacts-report/export"]`, "href", "/contacts-report/export?county=Nairobi").
		ExpectNoElement(`button[disabled]`)
}

func TestReport_SearchWithoutResults(t *testing.T) {
	t.Parallel()
	api := countiesAPI(t).JSON(http.MethodGet, "/persons/county/Mombasa", http.StatusOK, []any{})
	suite := newSuite(t, api)

	resp := suite.GET("/contacts-report?county=Mombasa").Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="info"]`, "No contacts found for Mombasa.").
		ExpectNoElement("table")
	expectPrintDisabled(resp)
}

func TestReport_SearchFailure(t *testing.T) {
	t.Parallel()
	api := countiesAPI(t).Fail(http.MethodGet, "/persons/county/Nairobi", http.StatusInternalServerError, "")
	suite := newSuite(t, api)

	resp := suite.GET("/contacts-report?county=Nairobi").Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "Failed to fetch contacts. Please try again.")
	expectPrintDisabled(resp)
}

func TestReport_FuzzyCountyFilter(t *testing.T) {
	t.Parallel()
	suite := newSuite(t, countiesAPI(t))

	resp := suite.GET("/contacts-report?q=mom").Assert(t).ExpectOK().
		ExpectInputValue("q", "mom").
		ExpectElementCount(`select[name="county"] option`, 2).
		ExpectAttr(`form input[type="hidden"][name="q"]`, "value", "mom")
	assert.Equal(t, "Mombasa", resp.HTML().Find(`select[name="county"] option`).Last().Text())
}

func TestReport_PrintRequiresResults(t *testing.T) {
	t.Parallel()
	api := countiesAPI(t).JSON(http.MethodGet, "/persons/county/Mombasa", http.StatusOK, []any{})
	suite := newSuite(t, api)

	suite.GET("/contacts-report/print").Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "No contacts to print.")
	suite.GET("/contacts-report/print?county=Mombasa").Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "No contacts to print.")

	for _, c := range api.Calls() {
		assert.NotContains(t, c.Path, "pdf-report", "no report may be requested")
	}
	assert.Equal(t, 1, api.CallCount(http.MethodGet, "/persons/county/Mombasa"))
}

func TestReport_Print(t *testing.T) {
	t.Parallel()
	api := nairobiContacts(countiesAPI(t)).Handle(http.MethodGet, pdfPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="nairobi.pdf"`)
		_, _ = w.Write(samplePDF)
	})
	suite := newSuite(t, api)

	rec := suite.GET("/contacts-report/print?county=Nairobi").Do()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "inline; filename=nairobi.pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, samplePDF, rec.Body.Bytes())
}

func TestReport_PrintFailureKeepsResults(t *testing.T) {
	t.Parallel()
	api := nairobiContacts(countiesAPI(t)).Fail(http.MethodGet, pdfPath, http.StatusInternalServerError, "Report service unavailable")
	suite := newSuite(t, api)

	suite.GET("/contacts-report/print?county=Nairobi").Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "Report service unavailable").
		ExpectElementCount("tbody tr", 2).
		ExpectElement(`a[href="/contacts-report/print?county=Nairobi"]`)
}

func TestReport_PrintRejectsNonPDF(t *testing.T) {
	t.Parallel()
	api := nairobiContacts(countiesAPI(t)).JSON(http.MethodGet, pdfPath, http.StatusOK, map[string]string{"status": "queued"})
	suite := newSuite(t, api)

	suite.GET("/contacts-report/print?county=Nairobi").Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "Failed to generate the report. Please try again.")
}

func TestReport_Export(t *testing.T) {
	t.Parallel()
	suite := newSuite(t, nairobiContacts(countiesAPI(t)))

	rec := suite.GET("/contacts-report/export?county=Nairobi").Do()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=contacts-Nairobi.xlsx", rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Nairobi")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email", "Phone", "D.O.B", "Gender", "County"}, rows[0])
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", "0700", "1990-04-01", "Female", "Nairobi"}, rows[1])
}
