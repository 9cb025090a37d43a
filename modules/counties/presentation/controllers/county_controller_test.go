package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/county-directory/console/modules/core"
	"github.com/county-directory/console/modules/counties"
	"github.com/county-directory/console/modules/counties/domain/entities/county"
	"github.com/county-directory/console/modules/counties/presentation/controllers"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/itf"
)

func newSuite(t *testing.T, api *itf.FakeAPI) *itf.Suite {
	t.Helper()
	suite := itf.NewSuiteBuilder(t).WithModules(core.NewModule(), counties.NewModule()).WithAPI(api).Build()
	suite.Register(controllers.NewCountiesController(suite.Env().App))
	return suite
}

func TestCountiesController_Get(t *testing.T) {
	t.Parallel()
	suite := newSuite(t, itf.NewFakeAPI(t))
	suite.GET("/add-county").Assert(t).ExpectOK().
		ExpectText("h1", "Add New County").
		ExpectAttr(`input[name="code"]`, "type", "number").
		ExpectText("form button", "Add County")
}

func TestCountiesController_RequiredAfterTrim(t *testing.T) {
	t.Parallel()
	api := itf.NewFakeAPI(t)
	suite := newSuite(t, api)

	cases := []map[string]string{
		{"name": "", "code": ""},
		{"name": "   ", "code": "47"},
		{"name": "Nairobi", "code": " "},
	}
	for _, form := range cases {
		suite.POST("/add-county").FormFields(form).Assert(t).ExpectOK().
			ExpectText(`[role="alert"][data-kind="error"]`, "County name and code are required.").
			ExpectNoElement(`meta[http-equiv="refresh"]`)
	}
	assert.Empty(t, api.Calls())
}

func TestCountiesController_NonNumericCode(t *testing.T) {
	t.Parallel()
	api := itf.NewFakeAPI(t)
	suite := newSuite(t, api)

	suite.POST("/add-county").FormFields(map[string]string{"name": "Nairobi", "code": "4.7"}).
		Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "County code must be a whole number.").
		ExpectInputValue("code", "4.7")
	assert.Empty(t, api.Calls())
}

func TestCountiesController_Success(t *testing.T) {
	t.Parallel()
	api := itf.NewFakeAPI(t).JSON(http.MethodPost, "/counties", http.StatusCreated, map[string]any{"id": 3, "name": "Nairobi", "code": 47})
	suite := newSuite(t, api)

	var events []county.CreatedEvent
	suite.Env().App.EventPublisher().Subscribe(func(e county.CreatedEvent) { events = append(events, e) })

	suite.POST("/add-county").FormFields(map[string]string{"name": "  Nairobi ", "code": " 47"}).
		Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="success"]`, `County "Nairobi" with code "47" added successfully!`).
		ExpectAttr(`meta[http-equiv="refresh"]`, "content", "2;url=/").
		ExpectInputValue("name", "").
		ExpectInputValue("code", "")

	var body apiclient.CountyInput
	api.LastBody(t, http.MethodPost, "/counties", &body)
	assert.Equal(t, apiclient.CountyInput{Name: "Nairobi", Code: 47}, body)
	require.Len(t, events, 1)
	assert.Equal(t, int64(3), events[0].Result.ID)
}

func TestCountiesController_Failure(t *testing.T) {
	t.Parallel()
	api := itf.NewFakeAPI(t).Fail(http.MethodPost, "/counties", http.StatusConflict, "County code already exists")
	suite := newSuite(t, api)

	suite.POST("/add-county").FormFields(map[string]string{"name": "Nairobi", "code": "47"}).
		Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "County code already exists").
		ExpectInputValue("name", "Nairobi").
		ExpectInputValue("code", "47")

	api.Server.Close()
	suite.POST("/add-county").FormFields(map[string]string{"name": "Nairobi", "code": "47"}).
		Assert(t).ExpectOK().
		ExpectText(`[role="alert"][data-kind="error"]`, "Failed to add county. Please try again.")
}
