package routelint

import (
	"io"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	internalserver "github.com/county-directory/console/internal/server"
	"github.com/county-directory/console/modules"
	corecontrollers "github.com/county-directory/console/modules/core/presentation/controllers"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/eventbus"
	"github.com/county-directory/console/pkg/metrics"
	"github.com/county-directory/console/pkg/routing"
	"github.com/county-directory/console/pkg/session"
)

type route struct {
	path    string
	methods []string
}

func TestServerRoutes_NoAPIPrefix(t *testing.T) {
	for _, r := range collectRoutes(t, buildServerRouter(t)) {
		if routing.HasPathPrefixOnBoundary(r.path, "/api") {
			t.Errorf("route %s shadows the contacts API prefix", r.path)
		}
	}
}

func TestServerRoutes_EveryAllowlistRuleIsServed(t *testing.T) {
	rules, err := routing.LoadAllowlist("", "server")
	require.NoError(t, err)
	routes := collectRoutes(t, buildServerRouter(t))

	var stale []string
	for _, rule := range rules {
		served := false
		for _, r := range routes {
			if routing.HasPathPrefixOnBoundary(r.path, rule.Prefix) {
				served = true
				break
			}
		}
		if !served {
			stale = append(stale, rule.Prefix)
		}
	}
	if len(stale) > 0 {
		sort.Strings(stale)
		t.Fatalf("allowlist rules without a registered route:\n%s", strings.Join(stale, "\n"))
	}
}

func TestServerRoutes_OpsAndDownloadsAreReadOnly(t *testing.T) {
	rules, err := routing.LoadAllowlist("", "server")
	require.NoError(t, err)
	classifier := routing.NewClassifier(rules)

	for _, r := range collectRoutes(t, buildServerRouter(t)) {
		class := classifier.ClassifyPath(r.path)
		if class != routing.RouteClassOps && class != routing.RouteClassDownload {
			continue
		}
		for _, m := range r.methods {
			if m != http.MethodGet && m != http.MethodHead {
				t.Errorf("%s route %s accepts %s", class, r.path, m)
			}
		}
	}
}

func collectRoutes(t *testing.T, router *mux.Router) []route {
	t.Helper()

	var routes []route
	err := router.Walk(func(r *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		p := routePath(r)
		if strings.TrimSpace(p) == "" {
			return nil
		}
		methods, _ := r.GetMethods()
		routes = append(routes, route{path: p, methods: methods})
		return nil
	})
	require.NoError(t, err)

	sort.Slice(routes, func(i, j int) bool { return routes[i].path < routes[j].path })
	return routes
}

func routePath(r *mux.Route) string {
	if r == nil {
		return ""
	}
	if tmpl, err := r.GetPathTemplate(); err == nil {
		return tmpl
	}
	regexp, err := r.GetPathRegexp()
	if err != nil {
		return ""
	}
	result := strings.TrimPrefix(regexp, "^")
	return strings.TrimSuffix(result, "$")
}

func buildServerRouter(t *testing.T) *mux.Router {
	t.Helper()

	conf := configuration.Use()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := application.New(&application.ApplicationOptions{
		API:      apiclient.New(conf.API.BaseURL),
		Sessions: session.NewMemoryStore(),
		Bundle:   application.LoadBundle(),
		EventBus: eventbus.NewEventPublisher(logger),
	})
	require.NoError(t, modules.Load(app, modules.BuiltInModules...))

	app.RegisterNavItems(modules.NavLinks...)
	app.RegisterControllers(
		corecontrollers.NewStaticFilesController(app.HashFsAssets()),
		metrics.NewPrometheusController(conf.Prometheus.Path, prometheus.NewRegistry()),
	)

	srv, err := internalserver.Default(&internalserver.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Entrypoint:    "server",
	})
	require.NoError(t, err)
	return srv.Router()
}
