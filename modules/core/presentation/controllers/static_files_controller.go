package controllers

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
)

type StaticFilesController struct {
	fsInstances []*hashfs.FS
}

func (s *StaticFilesController) Key() string {
	return "/assets"
}

func (s *StaticFilesController) Register(r *mux.Router) {
	fsHandler := http.StripPrefix("/assets/", assetsHandler(s.fsInstances))
	production := configuration.Use().GoAppEnvironment == configuration.Production
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if production {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		fsHandler.ServeHTTP(w, r)
	})
	r.PathPrefix("/assets/").Handler(handler)
}

// assetsHandler serves a path from the first filesystem that has it. hashfs
// resolves hashed names and marks them immutable.
func assetsHandler(fsInstances []*hashfs.FS) http.Handler {
	handlers := make([]http.Handler, len(fsInstances))
	for i, fsys := range fsInstances {
		handlers[i] = hashfs.FileServer(fsys)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		for i, fsys := range fsInstances {
			if _, err := fs.Stat(fsys, name); err == nil {
				handlers[i].ServeHTTP(w, r)
				return
			}
		}
		http.NotFound(w, r)
	})
}

func NewStaticFilesController(fsInstances []*hashfs.FS) application.Controller {
	return &StaticFilesController{
		fsInstances: fsInstances,
	}
}
