package itf

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// Call is one request received by the fake contacts API.
type Call struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// FakeAPI is an httptest stand-in for the contacts API. Unregistered routes
// answer 404 with a JSON error body.
type FakeAPI struct {
	Server *httptest.Server
	router *mux.Router
	mu     sync.Mutex
	calls  []Call
}

func NewFakeAPI(tb testing.TB) *FakeAPI {
	tb.Helper()
	f := &FakeAPI{router: mux.NewRouter()}
	f.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found: " + r.URL.Path})
	})
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	tb.Cleanup(f.Server.Close)
	return f
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, Call{Method: r.Method, Path: r.URL.EscapedPath(), Header: r.Header.Clone(), Body: body})
	f.mu.Unlock()
	r.Body = io.NopCloser(bytes.NewReader(body))
	f.router.ServeHTTP(w, r)
}

// URL is the API base URL, as configured by API_BASE_URL.
func (f *FakeAPI) URL() string {
	return f.Server.URL + "/api/v1"
}

// Handle registers h for method and path below the base URL. Paths may use
// gorilla/mux variables.
func (f *FakeAPI) Handle(method, path string, h http.HandlerFunc) *FakeAPI {
	f.router.HandleFunc("/api/v1"+path, h).Methods(method)
	return f
}

// JSON registers a route answering status with body encoded as JSON.
func (f *FakeAPI) JSON(method, path string, status int, body any) *FakeAPI {
	return f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})
}

// Fail registers a route answering status with {"message": message}.
func (f *FakeAPI) Fail(method, path string, status int, message string) *FakeAPI {
	return f.JSON(method, path, status, map[string]string{"message": message})
}

func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount counts calls matching method and the full escaped path.
func (f *FakeAPI) CallCount(method, path string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == "/api/v1"+path {
			n++
		}
	}
	return n
}

// LastBody decodes the body of the last call to method and path into v.
func (f *FakeAPI) LastBody(tb testing.TB, method, path string, v any) {
	tb.Helper()
	calls := f.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == method && calls[i].Path == "/api/v1"+path {
			if err := json.Unmarshal(calls[i].Body, v); err != nil {
				tb.Fatalf("decode body of %s %s: %v", method, path, err)
			}
			return
		}
	}
	tb.Fatalf("no call to %s %s", method, path)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
