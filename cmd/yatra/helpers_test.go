package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   []byte
	Form   map[string]string
}

type apiStub struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	reply    string
}

func newAPIStub(t *testing.T, status int, reply string) (*apiStub, string) {
	t.Helper()

	stub := &apiStub{status: status, reply: reply}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: map[string]string{}}
		for k := range r.URL.Query() {
			rec.Query[k] = r.URL.Query().Get(k)
		}
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			rec.Form = map[string]string{}
			for k := range r.MultipartForm.Value {
				rec.Form[k] = r.FormValue(k)
			}
		} else {
			rec.Body, _ = io.ReadAll(r.Body)
		}

		stub.mu.Lock()
		stub.requests = append(stub.requests, rec)
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		_, _ = w.Write([]byte(stub.reply))
	}))
	t.Cleanup(srv.Close)
	return stub, srv.URL
}

func (s *apiStub) all() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

func (r recordedRequest) json(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &out))
	return out
}

// execute runs the root command with an isolated config directory and
// returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
