package bookstore

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordedRequest is what a fake bookstore server saw for one call.
type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          map[string]string
}

// fakeBookstore serves canned responses per path and records every request.
type fakeBookstore struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]cannedResponse
}

type cannedResponse struct {
	status int
	body   string
}

func (f *fakeBookstore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	req := recordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
	}
	if len(b) > 0 {
		_ = json.Unmarshal(b, &req.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	res, ok := f.responses[r.Method+" "+r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(res.status)
	_, _ = io.WriteString(w, res.body)
}

func (f *fakeBookstore) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

// newFakeBookstore starts a server and a Client pointed at it.
func newFakeBookstore(t *testing.T, responses map[string]cannedResponse) (*fakeBookstore, *Client) {
	t.Helper()
	fake := &fakeBookstore{responses: responses}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return fake, newTestClient(t, server.URL)
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg, err := LoadConfig(ConfigWithLookupEnv(noEnv))
	require.NoError(t, err)
	cfg.API.BaseURL = baseURL
	return NewClient(&RunContext{Config: cfg, RunID: "test"})
}

// closedServerURL returns the address of a server that is no longer listening.
func closedServerURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}

func inputRow(header []string, values ...string) InputRecord {
	return NewInputRecord(1, header, values)
}
