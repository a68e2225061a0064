package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RemoteAPI is an httptest stand-in for the dashboard backend. It
// records every accepted payload by path and can be switched into a
// failing state to exercise retry behaviour.
type RemoteAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	failing  bool
	received map[string][]json.RawMessage
}

// NewRemoteAPI starts the mock server.
func NewRemoteAPI() *RemoteAPI {
	api := &RemoteAPI{received: make(map[string][]json.RawMessage)}
	api.Server = httptest.NewServer(http.HandlerFunc(api.handle))
	return api
}

func (a *RemoteAPI) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failing {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if r.Method == http.MethodGet {
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	a.received[r.URL.Path] = append(a.received[r.URL.Path], body)
	w.WriteHeader(http.StatusCreated)
}

// SetFailing makes every subsequent request answer 503.
func (a *RemoteAPI) SetFailing(failing bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing = failing
}

// Received returns the payloads accepted for the given path.
func (a *RemoteAPI) Received(path string) []json.RawMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]json.RawMessage{}, a.received[path]...)
}

// Reset forgets all recorded payloads and clears the failing state.
func (a *RemoteAPI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing = false
	a.received = make(map[string][]json.RawMessage)
}

// Close shuts the server down.
func (a *RemoteAPI) Close() {
	a.Server.Close()
}
