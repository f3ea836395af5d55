package test_helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockToken is the app access token handed out by the mock token endpoint.
const MockToken = "mock_token"

// MockServer is a fake Graph API backed by an in-memory object store.
//
// Objects are stored by id and list connections by "{id}/{connection}".
// GET on an object returns it or false, GET on a connection returns a paged
// list envelope, POST to a connection creates an object with a fresh id and
// DELETE removes an object. Canned responses registered with SetResponse
// take precedence over the store.
type MockServer struct {
	server *httptest.Server
	router chi.Router

	mu          sync.RWMutex
	objects     map[string]json.RawMessage
	connections map[string][]json.RawMessage
	pictures    map[string]string
	responses   map[string]*MockResponse
	delay       time.Duration

	logMutex   sync.Mutex
	requestLog []RequestEntry
	callCount  map[string]int
}

// RequestEntry logs incoming requests for debugging
type RequestEntry struct {
	Method       string
	Path         string
	Query        string
	Headers      http.Header
	Body         string
	Timestamp    time.Time
	ResponseCode int
}

// MockResponse defines a canned API response
type MockResponse struct {
	Status   int
	Body     string
	Headers  map[string]string
	Delay    time.Duration
	MaxCalls int // 0 = unlimited
}

// NewMockServer creates a new mock server instance
func NewMockServer() *MockServer {
	ms := &MockServer{
		objects:     make(map[string]json.RawMessage),
		connections: make(map[string][]json.RawMessage),
		pictures:    make(map[string]string),
		responses:   make(map[string]*MockResponse),
		callCount:   make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(ms.record, ms.canned)
	r.Get("/oauth/access_token", ms.token)
	r.Get("/", ms.lookupMany)
	r.Get("/search", ms.search)
	r.Get("/{id}", ms.getObject)
	r.Post("/{id}", ms.updateObject)
	r.Delete("/{id}", ms.deleteObject)
	r.Get("/{id}/picture", ms.picture)
	r.Get("/{id}/*", ms.getConnection)
	r.Post("/{id}/*", ms.postConnection)
	r.Delete("/{id}/*", ms.deleteConnection)

	ms.router = r
	ms.server = httptest.NewServer(r)
	return ms
}

// URL returns the base URL of the mock server, ending in "/".
func (ms *MockServer) URL() string {
	return ms.server.URL + "/"
}

// Close shuts down the mock server
func (ms *MockServer) Close() {
	ms.server.Close()
}

// Client returns an HTTP client for the mock server.
func (ms *MockServer) Client() *http.Client {
	return ms.server.Client()
}

// NewID returns a fresh object id.
func NewID() string {
	return uuid.NewString()
}

// PutObject stores an object. v is marshaled to JSON and must carry an "id".
func (ms *MockServer) PutObject(id string, v any) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.objects[id] = mustJSON(v)
}

// PutConnection replaces the items of id's connection.
func (ms *MockServer) PutConnection(id, connection string, items ...any) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	raws := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raws = append(raws, mustJSON(item))
	}
	ms.connections[id+"/"+connection] = raws
}

// Connection returns the items currently stored in id's connection.
func (ms *MockServer) Connection(id, connection string) []json.RawMessage {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return append([]json.RawMessage(nil), ms.connections[id+"/"+connection]...)
}

// Object returns a stored object.
func (ms *MockServer) Object(id string) (json.RawMessage, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	raw, ok := ms.objects[id]
	return raw, ok
}

// PutPicture makes GET {id}/picture redirect to location.
func (ms *MockServer) PutPicture(id, location string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.pictures[id] = location
}

// SetResponse configures a canned response for a method and path such as
// "/me/feed".
func (ms *MockServer) SetResponse(method, path string, response *MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.responses[method+" "+path] = response
}

// SetDelay adds delay to all responses
func (ms *MockServer) SetDelay(delay time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.delay = delay
}

// GetRequestLog returns the request log
func (ms *MockServer) GetRequestLog() []RequestEntry {
	ms.logMutex.Lock()
	defer ms.logMutex.Unlock()
	return append([]RequestEntry{}, ms.requestLog...)
}

// GetCallCount returns the call count for a path
func (ms *MockServer) GetCallCount(path string) int {
	ms.logMutex.Lock()
	defer ms.logMutex.Unlock()
	return ms.callCount[path]
}

// TotalCalls returns how many requests the server received.
func (ms *MockServer) TotalCalls() int {
	ms.logMutex.Lock()
	defer ms.logMutex.Unlock()
	return len(ms.requestLog)
}

// ClearLog clears the request log
func (ms *MockServer) ClearLog() {
	ms.logMutex.Lock()
	defer ms.logMutex.Unlock()
	ms.requestLog = ms.requestLog[:0]
	ms.callCount = make(map[string]int)
}

// WaitForRequests waits for a specific number of requests to be made
func (ms *MockServer) WaitForRequests(count int, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if ms.TotalCalls() >= count {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for %d requests", count)
		case <-ticker.C:
		}
	}
}

// AssertRequestCount asserts that a specific number of requests were made to a path
func (ms *MockServer) AssertRequestCount(path string, expectedCount int) error {
	actualCount := ms.GetCallCount(path)
	if actualCount != expectedCount {
		return fmt.Errorf("expected %d requests to %s, got %d", expectedCount, path, actualCount)
	}
	return nil
}

// GetLastRequest returns the last request made to a specific path
func (ms *MockServer) GetLastRequest(path string) (*RequestEntry, error) {
	ms.logMutex.Lock()
	defer ms.logMutex.Unlock()

	for i := len(ms.requestLog) - 1; i >= 0; i-- {
		if ms.requestLog[i].Path == path {
			entry := ms.requestLog[i]
			return &entry, nil
		}
	}

	return nil, fmt.Errorf("no requests found for path: %s", path)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// record logs every request. The body is read up front and replaced so
// handlers can still parse forms.
func (ms *MockServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		ms.mu.RLock()
		delay := ms.delay
		ms.mu.RUnlock()
		if delay > 0 {
			time.Sleep(delay)
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		ms.logMutex.Lock()
		defer ms.logMutex.Unlock()
		ms.callCount[r.URL.Path]++
		ms.requestLog = append(ms.requestLog, RequestEntry{
			Method:       r.Method,
			Path:         r.URL.Path,
			Query:        r.URL.RawQuery,
			Headers:      r.Header.Clone(),
			Body:         string(body),
			Timestamp:    time.Now(),
			ResponseCode: rec.status,
		})
	})
}

// canned serves a registered response instead of the store.
func (ms *MockServer) canned(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		ms.mu.Lock()
		response, ok := ms.responses[key]
		if ok && response.MaxCalls > 0 {
			response.MaxCalls--
			if response.MaxCalls == 0 {
				delete(ms.responses, key)
			}
		}
		ms.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if response.Delay > 0 {
			time.Sleep(response.Delay)
		}
		for k, v := range response.Headers {
			w.Header().Set(k, v)
		}
		status := response.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response.Body))
	})
}

func (ms *MockServer) token(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("grant_type") != "client_credentials" || r.URL.Query().Get("client_secret") == "" {
		writeError(w, http.StatusBadRequest, 101, "Error validating application.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"access_token": MockToken, "token_type": "bearer"})
}

func (ms *MockServer) authorized(r *http.Request) bool {
	if r.Header.Get("Authorization") != "" {
		return true
	}
	_ = r.ParseForm()
	return r.Form.Get("access_token") != ""
}

func (ms *MockServer) getObject(w http.ResponseWriter, r *http.Request) {
	if !ms.authorized(r) {
		writeError(w, http.StatusBadRequest, 104, "An access token is required to request this resource.")
		return
	}
	id := chi.URLParam(r, "id")

	ms.mu.RLock()
	raw, ok := ms.objects[id]
	ms.mu.RUnlock()
	if !ok {
		writeRaw(w, http.StatusOK, "false")
		return
	}
	writeRaw(w, http.StatusOK, string(raw))
}

// lookupMany answers ?ids= and ?domains= with an object keyed by id.
func (ms *MockServer) lookupMany(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query().Get("ids")
	if ids == "" {
		ids = r.URL.Query().Get("domains")
	}
	if ids == "" {
		if domain := r.URL.Query().Get("domain"); domain != "" {
			ms.mu.RLock()
			raw, ok := ms.objects[domain]
			ms.mu.RUnlock()
			if ok {
				writeRaw(w, http.StatusOK, string(raw))
				return
			}
		}
		writeRaw(w, http.StatusOK, "false")
		return
	}

	out := make(map[string]json.RawMessage)
	ms.mu.RLock()
	for _, id := range strings.Split(ids, ",") {
		if raw, ok := ms.objects[id]; ok {
			out[id] = raw
		}
	}
	ms.mu.RUnlock()
	writeJSON(w, http.StatusOK, out)
}

func (ms *MockServer) updateObject(w http.ResponseWriter, r *http.Request) {
	if !ms.authorized(r) {
		writeError(w, http.StatusBadRequest, 104, "An access token is required to request this resource.")
		return
	}
	id := chi.URLParam(r, "id")

	ms.mu.RLock()
	_, ok := ms.objects[id]
	ms.mu.RUnlock()
	writeRaw(w, http.StatusOK, strconv.FormatBool(ok))
}

func (ms *MockServer) deleteObject(w http.ResponseWriter, r *http.Request) {
	if !ms.authorized(r) {
		writeError(w, http.StatusBadRequest, 104, "An access token is required to request this resource.")
		return
	}
	id := chi.URLParam(r, "id")

	ms.mu.Lock()
	_, ok := ms.objects[id]
	delete(ms.objects, id)
	ms.mu.Unlock()
	writeRaw(w, http.StatusOK, strconv.FormatBool(ok))
}

func (ms *MockServer) picture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ms.mu.RLock()
	location, ok := ms.pictures[id]
	ms.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, 803, "Some of the aliases you requested do not exist: "+id)
		return
	}
	if size := r.URL.Query().Get("type"); size != "" {
		location += "?type=" + size
	}
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusFound)
}

// getConnection pages through a connection with limit and after (an offset).
func (ms *MockServer) getConnection(w http.ResponseWriter, r *http.Request) {
	if !ms.authorized(r) {
		writeError(w, http.StatusBadRequest, 104, "An access token is required to request this resource.")
		return
	}
	key := chi.URLParam(r, "id") + "/" + chi.URLParam(r, "*")

	ms.mu.RLock()
	items := ms.connections[key]
	ms.mu.RUnlock()

	ms.writePage(w, r, items)
}

func (ms *MockServer) writePage(w http.ResponseWriter, r *http.Request, items []json.RawMessage) {
	q := r.URL.Query()
	offset, _ := strconv.Atoi(q.Get("after"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = len(items)
	}
	offset = min(max(offset, 0), len(items))
	end := min(offset+limit, len(items))

	page := map[string]any{"data": append([]json.RawMessage{}, items[offset:end]...)}
	paging := map[string]string{}
	if end < len(items) {
		paging["next"] = ms.cursorURL(r, end, limit)
	}
	if offset > 0 {
		paging["previous"] = ms.cursorURL(r, max(offset-limit, 0), limit)
	}
	if len(paging) > 0 {
		page["paging"] = paging
	}
	writeJSON(w, http.StatusOK, page)
}

func (ms *MockServer) cursorURL(r *http.Request, after, limit int) string {
	q := r.URL.Query()
	q.Del("access_token")
	q.Set("after", strconv.Itoa(after))
	q.Set("limit", strconv.Itoa(limit))
	return ms.server.URL + r.URL.Path + "?" + q.Encode()
}

// postConnection stores the form as a new object in the connection. The
// response is {"id": ...} for creating connections and true for the rest.
func (ms *MockServer) postConnection(w http.ResponseWriter, r *http.Request) {
	if !ms.authorized(r) {
		writeError(w, http.StatusBadRequest, 104, "An access token is required to request this resource.")
		return
	}
	connection := chi.URLParam(r, "*")
	key := chi.URLParam(r, "id") + "/" + connection

	fields := map[string]any{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, http.StatusBadRequest, 100, "invalid multipart body")
			return
		}
		for name := range r.MultipartForm.File {
			fields[name] = r.MultipartForm.File[name][0].Filename
		}
	} else if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, 100, "invalid form body")
		return
	}
	for name, values := range r.PostForm {
		if name != "access_token" {
			fields[name] = values[0]
		}
	}

	id := NewID()
	fields["id"] = id
	raw := mustJSON(fields)

	ms.mu.Lock()
	ms.connections[key] = append(ms.connections[key], raw)
	ms.objects[id] = raw
	ms.mu.Unlock()

	switch connection {
	case "accounts/test-users":
		writeJSON(w, http.StatusOK, map[string]string{
			"id":           id,
			"access_token": "test_user_token_" + id,
			"login_url":    ms.server.URL + "/login/" + id,
		})
	case "feed", "posts", "comments", "albums", "photos", "videos", "events", "notes",
		"friendlists", "checkins", "questions", "options", "achievements":
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
	default:
		writeRaw(w, http.StatusOK, "true")
	}
}

// deleteConnection removes the connection's items, or the single item named
// by the last path segment.
func (ms *MockServer) deleteConnection(w http.ResponseWriter, r *http.Request) {
	if !ms.authorized(r) {
		writeError(w, http.StatusBadRequest, 104, "An access token is required to request this resource.")
		return
	}
	key := chi.URLParam(r, "id") + "/" + chi.URLParam(r, "*")

	ms.mu.Lock()
	_, ok := ms.connections[key]
	delete(ms.connections, key)
	ms.mu.Unlock()
	writeRaw(w, http.StatusOK, strconv.FormatBool(ok))
}

// search filters every stored object on a substring of its "name".
func (ms *MockServer) search(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("q"))

	ms.mu.RLock()
	ids := make([]string, 0, len(ms.objects))
	for id := range ms.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var matches []json.RawMessage
	for _, id := range ids {
		var named struct {
			Name string `json:"name"`
		}
		raw := ms.objects[id]
		if json.Unmarshal(raw, &named) == nil && strings.Contains(strings.ToLower(named.Name), query) {
			matches = append(matches, raw)
		}
	}
	ms.mu.RUnlock()

	ms.writePage(w, r, matches)
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/javascript; charset=UTF-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	writeRaw(w, status, string(mustJSON(v)))
}

func writeError(w http.ResponseWriter, status, code int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message":    message,
			"type":       "OAuthException",
			"code":       code,
			"fbtrace_id": NewID(),
		},
	})
}

func mustJSON(v any) json.RawMessage {
	if raw, ok := v.(json.RawMessage); ok {
		return raw
	}
	if s, ok := v.(string); ok && json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("mock server: cannot encode %T: %v", v, err))
	}
	return b
}
