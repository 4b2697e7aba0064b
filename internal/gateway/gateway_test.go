package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"shareit/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var testNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.Local)

type recordedCall struct {
	Method    string
	Path      string
	Query     string
	Sharer    string
	RequestID string
	Body      string
}

// fakeServer records forwarded calls and answers with a fixed status and body.
type fakeServer struct {
	mu     sync.Mutex
	calls  []recordedCall
	status int
	body   string
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Sharer:    r.Header.Get(model.SharerUserIDHeader),
		RequestID: r.Header.Get("X-Request-Id"),
		Body:      string(b),
	})
	f.mu.Unlock()

	if f.body == "" {
		w.WriteHeader(f.status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func (f *fakeServer) lastCall(t *testing.T) recordedCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatalf("expected the call to be forwarded")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeServer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestGateway(t *testing.T, status int, body string) (*Gateway, *fakeServer) {
	t.Helper()
	fake := &fakeServer{status: status, body: body}
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	g, err := New(&mockLogger{}, Config{Port: 8080, ServerURL: ts.URL, ClientTimeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.now = func() time.Time { return testNow }
	return g, fake
}

func do(g *Gateway, method, path, sharer, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sharer != "" {
		req.Header.Set(model.SharerUserIDHeader, sharer)
	}
	g.e.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return resp.Error
}

func TestNew(t *testing.T) {
	for name, cfg := range map[string]Config{
		"Missing Port":     {ServerURL: "http://localhost:9090"},
		"Relative URL":     {Port: 8080, ServerURL: "localhost:9090"},
		"Missing Host URL": {Port: 8080, ServerURL: "http://"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, cfg); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestUsers(t *testing.T) {
	t.Run("Create Forwards And Passes Status Through", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusCreated, `{"id":1,"name":"Alice","email":"alice@example.com"}`)

		w := do(g, http.MethodPost, "/users", "", `{"name":"Alice","email":"alice@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"id":1`) {
			t.Errorf("expected server body, got %s", w.Body.String())
		}
		call := fake.lastCall(t)
		if call.Method != http.MethodPost || call.Path != "/users" || call.RequestID == "" {
			t.Errorf("unexpected call %+v", call)
		}
		if w.Header().Get("X-Request-Id") != call.RequestID {
			t.Errorf("request id must be propagated")
		}
	})

	for name, body := range map[string]string{
		"Blank Name":    `{"name":"  ","email":"alice@example.com"}`,
		"Invalid Email": `{"name":"Alice","email":"not-an-email"}`,
		"Missing Email": `{"name":"Alice"}`,
		"Broken JSON":   `{"name":`,
	} {
		t.Run("Create "+name, func(t *testing.T) {
			g, fake := newTestGateway(t, http.StatusCreated, `{}`)
			w := do(g, http.MethodPost, "/users", "", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if fake.callCount() != 0 {
				t.Errorf("invalid input must not reach the server")
			}
		})
	}

	t.Run("Update Keeps Absent Fields Absent", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusOK, `{"id":1}`)
		w := do(g, http.MethodPatch, "/users/1", "", `{"email":"new@example.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := fake.lastCall(t).Body; body != `{"email":"new@example.com"}` {
			t.Errorf("unexpected forwarded body %s", body)
		}
	})

	t.Run("Update Empty Name", func(t *testing.T) {
		g, _ := newTestGateway(t, http.StatusOK, `{}`)
		if w := do(g, http.MethodPatch, "/users/1", "", `{"name":""}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Delete Empty Body", func(t *testing.T) {
		g, _ := newTestGateway(t, http.StatusOK, "")
		w := do(g, http.MethodDelete, "/users/3", "", "")
		if w.Code != http.StatusOK || w.Body.Len() != 0 {
			t.Errorf("expected 200 with empty body, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("Server Error Passes Through", func(t *testing.T) {
		g, _ := newTestGateway(t, http.StatusConflict, `{"error":"email already in use"}`)
		w := do(g, http.MethodPost, "/users", "", `{"name":"Alice","email":"alice@example.com"}`)
		if w.Code != http.StatusConflict || errorMessage(t, w) != "email already in use" {
			t.Errorf("expected server 409 to pass through, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestSharerRequired(t *testing.T) {
	g, fake := newTestGateway(t, http.StatusOK, `[]`)

	for _, sharer := range []string{"", "abc", "0"} {
		w := do(g, http.MethodGet, "/items", sharer, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("sharer %q: expected 400, got %d", sharer, w.Code)
		}
	}
	if fake.callCount() != 0 {
		t.Errorf("calls without a valid sharer must not be forwarded")
	}
}

func TestItems(t *testing.T) {
	t.Run("Create Requires Available", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusCreated, `{}`)
		w := do(g, http.MethodPost, "/items", "1", `{"name":"Drill","description":"Cordless"}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(errorMessage(t, w), "available") {
			t.Errorf("expected 400 naming available, got %d %s", w.Code, w.Body.String())
		}
		if fake.callCount() != 0 {
			t.Errorf("must not forward")
		}
	})

	t.Run("Create Forwards Sharer", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusCreated, `{"id":1}`)
		w := do(g, http.MethodPost, "/items", "7", `{"name":"Drill","description":"Cordless","available":false}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		call := fake.lastCall(t)
		if call.Sharer != "7" || !strings.Contains(call.Body, `"available":false`) {
			t.Errorf("unexpected call %+v", call)
		}
	})

	t.Run("Search Defaults", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusOK, `[]`)
		if w := do(g, http.MethodGet, "/items/search?text=drill", "1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if q := fake.lastCall(t).Query; q != "from=0&size=10&text=drill" {
			t.Errorf("unexpected query %q", q)
		}
	})

	t.Run("Negative From", func(t *testing.T) {
		g, _ := newTestGateway(t, http.StatusOK, `[]`)
		if w := do(g, http.MethodGet, "/items?from=-1", "1", ""); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Zero Size", func(t *testing.T) {
		g, _ := newTestGateway(t, http.StatusOK, `[]`)
		if w := do(g, http.MethodGet, "/items?size=0", "1", ""); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Blank Comment", func(t *testing.T) {
		g, _ := newTestGateway(t, http.StatusCreated, `{}`)
		if w := do(g, http.MethodPost, "/items/1/comment", "1", `{"text":" "}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestBookings(t *testing.T) {
	future := func(d time.Duration) string { return testNow.Add(d).Format("2006-01-02T15:04:05") }

	t.Run("Create Valid", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusCreated, `{"id":1,"status":"WAITING"}`)
		body := `{"itemId":1,"start":"` + future(time.Hour) + `","end":"` + future(2*time.Hour) + `"}`
		w := do(g, http.MethodPost, "/bookings", "2", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if call := fake.lastCall(t); !strings.Contains(call.Body, future(time.Hour)) {
			t.Errorf("expected start to be forwarded, got %s", call.Body)
		}
	})

	cases := map[string]string{
		"Start After End":  `{"itemId":1,"start":"` + future(2*time.Hour) + `","end":"` + future(time.Hour) + `"}`,
		"Start Equals End": `{"itemId":1,"start":"` + future(time.Hour) + `","end":"` + future(time.Hour) + `"}`,
		"Start In Past":    `{"itemId":1,"start":"` + future(-time.Hour) + `","end":"` + future(time.Hour) + `"}`,
		"Missing End":      `{"itemId":1,"start":"` + future(time.Hour) + `"}`,
		"Missing Item":     `{"start":"` + future(time.Hour) + `","end":"` + future(2*time.Hour) + `"}`,
		"Bad Date":         `{"itemId":1,"start":"tomorrow","end":"` + future(2*time.Hour) + `"}`,
	}
	for name, body := range cases {
		t.Run("Create "+name, func(t *testing.T) {
			g, fake := newTestGateway(t, http.StatusCreated, `{}`)
			if w := do(g, http.MethodPost, "/bookings", "2", body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if fake.callCount() != 0 {
				t.Errorf("must not forward")
			}
		})
	}

	t.Run("List Unknown State", func(t *testing.T) {
		g, _ := newTestGateway(t, http.StatusOK, `[]`)
		w := do(g, http.MethodGet, "/bookings?state=SOMETIME", "2", "")
		if w.Code != http.StatusBadRequest || errorMessage(t, w) != "Unknown state: SOMETIME" {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Owner List Normalizes State", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusOK, `[]`)
		if w := do(g, http.MethodGet, "/bookings/owner?state=past&from=5&size=5", "1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		call := fake.lastCall(t)
		if call.Path != "/bookings/owner" || call.Query != "from=5&size=5&state=PAST" {
			t.Errorf("unexpected call %+v", call)
		}
	})

	t.Run("Decide Requires Approved", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusOK, `{}`)
		if w := do(g, http.MethodPatch, "/bookings/1", "1", ""); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if w := do(g, http.MethodPatch, "/bookings/1?approved=true", "1", ""); w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if q := fake.lastCall(t).Query; q != "approved=true" {
			t.Errorf("unexpected query %q", q)
		}
	})

	t.Run("Cancel", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusOK, `{"status":"CANCELED"}`)
		if w := do(g, http.MethodPatch, "/bookings/4/cancel", "2", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if call := fake.lastCall(t); call.Path != "/bookings/4/cancel" || call.Sharer != "2" {
			t.Errorf("unexpected call %+v", call)
		}
	})
}

func TestRequests(t *testing.T) {
	t.Run("Blank Description", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusCreated, `{}`)
		if w := do(g, http.MethodPost, "/requests", "1", `{"description":""}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if fake.callCount() != 0 {
			t.Errorf("must not forward")
		}
	})

	t.Run("All Forwards Page", func(t *testing.T) {
		g, fake := newTestGateway(t, http.StatusOK, `[]`)
		if w := do(g, http.MethodGet, "/requests/all?size=3", "1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if q := fake.lastCall(t).Query; q != "from=0&size=3" {
			t.Errorf("unexpected query %q", q)
		}
	})
}

func TestServerUnavailable(t *testing.T) {
	g, err := New(&mockLogger{}, Config{Port: 8080, ServerURL: "http://127.0.0.1:1", ClientTimeout: time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil).WithContext(context.Background())
	g.e.ServeHTTP(w, req)
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
