package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/config"
	"shareit/internal/middleware"
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/internal/user"
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

type mockUseCase struct {
	request.UseCase

	createFn     func(ctx context.Context, sc model.Scope, input request.CreateInput) (model.Request, error)
	listOwnFn    func(ctx context.Context, sc model.Scope) ([]model.Request, error)
	listOthersFn func(ctx context.Context, sc model.Scope, input request.ListInput) ([]model.Request, error)
	detailFn     func(ctx context.Context, sc model.Scope, id int64) (model.Request, error)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateInput) (model.Request, error) {
	return m.createFn(ctx, sc, input)
}

func (m *mockUseCase) ListOwn(ctx context.Context, sc model.Scope) ([]model.Request, error) {
	return m.listOwnFn(ctx, sc)
}

func (m *mockUseCase) ListOthers(ctx context.Context, sc model.Scope, input request.ListInput) ([]model.Request, error) {
	return m.listOthersFn(ctx, sc, input)
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Request, error) {
	return m.detailFn(ctx, sc, id)
}

func newTestRouter(uc request.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{})
	RegisterRoutes(r.Group(""), New(&mockLogger{}, uc), mw)
	return r
}

func serve(r *gin.Engine, method, path, sharer, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sharer != "" {
		req.Header.Set(model.SharerUserIDHeader, sharer)
	}
	r.ServeHTTP(w, req)
	return w
}

var created = time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{
		createFn: func(ctx context.Context, sc model.Scope, input request.CreateInput) (model.Request, error) {
			if sc.UserID == 99 {
				return model.Request{}, user.ErrUserNotFound
			}
			return model.Request{ID: 1, Description: input.Description, RequestorID: sc.UserID, Created: created, Items: []model.Item{}}, nil
		},
	}
	r := newTestRouter(uc)

	t.Run("Created", func(t *testing.T) {
		w := serve(r, nethttp.MethodPost, "/requests", "1", `{"description":"Need a drill"}`)
		if w.Code != nethttp.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["created"] != "2024-05-01T09:30:00" {
			t.Errorf("unexpected created %v", resp["created"])
		}
		if items, ok := resp["items"].([]any); !ok || len(items) != 0 {
			t.Errorf("expected empty items array, got %v", resp["items"])
		}
	})

	t.Run("Blank Description", func(t *testing.T) {
		if w := serve(r, nethttp.MethodPost, "/requests", "1", `{"description":"  "}`); w.Code != nethttp.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Missing Sharer", func(t *testing.T) {
		if w := serve(r, nethttp.MethodPost, "/requests", "", `{"description":"x"}`); w.Code != nethttp.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		if w := serve(r, nethttp.MethodPost, "/requests", "99", `{"description":"x"}`); w.Code != nethttp.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestListHandlers(t *testing.T) {
	reqID := int64(1)
	var gotList request.ListInput
	uc := &mockUseCase{
		listOwnFn: func(ctx context.Context, sc model.Scope) ([]model.Request, error) {
			return []model.Request{{ID: 1, Description: "Need a drill", Created: created, Items: []model.Item{
				{ID: 10, Name: "Drill", Available: true, OwnerID: 2, RequestID: &reqID},
			}}}, nil
		},
		listOthersFn: func(ctx context.Context, sc model.Scope, input request.ListInput) ([]model.Request, error) {
			gotList = input
			return []model.Request{}, nil
		},
	}
	r := newTestRouter(uc)

	t.Run("Own", func(t *testing.T) {
		w := serve(r, nethttp.MethodGet, "/requests", "1", "")
		if w.Code != nethttp.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			Items []struct {
				ID        int64  `json:"id"`
				OwnerID   int64  `json:"ownerId"`
				RequestID *int64 `json:"requestId"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(resp) != 1 || len(resp[0].Items) != 1 || resp[0].Items[0].OwnerID != 2 || *resp[0].Items[0].RequestID != 1 {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("Others Defaults", func(t *testing.T) {
		w := serve(r, nethttp.MethodGet, "/requests/all", "1", "")
		if w.Code != nethttp.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Errorf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
		if gotList.From != 0 || gotList.Size != 10 {
			t.Errorf("expected defaults from=0 size=10, got %+v", gotList)
		}
	})

	t.Run("Others Invalid Size", func(t *testing.T) {
		if w := serve(r, nethttp.MethodGet, "/requests/all?size=0", "1", ""); w.Code != nethttp.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	uc := &mockUseCase{
		detailFn: func(ctx context.Context, sc model.Scope, id int64) (model.Request, error) {
			if id != 1 {
				return model.Request{}, request.ErrRequestNotFound
			}
			return model.Request{ID: 1, Description: "Need a drill", Created: created}, nil
		},
	}
	r := newTestRouter(uc)

	if w := serve(r, nethttp.MethodGet, "/requests/1", "2", ""); w.Code != nethttp.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w := serve(r, nethttp.MethodGet, "/requests/5", "2", ""); w.Code != nethttp.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if w := serve(r, nethttp.MethodGet, "/requests/abc", "2", ""); w.Code != nethttp.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
