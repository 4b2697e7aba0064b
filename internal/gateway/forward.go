package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
)

const maxResponseBytes = 10 << 20

// serverClient relays validated calls to the server.
type serverClient struct {
	baseURL *url.URL
	client  *http.Client
}

type forwardReq struct {
	Method    string
	Path      string
	Query     url.Values
	SharerID  int64
	RequestID string
	Body      any
}

type forwardResp struct {
	Status      int
	ContentType string
	Body        []byte
}

func (s *serverClient) Do(ctx context.Context, fr forwardReq) (forwardResp, error) {
	u := *s.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + fr.Path
	u.RawQuery = fr.Query.Encode()

	var body io.Reader
	if fr.Body != nil {
		b, err := json.Marshal(fr.Body)
		if err != nil {
			return forwardResp{}, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, fr.Method, u.String(), body)
	if err != nil {
		return forwardResp{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if fr.Body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if fr.SharerID != 0 {
		req.Header.Set(model.SharerUserIDHeader, strconv.FormatInt(fr.SharerID, 10))
	}
	if fr.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, fr.RequestID)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return forwardResp{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return forwardResp{}, fmt.Errorf("read response: %w", err)
	}
	return forwardResp{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get(echo.HeaderContentType),
		Body:        b,
	}, nil
}

// forward relays fr and copies the server's status and body back unchanged.
func (g *Gateway) forward(c echo.Context, fr forwardReq) error {
	ctx := c.Request().Context()
	fr.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)

	resp, err := g.server.Do(ctx, fr)
	if err != nil {
		g.l.Errorf(ctx, "gateway.forward %s %s: %v", fr.Method, fr.Path, err)
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "server unavailable")
	}

	if len(resp.Body) == 0 {
		return c.NoContent(resp.Status)
	}
	contentType := resp.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Blob(resp.Status, contentType, resp.Body)
}
