// Package client is the gateway's typed pipe to the backend: it
// forwards a validated request and hands back the raw status and
// body for verbatim relay.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"shareit/app/echoServer/web"
	"shareit/util/httpx"
)

type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: httpx.Client(),
		log:  log,
	}
}

type Response struct {
	Status int
	Body   []byte
}

// Do forwards one request. userID 0 means the route carries no
// caller header (user CRUD).
func (c *Client) Do(ctx context.Context, method, path string, userID int64, query url.Values, body any) (*Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set(web.HeaderSharerUserID, strconv.FormatInt(userID, 10))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forward %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.log.Debug("forwarded", "method", method, "path", path, "status", resp.StatusCode)
	return &Response{Status: resp.StatusCode, Body: data}, nil
}
