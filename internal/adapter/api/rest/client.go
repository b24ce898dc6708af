package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/The-Gleb/banner_admin/internal/editor"
)

var _ editor.BannerAPI = new(Client)

// Client talks to the banner REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type bannerJSON struct {
	ID        json.Number `json:"id"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle"`
	Image     string      `json:"image"`
	CTA       string      `json:"cta"`
	CTALink   string      `json:"ctaLink"`
	BgColor   string      `json:"bgColor"`
	Order     int         `json:"order"`
	IsActive  bool        `json:"isActive"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
}

func (b bannerJSON) record() editor.Record {
	return editor.Record{
		ID:        b.ID.String(),
		Title:     b.Title,
		Subtitle:  b.Subtitle,
		Image:     b.Image,
		CTA:       b.CTA,
		CTALink:   b.CTALink,
		BgColor:   b.BgColor,
		Order:     b.Order,
		IsActive:  b.IsActive,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

func (c *Client) FetchBannerByID(ctx context.Context, id string) (editor.FetchResult, error) {
	env, err := c.do(ctx, http.MethodGet, "/banners/"+url.PathEscape(id), nil, "")
	if err != nil {
		return editor.FetchResult{}, err
	}
	if !env.Success {
		return editor.FetchResult{Success: false, Error: env.Error}, nil
	}

	var b bannerJSON
	if err := json.Unmarshal(env.Data, &b); err != nil {
		return editor.FetchResult{}, fmt.Errorf("decode banner %s: %w", id, err)
	}
	record := b.record()

	return editor.FetchResult{Success: true, Data: &record}, nil
}

func (c *Client) UpdateBanner(ctx context.Context, id string, payload *editor.Payload) (editor.UpdateResult, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := payload.Encode(w); err != nil {
		return editor.UpdateResult{}, fmt.Errorf("encode banner %s: %w", id, err)
	}
	if err := w.Close(); err != nil {
		return editor.UpdateResult{}, fmt.Errorf("encode banner %s: %w", id, err)
	}

	env, err := c.do(ctx, http.MethodPut, "/banners/"+url.PathEscape(id), &body, w.FormDataContentType())
	if err != nil {
		return editor.UpdateResult{}, err
	}

	return editor.UpdateResult{Success: env.Success, Error: env.Error}, nil
}

func (c *Client) ListBanners(ctx context.Context, limit, offset int) ([]editor.Record, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	env, err := c.do(ctx, http.MethodGet, "/banners?"+q.Encode(), nil, "")
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("list banners: %s", env.Error)
	}

	var banners []bannerJSON
	if err := json.Unmarshal(env.Data, &banners); err != nil {
		return nil, fmt.Errorf("decode banners: %w", err)
	}

	records := make([]editor.Record, 0, len(banners))
	for _, b := range banners {
		records = append(records, b.record())
	}
	return records, nil
}

// do sends the request and decodes the response envelope. Any status is
// accepted as long as the body is an envelope.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("%s %s: status %d: decode response: %w", method, path, resp.StatusCode, err)
	}

	slog.Debug("banner api call", "method", method, "path", path, "status", resp.StatusCode, "success", env.Success)

	return env, nil
}
