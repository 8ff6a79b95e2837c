package items

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xyz-asif/temuin/internal/pkg/pagination"
)

// TokenSource supplies the bearer token attached to store requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Repository talks to the remote item store over HTTP and normalizes its
// loose response shapes into typed results. It holds no cache and never
// retries; stale reads are acceptable but duplicate writes are not.
type Repository struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	log     *zap.Logger
}

// NewRepository creates a store client rooted at baseURL.
func NewRepository(baseURL string, client *http.Client, tokens TokenSource, log *zap.Logger) *Repository {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Repository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		tokens:  tokens,
		log:     log,
	}
}

// List fetches items matching the filter. The store may answer with a bare
// array or a {data: [...]} envelope; both normalize into one ResultSet.
func (r *Repository) List(ctx context.Context, spec FilterSpec) (*ResultSet, error) {
	spec = spec.Canonical()

	body, err := r.get(ctx, "/items", spec.Values())
	if err != nil {
		return nil, err
	}
	return decodeResultSet(body, spec.Page, spec.PageSize)
}

// Get fetches a single item by id.
func (r *Repository) Get(ctx context.Context, id string) (*Item, error) {
	body, err := r.get(ctx, "/items/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeItem(body)
}

// MyItems fetches the current session's own reports.
func (r *Repository) MyItems(ctx context.Context, kind Kind, status Status) (*ResultSet, error) {
	params := url.Values{}
	if kind == "" {
		kind = KindAll
	}
	params.Set("type", string(kind))
	if status != "" && status != StatusAll {
		params.Set("status", string(status))
	}

	body, err := r.get(ctx, "/items/me/items", params)
	if err != nil {
		return nil, err
	}
	return decodeResultSet(body, DefaultPage, DefaultPageSize)
}

// Create reports a new item. Structured fields and the optional photo go out
// together in a single multipart request; the photo payload is opaque.
func (r *Repository) Create(ctx context.Context, req *CreateItemRequest) (*Item, error) {
	form, contentType, err := encodeCreateForm(req)
	if err != nil {
		return nil, fetchErr(err, "failed to encode item form")
	}

	httpReq, err := r.newRequest(ctx, http.MethodPost, "/items", nil, form, contentType)
	if err != nil {
		return nil, fetchErr(err, "failed to build create request")
	}

	body, err := r.do(httpReq)
	if err != nil {
		return nil, err
	}
	return decodeItem(body)
}

// Update applies a partial update to an existing item.
func (r *Repository) Update(ctx context.Context, id string, req *UpdateItemRequest) (*Item, error) {
	form, contentType, err := encodeUpdateForm(req)
	if err != nil {
		return nil, fetchErr(err, "failed to encode item form")
	}

	httpReq, err := r.newRequest(ctx, http.MethodPut, "/items/"+url.PathEscape(id), nil, form, contentType)
	if err != nil {
		return nil, fetchErr(err, "failed to build update request")
	}

	body, err := r.do(httpReq)
	if err != nil {
		return nil, err
	}
	return decodeItem(body)
}

// UpdateStatus changes only the lifecycle status of an item.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status) (*Item, error) {
	payload, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return nil, fetchErr(err, "failed to encode status payload")
	}

	httpReq, err := r.newRequest(ctx, http.MethodPut, "/items/"+url.PathEscape(id)+"/status", nil, bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, fetchErr(err, "failed to build status request")
	}

	body, err := r.do(httpReq)
	if err != nil {
		return nil, err
	}
	return decodeItem(body)
}

// Delete removes an item. Deletion is terminal; on success the caller must
// treat the item as gone.
func (r *Repository) Delete(ctx context.Context, id string) error {
	httpReq, err := r.newRequest(ctx, http.MethodDelete, "/items/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return fetchErr(err, "failed to build delete request")
	}

	_, err = r.do(httpReq)
	return err
}

func (r *Repository) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := r.newRequest(ctx, http.MethodGet, path, params, nil, "")
	if err != nil {
		return nil, fetchErr(err, "failed to build request")
	}
	return r.do(req)
}

func (r *Repository) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := r.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.tokens != nil {
		if token := r.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (r *Repository) do(req *http.Request) ([]byte, error) {
	r.log.Debug("store request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("requestId", req.Header.Get("X-Request-ID")))

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn("store request failed", zap.Error(err))
		return nil, fetchErr(err, "failed to reach item store")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchErr(err, "failed to read store response")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	message := remoteMessage(body)
	r.log.Warn("store rejected request",
		zap.Int("status", resp.StatusCode),
		zap.String("message", message))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrForbidden, message)
	default:
		return nil, &FetchError{Message: fmt.Sprintf("item store returned %d: %s", resp.StatusCode, message)}
	}
}

// remoteMessage pulls a human-readable message out of an error body.
func remoteMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := firstNonEmpty(payload.Error, payload.Message); msg != "" {
			return msg
		}
	}
	if len(body) > 0 && len(body) <= 200 {
		return strings.TrimSpace(string(body))
	}
	return "request failed"
}

// listEnvelope matches the store's optional list wrapper.
type listEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Total *int64          `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func decodeResultSet(body []byte, page, pageSize int) (*ResultSet, error) {
	raw := body
	var total *int64

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
		total = env.Total
		if env.Page > 0 {
			page = env.Page
		}
		if env.Limit > 0 {
			pageSize = env.Limit
		}
	}

	var list []Item
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fetchErr(err, "malformed item list from store")
	}
	if list == nil {
		list = []Item{}
	}

	rs := &ResultSet{
		Items:    list,
		Page:     page,
		PageSize: pageSize,
	}
	if total != nil {
		rs.Total = *total
		rs.HasNext = pagination.New(page, pageSize, *total).HasNext
	} else {
		// Bare arrays carry no count; assume another page while full.
		rs.Total = int64(len(list))
		rs.HasNext = len(list) >= pageSize
	}
	return rs, nil
}

func decodeItem(body []byte) (*Item, error) {
	if len(body) == 0 {
		return nil, &FetchError{Message: "empty response from store"}
	}

	raw := body
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
	}

	var item Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fetchErr(err, "malformed item from store")
	}
	if item.ID == "" {
		return nil, ErrNotFound
	}
	return &item, nil
}

func encodeCreateForm(req *CreateItemRequest) (io.Reader, string, error) {
	fields := map[string]string{
		"title":        req.Title,
		"description":  req.Description,
		"item_type":    string(req.Kind),
		"location":     req.Location,
		"contact_info": req.ContactInfo,
	}
	if req.OccurredAt != nil {
		fields["date"] = req.OccurredAt.Format("2006-01-02")
	}
	return encodeItemForm(fields, req.Photo)
}

func encodeUpdateForm(req *UpdateItemRequest) (io.Reader, string, error) {
	fields := map[string]string{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Kind != nil {
		fields["item_type"] = string(*req.Kind)
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.ContactInfo != nil {
		fields["contact_info"] = *req.ContactInfo
	}
	if req.Status != nil {
		fields["status"] = string(*req.Status)
	}
	if req.OccurredAt != nil {
		fields["date"] = req.OccurredAt.Format("2006-01-02")
	}
	return encodeItemForm(fields, req.Photo)
}

func encodeItemForm(fields map[string]string, photo *PhotoAttachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if photo != nil {
		part, err := w.CreateFormFile("photo", photo.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, photo.Reader); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
