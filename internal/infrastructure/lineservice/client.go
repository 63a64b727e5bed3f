// Package lineservice is the HTTP client of the remote estimate-line service.
package lineservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	request "estimate_editor/internal/adapter/http/dto/request"
	response "estimate_editor/internal/adapter/http/dto/response"
	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"
	"estimate_editor/internal/usecase/interfaces"
	"estimate_editor/pkg"

	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

// HTTPClient implements interfaces.ILineService over the /v1 line routes. Requests are
// throttled by a token bucket shared by every session of the process.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

var _ interfaces.ILineService = (*HTTPClient)(nil)

type Option func(*HTTPClient)

func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithRateLimit caps the request rate. rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewHTTPClient builds a client for baseURL, e.g. "http://lines.internal:8080/v1".
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type fieldsBody struct {
	Fields map[string]any `json:"fields"`
}

type bulkItemBody struct {
	LineID string         `json:"line_id"`
	Fields map[string]any `json:"fields"`
}

type bulkBody struct {
	Items []bulkItemBody `json:"items"`
}

func (c *HTTPClient) Create(ctx context.Context, line entities.EstimateLine) (entities.EstimateLine, error) {
	var out response.LineResponse
	if err := c.do(ctx, http.MethodPost, c.linesPath(line.EstimateID), toLineRequest(line), &out); err != nil {
		return entities.EstimateLine{}, err
	}
	return out.ToEntity(), nil
}

func (c *HTTPClient) Update(ctx context.Context, estimateID, id string, fields entities.FieldSet) (entities.EstimateLine, error) {
	var out response.LineResponse
	if err := c.do(ctx, http.MethodPatch, c.linePath(estimateID, id), fieldsBody{Fields: fields.Wire()}, &out); err != nil {
		return entities.EstimateLine{}, err
	}
	return out.ToEntity(), nil
}

func (c *HTTPClient) Delete(ctx context.Context, estimateID, id string) error {
	return c.do(ctx, http.MethodDelete, c.linePath(estimateID, id), nil, nil)
}

func (c *HTTPClient) List(ctx context.Context, estimateID string) ([]entities.EstimateLine, error) {
	var out response.LinesResponse
	if err := c.do(ctx, http.MethodGet, c.linesPath(estimateID), nil, &out); err != nil {
		return nil, err
	}
	lines := make([]entities.EstimateLine, 0, len(out.Lines))
	for _, l := range out.Lines {
		lines = append(lines, l.ToEntity())
	}
	return lines, nil
}

func (c *HTTPClient) BulkUpdate(ctx context.Context, estimateID string, items []entities.LineUpdate) ([]entities.LineUpdateResult, error) {
	body := bulkBody{Items: make([]bulkItemBody, 0, len(items))}
	for _, it := range items {
		body.Items = append(body.Items, bulkItemBody{LineID: it.LineID, Fields: it.Fields.Wire()})
	}

	var out response.BulkUpdateResponse
	if err := c.do(ctx, http.MethodPost, c.linesPath(estimateID)+"/bulk", body, &out); err != nil {
		return nil, err
	}

	results := make([]entities.LineUpdateResult, 0, len(out.Results))
	for _, r := range out.Results {
		res := entities.LineUpdateResult{LineID: r.LineID}
		switch {
		case r.Error != nil:
			res.Err = lineerr.FromCode(r.Error.Code, r.Error.Field, r.Error.Message)
		case r.Line != nil:
			res.Line = r.Line.ToEntity()
		default:
			res.Err = lineerr.Network(fmt.Errorf("empty result for line %s", r.LineID))
		}
		results = append(results, res)
	}
	return results, nil
}

func (c *HTTPClient) linesPath(estimateID string) string {
	return "/estimates/" + url.PathEscape(estimateID) + "/lines"
}

func (c *HTTPClient) linePath(estimateID, id string) string {
	return c.linesPath(estimateID) + "/" + url.PathEscape(id)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return lineerr.Network(err)
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("lineservice: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("lineservice: build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return lineerr.Network(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := statusError(resp)
		log.Printf("[lineservice][client] request failed method=%s path=%s status=%d kind=%s", method, path, resp.StatusCode, lineerr.Classify(err))
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return lineerr.Network(fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

// statusError rebuilds the failure from the error body, falling back to the status
// code when the body carries no known code.
func statusError(resp *http.Response) error {
	var body pkg.HTTPError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch body.Code {
	case lineerr.CodeValidation, lineerr.CodeNotFound, lineerr.CodePermission, lineerr.CodeConflict:
		return lineerr.FromCode(body.Code, body.Field, msg)
	}
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return lineerr.FromCode(lineerr.CodeValidation, body.Field, msg)
	case http.StatusNotFound:
		return lineerr.FromCode(lineerr.CodeNotFound, "", msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return lineerr.FromCode(lineerr.CodePermission, "", msg)
	case http.StatusConflict:
		return lineerr.FromCode(lineerr.CodeConflict, "", msg)
	}
	return lineerr.Network(fmt.Errorf("status %d: %s", resp.StatusCode, msg))
}

func toLineRequest(l entities.EstimateLine) request.LineRequest {
	quantity, included := l.Quantity, l.IsIncluded
	return request.LineRequest{
		SequenceNumber: l.SequenceNumber,
		OperationCode:  string(l.OperationCode),
		Description:    l.Description,
		PartType:       string(l.PartType),
		PartNumber:     l.PartNumber,
		PartCost:       l.PartCost,
		Quantity:       &quantity,
		StripFitHours:  l.StripFitHours,
		RepairHours:    l.RepairHours,
		PaintHours:     l.PaintHours,
		SubletCost:     l.SubletCost,
		IsIncluded:     &included,
		LineNotes:      l.LineNotes,
	}
}
