package rlstats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// doRequest sends one request and decodes the response. The service does
// not signal failure through HTTP status codes reliably, so the body is
// decoded as T first, unconditionally; only if that fails structurally is
// it re-read as the {code, message} error envelope. A structurally valid T
// always wins, even for edge cases like an empty list.
func doRequest[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	c.headers.CopyTo(&req.Header)
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("rlstats: encode request body: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	start := time.Now()
	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	status := resp.StatusCode()
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("request complete")

	if status == fasthttp.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	// resp's buffer is recycled on release; the payload must outlive it.
	payload := append([]byte(nil), resp.Body()...)

	var result T
	if err := decodeStrict(payload, &result); err == nil {
		return &result, nil
	}

	// Not a result. An envelope only counts when both keys are present,
	// otherwise a stray {} would turn into a zero-valued service error.
	var envelope struct {
		Code    *int    `json:"code"`
		Message *string `json:"message"`
	}
	err = decodeStrict(payload, &envelope)
	if err == nil && (envelope.Code == nil || envelope.Message == nil) {
		err = errors.New("incomplete error envelope")
	}
	if err != nil {
		return nil, &DecodeError{Body: payload, Err: err}
	}
	return nil, &APIError{Code: *envelope.Code, Message: *envelope.Message}
}

// decodeStrict rejects unknown fields and trailing data. Strictness is
// what makes the result/envelope shapes distinguishable: a permissive
// unmarshal would accept the envelope as a zero-valued result struct.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON value")
	}
	return nil
}
