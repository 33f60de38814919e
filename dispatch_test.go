package rlstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The service does not signal failure through status codes, so a valid
// result body wins no matter what status it rides in on.
func TestSuccessDecodeIgnoresStatusCode(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`[{"id":1,"name":"Steam"}]`))
	})

	platforms, err := c.GetPlatforms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Platform{{ID: 1, Name: "Steam"}}, platforms)
}

func TestEmptyListIsSuccessNotError(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	seasons, err := c.GetSeasons(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seasons)
}

func TestServiceErrorEnvelope(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":404,"message":"Player not found"}`))
	})

	p, err := c.GetPlayer(context.Background(), "missing", 1)
	assert.Nil(t, p)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, "Player not found", apiErr.Message)
}

func TestRateLimitedEmptyBody(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GetPlatforms(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)
}

// 429 short-circuits before any decode, so not even a body that parses as
// an error envelope changes the outcome.
func TestRateLimitedBeatsBodyDecode(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"code":429,"message":"slow down"}`))
	})

	_, err := c.GetPlatforms(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)

	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr, "rate limiting must not surface as a service error")
}

func TestMalformedResponse(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	})

	seasons, err := c.GetSeasons(context.Background())
	assert.Nil(t, seasons)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.JSONEq(t, `{"unexpected":"shape"}`, string(decErr.Body))
	assert.Error(t, decErr.Err)
}

func TestEnvelopeNeedsBothKeys(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":500}`))
	})

	_, err := c.GetPlayer(context.Background(), "x", 1)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)

	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
}

func TestEnvelopeNotMistakenForObjectResult(t *testing.T) {
	// An envelope must never come back as a zero-valued Player, even
	// though a permissive unmarshal would happily produce one.
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":401,"message":"Invalid API key"}`))
	})

	p, err := c.GetPlayer(context.Background(), "x", 1)
	assert.Nil(t, p)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := c.GetTiers(context.Background())

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := New("k", WithBaseURL(srv.URL))
	require.NoError(t, err)
	srv.Close()

	_, err = c.GetPlatforms(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, transportErr.Err)
}

func TestContextDeadlineSurfacesAsTransportError(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.GetPlatforms(ctx)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestDecodeStrictRejectsUnknownFields(t *testing.T) {
	var p Platform
	err := decodeStrict([]byte(`{"id":1,"name":"Steam","extra":true}`), &p)
	assert.Error(t, err)

	err = decodeStrict([]byte(`{"id":1,"name":"Steam"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, Platform{ID: 1, Name: "Steam"}, p)
}

func TestDecodeStrictRejectsTrailingData(t *testing.T) {
	var platforms []Platform
	err := decodeStrict([]byte(`[] {"id":1}`), &platforms)
	assert.Error(t, err)
}
