package requests

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "v", r.URL.Query().Get("k"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	req, err := New().
		URL(server.URL + "/things").
		Param("k", "v").
		Header("Accept", "application/json").
		Method(GET).
		Build()
	require.NoError(t, err)

	resp, err := NewClient().Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "application/json", resp.ContentType())
	assert.Equal(t, `{"ok":true}`, resp.BodyString())
	assert.Greater(t, resp.Duration.Nanoseconds(), int64(0))
}

func TestClientDo_PostFormParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, ContentTypeForm, r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "a=1&b=2", string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	req, err := New().
		URL(server.URL).
		Param("a", "1").
		Param("b", "2").
		Method(POST).
		Build()
	require.NoError(t, err)

	resp, err := NewClient().Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestClientDo_PostRawBodyDropsParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"name":"x"}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := New().
		URL(server.URL).
		Param("dropped", "yes").
		Body([]byte(`{"name":"x"}`)).
		Method(POST).
		Build()
	require.NoError(t, err)

	_, err = NewClient().Do(context.Background(), req)
	require.NoError(t, err)
}

func TestClientDo_Gzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte("compressed payload"))
		_ = gz.Close()
	}))
	defer server.Close()

	req, err := New().
		URL(server.URL).
		EnableGzip().
		Method(GET).
		Build()
	require.NoError(t, err)

	resp, err := NewClient().Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "compressed payload", resp.BodyString())
}

func TestClientDo_NoGzipByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Accept-Encoding"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := New().URL(server.URL).Method(GET).Build()
	require.NoError(t, err)

	_, err = NewClient().Do(context.Background(), req)
	require.NoError(t, err)
}

func TestClientDo_RedirectNotFollowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	req, err := New().URL(server.URL).Method(GET).Build()
	require.NoError(t, err)

	resp, err := NewClient().Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/elsewhere", resp.Header("Location"))
}

func TestClientDo_ProxyCredentialsForPlainHTTP(t *testing.T) {
	// The test server acts as the proxy: for plain-HTTP targets the client
	// sends the absolute URL and the Proxy-Authorization header to it.
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic YWxpY2U6c2VjcmV0", r.Header.Get("Proxy-Authorization"))
		assert.Equal(t, "example.com", r.Host)
		_, _ = w.Write([]byte("via proxy"))
	}))
	defer proxy.Close()

	req, err := New().
		URL("http://example.com/resource").
		Proxy("http://alice:secret@" + proxy.Listener.Addr().String()).
		Method(GET).
		Build()
	require.NoError(t, err)

	resp, err := NewClient().Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "via proxy", resp.BodyString())
}

func TestClientDo_DefaultHeadersAndRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.Header.Get("Authorization"))
		id := r.Header.Get("X-Request-ID")
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "X-Request-ID should be a UUID, got %q", id)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(
		WithDefaultHeader("Authorization", "token"),
		WithRequestID(),
	)

	req, err := New().URL(server.URL).Method(GET).Build()
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req)
	require.NoError(t, err)
}

func TestConvenienceTerminals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Method))
	}))
	defer server.Close()

	out, err := New().URL(server.URL).Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", out)

	out, err = New().URL(server.URL).Delete(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "DELETE", out)

	out, err = New().URL(server.URL).BodyString("x").Put(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "PUT", out)
}

func TestConvenienceTerminal_Transformer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"n": 3}`))
	}))
	defer server.Close()

	out, err := New().
		URL(server.URL).
		Transform(JSONTransformer).
		Get(context.Background(), nil)
	require.NoError(t, err)

	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), m["n"])
}

func TestConvenienceTerminal_BuildErrorPropagates(t *testing.T) {
	_, err := New().URL("ftp://example.com/").Get(context.Background(), nil)
	var malformed *MalformedURLError
	require.ErrorAs(t, err, &malformed)
}
