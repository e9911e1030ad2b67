package cmd

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/requests/packages/requests"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	return ee.code
}

func TestSendFlagsBuilder_ParamsAndHeaders(t *testing.T) {
	f := &sendFlags{
		params:  []string{"a=1", "b=two words"},
		headers: []string{"Accept: application/json", "X-Token:abc"},
	}

	b, err := f.builder("http://example.com/")
	require.NoError(t, err)

	req, err := b.Method(requests.GET).Build()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/?a=1&b=two+words", req.URL)
	assert.Equal(t, "application/json", req.Header("Accept"))
	assert.Equal(t, "abc", req.Header("X-Token"))
}

func TestSendFlagsBuilder_InvalidParam(t *testing.T) {
	f := &sendFlags{params: []string{"missing-equals"}}
	_, err := f.builder("http://example.com/")
	assert.Equal(t, ExitUsageError, exitCode(t, err))
}

func TestSendFlagsBuilder_InvalidHeader(t *testing.T) {
	f := &sendFlags{headers: []string{"no-colon"}}
	_, err := f.builder("http://example.com/")
	assert.Equal(t, ExitUsageError, exitCode(t, err))
}

func TestSendFlagsBuilder_BodyConflict(t *testing.T) {
	f := &sendFlags{data: "x", dataFile: "y"}
	_, err := f.builder("http://example.com/")
	assert.Equal(t, ExitUsageError, exitCode(t, err))
}

func TestClassifyBuildError(t *testing.T) {
	_, err := requests.New().URL("ftp://x/").Method(requests.GET).Build()
	require.Error(t, err)

	classified := classifyBuildError(err)
	assert.Equal(t, ExitConfigError, exitCode(t, classified))

	var malformed *requests.MalformedURLError
	assert.True(t, errors.As(classified, &malformed), "original error should stay unwrappable")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGetCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		_, _ = w.Write([]byte(`{"status":"up"}`))
	}))
	defer server.Close()

	out, err := execute(t, "get", server.URL, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "200 OK")
	assert.Contains(t, out, `{"status":"up"}`)
}

func TestPostCommand_FormEncodesParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "user=alice", string(body))
		assert.Equal(t, requests.ContentTypeForm, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := execute(t, "post", server.URL, "--no-color", "-p", "user=alice")
	require.NoError(t, err)
}

func TestGetCommand_HTTPFailureExitCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := execute(t, "get", server.URL, "--no-color")
	assert.Equal(t, ExitHTTPFailure, exitCode(t, err))
}

func TestGetCommand_MalformedURLExitCode(t *testing.T) {
	_, err := execute(t, "get", "ftp://example.com/", "--no-color")
	assert.Equal(t, ExitConfigError, exitCode(t, err))
}

// Runs last: flag values persist on the shared command instances, so the
// --extract flag would leak into the tests above.
func TestGetCommand_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"name":"alice"}}`))
	}))
	defer server.Close()

	out, err := execute(t, "get", server.URL, "--no-color", "--extract", "user.name")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, "{")
}
