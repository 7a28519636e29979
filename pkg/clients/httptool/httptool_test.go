package httptool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/wardacoder/COMPAIR/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if os.Getenv(config.OSConfigPath) == "" {
		_ = os.Setenv(config.OSConfigPath, "../../..")
	}
	os.Exit(m.Run())
}

func TestGetParamsWithContextNilTransport(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get(HeaderAccept)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	// 不传 transport 时走 http.DefaultTransport
	client := NewHTTPClient(server.URL, "test", time.Second*5, nil)
	client.SetHeader(HeaderAccept, HeaderContentTypeJSON)

	body, err := client.GetParamsWithContext(context.Background(), "", map[string][]string{"page": {"1"}})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, HeaderContentTypeJSON, gotAccept)
}

func TestPostJSONWithContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"created":true}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test", time.Second*5, nil)
	client.SetHeader(HeaderContentType, HeaderContentTypeJSON)

	body, err := client.PostJSONWithContext(context.Background(), "/things", map[string]string{"name": "a"})
	require.NoError(t, err)
	assert.Equal(t, `{"created":true}`, string(body))
}

func TestFetchNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test", time.Second*5, nil)

	body, err := client.GetParamsWithContext(context.Background(), "", nil)
	require.Error(t, err)
	assert.Nil(t, body)
	assert.Contains(t, err.Error(), "status: 500")
	assert.Contains(t, err.Error(), "boom")
}
