package brave_search

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/wardacoder/COMPAIR/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// httptool 要读全局配置，从包目录跑测试时指向仓库根下的 config.yaml
	if os.Getenv(config.OSConfigPath) == "" {
		_ = os.Setenv(config.OSConfigPath, "../../..")
	}
	os.Exit(m.Run())
}

const stubResponseBody = `{"web":{"results":[` +
	`{"title":"iPhone 15 review","description":"The iPhone 15 has a 6.1 inch display.","url":"https://example.com/iphone"},` +
	`{"title":"iPhone 15 specs","description":"A16 chip and USB-C.","url":"https://example.com/specs"}]}}`

func newTestClient(addr, token string) *ClientBraveSearch {
	return newClient(&Config{
		Addr:     addr,
		Token:    token,
		Count:    5,
		Snippets: 2,
		Timeout:  5,
	})
}

func TestSearchItemSuccess(t *testing.T) {
	var gotToken, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(headerSubscriptionToken)
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stubResponseBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	data := client.SearchItem(context.Background(), "iPhone 15", "Gadgets")

	require.NotNil(t, data)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "iPhone 15 Gadgets", gotQuery)
	assert.Equal(t, "iPhone 15 Gadgets", data.Query)
	require.Len(t, data.Results, 2)
	assert.Equal(t, "iPhone 15 review", data.Results[0].Title)
	assert.Equal(t, "https://example.com/iphone", data.Results[0].URL)
	assert.Equal(t, "The iPhone 15 has a 6.1 inch display.\nA16 chip and USB-C.", data.Summary)
}

func TestSearchItemGzipResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 请求声明了 gzip 才压缩返回，贴近 Brave 的真实行为
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			_, _ = w.Write([]byte(stubResponseBody))
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(stubResponseBody))
		_ = gz.Close()
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	data := client.SearchItem(context.Background(), "iPhone 15", "Gadgets")

	// transport 透明解压，压缩响应也要能正常解析
	require.NotNil(t, data)
	require.Len(t, data.Results, 2)
	assert.Equal(t, "The iPhone 15 has a 6.1 inch display.\nA16 chip and USB-C.", data.Summary)
}

func TestSearchItemWithoutToken(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(stubResponseBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	data := client.SearchItem(context.Background(), "iPhone 15", "Gadgets")

	// 未配置 key 时直接跳过搜索，不发请求
	assert.Nil(t, data)
	assert.Zero(t, calls)
}

func TestSearchItemServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	assert.Nil(t, client.SearchItem(context.Background(), "iPhone 15", "Gadgets"))
}

func TestSearchItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(stubResponseBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	results := client.SearchItems(context.Background(), []string{"iPhone 15", "Samsung S24"}, "Gadgets")

	require.Len(t, results, 2)
	require.NotNil(t, results["iPhone 15"])
	require.NotNil(t, results["Samsung S24"])
	assert.Equal(t, "Samsung S24 Gadgets", results["Samsung S24"].Query)
}
