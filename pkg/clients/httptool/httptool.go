package httptool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/wardacoder/COMPAIR/config"
	"github.com/wardacoder/COMPAIR/pkg/tools"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	HeaderContentType     = "Content-Type"
	HeaderContentTypeJSON = "application/json"
	HeaderAccept          = "Accept"
	HeaderAcceptEncoding  = "Accept-Encoding"
)

type HTTPClient struct {
	sync.RWMutex
	hc         http.Client
	baseAddr   string
	header     http.Header
	clientName string
}

func NewHTTPClient(baseAddr, clientName string, timeout time.Duration, transport *http.Transport) *HTTPClient {
	if !strings.HasPrefix(baseAddr, "http://") && !strings.HasPrefix(baseAddr, "https://") {
		baseAddr = "https://" + baseAddr
	}
	client := &HTTPClient{
		baseAddr:   baseAddr,
		hc:         http.Client{Timeout: timeout},
		clientName: clientName,
	}
	// nil 的 *http.Transport 塞进接口字段后 Do 会解引用空指针，
	// 留空让 http.Client 回落到 http.DefaultTransport
	if transport != nil {
		client.hc.Transport = transport
	}
	return client
}

func (hc *HTTPClient) SetHeader(key, value string) {
	hc.Lock()
	defer hc.Unlock()

	if hc.header == nil {
		hc.header = http.Header{}
	}

	hc.header.Set(key, value)
}

func (hc *HTTPClient) cloneHeader() http.Header {
	hc.RLock()
	defer hc.RUnlock()

	header := http.Header{}
	for k, vs := range hc.header {
		for _, v := range vs {
			header.Add(k, v)
		}
	}
	return header
}

// GetParamsWithContext GET 请求，params 拼到 query string
func (hc *HTTPClient) GetParamsWithContext(ctx context.Context, url string, params map[string][]string) ([]byte, error) {
	if len(params) > 0 {
		var paramSlice []string
		for key, valSlice := range params {
			for _, val := range valSlice {
				paramSlice = append(paramSlice, key+"="+val)
			}
		}
		url = url + "?" + strings.Join(paramSlice, "&")
	}
	return hc.fetchWithContext(ctx, http.MethodGet, url, nil)
}

// PostJSONWithContext POST 请求，obj 序列化为 JSON body
func (hc *HTTPClient) PostJSONWithContext(ctx context.Context, url string, obj interface{}) ([]byte, error) {
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return hc.fetchWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
}

func (hc *HTTPClient) fetchWithContext(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	targetURL := fmt.Sprintf("%v%v", hc.baseAddr, url)

	requestLog := config.GetInstance().GetBool(config.ClientsCommonRequestLog)
	now := time.Now()

	if requestLog && body != nil {
		b, _ := io.ReadAll(body)
		body = bytes.NewReader(b)
		log.Debugf("Sending %v request to %v", method, targetURL)
		log.Debugf("Body = %v", string(b))
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header = hc.cloneHeader()

	resp, err := hc.hc.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer tools.ErrorWithPrintContext(resp.Body.Close, "close response body")

	return hc.readResponse(resp, req, now)
}

func (hc *HTTPClient) readResponse(resp *http.Response, req *http.Request, start time.Time) ([]byte, error) {
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if config.GetInstance().GetBool(config.ClientsCommonRequestLog) {
		log.Debugf("%s| %s| %s| status: %v", hc.clientName, time.Since(start), req.URL.Path, resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s request %s failed, status: %v, body: %s",
			hc.clientName, req.URL.Path, resp.StatusCode, string(responseBody))
	}

	return responseBody, nil
}
