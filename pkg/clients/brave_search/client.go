package brave_search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/wardacoder/COMPAIR/config"
	"github.com/wardacoder/COMPAIR/constant"
	"github.com/wardacoder/COMPAIR/pkg/clients/httptool"

	log "github.com/sirupsen/logrus"
)

const (
	clientNameBraveSearch = "brave_search"

	headerSubscriptionToken = "X-Subscription-Token"
)

type ClientBraveSearch struct {
	config *Config
	hc     *httptool.HTTPClient
}

var (
	instance *ClientBraveSearch
	once     sync.Once
)

func GetInstance() *ClientBraveSearch {
	once.Do(func() {
		cfg := config.GetInstance()
		conf := &Config{
			Addr:     cfg.GetStringOrDefault(config.ClientBraveSearchAddr, constant.DefaultBraveSearchAddr),
			Token:    cfg.GetString(config.ClientBraveSearchKeyEnv),
			Count:    cfg.GetIntOrDefault(config.ClientBraveSearchCount, constant.DefaultBraveSearchCount),
			Snippets: cfg.GetIntOrDefault(config.ClientBraveSearchSnippets, constant.DefaultBraveSearchSnippets),
			Timeout:  cfg.GetIntOrDefault(config.ClientBraveSearchTimeout, constant.DefaultBraveSearchTimeout),
		}

		instance = newClient(conf)
	})
	return instance
}

// newClient 按给定配置构建客户端，测试用它指向本地 stub 服务。
// 不设置 Accept-Encoding，由 transport 自动协商并透明解压 gzip。
func newClient(conf *Config) *ClientBraveSearch {
	hc := httptool.NewHTTPClient(conf.Addr, clientNameBraveSearch, time.Second*time.Duration(conf.Timeout), nil)
	hc.SetHeader(httptool.HeaderAccept, httptool.HeaderContentTypeJSON)
	hc.SetHeader(headerSubscriptionToken, conf.Token)

	return &ClientBraveSearch{
		config: conf,
		hc:     hc,
	}
}

// SearchItem 查询单个条目的实时搜索结果。
// 未配置 API key 或搜索失败时返回 nil，调用方按"该条目没有检索佐证"处理，不当错误。
func (zc *ClientBraveSearch) SearchItem(ctx context.Context, itemName, category string) *SearchData {
	if zc.config.Token == "" {
		log.Warn("Brave API key not set - skipping search")
		return nil
	}

	query := itemName
	if category != "" {
		query = fmt.Sprintf("%s %s", itemName, category)
	}

	params := map[string][]string{
		"q":                {url.QueryEscape(query)},
		"count":            {strconv.Itoa(zc.config.Count)},
		"search_lang":      {"en"},
		"country":          {"US"},
		"safesearch":       {"moderate"},
		"freshness":        {"py"},
		"text_decorations": {"false"},
		"spellcheck":       {"true"},
	}

	body, err := zc.hc.GetParamsWithContext(ctx, "", params)
	if err != nil {
		log.Errorf("%s search error for %s: %v", clientNameBraveSearch, itemName, err)
		return nil
	}

	var resp braveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Errorf("%s response unmarshal error for %s: %v", clientNameBraveSearch, itemName, err)
		return nil
	}

	searchData := &SearchData{
		Query:   query,
		Results: []SearchResult{},
	}

	var snippets []string
	for i, result := range resp.Web.Results {
		if i >= zc.config.Count {
			break
		}
		if result.Description != "" {
			snippets = append(snippets, result.Description)
		}
		searchData.Results = append(searchData.Results, SearchResult{
			Title:       result.Title,
			Description: result.Description,
			URL:         result.URL,
		})
	}

	if len(snippets) > 0 {
		n := zc.config.Snippets
		if n > len(snippets) {
			n = len(snippets)
		}
		searchData.Summary = strings.Join(snippets[:n], "\n")
	}

	log.Infof("%s search completed for %s: %d results, %d snippets",
		clientNameBraveSearch, itemName, len(resp.Web.Results), len(snippets))

	return searchData
}

// SearchItems 逐个条目查询，返回条目名到搜索结果的映射
func (zc *ClientBraveSearch) SearchItems(ctx context.Context, items []string, category string) map[string]*SearchData {
	results := make(map[string]*SearchData, len(items))
	for _, item := range items {
		results[item] = zc.SearchItem(ctx, item, category)
	}
	return results
}
