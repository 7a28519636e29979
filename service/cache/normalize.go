package cache

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/wardacoder/COMPAIR/model"

	"github.com/pkg/errors"
)

// NormalizeItems 缓存键用的条目归一化：去首尾空白、转小写、排序。
// 返回新切片，不改动入参。
func NormalizeItems(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(item)))
	}
	sort.Strings(normalized)
	return normalized
}

// PreferencesKey 偏好的规范化 JSON 串，nil 偏好归一化为空映射。
// json.Marshal 对 map 键排序，同样的偏好总是得到同一个串。
func PreferencesKey(preferences *model.UserPreferences) (string, error) {
	data, err := json.Marshal(preferences.ToMap())
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(data), nil
}

// canonicalizeStoredPreferences 把库里的偏好 JSON 重排成规范形式再比较
func canonicalizeStoredPreferences(stored string) (string, error) {
	if stored == "" {
		stored = "{}"
	}

	var prefs map[string]interface{}
	if err := json.Unmarshal([]byte(stored), &prefs); err != nil {
		return "", errors.WithStack(err)
	}
	if prefs == nil {
		prefs = map[string]interface{}{}
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(data), nil
}

func sameItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
