package kma

import (
	"strconv"
	"strings"

	"github.com/yeonwoo-j/kma-midterm-forecast/internal/common"
)

// extractPath reads a value out of a decoded JSON tree by a dotted path
// such as "response.body.items.item[0].wfSv". Segments may carry a single
// array index. Any missing key, wrong-shaped node, or out-of-range index
// along the way yields nil rather than an error; the feed omits nodes
// freely and callers treat nil as absence.
func extractPath(tree map[string]any, path string) any {
	var current any = tree

	for _, part := range strings.Split(path, ".") {
		if current == nil {
			return nil
		}

		if strings.Contains(part, "[") && strings.Contains(part, "]") {
			name := common.Before(part, "[")
			index, err := strconv.Atoi(common.Before(common.After(part, "["), "]"))
			if err != nil {
				index = 0
			}

			node, ok := current.(map[string]any)
			if !ok {
				return nil
			}
			list, ok := node[name].([]any)
			if !ok {
				return nil
			}
			if index < 0 || index >= len(list) {
				return nil
			}
			current = list[index]
			continue
		}

		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = node[part]
	}

	return current
}

// pathInt extracts a numeric field as *int, nil when absent or not a
// number. encoding/json decodes all JSON numbers as float64.
func pathInt(tree map[string]any, path string) *int {
	f, ok := extractPath(tree, path).(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

// pathString extracts a text field as *string, nil when absent or blank.
func pathString(tree map[string]any, path string) *string {
	s, ok := extractPath(tree, path).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
