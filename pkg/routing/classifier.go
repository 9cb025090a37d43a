package routing

import (
	"sort"
	"strings"
)

type Classifier struct {
	rules []AllowlistRule
}

func NewClassifier(rules []AllowlistRule) *Classifier {
	copied := make([]AllowlistRule, 0, len(rules))
	for _, rule := range rules {
		rule.Prefix = strings.TrimSpace(rule.Prefix)
		if rule.Prefix == "" {
			continue
		}
		copied = append(copied, rule)
	}
	sort.SliceStable(copied, func(i, j int) bool {
		return len(copied[i].Prefix) > len(copied[j].Prefix)
	})
	return &Classifier{rules: copied}
}

func (c *Classifier) ClassifyPath(path string) RouteClass {
	for _, rule := range c.rules {
		if HasPathPrefixOnBoundary(path, rule.Prefix) {
			return rule.Class
		}
	}
	return RouteClassUI
}

// HasPathPrefixOnBoundary reports whether prefix matches path on a segment
// boundary, so /login matches /login/x but not /loginx.
func HasPathPrefixOnBoundary(path, prefix string) bool {
	switch {
	case prefix == "":
		return false
	case prefix == "/":
		return strings.HasPrefix(path, "/")
	case !strings.HasPrefix(path, prefix):
		return false
	case len(path) == len(prefix), strings.HasSuffix(prefix, "/"):
		return true
	default:
		return path[len(prefix)] == '/'
	}
}
