package routing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type RouteClass string

const (
	RouteClassUI       RouteClass = "ui"
	RouteClassAuthn    RouteClass = "authn"
	RouteClassOps      RouteClass = "ops"
	RouteClassStatic   RouteClass = "static"
	RouteClassDownload RouteClass = "download"
)

// JSON reports whether failures on routes of this class are answered with a
// JSON envelope instead of an HTML page.
func (c RouteClass) JSON() bool {
	return c == RouteClassOps
}

// RateLimited reports whether the global request limit applies to the class.
func (c RouteClass) RateLimited() bool {
	return c != RouteClassOps && c != RouteClassStatic
}

var ErrAllowlistNotFound = errors.New("routing allowlist not found")

type AllowlistRule struct {
	Prefix string     `yaml:"prefix"`
	Class  RouteClass `yaml:"class"`
}

type allowlistFile struct {
	Version     int                        `yaml:"version"`
	Entrypoints map[string][]AllowlistRule `yaml:"entrypoints"`
}

const allowlistRelPath = "config/routing/allowlist.yaml"

// DefaultRules mirrors the server entrypoint of config/routing/allowlist.yaml
// for binaries started outside the repository.
func DefaultRules() []AllowlistRule {
	return []AllowlistRule{
		{Prefix: "/health", Class: RouteClassOps},
		{Prefix: "/debug/prometheus", Class: RouteClassOps},
		{Prefix: "/debug/audit", Class: RouteClassOps},
		{Prefix: "/assets", Class: RouteClassStatic},
		{Prefix: "/login", Class: RouteClassAuthn},
		{Prefix: "/signup", Class: RouteClassAuthn},
		{Prefix: "/logout", Class: RouteClassAuthn},
		{Prefix: "/account", Class: RouteClassAuthn},
		{Prefix: "/contacts-report/export", Class: RouteClassDownload},
		{Prefix: "/contacts-report/print", Class: RouteClassDownload},
	}
}

func DefaultAllowlistPath() string {
	if p := strings.TrimSpace(os.Getenv("ROUTING_ALLOWLIST_PATH")); p != "" {
		return p
	}
	if wd, err := os.Getwd(); err == nil {
		if root, ok := findGoModRoot(wd); ok {
			abs := filepath.Join(root, filepath.FromSlash(allowlistRelPath))
			if _, statErr := os.Stat(abs); statErr == nil {
				return abs
			}
		}
	}
	return filepath.FromSlash(allowlistRelPath)
}

// LoadAllowlist reads the rules of entrypoint ("server" when empty) from path
// (DefaultAllowlistPath when empty).
func LoadAllowlist(path, entrypoint string) ([]AllowlistRule, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultAllowlistPath()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAllowlistNotFound, path)
		}
		return nil, err
	}

	var file allowlistFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported allowlist version: %d", file.Version)
	}

	if strings.TrimSpace(entrypoint) == "" {
		entrypoint = "server"
	}
	rules, ok := file.Entrypoints[entrypoint]
	if !ok {
		return nil, fmt.Errorf("entrypoint %q not found in allowlist", entrypoint)
	}
	for i := range rules {
		rules[i].Prefix = strings.TrimSpace(rules[i].Prefix)
		if !strings.HasPrefix(rules[i].Prefix, "/") {
			return nil, fmt.Errorf("allowlist rule[%d]: prefix must start with '/': %q", i, rules[i].Prefix)
		}
		switch rules[i].Class {
		case RouteClassUI, RouteClassAuthn, RouteClassOps, RouteClassStatic, RouteClassDownload:
		default:
			return nil, fmt.Errorf("allowlist rule[%d]: unknown class: %q", i, rules[i].Class)
		}
	}
	return rules, nil
}

// LoadOrDefault returns the rules at path, or DefaultRules when the file
// cannot be read.
func LoadOrDefault(path string) []AllowlistRule {
	rules, err := LoadAllowlist(path, "server")
	if err != nil {
		return DefaultRules()
	}
	return rules
}

func findGoModRoot(start string) (string, bool) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
