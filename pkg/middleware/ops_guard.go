package middleware

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/routing"
)

type opsGuard struct {
	opts       configuration.OpsGuardOptions
	realIP     string
	classifier *routing.Classifier
	cidrs      []netip.Prefix
}

// OpsGuard hides ops routes (health, metrics) from clients that neither come
// from an allowed network nor present the ops token. Rejected requests get a
// plain 404 so the routes are not advertised.
func OpsGuard(conf *configuration.Configuration) mux.MiddlewareFunc {
	g := &opsGuard{
		opts:       conf.OpsGuard,
		realIP:     conf.RealIPHeader,
		classifier: routing.NewClassifier(routing.LoadOrDefault("")),
		cidrs:      parseCIDRs(conf.OpsGuard.CIDRs),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !g.opts.Enabled || g.classifier.ClassifyPath(r.URL.Path) != routing.RouteClassOps || g.authorized(r) {
				next.ServeHTTP(w, r)
				return
			}
			http.NotFound(w, r)
		})
	}
}

func (g *opsGuard) authorized(r *http.Request) bool {
	if addr, err := netip.ParseAddr(clientIP(r, g.realIP)); err == nil {
		for _, p := range g.cidrs {
			if p.Contains(addr) {
				return true
			}
		}
	}
	token := strings.TrimSpace(g.opts.Token)
	return token != "" && subtle.ConstantTimeCompare([]byte(opsToken(r)), []byte(token)) == 1
}

func parseCIDRs(raw string) []netip.Prefix {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t'
	})
	out := make([]netip.Prefix, 0, len(parts))
	for _, part := range parts {
		if p, err := netip.ParsePrefix(part); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func opsToken(r *http.Request) string {
	if t := strings.TrimSpace(r.Header.Get("X-Ops-Token")); t != "" {
		return t
	}
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) > len("bearer ") && strings.EqualFold(auth[:len("bearer ")], "bearer ") {
		return strings.TrimSpace(auth[len("bearer "):])
	}
	return ""
}

// clientIP takes the first address of the real-IP header, falling back to
// the connection's remote address, without port.
func clientIP(r *http.Request, header string) string {
	v := ""
	if header != "" {
		v = strings.TrimSpace(r.Header.Get(header))
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = strings.TrimSpace(v[:i])
		}
	}
	if v == "" {
		v = r.RemoteAddr
	}
	if host, _, err := net.SplitHostPort(v); err == nil {
		return host
	}
	return v
}
