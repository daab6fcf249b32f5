package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/katas-backend/pkg/ctxutil"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Middleware are applied in the order given: Chain(mw1, mw2)(handler)
// results in mw1(mw2(handler)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// ClientIP resolves the caller address and stores it in the request context.
// With trustProxy the first X-Forwarded-For hop wins over RemoteAddr.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r.RemoteAddr)
			if trustProxy {
				if fwd := forwardedFor(r.Header.Get("X-Forwarded-For")); fwd != "" {
					ip = fwd
				}
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), ip)))
		})
	}
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func forwardedFor(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(first)
}

// clientKey identifies the caller for per-client bookkeeping.
func clientKey(r *http.Request) string {
	if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
		return ip
	}
	return remoteHost(r.RemoteAddr)
}
