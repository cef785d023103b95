package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/dashboard/pkg/httpcontext"
)

const (
	allowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	allowHeaders = "Content-Type, " + httpcontext.HeaderRequestID
)

// CORS lets the browser dashboard call the API from the listed origins. "*" allows any origin.
// Preflight requests are answered here and never reach the router.
func CORS(origins []string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	allowAll := false
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			origin := string(ctx.Request.Header.Peek("Origin"))
			if origin != "" {
				if _, ok := allowed[origin]; ok || allowAll {
					if allowAll {
						ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
					} else {
						ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
						ctx.Response.Header.Add("Vary", "Origin")
					}
					ctx.Response.Header.Set("Access-Control-Allow-Methods", allowMethods)
					ctx.Response.Header.Set("Access-Control-Allow-Headers", allowHeaders)
					ctx.Response.Header.Set("Access-Control-Expose-Headers", httpcontext.HeaderRequestID)
				}
			}

			if ctx.IsOptions() {
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}
			next(ctx)
		}
	}
}
