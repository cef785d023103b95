package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func serve(handler fasthttp.RequestHandler, method, origin string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI("/api/v1/stats")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	handler(ctx)
	return ctx
}

func TestCORS(t *testing.T) {
	reached := 0
	next := func(ctx *fasthttp.RequestCtx) {
		reached++
		ctx.SetStatusCode(fasthttp.StatusOK)
	}

	t.Run("listed origin", func(t *testing.T) {
		h := CORS([]string{"http://localhost:5173/"})(next)
		ctx := serve(h, fasthttp.MethodGet, "http://localhost:5173")
		assert.Equal(t, "http://localhost:5173", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	})

	t.Run("unlisted origin", func(t *testing.T) {
		h := CORS([]string{"http://localhost:5173"})(next)
		ctx := serve(h, fasthttp.MethodGet, "http://evil.example")
		assert.Empty(t, ctx.Response.Header.Peek("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard preflight", func(t *testing.T) {
		before := reached
		h := CORS([]string{"*"})(next)
		ctx := serve(h, fasthttp.MethodOptions, "http://anywhere.example")
		assert.Equal(t, "*", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
		assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
		assert.Equal(t, before, reached)
	})
}
