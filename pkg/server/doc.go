// Package server serves pages rendered by pkg/render over HTTP.
//
// Pages are registered on a chi router by pattern. Each request renders
// its page under a timeout: the render is bounded by the request context,
// so a slow ComponentWillMount is cancelled when the deadline passes and
// the client receives 504 Gateway Timeout.
//
//	srv := server.New(server.Config{
//	    Renderer: render.NewRenderer(render.RendererConfig{}),
//	    Timeout:  5 * time.Second,
//	})
//	srv.Page("/", homePage)
//	srv.Page("/posts/{slug}", postPage)
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	srv.Run(ctx, ":3000")
//
// # Endpoints
//
// Besides registered pages the server answers GET /healthz and, unless
// disabled, exposes Prometheus metrics on /metrics.
//
// # Streaming
//
// With Config.Streaming the document head is written and flushed before
// the body has resolved. Errors after that point cannot change the status
// code; they are logged and the document is left unterminated.
package server
