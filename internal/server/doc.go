// Package server provides the HTTP server of the audiobook scanner.
//
// The server uses the Gin web framework and serves plain HTTP. The server
// mode only switches Gin between debug ("dev") and release ("prod") mode.
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (ginzap, "http" logger)                         │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  │  Authenticator (HS256 bearer JWT, when auth is enabled) │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-shutdownCh
//	srv.Stop(ctx)
//
// Stop performs a graceful shutdown, waiting for in-flight requests.
//
// # Authentication
//
// When Auth.Enabled is set the HS256 secret is read once from
// Auth.SecretFilePath (at least 32 bytes). Every /api/v1 request must carry
// "Authorization: Bearer <token>" with a valid signature and an exp claim.
// Rejected requests get 401 with a JSON error body.
package server
