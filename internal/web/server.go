/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package web

import (
	"context"
	"net/http"
	"time"

	"blog/internal/config"
	"blog/internal/handler"
	"blog/internal/middleware"
	"blog/internal/nlog"
	"blog/internal/repository"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

// Server owns the HTTP side of the application: session store, templates,
// handlers, routes and the listener itself
type Server struct {
	cfg    *config.Config
	logger nlog.Logger

	authService service.AuthService
	postService service.PostService
	feedService service.FeedService
	groupRepo   repository.GroupRepository

	server *http.Server
}

func NewServer(cfg *config.Config, logger nlog.Logger, authService service.AuthService, postService service.PostService, feedService service.FeedService, groupRepo repository.GroupRepository) *Server {
	return &Server{
		cfg:         cfg,
		logger:      logger,
		authService: authService,
		postService: postService,
		feedService: feedService,
		groupRepo:   groupRepo,
	}
}

func (s *Server) Logf(format string, v ...any) {
	s.logger.Logf(format, v...)
}

// Handler builds the session store, the page renderer, the handlers and the
// full route table, returning the root handler of the application
func (s *Server) Handler() (http.Handler, error) {
	cookieStore := sessions.NewCookieStore([]byte(s.cfg.SecretKey))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(7 * 24 * time.Hour.Seconds()),
	}

	templates, err := view.RetrieveWebTemplates(s.cfg.TemplateDir)
	if err != nil {
		return nil, err
	}
	renderer := view.NewPageRenderer(templates)

	// Handlers
	feedHandler := handler.NewFeedHandler(s.feedService, renderer, s.cfg.PageSize)
	postHandler := handler.NewPostHandler(s.postService, s.feedService, s.groupRepo, renderer)
	authHandler := handler.NewAuthHandler(s.authService, cookieStore, renderer)

	// Router
	r := mux.NewRouter()

	// Public feed routes
	r.HandleFunc("/", middleware.WithUser(cookieStore, feedHandler.Index)).Methods("GET")
	r.HandleFunc("/group/{slug}/", middleware.WithUser(cookieStore, feedHandler.GroupFeed)).Methods("GET")
	r.HandleFunc("/profile/{username}/", middleware.WithUser(cookieStore, feedHandler.Profile)).Methods("GET")
	r.HandleFunc("/posts/{id:[0-9]+}/", middleware.WithUser(cookieStore, feedHandler.PostDetail)).Methods("GET")

	// Authenticated write routes
	r.HandleFunc("/create/", middleware.RequireUser(cookieStore, postHandler.Create)).Methods("POST", "GET")
	r.HandleFunc("/posts/{id:[0-9]+}/edit/", middleware.RequireUser(cookieStore, postHandler.Edit)).Methods("POST", "GET")

	// Authentication routes
	r.HandleFunc("/register", authHandler.Register).Methods("POST", "GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST", "GET")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	return r, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Shutdown is graceful with a bounded deadline.
func (s *Server) Run(ctx context.Context) error {
	root, err := s.Handler()
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Addr:           s.cfg.ListenAddr,
		Handler:        root,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		<-ctx.Done()
		s.Logf("Received stop signal. Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.Logf("Error during shutdown... %v", err)
		}
	}()

	s.Logf("Http server listening on {%s}", s.cfg.ListenAddr)

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		s.Logf("FATAL: HTTP Server error{%v}", err)
		return err
	}

	return nil
}
