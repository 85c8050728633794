package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/tsundokuhq/tsundoku/pkg/auth"
	"github.com/tsundokuhq/tsundoku/pkg/binder"
	"github.com/tsundokuhq/tsundoku/pkg/books"
	"github.com/tsundokuhq/tsundoku/pkg/config"
	"github.com/tsundokuhq/tsundoku/pkg/covers"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
	"github.com/tsundokuhq/tsundoku/pkg/imports"
	"github.com/tsundokuhq/tsundoku/pkg/openlibrary"
	"github.com/tsundokuhq/tsundoku/pkg/tags"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	// The session cookie has to survive cross-origin requests from the
	// dashboard, so credentials are allowed for the configured frontend.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	health.RegisterRoutes(e)

	authService, err := auth.RegisterRoutes(e, cfg)
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewMiddleware(authService)

	coverPipeline := covers.NewPipeline(cfg)
	if err := coverPipeline.EnsureDir(); err != nil {
		return nil, err
	}

	books.RegisterRoutesWithGroup(e.Group("/books"), db, cfg, authMiddleware)
	tags.RegisterRoutesWithGroup(e.Group("/tags"), db, authMiddleware)
	imports.RegisterRoutesWithGroup(e.Group("/imports"), authMiddleware)
	openlibrary.RegisterRoutesWithGroup(e.Group("/catalog"), cfg, authMiddleware)
	covers.RegisterRoutesWithGroup(e.Group("/covers"), coverPipeline)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
