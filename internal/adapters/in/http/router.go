package http

import (
	"log/slog"
	"net/http"

	"nexa/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig tunes the middleware stack.
type RouterConfig struct {
	// CheckoutRate is the number of checkout requests per second allowed per client
	// IP. Zero disables the limit.
	CheckoutRate  float64
	CheckoutBurst int
}

// NewRouter builds the echo instance serving the API, the health probe and the API
// documentation.
func NewRouter(s *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc, BearerAuthenticator(s.tokens, s.h.GetAdminSession))
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger.With("component", "http")))
	e.Use(CheckoutRateLimiter(cfg.CheckoutRate, cfg.CheckoutBurst))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	// The validator cleared the servers of its copy; publish a fresh one.
	published, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = RegisterDocs(e, published); err != nil {
		return nil, err
	}

	servers.RegisterHandlers(e, s)
	return e, nil
}
