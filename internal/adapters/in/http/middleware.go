package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nexa/internal/core/application/usecases/queries"
	"nexa/internal/core/domain/model/admin"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const adminSessionKey = "nexa.adminSession"

type echoContextKey struct{}

// AdminSessionFrom returns the session resolved by the bearer authentication of the
// current request.
func AdminSessionFrom(ctx echo.Context) (*admin.Session, bool) {
	s, ok := ctx.Get(adminSessionKey).(*admin.Session)
	return s, ok && s != nil
}

// BearerAuthenticator resolves the bearer token of secured operations into an
// active admin session and stores it in the echo context.
func BearerAuthenticator(tokens *TokenIssuer, sessions queries.GetAdminSessionQueryHandler) openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		ec, ok := ctx.Value(echoContextKey{}).(echo.Context)
		if !ok {
			return errors.New("echo context is missing")
		}

		header := input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return errUnauthorized
		}

		sessionID, err := tokens.SessionID(token)
		if err != nil {
			return err
		}

		query, err := queries.NewGetAdminSessionQuery(sessionID)
		if err != nil {
			return err
		}
		session, err := sessions.Handle(ctx, query)
		if err != nil {
			return fmt.Errorf("%w: %w", errUnauthorized, err)
		}

		ec.Set(adminSessionKey, session)
		return nil
	}
}

// OpenAPIValidator checks requests against the API document before they reach the
// handlers. Paths outside the document pass through untouched.
func OpenAPIValidator(doc *openapi3.T, auth openapi3filter.AuthenticationFunc) (echo.MiddlewareFunc, error) {
	// Route matching must not depend on the host the service runs behind.
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: auth,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			ctx := context.WithValue(req.Context(), echoContextKey{}, c)
			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}

			if err = openapi3filter.ValidateRequest(ctx, input); err != nil {
				var securityErr *openapi3filter.SecurityRequirementsError
				if errors.As(err, &securityErr) {
					return echo.NewHTTPError(http.StatusUnauthorized, securityMessage(securityErr))
				}
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}

			return next(c)
		}
	}, nil
}

func securityMessage(err *openapi3filter.SecurityRequirementsError) string {
	for _, cause := range err.Errors {
		if errors.Is(cause, admin.ErrSessionExpired) {
			return admin.ErrSessionExpired.Error()
		}
	}
	return errUnauthorized.Error()
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", requestErr.Parameter.Name, requestErr.Reason)
		}
		if requestErr.Err != nil {
			return "request body: " + requestErr.Err.Error()
		}
		return requestErr.Reason
	}
	return err.Error()
}

// CheckoutRateLimiter limits each client IP to rps requests per second on the public
// checkout endpoints. A non positive rps disables the limit.
func CheckoutRateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	if burst < 1 {
		burst = 1
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return rps <= 0 || !strings.HasPrefix(c.Request().URL.Path, "/api/v1/checkouts")
		},
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Client address is unknown")
		},
	})
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
