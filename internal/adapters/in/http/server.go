// Package http is the HTTP entry point of the service. Server implements the
// generated servers.ServerInterface and translates requests into commands and queries.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nexa/internal/core/application/usecases/commands"
	"nexa/internal/core/application/usecases/queries"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/generated/servers"
	"nexa/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Checkout
	OpenCheckout       commands.OpenCheckoutCommandHandler
	UpdateCheckout     commands.UpdateCheckoutDraftCommandHandler
	SelectDeliveryDate commands.SelectDeliveryDateCommandHandler
	SubmitOrder        commands.SubmitOrderCommandHandler
	GetCatalog         queries.GetCatalogQueryHandler
	GetCheckout        queries.GetCheckoutQueryHandler
	GetCalendar        queries.GetCheckoutCalendarQueryHandler

	// Admin
	StartAdminSession commands.StartAdminSessionCommandHandler
	EndAdminSession   commands.EndAdminSessionCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	ReconcileOrders   commands.ReconcileOrdersCommandHandler
	ListOrders        queries.ListOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ExportOrders      queries.ExportOrdersQueryHandler
	GetWhatsAppLink   queries.GetWhatsAppLinkQueryHandler
	GetAdminSession   queries.GetAdminSessionQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	tokens *TokenIssuer
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, tokens *TokenIssuer, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		tokens: tokens,
		logger: logger.With("component", "http"),
	}
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	catalog, err := s.h.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCatalog(catalog))
}

// OpenCheckout handles POST /api/v1/checkouts.
func (s *Server) OpenCheckout(ctx echo.Context) error {
	cmd, err := commands.NewOpenCheckoutCommand(kernel.NewUUID())
	if err != nil {
		return s.writeError(ctx, err)
	}

	c, err := s.h.OpenCheckout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondCheckout(ctx, http.StatusCreated, c.ID())
}

// GetCheckout handles GET /api/v1/checkouts/{checkoutId}.
func (s *Server) GetCheckout(ctx echo.Context, checkoutId servers.CheckoutId) error {
	id, err := kernel.UUIDFromGoogle(checkoutId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondCheckout(ctx, http.StatusOK, id)
}

// UpdateCheckout handles PATCH /api/v1/checkouts/{checkoutId}.
func (s *Server) UpdateCheckout(ctx echo.Context, checkoutId servers.CheckoutId) error {
	var body servers.UpdateCheckoutJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromGoogle(checkoutId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateCheckoutDraftCommand(id, commands.DraftChanges{
		PackageID:    body.PackageId,
		Size:         body.Size,
		FullName:     body.FullName,
		WhatsApp:     body.Whatsapp,
		Email:        body.Email,
		CEP:          body.Cep,
		Street:       body.Street,
		Number:       body.Number,
		Complement:   body.Complement,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		Observations: body.Observations,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, err = s.h.UpdateCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondCheckout(ctx, http.StatusOK, id)
}

// GetCheckoutCalendar handles GET /api/v1/checkouts/{checkoutId}/calendar.
func (s *Server) GetCheckoutCalendar(
	ctx echo.Context,
	checkoutId servers.CheckoutId,
	params servers.GetCheckoutCalendarParams,
) error {
	id, err := kernel.UUIDFromGoogle(checkoutId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetCheckoutCalendarQuery(id, params.Year, time.Month(params.Month))
	if err != nil {
		return s.writeError(ctx, err)
	}

	calendar, err := s.h.GetCalendar.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCalendar(calendar))
}

// SelectDeliveryDate handles PUT /api/v1/checkouts/{checkoutId}/delivery-date.
func (s *Server) SelectDeliveryDate(ctx echo.Context, checkoutId servers.CheckoutId) error {
	var body servers.SelectDeliveryDateJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromGoogle(checkoutId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSelectDeliveryDateCommand(id, kernel.DateOf(body.Date.Time))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, err = s.h.SelectDeliveryDate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondCheckout(ctx, http.StatusOK, id)
}

// SubmitCheckout handles POST /api/v1/checkouts/{checkoutId}/submit.
func (s *Server) SubmitCheckout(ctx echo.Context, checkoutId servers.CheckoutId) error {
	id, err := kernel.UUIDFromGoogle(checkoutId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	confirmation, err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderConfirmation{
		OrderId:        confirmation.OrderID.Bytes(),
		PackageName:    confirmation.PackageName,
		Size:           confirmation.Size,
		DeliveryDate:   toDate(confirmation.DeliveryDate),
		Total:          confirmation.Total.StringFixed(2),
		FormattedTotal: confirmation.FormattedTotal,
	})
}

// CreateAdminSession handles POST /api/v1/admin/session.
func (s *Server) CreateAdminSession(ctx echo.Context) error {
	var body servers.CreateAdminSessionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewStartAdminSessionCommand(body.Passphrase)
	if err != nil {
		return s.writeError(ctx, err)
	}

	session, err := s.h.StartAdminSession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.AdminToken{
		Token:     token,
		ExpiresAt: session.ExpiresAt(),
	})
}

// DeleteAdminSession handles DELETE /api/v1/admin/session.
func (s *Server) DeleteAdminSession(ctx echo.Context) error {
	session, ok := AdminSessionFrom(ctx)
	if !ok {
		return s.writeError(ctx, errUnauthorized)
	}

	cmd, err := commands.NewEndAdminSessionCommand(session.ID())
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.EndAdminSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/admin/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(lo.FromPtr(params.Search), lo.FromPtr(params.Status))
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(orders, func(v queries.OrderView, _ int) servers.Order {
		return toOrder(v)
	}))
}

// ExportOrders handles GET /api/v1/admin/orders/export.
func (s *Server) ExportOrders(ctx echo.Context, params servers.ExportOrdersParams) error {
	query, err := queries.NewExportOrdersQuery(lo.FromPtr(params.Search), lo.FromPtr(params.Status))
	if err != nil {
		return s.writeError(ctx, err)
	}

	export, err := s.h.ExportOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName))
	return ctx.Blob(http.StatusOK, export.ContentType, export.Content)
}

// GetOrder handles GET /api/v1/admin/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondOrder(ctx, id)
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/{orderId}.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status, body.AdminNotes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, err = s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondOrder(ctx, id)
}

// DeleteOrder handles DELETE /api/v1/admin/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId, params servers.DeleteOrderParams) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id, lo.FromPtr(params.Confirm))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderWhatsAppLink handles GET /api/v1/admin/orders/{orderId}/whatsapp.
func (s *Server) GetOrderWhatsAppLink(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetWhatsAppLinkQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	link, err := s.h.GetWhatsAppLink.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.WhatsAppLink{Url: link.URL, Message: link.Message})
}

// ReconcileOrders handles POST /api/v1/admin/reconcile. Orders that could not be
// pushed are reported in the body; only a pass that could not start is an error.
func (s *Server) ReconcileOrders(ctx echo.Context) error {
	result, err := s.h.ReconcileOrders.Handle(ctx.Request().Context(), commands.NewReconcileOrdersCommand())
	if err != nil {
		if result.Pending == 0 {
			return s.writeError(ctx, err)
		}
		s.logger.WarnContext(ctx.Request().Context(), "reconciliation left orders in the local store",
			"failed", result.Failed,
			"error", err,
		)
	}

	return ctx.JSON(http.StatusOK, servers.ReconcileReport{
		Skipped: result.Skipped,
		Pending: result.Pending,
		Pushed:  result.Pushed,
		Failed:  result.Failed,
	})
}

func (s *Server) respondCheckout(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCheckoutQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	c, err := s.h.GetCheckout.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toCheckout(c))
}

func (s *Server) respondOrder(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	v, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(v))
}
