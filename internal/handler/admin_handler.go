package handler

import (
	"net/http"

	"github.com/KimLeno1/sky1/internal/dto"
	"github.com/KimLeno1/sky1/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the back office. Every route except login is gated
// by the fixed admin credentials sent as headers; there are no admin
// sessions to manage.
type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/admin/login", h.Login)

	admin := e.Group("/api/v1/admin", h.requireCredentials)
	admin.GET("/summary", h.Summary)
	admin.GET("/transactions", h.Transactions)
	admin.GET("/transactions/export", h.ExportTransactions)
	admin.DELETE("/transactions", h.ClearTransactions)
	admin.GET("/users", h.Users)
	admin.GET("/cards", h.Cards)
	admin.GET("/cards/export", h.ExportVault)
	admin.DELETE("/cards", h.ClearVault)
}

func (h *AdminHandler) requireCredentials(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Request().Header.Get("X-Admin-Email")
		password := c.Request().Header.Get("X-Admin-Password")
		if !h.svc.Authenticate(email, password) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin credentials")
		}
		return next(c)
	}
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if !h.svc.Authenticate(req.Email, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin credentials")
	}
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": true})
}

func (h *AdminHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	txns, err := h.svc.Transactions(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	users, err := h.svc.Users(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	cards, err := h.svc.Cards(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	revenue, err := h.svc.TotalRevenue(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.AdminSummaryResponse{
		TotalRevenue:     revenue,
		TransactionCount: len(txns),
		UserCount:        len(users),
		CardCount:        len(cards),
	})
}

func (h *AdminHandler) Transactions(c echo.Context) error {
	txns, err := h.svc.Transactions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, txns)
}

func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.svc.Users(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) Cards(c echo.Context) error {
	cards, err := h.svc.Cards(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, cards)
}

func (h *AdminHandler) ClearTransactions(c echo.Context) error {
	if err := h.svc.ClearTransactions(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ClearVault(c echo.Context) error {
	if err := h.svc.ClearVault(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ExportTransactions(c echo.Context) error {
	out, err := h.svc.ExportTransactions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(out))
}

func (h *AdminHandler) ExportVault(c echo.Context) error {
	out, err := h.svc.ExportVault(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(out))
}
