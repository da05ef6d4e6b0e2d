package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soundhire/internal/domain"
	"soundhire/internal/middleware"
	"soundhire/internal/pkg/flash"
	"soundhire/internal/pkg/jwt"
	"soundhire/internal/pkg/validator"
)

type Handler struct {
	service *Service
	jwt     *jwt.Service
}

func NewHandler(service *Service, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, jwt: jwtService}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/admin/login/", h.ShowLogin)
	r.POST("/admin/login/", h.Login)
	r.GET("/admin/logout/", h.Logout)
	r.POST("/admin/logout/", h.Logout)

	authed := r.Group("/admin", middleware.AdminAuth(h.jwt))
	authed.GET("/dashboard/", h.Dashboard)
	authed.POST("/bookings/:id/cancel/", h.Cancel)
	authed.POST("/bookings/:id/confirm/", h.Confirm)

	// State-changing endpoints reject anything that is not a POST.
	authed.GET("/bookings/:id/cancel/", h.methodNotAllowed)
	authed.GET("/bookings/:id/confirm/", h.methodNotAllowed)
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if middleware.IsAdmin(c, h.jwt) {
		c.Redirect(http.StatusFound, "/admin/dashboard/")
		return
	}
	h.renderLogin(c, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)

	if errs := validator.Validate(form); errs != nil {
		h.renderLogin(c, errs)
		return
	}

	if err := h.service.Authenticate(form.AccessCode); err != nil {
		flash.Add(c, flash.LevelError, "Invalid access code. Please try again.")
		h.renderLogin(c, nil)
		return
	}

	token, err := h.jwt.GenerateToken()
	if err != nil {
		flash.Add(c, flash.LevelError, "Could not start admin session. Please try again.")
		h.renderLogin(c, nil)
		return
	}

	// Session cookie: no Max-Age, cleared when the browser session ends.
	c.SetCookie(middleware.AdminCookie, token, 0, "/", "", false, true)
	flash.Add(c, flash.LevelSuccess, "Successfully logged in as admin")
	c.Redirect(http.StatusFound, "/admin/dashboard/")
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	flash.Add(c, flash.LevelSuccess, "Successfully logged out")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Dashboard(c *gin.Context) {
	view := h.service.Dashboard(c.Request.Context(), c.Query("status"))

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Dashboard": view,
		"Flashes":   flash.Take(c),
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, domain.BookingCancelled, "cancelled")
}

func (h *Handler) Confirm(c *gin.Context) {
	h.transition(c, domain.BookingConfirmed, "confirmed")
}

func (h *Handler) transition(c *gin.Context, target domain.BookingStatus, verb string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash.Add(c, flash.LevelError, "Invalid booking id")
		h.redirectToDashboard(c)
		return
	}

	if _, err := h.service.Transition(c.Request.Context(), id, target); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			flash.Add(c, flash.LevelError, fmt.Sprintf("Booking #%d not found", id))
		} else {
			flash.Add(c, flash.LevelError, fmt.Sprintf("Failed to %s booking #%d. Please try again.", actionVerb(target), id))
		}
		h.redirectToDashboard(c)
		return
	}

	flash.Add(c, flash.LevelSuccess, fmt.Sprintf("Booking #%d has been %s successfully", id, verb))
	h.redirectToDashboard(c)
}

func (h *Handler) methodNotAllowed(c *gin.Context) {
	flash.Add(c, flash.LevelError, "Invalid request method")
	h.redirectToDashboard(c)
}

// redirectToDashboard preserves the current status filter.
func (h *Handler) redirectToDashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin/dashboard/?status="+NormalizeFilter(c.Query("status")))
}

func (h *Handler) renderLogin(c *gin.Context, fieldErrs map[string]string) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Errors":  fieldErrs,
		"Flashes": flash.Take(c),
	})
}

func actionVerb(target domain.BookingStatus) string {
	if target == domain.BookingCancelled {
		return "cancel"
	}
	return "confirm"
}
