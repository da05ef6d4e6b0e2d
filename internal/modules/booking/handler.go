package booking

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"soundhire/internal/domain"
	"soundhire/internal/pkg/flash"
	"soundhire/internal/pkg/money"
)

// Session keys for the one-time confirmation payload.
const (
	sessionLastName    = "last_booking_name"
	sessionLastPackage = "last_booking_package"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Home)
	r.POST("/", h.Submit)
	r.GET("/booking/success/", h.Success)
}

// Home shows the booking form with choices bound to the current package
// snapshot, re-fetched on every request.
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	packages := h.service.Packages(ctx)
	djRate := h.service.DJRate(ctx)

	h.renderHome(c, BookingForm{}, nil, packages, djRate)
}

// Submit validates and persists a booking, then redirects to the success
// page. Any failure re-renders the form with freshly bound choices.
func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	packages := h.service.Packages(ctx)
	djRate := h.service.DJRate(ctx)

	var form BookingForm
	_ = c.ShouldBind(&form)

	conf, fieldErrs, err := h.service.Submit(ctx, form, packages, djRate)
	if err != nil {
		if errors.Is(err, ErrStoreWrite) {
			flash.Add(c, flash.LevelError, "Sorry, there was an error processing your booking. Please try again.")
		}
		h.renderHome(c, form, nil, packages, djRate)
		return
	}
	if fieldErrs != nil {
		h.renderHome(c, form, fieldErrs, packages, djRate)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionLastName, conf.CustomerName)
	session.Set(sessionLastPackage, conf.PackageName)
	_ = session.Save()

	flash.Add(c, flash.LevelSuccess, "Booking submitted successfully! We'll contact you at "+conf.CustomerEmail)
	c.Redirect(http.StatusFound, "/booking/success/")
}

// Success renders the one-time confirmation payload and clears it, so a
// repeated visit falls back to generic placeholder text.
func (h *Handler) Success(c *gin.Context) {
	session := sessions.Default(c)

	customerName := "Customer"
	packageName := "your selected package"
	if v, ok := session.Get(sessionLastName).(string); ok && v != "" {
		customerName = v
	}
	if v, ok := session.Get(sessionLastPackage).(string); ok && v != "" {
		packageName = v
	}
	session.Delete(sessionLastName)
	session.Delete(sessionLastPackage)
	_ = session.Save()

	c.HTML(http.StatusOK, "success.html", gin.H{
		"CustomerName": customerName,
		"PackageName":  packageName,
		"Flashes":      flash.Take(c),
	})
}

func (h *Handler) renderHome(c *gin.Context, form BookingForm, fieldErrs map[string]string, packages []domain.Package, djRate float64) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Form":     form,
		"Errors":   fieldErrs,
		"Choices":  BuildChoices(packages, djRate),
		"Packages": packages,
		"DJRate":   money.Format(djRate),
		"Flashes":  flash.Take(c),
	})
}
