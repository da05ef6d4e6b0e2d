package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"soundhire/internal/config"
	"soundhire/internal/middleware"
	"soundhire/internal/modules/admin"
	"soundhire/internal/modules/booking"
	jwtsvc "soundhire/internal/pkg/jwt"
	"soundhire/internal/pkg/money"
	"soundhire/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := store.New(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		log.Fatal(err)
	}

	packageRepo := store.NewPackageRepository(client)
	settingRepo := store.NewSettingRepository(client)
	bookingRepo := store.NewBookingRepository(client)

	j := jwtsvc.New(cfg.SessionSecret, cfg.AdminSessionTTL)

	bookingService := booking.NewService(packageRepo, settingRepo, bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(bookingRepo, packageRepo, settingRepo, cfg.AdminAccessCode, cfg.AdminAccessCodeHash)
	adminHandler := admin.NewHandler(adminService, j)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(sessions.Sessions("soundhire_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	r.SetFuncMap(template.FuncMap{
		"ugx": money.UGX,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	bookingHandler.RegisterRoutes(r)
	adminHandler.RegisterRoutes(r)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
