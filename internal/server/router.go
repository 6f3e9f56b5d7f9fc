package server

import (
	"context"
	"net/http"
	"time"

	"gymmaster/internal/middleware"
	"gymmaster/internal/modules/auth"
	"gymmaster/internal/modules/booking"
	"gymmaster/internal/modules/catalog"
	"gymmaster/internal/pkg/jwt"
	"gymmaster/internal/pkg/response"
	"gymmaster/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	DB          *gorm.DB
	Log         *zap.Logger
	CORSOrigins []string
	// Tokens guards the booking routes when set.
	Tokens *jwt.Service
	// Staff login is served only when Tokens and a password hash are set.
	StaffUsername     string
	StaffPasswordHash string
}

// NewRouter wires repositories, services and handlers onto one gin engine.
func NewRouter(opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	bookingRepo := repository.NewBookingRepository(opts.DB)
	memberRepo := repository.NewMemberRepository(opts.DB)
	classRepo := repository.NewClassRepository(opts.DB)

	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, log))
	catalogHandler := catalog.NewHandler(catalog.NewService(memberRepo, classRepo, log))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger(log.Named("http")))
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.GET("/healthz", healthz(opts.DB))

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)

		if opts.Tokens != nil && opts.StaffPasswordHash != "" {
			authService := auth.NewService(opts.StaffUsername, opts.StaffPasswordHash, opts.Tokens, log)
			auth.NewHandler(authService).RegisterRoutes(v1)
		}

		desk := v1.Group("")
		if opts.Tokens != nil {
			desk.Use(middleware.StaffAuth(opts.Tokens))
		}
		bookingHandler.RegisterRoutes(desk)
	}

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
