package api

import (
	"context"
	"log"
	"time"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	h "travelbook/internal/http/handlers"
	"travelbook/internal/http/middleware"
	"travelbook/internal/http/views"
	"travelbook/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()

	tmpl, err := views.Load()
	if err != nil {
		log.Fatalf("gagal memuat template: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	sessions := &middleware.Sessions{
		Secret: []byte(env.SessionSecret),
		TTL:    env.SessionTTL,
		Secure: env.CookieSecure,
		Lookup: func(ctx context.Context, id domain.ID) (domain.Viewer, error) {
			return services.AuthService{}.Viewer(ctx, int64(id))
		},
	}

	r.Use(
		middleware.RequestID(),
		middleware.Session(sessions),
		middleware.Logger(),
		gin.Recovery(),
		middleware.SameOrigin(env.CORSAllowedOrigins),
	)

	// Cross-origin callers are opt-in through CORS_ALLOWED_ORIGINS.
	if len(env.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     env.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(h.NotFound)

	r.GET("/health/", h.Health)
	r.GET("/db-check/", h.DBCheck)

	r.GET("/", h.Home)
	r.GET("/register/", h.RegisterForm)
	r.POST("/register/", h.Register)
	r.GET("/login/", h.LoginForm)
	r.POST("/login/", h.Login)
	r.POST("/logout/", h.Logout)
	r.GET("/travel-options/", h.TravelOptions)

	member := r.Group("/", middleware.RequireLogin())
	member.GET("/book/:travel_id/", h.BookForm)
	member.POST("/book/:travel_id/", h.Book)
	member.GET("/my-bookings/", h.MyBookings)
	member.GET("/my-bookings/:booking_id/ticket/", h.BookingTicketPDF)
	member.GET("/cancel-booking/:booking_id/", h.CancelBookingForm)
	member.POST("/cancel-booking/:booking_id/", h.CancelBooking)
	member.GET("/profile/", h.Profile)
	member.POST("/profile/", h.UpdateProfile)

	staff := r.Group("/", middleware.RequireStaff())
	staff.GET("/add-travel-option/", h.AddTravelOptionForm)
	staff.POST("/add-travel-option/", h.AddTravelOption)
	staff.GET("/admin-dashboard/", h.AdminDashboard)

	return r
}
