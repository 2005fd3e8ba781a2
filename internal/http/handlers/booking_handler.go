package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

func bookPage(c *gin.Context, opt models.TravelOption, seats string) {
	render(c, http.StatusOK, "book_travel.html", gin.H{
		"title":         "Book",
		"travel_option": opt,
		"seats":         seats,
	})
}

// GET /book/:travel_id/
func BookForm(c *gin.Context) {
	id, ok := pathID(c, "travel_id")
	if !ok {
		NotFound(c)
		return
	}
	opt, err := travelService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	bookPage(c, opt, "1")
}

// POST /book/:travel_id/
func Book(c *gin.Context) {
	id, ok := pathID(c, "travel_id")
	if !ok {
		NotFound(c)
		return
	}
	ctx := c.Request.Context()
	opt, err := travelService(c).Get(ctx, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	raw, present := c.GetPostForm("seats")
	seats, err := services.ParseSeats(raw, present)
	if err == nil {
		_, err = bookingService(c).Book(ctx, int64(viewer(c).UserID), id, seats)
	}
	if err != nil {
		switch {
		case domain.IsValidation(err), domain.IsConflict(err):
			addErrors(c, err)
			if fresh, ferr := travelService(c).Get(ctx, id); ferr == nil {
				opt = fresh
			}
			bookPage(c, opt, raw)
		default:
			RespondDomainError(c, err)
		}
		return
	}

	success(c, "Booking successful!")
	redirect(c, "/my-bookings/")
}

// GET /my-bookings/
func MyBookings(c *gin.Context) {
	bookings, err := bookingService(c).ListForUser(c.Request.Context(), int64(viewer(c).UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "my_bookings.html", gin.H{"title": "My bookings", "bookings": bookings})
}

// GET /cancel-booking/:booking_id/
func CancelBookingForm(c *gin.Context) {
	id, ok := pathID(c, "booking_id")
	if !ok {
		NotFound(c)
		return
	}
	b, err := bookingService(c).Get(c.Request.Context(), int64(viewer(c).UserID), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "cancel_booking.html", gin.H{"title": "Cancel booking", "booking": b})
}

// POST /cancel-booking/:booking_id/
func CancelBooking(c *gin.Context) {
	id, ok := pathID(c, "booking_id")
	if !ok {
		NotFound(c)
		return
	}
	if err := bookingService(c).Cancel(c.Request.Context(), int64(viewer(c).UserID), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	success(c, "Booking cancelled successfully!")
	redirect(c, "/my-bookings/")
}
