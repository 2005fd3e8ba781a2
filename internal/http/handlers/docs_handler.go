package handlers

import (
	"net/http"

	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /my-bookings/:booking_id/ticket/ returns the booking's e-ticket inline.
func BookingTicketPDF(c *gin.Context) {
	id, ok := pathID(c, "booking_id")
	if !ok {
		NotFound(c)
		return
	}
	v := viewer(c)
	svc := services.DocsService{
		Bookings:  bookingService(c),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateTicket(c.Request.Context(), int64(v.UserID), v.Username, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
