package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"travelbook/internal/domain/models"
	"travelbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a PDF e-ticket for a booking.
type DocsService struct {
	Bookings  BookingService
	RequestID string
	// Loader replaces the database lookup; used by tests.
	Loader func(ctx context.Context, userID, bookingID int64) (ticketData, error)
}

type ticketData struct {
	Booking  models.BookingDetail
	Username string
	Issued   time.Time
}

// GenerateTicket returns the PDF bytes and a download filename for a
// booking owned by viewer.
func (s DocsService) GenerateTicket(ctx context.Context, userID int64, username string, bookingID int64) ([]byte, string, error) {
	data, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	if data.Username == "" {
		data.Username = username
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", "booking_id", bookingID, "user_id", userID)
	return buildTicketPDF(data)
}

func (s DocsService) load(ctx context.Context, userID, bookingID int64) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, userID, bookingID)
	}
	b, err := s.Bookings.Get(ctx, userID, bookingID)
	if err != nil {
		return ticketData{}, err
	}
	return ticketData{Booking: b, Issued: time.Now()}, nil
}

func buildTicketPDF(d ticketData) ([]byte, string, error) {
	b := d.Booking
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, s := range ticketLines(d, pdf.UnicodeTranslatorFromDescriptor("")) {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	issued := d.Issued
	if issued.IsZero() {
		issued = time.Now()
	}
	pdf.MultiCell(0, 6, "Issued "+issued.Format("2006-01-02 15:04")+". Present this ticket at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TICKET_%d_%s.pdf", b.ID, safeFilenamePart(b.Source+"_"+b.Destination))
	return buf.Bytes(), filename, nil
}

// ticketLines formats the booking body. tr maps UTF-8 text into the
// cp1252 encoding of the core fonts.
func ticketLines(d ticketData, tr func(string) string) []string {
	b := d.Booking
	return []string{
		fmt.Sprintf("Booking      : #%d", b.ID),
		tr(fmt.Sprintf("Passenger    : %s", safe(d.Username, "-"))),
		fmt.Sprintf("Type         : %s", safe(string(b.TravelType), "-")),
		tr(fmt.Sprintf("Route        : %s -> %s", safe(b.Source, "-"), safe(b.Destination, "-"))),
		fmt.Sprintf("Departure    : %s", utils.FormatDateTime(b.DateTime)),
		fmt.Sprintf("Seats        : %d", b.Seats),
		fmt.Sprintf("Price / seat : %s", utils.FormatCents(b.PriceCents)),
		fmt.Sprintf("Total        : %s", b.TotalPrice()),
		fmt.Sprintf("Status       : %s", b.Status),
		fmt.Sprintf("Booked on    : %s", utils.FormatDateTime(b.BookingDate)),
	}
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
