package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func travelService(c *gin.Context) services.TravelService {
	return services.TravelService{RequestID: middleware.GetRequestID(c)}
}

// GET /travel-options/?source=&destination=&date_time=
func TravelOptions(c *gin.Context) {
	source := c.Query("source")
	destination := c.Query("destination")
	date := c.Query("date_time")
	data := gin.H{
		"title":       "Travel options",
		"source":      source,
		"destination": destination,
		"date_time":   date,
		"options":     []models.TravelOption{},
	}

	filter, err := services.ParseSearch(source, destination, date)
	if err != nil {
		addErrors(c, err)
		render(c, http.StatusOK, "travel_options.html", data)
		return
	}

	options, err := travelService(c).Search(c.Request.Context(), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data["options"] = options
	render(c, http.StatusOK, "travel_options.html", data)
}

func addTravelPage(c *gin.Context, form models.NewTravelOption) {
	render(c, http.StatusOK, "add_travel_option.html", gin.H{
		"title": "Add travel option",
		"types": models.TravelTypes,
		"form":  form,
	})
}

// GET /add-travel-option/
func AddTravelOptionForm(c *gin.Context) {
	addTravelPage(c, models.NewTravelOption{})
}

// POST /add-travel-option/
func AddTravelOption(c *gin.Context) {
	var in models.NewTravelOption
	_ = c.ShouldBindWith(&in, binding.Form)

	if _, err := travelService(c).Create(c.Request.Context(), in); err != nil {
		if !domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		addErrors(c, err)
		addTravelPage(c, in)
		return
	}
	success(c, "Travel option added successfully!")
	redirect(c, "/travel-options/")
}
