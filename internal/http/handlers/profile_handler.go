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

func profileService(c *gin.Context) services.ProfileService {
	return services.ProfileService{RequestID: middleware.GetRequestID(c)}
}

// GET /profile/
func Profile(c *gin.Context) {
	p, err := profileService(c).Get(c.Request.Context(), int64(viewer(c).UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	render(c, http.StatusOK, "profile.html", gin.H{"title": "Profile", "profile": p})
}

// POST /profile/
func UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	uid := int64(viewer(c).UserID)
	svc := profileService(c)

	stored, err := svc.Get(ctx, uid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var in models.ProfileInput
	_ = c.ShouldBindWith(&in, binding.Form)
	if _, err := svc.Update(ctx, uid, in); err != nil {
		if !domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		addErrors(c, err)
		render(c, http.StatusOK, "profile.html", gin.H{"title": "Profile", "profile": stored})
		return
	}
	success(c, "Profile updated successfully!")
	redirect(c, "/profile/")
}
