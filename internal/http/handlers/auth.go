package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/http/middleware"
	"travelbook/internal/services"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const afterLoginPath = "/travel-options/"

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{RequestID: middleware.GetRequestID(c)}
}

// GET /register/
func RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"title": "Register"})
}

// POST /register/
func Register(c *gin.Context) {
	var in models.Registration
	_ = c.ShouldBindWith(&in, binding.Form)

	user, err := authService(c).Register(c.Request.Context(), in)
	if err != nil {
		if !domain.IsValidation(err) && !domain.IsConflict(err) {
			RespondDomainError(c, err)
			return
		}
		addErrors(c, err)
		render(c, http.StatusOK, "register.html", gin.H{"title": "Register", "username": in.Username})
		return
	}

	if err := middleware.Login(c, user); err != nil {
		RespondDomainError(c, err)
		return
	}
	success(c, "Registration successful!")
	redirect(c, "/")
}

// GET /login/
func LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"title": "Log in", "next": c.Query("next")})
}

// POST /login/
func Login(c *gin.Context) {
	var in models.Credentials
	_ = c.ShouldBindWith(&in, binding.Form)
	next := c.PostForm("next")

	user, err := authService(c).Authenticate(c.Request.Context(), in)
	if err != nil {
		if !domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		addErrors(c, err)
		render(c, http.StatusOK, "login.html", gin.H{"title": "Log in", "username": in.Username, "next": next})
		return
	}

	if err := middleware.Login(c, user); err != nil {
		RespondDomainError(c, err)
		return
	}
	redirect(c, utils.SafeNext(next, afterLoginPath))
}

// POST /logout/
func Logout(c *gin.Context) {
	middleware.Logout(c)
	middleware.AddMessage(c, middleware.LevelInfo, "You have been logged out.")
	redirect(c, "/")
}
