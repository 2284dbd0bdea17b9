package handlers

import (
	"auctions/internal/middleware"
	"auctions/internal/services"
	"auctions/internal/utils"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuctionService
}

func NewAuthHandler(service *services.AuctionService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Title": "Register", "Error": "Invalid form submission."})
		return
	}

	user, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Username:     form.Username,
		Email:        form.Email,
		Password:     form.Password,
		Confirmation: form.Confirmation,
	})
	if err != nil {
		status, message := MapErrorToHTTP(err)
		logServiceError(c, "Register", status, err)
		Render(c, status, "auth/register.html", gin.H{"Title": "Register", "Error": message, "Form": form})
		return
	}

	startSession(c, user.ID)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Log In"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "auth/login.html", gin.H{"Title": "Log In", "Error": "Invalid form submission."})
		return
	}

	user, err := h.service.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		status, message := MapErrorToHTTP(err)
		logServiceError(c, "Login", status, err)
		Render(c, status, "auth/login.html", gin.H{"Title": "Log In", "Error": message, "Username": form.Username})
		return
	}

	startSession(c, user.ID)
	utils.Info("user logged in", map[string]any{"user_id": user.ID})
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/")
}

func startSession(c *gin.Context, userID uint) {
	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, userID)
	if err := session.Save(); err != nil {
		utils.Error("failed to save session", map[string]any{"user_id": userID, "error": err.Error()})
	}
}
