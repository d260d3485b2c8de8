package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/constants"
	"github.com/sankalpa008/lost-and-found/dto"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.service.Signup(input.Email, input.Password, input.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrMsgEmailTaken})
			return
		}
		log.Printf("Signup error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusCreated, gin.H{"data": authResponse(user)})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgBadCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, gin.H{"data": authResponse(user)})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	token, err := ctx.Cookie(constants.SessionCookieName)
	if err == nil && token != "" {
		if err := c.service.Logout(token); err != nil {
			log.Printf("Logout error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
			return
		}
	}

	clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": authResponse(user)})
}

func authResponse(user *models.User) dto.AuthResponse {
	return dto.AuthResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}

// The session cookie is HTTP-only and SameSite=Lax; Secure outside of
// local development.
func setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(constants.SessionCookieName, token, int(constants.SessionTTL.Seconds()), "/", "", secureCookies(), true)
}

func clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(constants.SessionCookieName, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return os.Getenv("ENV") == "prod"
}

func currentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
