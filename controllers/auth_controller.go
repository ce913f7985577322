package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"local-guide/constants"
	"local-guide/dto"
	"local-guide/middlewares"
	"local-guide/services"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Profile(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationMessages(err)})
		return
	}

	err := c.service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"message": constants.MsgEmailTaken})
			return
		}
		log.Printf("Registration error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during registration."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": constants.MsgUserRegistered})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.MsgInvalidLogin})
		case errors.Is(err, services.ErrMissingSecret):
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.MsgConfigError})
		default:
			log.Printf("Login error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during login."})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{Message: constants.MsgLoggedIn, Token: *token})
}

// Profile echoes the identity embedded in the verified token.
func (c *AuthController) Profile(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}
