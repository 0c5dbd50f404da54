package controllers

import (
	"errors"
	"log"
	"net/http"

	"gin-todo/constants"
	"gin-todo/dto"
	"gin-todo/models"
	"gin-todo/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
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
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrAllFieldsRequired})
		return
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrAllFieldsRequired})
		return
	}
	if len(input.Password) < constants.MinPasswordLength {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrPasswordTooShort})
		return
	}

	user, token, err := c.service.Register(input.FirstName, input.LastName, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrEmailTaken})
			return
		}
		log.Printf("Registration error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Message: constants.MsgUserCreated,
		User:    toUserResponse(user),
		Token:   token,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrLoginFieldsMissing})
		return
	}

	if input.Email == "" || input.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrLoginFieldsMissing})
		return
	}

	user, token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Message: constants.MsgLoginSuccess,
		User:    toUserResponse(user),
		Token:   token,
	})
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
