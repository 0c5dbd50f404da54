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

type IItemController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

// currentUser AuthMiddlewareが設定したユーザーを取り出す
func currentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	items, err := c.service.FindAllByUser(user.ID)
	if err != nil {
		log.Printf("Error fetching items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (c *ItemController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Item name is required"})
		return
	}

	newItem, err := c.service.Create(user.ID, input.Name)
	if err != nil {
		log.Printf("Error adding item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, newItem)
}

func (c *ItemController) Update(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	updatedItem, err := c.service.Update(ctx.Param("id"), user.ID, input)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrItemNotFound})
			return
		}
		log.Printf("Error updating item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, updatedItem)
}

func (c *ItemController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	err := c.service.Delete(ctx.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrItemNotFound})
			return
		}
		log.Printf("Error deleting item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.Status(http.StatusOK)
}
