package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"local-guide/constants"
	"local-guide/middlewares"
	"local-guide/repositories"
	"local-guide/services"
)

type IFavoriteController interface {
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
}

type FavoriteController struct {
	service services.IFavoriteService
}

func NewFavoriteController(service services.IFavoriteService) IFavoriteController {
	return &FavoriteController{service: service}
}

func (c *FavoriteController) Add(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	err := c.service.Add(ctx.Param("itemId"), user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyFavorited) {
			ctx.JSON(http.StatusConflict, gin.H{"message": constants.MsgAlreadyFavorited})
			return
		}
		log.Printf("Add favorite error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while adding to favorites."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": constants.MsgFavoriteAdded})
}

func (c *FavoriteController) Remove(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	err := c.service.Remove(ctx.Param("itemId"), user.ID)
	if err != nil {
		log.Printf("Remove favorite error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while removing from favorites."})
		return
	}

	ctx.Status(http.StatusNoContent)
}
