package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"local-guide/middlewares"
	"local-guide/services"
)

type IItemController interface {
	FindAll(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

// FindAll lists the whole catalog with favorite counts, ordered by name.
// Anonymous callers get the public view; authenticated callers also get
// their own favorite flags.
func (c *ItemController) FindAll(ctx *gin.Context) {
	var userID *string
	if user := middlewares.CurrentUser(ctx); user != nil {
		userID = &user.ID
	}

	items, err := c.service.FindAllWithFavorites(userID)
	if err != nil {
		log.Printf("Error fetching items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching data"})
		return
	}

	ctx.JSON(http.StatusOK, items)
}
