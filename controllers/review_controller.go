package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"local-guide/constants"
	"local-guide/dto"
	"local-guide/middlewares"
	"local-guide/repositories"
	"local-guide/services"
)

type IReviewController interface {
	Create(ctx *gin.Context)
	FindByItem(ctx *gin.Context)
}

type ReviewController struct {
	service services.IReviewService
}

func NewReviewController(service services.IReviewService) IReviewController {
	return &ReviewController{service: service}
}

func (c *ReviewController) Create(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.CreateReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationMessages(err)})
		return
	}

	itemID := ctx.Param("itemId")
	review, err := c.service.Submit(itemID, user.ID, input.Rating, input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Item with ID %s not found.", itemID)})
		case errors.Is(err, repositories.ErrDuplicateReview):
			ctx.JSON(http.StatusConflict, gin.H{"message": constants.MsgDuplicateReview})
		default:
			log.Printf("Review submission error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while submitting the review."})
		}
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

func (c *ReviewController) FindByItem(ctx *gin.Context) {
	reviews, err := c.service.FindByItem(ctx.Param("itemId"))
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.MsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}
