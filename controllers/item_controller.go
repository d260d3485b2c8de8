package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/constants"
	"github.com/sankalpa008/lost-and-found/dto"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/services"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	FindMine(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Resolve(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	filter, err := parseItemFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	items, err := c.service.Search(filter)
	if err != nil {
		log.Printf("List items error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": items})
}

func (c *ItemController) FindById(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidID})
		return
	}

	item, err := c.service.FindByID(uint(itemID))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": item})
}

func (c *ItemController) FindMine(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	items, err := c.service.FindByUser(user.ID)
	if err != nil {
		log.Printf("List own items error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": items})
}

func (c *ItemController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}
	if !input.Category.Valid() || !input.Status.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	newItem, err := c.service.Create(input, user.ID)
	if err != nil {
		log.Printf("Create item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newItem})
}

func (c *ItemController) Update(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidID})
		return
	}

	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}
	if input.Category != nil && !input.Category.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}
	if input.Status != nil && !input.Status.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	updatedItem, err := c.service.Update(uint(itemID), user, input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": updatedItem})
}

func (c *ItemController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidID})
		return
	}

	if err := c.service.Delete(uint(itemID), user); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}

func (c *ItemController) Resolve(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidID})
		return
	}

	var input dto.ResolveItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	updatedItem, err := c.service.SetResolved(uint(itemID), user, *input.Resolved)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": updatedItem})
}

func (c *ItemController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrMsgItemNotFound})
	case errors.Is(err, apperrors.ErrUnauthorized):
		ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrMsgUnauthorized})
	default:
		log.Printf("Item operation error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
	}
}

func parseItemFilter(ctx *gin.Context) (dto.ItemFilter, error) {
	filter := dto.ItemFilter{Search: ctx.Query("search")}

	if raw := ctx.Query("category"); raw != "" {
		category := models.Category(raw)
		if !category.Valid() {
			return filter, errors.New(constants.ErrMsgInvalidInput)
		}
		filter.Category = &category
	}
	if raw := ctx.Query("status"); raw != "" {
		status := models.ItemStatus(raw)
		if !status.Valid() {
			return filter, errors.New(constants.ErrMsgInvalidInput)
		}
		filter.Status = &status
	}
	if raw := ctx.Query("resolved"); raw != "" {
		resolved, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		filter.Resolved = &resolved
	}
	if raw := ctx.Query("posted"); raw != "" {
		window := dto.RecencyWindow(raw)
		if _, ok := window.MaxDays(); !ok {
			return filter, errors.New(constants.ErrMsgInvalidInput)
		}
		filter.PostedWithin = &window
	}

	return filter, nil
}
