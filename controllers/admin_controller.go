package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/constants"
	"github.com/sankalpa008/lost-and-found/dto"
	"github.com/sankalpa008/lost-and-found/services"

	"github.com/gin-gonic/gin"
)

type IAdminController interface {
	ListUsers(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
	CreateUser(ctx *gin.Context)
	ListItems(ctx *gin.Context)
}

type AdminController struct {
	service     services.IAdminService
	itemService services.IItemService
}

func NewAdminController(service services.IAdminService, itemService services.IItemService) IAdminController {
	return &AdminController{service: service, itemService: itemService}
}

func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.service.ListUsers()
	if err != nil {
		log.Printf("List users error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users})
}

func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidID})
		return
	}

	if err := c.service.DeleteUser(uint(userID)); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrMsgUserNotFound})
			return
		}
		log.Printf("Delete user error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.Status(http.StatusOK)
}

func (c *AdminController) CreateUser(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}
	if !input.Role.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	user, err := c.service.CreateUser(input.Email, input.Password, input.Name, input.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrMsgEmailTaken})
			return
		}
		log.Printf("Create user error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": authResponse(user)})
}

func (c *AdminController) ListItems(ctx *gin.Context) {
	items, err := c.itemService.FindAll()
	if err != nil {
		log.Printf("List all items error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": items})
}
