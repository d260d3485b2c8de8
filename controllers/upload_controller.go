package controllers

import (
	"log"
	"mime/multipart"
	"net/http"

	"github.com/sankalpa008/lost-and-found/constants"

	"github.com/gin-gonic/gin"
)

// ImageUploader is the write side of the image collaborator: it takes
// a raw file and returns an opaque reference string.
type ImageUploader interface {
	Save(file *multipart.FileHeader) (string, error)
}

type IUploadController interface {
	Upload(ctx *gin.Context)
}

type UploadController struct {
	storage ImageUploader
}

func NewUploadController(storage ImageUploader) IUploadController {
	return &UploadController{storage: storage}
}

func (c *UploadController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	url, err := c.storage.Save(file)
	if err != nil {
		log.Printf("Upload error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"url": url})
}
