package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"car-selling-service/internal/middleware"
	"car-selling-service/internal/usecase/listing"
	"car-selling-service/pkg/utils"
)

type ListingHandler struct {
	service *listing.Service
}

func NewListingHandler(service *listing.Service) *ListingHandler {
	return &ListingHandler{service: service}
}

// RegisterRoutes wires the listing endpoints onto a bearer-protected group.
func (h *ListingHandler) RegisterRoutes(router *gin.RouterGroup) {
	carsGroup := router.Group("/cars")
	{
		carsGroup.POST("", h.Submit)
		carsGroup.GET("/user", h.ListForUser)
	}
}

func (h *ListingHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	req := &listing.SubmitRequest{
		Model: c.PostForm("model"),
		Phone: utils.SanitizePhone(c.PostForm("phone")),
		City:  c.PostForm("city"),
	}
	if priceField := c.PostForm("price"); priceField != "" {
		price, err := strconv.ParseFloat(priceField, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Price must be a number")
			return
		}
		req.Price = price
	}

	images, err := formImages(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	created, err := h.service.Submit(c.Request.Context(), userID, req, images)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ListingHandler) ListForUser(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	listings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

// formImages collects the uploaded "images" parts without reading them; the
// service streams each one to the image host.
func formImages(c *gin.Context) ([]listing.Image, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	headers := form.File["images"]
	images := make([]listing.Image, 0, len(headers))
	for _, fh := range headers {
		images = append(images, listing.Image{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Open:        opener(fh),
		})
	}

	return images, nil
}

func opener(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return fh.Open()
	}
}
