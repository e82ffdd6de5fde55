package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"karoo/services/tour"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TourHandler exposes the tour catalog CRUD endpoints.
type TourHandler struct {
	Service tour.TourService
	Logger  *zap.Logger
}

// NewTourHandler creates a new TourHandler instance.
func NewTourHandler(svc tour.TourService, logger *zap.Logger) *TourHandler {
	return &TourHandler{Service: svc, Logger: logger}
}

// CreateTourHandler creates a tour from a multipart form carrying the field
// values plus a cover image and up to ten additional images.
func (h *TourHandler) CreateTourHandler(c *gin.Context) {
	input := tour.CreateTourInput{
		Name:          c.PostForm("name"),
		Location:      c.PostForm("location"),
		Price:         parseFloatField(c.PostForm("price")),
		DurationHours: parseIntField(c.PostForm("durationHours")),
		DurationDays:  parseIntField(c.PostForm("durationDays")),
		Description:   c.PostForm("description"),
	}

	coverHeader, err := c.FormFile("coverImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover image is required for new tours"})
		return
	}
	coverPath, cleanupCover, err := saveTempUpload(c, coverHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer cleanupCover()
	input.CoverImagePath = coverPath

	additionalPaths, cleanupAdditional, err := saveAdditionalUploads(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer cleanupAdditional()
	input.AdditionalImagePaths = additionalPaths

	created, err := h.Service.CreateTour(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetToursHandler lists the full catalog.
func (h *TourHandler) GetToursHandler(c *gin.Context) {
	tours, err := h.Service.ListTours(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list tours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tours)
}

// CountsByLocationHandler returns the tours-per-province map.
func (h *TourHandler) CountsByLocationHandler(c *gin.Context) {
	counts, err := h.Service.CountsByLocation(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to count tours by location", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetTourByIDHandler returns a single tour.
func (h *TourHandler) GetTourByIDHandler(c *gin.Context) {
	tourRecord, err := h.Service.GetTour(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tour not found"})
		return
	}
	c.JSON(http.StatusOK, tourRecord)
}

// UpdateTourHandler applies a partial update; fields absent from the form
// are left unchanged.
func (h *TourHandler) UpdateTourHandler(c *gin.Context) {
	input := tour.UpdateTourInput{
		Name:          c.PostForm("name"),
		Location:      c.PostForm("location"),
		Price:         parseFloatField(c.PostForm("price")),
		DurationHours: parseIntField(c.PostForm("durationHours")),
		DurationDays:  parseIntField(c.PostForm("durationDays")),
		Description:   c.PostForm("description"),
	}

	if coverHeader, err := c.FormFile("coverImage"); err == nil {
		coverPath, cleanup, err := saveTempUpload(c, coverHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
			return
		}
		defer cleanup()
		input.CoverImagePath = coverPath
	}

	additionalPaths, cleanupAdditional, err := saveAdditionalUploads(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer cleanupAdditional()
	input.AdditionalImagePaths = additionalPaths

	updated, err := h.Service.UpdateTour(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTourHandler removes a tour.
func (h *TourHandler) DeleteTourHandler(c *gin.Context) {
	if err := h.Service.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tour not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour deleted"})
}

// saveTempUpload writes a multipart file to the OS temp dir and returns its
// path plus a cleanup func.
func saveTempUpload(c *gin.Context, fileHeader *multipart.FileHeader) (string, func(), error) {
	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		return "", nil, err
	}
	return tempFilePath, func() { os.Remove(tempFilePath) }, nil
}

// saveAdditionalUploads stores every "additionalImages" file, capped at ten
// per submission.
func saveAdditionalUploads(c *gin.Context) ([]string, func(), error) {
	cleanup := func() {}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, cleanup, nil
	}
	files := form.File["additionalImages"]
	if len(files) > 10 {
		files = files[:10]
	}

	var paths []string
	for _, fileHeader := range files {
		path, _, err := saveTempUpload(c, fileHeader)
		if err != nil {
			return nil, cleanup, err
		}
		paths = append(paths, path)
	}
	cleanup = func() {
		for _, path := range paths {
			os.Remove(path)
		}
	}
	return paths, cleanup, nil
}

func parseFloatField(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntField(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
