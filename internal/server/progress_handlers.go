package server

import (
	"fmt"
	"io"
	"strconv"

	"fitflow/internal/models"
	"fitflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadProgressPhoto handles POST /api/progress/upload (multipart).
// Body metrics may accompany the photo as form fields; missing ones are
// filled from the profile before analysis.
func (s *Server) UploadProgressPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}
	if fileHeader.Size > service.MaxPhotoUploadBytes {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(fmt.Sprintf("File too large (max %dMB)",
				service.MaxPhotoUploadBytes/(1024*1024))))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, service.MaxPhotoUploadBytes+1))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	in := service.UploadPhotoInput{
		UserID:   s.userID(c),
		Filename: fileHeader.Filename,
		Content:  content,
		Weight:   formFloat(c, "weight"),
		Height:   formFloat(c, "height"),
		Age:      formInt(c, "age"),
		Gender:   c.FormValue("gender"),
		Notes:    c.FormValue("notes"),
	}

	photo, err := s.progressService.Upload(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

// GetProgressPhotos handles GET /api/progress/photos
func (s *Server) GetProgressPhotos(c *fiber.Ctx) error {
	photos, err := s.progressService.List(c.Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"photos": photos})
}

// GetProgressPhoto handles GET /api/progress/photos/:id
func (s *Server) GetProgressPhoto(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	photo, err := s.progressService.Get(c.Context(), s.userID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(photo)
}

// DeleteProgressPhoto handles DELETE /api/progress/photos/:id
func (s *Server) DeleteProgressPhoto(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.progressService.Delete(c.Context(), s.userID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Photo deleted"})
}

func formFloat(c *fiber.Ctx, field string) float64 {
	v, _ := strconv.ParseFloat(c.FormValue(field), 64)
	return v
}

func formInt(c *fiber.Ctx, field string) int {
	v, _ := strconv.Atoi(c.FormValue(field))
	return v
}
