package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/usama228/AMS-Backend/config"
	"github.com/usama228/AMS-Backend/models"
	"github.com/usama228/AMS-Backend/repository"
)

const avatarDir = "./public/images"

type AvatarHandler struct {
	avatarRepo repository.AvatarRepository
	cfg        *config.AppConfig
}

func NewAvatarHandler(avatarRepo repository.AvatarRepository, cfg *config.AppConfig) *AvatarHandler {
	return &AvatarHandler{
		avatarRepo: avatarRepo,
		cfg:        cfg,
	}
}

// UploadAvatar godoc
// @Summary Upload avatar image
// @Description Stores the uploaded file under a generated name and records its metadata
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 200 {object} models.APIResponse "File uploaded successfully"
// @Failure 400 {object} models.APIResponse "No file uploaded"
// @Router /api/images/avatar [post]
func (h *AvatarHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "No file uploaded",
		})
	}

	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		return internalError(c, err)
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(avatarDir, filename)); err != nil {
		return internalError(c, err)
	}

	avatar := &models.Avatar{
		Filename:     filename,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Size:         file.Size,
		Path:         fmt.Sprintf("%s/public/images/%s", h.cfg.BaseURL, filename),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if _, err := h.avatarRepo.Create(ctx, avatar); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      avatar,
		Succeeded: true,
		Message:   "File uploaded successfully",
	})
}
