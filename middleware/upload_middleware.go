package middleware

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"auth-rest-api/exception"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	uploadFieldName = "image"
	maxUploadSize   = 5 * 1024 * 1024
)

// Request locals set by UploadSingle for the registration handler.
const (
	LocalProfileImage     = "profile_image"
	LocalProfileImagePath = "profile_image_path"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var allowedContentTypes = map[string]bool{
	"image/jpg":  true,
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// UploadSingle accepts the single "image" multipart field, stores it under
// the configured upload directory, and exposes the stored path through
// request locals. It runs before field validation; a rejected upload never
// reaches the registration handler.
func (middleware *Middleware) UploadSingle(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		if isBodyTooLarge(err) {
			return exception.NewUploadError("File too large (max 5MB)")
		}
		return exception.NewUploadError("Profile image is required")
	}

	if fileHeader.Size > maxUploadSize {
		return exception.NewUploadError("File too large (max 5MB)")
	}

	// Extension and declared content type must both pass.
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		return exception.NewUploadError("Only images are allowed!")
	}

	uploadDir := middleware.Config.GetUploadDir()
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		middleware.Log.WithError(err).Errorf("Failed to create upload directory %s", uploadDir)
		return exception.NewUploadError("Failed to store profile image")
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	diskPath := filepath.Join(uploadDir, filename)
	if err := saveUploadedFile(fileHeader, diskPath); err != nil {
		// Never leave a half-written file behind.
		_ = os.Remove(diskPath)
		middleware.Log.WithError(err).Errorf("Failed to store upload %s", diskPath)
		return exception.NewUploadError("Failed to store profile image")
	}

	c.Locals(LocalProfileImage, path.Join("images", filename))
	c.Locals(LocalProfileImagePath, diskPath)
	return c.Next()
}

// A body past the server limit surfaces from the streamed multipart read.
// The multipart reader does not always wrap the fasthttp error, hence the
// message fallback.
func isBodyTooLarge(err error) bool {
	return errors.Is(err, fasthttp.ErrBodyTooLarge) ||
		strings.Contains(err.Error(), fasthttp.ErrBodyTooLarge.Error())
}

func saveUploadedFile(fileHeader *multipart.FileHeader, diskPath string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(diskPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
