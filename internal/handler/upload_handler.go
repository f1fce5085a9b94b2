package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
)

// UploadHandler stores uploaded images under the per-tenant naming
// convention <userID>_<uuid><ext>.
type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// Upload handles POST /api/images/upload (single file, field "image")
func (h *UploadHandler) Upload(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	file, err := c.FormFile("image")
	if err != nil {
		return respondBadRequest(c, "No image file provided")
	}

	filename, err := h.saveFile(user.ID, file)
	if err != nil {
		return respondError(c, err, "Failed to upload image")
	}

	logger.FromContext(c).Info("Image uploaded",
		zap.Uint("user_id", user.ID),
		zap.String("filename", filename),
		zap.Int64("size", file.Size))
	return respondCreated(c, "Image uploaded successfully", echo.Map{
		"filename": filename,
		"url":      "/uploads/" + filename,
	})
}

// UploadMultiple handles POST /api/images/upload-multiple (field "images")
func (h *UploadHandler) UploadMultiple(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		return respondBadRequest(c, "No image files provided")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return respondBadRequest(c, "No image files provided")
	}

	uploaded := make([]echo.Map, 0, len(files))
	for _, file := range files {
		filename, err := h.saveFile(user.ID, file)
		if err != nil {
			return respondError(c, err, "Failed to upload images")
		}
		uploaded = append(uploaded, echo.Map{
			"filename": filename,
			"url":      "/uploads/" + filename,
		})
	}
	return respondCreated(c, "Images uploaded successfully", uploaded)
}

// Delete handles POST /api/images/delete/:filename. Only files with
// the caller's tenant prefix can be removed.
func (h *UploadHandler) Delete(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	filename := filepath.Base(c.Param("filename"))
	if !strings.HasPrefix(filename, service.TenantFilePrefix(user.ID)) {
		return respondError(c, service.ErrNotFound, "Image not found")
	}

	path := filepath.Join(h.uploadDir, filename)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return respondError(c, service.ErrNotFound, "Image not found")
		}
		return respondError(c, err, "Failed to delete image")
	}
	return respondOK(c, "Image deleted successfully", nil)
}

func (h *UploadHandler) saveFile(userID uint, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("%s%s%s", service.TenantFilePrefix(userID), uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}
