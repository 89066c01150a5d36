package handler

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"directory/config"
	"directory/internal/delivery/http/response"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/service"
	"directory/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadRequest carries one asset as base64. Images for city cards, logos and
// custom markers all go through this endpoint.
type uploadRequest struct {
	Folder      string `json:"folder" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Data        string `json:"data" validate:"required"`
}

// UploadHandler stores back office asset uploads.
type UploadHandler struct {
	storage  service.FileStorage
	maxBytes int64
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(storage service.FileStorage, cfg *config.Config, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		storage:  storage,
		maxBytes: cfg.Upload.MaxBytes,
		logger:   logger,
	}
}

// Upload decodes the payload and writes it to blob storage, returning the
// public URL to store on the city or business record.
func (h *UploadHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upload input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return domainerrors.ErrUploadInvalid.WrapMessage("payload is not valid base64")
	}

	if h.maxBytes > 0 && int64(len(data)) > h.maxBytes {
		return domainerrors.ErrUploadInvalid.WrapMessage(
			fmt.Sprintf("payload exceeds the %s upload limit", util.FormatBytes(h.maxBytes)))
	}

	url, err := h.storage.Save(c.Request().Context(), req.Folder, req.Filename, req.ContentType, data)
	if err != nil {
		h.logger.Error("Failed to store upload",
			slog.String("folder", req.Folder), slog.String("filename", req.Filename), slog.Any("error", err))

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Upload stored successfully")
}
