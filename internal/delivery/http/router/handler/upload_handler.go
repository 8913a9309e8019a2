package handler

import (
	"io"
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for media upload handlers.
type UploadHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.MediaUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// readFormFile pulls the uploaded file out of the multipart form. The
// request body limit has already bounded the total size.
func readFormFile(c echo.Context) (*usecase.UploadInput, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &usecase.UploadInput{Filename: fileHeader.Filename, Data: data}, nil
}

// Upload handles the request to store a media file under a given kind.
func (h *UploadHandler) Upload(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}

	input, err := readFormFile(c)
	if err != nil {
		return err
	}

	kind := service.MediaKind(c.Param("kind"))
	output, err := h.uc.Upload(c.Request().Context(), kind, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "File uploaded successfully")
}

// UploadProfilePicture handles the request to replace the authenticated
// user's profile picture.
func (h *UploadHandler) UploadProfilePicture(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	input, err := readFormFile(c)
	if err != nil {
		return err
	}

	output, err := h.uc.UploadProfilePicture(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Profile picture updated successfully")
}
