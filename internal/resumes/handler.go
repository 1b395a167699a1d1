package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/extract"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/structured"
)

const (
	formField        = "pdf_file"
	defaultMaxUpload = 10 << 20 // 10MB
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. A non-positive limit means 10MB.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUpload
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches résumé routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/resume", h.parse)
}

func (h *Handler) parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge, ErrPayloadTooLarge.Error(), gin.H{"limitBytes": tooLarge.Limit})
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, ErrMissingFile.Error(), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, ErrUnreadableFile.Error(), nil)
		return
	}
	defer file.Close()

	parsed, err := h.Svc.Parse(c.Request.Context(), Upload{FileName: fileHeader.Filename, Body: file})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Server-Timing", serverTiming(parsed))
	respond.OK(c, toResponse(parsed))
}

func writeError(c *gin.Context, err error) {
	var xerr *extract.Error
	var gerr *structured.Error
	switch {
	case errors.Is(err, extract.ErrInvalidFileType):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, msgInvalidPDF, nil)
	case errors.As(err, &xerr):
		respond.Error(c, http.StatusInternalServerError, ErrorCodeExtraction, msgExtractionPrefix+xerr.Err.Error(), nil)
	case errors.As(err, &gerr):
		respond.Error(c, http.StatusInternalServerError, ErrorCodeGeneration, msgGenerationPrefix+gerr.Err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, msgUnexpectedPrefix+err.Error(), nil)
	}
}
