package reports

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cvcheck-backend/internal/engine"
	"cvcheck-backend/internal/extract"
	"cvcheck-backend/internal/shared/server/respond"
)

const maxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the reports service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.createReport)
	rg.GET("/reports", h.listReports)
	rg.GET("/reports/:id", h.getReport)
}

type createRequest struct {
	Text    string `json:"text"`
	Profile string `json:"profile"`
}

func (h *Handler) createReport(c *gin.Context) {
	req, ok := h.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	report, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "provide resume text or a file", nil)
		case errors.Is(err, engine.ErrEmptyDocument):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume text is empty", nil)
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported file type, use PDF, DOCX or plain text", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, report)
}

// bindAnalyzeRequest accepts either a multipart upload (file + profile fields)
// or a JSON body with raw text.
func (h *Handler) bindAnalyzeRequest(c *gin.Context) (AnalyzeRequest, bool) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file field is required", nil)
			return AnalyzeRequest{}, false
		}
		if fileHeader.Size > maxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 5 MB limit", nil)
			return AnalyzeRequest{}, false
		}
		f, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
			return AnalyzeRequest{}, false
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
			return AnalyzeRequest{}, false
		}
		if len(data) > maxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 5 MB limit", nil)
			return AnalyzeRequest{}, false
		}
		return AnalyzeRequest{
			Data:     data,
			FileName: fileHeader.Filename,
			MimeType: fileHeader.Header.Get("Content-Type"),
			Profile:  c.PostForm("profile"),
		}, true
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return AnalyzeRequest{}, false
	}
	return AnalyzeRequest{Text: req.Text, Profile: req.Profile}, true
}

func (h *Handler) getReport(c *gin.Context) {
	reportID := c.Param("id")
	if reportID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "report id is required", nil)
		return
	}

	report, err := h.Svc.Get(c.Request.Context(), reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) listReports(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, report := range list {
		resp = append(resp, gin.H{
			"id":           report.ID,
			"fileName":     report.FileName,
			"profile":      report.Profile,
			"overallScore": report.Result.OverallScore,
			"verdictTier":  report.Result.VerdictTier,
			"createdAt":    report.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}
