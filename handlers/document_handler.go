package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"legalzen-backend/logging"
	"legalzen-backend/models"
	"legalzen-backend/service"
)

const backendName = "Rule-based processing"

// DocumentHandler handles HTTP requests for document analysis and Q&A
type DocumentHandler struct {
	documents *service.DocumentService
	questions *service.QuestionService
	logger    logging.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *service.DocumentService, questions *service.QuestionService, logger logging.Logger) *DocumentHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DocumentHandler{
		documents: documents,
		questions: questions,
		logger:    logger,
	}
}

// analysisResponse is a document analysis tagged with the session holding it
type analysisResponse struct {
	*models.DocumentAnalysis
	SessionKey string `json:"session_key"`
}

func newAnalysisResponse(res *service.AnalyzeResult) analysisResponse {
	return analysisResponse{DocumentAnalysis: res.Analysis, SessionKey: res.SessionKey}
}

// UploadDocument handles POST / and POST /api/documents
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	limit := h.documents.MaxUploadBytes()
	if c.Request.ContentLength > limit {
		h.fileTooLarge(c)
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		switch {
		case c.IsAborted():
			// the size limiter already answered 413 for an oversized streamed body
			h.logger.Warn("upload exceeded size limit", logging.Int64("limit", limit))
		case c.Request.MultipartForm != nil && len(c.Request.MultipartForm.Value["document"]) > 0:
			// a file input submitted without a selection arrives as an empty form value
			respondError(c, http.StatusBadRequest, CodeNoFileSelected, "No file selected")
		default:
			h.logger.Warn("no file in request", logging.Err(err))
			respondError(c, http.StatusBadRequest, CodeMissingFile, "No file uploaded")
		}
		return
	}

	h.logger.Info("received file", logging.String("filename", fileHeader.Filename), logging.Int64("size", fileHeader.Size))

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeInternal, fmt.Sprintf("Failed to open uploaded file: %v", err))
		return
	}
	defer file.Close()

	res, err := h.documents.AnalyzeUpload(c.Request.Context(), service.AnalyzeUploadRequest{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		h.uploadError(c, err)
		return
	}

	respondOK(c, http.StatusOK, newAnalysisResponse(res))
}

func (h *DocumentHandler) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFile):
		respondError(c, http.StatusBadRequest, CodeMissingFile, "No file uploaded")
	case errors.Is(err, service.ErrNoFileSelected):
		respondError(c, http.StatusBadRequest, CodeNoFileSelected, "No file selected")
	case errors.Is(err, service.ErrUnsupportedFileType):
		respondError(c, http.StatusBadRequest, CodeInvalidFileType, "File type not allowed. Please upload PDF, DOC, DOCX, or TXT files.")
	case errors.Is(err, service.ErrFileTooLarge):
		h.fileTooLarge(c)
	case errors.Is(err, service.ErrNoText):
		respondError(c, http.StatusBadRequest, CodeNoText, "Could not extract text from document. Please ensure the file contains readable text.")
	default:
		h.logger.Error("document processing failed", logging.Err(err))
		respondError(c, http.StatusInternalServerError, CodeProcessing, fmt.Sprintf("Internal server error during document processing: %v", err))
	}
}

func (h *DocumentHandler) fileTooLarge(c *gin.Context) {
	respondError(c, http.StatusRequestEntityTooLarge, CodeFileTooLarge,
		fmt.Sprintf("File too large. Maximum size is %s. Please upload a smaller file.", formatSize(h.documents.MaxUploadBytes())))
}

func formatSize(n int64) string {
	const mib = 1024 * 1024
	if n >= mib && n%mib == 0 {
		return fmt.Sprintf("%dMB", n/mib)
	}
	if n >= 1024 {
		return fmt.Sprintf("%dKB", n/1024)
	}
	return fmt.Sprintf("%d bytes", n)
}

// AskRequest is accepted as JSON or as form fields
type AskRequest struct {
	Question   string `json:"question" form:"question"`
	SessionKey string `json:"session_key" form:"session_key"`
}

// AskQuestion handles POST /ask and POST /api/ask
func (h *DocumentHandler) AskQuestion(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body")
		return
	}

	res, err := h.questions.Ask(c.Request.Context(), service.AskRequest{
		Question:   req.Question,
		SessionKey: req.SessionKey,
	})
	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		respondError(c, http.StatusBadRequest, CodeMissingQuestion, "No question provided")
		return
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(c, http.StatusBadRequest, CodeSessionNotFound, "Document session not found. Please upload a document first.")
		return
	case err != nil:
		h.logger.Error("question failed", logging.Err(err))
		respondError(c, http.StatusInternalServerError, CodeInternal, fmt.Sprintf("Error processing question: %v", err))
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"answer":      res.Answer,
		"session_key": res.SessionKey,
	})
}

// Health handles GET /health
func (h *DocumentHandler) Health(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"status":          "healthy",
		"timestamp":       time.Now().Format(time.RFC3339),
		"ai_backend":      backendName,
		"active_sessions": h.documents.SessionCount(),
		"storage_type":    h.documents.StorageType(),
	})
}

// Demo handles GET /demo
func (h *DocumentHandler) Demo(c *gin.Context) {
	respondOK(c, http.StatusOK, newAnalysisResponse(h.documents.Demo(c.Request.Context())))
}

// Sample handles GET /sample
func (h *DocumentHandler) Sample(c *gin.Context) {
	respondOK(c, http.StatusOK, newAnalysisResponse(h.documents.Sample(c.Request.Context())))
}

type sessionSummary struct {
	Filename     string `json:"filename"`
	UploadTime   string `json:"upload_time"`
	DocumentType string `json:"document_type"`
}

// ListSessions handles GET /sessions
func (h *DocumentHandler) ListSessions(c *gin.Context) {
	sessions := h.documents.Sessions(c.Request.Context())

	summaries := make(map[string]sessionSummary, len(sessions))
	for _, s := range sessions {
		summary := sessionSummary{
			Filename:     s.Filename,
			UploadTime:   s.UploadTime.Format(time.RFC3339),
			DocumentType: "unknown",
		}
		if summary.Filename == "" {
			summary.Filename = "unknown"
		}
		if s.Analysis != nil {
			summary.DocumentType = string(s.Analysis.DocumentType)
		}
		summaries[s.Key] = summary
	}

	respondOK(c, http.StatusOK, gin.H{
		"active_sessions": len(sessions),
		"sessions":        summaries,
	})
}
