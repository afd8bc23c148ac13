package handler

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"bimsite/internal/domain/models"
	"bimsite/internal/httputil"
	"bimsite/internal/service/ai"
	"bimsite/internal/service/content"
	"bimsite/internal/storage"
)

// Hero videos are the largest uploads the dashboard sends.
const maxUploadMemory = 32 << 20

// UploadHandler serves media uploads and knowledge document ingestion.
type UploadHandler struct {
	files     *storage.FileStore
	extractor *ai.Extractor
	service   *content.Service
	logger    *slog.Logger
}

// NewUploadHandler creates an upload handler.
func NewUploadHandler(files *storage.FileStore, extractor *ai.Extractor, service *content.Service, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		files:     files,
		extractor: extractor,
		service:   service,
		logger:    logger,
	}
}

type uploadResponse struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"sizeLabel"`
}

// UploadMedia stores one media file and returns its public URL.
// POST /api/admin/uploads
func (h *UploadHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	kind := storage.KindForContentType(header.Header.Get("Content-Type"))
	url, err := h.files.Save(kind, header.Filename, file)
	if err != nil {
		h.logger.Error("upload failed", "name", header.Filename, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, uploadResponse{
		URL:       url,
		Name:      header.Filename,
		Size:      header.Size,
		SizeLabel: storage.FormatFileSize(header.Size),
	})
}

type documentError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type documentsResponse struct {
	Documents []models.KnowledgeDocument `json:"documents"`
	Errors    []documentError            `json:"errors"`
}

// UploadKnowledgeDocuments ingests a batch of knowledge files. One bad file
// does not abort the batch; its error is reported alongside the successes.
// POST /api/admin/knowledge-documents
func (h *UploadHandler) UploadKnowledgeDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "missing files field")
		return
	}

	var docs []models.KnowledgeDocument
	var failures []documentError

	for _, header := range r.MultipartForm.File["files"] {
		doc, err := h.extractDocument(header)
		if err != nil {
			h.logger.Warn("knowledge document rejected", "name", header.Filename, "error", err)
			failures = append(failures, documentError{Name: header.Filename, Error: err.Error()})
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) > 0 {
		saved, err := h.service.AddKnowledgeDocuments(r.Context(), docs)
		if err != nil {
			handleError(w, err)
			return
		}
		docs = saved
	}

	if docs == nil {
		docs = []models.KnowledgeDocument{}
	}
	if failures == nil {
		failures = []documentError{}
	}
	httputil.RespondJSON(w, http.StatusCreated, documentsResponse{
		Documents: docs,
		Errors:    failures,
	})
}

// extractDocument reads one multipart file and converts it into a knowledge
// document with its text extracted.
func (h *UploadHandler) extractDocument(header *multipart.FileHeader) (models.KnowledgeDocument, error) {
	f, err := header.Open()
	if err != nil {
		return models.KnowledgeDocument{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.KnowledgeDocument{}, fmt.Errorf("read upload: %w", err)
	}

	text, err := h.extractor.ExtractText(header.Filename, data)
	if err != nil {
		return models.KnowledgeDocument{}, err
	}

	return models.KnowledgeDocument{
		Name:    header.Filename,
		Type:    strings.TrimPrefix(filepath.Ext(header.Filename), "."),
		Size:    header.Size,
		Content: text,
	}, nil
}
