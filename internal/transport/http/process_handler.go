// Package http provides the HTTP transport layer: spreadsheet upload and
// processing, output download, and health endpoints.
package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "weekcast/internal/errors"
	"weekcast/internal/reader"
	"weekcast/internal/services"
)

// recognizedExtensions are the upload formats accepted before any read
// attempt.
var recognizedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
	".xlsb": true,
}

// ProcessHandler handles spreadsheet processing HTTP requests.
type ProcessHandler struct {
	service        *services.ProcessService
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	uploadsDir     string
	maxUploadBytes int64
	maxHeaderRow   int
}

// NewProcessHandler creates a new process handler.
func NewProcessHandler(service *services.ProcessService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, uploadsDir string, maxUploadBytes int64, maxHeaderRow int) *ProcessHandler {
	return &ProcessHandler{
		service:        service,
		logger:         logger.With(slog.String("component", "process_handler")),
		errorHandler:   errorHandler,
		uploadsDir:     uploadsDir,
		maxUploadBytes: maxUploadBytes,
		maxHeaderRow:   maxHeaderRow,
	}
}

// Routes returns the processing routes.
func (h *ProcessHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/process", h.Process)
	r.Get("/download/{filename}", h.Download)

	return r
}

// Process handles POST /api/process: a multipart upload with an optional
// sheet name (blank selects the first sheet) and a 0-based header row.
// The upload is spooled to a temp file that is removed whether the pass
// succeeds or fails.
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "Upload must be a multipart form with a spreadsheet file"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "Spreadsheet file is required"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !recognizedExtensions[ext] {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest,
			"UNSUPPORTED_FORMAT",
			fmt.Sprintf("Unsupported spreadsheet format: %q", ext),
			map[string]interface{}{"extension": ext},
		))
		return
	}

	headerRow := 0
	if raw := r.FormValue("header_row"); raw != "" {
		headerRow, err = strconv.Atoi(raw)
		if err != nil || headerRow < 0 || headerRow > h.maxHeaderRow {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("header_row",
				fmt.Sprintf("Header row must be a number between 0 and %d", h.maxHeaderRow)))
			return
		}
	}
	sheet := strings.TrimSpace(r.FormValue("sheet"))

	h.logger.InfoContext(r.Context(), "processing upload",
		slog.String("request_id", reqID),
		slog.String("filename", header.Filename),
		slog.String("sheet", sheet),
		slog.Int("header_row", headerRow),
	)

	tempPath, err := h.spoolUpload(file, ext)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to spool upload",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}
	defer os.Remove(tempPath)

	result, err := h.service.ProcessFile(r.Context(), tempPath, sheet, headerRow)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "processing failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
			slog.String("filename", header.Filename),
		)
		h.errorHandler.HandleError(w, r, mapProcessError(err))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":       "success",
		"data":         result,
		"download_url": "/api/download/" + result.OutputFile,
	})
}

// Download handles GET /api/download/{filename} for previously produced
// output workbooks.
func (h *ProcessHandler) Download(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())
	filename := chi.URLParam(r, "filename")

	path, err := h.service.OutputPath(filename)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("filename", "Invalid output file name"))
		return
	}

	if _, err := os.Stat(path); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NotFoundError(fmt.Sprintf("Output file '%s'", filename)))
		return
	}

	h.logger.InfoContext(r.Context(), "serving output file",
		slog.String("request_id", reqID),
		slog.String("filename", filename),
	)

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	http.ServeFile(w, r, path)
}

// spoolUpload copies the uploaded stream to a temp file inside the
// uploads directory, keeping the original extension so format routing in
// the reader still applies.
func (h *ProcessHandler) spoolUpload(src io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(h.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}
	tmp, err := os.CreateTemp(h.uploadsDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return tmp.Name(), nil
}

// mapProcessError converts service and reader failures into structured
// API errors. Anything unrecognized propagates as an internal error.
func mapProcessError(err error) error {
	var unsupported *reader.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return apierrors.NewWithDetails(
			http.StatusBadRequest,
			"UNSUPPORTED_FORMAT",
			unsupported.Error(),
			map[string]interface{}{"extension": unsupported.Ext},
		)
	}

	var readErr *reader.ReadError
	if errors.As(err, &readErr) {
		return apierrors.New(
			http.StatusUnprocessableEntity,
			"SOURCE_READ_FAILED",
			readErr.Error(),
		)
	}

	if errors.Is(err, services.ErrHeaderRowHigh) {
		return apierrors.ErrValidation("header_row", err.Error())
	}

	return err
}
