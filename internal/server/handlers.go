package server

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/filmperc/filmperc-go/internal/store"
	"github.com/filmperc/filmperc-go/pkg/filmperc"
	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
	"github.com/filmperc/filmperc-go/pkg/filmperc/output"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadField = "bestand"

// SearchRequest is the body of a title query.
type SearchRequest struct {
	Title    string `json:"master_title_description" validate:"required"`
	PlayWeek string `json:"play_week" validate:"required,datetime=2-1-2006"`
}

// UploadResponse acknowledges a stored percentages workbook.
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
}

// uploadInvoice parses an uploaded invoice workbook and returns its lines.
func (s *Server) uploadInvoice(c *gin.Context) {
	fh, ok := s.formWorkbook(c)
	if !ok {
		return
	}
	src, err := fh.Open()
	if err != nil {
		sendInternalError(c, err.Error())
		return
	}
	defer src.Close()

	path, cleanup, err := s.store.SaveScratch(src, ".xlsx")
	if err != nil {
		s.logger.Error("save invoice upload failed", zap.Error(err))
		sendInternalError(c, "could not store upload")
		return
	}
	defer cleanup()

	invoices, err := filmperc.LoadInvoices(path, s.cfg.Workbook.InvoiceSheet, s.cfg.InvoiceColumns())
	if err != nil {
		s.sendLoadError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoices)
}

// uploadPercentages stores the workbook searched by /zoek_films.
func (s *Server) uploadPercentages(c *gin.Context) {
	fh, ok := s.formWorkbook(c)
	if !ok {
		return
	}
	src, err := fh.Open()
	if err != nil {
		sendInternalError(c, err.Error())
		return
	}
	defer src.Close()

	path, err := s.store.SavePercentages(src)
	if err != nil {
		s.logger.Error("store percentages workbook failed", zap.Error(err))
		sendInternalError(c, "could not store upload")
		return
	}
	s.logger.Info("percentages workbook stored",
		zap.String("upload", fh.Filename),
		zap.Int64("bytes", fh.Size))
	sendSuccess(c, http.StatusOK, UploadResponse{Message: "file uploaded", FilePath: path})
}

// searchTitles matches a title against the stored workbook's play week.
func (s *Server) searchTitles(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, "invalid request body", err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		sendValidationError(c, "master_title_description and play_week (DD-MM-YYYY) are required", err.Error())
		return
	}

	var (
		result models.MatchResult
		header []string
		err    error
	)
	storeErr := s.store.WithPercentages(func(path string) error {
		table, loadErr := filmperc.LoadTable(path, s.cfg.Workbook.PercentagesSheet)
		if loadErr != nil {
			return loadErr
		}
		header = table.Header
		opts := s.cfg.SearchOptions()
		opts.Logger = s.logger
		result, err = filmperc.FindAndMatch(table, req.Title, req.PlayWeek, opts)
		return nil
	})
	if storeErr != nil {
		if errors.Is(storeErr, store.ErrNoWorkbook) {
			sendError(c, http.StatusConflict, ErrCodeConflict, "no percentages workbook uploaded", "")
			return
		}
		s.sendLoadError(c, storeErr)
		return
	}

	resp := output.NewSearchResponse(result, header)
	var dateErr *filmperc.DateParseError
	var weekErr *filmperc.WeekNotFoundError
	switch {
	case errors.As(err, &dateErr):
		sendValidationError(c, "invalid play_week", dateErr.Error())
	case errors.As(err, &weekErr):
		c.JSON(http.StatusNotFound, APIResponse{
			Success: false,
			Data:    resp,
			Error:   &APIError{Code: ErrCodeNotFound, Message: weekErr.Error()},
		})
	case err != nil:
		sendInternalError(c, err.Error())
	default:
		sendSuccess(c, http.StatusOK, resp)
	}
}

// formWorkbook extracts the uploaded xlsx file, answering the request itself on failure.
func (s *Server) formWorkbook(c *gin.Context) (*multipart.FileHeader, bool) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "upload too large", "")
			return nil, false
		}
		sendValidationError(c, "no file received", err.Error())
		return nil, false
	}
	if fh.Filename == "" {
		sendValidationError(c, "no file selected", "")
		return nil, false
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".xlsx":
		return fh, true
	case ".xls":
		sendValidationError(c, "legacy .xls workbooks are not supported", "save the file as .xlsx")
	default:
		sendValidationError(c, "invalid file type, only Excel workbooks are allowed", "")
	}
	return nil, false
}

func (s *Server) sendLoadError(c *gin.Context, err error) {
	var missing *filmperc.MissingColumnError
	switch {
	case errors.As(err, &missing):
		sendValidationError(c, missing.Error(), "")
	case errors.Is(err, filmperc.ErrInvalidFormat):
		sendValidationError(c, "file is not a valid xlsx workbook", err.Error())
	case errors.Is(err, filmperc.ErrSheetNotFound):
		sendValidationError(c, "workbook has no such sheet", err.Error())
	default:
		s.logger.Error("read workbook failed", zap.Error(err))
		sendInternalError(c, err.Error())
	}
}
