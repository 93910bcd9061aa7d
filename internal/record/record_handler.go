package record

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	recorderrors "record-viewer/internal/record/errors"
	"record-viewer/internal/shared/apperror"
	"record-viewer/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
)

type Handler struct {
	viewer         Viewer
	tmpl           *template.Template
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewHandler(viewer Viewer, maxUploadBytes int64, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("record.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.handler")
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{
		viewer:         viewer,
		tmpl:           PageTemplate(),
		maxUploadBytes: maxUploadBytes,
		logger:         l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("record request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// --- HTML ---

func (h *Handler) Page(c *gin.Context) {
	if raw := c.Query("page"); raw != "" {
		// Only pages that exist are stored; the viewer is shared.
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= h.viewer.View().TotalPages {
			h.viewer.SetPage(n)
		} else {
			h.logger.Debug("ignoring page out of range", zap.String("page", raw))
		}
	}

	data := PageData{
		View:    h.viewer.View(),
		State:   h.viewer.Snapshot(),
		Notices: h.viewer.TakeNotices(),
		Columns: Columns,
	}

	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     pageTemplateName,
		Data:     data,
	})
}

func (h *Handler) Search(c *gin.Context) {
	h.viewer.SetSearchTerm(c.PostForm("q"))
	c.Redirect(http.StatusSeeOther, "/")
}

// UploadForm handles the page's upload form. Outcomes are queued as notices
// and shown after the redirect.
func (h *Handler) UploadForm(c *gin.Context) {
	if err := h.selectFromRequest(c); err != nil {
		h.logger.Warn("http upload form rejected", zap.Error(err))
		h.viewer.Notify(apperror.ToHTTP(err).Message)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.viewer.Upload(c.Request.Context()); err != nil {
		h.logger.Debug("http upload form failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// --- JSON ---

func (h *Handler) List(c *gin.Context) {
	var q ListRecordsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http list records validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", "Input tidak valid", mapped.Message)
		return
	}

	view := h.viewer.Query(q)
	meta := response.NewPaginationMeta(int64(view.Total), view.Page, view.PageSize)
	response.Success(c, http.StatusOK, view.Records, &meta)
}

func (h *Handler) Refresh(c *gin.Context) {
	if err := h.viewer.LoadRecords(c.Request.Context()); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, RefreshResponse{Count: h.viewer.Snapshot().RecordCount}, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	if err := h.selectFromRequest(c); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.viewer.Upload(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	var q ExportQuery
	_ = c.ShouldBindQuery(&q)

	records := h.viewer.Filtered(q.Search)
	blob, err := BuildWorkbook(records)
	if err != nil {
		h.writeServiceError(c, apperror.Wrap(err, recorderrors.ErrExportFailed))
		return
	}

	name := fmt.Sprintf("records-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, ExportContentType, blob)
}

// selectFromRequest reads the multipart "file" field into the viewer. A
// request without a file is not an error here; Upload reports it.
func (h *Handler) selectFromRequest(c *gin.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil
		}
		return apperror.Wrap(err, apperror.ErrInvalidInput)
	}

	file, err := h.readFile(fh)
	if err != nil {
		return err
	}
	h.viewer.SelectFile(file)
	return nil
}

func (h *Handler) readFile(fh *multipart.FileHeader) (FileHandle, error) {
	if fh.Size > h.maxUploadBytes {
		return FileHandle{}, recorderrors.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return FileHandle{}, apperror.Wrap(err, apperror.ErrInvalidInput)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		return FileHandle{}, apperror.Wrap(err, apperror.ErrInvalidInput)
	}
	if int64(len(content)) > h.maxUploadBytes {
		return FileHandle{}, recorderrors.ErrFileTooLarge
	}

	return NewFileHandle(fh.Filename, content), nil
}
