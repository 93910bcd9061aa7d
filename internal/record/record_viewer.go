package record

import (
	"context"
	"errors"
	"sync"
	"time"

	"record-viewer/internal/events"
	recorderrors "record-viewer/internal/record/errors"
	"record-viewer/internal/shared/apperror"
	"record-viewer/internal/shared/audit"
	"record-viewer/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const loadRecordsKey = "records:load"

type Viewer interface {
	LoadRecords(ctx context.Context) error
	SelectFile(file FileHandle)
	Upload(ctx context.Context) (UploadResponse, error)
	SetSearchTerm(term string)
	SetPage(n int)
	View() RecordView
	Query(q ListRecordsQuery) RecordView
	Filtered(term string) []Record
	Snapshot() ViewState
	TakeNotices() []string
	Notify(msg string)
}

type viewer struct {
	client    Client
	guard     UploadGuard
	publisher EventPublisher
	audit     audit.Logger
	sf        *singleflight.Group
	logger    *zap.Logger

	mu         sync.Mutex
	records    []Record
	searchTerm string
	page       int
	selected   *FileHandle
	uploading  bool
	notices    []string
	loadSeq    uint64
	appliedSeq uint64
}

func NewViewer(
	client Client,
	guard UploadGuard,
	publisher EventPublisher,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Viewer {
	l := zap.L().Named("record.viewer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.viewer")
	}
	if guard == nil {
		guard = NewLocalUploadGuard()
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &viewer{
		client:    client,
		guard:     guard,
		publisher: publisher,
		audit:     auditLogger,
		sf:        &singleflight.Group{},
		logger:    l,
		records:   []Record{},
		page:      1,
	}
}

// LoadRecords replaces the record set with the backend's list. Callers that
// arrive while a load is outstanding share its result. On failure the
// current set is kept and a notice is queued.
func (v *viewer) LoadRecords(ctx context.Context) error {
	log := contextutil.GetLogger(ctx, v.logger)

	_, err, shared := v.sf.Do(loadRecordsKey, func() (any, error) {
		v.mu.Lock()
		v.loadSeq++
		seq := v.loadSeq
		v.mu.Unlock()

		// The fetch outlives the first caller's cancellation; other callers
		// may be waiting on it. The client timeout bounds it.
		records, err := v.client.FetchRecords(context.WithoutCancel(ctx))
		if err != nil {
			// Once per fetch, not once per waiting caller.
			v.Notify(recorderrors.ErrFetchFailed.Message)
			return nil, err
		}
		v.applyRecords(seq, records, log)
		return nil, nil
	})
	if err != nil {
		log.Warn("load records failed", zap.Bool("shared", shared), zap.Error(err))
		return apperror.Wrap(err, recorderrors.ErrFetchFailed)
	}
	return nil
}

func (v *viewer) applyRecords(seq uint64, records []Record, log *zap.Logger) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if seq < v.appliedSeq {
		log.Debug("discarding stale record list",
			zap.Uint64("seq", seq),
			zap.Uint64("applied_seq", v.appliedSeq),
		)
		return
	}
	v.appliedSeq = seq
	v.records = records

	// Keep the page inside [1, totalPages] when the new set is smaller.
	total := TotalPages(len(Filter(v.records, v.searchTerm)), PageSize)
	if v.page > total {
		v.page = max(total, 1)
	}

	log.Info("record list replaced", zap.Int("count", len(records)))
}

func (v *viewer) SelectFile(file FileHandle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = &file
}

// Upload sends the selected file to the backend. Only one upload may be in
// flight; a second call returns ErrUploadInProgress without any network
// traffic. After success the record list is fetched again.
func (v *viewer) Upload(ctx context.Context) (UploadResponse, error) {
	log := contextutil.GetLogger(ctx, v.logger)

	v.mu.Lock()
	if v.selected == nil {
		v.notices = append(v.notices, recorderrors.ErrNoFileSelected.Message)
		v.mu.Unlock()
		return UploadResponse{}, recorderrors.ErrNoFileSelected
	}
	if v.uploading {
		v.notices = append(v.notices, recorderrors.ErrUploadInProgress.Message)
		v.mu.Unlock()
		return UploadResponse{}, recorderrors.ErrUploadInProgress
	}
	file := *v.selected
	v.uploading = true
	v.mu.Unlock()

	release, err := v.guard.Acquire(ctx)
	if err != nil {
		v.finishUpload(false, "")
		if errors.Is(err, recorderrors.ErrUploadInProgress) {
			log.Info("upload lock held elsewhere", zap.String("file_name", file.Name))
			v.Notify(recorderrors.ErrUploadInProgress.Message)
			return UploadResponse{}, recorderrors.ErrUploadInProgress
		}
		log.Error("acquire upload lock failed", zap.Error(err))
		v.Notify(recorderrors.ErrUploadFailed.Message)
		return UploadResponse{}, apperror.Wrap(err, recorderrors.ErrUploadFailed)
	}

	resp, err := v.client.Upload(ctx, file)
	release()
	if err != nil {
		log.Error("upload failed",
			zap.String("file_name", file.Name),
			zap.Int("size", len(file.Content)),
			zap.Error(err),
		)
		v.finishUpload(false, recorderrors.ErrUploadFailed.Message)
		return UploadResponse{}, apperror.Wrap(err, recorderrors.ErrUploadFailed)
	}

	v.finishUpload(true, resp.Message)
	log.Info("upload succeeded", zap.String("file_name", file.Name))

	rid := contextutil.GetRequestID(ctx)
	v.audit.Log(ctx, audit.Log{
		Action:  "RECORDS_UPLOADED",
		Message: resp.Message,
		Meta: map[string]any{
			"file_name":  file.Name,
			"size":       len(file.Content),
			"request_id": rid,
		},
	})

	event := events.RecordsUploadedEvent{
		EventType:  "records_uploaded",
		RequestID:  rid,
		FileName:   file.Name,
		FileSize:   len(file.Content),
		Message:    resp.Message,
		OccurredAt: time.Now().UTC(),
	}
	if err := v.publisher.PublishRecordsUploaded(ctx, event); err != nil {
		log.Warn("publish records_uploaded failed", zap.Error(err))
	}

	// A load started before the upload must not satisfy the refresh.
	v.sf.Forget(loadRecordsKey)
	_ = v.LoadRecords(ctx)

	return resp, nil
}

// finishUpload drops the in-flight flag. The selected file is only cleared
// on success; a failed upload keeps it so the user can retry.
func (v *viewer) finishUpload(success bool, notice string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.uploading = false
	if success {
		v.selected = nil
	}
	if notice != "" {
		v.notices = append(v.notices, notice)
	}
}

func (v *viewer) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchTerm = term
	v.page = 1
}

// SetPage is not clamped; callers pass values from the rendered page range.
func (v *viewer) SetPage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = n
}

func (v *viewer) View() RecordView {
	v.mu.Lock()
	records, term, page := v.records, v.searchTerm, v.page
	v.mu.Unlock()

	return DeriveView(records, term, page, PageSize)
}

// Query derives a view from the current record set without touching the
// viewer's own search term or page.
func (v *viewer) Query(q ListRecordsQuery) RecordView {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = PageSize
	}

	return DeriveView(v.currentRecords(), q.Search, page, pageSize)
}

func (v *viewer) Filtered(term string) []Record {
	return Filter(v.currentRecords(), term)
}

func (v *viewer) Snapshot() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := ViewState{
		Uploading:   v.uploading,
		SearchTerm:  v.searchTerm,
		Page:        v.page,
		RecordCount: len(v.records),
	}
	if v.selected != nil {
		state.SelectedFile = v.selected.Name
	}
	return state
}

func (v *viewer) TakeNotices() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.notices
	v.notices = nil
	return out
}

// Notify queues a message for the user.
func (v *viewer) Notify(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notices = append(v.notices, msg)
}

// currentRecords returns the slice as stored. It is replaced, never mutated,
// so readers may use it after the lock is released.
func (v *viewer) currentRecords() []Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.records
}
