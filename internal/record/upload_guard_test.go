package record_test

import (
	"context"
	"errors"
	"testing"

	"record-viewer/internal/record"
	recorderrors "record-viewer/internal/record/errors"
	recordMock "record-viewer/internal/record/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRedisUploadGuard_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("lock free", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.Regexp().ExpectSetNX(record.UploadLockKey, `.+`, record.UploadLockTTL).SetVal(true)

		release, err := record.NewRedisUploadGuard(rdb).Acquire(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, release)
		release()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock held elsewhere", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.Regexp().ExpectSetNX(record.UploadLockKey, `.+`, record.UploadLockTTL).SetVal(false)

		_, err := record.NewRedisUploadGuard(rdb).Acquire(ctx)

		assert.True(t, errors.Is(err, recorderrors.ErrUploadInProgress))
	})

	t.Run("redis error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.Regexp().ExpectSetNX(record.UploadLockKey, `.+`, record.UploadLockTTL).SetErr(errors.New("connection reset"))

		_, err := record.NewRedisUploadGuard(rdb).Acquire(ctx)

		assert.EqualError(t, err, "connection reset")
	})
}

func TestViewer_Upload_LockHeldElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := recordMock.NewMockClient(ctrl)

	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSetNX(record.UploadLockKey, `.+`, record.UploadLockTTL).SetVal(false)

	v := record.NewViewer(client, record.NewRedisUploadGuard(rdb), nil, nil)
	v.SelectFile(record.NewFileHandle("a.xlsx", []byte("x")))

	_, err := v.Upload(context.Background())

	assert.True(t, errors.Is(err, recorderrors.ErrUploadInProgress))
	state := v.Snapshot()
	assert.False(t, state.Uploading)
	assert.Equal(t, "a.xlsx", state.SelectedFile)
	assert.Equal(t, []string{"An upload is already in progress"}, v.TakeNotices())
}
