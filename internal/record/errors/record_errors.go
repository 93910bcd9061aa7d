package recorderrors

import (
	"net/http"

	"record-viewer/internal/shared/apperror"
)

var (
	ErrFetchFailed = apperror.New(
		apperror.CodeUpstreamFailed,
		"Failed to fetch records",
		http.StatusBadGateway,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeUpstreamFailed,
		"Upload failed",
		http.StatusBadGateway,
	)
	ErrNoFileSelected = apperror.New(
		apperror.CodeInvalidInput,
		"Please select a file",
		http.StatusBadRequest,
	)
	ErrUploadInProgress = apperror.New(
		apperror.CodeConflict,
		"An upload is already in progress",
		http.StatusConflict,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeFileTooLarge,
		"File is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to export records",
		http.StatusInternalServerError,
	)
)
