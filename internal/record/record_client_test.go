package record_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"record-viewer/internal/record"

	"github.com/stretchr/testify/assert"
)

func TestClient_FetchRecords(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/records", r.URL.Path)
			assert.Empty(t, r.URL.RawQuery)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"Empcode":"E1","FirstName":"Ann"},{"Empcode":"E2","FirstName":"Ben"}]`)
		}))
		defer srv.Close()

		c := record.NewClient(srv.URL+"/", time.Second)
		records, err := c.FetchRecords(context.Background())

		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "Ben", records[1].FirstName)
	})

	t.Run("null body gives empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `null`)
		}))
		defer srv.Close()

		records, err := record.NewClient(srv.URL, time.Second).FetchRecords(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("non 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "db down", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := record.NewClient(srv.URL, time.Second).FetchRecords(context.Background())

		var statusErr *record.StatusError
		assert.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
		assert.Equal(t, "db down", statusErr.Body)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := record.NewClient(url, time.Second).FetchRecords(context.Background())

		assert.Error(t, err)
	})
}

func TestClient_Upload(t *testing.T) {
	t.Run("sends multipart file field", func(t *testing.T) {
		content := []byte("PK\x03\x04 fake workbook")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/upload", r.URL.Path)

			f, fh, err := r.FormFile("file")
			if !assert.NoError(t, err) {
				return
			}
			defer f.Close()
			got, _ := io.ReadAll(f)

			assert.Equal(t, "staff.xlsx", fh.Filename)
			assert.Equal(t, content, got)
			assert.NotEmpty(t, fh.Header.Get("Content-Type"))

			_, _ = io.WriteString(w, `{"message":"File uploaded and data saved"}`)
		}))
		defer srv.Close()

		c := record.NewClient(srv.URL, time.Second)
		resp, err := c.Upload(context.Background(), record.NewFileHandle("staff.xlsx", content))

		assert.NoError(t, err)
		assert.Equal(t, "File uploaded and data saved", resp.Message)
	})

	t.Run("non 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"bad sheet"}`)
		}))
		defer srv.Close()

		_, err := record.NewClient(srv.URL, time.Second).Upload(context.Background(), record.NewFileHandle("a.xls", []byte("x")))

		var statusErr *record.StatusError
		assert.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	})
}
