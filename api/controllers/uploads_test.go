package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bloomandblossom/florist-backend/pkg/storage/local"
)

type stubFileStore struct {
	saveFn   func(ctx context.Context, originalName string, r io.Reader) (string, error)
	deleteFn func(ctx context.Context, filename string) error
}

func (s stubFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	return s.saveFn(ctx, originalName, r)
}

func (s stubFileStore) Delete(ctx context.Context, filename string) error {
	return s.deleteFn(ctx, filename)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, writer.FormDataContentType()
}

func TestAdminUploadReturnsURL(t *testing.T) {
	store := stubFileStore{
		saveFn: func(ctx context.Context, originalName string, r io.Reader) (string, error) {
			if originalName != "rose.jpg" {
				t.Fatalf("unexpected filename %q", originalName)
			}
			return "/uploads/abc.jpg", nil
		},
	}

	body, contentType := multipartBody(t, "file", "rose.jpg", []byte("fake-image"))
	handler := AdminUpload(store, nil)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminUploadRejectsDisallowedExtension(t *testing.T) {
	store := stubFileStore{
		saveFn: func(ctx context.Context, originalName string, r io.Reader) (string, error) {
			return "", local.ErrDisallowedExtension
		},
	}

	body, contentType := multipartBody(t, "file", "script.exe", []byte("nope"))
	handler := AdminUpload(store, nil)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUploadRequiresFileField(t *testing.T) {
	store := stubFileStore{
		saveFn: func(ctx context.Context, originalName string, r io.Reader) (string, error) {
			t.Fatal("save must not be called without a file field")
			return "", nil
		},
	}

	body, contentType := multipartBody(t, "wrong_field", "rose.jpg", []byte("fake"))
	handler := AdminUpload(store, nil)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminDeleteUploadMapsMissingFile(t *testing.T) {
	store := stubFileStore{
		deleteFn: func(ctx context.Context, filename string) error {
			return os.ErrNotExist
		},
	}

	handler := AdminDeleteUpload(store, nil)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "filename", "gone.jpg")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
