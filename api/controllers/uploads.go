package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bloomandblossom/florist-backend/api/responses"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/storage/local"
)

// 32 MB of multipart form state in memory before spilling to disk.
const multipartMaxMemory = 32 << 20

type fileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Delete(ctx context.Context, filename string) error
}

// AdminUpload stores an image and returns its public URL.
func AdminUpload(store fileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "upload storage unavailable"))
			return
		}

		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field is required"))
			return
		}
		defer file.Close()

		url, err := store.Save(r.Context(), header.Filename, file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, uploadError(err))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"url": url})
	}
}

// AdminDeleteUpload removes a stored image by filename.
func AdminDeleteUpload(store fileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "upload storage unavailable"))
			return
		}

		filename := strings.TrimSpace(chi.URLParam(r, "filename"))
		if filename == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "filename is required"))
			return
		}

		if err := store.Delete(r.Context(), filename); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "file not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, uploadError(err))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, local.ErrDisallowedExtension):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file type not allowed")
	case errors.Is(err, local.ErrFileTooLarge):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file too large")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "storing upload")
	}
}
