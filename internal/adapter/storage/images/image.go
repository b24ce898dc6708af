package images

import (
	"context"
	stdErrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/The-Gleb/banner_admin/internal/domain/service"
	"github.com/The-Gleb/banner_admin/internal/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const (
	MaxImageSize = 10 << 20
	bannersDir   = "banners"
)

var _ service.ImageStore = new(imageStore)

type imageStore struct {
	fs afero.Fs
}

// NewImageStore keeps banner images under fs. References it hands out look
// like "/banners/<uuid>.<ext>" and are relative to the uploads root.
func NewImageStore(fs afero.Fs) *imageStore {
	return &imageStore{fs: fs}
}

func (s *imageStore) Save(ctx context.Context, upload entity.ImageUpload) (string, error) {
	data, err := io.ReadAll(io.LimitReader(upload.Reader, MaxImageSize+1))
	if err != nil {
		slog.Error("error reading uploaded image", "error", err, "filename", upload.Filename)
		return "", errors.WrapIntoDomainError(err, errors.ErrImageStore, "read upload")
	}
	if len(data) > MaxImageSize {
		return "", errors.NewDomainError(errors.ErrBadRequest, "image %q exceeds %d bytes", upload.Filename, MaxImageSize)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", errors.NewDomainError(errors.ErrBadRequest, "%q is not an image (%s)", upload.Filename, mtype.String())
	}

	if err := s.fs.MkdirAll("/"+bannersDir, 0o755); err != nil {
		slog.Error("error creating uploads dir", "error", err)
		return "", errors.WrapIntoDomainError(err, errors.ErrImageStore, "mkdir")
	}

	name := path.Join("/", bannersDir, uuid.NewString()+mtype.Extension())
	if err := afero.WriteFile(s.fs, name, data, 0o644); err != nil {
		slog.Error("error writing image", "error", err, "name", name)
		return "", errors.WrapIntoDomainError(err, errors.ErrImageStore, "write image")
	}

	slog.Debug("image stored", "name", name, "mime", mtype.String(), "size", len(data))

	return name, nil
}

// Remove deletes a previously saved image. References outside the banners
// directory are ignored.
func (s *imageStore) Remove(ctx context.Context, ref string) error {
	name := path.Clean("/" + ref)
	if !strings.HasPrefix(name, "/"+bannersDir+"/") {
		slog.Warn("refusing to remove image outside of uploads", "ref", ref)
		return nil
	}

	err := s.fs.Remove(name)
	if err != nil && !stdErrors.Is(err, fs.ErrNotExist) {
		slog.Error("error removing image", "error", err, "name", name)
		return errors.WrapIntoDomainError(err, errors.ErrImageStore, "remove image")
	}

	return nil
}

// Handler serves stored images read-only.
func (s *imageStore) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(afero.NewReadOnlyFs(s.fs)).Dir("/"))
}
