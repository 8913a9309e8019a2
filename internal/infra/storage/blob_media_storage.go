// Package storage provides the concrete implementation of the media store
// backed by a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pulse/config"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"
	"pulse/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// mediaPolicy is the per-kind upload acceptance policy.
type mediaPolicy struct {
	maxSize           int64
	allowedExtensions map[string]struct{}
}

var mediaPolicies = map[service.MediaKind]mediaPolicy{
	service.MediaKindImage: {
		maxSize:           5 * 1024 * 1024,
		allowedExtensions: extSet(".png", ".jpg", ".jpeg", ".gif", ".webp"),
	},
	service.MediaKindVideo: {
		maxSize:           50 * 1024 * 1024,
		allowedExtensions: extSet(".mp4", ".mov", ".avi", ".wmv", ".flv"),
	},
	service.MediaKindProfile: {
		maxSize:           2 * 1024 * 1024,
		allowedExtensions: extSet(".png", ".jpg", ".jpeg", ".gif", ".webp"),
	},
}

func extSet(exts ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[ext] = struct{}{}
	}

	return set
}

// blobMediaStorage implements the MediaStorage interface over a blob bucket.
type blobMediaStorage struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobMediaStorage opens the local bucket directory and returns the
// implementation as a service.MediaStorage interface.
func NewBlobMediaStorage(params Params) (service.MediaStorage, error) {
	dir := "uploads"
	baseURL := "/uploads"
	if params.Config.Media != nil {
		if params.Config.Media.Dir != "" {
			dir = params.Config.Media.Dir
		}
		if params.Config.Media.BaseURL != "" {
			baseURL = params.Config.Media.BaseURL
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create media directory")
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobMediaStorage{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  params.Logger,
	}, nil
}

// Save validates the payload against the kind's policy, writes it under a
// fresh UUID key and returns the stored object's URL.
func (s *blobMediaStorage) Save(ctx context.Context, kind service.MediaKind, filename string, data []byte) (string, error) {
	policy, ok := mediaPolicies[kind]
	if !ok {
		return "", domainerrors.ErrFileTypeNotAllowed
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, allowed := policy.allowedExtensions[ext]; !allowed {
		return "", domainerrors.ErrFileTypeNotAllowed
	}

	if int64(len(data)) > policy.maxSize {
		return "", domainerrors.ErrFileTooLarge
	}

	key := string(kind) + "/" + uuid.NewString() + ext
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return "", errors.Wrap(err, "failed to write media object")
	}

	s.logger.InfoContext(ctx, "media object stored",
		slog.String("kind", string(kind)),
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return s.baseURL + "/" + key, nil
}
