package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newTestStorage(t *testing.T) *blobMediaStorage {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobMediaStorage{
		bucket:  bucket,
		baseURL: "/uploads",
		logger:  slog.Default(),
	}
}

func TestBlobMediaStorage_SaveImage(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.Save(context.Background(), service.MediaKindImage, "photo.jpg", []byte("fake image bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/images/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The stored object must be readable under the returned key.
	key := strings.TrimPrefix(url, "/uploads/")
	data, err := s.bucket.ReadAll(context.Background(), key)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)
}

func TestBlobMediaStorage_UniqueKeys(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.Save(context.Background(), service.MediaKindImage, "photo.jpg", []byte("a"))
	assert.NoError(t, err)

	second, err := s.Save(context.Background(), service.MediaKindImage, "photo.jpg", []byte("b"))
	assert.NoError(t, err)

	// Same filename, distinct stored objects.
	assert.NotEqual(t, first, second)
}

func TestBlobMediaStorage_ExtensionPolicy(t *testing.T) {
	s := newTestStorage(t)

	tests := []struct {
		name     string
		kind     service.MediaKind
		filename string
		wantErr  bool
	}{
		{"image png allowed", service.MediaKindImage, "pic.PNG", false},
		{"image gif allowed", service.MediaKindImage, "anim.gif", false},
		{"image webp allowed", service.MediaKindImage, "pic.webp", false},
		{"image exe rejected", service.MediaKindImage, "virus.exe", true},
		{"video mp4 allowed", service.MediaKindVideo, "clip.mp4", false},
		{"video wmv allowed", service.MediaKindVideo, "clip.wmv", false},
		{"video gif rejected", service.MediaKindVideo, "anim.gif", true},
		{"profile jpeg allowed", service.MediaKindProfile, "me.jpeg", false},
		{"profile mp4 rejected", service.MediaKindProfile, "me.mp4", true},
		{"missing extension rejected", service.MediaKindImage, "noext", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(context.Background(), tt.kind, tt.filename, []byte("payload"))
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrFileTypeNotAllowed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlobMediaStorage_SizePolicy(t *testing.T) {
	s := newTestStorage(t)

	// Profile uploads are capped at 2MB.
	oversized := make([]byte, 2*1024*1024+1)
	_, err := s.Save(context.Background(), service.MediaKindProfile, "me.jpg", oversized)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))

	// An image of the same size is still under the 5MB image cap.
	_, err = s.Save(context.Background(), service.MediaKindImage, "pic.jpg", oversized)
	assert.NoError(t, err)
}

func TestBlobMediaStorage_UnknownKind(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Save(context.Background(), service.MediaKind("documents"), "doc.pdf", []byte("x"))
	assert.True(t, errors.Is(err, domainerrors.ErrFileTypeNotAllowed))
}
