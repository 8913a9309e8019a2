package service

import "context"

// MediaKind partitions uploads into policy buckets. Each kind carries its own
// size cap and extension allowlist.
type MediaKind string

const (
	// MediaKindImage is a post or story image upload.
	MediaKindImage MediaKind = "images"

	// MediaKindVideo is a video upload.
	MediaKindVideo MediaKind = "videos"

	// MediaKindProfile is a profile picture upload.
	MediaKindProfile MediaKind = "profiles"
)

// MediaStorage defines the interface for persisting uploaded media.
type MediaStorage interface {
	// Save validates the payload against the kind's policy, stores it under a
	// fresh unique key and returns the stable URL of the stored object.
	// Policy violations surface as domain errors, not storage errors.
	Save(ctx context.Context, kind MediaKind, filename string, data []byte) (string, error)
}
