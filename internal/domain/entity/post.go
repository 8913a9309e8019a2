package entity

import "time"

// Post is a permanent piece of user content. Unlike a Story it carries no
// expiry and is hard-deleted by its owner (the store cascades comments and
// likes).
type Post struct {
	ID        int64     // Numeric identity, generated by the database.
	UserID    int64     // The owning user's ID.
	Content   string    // The post body.
	CreatedAt time.Time // Timestamp of creation.
}

// Comment is a user's remark attached to a single post.
type Comment struct {
	ID        int64     // Numeric identity, generated by the database.
	UserID    int64     // The commenting user's ID.
	PostID    int64     // The post this comment belongs to.
	Content   string    // The comment body.
	CreatedAt time.Time // Timestamp of creation.
}
