package entity

import "time"

// Follow is a directed edge between two users. The pair
// (FollowerID, FollowingID) is unique; the database constraint is the
// authoritative guard against duplicate edges under concurrent requests.
type Follow struct {
	ID          int64     // Numeric identity, generated by the database.
	FollowerID  int64     // The user who follows.
	FollowingID int64     // The user being followed.
	CreatedAt   time.Time // Timestamp of when the edge was created.
}

// Like is a directed edge from a user to a post. The pair (UserID, PostID)
// is unique. Likes are toggled: liking an already-liked post removes the edge.
type Like struct {
	ID        int64     // Numeric identity, generated by the database.
	UserID    int64     // The liking user's ID.
	PostID    int64     // The liked post's ID.
	CreatedAt time.Time // Timestamp of when the edge was created.
}

// FollowStats summarizes a user's follow edges from the viewpoint of another user.
type FollowStats struct {
	UserID         int64 // The user the stats describe.
	FollowersCount int64 // Number of users following UserID.
	FollowingCount int64 // Number of users UserID follows.
	IsFollowing    bool  // Whether the requesting user currently follows UserID.
}
