// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/config"
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
	LikeHandler    *handler.LikeHandler
	StoryHandler   *handler.StoryHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; mutations require a valid access token except the
// expiry sweep, which only flips already-expired rows.
// API groups carry the small request-body limit; upload routes are left
// on the server-wide media ceiling.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate
	apiLimit := echomiddleware.BodyLimit(p.Config.HTTP.MaxRequestBodySize)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth", apiLimit)
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
	}

	// The authenticated user's own account. The profile picture upload is
	// registered outside the group so it skips the API body limit.
	meGroup := e.Group("/me", authed, apiLimit)
	{
		meGroup.GET("", p.UserHandler.GetProfile)
		meGroup.PUT("", p.UserHandler.UpdateProfile)
		meGroup.PUT("/password", p.UserHandler.ChangePassword)
		meGroup.DELETE("", p.UserHandler.DeleteAccount)
		meGroup.GET("/posts", p.PostHandler.ListOwnPosts)
		meGroup.GET("/comments", p.CommentHandler.ListOwnComments)
		meGroup.GET("/likes", p.LikeHandler.ListOwnLikes)
		meGroup.GET("/stories", p.StoryHandler.ListOwnStories)
		meGroup.GET("/followers", p.FollowHandler.ListOwnFollowers)
		meGroup.GET("/following", p.FollowHandler.ListOwnFollowing)
	}
	e.POST("/me/profile-picture", p.UploadHandler.UploadProfilePicture, authed)

	// User profiles and the follow graph
	userGroup := e.Group("/users", apiLimit)
	{
		userGroup.GET("", p.UserHandler.ListUsers)
		userGroup.GET("/:id", p.UserHandler.GetUser)
		userGroup.GET("/:id/posts", p.PostHandler.ListUserPosts)
		userGroup.GET("/:id/stories", p.StoryHandler.ListUserStories)
		userGroup.GET("/:id/followers", p.FollowHandler.ListFollowers)
		userGroup.GET("/:id/following", p.FollowHandler.ListFollowing)
		userGroup.GET("/:id/follow-stats", p.FollowHandler.GetFollowStats, authed)
		userGroup.POST("/:id/follow", p.FollowHandler.Follow, authed)
		userGroup.DELETE("/:id/follow", p.FollowHandler.Unfollow, authed)
	}

	// Posts, comments and likes
	postGroup := e.Group("/posts", apiLimit)
	{
		postGroup.GET("", p.PostHandler.ListPosts)
		postGroup.GET("/:id", p.PostHandler.GetPost)
		postGroup.POST("", p.PostHandler.CreatePost, authed)
		postGroup.PUT("/:id", p.PostHandler.UpdatePost, authed)
		postGroup.DELETE("/:id", p.PostHandler.DeletePost, authed)

		postGroup.GET("/:id/comments", p.CommentHandler.ListPostComments)
		postGroup.POST("/:id/comments", p.CommentHandler.CreateComment, authed)

		postGroup.GET("/:id/likes", p.LikeHandler.ListPostLikes)
		postGroup.GET("/:id/likes/count", p.LikeHandler.CountPostLikes)
		postGroup.POST("/:id/like", p.LikeHandler.ToggleLike, authed)
		postGroup.GET("/:id/like", p.LikeHandler.GetLikeStatus, authed)
	}

	commentGroup := e.Group("/comments", authed, apiLimit)
	{
		commentGroup.PUT("/:id", p.CommentHandler.UpdateComment)
		commentGroup.DELETE("/:id", p.CommentHandler.DeleteComment)
	}

	// Stories. The cleanup sweep is idempotent and unauthenticated.
	storyGroup := e.Group("/stories", apiLimit)
	{
		storyGroup.GET("", p.StoryHandler.ListStories)
		storyGroup.GET("/:id", p.StoryHandler.GetStory)
		storyGroup.POST("", p.StoryHandler.CreateStory, authed)
		storyGroup.DELETE("/:id", p.StoryHandler.DeleteStory, authed)
		storyGroup.POST("/cleanup", p.StoryHandler.CleanupStories)
	}

	// Media uploads run under the server-wide media ceiling only.
	e.POST("/upload/:kind", p.UploadHandler.Upload, authed)
}
