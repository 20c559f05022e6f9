package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/microboard/backend/internal/middleware"
	"github.com/microboard/backend/internal/models"
	"github.com/microboard/backend/internal/repositories"
	"github.com/microboard/backend/internal/service"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes. Listings are public;
// every mutation goes through the auth middleware.
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.GET("/posts", h.ListPosts)
	e.GET("/posts/user/:username", h.ListPostsByUsername)

	g := e.Group("", authMW)
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/like", h.LikePost)
	g.DELETE("/posts/:id/like", h.UnlikePost)
}

// principalID extracts the authenticated user's ID from the request
// context, or service.NoPrincipal when there is none.
func principalID(c echo.Context) uint {
	if claims, ok := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims); ok {
		return claims.UserID
	}
	return service.NoPrincipal
}

// httpError translates service and repository failures to wire statuses.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized")
	case errors.Is(err, repositories.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, repositories.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrAlreadyLiked):
		return echo.NewHTTPError(http.StatusBadRequest, "Post already liked")
	case errors.Is(err, service.ErrNotLiked):
		return echo.NewHTTPError(http.StatusBadRequest, "Post not liked yet")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// ListPosts retrieves the full feed, newest first
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// ListPostsByUsername retrieves one author's posts, newest first
func (h *PostHandler) ListPostsByUsername(c echo.Context) error {
	posts, err := h.postService.ListByAuthorName(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost creates a new post owned by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.Create(c.Request().Context(), principalID(c), req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces the content of a post owned by the authenticated user
func (h *PostHandler) UpdatePost(c echo.Context) error {
	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.Update(c.Request().Context(), principalID(c), c.Param("id"), req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost permanently removes a post owned by the authenticated user
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postService.Delete(c.Request().Context(), principalID(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted"})
}

// LikePost adds the authenticated user to the post's likers
func (h *PostHandler) LikePost(c echo.Context) error {
	post, err := h.postService.Like(c.Request().Context(), principalID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// UnlikePost removes the authenticated user from the post's likers
func (h *PostHandler) UnlikePost(c echo.Context) error {
	post, err := h.postService.Unlike(c.Request().Context(), principalID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}
