package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-system/internal/api/metrics"
	"github.com/pressroom/content-system/internal/core/domain"
	"github.com/pressroom/content-system/internal/core/ports"
)

// PostHandler handles content submission, listing, moderation, and deletion.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts — submits a new post in the pending state.
//
// @Summary      Submit a new post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Author: claims.Username,
		Role:   claims.Role,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List handles GET /posts — returns every post regardless of status.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListAll(c.Request().Context(), claims.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// ListPending handles GET /posts/unvalidated — the moderation queue.
//
// @Summary      List posts awaiting moderation
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /posts/unvalidated [get]
func (h *PostHandler) ListPending(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListPending(c.Request().Context(), claims.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Moderate handles POST /posts/validate/:id — approves or rejects a post.
//
// @Summary      Moderate a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Post ID"
// @Param        body  body      moderateRequest  true  "Moderation decision"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /posts/validate/{id} [post]
func (h *PostHandler) Moderate(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req moderateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Moderate(c.Request().Context(), ports.ModeratePostInput{
		PostID:    c.Param("id"),
		Moderator: claims.Username,
		Role:      claims.Role,
		IsValid:   *req.IsValid,
		Note:      req.Note,
	})
	if err != nil {
		return err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues(string(post.Status)).Inc()
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id — removes a post when the caller is its
// author or holds the delete permission. The ownership rule lives in the
// service, so this route mounts only the Auth middleware.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ports.DeletePostInput{
		PostID:   c.Param("id"),
		Username: claims.Username,
		Role:     claims.Role,
	}); err != nil {
		return err
	}

	deleter := "author"
	if claims.Role == domain.RoleAdmin {
		deleter = "admin"
	}
	metrics.PostsDeletedTotal.WithLabelValues(deleter).Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}
