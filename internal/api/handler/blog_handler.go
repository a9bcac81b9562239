package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
	"github.com/pixelworks/agency-api/internal/render"
)

// BlogHandler handles blog post CRUD for the back office and published reads
// for the brochure site.
type BlogHandler struct {
	service ports.PostService
}

func NewBlogHandler(service ports.PostService) *BlogHandler {
	return &BlogHandler{service: service}
}

// Create handles POST /api/admin/blog.
//
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, name, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Tags:        req.Tags,
		Published:   req.Published,
		AuthorEmail: email,
		AuthorName:  name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List handles GET /api/admin/blog with optional published/tag filters.
//
// @Summary      List blog posts
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        published  query     bool    false  "Filter by published state"
// @Param        tag        query     string  false  "Filter by tag"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 10)"
// @Success      200        {object}  listPostsResponse
// @Router       /api/admin/blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ListPostsInput{
		Published: queryBool(c, "published"),
		Tag:       c.QueryParam("tag"),
		Page:      queryInt(c, "page", 0),
		Limit:     queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	items := make([]postResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toPostResponse(p))
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		Data:       items,
		Pagination: toPagination(page.Total, page.Page, page.Limit, page.TotalPages),
	})
}

// Get handles GET /api/admin/blog/:id.
func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Update handles PUT /api/admin/blog/:id with a partial payload.
func (h *BlogHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /api/admin/blog/:id.
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

// PublicList handles GET /api/blog: published posts only, excerpts without
// rendered bodies.
//
// @Summary      List published posts
// @Tags         blog
// @Produce      json
// @Param        tag    query     string  false  "Filter by tag"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Page size (default 10)"
// @Success      200    {object}  listPublicPostsResponse
// @Router       /api/blog [get]
func (h *BlogHandler) PublicList(c echo.Context) error {
	published := true
	page, err := h.service.List(c.Request().Context(), ports.ListPostsInput{
		Published: &published,
		Tag:       c.QueryParam("tag"),
		Page:      queryInt(c, "page", 0),
		Limit:     queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	items := make([]publicPostResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toPublicPostResponse(p, ""))
	}

	return c.JSON(http.StatusOK, listPublicPostsResponse{
		Data:       items,
		Pagination: toPagination(page.Total, page.Page, page.Limit, page.TotalPages),
	})
}

// PublicGet handles GET /api/blog/:slug with the post body rendered to
// sanitized HTML.
func (h *BlogHandler) PublicGet(c echo.Context) error {
	post, err := h.service.GetPublished(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	html, err := render.Markdown(post.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPublicPostResponse(post, html))
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		AuthorName:  p.AuthorName,
		AuthorEmail: p.AuthorEmail,
		Tags:        p.Tags,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPublicPostResponse(p *domain.Post, html string) publicPostResponse {
	return publicPostResponse{
		Title:       p.Title,
		Slug:        p.Slug,
		HTML:        html,
		Excerpt:     p.Excerpt,
		AuthorName:  p.AuthorName,
		Tags:        p.Tags,
		PublishedAt: p.PublishedAt,
	}
}

func toPagination(total int64, page, limit, pages int) paginationResponse {
	return paginationResponse{
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: pages,
	}
}
