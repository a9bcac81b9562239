package handler

import "time"

type createPostRequest struct {
	Title     string   `json:"title"     validate:"required"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content"   validate:"required"`
	Excerpt   string   `json:"excerpt"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

type updatePostRequest struct {
	Title     *string  `json:"title"`
	Slug      *string  `json:"slug"`
	Content   *string  `json:"content"`
	Excerpt   *string  `json:"excerpt"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

type postResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	AuthorName  string     `json:"author_name"`
	AuthorEmail string     `json:"author_email"`
	Tags        []string   `json:"tags,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type listPostsResponse struct {
	Data       []postResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// publicPostResponse is the brochure-site view: rendered HTML instead of raw
// markdown, no author email.
type publicPostResponse struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	HTML        string     `json:"html,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	AuthorName  string     `json:"author_name"`
	Tags        []string   `json:"tags,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type listPublicPostsResponse struct {
	Data       []publicPostResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}
