package blogs

import (
	"BlogGolang/internal/entity"
	"time"
)

type SortKey string

const (
	SortByCreatedAt SortKey = "createdAt"
	SortByLikes     SortKey = "likes"
	SortByTitle     SortKey = "title"
)

// ParseSortKey maps the "by" query value to a sort key. Anything unknown
// falls back to creation time.
func ParseSortKey(by string) SortKey {
	switch SortKey(by) {
	case SortByLikes:
		return SortByLikes
	case SortByTitle:
		return SortByTitle
	default:
		return SortByCreatedAt
	}
}

type CreateBlogRequest struct {
	Title           string   `json:"title" validate:"required,max=256"`
	Content         string   `json:"content" validate:"required"`
	Author          string   `json:"author" validate:"omitempty,max=100"`
	AuthorImage     string   `json:"authorImage" validate:"omitempty"`
	BlogImage       string   `json:"blogImage" validate:"omitempty"`
	Tags            []string `json:"tags" validate:"omitempty,max=50,dive,max=32"`
	MetaTitle       string   `json:"metaTitle" validate:"omitempty,max=70"`
	MetaDescription string   `json:"metaDescription" validate:"omitempty,max=160"`
}

// UpdateBlogRequest only carries the fields the caller supplied; nil means keep.
type UpdateBlogRequest struct {
	Title           *string   `json:"title" validate:"omitempty,max=256"`
	Content         *string   `json:"content"`
	Author          *string   `json:"author" validate:"omitempty,max=100"`
	AuthorImage     *string   `json:"authorImage"`
	BlogImage       *string   `json:"blogImage"`
	Tags            *[]string `json:"tags" validate:"omitempty,max=50,dive,max=32"`
	MetaTitle       *string   `json:"metaTitle" validate:"omitempty,max=70"`
	MetaDescription *string   `json:"metaDescription" validate:"omitempty,max=160"`
}

type AddCommentRequest struct {
	Username string `json:"username" validate:"max=50"`
	Text     string `json:"text" validate:"max=2000"`
}

// BlogDocument is the stored shape a post must satisfy after every write.
type BlogDocument struct {
	Title           string   `validate:"required,max=256"`
	Content         string   `validate:"required"`
	Author          string   `validate:"required,max=100"`
	Tags            []string `validate:"max=50,dive,min=1,max=32"`
	MetaTitle       string   `validate:"max=70"`
	MetaDescription string   `validate:"max=160"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlogResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Content         string            `json:"content"`
	Author          string            `json:"author"`
	AuthorImage     string            `json:"authorImage,omitempty"`
	BlogImage       string            `json:"blogImage,omitempty"`
	Likes           int64             `json:"likes"`
	Views           int64             `json:"views"`
	Tags            []string          `json:"tags"`
	MetaTitle       string            `json:"metaTitle,omitempty"`
	MetaDescription string            `json:"metaDescription,omitempty"`
	Comments        []CommentResponse `json:"comments"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type TagCountResponse struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

type LikesResponse struct {
	Likes int64 `json:"likes"`
}

type ViewsResponse struct {
	Views int64 `json:"views"`
}

type ImageUploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

type AttachImageResponse struct {
	Message     string       `json:"message"`
	ImageURL    string       `json:"imageUrl"`
	UpdatedBlog BlogResponse `json:"updatedBlog"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewBlogResponse(blog entity.Blog) BlogResponse {
	comments := make([]CommentResponse, 0, len(blog.Comments))
	for _, c := range blog.Comments {
		comments = append(comments, CommentResponse{
			ID:        c.ID,
			Username:  c.Username,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	tags := blog.Tags
	if tags == nil {
		tags = []string{}
	}

	return BlogResponse{
		ID:              blog.ID,
		Title:           blog.Title,
		Content:         blog.Content,
		Author:          blog.Author,
		AuthorImage:     blog.AuthorImage,
		BlogImage:       blog.BlogImage,
		Likes:           blog.Likes,
		Views:           blog.Views,
		Tags:            tags,
		MetaTitle:       blog.MetaTitle,
		MetaDescription: blog.MetaDescription,
		Comments:        comments,
		CreatedAt:       blog.CreatedAt,
		UpdatedAt:       blog.UpdatedAt,
	}
}

func NewBlogListResponse(list []entity.Blog) []BlogResponse {
	res := make([]BlogResponse, 0, len(list))
	for _, b := range list {
		res = append(res, NewBlogResponse(b))
	}
	return res
}
