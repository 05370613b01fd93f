package blogHandler

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"BlogGolang/internal/middleware"
	jwtPkg "BlogGolang/pkg/jwt"
	"BlogGolang/pkg/log"
	"BlogGolang/pkg/metrics"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogsService struct {
	blogs     map[string]entity.Blog
	lastTag   string
	lastSort  string
	lastQuery string
	mutations int
	attached  struct {
		slot string
		file *multipart.FileHeader
	}
}

func newFakeBlogsService() *fakeBlogsService {
	return &fakeBlogsService{blogs: map[string]entity.Blog{
		"b1": {ID: "b1", Title: "Go tips", Content: "body", Author: entity.DefaultAuthor, Tags: []string{"go"}, Likes: 2, Views: 7},
	}}
}

func (f *fakeBlogsService) get(id string) (entity.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return b, nil
}

func (f *fakeBlogsService) GetAllBlogs(_ context.Context, tag string) ([]entity.Blog, error) {
	f.lastTag = tag
	return []entity.Blog{f.blogs["b1"]}, nil
}

func (f *fakeBlogsService) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	return f.get(id)
}

func (f *fakeBlogsService) SearchBlogs(_ context.Context, q string) ([]entity.Blog, error) {
	f.lastQuery = q
	if strings.TrimSpace(q) == "" {
		return nil, blogs.ErrSearchQueryRequired
	}
	return []entity.Blog{}, nil
}

func (f *fakeBlogsService) SortBlogs(_ context.Context, by string) ([]entity.Blog, error) {
	f.lastSort = by
	return []entity.Blog{}, nil
}

func (f *fakeBlogsService) GetBlogsByTag(_ context.Context, tag string) ([]entity.Blog, error) {
	f.lastTag = tag
	return []entity.Blog{}, nil
}

func (f *fakeBlogsService) GetAllTags(context.Context) ([]string, error) {
	return []string{"api", "go"}, nil
}

func (f *fakeBlogsService) GetPopularTags(context.Context) ([]entity.TagCount, error) {
	return []entity.TagCount{{Tag: "go", Count: 3}, {Tag: "api", Count: 1}}, nil
}

func (f *fakeBlogsService) CreateBlog(_ context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	f.mutations++
	b := entity.Blog{ID: "new", Title: req.Title, Content: req.Content, Author: entity.DefaultAuthor, Tags: req.Tags}
	f.blogs[b.ID] = b
	return b, nil
}

func (f *fakeBlogsService) UpdateBlog(_ context.Context, id string, req blogs.UpdateBlogRequest) (entity.Blog, error) {
	b, err := f.get(id)
	if err != nil {
		return entity.Blog{}, err
	}
	f.mutations++
	if req.Title != nil {
		b.Title = *req.Title
	}
	f.blogs[id] = b
	return b, nil
}

func (f *fakeBlogsService) DeleteBlog(_ context.Context, id string) error {
	if _, err := f.get(id); err != nil {
		return err
	}
	f.mutations++
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogsService) AttachImage(_ context.Context, id string, slot string, file *multipart.FileHeader) (string, entity.Blog, error) {
	f.attached.slot = slot
	f.attached.file = file
	if !entity.ImageSlot(slot).Valid() {
		return "", entity.Blog{}, blogs.ErrInvalidImageType
	}
	if file == nil {
		return "", entity.Blog{}, blogs.ErrNoImageFile
	}
	b, err := f.get(id)
	if err != nil {
		return "", entity.Blog{}, err
	}
	b.BlogImage = "https://cdn.example.com/" + file.Filename
	f.blogs[id] = b
	return b.BlogImage, b, nil
}

func (f *fakeBlogsService) AddComment(_ context.Context, id string, req blogs.AddCommentRequest) (entity.Blog, error) {
	if req.Username == "" || req.Text == "" {
		return entity.Blog{}, blogs.ErrCommentFieldsRequired
	}
	b, err := f.get(id)
	if err != nil {
		return entity.Blog{}, err
	}
	b.Comments = append(b.Comments, entity.Comment{ID: "c1", BlogID: id, Username: req.Username, Text: req.Text})
	f.blogs[id] = b
	return b, nil
}

func (f *fakeBlogsService) LikeBlog(_ context.Context, id string) (int64, error) {
	b, err := f.get(id)
	if err != nil {
		return 0, err
	}
	b.Likes++
	f.blogs[id] = b
	return b.Likes, nil
}

func (f *fakeBlogsService) ViewBlog(_ context.Context, id string) (int64, error) {
	b, err := f.get(id)
	if err != nil {
		return 0, err
	}
	b.Views++
	f.blogs[id] = b
	return b.Views, nil
}

func (f *fakeBlogsService) UploadImage(_ context.Context, file *multipart.FileHeader) (string, error) {
	return "https://cdn.example.com/" + file.Filename, nil
}

type staticSessions struct {
	admin entity.Admin
}

func (s staticSessions) GetSessionAdmin(_ context.Context, id string) (entity.Admin, error) {
	if id != s.admin.ID {
		return entity.Admin{}, errors.New("not found")
	}
	return s.admin, nil
}

type fixture struct {
	app   *fiber.App
	svc   *fakeBlogsService
	token string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := log.NewDiscardLogger()
	tokens := jwtPkg.New("blog-secret", logger)
	token, _, err := tokens.Sign(map[string]interface{}{"id": "admin-1", "username": "root", "role": "admin"}, time.Hour)
	require.NoError(t, err)

	sessions := staticSessions{admin: entity.Admin{
		ID:          "admin-1",
		Username:    "root",
		Role:        entity.RoleAdmin,
		IsActive:    true,
		ActiveToken: sql.NullString{String: token, Valid: true},
	}}
	m := middleware.New(logger, tokens, sessions, metrics.Nop{}, middleware.CORSConfig{})

	svc := newFakeBlogsService()
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	New(logger, validator.New(), m, svc, false).Start(app.Group("/api"))

	return fixture{app: app, svc: svc, token: token}
}

func (f fixture) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func jsonRequest(method, path, body, token string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decode(t *testing.T, raw []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestGetAllBlogs_PassesTag(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blogs?tag=Go", nil))
	require.Equal(t, http.StatusOK, status)

	var list []blogs.BlogResponse
	decode(t, raw, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "b1", list[0].ID)
	assert.Equal(t, []string{"go"}, list[0].Tags)
	assert.NotNil(t, list[0].Comments)
	assert.Equal(t, "Go", f.svc.lastTag)
}

func TestStaticRoutesAreNotIDs(t *testing.T) {
	f := newFixture(t)

	status, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blogs/sort?by=likes", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "likes", f.svc.lastSort)

	status, raw := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blogs/tags/popular", nil))
	assert.Equal(t, http.StatusOK, status)
	var popular []blogs.TagCountResponse
	decode(t, raw, &popular)
	assert.Equal(t, []blogs.TagCountResponse{{Tag: "go", Count: 3}, {Tag: "api", Count: 1}}, popular)

	status, raw = f.do(t, httptest.NewRequest(http.MethodGet, "/api/blogs/tags/all", nil))
	assert.Equal(t, http.StatusOK, status)
	var tags []string
	decode(t, raw, &tags)
	assert.Equal(t, []string{"api", "go"}, tags)

	status, _ = f.do(t, httptest.NewRequest(http.MethodGet, "/api/blogs/tag/Rust", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rust", f.svc.lastTag)
}

func TestGetBlogsByTag_DecodesPath(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "space", path: "/api/blogs/tag/node%20js", want: "node js"},
		{name: "non-ascii", path: "/api/blogs/tag/caf%C3%A9", want: "café"},
		{name: "plain", path: "/api/blogs/tag/go", want: "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := f.do(t, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.want, f.svc.lastTag)
		})
	}
}

func TestGetBlogsByTag_MalformedEscape(t *testing.T) {
	f := newFixture(t)
	f.svc.lastTag = "untouched"

	req := httptest.NewRequest(http.MethodGet, "/api/blogs/tag/bad", nil)
	req.RequestURI = "/api/blogs/tag/bad%zz"
	status, raw := f.do(t, req)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "Invalid tag")
	assert.Equal(t, "untouched", f.svc.lastTag)
}

func TestSearchBlogs_MissingQuery(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blogs/search", nil))
	assert.Equal(t, http.StatusBadRequest, status)

	var body map[string]string
	decode(t, raw, &body)
	assert.Equal(t, "Search query is required", body["error"])
}

func TestGetBlogByID_NotFound(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blogs/missing", nil))
	assert.Equal(t, http.StatusNotFound, status)

	var body map[string]string
	decode(t, raw, &body)
	assert.Equal(t, "Blog not found", body["error"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/blogs", `{"title":"t","content":"c"}`},
		{http.MethodPut, "/api/blogs/b1", `{"title":"changed"}`},
		{http.MethodDelete, "/api/blogs/b1", ``},
		{http.MethodPost, "/api/blogs/upload", ``},
		{http.MethodPost, "/api/blogs/b1/upload-image", ``},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			status, raw := f.do(t, jsonRequest(tt.method, tt.path, tt.body, ""))
			assert.Equal(t, http.StatusUnauthorized, status)

			var body map[string]string
			decode(t, raw, &body)
			assert.Equal(t, "invalid or expired token", body["error"])
		})
	}

	assert.Zero(t, f.svc.mutations)
	assert.Equal(t, "Go tips", f.svc.blogs["b1"].Title)
}

func TestCreateBlog(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, jsonRequest(http.MethodPost, "/api/blogs", `{"title":"Hello","content":"World","tags":["go"]}`, f.token))
	require.Equal(t, http.StatusCreated, status)

	var blog blogs.BlogResponse
	decode(t, raw, &blog)
	assert.Equal(t, "Hello", blog.Title)
	assert.Equal(t, entity.DefaultAuthor, blog.Author)
}

func TestCreateBlog_MissingContent(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, jsonRequest(http.MethodPost, "/api/blogs", `{"title":"Hello"}`, f.token))
	assert.Equal(t, http.StatusBadRequest, status)

	var body map[string]string
	decode(t, raw, &body)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Contains(t, body["error"], "Content is required")
	assert.Zero(t, f.svc.mutations)
}

func TestUpdateAndDeleteBlog(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, jsonRequest(http.MethodPut, "/api/blogs/b1", `{"title":"Changed"}`, f.token))
	require.Equal(t, http.StatusOK, status)
	var blog blogs.BlogResponse
	decode(t, raw, &blog)
	assert.Equal(t, "Changed", blog.Title)

	status, raw = f.do(t, jsonRequest(http.MethodDelete, "/api/blogs/b1", "", f.token))
	require.Equal(t, http.StatusOK, status)
	var body map[string]string
	decode(t, raw, &body)
	assert.Equal(t, "Blog deleted successfully", body["message"])

	status, _ = f.do(t, jsonRequest(http.MethodDelete, "/api/blogs/b1", "", f.token))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAddComment(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, jsonRequest(http.MethodPost, "/api/blogs/b1/comment", `{"username":"ana","text":"nice"}`, ""))
	require.Equal(t, http.StatusOK, status)
	var blog blogs.BlogResponse
	decode(t, raw, &blog)
	require.Len(t, blog.Comments, 1)
	assert.Equal(t, "nice", blog.Comments[0].Text)
}

func TestAddComment_MissingText(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, jsonRequest(http.MethodPost, "/api/blogs/b1/comment", `{"username":"ana"}`, ""))
	assert.Equal(t, http.StatusBadRequest, status)

	var body map[string]string
	decode(t, raw, &body)
	assert.Equal(t, "Username and text are required", body["error"])
	assert.Empty(t, f.svc.blogs["b1"].Comments)
}

func TestLikeAndView(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, httptest.NewRequest(http.MethodPost, "/api/blogs/b1/like", nil))
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"likes":3}`, string(raw))

	status, raw = f.do(t, httptest.NewRequest(http.MethodPost, "/api/blogs/b1/view", nil))
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"views":8}`, string(raw))

	status, raw = f.do(t, httptest.NewRequest(http.MethodPost, "/api/blogs/missing/like", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotContains(t, string(raw), "likes")
}

func multipartRequest(t *testing.T, path, token string, fields map[string]string, fileName string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadImage(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, multipartRequest(t, "/api/blogs/upload", f.token, nil, "cover.png"))
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"imageUrl":"https://cdn.example.com/cover.png"}`, string(raw))

	status, raw = f.do(t, multipartRequest(t, "/api/blogs/upload", f.token, map[string]string{"x": "y"}, ""))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "No image file provided")
}

func TestAttachImage(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, multipartRequest(t, "/api/blogs/b1/upload-image", f.token, map[string]string{"imageType": "blogImage"}, "cover.png"))
	require.Equal(t, http.StatusOK, status)

	var body blogs.AttachImageResponse
	decode(t, raw, &body)
	assert.Equal(t, "https://cdn.example.com/cover.png", body.ImageURL)
	assert.Equal(t, body.ImageURL, body.UpdatedBlog.BlogImage)
	assert.Equal(t, "blogImage", f.svc.attached.slot)

	status, _ = f.do(t, multipartRequest(t, "/api/blogs/b1/upload-image", f.token, map[string]string{"imageType": "avatar"}, "cover.png"))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = f.do(t, multipartRequest(t, "/api/blogs/b1/upload-image", f.token, map[string]string{"imageType": "authorImage"}, ""))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Nil(t, f.svc.attached.file)

	status, _ = f.do(t, multipartRequest(t, "/api/blogs/missing/upload-image", f.token, map[string]string{"imageType": "authorImage"}, "a.png"))
	assert.Equal(t, http.StatusNotFound, status)
}
