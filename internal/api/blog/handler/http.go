package blogHandler

import (
	blogService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogService.IBlogsService
	debug        bool
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	blogsService blogService.IBlogsService,
	debug bool,
) *BlogHandler {
	return &BlogHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: blogsService,
		debug:        debug,
	}
}

// Start registers the blog routes. Static paths come before "/:id" so they
// are never captured as ids.
func (h *BlogHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Get("", h.GetAllBlogs)
	blogs.Get("/search", h.SearchBlogs)
	blogs.Get("/sort", h.SortBlogs)
	blogs.Get("/tags/all", h.GetAllTags)
	blogs.Get("/tags/popular", h.GetPopularTags)
	blogs.Get("/tag/:tag", h.GetBlogsByTag)
	blogs.Post("/upload", h.middleware.NewTokenMiddleware, h.UploadImage)

	blogs.Post("", h.middleware.NewTokenMiddleware, h.CreateBlog)
	blogs.Get("/:id", h.GetBlogByID)
	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlog)
	blogs.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBlog)

	blogs.Post("/:id/comment", h.AddComment)
	blogs.Post("/:id/like", h.LikeBlog)
	blogs.Post("/:id/view", h.ViewBlog)
	blogs.Post("/:id/upload-image", h.middleware.NewTokenMiddleware, h.AttachImage)
}
