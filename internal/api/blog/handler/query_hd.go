package blogHandler

import (
	blogs "BlogGolang/internal/api/blog"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/handlerUtil"
	"BlogGolang/pkg/log"
	"context"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *BlogHandler) GetAllBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"tag":        ctx.Query("tag"),
	}).Debug("Processing get all blogs request")

	list, err := h.blogsService.GetAllBlogs(c, ctx.Query("tag"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogListResponse(list))
	}
}

func (h *BlogHandler) GetBlogByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	blog, err := h.blogsService.GetBlogByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogResponse(blog))
	}
}

func (h *BlogHandler) SearchBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	list, err := h.blogsService.SearchBlogs(c, ctx.Query("q"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogListResponse(list))
	}
}

func (h *BlogHandler) SortBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	list, err := h.blogsService.SortBlogs(c, ctx.Query("by"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "sort_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogListResponse(list))
	}
}

func (h *BlogHandler) GetBlogsByTag(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	// route params arrive percent-encoded
	tag, err := url.PathUnescape(ctx.Params("tag"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, blogs.ErrInvalidTag, ctx.Path(), "get_blogs_by_tag")
	}

	list, err := h.blogsService.GetBlogsByTag(c, tag)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blogs_by_tag")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogListResponse(list))
	}
}

func (h *BlogHandler) GetAllTags(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	tags, err := h.blogsService.GetAllTags(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_tags")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, tags)
	}
}

func (h *BlogHandler) GetPopularTags(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	counts, err := h.blogsService.GetPopularTags(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_popular_tags")
	}

	response := make([]blogs.TagCountResponse, 0, len(counts))
	for _, tc := range counts {
		response = append(response, blogs.TagCountResponse{Tag: tc.Tag, Count: tc.Count})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
