package blogHandler

import (
	blogs "BlogGolang/internal/api/blog"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/handlerUtil"
	"BlogGolang/pkg/log"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const imageFormField = "image"

func (h *BlogHandler) UploadImage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	file, err := ctx.FormFile(imageFormField)
	if err != nil {
		return errHandler.Handle(ctx, requestID, blogs.ErrNoImageFile, ctx.Path(), "upload_image")
	}

	url, err := h.blogsService.UploadImage(c, file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_image")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.ImageUploadResponse{ImageURL: url})
	}
}

func (h *BlogHandler) AttachImage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.debug)

	imageType := ctx.FormValue("imageType")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"blog_id":    ctx.Params("id"),
		"image_type": imageType,
	}).Debug("Processing attach image request")

	// A missing file is passed on as nil so the slot is checked first.
	file, _ := ctx.FormFile(imageFormField)

	url, blog, err := h.blogsService.AttachImage(c, ctx.Params("id"), imageType, file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "attach_image")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.AttachImageResponse{
			Message:     "Image uploaded successfully",
			ImageURL:    url,
			UpdatedBlog: blogs.NewBlogResponse(blog),
		})
	}
}
