package blogs

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrBlogNotFound          = response.NewError(http.StatusNotFound, "Blog not found")
	ErrSearchQueryRequired   = response.NewError(http.StatusBadRequest, "Search query is required")
	ErrInvalidTag            = response.NewError(http.StatusBadRequest, "Invalid tag")
	ErrCommentFieldsRequired = response.NewError(http.StatusBadRequest, "Username and text are required")
	ErrInvalidImageType      = response.NewError(http.StatusBadRequest, "Invalid image type. Must be authorImage or blogImage")
	ErrNoImageFile           = response.NewError(http.StatusBadRequest, "No image file provided")
	ErrInvalidFileType       = response.NewError(http.StatusBadRequest, "Invalid file type. Only jpg, jpeg and png images up to 5MB are allowed")
	ErrFailedToUpload        = response.NewError(http.StatusInternalServerError, "Image upload failed")
	ErrImageStoreMissing     = response.NewError(http.StatusInternalServerError, "Image storage is not configured")
)
