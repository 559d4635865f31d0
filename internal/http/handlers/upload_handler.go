package handlers

import (
	"net/http"

	"github.com/MaxFerr/hair-cut-api/internal/storage"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// UploadFieldName is the multipart field the frontend posts the image under.
const UploadFieldName = "myImage"

type UploadHandler struct {
	store    *storage.Store
	maxBytes int64
}

func NewUploadHandler(store *storage.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes}
}

// Upload stores exactly one image and answers with its absolute URL. Every
// failure mode collapses to the same 400 literal; the caller attaches the URL
// to an article in a follow-up request.
func (h *UploadHandler) Upload(c *gin.Context) {
	// Cap the whole request body; the per-file size check still applies.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+64*1024)

	fh, err := c.FormFile(UploadFieldName)
	if err != nil {
		h.reject(c)
		return
	}

	name, err := h.store.Save(fh)
	if err != nil {
		h.reject(c)
		return
	}

	utils.RespondOK(c, requestBaseURL(c.Request)+storage.PublicPath+name)
}

func (h *UploadHandler) reject(c *gin.Context) {
	utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, utils.CodeUpload, "Unable to upload that file", nil))
}
