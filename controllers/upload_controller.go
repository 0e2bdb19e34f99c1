package controllers

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/pkg/resp"
	"github.com/brianneil238/BikeRentalWebsite-sub000/storage"
	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20 // 10MB

type UploadController struct {
	Storage storage.Storage
}

func NewUploadController(s storage.Storage) *UploadController {
	return &UploadController{Storage: s}
}

// POST /api/upload: multipart "file"; returns the media-host URL to put
// on the application or bike record.
func (ctl *UploadController) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "missing file")
		return
	}
	if header.Size > maxUploadSize {
		resp.BadRequest(c, "file too large (max 10MB)")
		return
	}
	if !storage.AllowedExt(header.Filename) {
		resp.BadRequest(c, storage.ErrUnsupportedType.Error())
		return
	}

	f, err := header.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	url, err := ctl.Storage.Store(c.Request.Context(), header.Filename, f, header.Header.Get("Content-Type"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"url": url})
}
