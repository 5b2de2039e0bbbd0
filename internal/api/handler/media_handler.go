package handler

import (
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/minio"
	"Showcase/internal/pkg/response"
	"Showcase/internal/pkg/util"
	"Showcase/internal/service"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 仅接收图片，返回对象键与公网地址
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	var width, height int
	if w, h, err := util.GetImageDimensions(reader); err == nil {
		width, height = w, h
	} else {
		log.WarnContext(c.Request.Context(), "failed to decode image dimensions", "file", file.Filename, "err", err)
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	res := map[string]interface{}{
		"key":    fileKey,
		"url":    minio.GetPublicURL(fileKey),
		"mime":   contentType,
		"width":  width,
		"height": height,
		"size":   file.Size,
	}

	log.InfoContext(c.Request.Context(), "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, res)
}
