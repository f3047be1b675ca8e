package controller

import (
	"io"

	"github.com/gin-gonic/gin"

	"marketplace_dev_v1_202601/internal/service"
)

// 单文件大小上限 5MB
const maxUploadSize = 5 << 20

// ==================== 控制器 ====================

// UploadController 文件上传控制器
type UploadController struct {
	storageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{storageService: storageService}
}

// ==================== API 方法 ====================

// UploadImage 上传图片（商品图/退款凭证）
// @Summary 上传图片
// @Tags Upload
// @Accept multipart/form-data
// @Param file formData file true "图片文件"
// @Router /api/uploads [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "缺少 file 字段")
		return
	}
	if fileHeader.Size > maxUploadSize {
		BadRequest(c, "文件超出大小限制")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		Fail(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		Fail(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := ctrl.storageService.Upload(c.Request.Context(), data, fileHeader.Filename, contentType)
	if err != nil {
		Fail(c, err)
		return
	}

	Created(c, gin.H{"url": url})
}
