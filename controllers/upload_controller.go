package controllers

import (
	"net/http"

	"frydays/libs"

	"github.com/gin-gonic/gin"
)

// UploadController stores menu and promotion images. uploader is nil when
// Cloudinary is not configured.
type UploadController struct {
	uploader libs.ImageUploader
}

func NewUploadController(uploader libs.ImageUploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadImage godoc
// @Summary Upload image
// @Description Upload a menu or promotion image to Cloudinary and return its URL
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image (jpg, jpeg, png, gif, webp; max 5MB)"
// @Success 201 {object} models.Response{data=libs.UploadedImage}
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/uploads/image [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	if ctrl.uploader == nil {
		respondError(c, libs.ErrUploaderNotConfigured, "")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Imagem é obrigatória.", "validation")
		return
	}
	if err := libs.ValidateImageFile(header); err != nil {
		respondError(c, err, "")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Erro ao ler imagem.")
		return
	}
	defer file.Close()

	uploaded, err := ctrl.uploader.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		respondError(c, err, "Erro ao enviar imagem.")
		return
	}
	respondOK(c, http.StatusCreated, "Imagem enviada com sucesso!", uploaded)
}
