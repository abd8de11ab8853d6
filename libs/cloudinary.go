package libs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"frydays/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var (
	ErrUploaderNotConfigured = errors.New("cloudinary credentials not configured")
	ErrInvalidImage          = errors.New("invalid image")
)

const (
	MaxImageSize = 5 * 1024 * 1024
	ImageFolder  = "frydays/menu"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (*UploadedImage, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader prefers the separate CLOUDINARY_* credentials and
// falls back to CLOUDINARY_URL.
func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.CloudinaryName != "" && cfg.CloudinaryKey != "" && cfg.CloudinarySecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudinaryName, cfg.CloudinaryKey, cfg.CloudinarySecret)
	case cfg.CloudinaryURL != "":
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	default:
		return nil, ErrUploaderNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryUploader{cld: cld, folder: ImageFolder}, nil
}

func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxImageSize {
		return fmt.Errorf("%w: file too large (max 5MB)", ErrInvalidImage)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("%w: only jpg, jpeg, png, gif, webp allowed", ErrInvalidImage)
	}
	return nil
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, file multipart.File, filename string) (*UploadedImage, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(base, " ", "_"))

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         u.folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return nil, errors.New("cloudinary response is nil")
	}

	url := resp.SecureURL
	if url == "" {
		url = resp.URL
	}
	if url == "" {
		return nil, errors.New("cloudinary returned no url")
	}

	log.Printf("[Cloudinary] uploaded %s", resp.PublicID)
	return &UploadedImage{URL: url, PublicID: resp.PublicID}, nil
}
