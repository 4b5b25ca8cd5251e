package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"healthcare-appointment-api/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sirupsen/logrus"
)

var (
	ErrImageTooLarge       = errors.New("image too large (max 2MB)")
	ErrImageTypeNotAllowed = errors.New("only JPEG and PNG images are allowed")
)

// MaxProfileImageSize is the upload ceiling for profile pictures (2 MiB)
const MaxProfileImageSize = 2 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ProfileImage is an in-memory image taken from a multipart upload
type ProfileImage struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// ValidateProfileImage checks MIME type and size BEFORE any network call to
// the external image host is made.
func ValidateProfileImage(img *ProfileImage) error {
	if !allowedImageTypes[img.ContentType] {
		return ErrImageTypeNotAllowed
	}
	if img.Size > MaxProfileImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// ImageUploader delegates image storage to an external host and returns the
// publicly reachable URL of the stored image.
type ImageUploader interface {
	Upload(ctx context.Context, folder string, img *ProfileImage) (string, error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
	log *logrus.Logger
}

func NewCloudinaryUploader(cfg config.CloudinaryConfig, log *logrus.Logger) (ImageUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &cloudinaryUploader{cld: cld, log: log}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, folder string, img *ProfileImage) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(img.Data), uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		u.log.Warnf("Failed to upload image %s: %+v", img.FileName, err)
		return "", err
	}

	u.log.Infof("Image uploaded: file=%s, folder=%s", img.FileName, folder)
	return result.SecureURL, nil
}
