package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProfileImage_AllowedTypes(t *testing.T) {
	for _, contentType := range []string{"image/jpeg", "image/jpg", "image/png"} {
		img := &ProfileImage{FileName: "pic", ContentType: contentType, Size: 1024}
		assert.NoError(t, ValidateProfileImage(img), "expected %q to be accepted", contentType)
	}
}

func TestValidateProfileImage_RejectsOtherTypes(t *testing.T) {
	for _, contentType := range []string{"image/gif", "image/webp", "application/pdf", "text/plain", ""} {
		img := &ProfileImage{FileName: "pic", ContentType: contentType, Size: 1024}
		assert.ErrorIs(t, ValidateProfileImage(img), ErrImageTypeNotAllowed, "expected %q to be rejected", contentType)
	}
}

func TestValidateProfileImage_SizeLimit(t *testing.T) {
	atLimit := &ProfileImage{ContentType: "image/png", Size: MaxProfileImageSize}
	assert.NoError(t, ValidateProfileImage(atLimit))

	overLimit := &ProfileImage{ContentType: "image/png", Size: MaxProfileImageSize + 1}
	assert.ErrorIs(t, ValidateProfileImage(overLimit), ErrImageTooLarge)
}

// Type is checked before size, so a wrong-type oversize file reports the type
// problem first.
func TestValidateProfileImage_TypeCheckedFirst(t *testing.T) {
	img := &ProfileImage{ContentType: "image/gif", Size: MaxProfileImageSize * 2}
	assert.ErrorIs(t, ValidateProfileImage(img), ErrImageTypeNotAllowed)
}
