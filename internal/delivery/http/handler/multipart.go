package handler

import (
	"io"
	"net/http"

	"healthcare-appointment-api/internal/service"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxMultipartMemory = 8 << 20

// maxProfileRequestSize caps the whole multipart body: the image ceiling plus
// headroom for form fields and part boundaries. Anything larger is cut off by
// http.MaxBytesReader before it is buffered.
const maxProfileRequestSize = service.MaxProfileImageSize + 1<<20

// readProfileImage extracts the "image" part of a multipart form. A missing
// part is not an error: it returns (nil, nil) and the usecase decides whether
// the image is mandatory.
func readProfileImage(r *http.Request) (*service.ProfileImage, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Reject on the declared part size before buffering a single byte
	if header.Size > service.MaxProfileImageSize {
		return nil, service.ErrImageTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &service.ProfileImage{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
