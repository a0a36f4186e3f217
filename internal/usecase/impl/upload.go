package impl

import (
	"mime"
	"strings"

	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/usecase"
	"foodies/internal/util"

	"github.com/pkg/errors"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// imageExtension validates an upload and returns the extension of its stored object.
func imageExtension(input *usecase.UploadInput, maxSize int64) (string, string, error) {
	if input == nil || input.Body == nil {
		return "", "", errors.Wrap(domainerrors.ErrValidationFailed, "file is required")
	}

	mediaType, _, err := mime.ParseMediaType(input.ContentType)
	if err != nil {
		return "", "", errors.Wrap(domainerrors.ErrUnsupportedMedia.WithDetails(input.ContentType), "unparsable content type")
	}
	mediaType = strings.ToLower(mediaType)

	ext, ok := imageExtensions[mediaType]
	if !ok {
		return "", "", errors.Wrap(domainerrors.ErrUnsupportedMedia.WithDetails(mediaType), "only images can be uploaded")
	}

	if maxSize > 0 && input.Size > maxSize {
		return "", "", errors.Wrap(
			domainerrors.ErrFileTooLarge.WithDetails("maximum size is "+util.FormatBytes(maxSize)),
			"upload rejected",
		)
	}

	return ext, mediaType, nil
}
