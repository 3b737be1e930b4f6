package domain

import (
	"encoding/base64"
	"fmt"

	"anonchat/domain/mimetypes"
	"anonchat/errors"

	"github.com/gabriel-vasile/mimetype"
)

// MaxAvatarBytes caps the raw image size before data-URI encoding.
const MaxAvatarBytes = 700 * 1024

// EncodeAvatar validates a raw image and returns it as a data URI
// suitable for storing alongside the identity. The format is sniffed
// from content, never trusted from a filename.
func EncodeAvatar(data []byte) (string, error) {
	if len(data) > MaxAvatarBytes {
		return "", fmt.Errorf("%w: %d bytes", errors.ErrAvatarTooLarge, len(data))
	}
	detected := mimetype.Detect(data)
	mt, ok := mimetypes.IsAvatarFormat(detected.String())
	if !ok {
		return "", fmt.Errorf("%w: got %s", errors.ErrUnsupportedAvatarFormat, detected.String())
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", mt, encoded), nil
}
