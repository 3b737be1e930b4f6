package mimetypes

type MIME string

const (
	Unknown   MIME = "unknown"
	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
)

// AvatarFormats lists the image formats accepted for profile pictures.
var AvatarFormats = []MIME{ImageGIF, ImagePNG, ImageJPEG}

func IsAvatarFormat(detected string) (MIME, bool) {
	for _, m := range AvatarFormats {
		if detected == string(m) {
			return m, true
		}
	}
	return Unknown, false
}
