package vision

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hustada/dynastylab/constants"
)

// Image is a screenshot reference the pipeline can hand to a vision model.
// It is either a ready-made data URL or something (file path, raw bytes) that
// still needs the base64 conversion step.
type Image struct {
	dataURL  string
	path     string
	raw      []byte
	mimeType string
}

func ImageFromDataURL(u string) Image {
	return Image{dataURL: u}
}

func ImageFromFile(path string) Image {
	return Image{path: path}
}

func ImageFromBytes(b []byte, mimeType string) Image {
	return Image{raw: b, mimeType: mimeType}
}

// DataURL returns the directly-embeddable form, converting lazily.
func (img Image) DataURL() (string, error) {
	switch {
	case img.dataURL != "":
		if !strings.HasPrefix(img.dataURL, "data:") {
			return "", fmt.Errorf("not a data URL: %.32q", img.dataURL)
		}
		return img.dataURL, nil
	case img.path != "":
		return readAsDataURL(img.path)
	case len(img.raw) > 0:
		mt := img.mimeType
		if mt == "" {
			mt = "application/octet-stream"
		}
		return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(img.raw), nil
	default:
		return "", fmt.Errorf("empty image reference")
	}
}

// Ref returns a short human-readable identifier for log lines.
func (img Image) Ref() string {
	switch {
	case img.path != "":
		return filepath.Base(img.path)
	case img.dataURL != "":
		return fmt.Sprintf("data-url(%d bytes)", len(img.dataURL))
	default:
		return fmt.Sprintf("bytes(%d)", len(img.raw))
	}
}

func readAsDataURL(path string) (string, error) {
	if st, err := os.Stat(path); err == nil {
		if st.Size() > int64(constants.MaxImageMB)*1024*1024 {
			return "", fmt.Errorf("image %s exceeds %dMB", path, constants.MaxImageMB)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		case "webp":
			mt = "image/webp"
		default:
			mt = "application/octet-stream"
		}
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
