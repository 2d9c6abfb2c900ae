package filedrop

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tripforge/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	_ "golang.org/x/image/webp"
)

const (
	maxImageBytes  = 10 << 20
	maxImageWidth  = 4000
	maxImageHeight = 4000
	thumbWidth     = 320

	DayPicDir   = "static/daypic"
	DayThumbDir = "static/daypic/thumb"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadDayImages accepts one or more files under the "images" form key,
// stores the originals and fixed-width thumbnails, and returns the public
// URLs in upload order.
func UploadDayImages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes*4)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No image files uploaded")
		return
	}

	var urls []string
	for _, hdr := range files {
		name, err := saveDayImage(hdr)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Failed to process %s: %v", hdr.Filename, err))
			return
		}
		urls = append(urls, "/"+DayPicDir+"/"+name)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"urls": urls})
}

func saveDayImage(hdr *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(hdr.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image extension %s", ext)
	}

	src, err := hdr.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open image: %w", err)
	}
	defer src.Close()

	buf, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("cannot read image: %w", err)
	}
	if len(buf) > maxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	if mime := http.DetectContentType(buf); !allowedImageMIMEs[mime] {
		return "", fmt.Errorf("unsupported content type %s", mime)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("cannot decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > maxImageWidth || bounds.Dy() > maxImageHeight {
		return "", fmt.Errorf("image dimensions %dx%d exceed %dx%d", bounds.Dx(), bounds.Dy(), maxImageWidth, maxImageHeight)
	}

	name := utils.GetUUID() + ext
	if err := os.MkdirAll(DayPicDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", DayPicDir, err)
	}
	if err := os.WriteFile(filepath.Join(DayPicDir, name), buf, 0o644); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	if err := writeThumbnail(img, name); err != nil {
		return "", err
	}
	return name, nil
}

func writeThumbnail(img image.Image, baseName string) error {
	resized := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	name := strings.TrimSuffix(baseName, filepath.Ext(baseName)) + ".jpg"

	if err := os.MkdirAll(DayThumbDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", DayThumbDir, err)
	}
	out, err := os.Create(filepath.Join(DayThumbDir, name))
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}
