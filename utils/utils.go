package utils

import (
	"bytes"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/nfnt/resize"
)

// Sha512String hashes and encodes in hex the result
func Sha512String(s string) string {
	hash := sha512.New()
	hash.Write([]byte(s))
	return hex.EncodeToString(hash.Sum(nil))
}

func RandSalt(saltSize int) string {
	b := make([]byte, saltSize)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// SanitizeFileName keeps letters, digits, '-', '_' and non-leading dots, everything else becomes '_'
func SanitizeFileName(name string) string {
	var result strings.Builder
	for i, c := range name {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			(c == '.' && i > 0) || (c == '-') || (c == '_') {

			result.WriteRune(c)
		} else {
			result.WriteString("_")
		}
	}
	return result.String()
}

type ImageThumbConverted struct {
	ThumbSize int64
	NewX      uint16
	NewY      uint16
	OldX      uint16
	OldY      uint16
}

// CreateThumb crops the image to the width:height ratio around its centre and scales it down to fit
func CreateThumb(width, height uint, reader io.Reader, writer io.Writer) (result ImageThumbConverted, err error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return result, err
	}
	cropped := cropToRatio(img, width, height)
	var newBuf bytes.Buffer
	newImage := resize.Thumbnail(width, height, cropped, resize.Lanczos3)
	if err = jpeg.Encode(&newBuf, newImage, &jpeg.Options{Quality: 90}); err != nil {
		return
	}
	imageRect := newImage.Bounds().Size()
	result.NewX = uint16(imageRect.X)
	result.NewY = uint16(imageRect.Y)

	imageRect = img.Bounds().Size()
	result.OldX = uint16(imageRect.X)
	result.OldY = uint16(imageRect.Y)

	result.ThumbSize, err = io.Copy(writer, &newBuf)
	return
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func cropToRatio(img image.Image, width, height uint) image.Image {
	si, ok := img.(subImager)
	if !ok || width == 0 || height == 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	// Compare w/h against width/height without floats
	if w*int(height) > h*int(width) {
		newW := h * int(width) / int(height)
		x0 := b.Min.X + (w-newW)/2
		return si.SubImage(image.Rect(x0, b.Min.Y, x0+newW, b.Max.Y))
	}
	newH := w * int(height) / int(width)
	y0 := b.Min.Y + (h-newH)/2
	return si.SubImage(image.Rect(b.Min.X, y0, b.Max.X, y0+newH))
}
