package storage

import (
	"bytes"
	"io"
	"path"
	"strings"
	"yatube/utils"

	"github.com/rs/zerolog/log"
)

const (
	ThumbWidth  = 960
	ThumbHeight = 339
	thumbDir    = "thumbs"
)

// SaveImage stores an uploaded image under a free name derived from p and generates its thumbnail.
// A failed thumbnail is not fatal, the original is shown instead.
func SaveImage(s StorageAPI, p string, reader io.Reader) (imagePath, thumbPath string, err error) {
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, reader); err != nil {
		return
	}
	imagePath = UniquePath(s, p)
	if _, err = s.Save(imagePath, bytes.NewReader(buf.Bytes())); err != nil {
		return "", "", err
	}
	var thumb bytes.Buffer
	if _, terr := utils.CreateThumb(ThumbWidth, ThumbHeight, bytes.NewReader(buf.Bytes()), &thumb); terr != nil {
		log.Warn().Err(terr).Str("path", imagePath).Msg("Thumbnail failed")
		return imagePath, "", nil
	}
	name := strings.TrimSuffix(path.Base(imagePath), path.Ext(imagePath)) + ".jpg"
	thumbPath = path.Join(path.Dir(imagePath), thumbDir, name)
	if _, terr := s.Save(thumbPath, &thumb); terr != nil {
		log.Warn().Err(terr).Str("path", thumbPath).Msg("Thumbnail not saved")
		return imagePath, "", nil
	}
	return imagePath, thumbPath, nil
}

// DeleteImage removes a post's image and thumbnail, logging what could not be removed
func DeleteImage(s StorageAPI, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.Delete(p); err != nil {
			log.Warn().Err(err).Str("path", p).Msg("Media not deleted")
		}
	}
}
