package forms

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path"
	"strconv"
	"strings"
	"yatube/models"
	"yatube/utils"
)

// ImageNamespace is where post images live in the media storage
const ImageNamespace = "posts"

// PostFields is what the create/edit form submits. The image is read separately from the multipart form.
type PostFields struct {
	Text       string                `form:"text"`
	Group      string                `form:"group"`
	ImageClear string                `form:"image-clear"` // any value clears the current image on edit
	Image      *multipart.FileHeader `form:"-"`
}

// postSchema lists the constraints checked by the validator
type postSchema struct {
	Text  string `form:"text" binding:"required"`
	Group string `form:"group" binding:"omitempty,numeric"`
}

type ImageUpload struct {
	File *multipart.FileHeader
	Path string // posts/<sanitized original name>
}

type PostRecord struct {
	Text       string
	GroupID    *uint64
	Group      *models.Group
	Image      *ImageUpload
	ClearImage bool
}

// GroupLookup resolves a group by primary key
type GroupLookup func(id uint64) (models.Group, error)

type PostForm struct {
	Groups GroupLookup
}

func NewPostForm() *PostForm {
	return &PostForm{Groups: models.GroupByID}
}

func (f *PostForm) Validate(fields PostFields) (record PostRecord, err error) {
	schema := postSchema{
		Text:  strings.TrimSpace(fields.Text),
		Group: strings.TrimSpace(fields.Group),
	}
	verr := &ValidationError{}
	if err = validateSchema(&schema, verr); err != nil {
		return
	}
	record.Text = schema.Text
	record.ClearImage = fields.ImageClear != ""

	if schema.Group != "" && !verr.Has("group") {
		if err = f.resolveGroup(schema.Group, &record, verr); err != nil {
			return
		}
	}
	if verr.Has("group") {
		verr.Fields["group"] = MessageInvalidGroup
	}
	if fields.Image != nil {
		upload, ok := validateImage(fields.Image)
		if !ok {
			verr.add("image", MessageInvalidImage)
		}
		record.Image = upload
	}
	return record, verr.orNil()
}

func (f *PostForm) resolveGroup(raw string, record *PostRecord, verr *ValidationError) error {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		verr.add("group", MessageInvalidGroup)
		return nil
	}
	group, err := f.Groups(id)
	if errors.Is(err, models.ErrNotFound) {
		verr.add("group", MessageInvalidGroup)
		return nil
	} else if err != nil {
		return err
	}
	record.GroupID = &group.ID
	record.Group = &group
	return nil
}

func validateImage(file *multipart.FileHeader) (*ImageUpload, bool) {
	name := utils.SanitizeFileName(path.Base(file.Filename))
	if name == "" || name == "." {
		return nil, false
	}
	reader, err := file.Open()
	if err != nil {
		return nil, false
	}
	defer reader.Close()
	if _, _, err = image.DecodeConfig(reader); err != nil {
		return nil, false
	}
	return &ImageUpload{
		File: file,
		Path: ImageNamespace + "/" + name,
	}, true
}
