package web

import (
	"errors"
	"net/http"
	"strconv"
	"yatube/forms"
	"yatube/metrics"
	"yatube/models"
	"yatube/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var postForm = forms.NewPostForm()

func PostDetail(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	renderPostDetail(c, http.StatusOK, post, forms.CommentFields{}, nil)
}

func renderPostDetail(c *gin.Context, status int, post models.Post, fields forms.CommentFields, verr *forms.ValidationError) {
	comments, err := models.ListComments(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	postsCount, err := models.CountPostsByAuthor(post.AuthorID)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, status, "post_detail.tmpl", gin.H{
		"post":        post,
		"comments":    comments,
		"posts_count": postsCount,
		"form":        fields,
		"errors":      verr,
	})
}

func renderPostForm(c *gin.Context, fields forms.PostFields, verr *forms.ValidationError, post *models.Post) {
	groups, err := models.ListGroups()
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "create_post.tmpl", gin.H{
		"form":    fields,
		"errors":  verr,
		"groups":  groups,
		"post":    post,
		"is_edit": post != nil,
	})
}

func bindPostFields(c *gin.Context) (fields forms.PostFields, err error) {
	if err = c.ShouldBind(&fields); err != nil {
		return
	}
	if file, ferr := c.FormFile("image"); ferr == nil {
		fields.Image = file
	} else if !errors.Is(ferr, http.ErrMissingFile) && !errors.Is(ferr, http.ErrNotMultipart) {
		return fields, ferr
	}
	return
}

// validatePost binds and validates the submitted form, re-rendering it when there are field errors
func validatePost(c *gin.Context, post *models.Post) (fields forms.PostFields, record forms.PostRecord, ok bool) {
	fields, err := bindPostFields(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	record, err = postForm.Validate(fields)
	if verr, isValidation := forms.AsValidationError(err); isValidation {
		renderPostForm(c, fields, verr, post)
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	return fields, record, true
}

func saveImage(upload *forms.ImageUpload) (imagePath, thumbPath string, err error) {
	file, err := upload.File.Open()
	if err != nil {
		return
	}
	defer file.Close()
	return storage.SaveImage(storage.GetDefaultStorage(), upload.Path, file)
}

func PostCreate(c *gin.Context, user *models.User) {
	if c.Request.Method != http.MethodPost {
		renderPostForm(c, forms.PostFields{}, nil, nil)
		return
	}
	_, record, ok := validatePost(c, nil)
	if !ok {
		return
	}
	post := models.Post{
		Text:     record.Text,
		GroupID:  record.GroupID,
		AuthorID: user.ID,
	}
	var err error
	if record.Image != nil {
		if post.Image, post.Thumb, err = saveImage(record.Image); err != nil {
			serverError(c, err)
			return
		}
	}
	if err = models.CreatePost(&post); err != nil {
		serverError(c, err)
		return
	}
	metrics.RecordsCreated.WithLabelValues("post").Inc()
	zerolog.Ctx(c.Request.Context()).Info().Uint64("id", post.ID).Stringer("post", post).Str("author", user.Username).Msg("Post created")
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

// PostEdit lets the author replace the text, group and image. Everybody else is sent to the post.
func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postURL(post.ID))
		return
	}
	if c.Request.Method != http.MethodPost {
		fields := forms.PostFields{Text: post.Text}
		if post.GroupID != nil {
			fields.Group = strconv.FormatUint(*post.GroupID, 10)
		}
		renderPostForm(c, fields, nil, &post)
		return
	}
	_, record, ok := validatePost(c, &post)
	if !ok {
		return
	}
	oldImage, oldThumb := post.Image, post.Thumb
	post.Text = record.Text
	post.GroupID = record.GroupID
	post.Group = record.Group
	var err error
	if record.Image != nil {
		if post.Image, post.Thumb, err = saveImage(record.Image); err != nil {
			serverError(c, err)
			return
		}
	} else if record.ClearImage {
		post.Image, post.Thumb = "", ""
	}
	if err = models.UpdatePost(&post); err != nil {
		serverError(c, err)
		return
	}
	if oldImage != post.Image {
		storage.DeleteImage(storage.GetDefaultStorage(), oldImage, oldThumb)
	}
	c.Redirect(http.StatusFound, postURL(post.ID))
}

func PostDelete(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postURL(post.ID))
		return
	}
	if _, err := models.DeletePost(post.ID); err != nil {
		handleError(c, err)
		return
	}
	storage.DeleteImage(storage.GetDefaultStorage(), post.Image, post.Thumb)
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

func AddComment(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	fields := forms.CommentFields{Text: c.PostForm("text")}
	record, err := forms.ValidateComment(fields)
	if verr, isValidation := forms.AsValidationError(err); isValidation {
		renderPostDetail(c, http.StatusOK, post, fields, verr)
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Text:     record.Text,
	}
	if err = models.CreateComment(&comment); err != nil {
		serverError(c, err)
		return
	}
	metrics.RecordsCreated.WithLabelValues("comment").Inc()
	c.Redirect(http.StatusFound, postURL(post.ID))
}
