package handlers

import (
	"fmt"
	"net/http"

	"blogly/helper"
	"blogly/models"
	"blogly/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService  services.TagService
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, postService services.PostService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, postService: postService, Helper: h}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	h.Helper.Render(c, http.StatusOK, "tags/list.html", gin.H{"Tags": tags})
}

func (h *TagHandler) NewTagForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "tags/new.html", gin.H{}, models.TagForm{}, nil)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var form models.TagForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "tags/new.html", gin.H{}, form, h.Helper.ValidationError(err))
		return
	}

	tag, err := h.tagService.CreateTag(form)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, "/tags", fmt.Sprintf("Tag '%s' added.", tag.Name))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Render(c, http.StatusOK, "tags/detail.html", gin.H{"Tag": tag})
}

func (h *TagHandler) EditTagForm(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	form := models.TagForm{Name: tag.Name}
	for _, post := range tag.Posts {
		form.Posts = append(form.Posts, post.ID)
	}
	h.renderForm(c, http.StatusOK, "tags/edit.html", gin.H{"Tag": tag}, form, nil)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var form models.TagForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "tags/edit.html", gin.H{"Tag": tag}, form, h.Helper.ValidationError(err))
		return
	}

	tag, err = h.tagService.UpdateTag(id, form)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, "/tags", fmt.Sprintf("Tag '%s' edited.", tag.Name))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.DeleteTag(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, "/tags", fmt.Sprintf("Tag '%s' deleted.", tag.Name))
}

func (h *TagHandler) renderForm(c *gin.Context, status int, page string, data gin.H, form models.TagForm, verr *models.ValidationError) {
	posts, err := h.postService.ListPosts()
	if err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	data["Form"] = form
	data["Posts"] = posts
	data["Selected"] = models.Selected(form.Posts)
	if verr != nil {
		data["Errors"] = verr
	}
	h.Helper.Render(c, status, page, data)
}
