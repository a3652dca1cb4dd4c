package handlers

import (
	"fmt"
	"net/http"

	"blogly/helper"
	"blogly/models"
	"blogly/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	userService services.UserService
	tagService  services.TagService
	Helper      *helper.HTTPHelper
	recentLimit int
}

func NewPostHandler(postService services.PostService, userService services.UserService, tagService services.TagService, h *helper.HTTPHelper, recentLimit int) *PostHandler {
	return &PostHandler{
		postService: postService,
		userService: userService,
		tagService:  tagService,
		Helper:      h,
		recentLimit: recentLimit,
	}
}

// Home shows the most recently created posts.
func (h *PostHandler) Home(c *gin.Context) {
	posts, err := h.postService.ListRecentPosts(h.recentLimit)
	if err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	h.Helper.Render(c, http.StatusOK, "home.html", gin.H{"Posts": posts})
}

func (h *PostHandler) NewPostForm(c *gin.Context) {
	userID, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.renderForm(c, http.StatusOK, "posts/new.html", gin.H{"User": user}, models.PostForm{}, nil)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "posts/new.html", gin.H{"User": user}, form, h.Helper.ValidationError(err))
		return
	}

	post, err := h.postService.CreatePost(user.ID, form)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, fmt.Sprintf("/users/%d", user.ID), fmt.Sprintf("Post '%s' added.", post.Title))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Render(c, http.StatusOK, "posts/detail.html", gin.H{"Post": post})
}

func (h *PostHandler) EditPostForm(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	form := models.PostForm{Title: post.Title, Content: post.Content}
	for _, tag := range post.Tags {
		form.Tags = append(form.Tags, tag.ID)
	}
	h.renderForm(c, http.StatusOK, "posts/edit.html", gin.H{"Post": post}, form, nil)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "posts/edit.html", gin.H{"Post": post}, form, h.Helper.ValidationError(err))
		return
	}

	post, err = h.postService.UpdatePost(id, form)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, fmt.Sprintf("/users/%d", post.UserID), fmt.Sprintf("Post '%s' edited.", post.Title))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.DeletePost(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, fmt.Sprintf("/users/%d", post.UserID), fmt.Sprintf("Post '%s' deleted.", post.Title))
}

// renderForm adds the tag checkboxes and the submitted selection to data.
func (h *PostHandler) renderForm(c *gin.Context, status int, page string, data gin.H, form models.PostForm, verr *models.ValidationError) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	data["Form"] = form
	data["Tags"] = tags
	data["Selected"] = models.Selected(form.Tags)
	if verr != nil {
		data["Errors"] = verr
	}
	h.Helper.Render(c, status, page, data)
}
