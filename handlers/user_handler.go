package handlers

import (
	"fmt"
	"net/http"

	"blogly/helper"
	"blogly/models"
	"blogly/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	h.Helper.Render(c, http.StatusOK, "users/list.html", gin.H{"Users": users})
}

func (h *UserHandler) NewUserForm(c *gin.Context) {
	h.Helper.Render(c, http.StatusOK, "users/new.html", gin.H{"Form": models.UserForm{}})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var form models.UserForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.Render(c, http.StatusBadRequest, "users/new.html", gin.H{
			"Form":   form,
			"Errors": h.Helper.ValidationError(err),
		})
		return
	}

	user, err := h.userService.CreateUser(form)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, "/users", fmt.Sprintf("User %s added.", user.FullName()))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Render(c, http.StatusOK, "users/detail.html", gin.H{"User": user})
}

func (h *UserHandler) EditUserForm(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Render(c, http.StatusOK, "users/edit.html", gin.H{
		"User": user,
		"Form": models.UserForm{FirstName: user.FirstName, LastName: user.LastName, ImageURL: user.ImageURL},
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var form models.UserForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.Render(c, http.StatusBadRequest, "users/edit.html", gin.H{
			"User":   user,
			"Form":   form,
			"Errors": h.Helper.ValidationError(err),
		})
		return
	}

	user, err = h.userService.UpdateUser(id, form)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, "/users", fmt.Sprintf("User %s edited.", user.FullName()))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.Redirect(c, "/users", fmt.Sprintf("User %s deleted.", user.FullName()))
}
