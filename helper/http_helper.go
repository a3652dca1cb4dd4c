package helper

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"blogly/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

const (
	pageNotFound    = "404.html"
	pageServerError = "500.html"
)

// HTTPHelper renders pages and redirects for the HTML handlers.
type HTTPHelper struct {
	Flash      *FlashStore
	Translator ut.Translator
}

func NewHTTPHelper(flash *FlashStore) (*HTTPHelper, error) {
	trans, err := Translator()
	if err != nil {
		return nil, err
	}
	return &HTTPHelper{Flash: flash, Translator: trans}, nil
}

// Render executes page inside the layout. Pending flash messages are consumed here.
func (u *HTTPHelper) Render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = u.Flash.Pop(c)
	data["Path"] = c.Request.URL.Path

	c.HTML(status, page, data)
}

// Redirect queues message for the next rendered page and sends a 303.
func (u *HTTPHelper) Redirect(c *gin.Context, location, message string) {
	if message != "" {
		if err := u.Flash.Add(c, message); err != nil {
			log.Printf("flash: %v", err)
		}
	}
	c.Redirect(http.StatusSeeOther, location)
}

func (u *HTTPHelper) SendNotFound(c *gin.Context) {
	u.Render(c, http.StatusNotFound, pageNotFound, nil)
}

func (u *HTTPHelper) SendServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	log.Printf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	u.Render(c, http.StatusInternalServerError, pageServerError, nil)
}

// SendError maps models.ErrNotFound to the 404 page and anything else to the 500 page.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		u.SendNotFound(c)
		return
	}
	u.SendServerError(c, err)
}

// ParseID reads a numeric path parameter. Anything else is answered with the 404 page.
func (u *HTTPHelper) ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		u.SendNotFound(c)
		return 0, false
	}
	return uint(id), true
}

// ValidationError converts a binding error into per-field messages.
func (u *HTTPHelper) ValidationError(err error) *models.ValidationError {
	result := &models.ValidationError{Fields: map[string]string{}}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result.Fields["form"] = err.Error()
		return result
	}

	for _, fe := range validationErrors {
		if _, seen := result.Fields[fe.Field()]; !seen {
			result.Fields[fe.Field()] = fe.Translate(u.Translator)
		}
	}
	return result
}
