package helper

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	translatorOnce sync.Once
	translator     ut.Translator
	translatorErr  error
)

// Translator returns the English translator registered on gin's validator, so
// binding errors name fields by their form key ("first_name is a required field").
func Translator() (ut.Translator, error) {
	translatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			translatorErr = errors.New("gin validator engine is not go-playground/validator/v10")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			translatorErr = err
			return
		}

		english := en.New()
		trans, _ := ut.New(english, english).GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
			translatorErr = err
			return
		}
		// Whitespace-only input reads the same as a missing field.
		err := v.RegisterTranslation("notblank", trans, func(t ut.Translator) error {
			return t.Add("notblank", "{0} is a required field", true)
		}, func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("notblank", fe.Field())
			return msg
		})
		if err != nil {
			translatorErr = err
			return
		}
		translator = trans
	})
	return translator, translatorErr
}
