package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Card tokens and vault references only ever contain these characters.
var tokenAlphabet = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("safe_id", func(fl validator.FieldLevel) bool {
		return tokenAlphabet.MatchString(fl.Field().String())
	})
}

// SanitizeStruct trims and HTML-escapes the free-text fields of a request
// before they are persisted or echoed back. Non-pointer and non-struct
// arguments are ignored.
func SanitizeStruct(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	elem := rv.Elem()
	for i := range elem.NumField() {
		f := elem.Field(i)
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			f = f.Elem()
		}
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(html.EscapeString(strings.TrimSpace(f.String())))
		}
	}
}
