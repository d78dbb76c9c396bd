package dto

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeIDRe       = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,64}$`)
	variantLabelRe = regexp.MustCompile(`^[\p{L}0-9/:.,\- ]{1,32}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("variant_label", validateVariantLabel)
		_ = v.RegisterValidation("pix_text", validatePixText)
	}
}

// ValidProductID reports whether id may name a product.
func ValidProductID(id string) bool {
	return safeIDRe.MatchString(id)
}

// validateSafeID allows alphanumeric, underscore and dash.
func validateSafeID(fl validator.FieldLevel) bool {
	return ValidProductID(fl.Field().String())
}

// validateVariantLabel accepts scale labels such as "1/8", "30cm" or
// "Busto 1:6".
func validateVariantLabel(fl validator.FieldLevel) bool {
	return variantLabelRe.MatchString(fl.Field().String())
}

// validatePixText rejects control characters and invalid UTF-8. The
// encoder sanitizes the rest.
func validatePixText(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !utf8.ValidString(s) {
		return false
	}
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// TrimStrings trims surrounding whitespace from every exported string
// field (including *string and []string) of a struct pointer, descending
// into nested structs and slices of structs.
func TrimStrings(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		trimValue(f)
	}
}

func trimValue(f reflect.Value) {
	switch f.Kind() {
	case reflect.String:
		f.SetString(strings.TrimSpace(f.String()))
	case reflect.Ptr:
		if !f.IsNil() && f.Elem().Kind() == reflect.String {
			f.Elem().SetString(strings.TrimSpace(f.Elem().String()))
		}
	case reflect.Struct:
		trimFields(f)
	case reflect.Slice:
		for j := 0; j < f.Len(); j++ {
			trimValue(f.Index(j))
		}
	}
}
