// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// Validator is the shared validator instance.
var Validator *validator.Validate

// Trans translates validation errors into Spanish, the language of the API.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// Report field names by their json tag so error messages match the wire
	// format.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	spanish := es.New()
	uni := ut.New(spanish, spanish)
	var found bool
	Trans, found = uni.GetTranslator("es")
	if !found {
		log.Fatal("translator not found")
	}

	if err := es_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// eqfield is used for password confirmations; the default message leaks
	// the Go field name, so override it.
	err := Validator.RegisterTranslation("eqfield", Trans, func(ut ut.Translator) error {
		return ut.Add("eqfield", "Las contraseñas no coinciden", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("eqfield")
		return t
	})
	if err != nil {
		log.Fatal(err)
	}

	err = Validator.RegisterTranslation("required_without", Trans, func(ut ut.Translator) error {
		return ut.Add("required_without", "Debe incluir texto_estudiante o audio_base64", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required_without")
		return t
	})
	if err != nil {
		log.Fatal(err)
	}
}
