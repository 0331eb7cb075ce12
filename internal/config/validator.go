package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// Report errors against the yaml key, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("deckdir", isUsableDeckDirectory); err != nil {
		return nil, nil, fmt.Errorf("failed to register deckdir validation: %w", err)
	}
	if err := validate.RegisterTranslation("deckdir", trans, func(ut ut.Translator) error {
		return ut.Add("deckdir", "{0} must be a directory", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("deckdir", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register deckdir translation: %w", err)
	}

	return validate, trans, nil
}

// isUsableDeckDirectory accepts a path that does not exist yet; the first
// deck import creates it. A path that exists must be a directory.
func isUsableDeckDirectory(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true
	}
	if err != nil {
		return false
	}
	return info.IsDir()
}
