package dto

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// Tags de validação próprias, usadas nos corpos de atualização
const (
	TagEmail    = "email_addr"
	TagUsername = "username"
	TagPhone    = "br_phone"
)

var registerOnce sync.Once

// RegisterValidators registra as tags próprias no validator do gin e faz os
// erros citarem o nome do campo JSON.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation(TagEmail, stringRule(valueobjects.IsValidEmail))
		_ = v.RegisterValidation(TagUsername, stringRule(valueobjects.IsValidUsername))
		_ = v.RegisterValidation(TagPhone, stringRule(valueobjects.IsValidPhone))
	})
}

func stringRule(rule func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

var tagMessages = map[string]error{
	TagEmail:    domainerrors.ErrInvalidEmail,
	TagUsername: domainerrors.ErrInvalidUsername,
	TagPhone:    domainerrors.ErrInvalidPhone,
}

// BindingError converte uma falha de ShouldBindJSON em erro de validação
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		if id, ok := tagMessages[verrs[0].Tag()]; ok {
			return domainerrors.Validation(id, fields...)
		}
		return domainerrors.Validation(domainerrors.ErrInvalidRequestBody, fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "image_urls" || strings.HasPrefix(typeErr.Field, "image_urls.") {
			return domainerrors.Validation(domainerrors.ErrInvalidImageURLs, "image_urls")
		}
		return domainerrors.Validation(domainerrors.ErrInvalidRequestBody, typeErr.Field)
	}

	return domainerrors.Validation(domainerrors.ErrInvalidRequestBody)
}
