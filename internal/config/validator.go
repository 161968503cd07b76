package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
	"github.com/darkkaiser/monitoring-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 구조체 필드명 대신 JSON 이름(예: listen_port)을 보여주도록 설정합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("http_url", validateHTTPURL); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'http_url' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateCORSOrigin 실제 검증은 validation.ValidateCORSOrigin 으로 위임합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// validateHTTPURL 실제 검증은 validation.ValidateHTTPURL 로 위임합니다.
func validateHTTPURL(fl validator.FieldLevel) bool {
	return validation.ValidateHTTPURL(fl.Field().String()) == nil
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 사용자 친화적인 메시지로 반환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	if err := v.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			firstErr := validationErrors[0]

			switch firstErr.Tag() {
			case "http_url":
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s.%s의 주소가 올바르지 않습니다: '%v' (http 또는 https URL이어야 합니다)", contextName, firstErr.Field(), firstErr.Value()))
			case "cors_origin":
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value()))
			case "min", "max":
				if firstErr.Field() == "listen_port" {
					return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
				}
			}

			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}
	return nil
}
