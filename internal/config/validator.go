package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/darkkaiser/grocery-price-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// sharedValidator 드라이버 옵션처럼 설정 로드 이후에 디코딩되는 구조체 검증에 사용한다.
var sharedValidator = sync.OnceValue(newValidator)

// newValidator JSON 태그 이름으로 에러를 보고하고 커스텀 태그가 등록된 Validator를 생성합니다.
//
// 커스텀 태그:
//   - cors_origin: Scheme://Host[:Port] 형식의 CORS Origin
//   - cron_spec: 초 단위를 포함하는 6필드 Cron 표현식
//   - sql_identifier: 따옴표 없이 사용할 수 있는 SQL 테이블/컬럼 이름
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]func(string) error{
		"cors_origin":    validation.ValidateCORSOrigin,
		"cron_spec":      validation.ValidateCronExpression,
		"sql_identifier": validation.ValidateSQLIdentifier,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, stringRule(fn)); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

// stringRule 문자열 검증 함수를 validator.Func로 변환합니다.
func stringRule(fn func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String()) == nil
	}
}

// ValidateStruct s의 validate 태그를 검사하고, 실패 시 contextName을 포함한 InvalidInput 에러를 반환합니다.
func ValidateStruct(s any, contextName string) error {
	return checkStruct(sharedValidator(), s, contextName)
}

// checkStruct 구조체를 검증하고 첫 번째 실패 항목을 사용자 친화적인 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	return apperrors.New(apperrors.InvalidInput, describe(contextName, validationErrors[0]))
}

func describe(contextName string, fe validator.FieldError) string {
	switch fe.StructField() {
	case "ListenPort":
		return "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다"
	case "DefaultTargetGrams":
		return fmt.Sprintf("기본 목표 중량(default_target_grams)은 0보다 커야 합니다: '%v'", fe.Value())
	case "Vocabulary":
		return fmt.Sprintf("%s의 단위 어휘(vocabulary)는 'A' 또는 'B'여야 합니다: '%v'", contextName, fe.Value())
	case "Driver":
		return fmt.Sprintf("%s의 저장소 드라이버(driver)는 sqlite, csv, json, memory 중 하나여야 합니다: '%v'", contextName, fe.Value())
	case "TLSCertFile", "TLSKeyFile":
		switch fe.Tag() {
		case "required_if":
			return fmt.Sprintf("TLS 서버 활성화 시 %s는 필수입니다", fe.Field())
		case "file":
			return fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", fe.Field(), fe.Value())
		}
	case "AllowOrigins":
		if fe.Tag() == "min" {
			return "CORS 허용 도메인(allow_origins) 목록이 비어있습니다"
		}
	}

	switch fe.Tag() {
	case "cors_origin":
		return fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	case "cron_spec":
		return fmt.Sprintf("%s의 Cron 표현식(%s)이 올바르지 않습니다: '%v' (형식: 초 분 시 일 월 요일)", contextName, fe.Field(), fe.Value())
	case "sql_identifier":
		return fmt.Sprintf("%s의 %s는 영문자, 숫자, '_'로 구성된 SQL 식별자여야 합니다: '%v'", contextName, fe.Field(), fe.Value())
	case "required", "required_if":
		return fmt.Sprintf("%s의 필수 설정(%s)이 누락되었습니다", contextName, fe.Field())
	case "file":
		return fmt.Sprintf("%s의 %s 파일을 찾을 수 없습니다: '%v'", contextName, fe.Field(), fe.Value())
	}

	return fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag())
}
