package maputil

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
	durationType    = reflect.TypeOf(time.Duration(0))
)

// toDecimalHookFunc 문자열과 숫자를 decimal.Decimal 또는 decimal.NullDecimal로 변환합니다.
// 빈 문자열은 NullDecimal의 경우 Valid=false 로, Decimal의 경우 에러로 처리합니다.
func toDecimalHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != decimalType && t != nullDecimalType {
			return data, nil
		}

		var (
			d   decimal.Decimal
			err error
		)
		switch f.Kind() {
		case reflect.String:
			s := strings.TrimSpace(reflect.ValueOf(data).String())
			if s == "" {
				if t == nullDecimalType {
					return decimal.NullDecimal{}, nil
				}
				return nil, fmt.Errorf("빈 문자열은 decimal 값으로 변환할 수 없습니다")
			}
			d, err = decimal.NewFromString(s)
			if err != nil {
				return nil, fmt.Errorf("decimal 변환 실패 (input=%q): %w", s, err)
			}
		case reflect.Float32, reflect.Float64:
			d = decimal.NewFromFloat(reflect.ValueOf(data).Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			d = decimal.NewFromInt(reflect.ValueOf(data).Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			d, err = decimal.NewFromString(strconv.FormatUint(reflect.ValueOf(data).Uint(), 10))
			if err != nil {
				return nil, err
			}
		default:
			return data, nil
		}

		if t == nullDecimalType {
			return decimal.NullDecimal{Decimal: d, Valid: true}, nil
		}
		return d, nil
	}
}

// stringToDurationHookFunc "10s" 같은 문자열을 time.Duration으로 변환합니다.
// time.Duration 별칭 타입은 변환하지 않습니다.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != durationType {
			return data, nil
		}

		d, err := time.ParseDuration(strings.TrimSpace(reflect.ValueOf(data).String()))
		if err != nil {
			return data, nil
		}
		return d, nil
	}
}

// stringToSliceHookFunc 쉼표로 구분된 문자열을 슬라이스로 변환합니다. []byte 대상은 건드리지 않습니다.
func stringToSliceHookFunc(trimSpace bool) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if s == "" {
			return []string{}, nil
		}

		parts := strings.Split(s, ",")
		if trimSpace {
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
		}
		return parts, nil
	}
}
