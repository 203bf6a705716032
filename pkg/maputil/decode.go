// Package maputil 설정 맵을 구조체로 디코딩하는 기능을 제공합니다.
//
// 저장소 드라이버 옵션처럼 드라이버마다 형태가 다른 map[string]any 설정을
// 각 드라이버의 옵션 구조체로 변환할 때 사용합니다.
//
//	opts, err := maputil.Decode[sqliteOptions](raw, maputil.WithErrorUnused(true))
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Option 디코딩 동작을 변경하는 함수형 옵션입니다.
type Option func(*decodingConfig)

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	squash           bool
	trimSpace        bool

	metadata   *mapstructure.Metadata
	extraHooks []mapstructure.DecodeHookFunc
}

// Decode input을 새 T 값으로 디코딩합니다.
//
// 기본 동작:
//   - json 태그 기준으로 필드를 매핑합니다.
//   - "123" -> 123 과 같은 약한 타입 변환을 허용합니다.
//   - 구조체에 없는 키는 무시합니다. (WithErrorUnused로 변경)
//   - 문자열/숫자를 decimal.Decimal, time.Duration, 쉼표 구분 []string 으로 변환합니다.
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo input을 output에 병합하여 디코딩합니다.
// output에 이미 설정된 값은 input에 해당 키가 없으면 그대로 유지됩니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
		squash:           true,
		trimSpace:        true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		Squash:           cfg.squash,
		Metadata:         cfg.metadata,
		DecodeHook:       cfg.buildDecodeHook(),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}
	return nil
}

// buildDecodeHook 사용자 훅을 먼저, 내장 훅을 나중에 실행하는 훅 체인을 구성합니다.
func (c *decodingConfig) buildDecodeHook() mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(c.extraHooks)+4)
	hooks = append(hooks, c.extraHooks...)
	hooks = append(hooks,
		toDecimalHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
		stringToDurationHookFunc(),
		stringToSliceHookFunc(c.trimSpace),
	)
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// WithTagName 필드 매핑에 사용할 구조체 태그 이름을 지정합니다. (기본값: "json")
func WithTagName(tagName string) Option {
	return func(c *decodingConfig) {
		c.tagName = tagName
	}
}

// WithWeaklyTypedInput 약한 타입 변환 허용 여부를 지정합니다. (기본값: true)
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) {
		c.weaklyTypedInput = enable
	}
}

// WithErrorUnused 구조체에 없는 키가 있으면 에러를 반환합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) {
		c.errorUnused = enable
	}
}

// WithTrimSpace 쉼표 구분 문자열을 슬라이스로 변환할 때 각 항목의 공백 제거 여부를 지정합니다. (기본값: true)
func WithTrimSpace(enable bool) Option {
	return func(c *decodingConfig) {
		c.trimSpace = enable
	}
}

// WithDecodeHook 내장 훅보다 먼저 실행될 사용자 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) {
		c.extraHooks = append(c.extraHooks, hooks...)
	}
}

// WithMetadata 사용된 키와 사용되지 않은 키 정보를 md에 수집합니다.
func WithMetadata(md *mapstructure.Metadata) Option {
	return func(c *decodingConfig) {
		c.metadata = md
	}
}
