package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "grocery-price-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: PRICE_PRICE_API__WS__LISTEN_PORT -> price_api.ws.listen_port
	EnvPrefix = "PRICE_"

	// DefaultTargetGrams grams 쿼리가 없거나 유효하지 않을 때 사용하는 목표 중량입니다.
	DefaultTargetGrams = 100

	// DefaultRefreshTimeSpec 스냅샷 재적재 기본 주기 (매시 정각)
	DefaultRefreshTimeSpec = "0 0 * * * *"

	// DefaultListenPort 가격 API 서버의 기본 포트입니다.
	DefaultListenPort = 3000
)

// Default 설정 파일에 값이 없을 때 적용되는 기본 설정을 반환합니다.
func Default() AppConfig {
	return AppConfig{
		Pricing: PricingConfig{DefaultTargetGrams: DefaultTargetGrams},
		Retailers: RetailersConfig{
			ATB:   RetailerConfig{Vocabulary: "A"},
			Silpo: RetailerConfig{Vocabulary: "B"},
		},
		CatalogRefresh: CatalogRefreshConfig{TimeSpec: DefaultRefreshTimeSpec},
		PriceAPI: PriceAPIConfig{
			WS:   WSConfig{ListenPort: DefaultListenPort},
			CORS: CORSConfig{AllowOrigins: []string{"*"}},
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 설정을 다음 순서로 병합하여 로드합니다. 뒤의 값이 앞의 값을 덮어씁니다.
//
//  1. Default() 기본값
//  2. JSON 설정 파일
//  3. PRICE_ 접두사 환경 변수 (이중 언더스코어(__)가 계층 구분자)
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var cfg AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "json",
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := cfg.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &cfg, nil
}

// envKeyMapper PRICE_RETAILERS__ATB__VOCABULARY 를 retailers.atb.vocabulary 로 변환합니다.
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
