package config

import (
	"fmt"
	"slices"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션 설정의 최상위 구조체입니다.
type AppConfig struct {
	Debug          bool                 `json:"debug"`
	Pricing        PricingConfig        `json:"pricing"`
	Retailers      RetailersConfig      `json:"retailers"`
	CatalogRefresh CatalogRefreshConfig `json:"catalog_refresh"`
	PriceAPI       PriceAPIConfig       `json:"price_api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Pricing, "가격 계산(pricing)"); err != nil {
		return err
	}
	if err := c.Retailers.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.CatalogRefresh, "상품 스냅샷 갱신(catalog_refresh)"); err != nil {
		return err
	}
	return c.PriceAPI.validate(v)
}

// VerifyRecommendations 서비스 구동을 막지는 않지만 운영상 주의가 필요한 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.PriceAPI.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.PriceAPI.WS.ListenPort))
	}
	if slices.Contains(c.PriceAPI.CORS.AllowOrigins, "*") {
		warnings = append(warnings, "CORS 허용 도메인이 와일드카드(*)로 설정되어 모든 출처의 요청을 허용합니다")
	}
	for _, name := range RetailerNames() {
		if r, _ := c.Retailers.Get(name); r.Store.Driver == DriverMemory {
			warnings = append(warnings, fmt.Sprintf("판매처('%s')가 메모리 저장소를 사용합니다. 운영 환경에서는 sqlite, csv, json 드라이버를 권장합니다", name))
		}
	}

	return warnings
}

// PricingConfig 가격 계산 관련 설정입니다.
type PricingConfig struct {
	// DefaultTargetGrams grams 쿼리가 없거나 0 이하일 때 사용하는 목표 중량(g)입니다.
	DefaultTargetGrams int `json:"default_target_grams" validate:"gt=0"`
}

// 판매처 식별자
const (
	RetailerATB   = "atb"
	RetailerSilpo = "silpo"
)

// RetailersConfig 판매처별 설정입니다. 두 판매처 모두 필수입니다.
type RetailersConfig struct {
	ATB   RetailerConfig `json:"atb"`
	Silpo RetailerConfig `json:"silpo"`
}

// RetailerNames 설정된 판매처 식별자 목록입니다. 비교 응답의 병합 순서이기도 합니다.
func RetailerNames() []string {
	return []string{RetailerATB, RetailerSilpo}
}

// Get 판매처 식별자에 해당하는 설정을 반환합니다.
func (c RetailersConfig) Get(name string) (RetailerConfig, bool) {
	switch name {
	case RetailerATB:
		return c.ATB, true
	case RetailerSilpo:
		return c.Silpo, true
	}
	return RetailerConfig{}, false
}

func (c *RetailersConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.ATB, fmt.Sprintf("판매처('%s')", RetailerATB)); err != nil {
		return err
	}
	return checkStruct(v, c.Silpo, fmt.Sprintf("판매처('%s')", RetailerSilpo))
}

// RetailerConfig 판매처 하나의 단위 어휘와 상품 저장소 설정입니다.
type RetailerConfig struct {
	// Vocabulary 판매처가 사용하는 단위 코드 어휘 ("A" 또는 "B")
	Vocabulary string      `json:"vocabulary" validate:"required,oneof=A B"`
	Store      StoreConfig `json:"store"`
}

// 저장소 드라이버
const (
	DriverSQLite = "sqlite"
	DriverCSV    = "csv"
	DriverJSON   = "json"
	DriverMemory = "memory"
)

// StoreConfig 상품 저장소 설정입니다. Options의 형태는 드라이버마다 다르며 저장소 생성 시 디코딩합니다.
type StoreConfig struct {
	Driver  string         `json:"driver" validate:"required,oneof=sqlite csv json memory"`
	Options map[string]any `json:"options,omitempty"`
}

// CatalogRefreshConfig 파일 스냅샷 저장소의 주기적 재적재 설정입니다.
type CatalogRefreshConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
}

// PriceAPIConfig 가격 조회 REST API 서버 설정입니다.
type PriceAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *PriceAPIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.WS, "웹 서버(ws)"); err != nil {
		return err
	}
	return c.CORS.validate(v)
}

// WSConfig 웹 서버의 포트 및 TLS 설정입니다.
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

// CORSConfig CORS 허용 출처 설정입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}
	return checkStruct(v, c, "CORS(cors)")
}
