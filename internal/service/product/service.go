// Package product 판매처 저장소의 상품 레코드에 가격 정규화와 정렬을 적용하는 조회 서비스입니다.
//
// 두 가지 조회 경로를 제공합니다.
//
//   - Priced / Compare: 단위 코드와 수량으로 기준 수량을 구해 목표 중량 가격을 계산합니다.
//   - Sorted / SortedAll: 가격 문자열과 상품명을 해석하여 100g당 가격으로 정렬합니다.
//
// 모든 결과는 요청마다 새로 계산하며 캐시하지 않습니다.
package product

import (
	"context"
	"strings"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/darkkaiser/grocery-price-server/internal/pricing"
	"github.com/darkkaiser/grocery-price-server/internal/store"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// component 상품 서비스 로깅용 컴포넌트 이름
const component = "product.service"

// displayNames 판매처 식별자별 응답용 표시 이름
var displayNames = map[string]string{
	config.RetailerATB:   "ATB",
	config.RetailerSilpo: "Silpo",
}

// Retailer 서비스가 조회하는 판매처 하나의 구성입니다.
type Retailer struct {
	Name        string
	DisplayName string
	Vocabulary  pricing.Vocabulary
	Store       store.Store
}

// Service 판매처별 상품 가격 조회 서비스입니다.
type Service struct {
	retailers     []Retailer
	byName        map[string]int
	defaultTarget decimal.Decimal
}

// New 서비스를 생성합니다. retailers의 순서가 판매처 통합 결과의 기본 순서가 됩니다.
func New(defaultTargetGrams int, retailers ...Retailer) (*Service, error) {
	if defaultTargetGrams <= 0 {
		return nil, apperrors.Newf(apperrors.InvalidInput, "기본 목표 중량은 0보다 커야 합니다: %d", defaultTargetGrams)
	}

	s := &Service{
		byName:        make(map[string]int, len(retailers)),
		defaultTarget: decimal.NewFromInt(int64(defaultTargetGrams)),
	}
	for _, r := range retailers {
		if r.Store == nil {
			return nil, apperrors.Newf(apperrors.InvalidInput, "판매처(%s)의 저장소가 지정되지 않았습니다", r.Name)
		}
		if _, dup := s.byName[r.Name]; dup {
			return nil, apperrors.Newf(apperrors.InvalidInput, "판매처(%s)가 중복 등록되었습니다", r.Name)
		}
		if r.DisplayName == "" {
			r.DisplayName = displayName(r.Name)
		}

		s.byName[r.Name] = len(s.retailers)
		s.retailers = append(s.retailers, r)
	}

	return s, nil
}

// NewFromConfig 설정과 열린 저장소로 서비스를 구성합니다.
func NewFromConfig(appConfig *config.AppConfig, stores *store.Registry) (*Service, error) {
	retailers := make([]Retailer, 0, len(config.RetailerNames()))
	for _, name := range config.RetailerNames() {
		retailerCfg, _ := appConfig.Retailers.Get(name)

		vocabulary, err := pricing.ParseVocabulary(retailerCfg.Vocabulary)
		if err != nil {
			return nil, err
		}
		s, ok := stores.Get(name)
		if !ok {
			return nil, NewErrUnknownRetailer(name)
		}

		retailers = append(retailers, Retailer{Name: name, Vocabulary: vocabulary, Store: s})
	}

	return New(appConfig.Pricing.DefaultTargetGrams, retailers...)
}

func displayName(name string) string {
	if dn, ok := displayNames[name]; ok {
		return dn
	}
	return strings.ToUpper(name)
}

// Retailers 등록 순서대로 판매처 구성을 반환합니다.
func (s *Service) Retailers() []Retailer {
	return append([]Retailer(nil), s.retailers...)
}

// DefaultTargetGrams 목표 중량이 주어지지 않았을 때 사용하는 값을 반환합니다.
func (s *Service) DefaultTargetGrams() decimal.Decimal {
	return s.defaultTarget
}

func (s *Service) retailer(name string) (Retailer, error) {
	i, ok := s.byName[name]
	if !ok {
		return Retailer{}, NewErrUnknownRetailer(name)
	}
	return s.retailers[i], nil
}

func (s *Service) targetOf(q Query) decimal.Decimal {
	if q.TargetGrams.IsPositive() {
		return q.TargetGrams
	}
	return s.defaultTarget
}

// Priced 한 판매처의 레코드에 목표 중량 가격을 계산하고 그 가격으로 안정 정렬하여 반환합니다.
//
// 가격에서 숫자를 찾을 수 없는 레코드는 계산할 수 없으므로 결과에서 제외합니다.
func (s *Service) Priced(ctx context.Context, retailer string, q Query) ([]PricedRecord, error) {
	r, err := s.retailer(retailer)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchPriced(ctx, r, q, s.targetOf(q))
	if err != nil {
		return nil, err
	}

	return pricing.SortBy(records, q.Order, func(p PricedRecord) decimal.Decimal {
		return p.PriceForTarget
	}), nil
}

// Compare 모든 판매처의 레코드를 동시에 조회하여 하나의 목록으로 합치고 g당 가격으로 안정 정렬합니다.
// 키가 같은 레코드는 판매처 등록 순서, 같은 판매처 안에서는 조회 순서를 유지합니다.
func (s *Service) Compare(ctx context.Context, q Query) ([]ComparableRecord, error) {
	target := s.targetOf(q)

	results := make([][]PricedRecord, len(s.retailers))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range s.retailers {
		g.Go(func() error {
			records, err := s.fetchPriced(gctx, r, q, target)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []ComparableRecord
	for _, records := range results {
		for _, p := range records {
			combined = append(combined, ComparableRecord{
				PricedRecord: p,
				PricePerGram: pricing.PerGram(p.PriceForTarget, p.TargetGrams),
			})
		}
	}

	return pricing.SortBy(combined, q.Order, func(c ComparableRecord) decimal.Decimal {
		return c.PricePerGram
	}), nil
}

func (s *Service) fetchPriced(ctx context.Context, r Retailer, q Query, target decimal.Decimal) ([]PricedRecord, error) {
	raws, err := r.Store.Find(ctx, store.Filter{
		Name:          q.Name,
		Category:      q.Category,
		CategoryMatch: store.CategoryExact,
	})
	if err != nil {
		return nil, NewErrFetchFailed(err, r.Name)
	}

	priced := make([]PricedRecord, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		price, ok := pricing.ParseAmount(raw.Price)
		if !ok {
			skipped++
			continue
		}

		base := r.Vocabulary.Normalize(raw.Unit, raw.Quantity)
		forTarget, secondaryForTarget := pricing.PriceFor(price, pricing.ParseOptionalAmount(raw.BotPrice), base, target)

		priced = append(priced, PricedRecord{
			RawProduct:              raw,
			Source:                  r.DisplayName,
			PriceForTarget:          forTarget,
			SecondaryPriceForTarget: secondaryForTarget,
			TargetGrams:             target,
			BaseQuantity:            base,
		})
	}

	if skipped > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"retailer": r.Name,
			"skipped":  skipped,
			"total":    len(raws),
		}).Debug("가격을 해석할 수 없는 상품 레코드 제외")
	}

	return priced, nil
}

// Sorted 한 판매처에서 이름과 가격이 있는 레코드의 가격 문자열을 해석하고,
// 100g당 가격(없으면 숫자 가격)으로 안정 정렬하여 반환합니다. 가격 숫자가 없는 레코드는 맨 뒤에 놓입니다.
func (s *Service) Sorted(ctx context.Context, retailer string, q SortedQuery) ([]ParsedRecord, error) {
	r, err := s.retailer(retailer)
	if err != nil {
		return nil, err
	}
	return s.sorted(ctx, r, q)
}

// SortedAll 모든 판매처에 대해 Sorted를 동시에 수행하고 판매처 이름별로 반환합니다.
func (s *Service) SortedAll(ctx context.Context, q SortedQuery) (map[string][]ParsedRecord, error) {
	results := make([][]ParsedRecord, len(s.retailers))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range s.retailers {
		g.Go(func() error {
			records, err := s.sorted(gctx, r, q)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make(map[string][]ParsedRecord, len(s.retailers))
	for i, r := range s.retailers {
		all[r.Name] = results[i]
	}
	return all, nil
}

func (s *Service) sorted(ctx context.Context, r Retailer, q SortedQuery) ([]ParsedRecord, error) {
	raws, err := r.Store.Find(ctx, store.Filter{
		Name:          q.Name,
		Category:      q.Category,
		CategoryMatch: store.CategorySubstring,
	})
	if err != nil {
		return nil, NewErrFetchFailed(err, r.Name)
	}

	parsed := make([]ParsedRecord, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw.Price) == "" || strings.TrimSpace(raw.Name) == "" {
			continue
		}
		parsed = append(parsed, ParsedRecord{
			RawProduct: raw,
			Source:     r.DisplayName,
			PriceData:  pricing.Parse(raw.Price, raw.Name),
		})
	}

	return pricing.SortByFloat(parsed, q.Order, func(p ParsedRecord) float64 {
		return p.PriceData.SortKey()
	}), nil
}

// ParseTargetGrams grams 쿼리 값을 목표 중량으로 변환합니다.
// 비어 있거나 숫자가 아니거나 0 이하이면 fallback을 반환합니다.
func ParseTargetGrams(raw string, fallback decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil || !d.IsPositive() {
		return fallback
	}
	return d
}
