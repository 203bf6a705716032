// Package product 상품 가격 조회 엔드포인트 핸들러를 제공합니다.
package product

import (
	"context"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	"github.com/darkkaiser/grocery-price-server/internal/pricing"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/constants"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/handler"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/httputil"
	model "github.com/darkkaiser/grocery-price-server/internal/service/api/model/product"
	productsvc "github.com/darkkaiser/grocery-price-server/internal/service/product"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Service 핸들러가 사용하는 상품 조회 기능입니다.
type Service interface {
	Priced(ctx context.Context, retailer string, q productsvc.Query) ([]productsvc.PricedRecord, error)
	Compare(ctx context.Context, q productsvc.Query) ([]productsvc.ComparableRecord, error)
	Sorted(ctx context.Context, retailer string, q productsvc.SortedQuery) ([]productsvc.ParsedRecord, error)
	SortedAll(ctx context.Context, q productsvc.SortedQuery) (map[string][]productsvc.ParsedRecord, error)
	DefaultTargetGrams() decimal.Decimal
}

// Handler 상품 가격 조회 요청을 처리합니다.
type Handler struct {
	products Service
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(products Service) *Handler {
	if products == nil {
		panic(constants.PanicMsgProductServiceRequired)
	}
	return &Handler{products: products}
}

// PricedATBHandler godoc
// @Summary ATB 상품 목표 중량 가격
// @Description 단위 코드와 수량으로 기준 수량을 구해 목표 중량(grams) 가격을 계산하고 그 가격으로 정렬합니다.
// @Description 카테고리는 대소문자를 무시한 완전 일치, 상품명은 부분 일치로 필터링합니다.
// @Tags Products
// @Produce json
// @Param name query string false "상품명 부분 일치"
// @Param category query string false "카테고리 완전 일치"
// @Param grams query number false "목표 중량(g), 기본값 100"
// @Param sortOrder query string false "정렬 방향" Enums(asc, desc)
// @Success 200 {array} product.PricedProductResponse "가격 계산 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 500 {object} response.ErrorResponse "저장소 조회 실패"
// @Router /products/atb [get]
func (h *Handler) PricedATBHandler(c echo.Context) error {
	return h.priced(c, config.RetailerATB)
}

// PricedSilpoHandler godoc
// @Summary Silpo 상품 목표 중량 가격
// @Description ATB와 동일한 규칙으로 Silpo 상품의 목표 중량 가격을 계산합니다. 개수 단위(шт) 상품은 1개를 기준 수량으로 사용합니다.
// @Tags Products
// @Produce json
// @Param name query string false "상품명 부분 일치"
// @Param category query string false "카테고리 완전 일치"
// @Param grams query number false "목표 중량(g), 기본값 100"
// @Param sortOrder query string false "정렬 방향" Enums(asc, desc)
// @Success 200 {array} product.PricedProductResponse "가격 계산 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 500 {object} response.ErrorResponse "저장소 조회 실패"
// @Router /products/silpo [get]
func (h *Handler) PricedSilpoHandler(c echo.Context) error {
	return h.priced(c, config.RetailerSilpo)
}

func (h *Handler) priced(c echo.Context, retailer string) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return err
	}

	records, err := h.products.Priced(c.Request().Context(), retailer, h.toQuery(q))
	if err != nil {
		return err
	}

	h.log(c, retailer, len(records))

	return httputil.OK(c, toPricedResponses(records))
}

// CompareHandler godoc
// @Summary 판매처 간 가격 비교
// @Description 두 판매처의 목표 중량 가격을 합쳐 g당 가격(pricePerUnit)으로 정렬합니다.
// @Description 같은 g당 가격이면 ATB 레코드가 먼저 오며, 각 판매처 안에서는 저장소 순서를 유지합니다.
// @Tags Products
// @Produce json
// @Param name query string false "상품명 부분 일치"
// @Param category query string false "카테고리 완전 일치"
// @Param grams query number false "목표 중량(g), 기본값 100"
// @Param sortOrder query string false "정렬 방향" Enums(asc, desc)
// @Success 200 {array} product.ComparedProductResponse "비교 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 500 {object} response.ErrorResponse "저장소 조회 실패"
// @Router /products/compare [get]
func (h *Handler) CompareHandler(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return err
	}

	records, err := h.products.Compare(c.Request().Context(), h.toQuery(q))
	if err != nil {
		return err
	}

	h.log(c, "compare", len(records))

	return httputil.OK(c, toComparedResponses(records))
}

// SortedHandler godoc
// @Summary 가격 문자열 해석 기반 정렬
// @Description 가격 문자열과 상품명에서 100g당 가격을 해석하여 정렬합니다. 해석할 수 없으면 숫자 가격을 사용하고, 숫자가 없는 레코드는 맨 뒤에 놓입니다.
// @Description retailer가 all이면 판매처별 결과를 하나의 객체로 반환합니다.
// @Tags Products
// @Produce json
// @Param retailer path string true "판매처" Enums(atb, silpo, all)
// @Param name query string false "상품명 부분 일치"
// @Param category query string false "카테고리 부분 일치"
// @Param sortOrder query string false "정렬 방향" Enums(asc, desc)
// @Param direction query string false "sortOrder의 별칭" Enums(asc, desc)
// @Success 200 {array} product.SortedProductResponse "정렬 결과 (all이면 product.AllSortedResponse)"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 판매처"
// @Failure 500 {object} response.ErrorResponse "저장소 조회 실패"
// @Router /products/{retailer}/sorted [get]
func (h *Handler) SortedHandler(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return err
	}

	sq := productsvc.SortedQuery{
		Name:     q.Name,
		Category: q.Category,
		Order:    pricing.ParseOrder(q.Order()),
	}

	retailer := c.Param(constants.PathRetailer)
	if retailer == constants.RetailerAll {
		all, err := h.products.SortedAll(c.Request().Context(), sq)
		if err != nil {
			return err
		}

		resp := make(model.AllSortedResponse, len(all))
		total := 0
		for name, records := range all {
			resp[name] = toSortedResponses(records)
			total += len(records)
		}

		h.log(c, retailer, total)

		return httputil.OK(c, resp)
	}

	records, err := h.products.Sorted(c.Request().Context(), retailer, sq)
	if err != nil {
		return err
	}

	h.log(c, retailer, len(records))

	return httputil.OK(c, toSortedResponses(records))
}

func (h *Handler) bindQuery(c echo.Context) (model.ProductQuery, error) {
	var q model.ProductQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return q, httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidQuery)
	}
	if err := handler.ValidateRequest(&q); err != nil {
		return q, httputil.NewBadRequestError(handler.FormatValidationError(err))
	}
	return q, nil
}

func (h *Handler) toQuery(q model.ProductQuery) productsvc.Query {
	return productsvc.Query{
		Name:        q.Name,
		Category:    q.Category,
		TargetGrams: productsvc.ParseTargetGrams(q.Grams, h.products.DefaultTargetGrams()),
		Order:       pricing.ParseOrder(q.Order()),
	}
}

func (h *Handler) log(c echo.Context, retailer string, count int) {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
		"retailer": retailer,
		"count":    count,
	}).Debug(constants.LogMsgProductsServed)
}
