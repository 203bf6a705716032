package product

import (
	model "github.com/darkkaiser/grocery-price-server/internal/service/api/model/product"
	productsvc "github.com/darkkaiser/grocery-price-server/internal/service/product"
	"github.com/darkkaiser/grocery-price-server/internal/store"
)

func toProductResponse(p store.RawProduct) model.ProductResponse {
	resp := model.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		PriceBot: p.BotPrice,
		Unit:     p.Unit,
		ImageURL: p.ImageURL,
	}
	if p.Quantity.Valid {
		q := p.Quantity.Decimal.InexactFloat64()
		resp.Quantity = &q
	}
	return resp
}

func toPricedResponse(r productsvc.PricedRecord) model.PricedProductResponse {
	return model.PricedProductResponse{
		ProductResponse: toProductResponse(r.RawProduct),
		PriceForX:       r.PriceForTarget.InexactFloat64(),
		PriceForXBot:    r.SecondaryPriceForTarget.InexactFloat64(),
		X:               r.TargetGrams.InexactFloat64(),
		Store:           r.Source,
	}
}

// 결과가 없어도 null이 아닌 빈 배열로 응답하도록 항상 슬라이스를 만든다.
func toPricedResponses(records []productsvc.PricedRecord) []model.PricedProductResponse {
	out := make([]model.PricedProductResponse, len(records))
	for i, r := range records {
		out[i] = toPricedResponse(r)
	}
	return out
}

func toComparedResponses(records []productsvc.ComparableRecord) []model.ComparedProductResponse {
	out := make([]model.ComparedProductResponse, len(records))
	for i, r := range records {
		out[i] = model.ComparedProductResponse{
			PricedProductResponse: toPricedResponse(r.PricedRecord),
			PricePerUnit:          r.PricePerGram.InexactFloat64(),
		}
	}
	return out
}

func toSortedResponses(records []productsvc.ParsedRecord) []model.SortedProductResponse {
	out := make([]model.SortedProductResponse, len(records))
	for i, r := range records {
		out[i] = model.SortedProductResponse{
			ProductResponse: toProductResponse(r.RawProduct),
			Store:           r.Source,
			PriceData:       r.PriceData,
		}
	}
	return out
}
