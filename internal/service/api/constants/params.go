package constants

// 상품 조회 API의 URL 쿼리 파라미터 키 상수입니다.
const (
	QueryName      = "name"
	QueryCategory  = "category"
	QueryGrams     = "grams"
	QuerySortOrder = "sortOrder"

	// QueryDirection 정렬 조회 경로에서 sortOrder 대신 쓸 수 있는 별칭
	QueryDirection = "direction"
)

// 경로 파라미터 키 상수입니다.
const (
	PathRetailer = "retailer"
)

// RetailerAll 정렬 조회에서 모든 판매처를 의미하는 경로 값입니다.
const RetailerAll = "all"

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
