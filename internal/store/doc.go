// Package store 판매처별 상품 레코드 저장소를 제공합니다.
//
// 가격 계산 계층은 Store 인터페이스만 사용하며, 실제 데이터는 설정된 드라이버가 읽어옵니다.
//
//   - sqlite: 스크래퍼가 적재한 상품 테이블 (기본 테이블명: <판매처>_products)
//   - csv: 스크래퍼가 내보낸 CSV 스냅샷 파일
//   - json: 스크래퍼가 내보낸 JSON 스냅샷 파일
//   - memory: 설정 파일에 직접 기록한 레코드 (개발/테스트용)
//
// csv, json 드라이버는 Reloader를 구현하므로 스냅샷 파일을 다시 읽어 들일 수 있습니다.
package store
