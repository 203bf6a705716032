// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main에서 일괄 시작하고 종료하는 서비스입니다.
//
// Start는 초기화가 끝나면 즉시 반환하고, serviceStopCtx가 취소되면 자원을 정리한 뒤
// serviceStopWG.Done()을 호출해야 합니다. 초기화에 실패하여 에러를 반환하는 경우에도 Done()을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
