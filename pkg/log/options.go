package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	Name  string // 로그 파일명의 접두어로 사용되는 애플리케이션 식별자
	Dir   string // 로그 디렉토리 (빈 값이면 "logs")
	Level Level

	MaxAgeDays int // 로테이션된 파일의 보관 일수 (0: 삭제 안 함)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: defaultMaxSizeMB)
	MaxBackups int // 보관할 백업 파일 수 (0: defaultMaxBackups)
	Compress   bool

	EnableCriticalLog bool // ERROR 이상을 <name>.critical.log 에도 기록
	EnableVerboseLog  bool // DEBUG 이하를 <name>.verbose.log 로 분리
	EnableConsoleLog  bool // 모든 레벨을 표준 출력에도 기록

	ReportCaller bool

	// CallerPathPrefix 호출자 함수 경로에서 잘라낼 접두어입니다.
	// 예: "github.com/darkkaiser/grocery-price-server"
	CallerPathPrefix string
}

// Validate 옵션 값의 유효성을 검사합니다.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if o.Dir != "" {
		if info, err := os.Stat(o.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", o.Dir)
		}
	}

	limits := []struct {
		name  string
		value int
	}{
		{"MaxAgeDays", o.MaxAgeDays},
		{"MaxSizeMB", o.MaxSizeMB},
		{"MaxBackups", o.MaxBackups},
	}
	for _, l := range limits {
		if l.value < 0 {
			return fmt.Errorf("%s는 0 이상이어야 합니다: %d", l.name, l.value)
		}
	}

	return nil
}
