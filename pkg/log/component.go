package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// ComponentKey 로그 항목에 출력 컴포넌트를 기록하는 필드 이름입니다.
const ComponentKey = "component"

// WithComponent component 필드가 설정된 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(ComponentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 Entry를 반환합니다.
// fields의 component 키는 인자로 전달된 값으로 덮어씁니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[ComponentKey] = component
	return logrus.WithFields(merged)
}

// SetDebugMode 디버그 모드이면 Trace, 아니면 Info 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

func WithContext(ctx context.Context) *Entry {
	return logrus.WithContext(ctx)
}

func SetLevel(level Level) {
	logrus.SetLevel(level)
}

func GetLevel() Level {
	return logrus.GetLevel()
}

func SetOutput(out io.Writer) {
	logrus.SetOutput(out)
}

func SetFormatter(formatter Formatter) {
	logrus.SetFormatter(formatter)
}

func Info(args ...any) {
	logrus.Info(args...)
}

func Infof(format string, args ...any) {
	logrus.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logrus.Errorf(format, args...)
}
