package middleware

import (
	"io"

	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// componentEcho Echo 프레임워크 내부 로그의 컴포넌트 이름
const componentEcho = "api.echo"

var (
	toEchoLevel = map[applog.Level]log.Lvl{
		applog.DebugLevel: log.DEBUG,
		applog.InfoLevel:  log.INFO,
		applog.WarnLevel:  log.WARN,
		applog.ErrorLevel: log.ERROR,
	}
	fromEchoLevel = map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
)

// Logger Echo의 로거 인터페이스를 애플리케이션 로거 위에 구현하는 어댑터입니다.
// Echo 내부 로그도 component=api.echo 필드와 함께 같은 출력 대상으로 기록됩니다.
type Logger struct {
	*applog.Logger
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField(applog.ComponentKey, componentEcho)
}

func (l Logger) Output() io.Writer { return l.Logger.Out }

func (l Logger) SetOutput(w io.Writer) { l.Logger.SetOutput(w) }

// Prefix Echo의 Prefix 기능은 사용하지 않습니다.
func (l Logger) Prefix() string { return "" }

func (l Logger) SetPrefix(string) {}

// Level 대응하는 Echo 레벨이 없는 Trace/Fatal/Panic은 OFF로 보고합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := toEchoLevel[l.Logger.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel log.OFF 등 대응하는 레벨이 없는 값은 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := fromEchoLevel[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

// SetHeader Echo의 헤더 포맷은 사용하지 않습니다.
func (l Logger) SetHeader(string) {}

func (l Logger) Print(i ...any) { l.entry().Print(i...) }
func (l Logger) Printf(format string, a ...any) { l.entry().Printf(format, a...) }
func (l Logger) Printj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...any) { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, a ...any) { l.entry().Debugf(format, a...) }
func (l Logger) Debugj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...any) { l.entry().Info(i...) }
func (l Logger) Infof(format string, a ...any) { l.entry().Infof(format, a...) }
func (l Logger) Infoj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...any) { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, a ...any) { l.entry().Warnf(format, a...) }
func (l Logger) Warnj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...any) { l.entry().Error(i...) }
func (l Logger) Errorf(format string, a ...any) { l.entry().Errorf(format, a...) }
func (l Logger) Errorj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...any) { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, a ...any) { l.entry().Fatalf(format, a...) }
func (l Logger) Fatalj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...any) { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, a ...any) { l.entry().Panicf(format, a...) }
func (l Logger) Panicj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Panic() }
