package log

// NewProductionOptions 운영 환경용 로그 옵션을 반환합니다.
// 콘솔 출력 없이 Main/Critical/Verbose 세 파일로 분리 기록합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAgeDays: 30,
		MaxSizeMB:  100,
		MaxBackups: 20,
		Compress:   true,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,

		ReportCaller: true,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 옵션을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAgeDays: 1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableConsoleLog: true,

		ReportCaller: true,
	}
}
