package log

// NewProductionOptions 운영(Production) 환경에 최적화된 로그 설정을 반환합니다.
func NewProductionOptions(name, dir string) Options {
	return Options{
		Name:  name,
		Dir:   dir,
		Level: InfoLevel,

		MaxSizeMB:  defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,

		EnableConsoleLog: false,

		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser/monitoring-server",
	}
}

// NewDevelopmentOptions 개발(Development) 환경에 최적화된 로그 설정을 반환합니다.
func NewDevelopmentOptions(name, dir string) Options {
	return Options{
		Name:  name,
		Dir:   dir,
		Level: TraceLevel,

		MaxSizeMB:  defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,

		EnableConsoleLog: true,

		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser/monitoring-server",
	}
}
