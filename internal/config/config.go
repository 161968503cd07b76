package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "monitoring-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 설정 파일명입니다.
	// 파일이 없으면 기본값과 환경 변수만으로 구동합니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 계층형 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: MONITORING_HTTP__LISTEN_PORT -> http.listen_port
	envPrefix = "MONITORING_"
)

const (
	// DefaultServiceURL 헬스체크 대상 서비스의 기본 주소입니다. 세 서비스 모두 같은 값을 기본으로 사용합니다.
	DefaultServiceURL = "http://safescan_apis:5000/api/health"

	// DefaultListenPort HTTP 서버의 기본 포트입니다.
	DefaultListenPort = 5001

	// DefaultLogDir 로그 파일이 저장되는 기본 디렉토리입니다.
	DefaultLogDir = "logs"

	// DefaultAlertWatchTimeSpec 알림 감시 작업의 기본 실행 주기입니다. (5분마다 0초)
	DefaultAlertWatchTimeSpec = "0 */5 * * * *"
)

// legacyEnvKeys 이전 버전과의 호환을 위해 접두사 없이 읽는 환경 변수와 설정 키의 매핑입니다.
var legacyEnvKeys = map[string]string{
	"API_URL":   "services.api",
	"DB_URL":    "services.database",
	"REDIS_URL": "services.redis",
}

// newDefaultConfig 모든 계층의 가장 아래에 깔리는 기본 설정을 생성합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Services: ServicesConfig{
			API:      DefaultServiceURL,
			Database: DefaultServiceURL,
			Redis:    DefaultServiceURL,
		},
		HTTP: HTTPConfig{
			ListenPort: DefaultListenPort,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
		Log: LogConfig{
			Dir: DefaultLogDir,
		},
		AlertWatch: AlertWatchConfig{
			Enabled:  false,
			TimeSpec: DefaultAlertWatchTimeSpec,
		},
	}
}

// normalizeEnvKey 접두사가 붙은 환경 변수명을 koanf 키 경로로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)로 바뀝니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// legacyEnvKey 호환용 환경 변수명을 설정 키로 변환합니다. 대상이 아니면 빈 문자열을 반환하여 무시되도록 합니다.
func legacyEnvKey(s string) string {
	return legacyEnvKeys[s]
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 포함하여 계층형 설정을 로드합니다.
//
// 우선순위 (낮음 -> 높음):
//  1. 구조체 기본값
//  2. JSON 설정 파일 (없으면 건너뜀)
//  3. MONITORING_ 접두사 환경 변수
//  4. API_URL, DB_URL, REDIS_URL
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		} else if !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일에 접근할 수 없습니다: '%s'", filename))
		}
	}

	// 3. 접두사 환경 변수 로드 (JSON 설정 덮어쓰기)
	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 호환용 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider("", ".", legacyEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "호환용 환경 변수 로드에 실패했습니다")
	}

	// 5. 구조체 언마샬링 (알 수 없는 필드는 에러)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 6. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
