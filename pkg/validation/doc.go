/*
Package validation 설정 파일과 환경 변수로 들어오는 값의 유효성을 검사하는 기능을 제공합니다.

주요 기능:

  - CORS (Cross-Origin Resource Sharing) Origin 검증
  - 헬스체크 대상 http(s) URL 검증
  - 포트 번호 검증
  - Cron 표현식 (초 단위 포함 6필드) 검증

모든 검증 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환합니다.
*/
package validation
