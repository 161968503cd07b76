// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 공유된 종료 컨텍스트와 WaitGroup 아래에서 실행되는 서비스입니다.
//
// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행해야 하며, 서비스는 완전히 종료된 뒤 Done을 호출합니다.
// Start는 즉시 반환되고 실제 작업은 별도 고루틴에서 수행됩니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
