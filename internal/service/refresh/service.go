// Package refresh 파일 스냅샷 저장소를 주기적으로 다시 읽어 들이는 서비스입니다.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	"github.com/darkkaiser/grocery-price-server/internal/store"
	"github.com/darkkaiser/grocery-price-server/pkg/concurrency"
	"github.com/darkkaiser/grocery-price-server/pkg/cronx"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component 스냅샷 재적재 서비스의 로깅용 컴포넌트 이름
const component = "refresh.service"

// reloadTimeout 저장소 하나를 다시 읽는 데 허용하는 최대 시간
const reloadTimeout = 30 * time.Second

// ErrReloadInProgress 같은 판매처의 재적재가 이미 진행 중일 때 반환하는 에러입니다.
var ErrReloadInProgress = errors.New("재적재가 이미 진행 중입니다")

// Service catalog_refresh 설정의 Cron 스케줄에 따라 Reloader를 구현한 저장소를 다시 읽습니다.
type Service struct {
	cfg    config.CatalogRefreshConfig
	stores *store.Registry

	cron *cron.Cron

	// reloading 판매처별 재적재 잠금. 이전 재적재가 끝나지 않은 판매처는 건너뜁니다.
	reloading *concurrency.KeyedMutex[string]

	running   bool
	runningMu sync.Mutex
}

// NewService 새 스냅샷 재적재 서비스를 생성합니다.
func NewService(cfg config.CatalogRefreshConfig, stores *store.Registry) *Service {
	return &Service{
		cfg:    cfg,
		stores: stores,

		reloading: concurrency.NewKeyedMutex[string](),
	}
}

// Start 재적재 스케줄을 등록하고 Cron 엔진을 시작합니다.
// 재적재가 비활성화되어 있거나 재적재할 저장소가 없으면 아무것도 등록하지 않습니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.stores == nil {
		serviceStopWG.Done()
		return ErrStoresNotInitialized
	}
	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("스냅샷 재적재 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	targets := s.reloadableRetailers()
	if !s.cfg.Enabled || len(targets) == 0 {
		serviceStopWG.Done()
		applog.WithComponentAndFields(component, applog.Fields{
			"enabled":     s.cfg.Enabled,
			"reloadables": len(targets),
		}).Info("스냅샷 재적재 서비스 비활성: 등록할 스케줄이 없습니다")
		return nil
	}

	cronLogger := cron.VerbosePrintfLogger(applog.StandardLogger())
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cronLogger),
		cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		),
	)

	if _, err := s.cron.AddFunc(s.cfg.TimeSpec, func() {
		// 종료 시 cron.Stop()이 진행 중인 재적재를 기다리므로 서비스 컨텍스트와 분리한다.
		_ = s.RefreshAll(context.Background())
	}); err != nil {
		s.cron = nil
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.cfg.TimeSpec, err)
	}

	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.cfg.TimeSpec,
		"retailers": targets,
	}).Info("스냅샷 재적재 서비스 시작 완료")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop Cron 엔진을 멈추고 진행 중인 재적재가 끝날 때까지 기다립니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("스냅샷 재적재 서비스 종료 완료")
}

// reloadableRetailers Reloader를 구현한 저장소의 판매처 이름을 반환합니다.
func (s *Service) reloadableRetailers() []string {
	var names []string
	for _, name := range s.stores.Names() {
		st, _ := s.stores.Get(name)
		if _, ok := st.(store.Reloader); ok {
			names = append(names, name)
		}
	}
	return names
}

// RefreshAll 재적재 가능한 모든 저장소를 순서대로 다시 읽습니다.
// 한 판매처의 실패는 다른 판매처의 재적재를 막지 않으며, 실패들을 모아 반환합니다.
func (s *Service) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, name := range s.reloadableRetailers() {
		if err := s.Refresh(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Refresh 한 판매처의 저장소를 다시 읽습니다. 같은 판매처의 재적재가 진행 중이면 ErrReloadInProgress를 반환합니다.
func (s *Service) Refresh(ctx context.Context, retailer string) error {
	st, ok := s.stores.Get(retailer)
	if !ok {
		return fmt.Errorf("등록되지 않은 판매처입니다: %s", retailer)
	}
	reloader, ok := st.(store.Reloader)
	if !ok {
		return nil
	}

	if !s.reloading.TryLock(retailer) {
		applog.WithComponentAndFields(component, applog.Fields{
			"retailer": retailer,
		}).Warn("재적재 건너뜀: 이전 재적재가 아직 진행 중입니다")
		return ErrReloadInProgress
	}
	defer s.reloading.Unlock(retailer)

	ctx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	startedAt := time.Now()
	if err := reloader.Reload(ctx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"retailer": retailer,
			"driver":   st.Driver(),
			"error":    err,
		}).Error("스냅샷 재적재 실패: 기존 데이터를 유지합니다")
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"retailer":    retailer,
		"driver":      st.Driver(),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Debug("스냅샷 재적재 완료")

	return nil
}
