package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	"github.com/darkkaiser/grocery-price-server/internal/pkg/version"
	"github.com/darkkaiser/grocery-price-server/internal/service"
	"github.com/darkkaiser/grocery-price-server/internal/service/api"
	"github.com/darkkaiser/grocery-price-server/internal/service/product"
	"github.com/darkkaiser/grocery-price-server/internal/service/refresh"
	"github.com/darkkaiser/grocery-price-server/internal/store"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
)

// @title Grocery Price Server API
// @version 1.0.0
// @description ATB, Silpo 두 판매처의 상품 목록을 조회하고 목표 중량 기준 가격을 계산하여 비교하는 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 판매처별 상품 조회 및 목표 중량(grams) 기준 가격 계산
// @description - 판매처 간 g당 가격 비교
// @description - 가격 문자열 해석 기반 100g당 가격 정렬
// @description
// @description 모든 엔드포인트는 조회 전용(GET)이며 인증이 필요하지 않습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const (
	banner = `
   ____                                   ____       _
  / ___|_ __ ___   ___ ___ _ __ _   _    |  _ \ _ __(_) ___ ___
 | |  _| '__/ _ \ / __/ _ \ '__| | | |   | |_) | '__| |/ __/ _ \
 | |_| | | | (_) | (_|  __/ |  | |_| |   |  __/| |  | | (_|  __/
  \____|_|  \___/ \___\___|_|   \__, |   |_|   |_|  |_|\___\___|
                                |___/                        %s
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	configFile := config.DefaultFilename
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
		"config":  configFile,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	if err := run(appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서버 구동 실패로 프로그램을 종료합니다")

		appLogCloser.Close()
		os.Exit(1)
	}
}

func run(appConfig *config.AppConfig, buildInfo version.Info) error {
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 판매처 저장소를 연다. 서비스가 모두 종료된 뒤 닫는다.
	stores, err := store.OpenAll(serviceStopCtx, appConfig.Retailers)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Warn("저장소 종료 중 오류가 발생했습니다")
		}
	}()

	products, err := product.NewFromConfig(appConfig, stores)
	if err != nil {
		return err
	}

	refreshService := refresh.NewService(appConfig.CatalogRefresh, stores)
	apiService := api.NewService(appConfig, products, stores, buildInfo)

	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{refreshService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel() // 이미 시작된 서비스들도 종료
			serviceStopWG.Wait()

			return err
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields("main", applog.Fields{
		"signal": sig.String(),
	}).Info("종료 신호 수신")

	cancel()
	serviceStopWG.Wait()

	return nil
}
