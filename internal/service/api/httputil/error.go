package httputil

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/constants"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// echo.HTTPError는 지정된 상태 코드를 그대로 사용하고, AppError는 UnderlyingType으로 상태 코드를 결정합니다.
// 5xx 응답에는 내부 정보가 노출되지 않도록 고정 메시지를 사용합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않는다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		c.NoContent(code)
		return
	}

	c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		// 라우트가 없을 때 Echo가 만드는 기본 메시지만 한국어로 바꾼다.
		if he.Code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
			message = constants.ErrMsgNotFound
		}
		if he.Code >= http.StatusInternalServerError && he.Code != http.StatusServiceUnavailable {
			message = constants.ErrMsgInternalServer
		}
		return he.Code, message
	}

	// 저장소 조회 중 요청 마감 시간이 지나면 원인 에러의 타입과 관계없이 504로 응답한다.
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, constants.ErrMsgGatewayTimeout
	}

	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) {
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}

	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput:
		return http.StatusBadRequest, appErr.Message()
	case apperrors.NotFound:
		return http.StatusNotFound, appErr.Message()
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable
	case apperrors.Timeout:
		return http.StatusGatewayTimeout, constants.ErrMsgGatewayTimeout
	default:
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}
}
