package apperr

import (
	"errors"
	"fmt"
)

type Code int

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	UnauthorizedCode    Code = 403
	NotFoundCode        Code = 404

	// 使用者輸入相關
	InvalidArgumentCode Code = 460
	EmptyCartCode       Code = 461
	InvalidStateCode    Code = 462

	// 資源尚未建置 例如資料表還沒建立
	FeatureNotProvisionedCode Code = 470

	InternalErrorCode Code = 500

	// 結帳流程專用
	OrderPersistFailedCode Code = 520
	OrderItemsFailedCode   Code = 521

	// soft error  僅作為警示 不會中斷主要流程
	CouponRedeemFailedCode Code = 530
	NotificationFailedCode Code = 531
)

var ErrStrMap = map[Code]string{
	BadRequestCode:            "BAD_REQUEST",
	UnauthenticatedCode:       "UNAUTHENTICATED",
	UnauthorizedCode:          "UNAUTHORIZED",
	NotFoundCode:              "NOT_FOUND",
	InvalidArgumentCode:       "VALIDATION_FAILED",
	EmptyCartCode:             "EMPTY_CART",
	InvalidStateCode:          "INVALID_STATE",
	FeatureNotProvisionedCode: "FEATURE_NOT_PROVISIONED",
	InternalErrorCode:         "INTERNAL_ERROR",
	OrderPersistFailedCode:    "ORDER_PERSIST_FAILED",
	OrderItemsFailedCode:      "ORDER_ITEMS_FAILED",
	CouponRedeemFailedCode:    "COUPON_REDEEM_FAILED",
	NotificationFailedCode:    "NOTIFICATION_FAILED",
}

type AppError struct {
	Code    Code
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%d %s] %s", e.Code, ErrStrMap[e.Code], e.Message)
}

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf 取出錯誤碼  非AppError一律視為internal error
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalErrorCode
}

func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
