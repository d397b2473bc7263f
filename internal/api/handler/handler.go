package handler

import (
	"net/http"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
)

// writeServiceError service層的錯誤統一在這轉成response
// AppError直接用內部錯誤碼當http status  其他一律500
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperr.AppError); ok {
		api.ErrorJSON(w, int(appErr.Code), appErr, apperr.ErrStrMap[appErr.Code])
		return
	}
	api.ErrorJSON(w, int(apperr.InternalErrorCode), err, apperr.ErrStrMap[apperr.InternalErrorCode])
}

func writeBadRequest(w http.ResponseWriter, err error) {
	api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
}
