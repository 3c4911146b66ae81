package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoActiveSession:         http.StatusUnauthorized,
	service.ErrNotRecordOwner:          http.StatusForbidden,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrAssetNotFound:      http.StatusNotFound,
	store.ErrInvalidAssetName:   http.StatusNotFound,
	store.ErrNoSessionFound:     http.StatusUnauthorized,
	store.ErrStorageUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
