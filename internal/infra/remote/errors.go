package remote

import (
	"encoding/json"
	"io"
	"net/http"

	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"
)

// KindForStatus classifies a non-2xx status.
func KindForStatus(status int) domainerrors.Kind {
	switch status {
	case http.StatusUnauthorized:
		return domainerrors.KindAuthExpired
	case http.StatusNotFound:
		return domainerrors.KindNotFound
	case http.StatusBadRequest, http.StatusForbidden, http.StatusConflict, http.StatusUnprocessableEntity:
		return domainerrors.KindRemoteRejected
	}

	if status >= 400 && status < 500 {
		return domainerrors.KindRemoteRejected
	}

	return domainerrors.KindNetwork
}

// decodeError turns an error envelope into a *SyncError carrying the server's
// message and status.
func decodeError(resp *http.Response) error {
	kind := KindForStatus(resp.StatusCode)

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope domainerrors.ErrorResponse
	msg := ""
	var cause error
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		msg = envelope.Error.Message
		cause = errors.Errorf("%s: %s", envelope.Error.Code, envelope.Error.Message)
	} else {
		cause = errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	syncErr := domainerrors.NewSyncError(kind, msg, cause)
	syncErr.Status = resp.StatusCode

	return syncErr
}
