package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

const (
	uniqueViolation       pq.ErrorCode  = "23505"
	integrityViolation    pq.ErrorClass = "23"
	connectionException   pq.ErrorClass = "08"
	operatorIntervention  pq.ErrorClass = "57"
	insufficientResources pq.ErrorClass = "53"
)

// Classify maps driver failures onto appErrors kinds. Errors already carrying
// a kind are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if appErrors.KindOf(err) != appErrors.KindUnknown {
		return err
	}
	return appErrors.FromKind(kindOf(err), err)
}

func kindOf(err error) appErrors.Kind {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.KindNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == uniqueViolation:
			return appErrors.KindConflict
		case pqErr.Code.Class() == integrityViolation:
			return appErrors.KindConstraintViolation
		case pqErr.Code.Class() == connectionException,
			pqErr.Code.Class() == operatorIntervention,
			pqErr.Code.Class() == insufficientResources:
			return appErrors.KindConnectionFailure
		}
		return appErrors.KindUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return appErrors.KindConnectionFailure
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return appErrors.KindConnectionFailure
	}

	return appErrors.KindUnknown
}
