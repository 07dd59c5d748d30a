package services

import (
	"context"
	"errors"

	"github.com/integrasalud/affiliate-client/internal/common"
)

// ErrorKind classifies a flow error for presentation.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindValidation
	KindNotFound
	KindInvalidCredentials
	KindUnavailable
	KindStorage
	KindMalformedRecord
	KindInProgress
	KindInternal
)

var kindNames = map[ErrorKind]string{
	KindNone:               "none",
	KindValidation:         "validation",
	KindNotFound:           "not_found",
	KindInvalidCredentials: "invalid_credentials",
	KindUnavailable:        "unavailable",
	KindStorage:            "storage",
	KindMalformedRecord:    "malformed_record",
	KindInProgress:         "in_progress",
	KindInternal:           "internal",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Kind maps err to its ErrorKind. Order matters: an error may wrap several
// sentinels (a storage failure caused by a malformed value, for instance) and
// the outermost concern wins.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, common.ErrValidation):
		return KindValidation
	case errors.Is(err, common.ErrInProgress):
		return KindInProgress
	case errors.Is(err, common.ErrStorage):
		return KindStorage
	case errors.Is(err, common.ErrNotFound):
		return KindNotFound
	case errors.Is(err, common.ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, common.ErrMalformedRecord):
		return KindMalformedRecord
	case errors.Is(err, common.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindUnavailable
	default:
		return KindInternal
	}
}
