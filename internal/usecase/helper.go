package usecase

import (
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

// logFailure logs unclassified errors at error level. Classified ones
// (not found, duplicate, ...) are ordinary outcomes and only get a debug line.
func logFailure(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if errs.KindOf(err) == errs.KindInternal {
		log.Error(msg, fields...)
		return
	}
	log.Debug(msg, fields...)
}

func validationFailed(log *zap.Logger, operation string, violations []errs.Violation) error {
	log.Warn(operation+" validation failed", zap.Any("errors", violations))
	return errs.Validation(violations...)
}
