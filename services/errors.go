package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 요청한 레코드가 없음
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized API 키 헤더 누락
	ErrUnauthorized = errors.New("api key missing")
	// ErrForbidden 발급되지 않은 API 키
	ErrForbidden = errors.New("invalid api key")
	// ErrDuplicateSecret 생성한 시크릿이 이미 존재함
	ErrDuplicateSecret = errors.New("duplicate api key secret")
)

// Validation error codes
const (
	CodeMissingFields = "missing_fields"
	CodeInvalidNumber = "invalid_number"
	CodeInvalidField  = "invalid_field"
)

// ValidationError 입력 검증 실패
type ValidationError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingFields(fields ...string) *ValidationError {
	return &ValidationError{
		Code:    CodeMissingFields,
		Message: fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

func invalidNumber(fields ...string) *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidNumber,
		Message: fmt.Sprintf("fields must be numeric: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidField,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
		Fields:  []string{field},
	}
}

// IsValidationError err 가 ValidationError 인지 확인하고 반환
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// isDuplicateKeyError 드라이버별 UNIQUE 제약 위반 판별
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	// modernc.org/sqlite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
