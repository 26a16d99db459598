// Package common - Test chuyển đổi lỗi MongoDB và taxonomy lỗi hệ thống.
package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
}

func TestConvertMongoError_NotFoundPassesThrough(t *testing.T) {
	// ErrNotFound giữ nguyên để tầng handler map sang thông báo nghiệp vụ
	assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))

	wrapped := fmt.Errorf("find video: %w", ErrNotFound)
	assert.Equal(t, wrapped, ConvertMongoError(wrapped))
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}},
	}

	converted := ConvertMongoError(dupErr)
	assert.Equal(t, ErrMongoDuplicate, converted)

	var customErr *Error
	assert.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusConflict, customErr.StatusCode)
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	cases := []struct {
		code     int32
		expected error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}

	for _, tc := range cases {
		converted := ConvertMongoError(mongo.CommandError{Code: tc.code})
		assert.Equal(t, tc.expected, converted, "code %d", tc.code)
	}
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	converted := ConvertMongoError(errors.New("loi la"))

	var customErr *Error
	assert.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
}

func TestErrorSentinels_WireMessages(t *testing.T) {
	cases := []struct {
		err     error
		message string
		status  int
	}{
		{ErrTokenMissing, "Unauthorized", StatusUnauthorized},
		{ErrTokenInvalid, "Unauthorized", StatusUnauthorized},
		{ErrInvalidCredentials, "Invalid password", StatusUnauthorized},
		{ErrNotFound, "Not found", StatusNotFound},
	}

	for _, tc := range cases {
		var customErr *Error
		assert.True(t, errors.As(tc.err, &customErr))
		assert.Equal(t, tc.message, customErr.Message)
		assert.Equal(t, tc.status, customErr.StatusCode)
	}
}
