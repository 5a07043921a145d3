package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Scope
		wantErr bool
	}{
		{"empty selects all", "", AllScope(), false},
		{"all keyword", "all", AllScope(), false},
		{"all keyword mixed case", " ALL ", AllScope(), false},
		{"mistakes keyword", "mistakes", MistakesScope(), false},
		{"numeric set id", "3", SetScope(3), false},
		{"zero set id", "0", Scope{}, true},
		{"negative set id", "-2", Scope{}, true},
		{"garbage", "abc", Scope{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScope(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, CodeValidation, ErrorCodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "all", AllScope().String())
	assert.Equal(t, "mistakes", MistakesScope().String())
	assert.Equal(t, "12", SetScope(12).String())
}

func TestNewInsufficientPoolError_ScopeWording(t *testing.T) {
	mistakesErr := NewInsufficientPoolError(MistakesScope())
	generalErr := NewInsufficientPoolError(SetScope(2))

	assert.Equal(t, CodeInsufficientPool, mistakesErr.Code)
	assert.Equal(t, CodeInsufficientPool, generalErr.Code)
	assert.Equal(t, MsgInsufficientMistakes, mistakesErr.Message)
	assert.Equal(t, MsgInsufficientPool, generalErr.Message)
	assert.NotEqual(t, mistakesErr.Message, generalErr.Message)
	assert.Equal(t, MsgInsufficientPool, NewInsufficientPoolError(AllScope()).Message)
}

func TestDomainError_WrapsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "disk I/O error", err.Message)
	assert.Equal(t, "disk I/O error", err.Error())
	assert.Equal(t, "Set not found: record not found", NewError(CodeNotFound, "Set not found", ErrNotFound).Error())

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, CodeStorage, ErrorCodeOf(wrapped))
	assert.Equal(t, ErrorCode(""), ErrorCodeOf(cause))
}

func TestDomainError_MarshalJSONHidesCause(t *testing.T) {
	err := NewUpstreamError(errors.New("status 401: invalid key"))
	b, marshalErr := err.MarshalJSON()
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"UPSTREAM_ERROR","message":"status 401: invalid key"}`, string(b))
}

func TestWord_Validate(t *testing.T) {
	w := NewWord("  apple ", " 蘋果 ", "", 0)
	require.NoError(t, w.Validate())
	assert.Equal(t, "apple", w.Term)
	assert.Equal(t, DefaultSetID, w.SetID)

	assert.Error(t, NewWord("", "x", "", 1).Validate())
	assert.Error(t, NewWord("x", " ", "", 1).Validate())
}

func TestOptionFromWord_DropsExample(t *testing.T) {
	opt := OptionFromWord(Word{ID: 7, Term: "t", Definition: "d", Example: "secret"})
	assert.Equal(t, QuizOption{ID: 7, Term: "t", Definition: "d"}, opt)
}
