package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileForm struct {
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL string  `json:"avatar_url" binding:"omitempty,url"`
	Action    string  `form:"action" binding:"omitempty,oneof=check count"`
	Owner     uint64  `binding:"required"`
}

func TestStruct(t *testing.T) {
	short := "hello"
	require.NoError(t, Struct(&profileForm{Bio: &short, Owner: 1}))
	require.NoError(t, Struct(&profileForm{AvatarURL: "https://cdn.example.com/a.png", Owner: 1}))

	// 500 个字符按 rune 计，多字节字符不吃亏
	exact := strings.Repeat("字", 500)
	require.NoError(t, Struct(&profileForm{Bio: &exact, Owner: 1}))

	long := strings.Repeat("a", 501)
	err := Struct(&profileForm{Bio: &long, Owner: 1})
	require.Error(t, err)
	assert.Equal(t, "bio must be at most 500 characters", Message(err))

	err = Struct(&profileForm{AvatarURL: "not a url", Owner: 1})
	assert.Equal(t, "avatar_url must be a valid URL", Message(err))

	err = Struct(&profileForm{Action: "nope", Owner: 1})
	assert.Equal(t, "action must be one of: check count", Message(err))

	err = Struct(&profileForm{})
	assert.Equal(t, "Owner is required", Message(err))
}

func TestMessage_NonValidationError(t *testing.T) {
	assert.Equal(t, "invalid request", Message(errors.New("unexpected EOF")))
	assert.Equal(t, "invalid request", Message(nil))
}
