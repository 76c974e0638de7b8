package core

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(ESYNTAX, "line %d does not parse", 7)
	assert.Equal(t, ESYNTAX, Code(err))
	assert.Equal(t, "line 7 does not parse", UserMessage(err))
	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ESYNTAX, Code(wrapped), "code must survive wrapping")
}

func TestWrapErrorKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(cause, EIO, "cannot write %s", "talk.tex")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, EIO, Code(err))
	assert.Equal(t, "[128] disk full", err.Error())
	assert.Equal(t, EMISSING, Code(ErrorWithCode(nil, EMISSING)))
	assert.Equal(t, "not found", UserMessage(ErrorWithCode(nil, EMISSING)))
}

func TestFprintUserError(t *testing.T) {
	var buf bytes.Buffer
	FprintUserError(&buf, WrapError(errors.New("bad header"), ESYNTAX, "cannot parse talk.md"))
	assert.Equal(t, "[126] cannot parse talk.md: bad header\n", buf.String())
	buf.Reset()
	FprintUserError(&buf, Error(EENCODING, "not UTF-8"))
	assert.Equal(t, "[127] not UTF-8: encoding error\n", buf.String())
	buf.Reset()
	FprintUserError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
