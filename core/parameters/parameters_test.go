package parameters

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRegisterDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.core")
	defer teardown()
	//
	regs := NewLayoutRegisters()
	assert.Equal(t, `0.4\textwidth`, regs.S(P_TEXTCOLUMN))
	assert.True(t, regs.B(P_KEEPASPECT))
	assert.False(t, regs.B(P_VERTICAL))
	assert.Equal(t, "P_PICTUREWIDTH", P_PICTUREWIDTH.String())
}

func TestGroupsShadowAndRestore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.core")
	defer teardown()
	//
	regs := NewLayoutRegisters()
	regs.Begingroup() // slide
	regs.Push(P_PICTUREWIDTH, "8cm")
	regs.Begingroup() // picture
	assert.Equal(t, 2, regs.Level())
	regs.Push(P_VERTICAL, true)
	regs.Push(P_PICTUREWIDTH, "4cm")
	assert.Equal(t, "4cm", regs.S(P_PICTUREWIDTH))
	assert.True(t, regs.B(P_VERTICAL))
	regs.Endgroup()
	assert.Equal(t, "8cm", regs.S(P_PICTUREWIDTH))
	assert.False(t, regs.B(P_VERTICAL))
	regs.Endgroup()
	assert.Equal(t, `0.9\paperwidth`, regs.S(P_PICTUREWIDTH))
	assert.Equal(t, 0, regs.Level())
}

func TestEmptyGroupDoesNotLeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.core")
	defer teardown()
	//
	regs := NewLayoutRegisters()
	regs.Begingroup()
	regs.Begingroup()
	regs.Push(P_CODESTYLE, `\tiny`)
	regs.Endgroup()
	regs.Endgroup() // outer group never received a value
	regs.Begingroup()
	assert.Equal(t, `\ttfamily\small`, regs.S(P_CODESTYLE))
	regs.Endgroup()
}

func TestBaseLevelPush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slides.core")
	defer teardown()
	//
	regs := NewLayoutRegisters()
	regs.Push(P_ASPECTRATIO, "169")
	regs.Begingroup()
	assert.Equal(t, "169", regs.S(P_ASPECTRATIO))
	regs.Endgroup()
	assert.Panics(t, func() { regs.Get(P_STOPPER) })
}
