package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wilson-ca/internal/core"
	"wilson-ca/internal/sims/wilsoncowan"
)

type bareSim struct{}

func (bareSim) Name() string { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64) {}
func (bareSim) Step() {}
func (bareSim) Cells() []uint8 { return []uint8{0} }

func TestStatusLineWithoutParameters(t *testing.T) {
	assert.Equal(t, "bare  [paused]", StatusLine(bareSim{}, true))
}

func TestStatusLineForMedium(t *testing.T) {
	cfg := wilsoncowan.DefaultConfig()
	cfg.SpontaneousRate = 0
	m, err := wilsoncowan.NewMedium(cfg)
	require.NoError(t, err)
	m.Step()

	assert.Equal(t,
		"wilsoncowan  step=1  active=0  rate=0  radius=3  threshold=4  refractory=6",
		StatusLine(m, false))
}
