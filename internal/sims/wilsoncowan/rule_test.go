package wilsoncowan

//go:generate mockgen -destination mock_bernoulli_test.go -package wilsoncowan wilson-ca/pkg/core Bernoulli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTransitionRefractoryDrawsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := NewMockBernoulli(ctrl)
	rule := Rule{SpontaneousRate: 0.5, Threshold: 1, RefractoryPeriod: 3}

	for counter := 3; counter > 0; counter-- {
		active, next := rule.Transition(counter, 100, rng)
		assert.False(t, active, "refractory cell fired with counter %d", counter)
		assert.Equal(t, counter-1, next)
	}
}

func TestTransitionThresholdFiresWithoutDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := NewMockBernoulli(ctrl)
	rule := Rule{SpontaneousRate: 0.5, Threshold: 4, RefractoryPeriod: 6}

	active, next := rule.Transition(0, 4, rng)
	assert.True(t, active)
	assert.Equal(t, 6, next)

	active, next = rule.Transition(0, 9, rng)
	assert.True(t, active)
	assert.Equal(t, 6, next)
}

func TestTransitionSubThresholdDrawsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := NewMockBernoulli(ctrl)
	rule := Rule{SpontaneousRate: 0.25, Threshold: 4, RefractoryPeriod: 6}

	gomock.InOrder(
		rng.EXPECT().Bernoulli(0.25).Return(true),
		rng.EXPECT().Bernoulli(0.25).Return(false),
	)

	active, next := rule.Transition(0, 3, rng)
	assert.True(t, active)
	assert.Equal(t, 0, next, "spontaneous firing stays excitable")

	active, next = rule.Transition(0, 0, rng)
	assert.False(t, active)
	assert.Equal(t, 0, next)
}

func TestInitialDrawsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := NewMockBernoulli(ctrl)
	rng.EXPECT().Bernoulli(0.02).Return(true).Times(1)

	assert.True(t, Rule{SpontaneousRate: 0.02}.Initial(rng))
}

func TestGridAdvanceDrawCount(t *testing.T) {
	cfg := Config{Rows: 5, Cols: 5, SpontaneousRate: 0.5, ConnectivityRadius: 1, Threshold: 1, RefractoryPeriod: 2, Steps: 2}

	ctrl := gomock.NewController(t)
	rng := NewMockBernoulli(ctrl)
	rng.EXPECT().Bernoulli(0.5).Return(false).Times(25)
	grid, err := NewGrid(cfg, rng)
	assert.NoError(t, err)
	assert.NoError(t, grid.Stimulate(2, 2))

	prev := make([]uint8, 25)
	assert.NoError(t, grid.Seed(prev))

	// (2,2) is refractory and its four axis neighbours are triggered; the
	// remaining twenty cells draw once each.
	rng.EXPECT().Bernoulli(0.5).Return(false).Times(20)
	next := make([]uint8, 25)
	assert.NoError(t, grid.Advance(prev, next, rng))

	want := map[int]bool{7: true, 11: true, 13: true, 17: true}
	for i, v := range next {
		assert.Equal(t, want[i], v == 1, "cell %v", grid.Shape().Position(i))
	}
}
