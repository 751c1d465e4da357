//go:build !ebiten

package ui

import "wilson-ca/internal/core"

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus returns a stub status bar.
func NewStatus(core.Sim) *Status { return &Status{} }

// Update is a no-op in the headless build.
func (s *Status) Update(bool) {}

// Draw is a no-op in the headless build.
func (s *Status) Draw(any) {}
