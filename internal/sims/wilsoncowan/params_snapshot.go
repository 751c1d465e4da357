package wilsoncowan

import "wilson-ca/internal/core"

// Parameters describes the live medium for the viewer's status bar.
func (m *Medium) Parameters() core.ParameterSnapshot {
	snap := configSnapshot(m.cfg)
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			core.IntParam("step", "Step", m.gen),
			core.IntParam("active", "Active", core.ViewByteGrid(m.cfg.Cols, m.cfg.Rows, m.cur).Count()),
		},
	})
	return snap
}

// Parameters describes the replay position.
func (r *Replay) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Replay",
		Params: []core.Parameter{
			core.IntParam("step", "Step", r.t),
			core.IntParam("steps", "Steps", r.hist.Len()),
			core.IntParam("active", "Active", r.hist.ActiveCount(r.t)),
		},
	}}}
}

func configSnapshot(c Config) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", c.Rows),
				core.IntParam("cols", "Cols", c.Cols),
				core.FloatParam("radius", "Radius", c.ConnectivityRadius),
				core.Int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				core.FloatParam("rate", "Spontaneous rate", c.SpontaneousRate),
				core.IntParam("threshold", "Threshold", c.Threshold),
				core.IntParam("refractory", "Refractory", c.RefractoryPeriod),
			},
		},
	}}
}
