package components

import (
	"fmt"

	cfg "github.com/automoto/parafall/config"
	"github.com/yohamta/donburi"
)

// Outcome is the terminal classification of a finished run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCrashed
	OutcomeLanded
)

// CrashCause distinguishes the two crash variants. They share the same
// state-machine shape and differ only in the banner shown.
type CrashCause int

const (
	CauseNone CrashCause = iota
	CauseObstacle
	CauseGround
)

// RunData is the state of the active run. Singleton: one entity per scene
// ECS, created on run start and discarded wholesale on restart, so the
// tick-counting timers it owns can never leak into the next run.
type RunData struct {
	Score             int
	GameOver          bool
	Outcome           Outcome
	Cause             CrashCause
	ParachuteDeployed bool

	// Ticks remaining until the next spawn / reclaim check / score increment
	SpawnTimer   int
	ReclaimTimer int
	ScoreTimer   int

	// Set by the run system; the scene reacts after the ECS update
	RestartRequested bool
	BackToMenu       bool
}

var Run = donburi.NewComponentType[RunData]()

// Banner returns the end-of-run banner text, or "" while the run is live.
func (r *RunData) Banner() string {
	if !r.GameOver {
		return ""
	}
	switch {
	case r.Outcome == OutcomeLanded:
		return fmt.Sprintf(cfg.Run.BannerLanded, r.Score)
	case r.Cause == CauseGround:
		return cfg.Run.BannerGround
	default:
		return fmt.Sprintf(cfg.Run.BannerObstacle, r.Score)
	}
}
