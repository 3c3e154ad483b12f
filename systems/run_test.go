package systems

import (
	"strings"
	"testing"

	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newRunECS builds a minimal headless scene: run singleton plus a player.
// No level entity, so systems fall back to the config world constants.
func newRunECS(t *testing.T) (*ecs.ECS, *components.RunData, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRun(e)
	player := factory.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)
	run := CurrentRun(e)
	if run == nil {
		t.Fatal("run singleton missing after CreateRun")
	}
	return e, run, player
}

// holdAction marks an action as held across frames (Pressed, not JustPressed)
func holdAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous[id] = true
	input.Current[id] = true
}

// tapAction marks an action as freshly pressed this frame
func tapAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous[id] = false
	input.Current[id] = true
}

// releaseAll clears all input state
func releaseAll(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
}

func TestScoreAccumulatesWhileAirborne(t *testing.T) {
	e, run, _ := newRunECS(t)

	interval := cfg.TicksFor(cfg.Run.ScoreIntervalMS)
	for i := 0; i < interval; i++ {
		UpdateRun(e)
	}
	if run.Score != 1 {
		t.Fatalf("after %d ticks score = %d, want 1", interval, run.Score)
	}

	for i := 0; i < interval*3; i++ {
		UpdateRun(e)
	}
	if run.Score != 4 {
		t.Fatalf("after %d more ticks score = %d, want 4", interval*3, run.Score)
	}
}

func TestScoreStopsAtGroundThreshold(t *testing.T) {
	e, run, player := newRunECS(t)

	obj := components.Object.Get(player)
	obj.Y = cfg.World.GroundY

	for i := 0; i < cfg.TicksFor(cfg.Run.ScoreIntervalMS)*5; i++ {
		UpdateRun(e)
	}
	if run.Score != 0 {
		t.Fatalf("score = %d at ground threshold, want 0", run.Score)
	}
}

func TestScoreStopsAfterRunEnds(t *testing.T) {
	e, run, _ := newRunECS(t)

	EndRun(e, components.OutcomeCrashed, components.CauseObstacle)
	for i := 0; i < cfg.TicksFor(cfg.Run.ScoreIntervalMS)*2; i++ {
		UpdateRun(e)
	}
	if run.Score != 0 {
		t.Fatalf("score = %d after game over, want 0", run.Score)
	}
}

func TestRestartKeySetsFlag(t *testing.T) {
	e, run, _ := newRunECS(t)

	UpdateRun(e)
	if run.RestartRequested {
		t.Fatal("RestartRequested set without input")
	}

	holdAction(e, cfg.ActionRestart)
	UpdateRun(e)
	if !run.RestartRequested {
		t.Fatal("RestartRequested not set while restart key held")
	}
}

func TestRestartKeyWorksAfterGameOver(t *testing.T) {
	e, run, _ := newRunECS(t)

	EndRun(e, components.OutcomeCrashed, components.CauseGround)
	holdAction(e, cfg.ActionRestart)
	UpdateRun(e)
	if !run.RestartRequested {
		t.Fatal("restart key ignored after game over")
	}
}

func TestEndRunFreezesBodiesAndIsIdempotent(t *testing.T) {
	e, run, player := newRunECS(t)
	body := components.Body.Get(player)
	body.SpeedX = 120
	body.SpeedY = 200

	EndRun(e, components.OutcomeCrashed, components.CauseObstacle)

	if !run.GameOver || run.Outcome != components.OutcomeCrashed || run.Cause != components.CauseObstacle {
		t.Fatalf("run state = %+v, want crashed on obstacle", run)
	}
	if body.SpeedX != 0 || body.SpeedY != 0 {
		t.Fatalf("body speeds = (%v, %v) after EndRun, want (0, 0)", body.SpeedX, body.SpeedY)
	}
	if _, ok := components.Banner.First(e.World); !ok {
		t.Fatal("banner entity not created by EndRun")
	}

	// A second terminal transition must not overwrite the first
	EndRun(e, components.OutcomeLanded, components.CauseNone)
	if run.Outcome != components.OutcomeCrashed {
		t.Fatalf("outcome changed to %v on second EndRun", run.Outcome)
	}
}

func TestEndRunFlashesPlayerOnCrash(t *testing.T) {
	e, _, player := newRunECS(t)

	EndRun(e, components.OutcomeCrashed, components.CauseObstacle)

	flash := components.Flash.Get(player)
	if flash.Duration != cfg.Player.FlashFrames {
		t.Fatalf("flash duration = %v, want %v", flash.Duration, cfg.Player.FlashFrames)
	}
	if flash.R != 1 || flash.G >= 1 {
		t.Fatalf("flash tint = (%v, %v, %v), want a red tint", flash.R, flash.G, flash.B)
	}
}

func TestEndRunDoesNotFlashOnLanding(t *testing.T) {
	e, _, player := newRunECS(t)

	EndRun(e, components.OutcomeLanded, components.CauseNone)

	flash := components.Flash.Get(player)
	if flash.Duration != 0 {
		t.Fatalf("flash duration = %v after a safe landing, want 0", flash.Duration)
	}
}

func TestBannerTextPerOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome components.Outcome
		cause   components.CrashCause
		score   int
		want    string
	}{
		{"obstacle crash", components.OutcomeCrashed, components.CauseObstacle, 42, "Game Over!"},
		{"ground crash", components.OutcomeCrashed, components.CauseGround, 42, "Crash Landing!"},
		{"safe landing", components.OutcomeLanded, components.CauseNone, 42, "Landed Safely!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &components.RunData{
				GameOver: true,
				Outcome:  tt.outcome,
				Cause:    tt.cause,
				Score:    tt.score,
			}
			got := run.Banner()
			if !strings.HasPrefix(got, tt.want) {
				t.Fatalf("banner = %q, want prefix %q", got, tt.want)
			}
			if tt.cause != components.CauseGround && !strings.Contains(got, "42") {
				t.Fatalf("banner %q does not include the final score", got)
			}
		})
	}
}

func TestBannerEmptyWhilePlaying(t *testing.T) {
	run := &components.RunData{Score: 7}
	if got := run.Banner(); got != "" {
		t.Fatalf("banner = %q during a live run, want empty", got)
	}
}

func TestWhilePlayingGatesSystems(t *testing.T) {
	e, run, _ := newRunECS(t)

	calls := 0
	sys := WhilePlaying(func(*ecs.ECS) { calls++ })

	sys(e)
	if calls != 1 {
		t.Fatalf("wrapped system ran %d times during live run, want 1", calls)
	}

	run.GameOver = true
	sys(e)
	if calls != 1 {
		t.Fatalf("wrapped system ran after game over")
	}
}
