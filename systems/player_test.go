package systems

import (
	"testing"

	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
)

func TestPlayerHorizontalIntent(t *testing.T) {
	tests := []struct {
		name       string
		action     cfg.ActionID
		wantSpeedX float64
		wantFacing bool
	}{
		{"idle", cfg.ActionNone, 0, false},
		{"move left", cfg.ActionMoveLeft, -cfg.Player.MoveSpeed, true},
		{"move right", cfg.ActionMoveRight, cfg.Player.MoveSpeed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, player := newRunECS(t)
			if tt.action != cfg.ActionNone {
				holdAction(e, tt.action)
			}

			UpdatePlayer(e)

			body := components.Body.Get(player)
			pd := components.Player.Get(player)
			if body.SpeedX != tt.wantSpeedX {
				t.Fatalf("SpeedX = %v, want %v", body.SpeedX, tt.wantSpeedX)
			}
			if pd.FacingLeft != tt.wantFacing {
				t.Fatalf("FacingLeft = %v, want %v", pd.FacingLeft, tt.wantFacing)
			}
		})
	}
}

func TestPlayerVerticalIntent(t *testing.T) {
	t.Run("free fall", func(t *testing.T) {
		e, _, player := newRunECS(t)
		UpdatePlayer(e)
		if got := components.Body.Get(player).SpeedY; got != cfg.Player.FallSpeed {
			t.Fatalf("SpeedY = %v, want %v", got, cfg.Player.FallSpeed)
		}
	})

	t.Run("slow fall while holding up", func(t *testing.T) {
		e, _, player := newRunECS(t)
		holdAction(e, cfg.ActionSlowFall)
		UpdatePlayer(e)
		if got := components.Body.Get(player).SpeedY; got != cfg.Player.SlowFallSpeed {
			t.Fatalf("SpeedY = %v, want %v", got, cfg.Player.SlowFallSpeed)
		}
	})

	t.Run("parachute overrides slow fall", func(t *testing.T) {
		e, run, player := newRunECS(t)
		run.ParachuteDeployed = true
		holdAction(e, cfg.ActionSlowFall)
		UpdatePlayer(e)
		if got := components.Body.Get(player).SpeedY; got != cfg.Player.ParachuteFallSpeed {
			t.Fatalf("SpeedY = %v, want %v", got, cfg.Player.ParachuteFallSpeed)
		}
	})
}

func TestParachuteToggleIsEdgeTriggered(t *testing.T) {
	e, run, player := newRunECS(t)
	body := components.Body.Get(player)

	// Fresh press deploys and changes the fall speed the same tick
	tapAction(e, cfg.ActionToggleParachute)
	UpdatePlayer(e)
	if !run.ParachuteDeployed {
		t.Fatal("parachute not deployed on key press")
	}
	if body.SpeedY != cfg.Player.ParachuteFallSpeed {
		t.Fatalf("SpeedY = %v on deploy tick, want %v", body.SpeedY, cfg.Player.ParachuteFallSpeed)
	}

	// Holding the key must not toggle again
	holdAction(e, cfg.ActionToggleParachute)
	UpdatePlayer(e)
	if !run.ParachuteDeployed {
		t.Fatal("held key retracted the parachute")
	}

	// Release and press again retracts, restoring free fall
	releaseAll(e)
	UpdatePlayer(e)
	tapAction(e, cfg.ActionToggleParachute)
	UpdatePlayer(e)
	if run.ParachuteDeployed {
		t.Fatal("second press did not retract the parachute")
	}
	if body.SpeedY != cfg.Player.FallSpeed {
		t.Fatalf("SpeedY = %v after retract, want %v", body.SpeedY, cfg.Player.FallSpeed)
	}
}

func TestPlayerIntentGatedAfterGameOver(t *testing.T) {
	e, run, player := newRunECS(t)
	body := components.Body.Get(player)

	EndRun(e, components.OutcomeCrashed, components.CauseGround)

	holdAction(e, cfg.ActionMoveLeft)
	WhilePlaying(UpdatePlayer)(e)

	if body.SpeedX != 0 || body.SpeedY != 0 {
		t.Fatalf("body speeds = (%v, %v) after game over, want (0, 0)", body.SpeedX, body.SpeedY)
	}
	if run.ParachuteDeployed {
		t.Fatal("parachute state changed after game over")
	}
}
