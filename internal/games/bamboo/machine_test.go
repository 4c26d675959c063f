package bamboo

import (
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

func newTestMachine(t *testing.T, profile string) (*Machine, *World, []Command) {
	t.Helper()
	cfg := config.DefaultBambooConfig()
	p, err := ResolveProfile(cfg, profile)
	if err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	w := NewWorld(cfg, p)
	m, cmds := NewMachine(w, p, NewRNG(1))
	return m, w, cmds
}

func kinds(cmds []Command) []CommandKind {
	out := make([]CommandKind, len(cmds))
	for i, c := range cmds {
		out[i] = c.Kind
	}
	return out
}

func TestMachineInitialState(t *testing.T) {
	m, _, cmds := newTestMachine(t, "")
	if m.State() != WaitingForTap() {
		t.Errorf("initial state = %s, want WaitingForTap", m.State())
	}
	if len(cmds) != 1 || cmds[0].Kind != CmdPresentNewSession {
		t.Errorf("entry commands = %v, want [present-new-session]", cmds)
	}
	if !m.AcceptsTap() || m.AcceptsDrag() || m.AcceptsCollisions() {
		t.Error("WaitingForTap should accept taps only")
	}

	var zero State
	if zero.Kind != StateWaitingForTap {
		t.Error("zero State should be WaitingForTap")
	}
}

func TestMachineTransitionTable(t *testing.T) {
	tests := []struct {
		name string
		path []State
		ok   []bool
	}{
		{"tap then win", []State{Playing(), GameOver(true)}, []bool{true, true}},
		{"skip playing", []State{GameOver(false)}, []bool{false}},
		{"self transition", []State{WaitingForTap()}, []bool{false}},
		{"playing twice", []State{Playing(), Playing()}, []bool{true, false}},
		{"game over is terminal", []State{Playing(), GameOver(false), Playing()}, []bool{true, true, false}},
		{"outcome set once", []State{Playing(), GameOver(false), GameOver(true)}, []bool{true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestMachine(t, "")
			for i, next := range tt.path {
				before := m.State()
				cmds, ok := m.Request(next)
				if ok != tt.ok[i] {
					t.Fatalf("Request(%s) from %s = %t, want %t", next, before, ok, tt.ok[i])
				}
				if !ok {
					if cmds != nil {
						t.Errorf("rejected request returned commands %v", cmds)
					}
					if m.State() != before {
						t.Errorf("rejected request changed state to %s", m.State())
					}
				}
			}
		})
	}
}

func TestMachinePlayingEntry(t *testing.T) {
	m, w, _ := newTestMachine(t, "")
	cmds, ok := m.Request(Playing())
	if !ok {
		t.Fatal("WaitingForTap -> Playing rejected")
	}
	want := []CommandKind{CmdTransitionState, CmdApplyImpulse, CmdSpawnParticle}
	got := kinds(cmds)
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want kinds %v", cmds, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %s, want %s", i, got[i], want[i])
		}
	}
	if cmds[1].Entity != w.Ball().ID {
		t.Errorf("impulse applied to %d, want ball %d", cmds[1].Entity, w.Ball().ID)
	}
	if cmds[2].Effect != EffectSnowTrail {
		t.Errorf("particle = %s, want SnowTrail", cmds[2].Effect)
	}
	if !m.AcceptsDrag() || !m.AcceptsCollisions() || m.AcceptsTap() {
		t.Error("Playing should accept drags and collisions, not taps")
	}
}

func TestMachineGameOverEntry(t *testing.T) {
	tests := []struct {
		profile string
		won     bool
		sound   SoundID
	}{
		{config.ProfileEnhanced, true, SoundGameWon},
		{config.ProfileEnhanced, false, SoundGameOver},
		{config.ProfileBasic, true, ""},
	}
	for _, tt := range tests {
		m, _, _ := newTestMachine(t, tt.profile)
		m.Request(Playing())
		cmds, ok := m.Request(GameOver(tt.won))
		if !ok {
			t.Fatalf("Playing -> GameOver rejected")
		}

		var sound SoundID
		var end, damped bool
		for _, c := range cmds {
			switch c.Kind {
			case CmdPlaySound:
				sound = c.Sound
			case CmdShowEndScreen:
				end = c.State.Outcome.Won == tt.won
			case CmdSetDamping:
				damped = c.Damping == 1
			}
		}
		if sound != tt.sound {
			t.Errorf("%s won=%t: sound = %q, want %q", tt.profile, tt.won, sound, tt.sound)
		}
		if !end {
			t.Errorf("%s won=%t: missing end screen", tt.profile, tt.won)
		}
		if !damped {
			t.Errorf("%s won=%t: ball not stopped", tt.profile, tt.won)
		}
		if m.State().Outcome.Won != tt.won {
			t.Errorf("outcome = %t, want %t", m.State().Outcome.Won, tt.won)
		}
	}
}

func TestMachineUpdateKeepsBallMoving(t *testing.T) {
	m, w, _ := newTestMachine(t, "")
	if cmds := m.Update(1.0 / 60); cmds != nil {
		t.Errorf("Update while waiting = %v, want nil", cmds)
	}
	m.Request(Playing())
	ball := w.Ball()
	cfg := config.DefaultBambooConfig().Ball

	// Stalled on both axes
	ball.Velocity = core.V(0, 0)
	if got := kinds(m.Update(1.0 / 60)); len(got) != 2 || got[0] != CmdApplyImpulse || got[1] != CmdApplyImpulse {
		t.Errorf("stalled ball commands = %v, want two impulses", got)
	}

	// Normal speed
	ball.Velocity = core.V(200, 200)
	if cmds := m.Update(1.0 / 60); len(cmds) != 0 {
		t.Errorf("normal speed commands = %v, want none", cmds)
	}

	// Over speed switches damping on once
	ball.Velocity = core.V(cfg.MaxSpeed, cfg.MaxSpeed)
	cmds := m.Update(1.0 / 60)
	if len(cmds) != 1 || cmds[0].Kind != CmdSetDamping || cmds[0].Damping != cfg.OverspeedDamping {
		t.Errorf("overspeed commands = %v, want set-damping(%v)", cmds, cfg.OverspeedDamping)
	}
	if cmds := m.Update(1.0 / 60); len(cmds) != 0 {
		t.Errorf("repeated overspeed commands = %v, want none", cmds)
	}

	// Back to normal switches it off
	ball.Velocity = core.V(100, 100)
	cmds = m.Update(1.0 / 60)
	if len(cmds) != 1 || cmds[0].Damping != 0 {
		t.Errorf("slowdown commands = %v, want set-damping(0)", cmds)
	}
}
