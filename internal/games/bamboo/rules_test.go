package bamboo

import (
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
)

func newTestWorld(t *testing.T, profile string) (*World, Profile) {
	t.Helper()
	cfg := config.DefaultBambooConfig()
	p, err := ResolveProfile(cfg, profile)
	if err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	return NewWorld(cfg, p), p
}

func TestRulesGatedOnPlaying(t *testing.T) {
	w, p := newTestWorld(t, "")
	rules := NewRules(p)
	block := w.Blocks()[0]
	ev := Classify(w.Ball(), block, block.Pos)

	for _, s := range []State{WaitingForTap(), GameOver(false), GameOver(true)} {
		eff := rules.Resolve(s, ev, w)
		if len(eff.Commands) != 0 || eff.Next != nil {
			t.Errorf("Resolve in %s = %+v, want empty effect", s, eff)
		}
	}
	if w.Count(CategoryBlock) != 16 {
		t.Errorf("blocks = %d, want 16", w.Count(CategoryBlock))
	}
}

func TestRulesTable(t *testing.T) {
	w, p := newTestWorld(t, config.ProfileEnhanced)
	rules := NewRules(p)
	ball := w.Ball()

	tests := []struct {
		name  string
		other *Entity
		cmds  []CommandKind
		next  *State
	}{
		{"border", w.Border(), []CommandKind{CmdPlaySound}, nil},
		{"paddle", w.Paddle(), []CommandKind{CmdPlaySound}, nil},
		{"block", w.Blocks()[0], []CommandKind{CmdPlaySound, CmdSpawnParticle, CmdRemoveEntity}, nil},
		{"bottom", w.Bottom(), nil, &State{Kind: StateGameOver}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := rules.Resolve(Playing(), Classify(tt.other, ball, tt.other.Pos), w)
			got := kinds(eff.Commands)
			if len(got) != len(tt.cmds) {
				t.Fatalf("commands = %v, want kinds %v", eff.Commands, tt.cmds)
			}
			for i := range got {
				if got[i] != tt.cmds[i] {
					t.Errorf("command %d = %s, want %s", i, got[i], tt.cmds[i])
				}
			}
			switch {
			case tt.next == nil && eff.Next != nil:
				t.Errorf("Next = %s, want none", eff.Next)
			case tt.next != nil && (eff.Next == nil || *eff.Next != *tt.next):
				t.Errorf("Next = %v, want %s", eff.Next, tt.next)
			}
		})
	}
}

func TestRulesSelfPairsAndUnknownPairs(t *testing.T) {
	w, p := newTestWorld(t, "")
	rules := NewRules(p)
	blocks := w.Blocks()

	pairs := []CollisionEvent{
		Classify(blocks[0], blocks[1], blocks[0].Pos),
		Classify(w.Paddle(), w.Border(), w.Paddle().Pos),
		Classify(w.Bottom(), blocks[0], w.Bottom().Pos),
	}
	for _, ev := range pairs {
		eff := rules.Resolve(Playing(), ev, w)
		if len(eff.Commands) != 0 || eff.Next != nil {
			t.Errorf("Resolve(%s) = %+v, want empty effect", ev.Pair, eff)
		}
	}
	if w.Count(CategoryBlock) != 16 {
		t.Errorf("blocks = %d, want 16", w.Count(CategoryBlock))
	}
}

func TestRulesMissingBlockIsNoop(t *testing.T) {
	w, p := newTestWorld(t, "")
	rules := NewRules(p)
	block := w.Blocks()[2]
	ev := Classify(w.Ball(), block, block.Pos)

	first := rules.Resolve(Playing(), ev, w)
	if len(first.Commands) == 0 {
		t.Fatal("first contact should destroy the block")
	}
	second := rules.Resolve(Playing(), ev, w)
	if len(second.Commands) != 0 || second.Next != nil {
		t.Errorf("second contact = %+v, want empty effect", second)
	}
}

func TestRulesLastBlockWins(t *testing.T) {
	w, p := newTestWorld(t, config.ProfileBasic)
	rules := NewRules(p)
	blocks := w.Blocks()
	for _, b := range blocks[:len(blocks)-1] {
		w.Remove(b.ID)
	}

	last := blocks[len(blocks)-1]
	eff := rules.Resolve(Playing(), Classify(w.Ball(), last, last.Pos), w)
	if eff.Next == nil || *eff.Next != GameOver(true) {
		t.Fatalf("Next = %v, want GameOver(won)", eff.Next)
	}
	for _, c := range eff.Commands {
		if c.Kind == CmdPlaySound {
			t.Errorf("basic profile emitted %s", c)
		}
	}
	if w.Count(CategoryBlock) != 0 {
		t.Errorf("blocks = %d, want 0", w.Count(CategoryBlock))
	}
}
