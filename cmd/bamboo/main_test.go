package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/games/bamboo"
)

func TestNewGameProfiles(t *testing.T) {
	tests := []struct {
		profile string
		wantID  string
	}{
		{"basic", bamboo.GameIDBasic},
		{"enhanced", bamboo.GameID},
		{"", bamboo.GameID},
	}
	for _, tt := range tests {
		if got := newGame(tt.profile).ID(); got != tt.wantID {
			t.Errorf("newGame(%q).ID() = %q, want %q", tt.profile, got, tt.wantID)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestListAndProfilesCommands(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)
	for _, id := range []string{bamboo.GameID, bamboo.GameIDBasic} {
		if !strings.Contains(out.String(), id) {
			t.Errorf("list output missing %q:\n%s", id, out.String())
		}
	}

	out.Reset()
	profilesCmd.SetOut(&out)
	if err := runProfiles(profilesCmd, nil); err != nil {
		t.Fatalf("profiles: %v", err)
	}
	if !strings.Contains(out.String(), "* enhanced") {
		t.Errorf("default profile not marked:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "basic") {
		t.Errorf("basic profile missing:\n%s", out.String())
	}
}
