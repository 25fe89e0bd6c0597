package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
)

func TestBestScoreTracksMaximum(t *testing.T) {
	var best bestScore
	h := best.handler()

	end := func(score int) events.GameEvent {
		return events.GameEvent{
			Type:    events.EventSessionEnd,
			Payload: &events.SessionEndPayload{Result: engine.Result{FinalScore: score}},
		}
	}

	h.HandleEvent(end(-2))
	if !best.ok || best.value != -2 {
		t.Fatalf("best = %+v after first result", best)
	}
	h.HandleEvent(end(3))
	h.HandleEvent(end(1))
	if best.value != 3 {
		t.Errorf("best = %d, want 3", best.value)
	}

	h.HandleEvent(events.GameEvent{Type: events.EventSessionEnd})
	if best.value != 3 {
		t.Errorf("payload-less event changed best to %d", best.value)
	}
}

func TestStartRejectsBadArguments(t *testing.T) {
	useTempLogDir(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-no-such-flag"}},
		{"invalid settings", []string{"-slots", "0"}},
		{"invalid level", []string{"-log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := start(tt.args, &stderr); got != 2 {
				t.Errorf("exit = %d, want 2", got)
			}
			if stderr.Len() == 0 {
				t.Error("expected a diagnostic on stderr")
			}
		})
	}
}

func TestStartRunFailureLogsBeforeExit(t *testing.T) {
	useTempLogDir(t)
	prev := newScreen
	newScreen = func() (tcell.Screen, error) { return nil, errors.New("no terminal") }
	t.Cleanup(func() { newScreen = prev })

	var stderr bytes.Buffer
	if got := start([]string{"-debug", "-db="}, &stderr); got != 1 {
		t.Fatalf("exit = %d, want 1", got)
	}
	if !strings.Contains(stderr.String(), "no terminal") {
		t.Errorf("stderr = %q", stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"exiting"`) {
		t.Errorf("log missing exit record: %s", data)
	}
}
