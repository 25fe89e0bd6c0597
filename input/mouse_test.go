package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMouseAdapterTransitions(t *testing.T) {
	m := NewMouseAdapter()

	steps := []struct {
		name    string
		x, y    int
		buttons tcell.ButtonMask
		ok      bool
		phase   Phase
	}{
		{"hover ignored", 1, 1, tcell.ButtonNone, false, 0},
		{"press", 5, 4, tcell.Button1, true, PhaseDown},
		{"same cell ignored", 5, 4, tcell.Button1, false, 0},
		{"drag", 7, 6, tcell.Button1, true, PhaseMove},
		{"release", 8, 6, tcell.ButtonNone, true, PhaseUp},
		{"motion after release ignored", 9, 6, tcell.ButtonNone, false, 0},
		{"secondary button ignored", 9, 6, tcell.Button2, false, 0},
	}

	for _, st := range steps {
		ev := tcell.NewEventMouse(st.x, st.y, st.buttons, tcell.ModNone)
		got, ok := m.Translate(ev)
		if ok != st.ok {
			t.Fatalf("%s: ok = %v, want %v", st.name, ok, st.ok)
		}
		if !ok {
			continue
		}
		if got.Phase != st.phase || got.X != float64(st.x) || got.Y != float64(st.y) || got.ID != MousePointerID {
			t.Errorf("%s: got %+v", st.name, got)
		}
	}
}

func TestMouseAdapterSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	screen.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(3, 2, tcell.ButtonNone, tcell.ModNone)

	m := NewMouseAdapter()
	var phases []Phase
	for len(phases) < 2 {
		ev := screen.PollEvent()
		if me, ok := ev.(*tcell.EventMouse); ok {
			if pe, ok := m.Translate(me); ok {
				phases = append(phases, pe.Phase)
			}
		}
	}
	if phases[0] != PhaseDown || phases[1] != PhaseUp {
		t.Errorf("phases = %v, want [down up]", phases)
	}
}
