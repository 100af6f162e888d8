package input

import "testing"

func TestTracker_PressRelease(t *testing.T) {
	var tr Tracker

	if !tr.Press(KeyW) {
		t.Fatal("W not tracked")
	}
	tr.Press(KeyW)
	if !tr.Up.Pressed || tr.Up.Downs != 2 {
		t.Errorf("up = %+v, want pressed with 2 downs", tr.Up)
	}

	tr.Release(KeyW)
	if tr.Up.Pressed {
		t.Error("up still pressed after release")
	}
	if tr.Up.Downs != 2 {
		t.Error("release must not touch the edge counter")
	}

	tr.EndFrame()
	if tr.Up.Downs != 0 {
		t.Errorf("downs = %d after EndFrame", tr.Up.Downs)
	}
}

func TestTracker_Untracked(t *testing.T) {
	var tr Tracker
	for _, k := range []Key{KeyNone, KeyEscape} {
		if tr.Press(k) {
			t.Errorf("Press(%v) reported tracked", k)
		}
		if tr.Release(k) {
			t.Errorf("Release(%v) reported tracked", k)
		}
	}
}

func TestTracker_EndFrameResetsAll(t *testing.T) {
	var tr Tracker
	for _, k := range []Key{KeyA, KeyD, KeyW, KeyS, KeyR} {
		tr.Press(k)
	}
	tr.EndFrame()
	for name, b := range map[string]Button{"left": tr.Left, "right": tr.Right, "up": tr.Up, "down": tr.Down, "restart": tr.Restart} {
		if b.Downs != 0 {
			t.Errorf("%s downs = %d", name, b.Downs)
		}
		if !b.Pressed {
			t.Errorf("%s lost pressed state", name)
		}
	}
}

func TestTracker_Move(t *testing.T) {
	tests := []struct {
		name   string
		keys   []Key
		wx, wy float32
	}{
		{"idle", nil, 0, 0},
		{"forward", []Key{KeyW}, 0, 1},
		{"back", []Key{KeyS}, 0, -1},
		{"cancel", []Key{KeyW, KeyS}, 0, 0},
		{"left", []Key{KeyA}, -1, 0},
		{"right", []Key{KeyD}, 1, 0},
		{"diagonal", []Key{KeyD, KeyW}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracker
			for _, k := range tt.keys {
				tr.Press(k)
			}
			x, y := tr.Move()
			if x != tt.wx || y != tt.wy {
				t.Errorf("Move() = (%v, %v), want (%v, %v)", x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestTracker_Capture(t *testing.T) {
	var tr Tracker
	if !tr.Capture() {
		t.Error("first capture should report a change")
	}
	if tr.Capture() {
		t.Error("second capture should report no change")
	}
	tr.Uncapture()
	if tr.Captured() {
		t.Error("still captured")
	}
}

func TestParseKey(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyA, KeyD, KeyW, KeyS, KeyR} {
		if got := ParseKey(k.String()); got != k {
			t.Errorf("ParseKey(%q) = %v", k.String(), got)
		}
	}
	if ParseKey("q") != KeyNone {
		t.Error("unknown key should map to KeyNone")
	}
}

func TestTracker_ManyPressesInFrame(t *testing.T) {
	var tr Tracker
	for i := 0; i < 300; i++ {
		tr.Press(KeyR)
	}
	if tr.Restart.Downs != 300 {
		t.Errorf("downs = %d, want 300", tr.Restart.Downs)
	}
}
