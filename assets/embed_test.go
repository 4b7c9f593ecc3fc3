package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"audio/rocket_fire.wav", "audio/rocket_fire.wav"},
		{"assets/audio/rocket_fire.wav", "audio/rocket_fire.wav"},
		{"/home/dev/bossfight/assets/audio/shovel_swing.wav", "audio/shovel_swing.wav"},
		{"/tmp/robot_spawn.wav", "robot_spawn.wav"},
	}
	for _, tt := range tests {
		if got := cleanAssetPath(tt.in); got != tt.want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmbeddedClips(t *testing.T) {
	for _, name := range []string{
		"audio/shovel_swing.wav",
		"audio/robot_spawn.wav",
		"audio/robot_taunt_1.wav",
		"audio/robot_taunt_2.wav",
		"audio/robot_taunt_3.wav",
		"audio/rocket_fire.wav",
	} {
		b, err := LoadFile(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if len(b) < 44 || string(b[:4]) != "RIFF" {
			t.Fatalf("%s: expected a RIFF header", name)
		}
	}
}
