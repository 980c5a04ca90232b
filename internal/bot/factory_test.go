package bot

import (
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    BotLevel
		wantErr bool
	}{
		{in: "first", want: BotLevelFirst},
		{in: "Random", want: BotLevelRandom},
		{in: " greedy ", want: BotLevelGreedy},
		{in: "SMART", want: BotLevelSmart},
		{in: "god", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) expected error", tt.in)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Fatalf("String() = %q", got.String())
			}
		})
	}
}

func TestNewBrain(t *testing.T) {
	tests := []struct {
		level BotLevel
		check func(Brain) bool
	}{
		{BotLevelFirst, func(b Brain) bool { _, ok := b.(*StandardBot); return ok }},
		{BotLevelRandom, func(b Brain) bool { _, ok := b.(*RandomBot); return ok }},
		{BotLevelGreedy, func(b Brain) bool { _, ok := b.(*GoodBot); return ok }},
		{BotLevelSmart, func(b Brain) bool { _, ok := b.(*SmartBot); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if b := NewBrain(tt.level, "x", nil); !tt.check(b) {
				t.Fatalf("NewBrain(%v) = %T", tt.level, b)
			}
		})
	}
}

func TestIdentities(t *testing.T) {
	names := DefaultNames(4)
	if len(names) != 4 || names[0] != "Ruby" {
		t.Fatalf("DefaultNames(4) = %v", names)
	}
	if !IsBot("Jade") || IsBot("jade") {
		t.Fatalf("IsBot should match pool names exactly")
	}
	if got := GetBotIdentity(6).Name; got != "Bot 7" {
		t.Fatalf("GetBotIdentity(6) = %q", got)
	}
}
