package combat

import "testing"

func TestStatBlockClone(t *testing.T) {
	original := NewStatBlock(10, 3)
	clone := original.Clone()

	if clone != original {
		t.Errorf("Clone() = %+v, want %+v", clone, original)
	}

	clone.Health = 1
	if original.Health != 10 {
		t.Errorf("Modifying clone changed original health to %d", original.Health)
	}
}

func TestStatBlockArithmetic(t *testing.T) {
	tests := []struct {
		a, b StatBlock
	}{
		{NewStatBlock(10, 3), NewStatBlock(4, 1)},
		{NewStatBlock(0, 0), NewStatBlock(5, 5)},
		{NewStatBlock(-3, 2), NewStatBlock(7, -1)},
	}

	for _, tt := range tests {
		if got := tt.a.Sub(tt.a.Sub(tt.b)); got != tt.b {
			t.Errorf("%+v - (%+v - %+v) = %+v, want %+v", tt.a, tt.a, tt.b, got, tt.b)
		}
		if got := tt.a.Add(tt.b).Sub(tt.b); got != tt.a {
			t.Errorf("(%+v + %+v) - %+v = %+v, want %+v", tt.a, tt.b, tt.b, got, tt.a)
		}
	}
}

func TestStatBlockIsDefeated(t *testing.T) {
	tests := []struct {
		health   int
		expected bool
	}{
		{5, false},
		{1, false},
		{0, true},
		{-4, true},
	}

	for _, tt := range tests {
		if got := NewStatBlock(tt.health, 1).IsDefeated(); got != tt.expected {
			t.Errorf("StatBlock{Health: %d}.IsDefeated() = %v, want %v", tt.health, got, tt.expected)
		}
	}
}

func TestBasicAttackPerform(t *testing.T) {
	user := NewStatBlock(10, 4)
	target := NewStatBlock(3, 2)

	result := BasicAttack{}.Perform(user, target)

	// 3 - 4 = -1, no floor at zero
	if result.Health != -1 {
		t.Errorf("Expected health -1, got %d", result.Health)
	}
	if result.Damage != 2 {
		t.Errorf("Expected target damage unchanged at 2, got %d", result.Damage)
	}
	if target.Health != 3 || user.Health != 10 {
		t.Error("Perform should not mutate its inputs")
	}
}

func TestLookupAction(t *testing.T) {
	action, err := LookupAction(ActionBasicAttack)
	if err != nil {
		t.Fatalf("LookupAction(%q) failed: %v", ActionBasicAttack, err)
	}
	if action.ID() != ActionBasicAttack {
		t.Errorf("Expected ID %q, got %q", ActionBasicAttack, action.ID())
	}

	if action, err := LookupAction(""); err != nil || action == nil {
		t.Errorf("LookupAction(\"\") should default to basic attack, got %v, %v", action, err)
	}

	if _, err := LookupAction("fireball"); err == nil {
		t.Error("LookupAction(\"fireball\") should fail")
	}
}
