package rules

import (
	"testing"
)

func TestPacks(t *testing.T) {
	packs := Packs()

	if len(packs) != 3 {
		t.Errorf("got %d packs, want 3", len(packs))
	}

	for _, pack := range packs {
		if pack.Name == "" {
			t.Error("pack has empty name")
		}
		if pack.Description == "" {
			t.Errorf("pack %q has empty description", pack.Name)
		}
		if len(pack.Rules) == 0 {
			t.Errorf("pack %q has no rules", pack.Name)
		}

		for ruleID, cfg := range pack.Rules {
			if cfg.Enabled == nil {
				t.Errorf("pack %q rule %q has nil Enabled", pack.Name, ruleID)
			}
			if cfg.Severity == nil {
				t.Errorf("pack %q rule %q has nil Severity", pack.Name, ruleID)
			}
			if ruleID != "JW001" && ruleID != "JW002" {
				t.Errorf("pack %q names unknown rule %q", pack.Name, ruleID)
			}
		}
	}
}

func TestPackByName(t *testing.T) {
	tests := []struct {
		name  string
		want  bool
		rules int
	}{
		{"default", true, 2},
		{"strict", true, 2},
		{"relaxed", true, 1},
		{"nonexistent", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := PackByName(tt.name)
			if tt.want {
				if pack == nil {
					t.Errorf("PackByName(%q) returned nil, want pack", tt.name)
					return
				}
				if len(pack.Rules) != tt.rules {
					t.Errorf("pack %q has %d rules, want %d", tt.name, len(pack.Rules), tt.rules)
				}
			} else if pack != nil {
				t.Errorf("PackByName(%q) returned pack, want nil", tt.name)
			}
		})
	}
}

func TestPackNames(t *testing.T) {
	names := PackNames()

	expected := []string{"default", "strict", "relaxed"}
	if len(names) != len(expected) {
		t.Fatalf("got %d names, want %d", len(names), len(expected))
	}

	for i, name := range expected {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestStrictPack(t *testing.T) {
	pack := StrictPack()

	for ruleID, cfg := range pack.Rules {
		if *cfg.Severity != "error" {
			t.Errorf("strict rule %q has severity %q, want error", ruleID, *cfg.Severity)
		}
		if cfg.Options[OptAllowLineBreaks] != false {
			t.Errorf("strict rule %q allows line breaks", ruleID)
		}
	}

	after := pack.Rules["JW001"].Options
	for _, key := range []string{"method_reference", "synchronized_statement", "type_cast"} {
		if after[key] != true {
			t.Errorf("strict JW001 option %q = %v, want true", key, after[key])
		}
	}
}

func TestRelaxedPack(t *testing.T) {
	opts := RelaxedPack().Rules["JW002"].Options

	want := map[string]bool{
		"comma":             true,
		"semicolon":         true,
		"ellipsis":          false,
		"labeled_statement": false,
		"postfix_increment": false,
	}
	for key, val := range want {
		if opts[key] != val {
			t.Errorf("relaxed option %q = %v, want %v", key, opts[key], val)
		}
	}
}
