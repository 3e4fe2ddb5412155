package configloader

import (
	"testing"

	"github.com/yaklabco/jwslint/pkg/config"
)

func ptr[T any](v T) *T { return &v }

func TestMerge(t *testing.T) {
	t.Parallel()

	base := &config.Config{
		SeverityDefault: "info",
		Extensions:      []string{".java"},
		Ignore:          []string{"build/**"},
		Rules: map[string]config.RuleConfig{
			"JW001": {Enabled: ptr(false), Options: map[string]any{"annotation": false}},
		},
	}
	override := &config.Config{
		IncludeVendored: true,
		Ignore:          []string{"gen/**"},
		Rules: map[string]config.RuleConfig{
			"JW001": {Severity: ptr("error"), Options: map[string]any{"type_cast": true}},
			"JW002": {Enabled: ptr(true)},
		},
	}

	got := merge(base, override)

	if got.SeverityDefault != "info" {
		t.Errorf("SeverityDefault = %q, want info (unset override keeps base)", got.SeverityDefault)
	}
	if !got.IncludeVendored {
		t.Error("IncludeVendored should propagate")
	}
	if len(got.Ignore) != 1 || got.Ignore[0] != "gen/**" {
		t.Errorf("Ignore = %v, want override slice", got.Ignore)
	}
	if len(got.Extensions) != 1 {
		t.Errorf("Extensions = %v, want base slice", got.Extensions)
	}

	jw001 := got.Rules["JW001"]
	if jw001.Enabled == nil || *jw001.Enabled {
		t.Error("JW001.Enabled should keep base value")
	}
	if jw001.Severity == nil || *jw001.Severity != "error" {
		t.Error("JW001.Severity should come from override")
	}
	if jw001.Options["annotation"] != false || jw001.Options["type_cast"] != true {
		t.Errorf("JW001.Options = %v, want deep merge", jw001.Options)
	}
	if _, ok := got.Rules["JW002"]; !ok {
		t.Error("JW002 should be added")
	}

	if len(base.Rules["JW001"].Options) != 1 {
		t.Error("merge must not mutate base options")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	if merge(nil, cfg) != cfg {
		t.Error("merge(nil, cfg) should return cfg")
	}
	if merge(cfg, nil) != cfg {
		t.Error("merge(cfg, nil) should return cfg")
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	if MergeAll() != nil {
		t.Error("MergeAll() should be nil")
	}

	got := MergeAll(
		&config.Config{SeverityDefault: "info"},
		&config.Config{Jobs: 2},
		&config.Config{SeverityDefault: "error"},
	)
	if got.SeverityDefault != "error" || got.Jobs != 2 {
		t.Errorf("MergeAll() = %+v", got)
	}
}
