package rule

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Declaration || !cfg.Assignment || !cfg.Return || !cfg.Arrow {
		t.Errorf("declaration, assignment, return, and arrow must default on: %+v", cfg)
	}
	if cfg.Condition || cfg.Logical || cfg.Prop {
		t.Errorf("condition, logical, and prop must default off: %+v", cfg)
	}
}

func TestMergeNilOverridesKeepDefaults(t *testing.T) {
	got := Merge(DefaultConfig(), Overrides{})
	if got != DefaultConfig() {
		t.Errorf("empty overrides changed the config: %+v", got)
	}
}

func TestMergeExplicitFalseWins(t *testing.T) {
	off := false
	got := Merge(DefaultConfig(), Overrides{Return: &off})
	if got.Return {
		t.Error("explicit false override must disable the context")
	}
	if !got.Declaration {
		t.Error("unrelated contexts must keep their defaults")
	}
}

func TestMergeExplicitTrueWins(t *testing.T) {
	on := true
	got := Merge(Config{}, Overrides{Prop: &on, Logical: &on})
	if !got.Prop || !got.Logical {
		t.Errorf("explicit true overrides must enable contexts: %+v", got)
	}
	if got.Declaration {
		t.Error("unset overrides must not enable anything")
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	off := false
	base := DefaultConfig()
	Merge(base, Overrides{Declaration: &off})
	if !base.Declaration {
		t.Error("Merge must not mutate its input")
	}
}
