package batch

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		want   string
	}{
		{"lyria_20260202_131233.wav", "_fixed", "lyria_20260202_131233_fixed.wav"},
		{"exports/take.wav", "_fixed", "exports/take_fixed.wav"},
		{"take.pcm", "_fixed", "take_fixed.pcm"},
		{"take", "_fixed", "take_fixed.wav"},
		{"a.wav.wav", "_x", "a.wav_x.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputName(tt.name, tt.suffix); got != tt.want {
				t.Errorf("OutputName(%q, %q) = %q; want %q", tt.name, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestPlan_ExplicitSources(t *testing.T) {
	fsys := afero.NewMemMapFs()

	jobs, err := Plan(fsys, PlanOptions{
		Dir:     "exports",
		Sources: []string{"a.wav", " ", "b.wav", "a.wav", "/abs/c.wav"},
		Suffix:  "_fixed",
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	want := []Job{
		{Source: filepath.Join("exports", "a.wav"), Dest: filepath.Join("exports", "a_fixed.wav")},
		{Source: filepath.Join("exports", "b.wav"), Dest: filepath.Join("exports", "b_fixed.wav")},
		{Source: "/abs/c.wav", Dest: "/abs/c_fixed.wav"},
	}
	if len(jobs) != len(want) {
		t.Fatalf("Plan() = %v; want %v", jobs, want)
	}
	for i := range want {
		if jobs[i] != want[i] {
			t.Errorf("jobs[%d] = %+v; want %+v", i, jobs[i], want[i])
		}
	}
}

func TestPlan_DirectoryScan(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, name := range []string{"b.wav", "a.wav", "a_fixed.wav", "notes.txt"} {
		if err := afero.WriteFile(fsys, "/exports/"+name, []byte{0}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := fsys.MkdirAll("/exports/sub.wav", 0o755); err != nil {
		t.Fatal(err)
	}

	jobs, err := Plan(fsys, PlanOptions{Dir: "/exports", Pattern: "*.wav", Suffix: "_fixed"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(jobs) != 2 {
		t.Fatalf("Plan() = %v; want 2 jobs", jobs)
	}
	if jobs[0].Source != "/exports/a.wav" || jobs[1].Source != "/exports/b.wav" {
		t.Errorf("Plan() sources = %q, %q; want sorted a.wav, b.wav", jobs[0].Source, jobs[1].Source)
	}
}

func TestPlan_DefaultPattern(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "/in/x.wav", []byte{0}, 0o644)
	_ = afero.WriteFile(fsys, "/in/y.raw", []byte{0}, 0o644)

	jobs, err := Plan(fsys, PlanOptions{Dir: "/in", Suffix: "_fixed"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].Source != "/in/x.wav" {
		t.Errorf("Plan() = %v; want only /in/x.wav", jobs)
	}
}

func TestPlan_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	t.Run("missing suffix", func(t *testing.T) {
		if _, err := Plan(fsys, PlanOptions{Sources: []string{"a.wav"}}); err == nil {
			t.Error("Plan() = nil; want error for empty suffix")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := Plan(fsys, PlanOptions{Dir: "/nope", Suffix: "_fixed"}); err == nil {
			t.Error("Plan() = nil; want error for missing scan directory")
		}
	})

	t.Run("sources sharing an output", func(t *testing.T) {
		_, err := Plan(fsys, PlanOptions{Dir: "/exports", Sources: []string{"take", "take.wav"}, Suffix: "_fixed"})
		if err == nil || !strings.Contains(err.Error(), "take_fixed.wav") {
			t.Errorf("Plan() error = %v; want collision on take_fixed.wav", err)
		}
	})

	t.Run("bad pattern", func(t *testing.T) {
		if _, err := Plan(fsys, PlanOptions{Dir: "/", Pattern: "[", Suffix: "_fixed"}); err == nil {
			t.Error("Plan() = nil; want error for malformed pattern")
		}
	})
}
