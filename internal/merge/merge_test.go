package merge

import (
	"slices"
	"testing"

	"github.com/eugenenazirov/envargs/internal/envmap"
)

var testBindings = []envmap.Binding{
	{Vars: []string{"SERVER"}, Aliases: []string{"--server", "-s"}},
	{Vars: []string{"SLEEP"}, Aliases: []string{"--sleep", "-l"}},
	{Vars: []string{"RUN_LOOP"}, Aliases: []string{"--run-loop", "-r"}},
	{Vars: []string{"FILES"}, Aliases: []string{"--files", "-f"}, Kind: envmap.List},
	{Vars: []string{"TELEMETRY_NAME", "TELEMETRY_KEY"}, Aliases: []string{"--telemetry"}, Kind: envmap.Pair},
}

func TestMerge(t *testing.T) {
	t.Parallel()

	env := envmap.FromMap(map[string]string{
		"SERVER":         "envserver",
		"SLEEP":          "250",
		"RUN_LOOP":       "true",
		"FILES":          "a.json b.json",
		"TELEMETRY_NAME": "app",
		"TELEMETRY_KEY":  "key",
	})

	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "NoArgs",
			raw:  nil,
			want: []string{
				"--server", "envserver",
				"--sleep", "250",
				"--run-loop", "true",
				"--files", "a.json", "b.json",
				"--telemetry", "app", "key",
			},
		},
		{
			name: "ExplicitLongAliasWins",
			raw:  []string{"--server", "cli"},
			want: []string{
				"--server", "cli",
				"--sleep", "250",
				"--run-loop", "true",
				"--files", "a.json", "b.json",
				"--telemetry", "app", "key",
			},
		},
		{
			name: "ExplicitShortAliasWins",
			raw:  []string{"-s", "cli", "-f", "x.json", "-l", "0", "-r", "false", "--telemetry", "n", "k"},
			want: []string{"-s", "cli", "-f", "x.json", "-l", "0", "-r", "false", "--telemetry", "n", "k"},
		},
		{
			name: "EqualsFormCountsAsPresent",
			raw:  []string{"--server=cli", "--sleep=1", "--run-loop", "--files", "--telemetry=x"},
			want: []string{"--server=cli", "--sleep=1", "--run-loop", "--files", "--telemetry=x"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Merge(tc.raw, testBindings, env)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMergeDoesNotModifyRaw(t *testing.T) {
	t.Parallel()

	raw := make([]string, 1, 16)
	raw[0] = "--dry-run"
	env := envmap.FromMap(map[string]string{"SERVER": "x"})

	got := Merge(raw, testBindings, env)
	if len(raw) != 1 || raw[:cap(raw)][1] != "" {
		t.Fatalf("raw args were modified: %q", raw[:cap(raw)])
	}
	if !slices.Equal(got, []string{"--dry-run", "--server", "x"}) {
		t.Fatalf("unexpected merge result %q", got)
	}
}

func TestMergeDeterministic(t *testing.T) {
	t.Parallel()

	env := envmap.FromMap(map[string]string{
		"TELEMETRY_KEY": "k",
		"FILES":         "1 2 3",
		"SLEEP":         "9",
		"SERVER":        "s",
	})
	raw := []string{"-r"}

	first := Merge(raw, testBindings, env)
	for i := 0; i < 50; i++ {
		if again := Merge(raw, testBindings, env); !slices.Equal(first, again) {
			t.Fatalf("merge is not deterministic: %q vs %q", first, again)
		}
	}
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	env := envmap.FromMap(map[string]string{
		"SERVER":         "s",
		"RUN_LOOP":       "true",
		"FILES":          "a b",
		"TELEMETRY_NAME": "n",
	})

	once, appended := MergeCount([]string{"--sleep", "3"}, testBindings, env)
	if appended != 4 {
		t.Fatalf("expected 4 appended bindings, got %d", appended)
	}

	twice, appended := MergeCount(once, testBindings, env)
	if appended != 0 {
		t.Fatalf("expected no appends on second merge, got %d", appended)
	}
	if !slices.Equal(once, twice) {
		t.Fatalf("second merge changed args: %q vs %q", once, twice)
	}
}

func TestPresent(t *testing.T) {
	t.Parallel()

	args := []string{"--servers", "x", "-sx", "--timeout=5"}
	if Present(args, "--server", "-s") {
		t.Fatalf("prefix matches must not count as present")
	}
	if !Present(args, "--timeout", "-t") {
		t.Fatalf("expected --timeout=5 to count as present")
	}
	if Present(args) {
		t.Fatalf("no aliases can never be present")
	}
}
