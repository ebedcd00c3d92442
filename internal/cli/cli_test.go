package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtree/internal/config"
	"github.com/matzehuels/permtree/pkg/bench"
	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/observability"
)

// isolate points config and cache lookups at fresh temporary directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	prev := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = prev })
}

// execute runs the root command with args and returns what it wrote to its
// output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEnumerate(t *testing.T) {
	isolate(t)

	out, err := execute(t, "enumerate", "cab")
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	want := "abc\nacb\nbac\nbca\ncab\ncba\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestEnumerateLimitRanks(t *testing.T) {
	isolate(t)

	out, err := execute(t, "enumerate", "abcd", "--limit", "2", "--ranks")
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if want := "1 abcd\n2 abdc\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestEnumerateEmptyAlphabet(t *testing.T) {
	isolate(t)

	out, err := execute(t, "enumerate", "")
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if out != "" {
		t.Errorf("empty alphabet printed %q, want nothing", out)
	}
}

func TestEnumerateJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "enumerate", "ba", "--format", "json")
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	var got enumeration
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if got.Alphabet != "ab" || got.Total != 2 || len(got.Permutations) != 2 || got.Permutations[1] != "ba" {
		t.Errorf("got %+v", got)
	}
}

func TestEnumerateYAML(t *testing.T) {
	isolate(t)

	out, err := execute(t, "enumerate", "abc", "--format", "yaml", "--limit", "1")
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	for _, want := range []string{"alphabet: abc", "total: 6", "- abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestLookup(t *testing.T) {
	isolate(t)

	for _, method := range []string{methodBoth, methodEnumeration, methodDirect} {
		out, err := execute(t, "lookup", "abc", "4", "--method", method)
		if err != nil {
			t.Fatalf("lookup --method %s: %v", method, err)
		}
		if out != "bca\n" {
			t.Errorf("lookup --method %s = %q, want bca", method, out)
		}
	}
}

func TestLookupDirectLargeAlphabet(t *testing.T) {
	isolate(t)

	out, err := execute(t, "lookup", "abcdefghijklmnopqrst", "2432902008176640000", "--method", "direct")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if out != "tsrqponmlkjihgfedcba\n" {
		t.Errorf("output = %q", out)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"rank past end", []string{"lookup", "abc", "7"}, errors.ErrCodeRankOutOfRange},
		{"rank zero", []string{"lookup", "abc", "0", "-m", "direct"}, errors.ErrCodeRankOutOfRange},
		{"empty alphabet", []string{"lookup", "", "1"}, errors.ErrCodeRankOutOfRange},
		{"bad rank", []string{"lookup", "abc", "x"}, errors.ErrCodeInvalidRank},
		{"bad method", []string{"lookup", "abc", "1", "-m", "guess"}, errors.ErrCodeInvalidFormat},
		{"tree too large", []string{"lookup", "abcdefghijk", "1"}, errors.ErrCodeInvalidAlphabet},
		{"direct too large", []string{"lookup", "abcdefghijklmnopqrstu", "1", "-m", "direct"}, errors.ErrCodeInvalidAlphabet},
		{"enumerate too large", []string{"enumerate", "abcdefghijk"}, errors.ErrCodeInvalidAlphabet},
		{"enumerate bad format", []string{"enumerate", "abc", "-f", "xml"}, errors.ErrCodeInvalidFormat},
		{"enumerate negative limit", []string{"enumerate", "abc", "-n", "-1"}, errors.ErrCodeInvalidInput},
		{"rank foreign", []string{"rank", "abc", "abd"}, errors.ErrCodeNotFound},
		{"factorial not a number", []string{"factorial", "x"}, errors.ErrCodeInvalidInput},
		{"tree bad format", []string{"tree", "abc", "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"bench bad format", []string{"bench", "-f", "xml"}, errors.ErrCodeInvalidFormat},
		{"bench too large", []string{"bench", "--max", "11", "--no-cache"}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRank(t *testing.T) {
	isolate(t)

	out, err := execute(t, "rank", "cba", "bca")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if out != "4\n" {
		t.Errorf("rank = %q, want 4", out)
	}
}

func TestFactorial(t *testing.T) {
	isolate(t)

	tests := map[string]string{
		"0":  "1\n",
		"5":  "120\n",
		"20": "2432902008176640000\n",
		"21": "-1\n",
		"-2": "0\n",
	}
	for n, want := range tests {
		out, err := execute(t, "factorial", "--", n)
		if err != nil {
			t.Fatalf("factorial %s: %v", n, err)
		}
		if out != want {
			t.Errorf("factorial %s = %q, want %q", n, out, want)
		}
	}
}

func TestTreeDOT(t *testing.T) {
	isolate(t)

	out, err := execute(t, "tree", "ab")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.HasPrefix(out, "digraph PermTree {") {
		t.Errorf("output does not start with the digraph header:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "tree.dot")
	if _, err := execute(t, "tree", "ab", "-o", path); err != nil {
		t.Fatalf("tree -o: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != out {
		t.Error("file output differs from stdout output")
	}
}

func TestBenchStoresReport(t *testing.T) {
	isolate(t)

	out, err := execute(t, "bench", "--min", "1", "--max", "4", "--samples", "5", "--seed", "7", "--format", "text")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("bench printed %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "1 ") || !strings.HasPrefix(lines[3], "4 ") {
		t.Errorf("unexpected rows:\n%s", out)
	}

	out, err = execute(t, "bench", "show", "--format", "json")
	if err != nil {
		t.Fatalf("bench show: %v", err)
	}
	r, err := bench.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Config.Seed != 7 || len(r.Rows) != 4 || r.Mismatches() != 0 {
		t.Errorf("stored report = %+v", r)
	}

	if _, err := execute(t, "bench", "show", r.ID, "--format", "csv"); err != nil {
		t.Errorf("bench show %s: %v", r.ID, err)
	}
}

func TestBenchCachePrefix(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cache]\nprefix = \"ci-3:\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--config", path, "bench", "--max", "2", "--samples", "2", "--format", "text"); err != nil {
		t.Fatalf("bench: %v", err)
	}

	out, err := execute(t, "bench", "show")
	if err != nil {
		t.Fatalf("bench show without prefix: %v", err)
	}
	if out != "" {
		t.Errorf("unprefixed bench show found a report:\n%s", out)
	}

	out, err = execute(t, "--config", path, "bench", "show", "--format", "json")
	if err != nil {
		t.Fatalf("bench show with prefix: %v", err)
	}
	r, err := bench.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(r.Rows) != 2 {
		t.Errorf("stored report has %d rows, want 2", len(r.Rows))
	}
}

func TestBenchTable(t *testing.T) {
	isolate(t)

	out, err := execute(t, "bench", "--max", "3", "--samples", "2", "--no-cache")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	for _, want := range []string{"enumerate µs", "direct µs", "seed"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestBenchShowEmpty(t *testing.T) {
	isolate(t)

	out, err := execute(t, "bench", "show")
	if err != nil {
		t.Fatalf("bench show with no reports: %v", err)
	}
	if out != "" {
		t.Errorf("bench show wrote %q to its output", out)
	}
}

func TestBenchConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[bench]\nmax = 2\nsamples = 3\nseed = 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "bench", "--format", "json", "--no-cache")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	r, err := bench.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := bench.Config{MinN: 1, MaxN: 2, Samples: 3, Seed: 11}
	if r.Config != want {
		t.Errorf("config = %+v, want %+v", r.Config, want)
	}
}

// benchFlags mirrors the flags of the bench command and parses args.
func benchFlags(t *testing.T, args ...string) (*cobra.Command, bench.Config) {
	t.Helper()
	cmd := &cobra.Command{}
	var flags bench.Config
	cmd.Flags().IntVar(&flags.MinN, "min", bench.DefaultMinN, "")
	cmd.Flags().IntVar(&flags.MaxN, "max", bench.DefaultMaxN, "")
	cmd.Flags().IntVar(&flags.Samples, "samples", bench.DefaultSamples, "")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 0, "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return cmd, flags
}

func TestBenchConfigFlagsWin(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cfg, err := config.Parse([]byte("[bench]\nmin = 2\nmax = 5\nsamples = 9\nseed = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	c.Config = cfg

	cmd, flags := benchFlags(t, "--max", "4")
	got := c.benchConfig(cmd, flags)
	want := bench.Config{MinN: 2, MaxN: 4, Samples: 9, Seed: 3}
	if got != want {
		t.Errorf("benchConfig() = %+v, want %+v", got, want)
	}
}

func TestBenchConfigZeroMin(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cfg, err := config.Parse([]byte("[bench]\nmin = 0\nmax = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	c.Config = cfg

	cmd, flags := benchFlags(t)
	got := c.benchConfig(cmd, flags)
	want := bench.Config{MinN: 0, MaxN: 3, Samples: bench.DefaultSamples}
	if got != want {
		t.Errorf("benchConfig() = %+v, want %+v", got, want)
	}

	got.SetDefaults()
	if got.MinN != 0 || got.MaxN != 3 {
		t.Errorf("SetDefaults() changed the sweep to %d..%d", got.MinN, got.MaxN)
	}
}

func TestBenchConfigUnsetKeysKeepFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config = config.Default()
	c.Config.Bench = bench.Config{MinN: 4, MaxN: 6}

	cmd, flags := benchFlags(t)
	got := c.benchConfig(cmd, flags)
	want := bench.Config{MinN: bench.DefaultMinN, MaxN: bench.DefaultMaxN, Samples: bench.DefaultSamples}
	if got != want {
		t.Errorf("benchConfig() = %+v, want %+v", got, want)
	}
}

func TestBadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[bench\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "--config", path, "factorial", "3")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestCachePathAndClear(t *testing.T) {
	isolate(t)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}

	if _, err := execute(t, "bench", "--max", "2", "--samples", "1", "-f", "text"); err != nil {
		t.Fatalf("bench: %v", err)
	}
	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, err := execute(t, "bench", "show"); err != nil {
		t.Fatalf("bench show after clear: %v", err)
	}
}

func TestCacheClearRedisUnsupported(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cache]\nurl = \"redis://localhost:6379\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "--config", path, "cache", "clear")
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}

func TestCompletion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "permtree") {
		t.Error("bash completion does not mention the command name")
	}
}
