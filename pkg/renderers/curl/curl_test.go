package curl_test

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-blockrender/pkg/render"
	"github.com/goliatone/go-blockrender/pkg/renderers/curl"
	"github.com/goliatone/go-blockrender/pkg/testsupport"
)

const runPrefix = "## Run your code\n\nSave this file to your machine and run it:\n\n<pre class=\"highlight bash\"><code>$ "

func TestRenderer_RunCommandGolden(t *testing.T) {
	cases := []struct {
		name     string
		command  string
		filename string
		golden   string
	}{
		{
			name:     "download",
			command:  "curl -O https://example.com/file.txt",
			filename: "file.txt",
			golden:   "run_command.golden",
		},
		{
			name:   "empty",
			golden: "run_command_empty.golden",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := curl.New().RunCommand(tc.command, tc.filename)
			if err != nil {
				t.Fatalf("run command: %v", err)
			}

			goldenPath := filepath.Join("testdata", tc.golden)
			if testsupport.WriteMaybeGolden(t, goldenPath, []byte(out)) {
				return
			}

			want := testsupport.MustReadGoldenString(t, goldenPath)
			if diff := testsupport.CompareGolden(want, out); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_ExactFormat(t *testing.T) {
	commands := []string{
		"",
		"ls",
		"curl -sSL https://example.com/install.sh | sh",
		"echo '<b>&amp;</b>' && rm -rf ./tmp",
		"multi\nline\ncommand",
		"naïve ünïcödé 命令",
	}

	for _, command := range commands {
		want := runPrefix + command + "</code></pre>\n\n"
		if got := curl.Render(command); got != want {
			t.Fatalf("render(%q)\nwant: %q\n got: %q", command, want, got)
		}
		if len(curl.Render(command)) != len(curl.Render(""))+len(command) {
			t.Fatalf("render(%q) length does not grow by len(command)", command)
		}
	}
}

func TestRender_NoEscaping(t *testing.T) {
	command := `<script>alert("x")</script> & *bold* _em_`
	out := curl.Render(command)
	if !strings.Contains(out, "<code>$ "+command+"</code>") {
		t.Fatalf("expected command to pass through verbatim, got %q", out)
	}
}

func TestRenderer_RunCommandIgnoresFilename(t *testing.T) {
	r := curl.New()
	first, _ := r.RunCommand("python main.py", "main.py")
	second, _ := r.RunCommand("python main.py", "other.txt")
	third, _ := r.RunCommand("python main.py", "")
	if first != second || second != third {
		t.Fatalf("expected filename to be ignored:\n%q\n%q\n%q", first, second, third)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	r := curl.New()
	want := curl.Render("go run .")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.RunCommand("go run .", "main.go")
			if err != nil || got != want {
				t.Errorf("unexpected result %q (%v)", got, err)
			}
		}()
	}
	wg.Wait()

	if again := curl.Render("go run ."); again != want {
		t.Fatalf("repeated render changed output")
	}
}

func TestRenderer_DependenciesUnsupported(t *testing.T) {
	inputs := []render.Dependencies{
		nil,
		{},
		{{Name: "requests"}},
		{{Name: "numpy", Version: ">=1.26"}, {Name: "pandas"}},
	}

	for _, deps := range inputs {
		out, err := curl.New().Dependencies(deps)
		if out != "" {
			t.Fatalf("expected empty output, got %q", out)
		}
		if !errors.Is(err, render.ErrUnsupportedOperation) {
			t.Fatalf("expected unsupported operation, got %v", err)
		}
		if err.Error() != "No dependency support for this variant" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestRenderer_Name(t *testing.T) {
	var zero curl.Renderer
	if zero.Name() != "curl" || curl.New().Name() != curl.Name {
		t.Fatalf("unexpected renderer name")
	}
}
