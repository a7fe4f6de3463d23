package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blockrender/pkg/orchestrator"
	"github.com/goliatone/go-blockrender/pkg/prompt"
	"github.com/goliatone/go-blockrender/pkg/render"
)

type fakeDriver struct {
	selectIdx int
	input     string
	err       error
	asked     []string
	inputCfg  prompt.InputConfig
	selectCfg prompt.SelectConfig
}

func (f *fakeDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	f.asked = append(f.asked, cfg.Message)
	f.inputCfg = cfg
	if f.err == nil && cfg.Validator != nil {
		if err := cfg.Validator(f.input); err != nil {
			return "", err
		}
	}
	return f.input, f.err
}

func (f *fakeDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	f.asked = append(f.asked, cfg.Message)
	f.selectCfg = cfg
	return f.selectIdx, f.err
}

func TestParseDependencies(t *testing.T) {
	deps, err := parseDependencies(" requests==2.31 , rich,, numpy == 1.26 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := render.Dependencies{
		{Name: "requests", Version: "2.31"},
		{Name: "rich"},
		{Name: "numpy", Version: "1.26"},
	}
	if diff := cmp.Diff(want, deps); diff != "" {
		t.Fatalf("deps mismatch (-want +got):\n%s", diff)
	}

	if deps, err := parseDependencies("  "); err != nil || deps != nil {
		t.Fatalf("expected nil deps for blank input, got %v, %v", deps, err)
	}
	if _, err := parseDependencies("==1.0"); err == nil {
		t.Fatalf("expected error for nameless dependency")
	}
}

func TestResolveRequest_FlagsOnly(t *testing.T) {
	gen := orchestrator.New()
	req, err := resolveRequest(context.Background(), nil, gen, cliOptions{
		method:   " curl ",
		command:  "./run.sh",
		filename: "run.sh",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := orchestrator.Request{Method: "curl", Command: "./run.sh", Filename: "run.sh"}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRequest_Interactive(t *testing.T) {
	gen := orchestrator.New()
	driver := &fakeDriver{selectIdx: 0, input: "curl -O https://example.com/a.sh"}

	req, err := resolveRequest(context.Background(), driver, gen, cliOptions{filename: "a.sh"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if req.Method != "curl" || req.Command != "curl -O https://example.com/a.sh" {
		t.Fatalf("unexpected request %+v", req)
	}
	if diff := cmp.Diff([]string{"Execution method", "Command to run"}, driver.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}

	block, err := gen.Build(req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if block == "" {
		t.Fatalf("expected rendered block")
	}
}

func TestResolveRequest_InteractiveSkipsProvidedValues(t *testing.T) {
	driver := &fakeDriver{}
	_, err := resolveRequest(context.Background(), driver, orchestrator.New(), cliOptions{method: "curl", command: "ls"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(driver.asked) != 0 {
		t.Fatalf("expected no prompts, got %v", driver.asked)
	}
}

func TestResolveRequest_Aborted(t *testing.T) {
	driver := &fakeDriver{err: prompt.ErrAborted}
	_, err := resolveRequest(context.Background(), driver, orchestrator.New(), cliOptions{})
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestResolveRequest_InvalidSelection(t *testing.T) {
	driver := &fakeDriver{selectIdx: -1}
	if _, err := resolveRequest(context.Background(), driver, orchestrator.New(), cliOptions{}); err == nil {
		t.Fatalf("expected error for invalid selection")
	}
}

func TestResolveRequest_InteractiveRejectsBlankCommand(t *testing.T) {
	driver := &fakeDriver{selectIdx: 0, input: "   "}
	_, err := resolveRequest(context.Background(), driver, orchestrator.New(), cliOptions{})
	if !errors.Is(err, errCommandRequired) {
		t.Fatalf("expected errCommandRequired, got %v", err)
	}
	if driver.selectCfg.Help == "" || driver.inputCfg.Help == "" {
		t.Fatalf("expected prompts to carry help text")
	}
}

func TestRequireCommand(t *testing.T) {
	if err := requireCommand("ls"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := requireCommand(" \t"); !errors.Is(err, errCommandRequired) {
		t.Fatalf("expected errCommandRequired, got %v", err)
	}
}
