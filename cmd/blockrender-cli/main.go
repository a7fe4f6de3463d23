package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-blockrender/pkg/orchestrator"
	"github.com/goliatone/go-blockrender/pkg/prompt"
	"github.com/goliatone/go-blockrender/pkg/render"
)

type cliOptions struct {
	method      string
	command     string
	filename    string
	deps        string
	variants    string
	output      string
	list        bool
	interactive bool
}

func main() {
	opts := cliOptions{}
	flag.StringVar(&opts.method, "method", "", "execution method (renderer variant); defaults to curl")
	flag.StringVar(&opts.command, "command", "", "command the user runs")
	flag.StringVar(&opts.filename, "filename", "", "name of the downloaded file")
	flag.StringVar(&opts.deps, "deps", "", "comma separated dependencies, name or name==version")
	flag.StringVar(&opts.variants, "variants", "", "directory holding variant definition files")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.BoolVar(&opts.list, "list", false, "list available methods and exit")
	flag.BoolVar(&opts.interactive, "interactive", false, "prompt for missing method and command")
	flag.Parse()

	ctx := context.Background()

	gen := newOrchestrator(opts)
	if err := gen.Err(); err != nil {
		log.Fatalf("Failed to initialise renderers: %v", err)
	}

	if opts.list {
		for _, method := range gen.Methods() {
			fmt.Println(method)
		}
		return
	}

	var driver prompt.Driver
	if opts.interactive {
		driver = prompt.NewSurveyDriver()
	}

	req, err := resolveRequest(ctx, driver, gen, opts)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("Invalid request: %v", err)
	}

	block, err := gen.Build(req)
	if err != nil {
		log.Fatalf("Failed to render block: %v", err)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(block), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Block written to %s\n", opts.output)
	} else {
		fmt.Print(block)
	}
}

func newOrchestrator(opts cliOptions) *orchestrator.Orchestrator {
	var options []orchestrator.Option
	if dir := strings.TrimSpace(opts.variants); dir != "" {
		options = append(options, orchestrator.WithVariantsFS(os.DirFS(dir)))
	}
	return orchestrator.New(options...)
}

// resolveRequest builds the render request from flags, prompting through
// driver for the method and command when driver is non-nil and they are unset.
func resolveRequest(ctx context.Context, driver prompt.Driver, gen *orchestrator.Orchestrator, opts cliOptions) (orchestrator.Request, error) {
	deps, err := parseDependencies(opts.deps)
	if err != nil {
		return orchestrator.Request{}, err
	}

	req := orchestrator.Request{
		Method:       strings.TrimSpace(opts.method),
		Command:      opts.command,
		Filename:     opts.filename,
		Dependencies: deps,
	}

	if driver == nil {
		return req, nil
	}

	if req.Method == "" {
		methods := gen.Methods()
		idx, err := driver.Select(ctx, prompt.SelectConfig{
			Message:      "Execution method",
			Options:      methods,
			DefaultIndex: prompt.IndexOf(methods, gen.DefaultMethod()),
			Help:         "Methods other than curl come from -variants definition files",
		})
		if err != nil {
			return orchestrator.Request{}, err
		}
		if idx < 0 || idx >= len(methods) {
			return orchestrator.Request{}, fmt.Errorf("cli: invalid method selection %d", idx)
		}
		req.Method = methods[idx]
	}

	if req.Command == "" {
		command, err := driver.Input(ctx, prompt.InputConfig{
			Message:   "Command to run",
			Help:      "Shown verbatim after the shell prompt",
			Validator: requireCommand,
		})
		if err != nil {
			return orchestrator.Request{}, err
		}
		req.Command = command
	}

	return req, nil
}

var errCommandRequired = errors.New("cli: command is required")

func requireCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return errCommandRequired
	}
	return nil
}

func parseDependencies(raw string) (render.Dependencies, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var deps render.Dependencies
	for _, part := range strings.Split(raw, ",") {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		name, version, _ := strings.Cut(entry, "==")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("cli: dependency %q has no name", entry)
		}
		deps = append(deps, render.Dependency{Name: name, Version: strings.TrimSpace(version)})
	}
	return deps, nil
}
