package host

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/google/uuid"

	"ability/internal/ability"
	"ability/internal/registry"
	"ability/pkg/logging"
)

// Environment variables passed to command abilities.
const (
	EnvAbilityName  = "ABILITY_NAME"
	EnvInvocationID = "ABILITY_INVOCATION_ID"
)

// commandWaitDelay bounds how long a killed command may hold its output pipes.
const commandWaitDelay = 2 * time.Second

// executor runs one ability with already normalized and validated input.
type executor interface {
	Execute(ctx context.Context, a *ability.Ability, input any) (any, error)
}

// parseTemplate parses text with the sprig function map.
func parseTemplate(name, text string) (*template.Template, error) {
	return template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=zero").Parse(text)
}

// renderTemplate executes tmpl with .input and .ability bound.
func renderTemplate(tmpl *template.Template, a *ability.Ability, input any) (string, error) {
	data := map[string]any{
		"input": input,
		"ability": map[string]any{
			"name":     a.Name,
			"label":    a.Label,
			"category": a.Category,
		},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// decodeOutput turns executor output into a result value: JSON when the text
// is valid JSON, the text itself otherwise.
func decodeOutput(out string) any {
	if out != "" && json.Valid([]byte(out)) {
		var v any
		if err := json.Unmarshal([]byte(out), &v); err == nil {
			return v
		}
	}
	return out
}

type templateExecutor struct {
	tmpl *template.Template
}

func (e *templateExecutor) Execute(_ context.Context, a *ability.Ability, input any) (any, error) {
	out, err := renderTemplate(e.tmpl, a, input)
	if err != nil {
		return nil, &registry.HostError{
			Op:     registry.OpExecute,
			Name:   a.Name,
			Reason: fmt.Sprintf("Ability %q failed: %v", a.Name, err),
			Err:    err,
		}
	}
	return decodeOutput(out), nil
}

type commandExecutor struct {
	argv    []string
	dir     string
	timeout time.Duration
}

func (e *commandExecutor) Execute(ctx context.Context, a *ability.Ability, input any) (any, error) {
	if len(e.argv) == 0 {
		return nil, registry.NewHostError(registry.OpExecute, a.Name, "Ability %q has no command to run.", a.Name)
	}

	stdin, err := json.Marshal(input)
	if err != nil {
		return nil, registry.NewHostError(registry.OpExecute, a.Name, "Ability %q input cannot be encoded: %v", a.Name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	invocationID := uuid.NewString()
	cmd := exec.CommandContext(ctx, e.argv[0], e.argv[1:]...)
	cmd.Dir = e.dir
	cmd.WaitDelay = commandWaitDelay
	cmd.Env = append(os.Environ(),
		EnvAbilityName+"="+a.Name,
		EnvInvocationID+"="+invocationID,
	)
	cmd.Stdin = bytes.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug("Executor", "Running %s (invocation %s): %s", a.Name, invocationID, strings.Join(e.argv, " "))
	err = cmd.Run()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &registry.HostError{
				Op:     registry.OpExecute,
				Name:   a.Name,
				Reason: fmt.Sprintf("Ability %q timed out after %s.", a.Name, e.timeout),
				Err:    ctx.Err(),
			}
		}
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = err.Error()
		}
		return nil, &registry.HostError{
			Op:     registry.OpExecute,
			Name:   a.Name,
			Reason: fmt.Sprintf("Ability %q failed: %s", a.Name, reason),
			Err:    err,
		}
	}

	return decodeOutput(strings.TrimSpace(stdout.String())), nil
}
