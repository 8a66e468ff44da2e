// Package shell provides the external command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTail is the amount of standard error kept for error reports.
const stderrTail = 4096

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and returns its standard output. Standard error is
// logged line by line at debug level and, when ctx carries a vertex, copied
// to it together with standard output.
//
// Entries of cmd.Env override the process environment, except PATH which is
// prepended to the inherited one.
func (r *Runner) Run(ctx context.Context, cmd ports.Command) ([]byte, error) {
	if len(cmd.Argv) == 0 {
		return nil, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	name := cmd.Argv[0]
	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Argv[1:]...) //nolint:gosec // commands come from configuration
	if len(c.Args) > 0 {
		c.Args[0] = name
	}
	c.Dir = cmd.Dir
	c.Env = env

	var stdout bytes.Buffer
	tail := &tailBuffer{limit: stderrTail}
	lines := &logWriter{logger: r.logger}

	stdoutW := io.Writer(&stdout)
	stderrW := io.MultiWriter(tail, lines)
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdoutW = io.MultiWriter(&stdout, v.Stdout())
		stderrW = io.MultiWriter(tail, lines, v.Stderr())
	}
	c.Stdout = stdoutW
	c.Stderr = stderrW

	r.logger.Debug("running " + strings.Join(cmd.Argv, " "))
	err := c.Run()
	lines.Flush()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(errors.Join(domain.ErrCommandFailed, err), "command failed")
		wrapped = zerr.With(wrapped, "command", strings.Join(cmd.Argv, " "))
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if s := strings.TrimSpace(tail.String()); s != "" {
			wrapped = zerr.With(wrapped, "stderr", s)
		}
		return stdout.Bytes(), wrapped
	}

	return stdout.Bytes(), nil
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logger.Debug(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs a trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logger.Debug(string(w.buf))
		w.buf = nil
	}
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}

// resolveEnvironment layers overrides over the system environment.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for _, entry := range overrides {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
