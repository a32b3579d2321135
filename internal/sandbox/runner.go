package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/models"
	"github.com/dop251/goja"
)

// consoleMethods are the console functions redirected into the capture list.
var consoleMethods = []string{"log", "info", "warn", "error", "debug"}

// Runner executes JavaScript source.
type Runner struct {
	timeout time.Duration
	logger  *logger.Logger
}

// NewRunner returns a Runner. A zero timeout means scripts may run until the
// context passed to Run is done.
func NewRunner(timeout time.Duration, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{timeout: timeout, logger: log.Component("sandbox")}
}

// Run executes code and returns the captured console output. Every console
// call becomes one line: its arguments converted to strings and joined with a
// single space. When the script throws, Output holds the description of the
// fault (for example "Error: boom") and Failed is set. Empty code is a no-op
// returning a zero result.
func (r *Runner) Run(ctx context.Context, code string) models.RunResult {
	if code == "" {
		return models.RunResult{}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	vm := goja.New()
	capture := &lineBuffer{}
	if err := installConsole(vm, capture); err != nil {
		return failure(capture, err.Error(), 0)
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	start := time.Now()
	_, err := vm.RunString(code)
	elapsed := time.Since(start)

	if err != nil {
		desc := describe(err)
		r.logger.Debug().
			Str("func", "Runner.Run").
			Dur("elapsed", elapsed).
			Str("fault", desc).
			Msg("script failed")
		return failure(capture, desc, elapsed)
	}

	lines := capture.Lines()
	r.logger.Debug().
		Str("func", "Runner.Run").
		Dur("elapsed", elapsed).
		Int("lines", len(lines)).
		Msg("script finished")

	return models.RunResult{
		Output:   strings.Join(lines, "\n"),
		Lines:    lines,
		Duration: elapsed,
	}
}

func failure(capture *lineBuffer, desc string, elapsed time.Duration) models.RunResult {
	return models.RunResult{
		Output:   desc,
		Lines:    capture.Lines(),
		Failed:   true,
		Duration: elapsed,
	}
}

func installConsole(vm *goja.Runtime, capture *lineBuffer) error {
	console := vm.NewObject()
	for _, name := range consoleMethods {
		if err := console.Set(name, func(call goja.FunctionCall) goja.Value {
			parts := make([]string, 0, len(call.Arguments))
			for _, arg := range call.Arguments {
				parts = append(parts, stringify(arg))
			}
			capture.Add(strings.Join(parts, " "))
			return goja.Undefined()
		}); err != nil {
			return fmt.Errorf("install console.%s: %w", name, err)
		}
	}
	return vm.Set("console", console)
}

// stringify converts a JS value the way String(value) does.
func stringify(v goja.Value) string {
	if v == nil {
		return "undefined"
	}
	return v.String()
}

// describe renders err like a thrown value's toString().
func describe(err error) string {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		switch cause := interrupted.Value(); {
		case cause == context.DeadlineExceeded:
			return "Error: " + ErrTimeout.Error()
		case cause == context.Canceled:
			return "Error: " + ErrCanceled.Error()
		default:
			return fmt.Sprintf("Error: execution interrupted: %v", cause)
		}
	}

	var exception *goja.Exception
	if errors.As(err, &exception) {
		if val := exception.Value(); val != nil {
			return val.String()
		}
		return exception.Error()
	}

	return err.Error()
}

// lineBuffer collects console lines. The console callbacks run on the VM
// goroutine while Lines may be read after an interrupt, hence the mutex.
type lineBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *lineBuffer) Add(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

func (b *lineBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
