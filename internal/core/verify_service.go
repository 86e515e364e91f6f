package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// BuildVerifier runs the project's build to confirm fixes took effect.
//
//go:generate mockgen -source=verify_service.go -destination=verify_service_mock_test.go -package=core
type BuildVerifier interface {
	// TriggerVerification builds the project at root. Failure is advisory:
	// the message says why, and no error is returned.
	TriggerVerification(ctx context.Context, root string) (bool, string)
}

// Verification messages.
const (
	VerifyMsgSuccess = "Build successful!"
	VerifyMsgTimeout = "Build timed out"
	VerifyMsgFailed  = "Build failed: %s"
	VerifyMsgError   = "Build error: %v"
	VerifyMsgNoCmd   = "no verification command configured"
)

// CommandVerifier runs an external build command with a timeout.
type CommandVerifier struct {
	command []string
	timeout time.Duration
	logger  *zap.Logger
}

// NewCommandVerifier creates a verifier for argv, run without a shell. An empty argv
// means DefaultVerifyCommand; a non-positive timeout means DefaultVerifyTimeout.
func NewCommandVerifier(argv []string, timeout time.Duration, logger *zap.Logger) *CommandVerifier {
	if len(argv) == 0 {
		argv = strings.Fields(DefaultVerifyCommand)
	}
	if timeout <= 0 {
		timeout = DefaultVerifyTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandVerifier{
		command: argv,
		timeout: timeout,
		logger:  logger,
	}
}

// TriggerVerification implements BuildVerifier.
func (v *CommandVerifier) TriggerVerification(ctx context.Context, root string) (bool, string) {
	if err := v.Verify(ctx, root); err != nil {
		return false, err.Error()
	}
	return true, VerifyMsgSuccess
}

// Verify runs the build and returns a *VerificationError on timeout or failure.
func (v *CommandVerifier) Verify(ctx context.Context, root string) error {
	if len(v.command) == 0 {
		return &VerificationError{Message: fmt.Sprintf(VerifyMsgError, errors.New(VerifyMsgNoCmd))}
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, v.command[0], v.command[1:]...)
	cmd.Dir = root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	v.logger.Info("running verification build",
		zap.Strings("command", v.command),
		zap.String("dir", root),
		zap.Duration("timeout", v.timeout))

	err := cmd.Run()
	elapsed := time.Since(start)

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		v.logger.Warn("verification build timed out", zap.Duration("elapsed", elapsed))
		return &VerificationError{Timeout: true, Message: VerifyMsgTimeout}
	case err != nil:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			v.logger.Warn("verification build failed", zap.Int("exit_code", exitErr.ExitCode()))
			return &VerificationError{Message: fmt.Sprintf(VerifyMsgFailed, stderr.String())}
		}
		return &VerificationError{Message: fmt.Sprintf(VerifyMsgError, err)}
	}

	v.logger.Info("verification build succeeded", zap.Duration("elapsed", elapsed))
	return nil
}
