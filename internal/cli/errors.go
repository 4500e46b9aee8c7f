package cli

import (
	"errors"
	"fmt"
)

// Exit codes. Startup is all-or-nothing: every fatal condition exits 1,
// and 0 is only reached through a normal shutdown.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Stage identifies which startup transition failed.
type Stage string

const (
	// StageParse covers Unconfigured -> Parsed: usage errors.
	StageParse Stage = "usage"

	// StageContext covers Parsed -> ContextReady: the process-table
	// context could not be created.
	StageContext Stage = "context"

	// StageBootstrap covers ContextReady -> BootstrapAcquired: no
	// bootstrap handle, the process was not started in the translator
	// role.
	StageBootstrap Stage = "bootstrap"

	// StageRoot covers BootstrapAcquired -> RootReady: root-node
	// composition failed.
	StageRoot Stage = "root"

	// StageServe covers RootReady -> Serving and the serving loop
	// itself.
	StageServe Stage = "serve"
)

// StartupError is a fatal error in one of the startup stages.
type StartupError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StartupError) Unwrap() error { return e.Err }

func newStartupError(stage Stage, message string, err error) *StartupError {
	return &StartupError{Stage: stage, Message: message, Err: err}
}

// FailedStage extracts the stage from a startup error, or "" when the
// error did not come from the startup sequence. Uses errors.As to handle
// wrapped errors.
func FailedStage(err error) Stage {
	var se *StartupError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}

// GetExitCode maps an error to the process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
