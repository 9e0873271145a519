package fs

import (
	"os/exec"
	"time"
)

// ExecuteCommand executes a command with arguments in the background.
func (f *realFS) ExecuteCommand(command string, args ...string) error {
	if command == "" {
		return ErrEmptyCommand
	}

	cmd := exec.Command(command, args...)
	detach(cmd)

	// Start command in background (don't wait for completion)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the process whenever it exits
	go func() { _ = cmd.Wait() }()

	return nil
}

// LaunchCommand starts a command and waits at most grace for it to exit.
func (f *realFS) LaunchCommand(grace time.Duration, command string, args ...string) error {
	if command == "" {
		return ErrEmptyCommand
	}

	cmd := exec.Command(command, args...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		// Still running: handed off, keep it in the background
		return nil
	}
}
