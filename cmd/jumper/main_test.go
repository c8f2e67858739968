package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecuteClosesLogFileOnError(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "jumper.log")
	missing := filepath.Join(dir, "missing.yaml")

	tests := []struct {
		name string
		args []string
	}{
		{"catalog", []string{"--log-file", logPath, "--config", missing, "catalog"}},
		{"play", []string{"--log-file", logPath, "--config", missing, "play"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logFile = nil
			rootCmd.SetArgs(tc.args)

			err := execute()
			if err == nil {
				t.Fatal("execute() should fail with a missing config")
			}
			if !strings.Contains(err.Error(), "loading config") {
				t.Errorf("execute() = %v, expected a config error", err)
			}
			if logFile == nil {
				t.Fatal("log file was not opened")
			}
			if _, werr := logFile.WriteString("x"); !errors.Is(werr, os.ErrClosed) {
				t.Errorf("write after execute = %v, expected os.ErrClosed", werr)
			}
		})
	}
}
