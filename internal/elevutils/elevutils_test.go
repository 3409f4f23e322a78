package elevutils

import (
	"io"
	"testing"
)

func TestParseCmdArgs(t *testing.T) {
	cmdArgs, err := ParseCmdArgs("elevator", []string{"-id", "lobby", "-config", "a.yaml", "-lines"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseCmdArgs() returned %v", err)
	}
	if cmdArgs.Identifier != "lobby" || cmdArgs.ConfigPath != "a.yaml" || !cmdArgs.LineConsole {
		t.Errorf("ParseCmdArgs() = %+v", cmdArgs)
	}
	if cmdArgs.EnvPath != ".env" {
		t.Errorf("EnvPath = %v, expected default .env", cmdArgs.EnvPath)
	}
}

func TestParseCmdArgsErrors(t *testing.T) {
	if _, err := ParseCmdArgs("elevator", []string{"-floors", "12"}, io.Discard); err == nil {
		t.Errorf("ParseCmdArgs() accepted an unknown flag")
	}
	if _, err := ParseCmdArgs("elevator", []string{"extra"}, io.Discard); err == nil {
		t.Errorf("ParseCmdArgs() accepted a positional argument")
	}
}

func TestGetGitHash(t *testing.T) {
	if GetGitHash() == "" {
		t.Errorf("GetGitHash() is empty")
	}
}
