package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreLog(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	})
}

func TestRunExitCodes(t *testing.T) {
	restoreLog(t)
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"-help"}, 0},
		{"bad value", []string{"-theme=dusk"}, 2},
		{"positional", []string{"extra"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run("snake", tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestOpenLogDebug(t *testing.T) {
	restoreLog(t)
	path := filepath.Join(t.TempDir(), "debug.log")
	closeLog, err := openLog(true, path)
	if err != nil {
		t.Fatal(err)
	}
	log.Printf("session started")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file holds %q", data)
	}
}

func TestOpenLogDiscard(t *testing.T) {
	restoreLog(t)
	closeLog, err := openLog(false, filepath.Join(t.TempDir(), "debug.log"))
	if err != nil {
		t.Fatal(err)
	}
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}
	if w := log.Writer(); w == os.Stderr {
		t.Error("log still writes to stderr")
	}
}
