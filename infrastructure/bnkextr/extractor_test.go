package bnkextr

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"bnk-converter/domain/bank"
)

// mockRunner records invocations and simulates bnkextr behavior
type mockRunner struct {
	runDir   string
	runName  string
	runArgs  []string
	runErr   error
	wemNames []string // files to drop into the working directory on success
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	return m.RunInDir(ctx, "", name, args...)
}

func (m *mockRunner) RunInDir(ctx context.Context, dir, name string, args ...string) error {
	m.runDir = dir
	m.runName = name
	m.runArgs = args
	if m.runErr != nil {
		return m.runErr
	}
	for _, wem := range m.wemNames {
		if err := os.WriteFile(filepath.Join(dir, wem), []byte("wem"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func writeContainer(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("BKHD"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtract(t *testing.T) {
	root := t.TempDir()
	container := writeContainer(t, root, "music.bnk")
	destDir := filepath.Join(root, "hold")
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatal(err)
	}

	runner := &mockRunner{wemNames: []string{"0001.wem", "0002.wem"}}
	e := New(WithToolPath("/opt/bnkextr"), WithCommandRunner(runner))

	req, err := bank.NewExtractionRequest(container)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Extract(context.Background(), req, destDir); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if runner.runName != "/opt/bnkextr" {
		t.Errorf("tool = %q", runner.runName)
	}
	if runner.runDir != destDir {
		t.Errorf("working directory = %q, want %q", runner.runDir, destDir)
	}
	if len(runner.runArgs) != 1 || runner.runArgs[0] != "music.bnk" {
		t.Errorf("args = %v, want [music.bnk]", runner.runArgs)
	}

	// the staged copy of the container must be cleaned up
	if _, err := os.Stat(filepath.Join(destDir, "music.bnk")); !os.IsNotExist(err) {
		t.Error("staged container copy was not removed")
	}
	if _, err := os.Stat(filepath.Join(destDir, "0001.wem")); err != nil {
		t.Error("extracted stream missing from destination")
	}
}

func TestExtractToolFailure(t *testing.T) {
	root := t.TempDir()
	container := writeContainer(t, root, "music.bnk")
	destDir := filepath.Join(root, "hold")
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatal(err)
	}

	runner := &mockRunner{runErr: errors.New("exit status 1")}
	e := New(WithCommandRunner(runner))

	req, _ := bank.NewExtractionRequest(container)
	err := e.Extract(context.Background(), req, destDir)
	if !errors.Is(err, bank.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}

	// staged copy removed on the failure path too
	if _, statErr := os.Stat(filepath.Join(destDir, "music.bnk")); !os.IsNotExist(statErr) {
		t.Error("staged container copy was not removed after failure")
	}
}

func TestExtractMissingContainer(t *testing.T) {
	destDir := t.TempDir()
	e := New(WithCommandRunner(&mockRunner{}))

	req, _ := bank.NewExtractionRequest(filepath.Join(destDir, "missing.bnk"))
	if err := e.Extract(context.Background(), req, destDir); err == nil {
		t.Fatal("expected error for missing container file")
	}
}

func TestVerifyInstalled(t *testing.T) {
	t.Run("tool missing", func(t *testing.T) {
		runner := &mockRunner{runErr: &exec.Error{Name: "bnkextr", Err: exec.ErrNotFound}}
		e := New(WithCommandRunner(runner))
		if err := e.VerifyInstalled(context.Background()); !errors.Is(err, bank.ErrToolNotFound) {
			t.Fatalf("expected ErrToolNotFound, got %v", err)
		}
	})

	t.Run("tool present but exits non-zero without args", func(t *testing.T) {
		runner := &mockRunner{runErr: errors.New("exit status 1")}
		e := New(WithCommandRunner(runner))
		if err := e.VerifyInstalled(context.Background()); err != nil {
			t.Fatalf("usage exit should not count as missing: %v", err)
		}
	})
}
