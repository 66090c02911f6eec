package restorer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"macsnap/internal/brew"
	"macsnap/internal/inventory"
	"macsnap/internal/selection"
)

// fakeClient scripts the installed sets and per-name install errors,
// and records install invocations.
type fakeClient struct {
	formulae   []string
	casks      []string
	listErr    error
	installErr map[string]error
	installs   []string
}

func (f *fakeClient) ListInstalled(category inventory.Category) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if category == inventory.Cask {
		return f.casks, nil
	}
	return f.formulae, nil
}

func (f *fakeClient) Install(category inventory.Category, name string) error {
	f.installs = append(f.installs, name)
	return f.installErr[name]
}

func writeSnapshot(t *testing.T, snap *inventory.Snapshot) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inv.txt")
	if err := os.WriteFile(path, []byte(inventory.Serialize(snap)), 0644); err != nil {
		t.Fatalf("Failed to write snapshot: %v", err)
	}
	return path
}

func TestRestoreInstallsMissingEntries(t *testing.T) {
	path := writeSnapshot(t, &inventory.Snapshot{
		Formulae: []string{"git", "wget", "jq"},
		Casks:    []string{"firefox"},
	})

	client := &fakeClient{formulae: []string{"git", "wget"}}
	var out bytes.Buffer

	r := New(client, selection.Passthrough{}, &out)
	if err := r.Restore(path); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	want := []string{"jq", "firefox"}
	if len(client.installs) != len(want) {
		t.Fatalf("installs = %v, want %v", client.installs, want)
	}
	for i, name := range want {
		if client.installs[i] != name {
			t.Errorf("installs[%d] = %q, want %q", i, client.installs[i], name)
		}
	}
}

func TestRestoreMissingFileIsFatal(t *testing.T) {
	r := New(&fakeClient{}, selection.Passthrough{}, &bytes.Buffer{})
	if err := r.Restore(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("Expected error for missing inventory file")
	}
}

func TestRestoreBrewUnavailableIsFatal(t *testing.T) {
	path := writeSnapshot(t, &inventory.Snapshot{Formulae: []string{"git"}})

	client := &fakeClient{listErr: brew.ErrUnavailable}
	r := New(client, selection.Passthrough{}, &bytes.Buffer{})

	err := r.Restore(path)
	if !errors.Is(err, brew.ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}
	if len(client.installs) != 0 {
		t.Errorf("Expected no install attempts, got %v", client.installs)
	}
}

func TestRestorePartialFailureIsNotFatal(t *testing.T) {
	path := writeSnapshot(t, &inventory.Snapshot{Formulae: []string{"bad", "good"}})

	client := &fakeClient{installErr: map[string]error{
		"bad": errors.New("exit status 1"),
	}}
	var out bytes.Buffer

	r := New(client, selection.Passthrough{}, &out)
	if err := r.Restore(path); err != nil {
		t.Fatalf("Install failures must not fail the run, got: %v", err)
	}

	if len(client.installs) != 2 {
		t.Errorf("Expected both installs attempted, got %v", client.installs)
	}
	if !strings.Contains(out.String(), "Installed 1 of 2") {
		t.Errorf("Missing summary line in output:\n%s", out.String())
	}
}

func TestRestoreManualAppsOnly(t *testing.T) {
	path := writeSnapshot(t, &inventory.Snapshot{
		Apps: []string{"Safari", "Xcode"},
	})

	client := &fakeClient{}
	var out bytes.Buffer

	r := New(client, selection.Passthrough{}, &out)
	if err := r.Restore(path); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if len(client.installs) != 0 {
		t.Errorf("Expected zero installer invocations, got %v", client.installs)
	}

	text := out.String()
	for _, app := range []string{"Safari", "Xcode"} {
		if !strings.Contains(text, "- "+app) {
			t.Errorf("Manual-install list missing %q:\n%s", app, text)
		}
	}
}

func TestRestoreSkipsAlreadyInstalled(t *testing.T) {
	path := writeSnapshot(t, &inventory.Snapshot{Formulae: []string{"git", "wget"}})

	client := &fakeClient{formulae: []string{"git", "wget"}}
	var out bytes.Buffer

	r := New(client, selection.Passthrough{}, &out)
	if err := r.Restore(path); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if len(client.installs) != 0 {
		t.Errorf("Expected no installs for a satisfied snapshot, got %v", client.installs)
	}
	if !strings.Contains(out.String(), "already installed") {
		t.Errorf("Expected satisfied-snapshot notice:\n%s", out.String())
	}
}

// emptySelector simulates a user cancelling the selection dialog.
type emptySelector struct{}

func (emptySelector) Select([]inventory.Entry) ([]inventory.Entry, error) {
	return nil, nil
}

func TestRestoreCancelledSelectionInstallsNothing(t *testing.T) {
	path := writeSnapshot(t, &inventory.Snapshot{
		Apps:     []string{"Safari"},
		Formulae: []string{"git"},
	})

	client := &fakeClient{}
	var out bytes.Buffer

	r := New(client, emptySelector{}, &out)
	if err := r.Restore(path); err != nil {
		t.Fatalf("Cancelled selection must not fail the run, got: %v", err)
	}

	if len(client.installs) != 0 {
		t.Errorf("Expected no installs after cancel, got %v", client.installs)
	}
	// The manual-apps list still prints after a cancelled selection.
	if !strings.Contains(out.String(), "- Safari") {
		t.Errorf("Manual-install list missing after cancel:\n%s", out.String())
	}
}
