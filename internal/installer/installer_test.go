package installer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"macsnap/internal/brew"
	"macsnap/internal/inventory"
)

// fakeClient returns scripted outcomes per package name and records
// every install invocation.
type fakeClient struct {
	outcomes map[string]error
	calls    []string
}

func (f *fakeClient) ListInstalled(inventory.Category) ([]string, error) {
	return nil, nil
}

func (f *fakeClient) Install(category inventory.Category, name string) error {
	f.calls = append(f.calls, name)
	return f.outcomes[name]
}

func TestRunPartialFailureIsolation(t *testing.T) {
	client := &fakeClient{outcomes: map[string]error{
		"bad": errors.New("exit status 1"),
	}}

	cands := []inventory.Entry{
		{Category: inventory.Formula, Name: "bad"},
		{Category: inventory.Formula, Name: "good"},
	}

	var out bytes.Buffer
	results, err := Run(client, cands, &out)
	if err != nil {
		t.Fatalf("Run returned error for a per-entry failure: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Outcome != Failed {
		t.Errorf("Expected bad to fail, got %v", results[0].Outcome)
	}
	if results[1].Outcome != Installed {
		t.Errorf("Expected good to install after bad failed, got %v", results[1].Outcome)
	}

	if len(Failures(results)) != 1 {
		t.Errorf("Expected 1 failure, got %d", len(Failures(results)))
	}
}

func TestRunAlreadyInstalledIsSuccess(t *testing.T) {
	client := &fakeClient{outcomes: map[string]error{
		"git": fmt.Errorf("brew install git failed: exit status 1 (output: Warning: git is already installed)"),
	}}

	results, err := Run(client, []inventory.Entry{
		{Category: inventory.Formula, Name: "git"},
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if results[0].Outcome != AlreadyPresent {
		t.Errorf("Expected AlreadyPresent, got %v", results[0].Outcome)
	}
	if len(Failures(results)) != 0 {
		t.Errorf("AlreadyPresent counted as failure")
	}
}

func TestRunAbortsWhenBrewDisappears(t *testing.T) {
	client := &fakeClient{outcomes: map[string]error{
		"first": brew.ErrUnavailable,
	}}

	cands := []inventory.Entry{
		{Category: inventory.Formula, Name: "first"},
		{Category: inventory.Formula, Name: "second"},
	}

	results, err := Run(client, cands, &bytes.Buffer{})
	if !errors.Is(err, brew.ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}

	if len(results) != 1 {
		t.Errorf("Expected batch to stop after unavailable error, got %d results", len(results))
	}
	if len(client.calls) != 1 {
		t.Errorf("Expected 1 install call, got %d", len(client.calls))
	}
}

func TestRunInstallsCasksWithCategory(t *testing.T) {
	client := &fakeClient{outcomes: map[string]error{}}

	_, err := Run(client, []inventory.Entry{
		{Category: inventory.Cask, Name: "firefox"},
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(client.calls) != 1 || client.calls[0] != "firefox" {
		t.Errorf("Expected one install call for firefox, got %v", client.calls)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		Installed:      "installed",
		AlreadyPresent: "already present",
		Failed:         "failed",
	}
	for outcome, want := range cases {
		if outcome.String() != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", outcome, outcome.String(), want)
		}
	}
}
