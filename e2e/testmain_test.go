//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	// The binary lives outside the repo so a failed run leaves nothing behind
	dir, err := os.MkdirTemp("", "driveshare-e2e-")
	if err != nil {
		fmt.Printf("Failed to create build dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(dir)
	binPath = filepath.Join(dir, "driveshare")

	// Build the driveshare binary from the module root (the e2e module is nested)
	fmt.Println("Building driveshare binary...")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = ".."
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Printf("Failed to build driveshare: %v\n%s", err, out)
		return 1
	}

	// DRIVESHARE_* settings of the developer's shell would override the
	// per-test config files and the fake marketplace URL
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "DRIVESHARE_") {
			os.Unsetenv(name)
		}
	}

	return m.Run()
}
