// Package swift invokes the Swift package manager to describe package
// manifests.
package swift

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"go.trai.ch/zerr"
)

// description mirrors the machine-readable output of
// `swift package describe --type json`, reduced to the fields we use.
type description struct {
	Name     string           `json:"name"`
	Products []domain.Product `json:"products"`
	Targets  []domain.Target  `json:"targets"`
}

// Describer implements ports.Describer by shelling out to the swift
// binary with the candidate directory as working directory.
type Describer struct {
	bin string
}

// NewDescriber creates a Describer using the swift binary from PATH.
func NewDescriber() *Describer {
	return &Describer{bin: "swift"}
}

// NewDescriberWithBinary creates a Describer using a specific binary.
// Used for testing with a stub tool.
func NewDescriberWithBinary(bin string) *Describer {
	return &Describer{bin: bin}
}

// Available reports whether the swift binary can be located.
func (d *Describer) Available() error {
	if _, err := exec.LookPath(d.bin); err != nil {
		return domain.ErrToolUnavailable
	}
	return nil
}

// Describe runs `swift package describe --type json` in dir and decodes
// the result. The context carries the per-call timeout; when it fires,
// CommandContext kills the process and Run returns the context error.
func (d *Describer) Describe(ctx context.Context, dir string) (*domain.Package, error) {
	//nolint:gosec // Fixed argument list; only the working directory varies.
	cmd := exec.CommandContext(ctx, d.bin, "package", "describe", "--type", "json")
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrDescribeFailed.Error()), "dir", dir)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
		}
		return nil, wrapped
	}

	var desc description
	if err := json.Unmarshal(stdout.Bytes(), &desc); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrDescribeOutputInvalid.Error()),
			"dir", dir,
		)
	}
	if desc.Name == "" {
		return nil, zerr.With(domain.ErrDescribeOutputInvalid, "dir", dir)
	}

	return &domain.Package{
		Name:     desc.Name,
		Path:     dir,
		Products: desc.Products,
		Targets:  desc.Targets,
	}, nil
}
