package dayone

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gorewood/moodlog/internal/output"
)

// Submitter creates Day One entries. *Client is the real implementation.
type Submitter interface {
	Submit(ctx context.Context, entry Entry) (string, error)
}

// Client runs the dayone2 binary.
type Client struct {
	binary string
}

// NewClient returns a client for binary, which is looked up in PATH unless it
// contains a path separator. An empty binary uses DefaultBinary.
func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{binary: binary}
}

// Binary returns the configured binary name or path.
func (c *Client) Binary() string {
	return c.binary
}

// Available resolves the binary to a path.
// Returns an *output.ExitError if it cannot be found or is not executable.
func (c *Client) Available() (string, error) {
	path, err := exec.LookPath(c.binary)
	if err != nil {
		return "", c.notFound(err)
	}
	return path, nil
}

// Submit creates entry and returns dayone2's trimmed stdout.
// Returns an *output.ExitError (system error) if the binary is missing or
// exits non-zero; stderr is included in the message.
func (c *Client) Submit(ctx context.Context, entry Entry) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, Args(entry)...) // #nosec G204 -- binary comes from user config

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", c.notFound(err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", output.NewSystemErrorWithCause(c.binary+" interrupted", ctxErr)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("%s failed: %s", c.binary, errMsg), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (c *Client) notFound(cause error) error {
	return output.NewSystemErrorWithCause(
		fmt.Sprintf("%s not found: install the Day One CLI or set dayone_bin", c.binary), cause)
}
