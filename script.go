// script.go

package plotpy

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// callPython3 writes a python script to dir/filename (creating dir if
// needed) and runs it with python3, blocking until the process exits.
// The contents of pythonHeader are prepended to commands. The combined
// stdout and stderr of the interpreter is returned; a non-zero exit
// status yields an error that carries that output.
func callPython3(ctx context.Context, commands, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("plotpy: cannot create output directory: %w", err)
	}

	scriptPath := filepath.Join(dir, filename)
	if err := os.WriteFile(scriptPath, []byte(pythonHeader+commands), 0o644); err != nil {
		return "", fmt.Errorf("plotpy: cannot write script: %w", err)
	}
	Logger().Debug("script written", "path", scriptPath)

	cmd := exec.CommandContext(ctx, "python3", scriptPath)
	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		Logger().Debug("python output", "script", filename, "output", string(out))
	}
	if err != nil {
		return string(out), fmt.Errorf("plotpy: python3 failed on %s: %w\n%s", scriptPath, err, out)
	}
	return string(out), nil
}
