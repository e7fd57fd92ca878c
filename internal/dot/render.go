package dot

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/specialistvlad/depvis/internal/ctxlog"
)

// Render hands a written DOT file to the external `dot` binary and asks for
// an image in the given format (png, svg, ...). It returns the path of the
// produced artifact.
func Render(ctx context.Context, dotPath, format string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := exec.LookPath("dot"); err != nil {
		return "", fmt.Errorf("graphviz 'dot' binary not found in PATH: %w", err)
	}

	outPath := strings.TrimSuffix(dotPath, ".dot") + "." + format
	cmd := exec.CommandContext(ctx, "dot", "-T"+format, "-o", outPath, dotPath)
	logger.Debug("Invoking external renderer.", "cmd", cmd.String())

	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("dot rendering failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return outPath, nil
}
