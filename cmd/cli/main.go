package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/depvis/internal/app"
	"github.com/specialistvlad/depvis/internal/cli"
	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/fsutil"
	"github.com/specialistvlad/depvis/internal/hclcfg"
	"github.com/specialistvlad/depvis/internal/xmlcfg"
)

// main is the entrypoint for the depvis application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader, err := resolveLoader(appConfig)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	depvisApp := app.NewApp(outW, appConfig, loader)

	return depvisApp.Run(context.Background())
}

// resolveLoader picks the run-config loader matching the config path's
// format. The path may name a directory, in which case the first config
// file inside it wins. A flags-only run needs no loader at all.
func resolveLoader(appConfig *app.Config) (config.Loader, error) {
	if appConfig.ConfigPath == "" {
		return nil, nil
	}

	path, err := fsutil.ResolveConfigPath(appConfig.ConfigPath, ".xml", ".hcl")
	if err != nil {
		return nil, err
	}
	appConfig.ConfigPath = path

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hclcfg.NewLoader(), nil
	default:
		return xmlcfg.NewLoader(), nil
	}
}
