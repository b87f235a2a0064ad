// cmd/edstrigger/main.go - HTTP service that starts the media
// preparation orchestrator, one build at a time.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/pflag"

	"github.com/edsdeploy/eds/pkg/config"
	"github.com/edsdeploy/eds/pkg/logging"
	"github.com/edsdeploy/eds/pkg/trigger"
	"github.com/edsdeploy/eds/pkg/utils"
	"github.com/edsdeploy/eds/pkg/version"
)

func main() {
	utils.PatchWindowsArgs()

	var (
		listen      = pflag.String("listen", "", "bind address (default from config)")
		buildCmd    = pflag.String("build-cmd", `powershell.exe -NoProfile -ExecutionPolicy Bypass -File C:\ProgramData\EDS\Build.ps1`, "command line the trigger runs")
		showVersion = pflag.Bool("version", false, "print version and exit")
	)
	pflag.Parse()

	if *showVersion {
		version.Print()
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.GetDefaultConfig()
	}
	if *listen != "" {
		cfg.ListenAddress = *listen
	}

	if err := logging.Init(logging.Options{
		Tool:     "edstrigger",
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
		Verbose:  cfg.Verbose,
		Debug:    cfg.Debug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	parts := strings.Fields(*buildCmd)
	if len(parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty --build-cmd")
		os.Exit(1)
	}

	svc := trigger.New(func() error {
		logging.Info("Starting build: %s", *buildCmd)
		cmd := exec.Command(parts[0], parts[1:]...)
		out, err := cmd.CombinedOutput()
		for _, line := range strings.Split(string(out), "\n") {
			if txt := strings.TrimSpace(line); txt != "" {
				logging.Info("%s", txt)
			}
		}
		if err != nil {
			return fmt.Errorf("build command: %w", err)
		}
		return nil
	})

	logging.Info("Listening on %s", cfg.ListenAddress)
	if err := http.ListenAndServe(cfg.ListenAddress, svc.Router()); err != nil {
		logging.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
