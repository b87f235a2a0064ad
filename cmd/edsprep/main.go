// cmd/edsprep/main.go - prepares the answer file on installation media.
//
// Run once per build by the media preparation orchestrator: opens (or
// synthesizes) the answer file on the mounted media, embeds the copy
// script and injects the bootstrap commands, then stamps the generator
// version.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/edsdeploy/eds/pkg/config"
	"github.com/edsdeploy/eds/pkg/logging"
	"github.com/edsdeploy/eds/pkg/unattend"
	"github.com/edsdeploy/eds/pkg/utils"
	"github.com/edsdeploy/eds/pkg/version"
)

func main() {
	utils.PatchWindowsArgs()

	var (
		mediaRoot    = pflag.String("media", "", "root of the mounted installation media, e.g. E:\\")
		runtimeDrive = pflag.String("runtime-drive", "", "target system volume (default from config)")
		folder       = pflag.String("folder", "", "deployment folder name (default from config)")
		configPath   = pflag.String("config", "", "path to Config.yaml (default fixed location)")
		showVersion  = pflag.Bool("version", false, "print version and exit")
	)
	pflag.Parse()

	if *showVersion {
		version.Print()
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *mediaRoot != "" {
		cfg.MediaRoot = *mediaRoot
	}
	if *runtimeDrive != "" {
		cfg.RuntimeDrive = *runtimeDrive
	}
	if *folder != "" {
		cfg.DeploymentFolder = *folder
	}
	if cfg.MediaRoot == "" {
		fmt.Fprintln(os.Stderr, "Error: no media root configured; pass --media")
		os.Exit(1)
	}

	if err := logging.Init(logging.Options{
		Tool:     "edsprep",
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
		Verbose:  cfg.Verbose,
		Debug:    cfg.Debug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	paths := unattend.Paths{
		MediaRoot:    utils.NormalizeWindowsPath(cfg.MediaRoot),
		RuntimeDrive: cfg.RuntimeDrive,
		Folder:       cfg.DeploymentFolder,
	}

	doc, err := unattend.Open(paths.SourceDocument())
	if err != nil {
		logging.Error("Opening answer file: %v", err)
		os.Exit(1)
	}

	logging.Info("Injecting bootstrap into %s", paths.SourceDocument())
	if err := unattend.InjectBootstrap(doc, paths); err != nil {
		logging.Error("Injecting bootstrap: %v", err)
		os.Exit(1)
	}
	if err := unattend.SetGeneratorVersion(doc, version.Version().Version); err != nil {
		logging.Error("Stamping generator version: %v", err)
		os.Exit(1)
	}

	logging.Info("Answer file prepared: %s", doc.Path())
}

func loadConfig(path string) (*config.Configuration, error) {
	if path != "" {
		return config.LoadConfigFrom(path)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		// Media preparation often runs on a workstation with no
		// deployed configuration; flags carry the rest.
		return config.GetDefaultConfig(), nil
	}
	return cfg, nil
}
