// cmd/edsagent/main.go - mutates the runtime answer file from inside
// the target OS.
//
// Invoked by the bootstrapped scripts during specialize and first
// logon to record user input and apply identity settings:
//
//	edsagent computername --name LAB-01
//	edsagent account --user Tech --password s3cret
//	edsagent input --field owner=IT --field site=HQ

package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/pflag"

	"github.com/edsdeploy/eds/pkg/config"
	"github.com/edsdeploy/eds/pkg/logging"
	"github.com/edsdeploy/eds/pkg/unattend"
	"github.com/edsdeploy/eds/pkg/utils"
	"github.com/edsdeploy/eds/pkg/version"
)

func main() {
	utils.PatchWindowsArgs()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	mode := os.Args[1]

	flags := pflag.NewFlagSet(mode, pflag.ExitOnError)
	var (
		name     = flags.String("name", "", "computer name to set")
		user     = flags.String("user", "", "local administrator account name")
		password = flags.String("password", "", "password for the account (encoded before writing)")
		fields   = flags.StringToString("field", nil, "user input field, key=value (repeatable)")
	)
	flags.Parse(os.Args[2:])

	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.GetDefaultConfig()
	}
	if err := logging.Init(logging.Options{
		Tool:     "edsagent",
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
		Verbose:  cfg.Verbose,
		Debug:    cfg.Debug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	if info, err := host.Info(); err == nil {
		logging.Debug("Running on %s (%s %s)", info.Hostname, info.Platform, info.PlatformVersion)
	}

	paths := unattend.Paths{
		RuntimeDrive: cfg.RuntimeDrive,
		Folder:       cfg.DeploymentFolder,
	}
	doc, err := unattend.Open(paths.RuntimeDocument())
	if err != nil {
		logging.Error("Opening runtime answer file: %v", err)
		os.Exit(1)
	}

	if stamp := unattend.GeneratorVersion(doc); stamp != "" && !version.AtLeast(stamp) {
		logging.Warn("Answer file was generated by a newer tool (%s); proceeding anyway", stamp)
	}

	switch mode {
	case "computername":
		if *name == "" {
			fmt.Fprintln(os.Stderr, "Error: computername requires --name")
			os.Exit(1)
		}
		err = unattend.SetComputerName(doc, *name)

	case "account":
		if *user == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "Error: account requires --user and --password")
			os.Exit(1)
		}
		err = unattend.SetLocalAccount(doc, *user, encodePassword(*password))

	case "input":
		if len(*fields) == 0 {
			fmt.Fprintln(os.Stderr, "Error: input requires at least one --field key=value")
			os.Exit(1)
		}
		err = unattend.SetUserInput(doc, *fields)

	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		logging.Error("%s failed: %v", mode, err)
		os.Exit(1)
	}
	logging.Info("%s applied to %s", mode, doc.Path())
}

// encodePassword produces the representation the setup engine expects
// for a not-plaintext password: base64 of the password with the literal
// suffix "Password". Obfuscation, not encryption.
func encodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password + "Password"))
}

func usage() {
	prog := "edsagent"
	fmt.Fprintf(os.Stderr, "Usage: %s <mode> [flags]\n", prog)
	fmt.Fprintf(os.Stderr, "  computername --name <name>\n")
	fmt.Fprintf(os.Stderr, "  account --user <name> --password <password>\n")
	fmt.Fprintf(os.Stderr, "  input --field key=value [--field key=value ...]\n")
}
