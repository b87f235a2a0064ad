// pkg/unattend/bootstrap.go - injection of the self-bootstrapping
// commands that let the target machine run the embedded payload.

package unattend

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// InjectBootstrap wires the answer file for self-contained execution:
//
//   - embeds the copy-phase script from media into the extension
//     subtree, so the target machine needs no access to the build host;
//   - appends a specialize RunSynchronousCommand that re-reads the
//     answer file from its runtime location, compiles the embedded
//     script into a script block and invokes it with the deployment
//     folder name as its argument;
//   - appends an oobeSystem first-logon command running the
//     second-stage script from its fixed path on the target system.
//
// Both commands take the next free Order in their respective lists,
// which are independent sequences. Calls are append-only: injecting
// twice into the same document yields two bootstrap entries.
//
// When the copy script on media cannot be read, nothing is mutated and
// nothing is written: a bootstrap command pointing at an empty payload
// would silently no-op at install time, which is worse than failing
// the build here.
func InjectBootstrap(d *Document, p Paths) error {
	script, err := os.ReadFile(p.CopyScript())
	if err != nil {
		return fmt.Errorf("reading copy script %s: %w", p.CopyScript(), err)
	}
	return InjectBootstrapScript(d, p, string(script))
}

// InjectBootstrapScript is InjectBootstrap with the copy script text
// supplied by the caller instead of read from media.
func InjectBootstrapScript(d *Document, p Paths, script string) error {
	setCopyScript(d, script)

	deploy := d.EnsureComponent(PassSpecialize, ComponentDeployment)
	runSync := d.findOrCreateChild(deploy, "RunSynchronous", NamespaceUnattend)
	d.appendCommand(runSync, "RunSynchronousCommand", "Path",
		bootstrapCommand(p), "Run the embedded EDS copy script")

	shell := d.EnsureComponent(PassOOBESystem, ComponentShellSetup)
	firstLogon := d.findOrCreateChild(shell, "FirstLogonCommands", NamespaceUnattend)
	d.appendCommand(firstLogon, "SynchronousCommand", "CommandLine",
		secondStageCommand(p), "Run the EDS second stage script")

	return d.Save()
}

// appendCommand appends one ordered entry to a synchronous command
// list. commandChild is "Path" for RunSynchronousCommand and
// "CommandLine" for SynchronousCommand; the schema names them
// differently but they carry the same thing.
func (d *Document) appendCommand(list *etree.Element, entryName, commandChild, command, description string) {
	order := NextOrder(list)
	entry := d.createChild(list, entryName, NamespaceUnattend)
	d.setListAction(entry)
	d.createChild(entry, "Order", NamespaceUnattend).SetText(fmt.Sprintf("%d", order))
	d.createChild(entry, commandChild, NamespaceUnattend).SetText(command)
	d.createChild(entry, "Description", NamespaceUnattend).SetText(description)
}

// bootstrapCommand builds the specialize-phase command line. At install
// time it re-opens the answer file from the runtime location, pulls the
// embedded script text out of the extension subtree and executes it
// with the deployment folder name as argument.
func bootstrapCommand(p Paths) string {
	inner := fmt.Sprintf(
		`$u = [xml](Get-Content -Raw %s); & ([scriptblock]::Create($u.unattend.Extension.CopyScript)) %s`,
		psQuote(p.RuntimeDocument()), psQuote(p.Folder))
	return `powershell.exe -NoProfile -NonInteractive -ExecutionPolicy Bypass -Command "` + inner + `"`
}

// secondStageCommand builds the first-logon command line. The second
// stage is referenced by path only; the copy script is responsible for
// putting it there during specialize.
func secondStageCommand(p Paths) string {
	return fmt.Sprintf(
		`powershell.exe -NoProfile -NonInteractive -ExecutionPolicy Bypass -File "%s"`,
		p.SecondStage())
}

// psQuote wraps s in PowerShell single quotes, doubling any embedded
// quote. Single-quoted strings interpolate nothing, so paths with $ or
// backticks pass through untouched.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
