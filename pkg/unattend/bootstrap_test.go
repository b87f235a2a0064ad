package unattend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectBootstrapFromScratch(t *testing.T) {
	d := tempDoc(t)
	p := DefaultPaths(`E:\`)
	require.NoError(t, InjectBootstrapScript(d, p, "param($folder) Write-Host $folder"))

	reloaded, err := Open(d.Path())
	require.NoError(t, err)

	// Exactly one specialize RunSynchronousCommand with Order 1.
	deploy := reloaded.findComponent(PassSpecialize, ComponentDeployment)
	require.NotNil(t, deploy)
	runSync := findChild(deploy, "RunSynchronous", NamespaceUnattend)
	require.NotNil(t, runSync)
	cmds := runSync.SelectElements("RunSynchronousCommand")
	require.Len(t, cmds, 1)
	assert.Equal(t, "1", findChild(cmds[0], "Order", NamespaceUnattend).Text())
	assert.Equal(t, "add", cmds[0].SelectAttrValue("wcm:action", ""))

	path := findChild(cmds[0], "Path", NamespaceUnattend).Text()
	assert.Contains(t, path, `C:\Temp\unattended.xml`)
	assert.Contains(t, path, "[scriptblock]::Create")
	assert.Contains(t, path, "'EDS'")

	// Exactly one oobeSystem first-logon command with Order 1 in its
	// own, independent sequence.
	shell := reloaded.findComponent(PassOOBESystem, ComponentShellSetup)
	require.NotNil(t, shell)
	firstLogon := findChild(shell, "FirstLogonCommands", NamespaceUnattend)
	require.NotNil(t, firstLogon)
	logonCmds := firstLogon.SelectElements("SynchronousCommand")
	require.Len(t, logonCmds, 1)
	assert.Equal(t, "1", findChild(logonCmds[0], "Order", NamespaceUnattend).Text())
	assert.Contains(t, findChild(logonCmds[0], "CommandLine", NamespaceUnattend).Text(),
		`C:\Windows\Setup\EDS\Specialize.ps1`)

	// The payload made it into the extension subtree.
	assert.Equal(t, "param($folder) Write-Host $folder", CopyScript(reloaded))
}

func TestInjectBootstrapAppendsOnRepeat(t *testing.T) {
	// Append-only by design: injecting twice accumulates two entries
	// with increasing orders, it does not dedupe.
	d := tempDoc(t)
	p := DefaultPaths(`E:\`)
	require.NoError(t, InjectBootstrapScript(d, p, "Write-Host 1"))
	require.NoError(t, InjectBootstrapScript(d, p, "Write-Host 2"))

	deploy := d.findComponent(PassSpecialize, ComponentDeployment)
	runSync := findChild(deploy, "RunSynchronous", NamespaceUnattend)
	cmds := runSync.SelectElements("RunSynchronousCommand")
	require.Len(t, cmds, 2)
	assert.Equal(t, "1", findChild(cmds[0], "Order", NamespaceUnattend).Text())
	assert.Equal(t, "2", findChild(cmds[1], "Order", NamespaceUnattend).Text())

	// The embedded script is an upsert, not a second copy.
	assert.Equal(t, "Write-Host 2", CopyScript(d))
}

func TestInjectBootstrapFailsBeforeMutationWhenScriptUnreadable(t *testing.T) {
	d := tempDoc(t)
	p := Paths{MediaRoot: filepath.Join(t.TempDir(), "missing"), RuntimeDrive: "C:", Folder: "EDS"}

	err := InjectBootstrap(d, p)
	require.Error(t, err)

	// Nothing was persisted.
	_, statErr := os.Stat(d.Path())
	assert.True(t, os.IsNotExist(statErr))

	// And nothing was mutated in memory either.
	assert.Nil(t, d.findComponent(PassSpecialize, ComponentDeployment))
	assert.Equal(t, "", CopyScript(d))
}

func TestBootstrapCommandQuoting(t *testing.T) {
	p := Paths{MediaRoot: `E:\`, RuntimeDrive: "D:", Folder: "It's"}
	cmd := bootstrapCommand(p)
	assert.Contains(t, cmd, `'D:\Temp\unattended.xml'`)
	assert.Contains(t, cmd, `'It''s'`)
}
