package unattend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDoc(t *testing.T) *Document {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "unattended.xml"))
}

func TestOpenSynthesizesWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unattended.xml")
	d, err := Open(path)
	require.NoError(t, err)

	root := d.Root()
	assert.Equal(t, "unattend", root.Tag)
	assert.Equal(t, NamespaceUnattend, namespaceOf(root))

	// Nothing is written until the first Save.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenRejectsUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unattended.xml")
	require.NoError(t, os.WriteFile(path, []byte("<unattend"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestSaveByteShape(t *testing.T) {
	d := tempDoc(t)
	d.EnsureComponent(PassSpecialize, ComponentShellSetup)
	require.NoError(t, d.Save())

	out, err := os.ReadFile(d.Path())
	require.NoError(t, err)

	// Declaration present, no byte-order mark in front of it.
	assert.True(t, strings.HasPrefix(string(out), `<?xml version="1.0" encoding="utf-8"?>`),
		"file must start with the XML declaration, got %q", string(out[:40]))
	// Indentation enabled.
	assert.Contains(t, string(out), "\n    <settings")
}

func TestSaveInsertsMissingDeclaration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unattended.xml")
	raw := `<unattend xmlns="` + NamespaceUnattend + `"><settings pass="specialize"/></unattend>`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.Save())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `<?xml version="1.0" encoding="utf-8"?>`))
}

func TestRoundTripLossless(t *testing.T) {
	d := tempDoc(t)
	d.EnsureComponent(PassSpecialize, ComponentShellSetup)
	require.NoError(t, InjectBootstrapScript(d, DefaultPaths(`E:\`), "Write-Host 'hello'"))
	require.NoError(t, SetLocalAccount(d, "Tech", "QQ=="))
	require.NoError(t, SetUserInput(d, map[string]string{"owner": "IT", "site": "HQ"}))
	require.NoError(t, SetComputerName(d, "LAB-01"))

	reloaded, err := Open(d.Path())
	require.NoError(t, err)

	assert.Equal(t, "Write-Host 'hello'", CopyScript(reloaded))
	assert.Equal(t, map[string]string{"owner": "IT", "site": "HQ"}, UserInput(reloaded))

	shell := reloaded.findComponent(PassSpecialize, ComponentShellSetup)
	require.NotNil(t, shell)
	assert.Equal(t, "LAB-01", findChild(shell, "ComputerName", NamespaceUnattend).Text())
	assert.Equal(t, "amd64", shell.SelectAttrValue("processorArchitecture", ""))
	assert.Equal(t, "31bf3856ad364e35", shell.SelectAttrValue("publicKeyToken", ""))

	// Saving the reloaded document must not change its meaning.
	require.NoError(t, reloaded.Save())
	again, err := Open(d.Path())
	require.NoError(t, err)
	assert.Equal(t, "Write-Host 'hello'", CopyScript(again))
	assert.Equal(t, map[string]string{"owner": "IT", "site": "HQ"}, UserInput(again))
}
