package unattend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathsLayout(t *testing.T) {
	p := DefaultPaths(`E:\`)

	assert.Equal(t, `E:\EDS\Installer\unattended.xml`, p.SourceDocument())
	assert.Equal(t, `C:\Temp\unattended.xml`, p.RuntimeDocument())
	assert.Equal(t, `E:\EDS\Installer\Functions\CopySpecialize.ps1`, p.CopyScript())
	assert.Equal(t, `C:\Windows\Setup\EDS\Specialize.ps1`, p.SecondStage())
}

func TestPathsCustomFolderAndDrive(t *testing.T) {
	p := Paths{MediaRoot: `F:\media\`, RuntimeDrive: "D:", Folder: "Deploy"}

	assert.Equal(t, `F:\media\Deploy\Installer\unattended.xml`, p.SourceDocument())
	assert.Equal(t, `D:\Temp\unattended.xml`, p.RuntimeDocument())
	assert.Equal(t, `D:\Windows\Setup\Deploy\Specialize.ps1`, p.SecondStage())
}
