package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWindowsPath(t *testing.T) {
	assert.Equal(t, `E:\EDS\Installer`, NormalizeWindowsPath("E:/EDS/Installer"))
	assert.Equal(t, `E:\EDS`, NormalizeWindowsPath(`E:\\EDS\`))
	assert.Equal(t, `E:\`, NormalizeWindowsPath(`E:\`))
	assert.Equal(t, `E:\`, NormalizeWindowsPath("E:/"))
}
