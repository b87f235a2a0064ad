package unattend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderEmptyList(t *testing.T) {
	d := tempDoc(t)
	deploy := d.EnsureComponent(PassSpecialize, ComponentDeployment)
	list := d.findOrCreateChild(deploy, "RunSynchronous", NamespaceUnattend)

	assert.Equal(t, 1, NextOrder(list))
}

func TestNextOrderIgnoresMalformedEntries(t *testing.T) {
	d := tempDoc(t)
	deploy := d.EnsureComponent(PassSpecialize, ComponentDeployment)
	list := d.findOrCreateChild(deploy, "RunSynchronous", NamespaceUnattend)

	for _, v := range []string{"1", "3", "x", "5"} {
		entry := d.createChild(list, "RunSynchronousCommand", NamespaceUnattend)
		d.createChild(entry, "Order", NamespaceUnattend).SetText(v)
	}
	// An entry with no Order child at all contributes nothing either.
	d.createChild(list, "RunSynchronousCommand", NamespaceUnattend)

	assert.Equal(t, 6, NextOrder(list))
}

func TestNextOrderIsMonotonicAcrossInsertions(t *testing.T) {
	d := tempDoc(t)
	deploy := d.EnsureComponent(PassSpecialize, ComponentDeployment)
	list := d.findOrCreateChild(deploy, "RunSynchronous", NamespaceUnattend)

	for want := 1; want <= 3; want++ {
		got := NextOrder(list)
		assert.Equal(t, want, got)
		d.appendCommand(list, "RunSynchronousCommand", "Path", "cmd.exe", "")
	}
}
