// pkg/unattend/identity.go - device name and local account mutators.

package unattend

import (
	"github.com/beevik/etree"
)

// SetComputerName upserts the target machine's name on the specialize
// shell-setup component and persists. It deliberately does not create
// the component: by the time a device name is being set, the bootstrap
// injection has already built the specialize structure, and a missing
// component means this document was never prepared. In that case the
// call fails with a StructureError and the file on disk is untouched.
func SetComputerName(d *Document, name string) error {
	comp := d.findComponent(PassSpecialize, ComponentShellSetup)
	if comp == nil {
		return &StructureError{Pass: PassSpecialize, Component: ComponentShellSetup}
	}
	d.findOrCreateChild(comp, "ComputerName", NamespaceUnattend).SetText(name)
	return d.Save()
}

// SetLocalAccount upserts a local administrator account by username and
// persists. Unlike SetComputerName it creates all intermediate
// structure as needed. The password value is stored exactly as given —
// the setup engine expects base64, flagged as not-plaintext; that is
// obfuscation, not encryption, and this package preserves the semantic
// rather than inventing a stronger one the engine cannot read.
//
// An existing account with the same name gets only its password value
// replaced; DisplayName and Group are left untouched. A new account is
// created with DisplayName equal to the username and Group
// "Administrators".
func SetLocalAccount(d *Document, username, encodedPassword string) error {
	shell := d.EnsureComponent(PassOOBESystem, ComponentShellSetup)
	userAccounts := d.findOrCreateChild(shell, "UserAccounts", NamespaceUnattend)
	localAccounts := d.findOrCreateChild(userAccounts, "LocalAccounts", NamespaceUnattend)

	if account := findAccount(localAccounts, username); account != nil {
		password := d.findOrCreateChild(account, "Password", NamespaceUnattend)
		d.findOrCreateChild(password, "Value", NamespaceUnattend).SetText(encodedPassword)
		d.findOrCreateChild(password, "PlainText", NamespaceUnattend).SetText("false")
		return d.Save()
	}

	account := d.createChild(localAccounts, "LocalAccount", NamespaceUnattend)
	d.setListAction(account)
	password := d.createChild(account, "Password", NamespaceUnattend)
	d.createChild(password, "Value", NamespaceUnattend).SetText(encodedPassword)
	d.createChild(password, "PlainText", NamespaceUnattend).SetText("false")
	d.createChild(account, "DisplayName", NamespaceUnattend).SetText(username)
	d.createChild(account, "Group", NamespaceUnattend).SetText("Administrators")
	d.createChild(account, "Name", NamespaceUnattend).SetText(username)
	return d.Save()
}

// findAccount scans the LocalAccounts list for an entry whose Name
// matches username.
func findAccount(localAccounts *etree.Element, username string) *etree.Element {
	for _, account := range localAccounts.ChildElements() {
		if account.Tag != "LocalAccount" || namespaceOf(account) != NamespaceUnattend {
			continue
		}
		name := findChild(account, "Name", NamespaceUnattend)
		if name != nil && name.Text() == username {
			return account
		}
	}
	return nil
}
