// pkg/unattend/namespace.go - namespace-scoped find-or-create primitives.
//
// The answer file mixes three namespaces, and the setup engine resolves
// nodes by (namespace URI, local name), not by prefix. These helpers are
// the only place in the package that derives namespace URIs; everything
// in bootstrap.go, extension.go and identity.go builds on them.

package unattend

import (
	"github.com/beevik/etree"
)

// namespaceOf resolves the namespace URI of el by walking the xmlns
// declarations in scope. Returns "" when the element is unqualified.
func namespaceOf(el *etree.Element) string {
	prefix := el.Space
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if prefix == "" && a.Space == "" && a.Key == "xmlns" {
				return a.Value
			}
			if prefix != "" && a.Space == "xmlns" && a.Key == prefix {
				return a.Value
			}
		}
	}
	return ""
}

// prefixInScope finds a prefix already bound to ns at el, walking
// outward. The second return reports whether a binding exists; the
// prefix itself may be "" when ns is the default namespace.
func prefixInScope(el *etree.Element, ns string) (string, bool) {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if a.Value != ns {
				continue
			}
			if a.Space == "" && a.Key == "xmlns" {
				return "", true
			}
			if a.Space == "xmlns" {
				return a.Key, true
			}
		}
	}
	return "", false
}

// findChild returns the first direct child of parent with the given
// local name under ns, or nil. A same-named child under a different
// namespace does not match.
func findChild(parent *etree.Element, local, ns string) *etree.Element {
	for _, el := range parent.ChildElements() {
		if el.Tag == local && namespaceOf(el) == ns {
			return el
		}
	}
	return nil
}

// createChild appends a child with the given local name under ns,
// reusing whatever prefix is already bound to ns in scope. When ns has
// no binding at all (a hand-authored file missing our declarations) the
// canonical prefix is declared on the root first.
func (d *Document) createChild(parent *etree.Element, local, ns string) *etree.Element {
	prefix, ok := prefixInScope(parent, ns)
	if !ok {
		prefix = canonicalPrefix(ns)
		root := d.ensureRoot()
		if prefix == "" {
			root.CreateAttr("xmlns", ns)
		} else {
			root.CreateAttr("xmlns:"+prefix, ns)
		}
	}
	if prefix == "" {
		return parent.CreateElement(local)
	}
	return parent.CreateElement(prefix + ":" + local)
}

// findOrCreateChild is the general primitive every higher-level
// operation builds on: repeated calls with identical arguments return
// the same node and never create a duplicate.
func (d *Document) findOrCreateChild(parent *etree.Element, local, ns string) *etree.Element {
	if el := findChild(parent, local, ns); el != nil {
		return el
	}
	return d.createChild(parent, local, ns)
}

// setListAction stamps the wcm:action="add" attribute the setup engine
// requires on list entries, declaring the state namespace on the root
// first when a hand-authored file lacks it.
func (d *Document) setListAction(entry *etree.Element) {
	prefix, ok := prefixInScope(entry, NamespaceState)
	if !ok || prefix == "" {
		prefix = "wcm"
		d.ensureRoot().CreateAttr("xmlns:wcm", NamespaceState)
	}
	entry.CreateAttr(prefix+":action", "add")
}

func canonicalPrefix(ns string) string {
	switch ns {
	case NamespaceState:
		return "wcm"
	case NamespaceEDS:
		return "eds"
	default:
		return ""
	}
}

// findSettings returns the settings element for the given pass, or nil.
func (d *Document) findSettings(pass string) *etree.Element {
	for _, el := range d.ensureRoot().ChildElements() {
		if el.Tag == "settings" && namespaceOf(el) == NamespaceUnattend &&
			el.SelectAttrValue("pass", "") == pass {
			return el
		}
	}
	return nil
}

// findComponent returns the named component in the given pass, or nil
// when either the pass or the component is absent.
func (d *Document) findComponent(pass, name string) *etree.Element {
	settings := d.findSettings(pass)
	if settings == nil {
		return nil
	}
	for _, el := range settings.ChildElements() {
		if el.Tag == "component" && namespaceOf(el) == NamespaceUnattend &&
			el.SelectAttrValue("name", "") == name {
			return el
		}
	}
	return nil
}

// EnsureComponent returns the named component in the given pass,
// creating the settings element and the component on first reference.
// A new component gets the fixed attribute set the setup engine
// requires; attributes on an existing component are left untouched
// (idempotent creation, not reconciliation).
func (d *Document) EnsureComponent(pass, name string) *etree.Element {
	if comp := d.findComponent(pass, name); comp != nil {
		return comp
	}
	settings := d.findSettings(pass)
	if settings == nil {
		settings = d.createChild(d.ensureRoot(), "settings", NamespaceUnattend)
		settings.CreateAttr("pass", pass)
	}
	comp := d.createChild(settings, "component", NamespaceUnattend)
	comp.CreateAttr("name", name)
	comp.CreateAttr("processorArchitecture", "amd64")
	comp.CreateAttr("publicKeyToken", "31bf3856ad364e35")
	comp.CreateAttr("language", "neutral")
	comp.CreateAttr("versionScope", "nonSxS")
	return comp
}
