// pkg/unattend/document.go - loading, creating and persisting the answer file.

package unattend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

// XML namespaces used throughout the answer file. Every lookup in this
// package is scoped to one of these; a node with the right local name
// under the wrong namespace is treated as absent.
const (
	// NamespaceUnattend is the setup engine's answer-file namespace.
	NamespaceUnattend = "urn:schemas-microsoft-com:unattend"

	// NamespaceState carries the wcm:action attributes on list entries.
	NamespaceState = "http://schemas.microsoft.com/WMIConfig/2002/State"

	// NamespaceEDS is the extension namespace holding the embedded
	// script payload and deployment-time user input. The setup engine
	// ignores it; only the injected bootstrap commands read it.
	NamespaceEDS = "urn:schemas-edsdeploy-com:eds"
)

// Passes and components produced by this package.
const (
	PassSpecialize = "specialize"
	PassOOBESystem = "oobeSystem"

	ComponentShellSetup = "Microsoft-Windows-Shell-Setup"
	ComponentDeployment = "Microsoft-Windows-Deployment"
)

// Document is a handle to one in-memory answer file and the path it
// persists to. All mutating operations in this package take a *Document
// and finish by writing the full tree back to disk, so the on-disk file
// is always a complete snapshot of the last successful call.
//
// A Document is not safe for concurrent use, and callers holding two
// handles for the same path will silently overwrite each other's
// changes. One handle per file.
type Document struct {
	xml  *etree.Document
	path string
}

// New returns a fresh Document persisting to path, containing only the
// root element and its namespace declarations. Nothing is written until
// the first Save.
func New(path string) *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	d := &Document{xml: doc, path: path}
	d.ensureRoot()
	return d
}

// Open loads the answer file at path if it exists, or returns a fresh
// Document targeting that path if it does not. A file that exists but
// cannot be read or parsed is an error.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(path), nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading answer file %s: %w", path, err)
	}
	d := &Document{xml: doc, path: path}
	d.ensureRoot()
	return d, nil
}

// Path returns the path the Document persists to.
func (d *Document) Path() string {
	return d.path
}

// SetPath retargets the Document, e.g. when the file produced on
// installation media is carried over to the runtime temp location.
func (d *Document) SetPath(path string) {
	d.path = path
}

// Root returns the root element, synthesizing it with the mandatory
// namespace declarations if the document is empty.
func (d *Document) Root() *etree.Element {
	return d.ensureRoot()
}

// Save serializes the document to its path: UTF-8, no byte-order mark,
// indented, with an XML declaration. The consuming setup engine rejects
// files with a BOM or without a declaration, so this exact shape is
// load-bearing.
func (d *Document) Save() error {
	d.ensureDeclaration()
	d.xml.Indent(4)
	out, err := d.xml.WriteToBytes()
	if err != nil {
		return fmt.Errorf("serializing answer file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", d.path, err)
	}
	if err := os.WriteFile(d.path, out, 0644); err != nil {
		return fmt.Errorf("writing answer file %s: %w", d.path, err)
	}
	return nil
}

// ensureRoot returns the root element, creating it (with namespace
// declarations) when the document has none.
func (d *Document) ensureRoot() *etree.Element {
	root := d.xml.Root()
	if root == nil {
		root = d.xml.CreateElement("unattend")
		root.CreateAttr("xmlns", NamespaceUnattend)
		root.CreateAttr("xmlns:wcm", NamespaceState)
		root.CreateAttr("xmlns:eds", NamespaceEDS)
	}
	return root
}

// ensureDeclaration guarantees the first token of the document is an
// XML declaration, inserting one when a hand-authored file omits it.
func (d *Document) ensureDeclaration() {
	for _, tok := range d.xml.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
		break
	}
	pi := d.xml.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	d.xml.RemoveChild(pi)
	d.xml.InsertChildAt(0, pi)
}
