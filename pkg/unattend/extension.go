// pkg/unattend/extension.go - the EDS extension subtree: embedded script
// payload, deployment-time user input, and the generator version stamp.

package unattend

import (
	"sort"
	"unicode"

	"github.com/beevik/etree"
)

// localPasswordKey must never reach disk. The value travels only
// in memory between the input dialog and the account mutator; the
// answer file already carries it base64-encoded in the LocalAccount
// node, and writing it a second time in clear under UserInput would
// defeat even that weak obfuscation.
const localPasswordKey = "localPassword"

// extension returns the EDS extension subtree, creating it under the
// root on first reference.
func (d *Document) extension() *etree.Element {
	return d.findOrCreateChild(d.ensureRoot(), "Extension", NamespaceEDS)
}

// SetCopyScript embeds the full script text into the extension subtree
// and persists. The machine executing the answer file has no access to
// the build host's filesystem; this embedded copy is the only payload
// guaranteed to be present at install time.
func SetCopyScript(d *Document, script string) error {
	setCopyScript(d, script)
	return d.Save()
}

func setCopyScript(d *Document, script string) {
	d.findOrCreateChild(d.extension(), "CopyScript", NamespaceEDS).SetText(script)
}

// CopyScript returns the embedded script text, or "" when none has
// been embedded yet.
func CopyScript(d *Document) string {
	ext := findChild(d.ensureRoot(), "Extension", NamespaceEDS)
	if ext == nil {
		return ""
	}
	el := findChild(ext, "CopyScript", NamespaceEDS)
	if el == nil {
		return ""
	}
	return el.Text()
}

// SetUserInput upserts deployment-time user input fields into the
// extension subtree and persists. Field names become element names and
// are validated as XML names up front: a bad name would serialize fine
// and then leave a file on disk that no longer parses, which breaks the
// complete-snapshot guarantee. Nothing is mutated or written when any
// name fails validation. Values are stored as element text; existing
// fields are overwritten, other fields are left alone.
//
// The localPassword field is unconditionally dropped before anything
// is written. This is a hard redaction rule, not a configurable one.
func SetUserInput(d *Document, fields map[string]string) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == localPasswordKey {
			continue
		}
		if !validFieldName(k) {
			return &FieldNameError{Name: k}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	input := d.findOrCreateChild(d.extension(), "UserInput", NamespaceEDS)

	for _, k := range keys {
		d.findOrCreateChild(input, k, NamespaceEDS).SetText(fields[k])
	}
	return d.Save()
}

// validFieldName reports whether name can be an XML element name:
// letters and underscores anywhere, digits, hyphens and dots after the
// first rune. Colons are rejected too; a field name must not fabricate
// a namespace prefix.
func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.') {
			continue
		}
		return false
	}
	return true
}

// UserInput returns the persisted user input fields.
func UserInput(d *Document) map[string]string {
	fields := map[string]string{}
	ext := findChild(d.ensureRoot(), "Extension", NamespaceEDS)
	if ext == nil {
		return fields
	}
	input := findChild(ext, "UserInput", NamespaceEDS)
	if input == nil {
		return fields
	}
	for _, el := range input.ChildElements() {
		if namespaceOf(el) == NamespaceEDS {
			fields[el.Tag] = el.Text()
		}
	}
	return fields
}

// SetGeneratorVersion stamps the tool version that produced the
// extension subtree, so a later agent can detect documents written by
// a newer tool. Persists.
func SetGeneratorVersion(d *Document, version string) error {
	d.extension().CreateAttr("version", version)
	return d.Save()
}

// GeneratorVersion returns the stamped tool version, or "" when the
// document predates stamping.
func GeneratorVersion(d *Document) string {
	ext := findChild(d.ensureRoot(), "Extension", NamespaceEDS)
	if ext == nil {
		return ""
	}
	return ext.SelectAttrValue("version", "")
}
