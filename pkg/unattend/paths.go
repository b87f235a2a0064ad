// pkg/unattend/paths.go - fixed file locations on media and target system.

package unattend

import "strings"

// Paths derives the fixed locations the deployment contract pins down:
// where the answer file lives on installation media, where it lives on
// the running system, where the embeddable copy-phase script comes
// from, and where the second-stage script is expected at first logon.
type Paths struct {
	// MediaRoot is the root of the mounted installation media,
	// e.g. `E:\`.
	MediaRoot string

	// RuntimeDrive is the target system's volume, e.g. `C:`.
	RuntimeDrive string

	// Folder is the deployment folder name, e.g. "EDS". It is also the
	// argument handed to the embedded script at install time.
	Folder string
}

// DefaultPaths returns the conventional layout for the given media
// root.
func DefaultPaths(mediaRoot string) Paths {
	return Paths{MediaRoot: mediaRoot, RuntimeDrive: "C:", Folder: "EDS"}
}

// SourceDocument is the answer file on installation media.
func (p Paths) SourceDocument() string {
	return joinBackslash(p.MediaRoot, p.Folder, "Installer", "unattended.xml")
}

// RuntimeDocument is the answer file on the running system; the
// injected bootstrap command reads the embedded script from here.
func (p Paths) RuntimeDocument() string {
	return joinBackslash(p.RuntimeDrive, "Temp", "unattended.xml")
}

// CopyScript is the script on media whose full text gets embedded into
// the answer file.
func (p Paths) CopyScript() string {
	return joinBackslash(p.MediaRoot, p.Folder, "Installer", "Functions", "CopySpecialize.ps1")
}

// SecondStage is the script the first-logon command runs from the
// deployment folder on the target system.
func (p Paths) SecondStage() string {
	return joinBackslash(p.RuntimeDrive, "Windows", "Setup", p.Folder, "Specialize.ps1")
}

// joinBackslash joins path segments with single backslashes. These are
// Windows paths written into the document verbatim, so filepath.Join
// (separator of the build host) is the wrong tool.
func joinBackslash(parts ...string) string {
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, `\`)
		if p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return strings.Join(trimmed, `\`)
}
