package catalog

import "strings"

//go:generate go tool stringer -type=LinkKind -trimprefix=Link -output=link_kind_string.go

// LinkKind tells what a record's mirror column holds.
type LinkKind int

const (
	// LinkUnset means the record has not been paired yet.
	LinkUnset LinkKind = iota
	// LinkPaired means the record points at its mirror record.
	LinkPaired
	// LinkNoMirrorNeeded marks a record that is its own mirror.
	LinkNoMirrorNeeded
	// LinkNeedsMirror marks a record whose mirror is missing from the catalog.
	LinkNeedsMirror
)

// Tokens written to the mirror column for the sentinel links.
const (
	NoMirrorNeededToken = "NULL"
	NeedsMirrorToken    = "Need Mirror"
)

// MirrorLink is the content of a record's mirror column.
// The zero value is unset.
type MirrorLink struct {
	kind LinkKind
	id   string
}

var (
	// NoMirrorNeeded is the link of a self-symmetric record.
	NoMirrorNeeded = MirrorLink{kind: LinkNoMirrorNeeded}
	// NeedsMirror is the link of a record whose mirror has to be authored.
	NeedsMirror = MirrorLink{kind: LinkNeedsMirror}
)

// Paired returns a link to the record with the given id.
func Paired(id string) MirrorLink {
	return MirrorLink{kind: LinkPaired, id: id}
}

// ParseMirrorLink reads a mirror column. Anything other than empty text or
// one of the sentinel tokens is taken as the id of the mirror record.
func ParseMirrorLink(s string) MirrorLink {
	switch text := strings.TrimSpace(s); text {
	case "":
		return MirrorLink{}
	case NoMirrorNeededToken:
		return NoMirrorNeeded
	case NeedsMirrorToken:
		return NeedsMirror
	default:
		return Paired(text)
	}
}

// Kind returns the kind of link.
func (l MirrorLink) Kind() LinkKind {
	return l.kind
}

// IsUnset reports whether the record still needs to be processed.
func (l MirrorLink) IsUnset() bool {
	return l.kind == LinkUnset
}

// ID returns the id of the mirror record for paired links.
func (l MirrorLink) ID() (string, bool) {
	return l.id, l.kind == LinkPaired
}

// Token returns the text written to the mirror column.
func (l MirrorLink) Token() string {
	switch l.kind {
	case LinkPaired:
		return l.id
	case LinkNoMirrorNeeded:
		return NoMirrorNeededToken
	case LinkNeedsMirror:
		return NeedsMirrorToken
	default:
		return ""
	}
}

// String is Token, with unset links shown as "-".
func (l MirrorLink) String() string {
	if l.kind == LinkUnset {
		return "-"
	}

	return l.Token()
}
