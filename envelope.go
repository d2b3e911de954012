package typeson

import (
	"errors"
	"strings"

	"github.com/argonlab/typeson/document"
)

// Envelope field names and the reserved file-type sentinel. Every persisted
// file carries these header members ahead of the payload.
const (
	FileTypeTag  = "Type"
	FileType     = "JsonSerialization"
	VersionTag   = "Version"
	ClassNameTag = "ClassName"
	ClassDataTag = "ClassData"
)

// envelopeVersion is the only version written today. The tag exists so later
// readers can branch on it.
const envelopeVersion = 1

// buildEnvelope wraps a payload in the fixed header. Members are emitted in
// this exact order; the payload is inserted by reference, not copied.
func buildEnvelope(className string, payload *document.Value) *document.Value {
	env := document.Object()
	env.Set(FileTypeTag, document.String(FileType))
	env.Set(VersionTag, document.Int(envelopeVersion))
	env.Set(ClassNameTag, document.String(className))
	env.Set(ClassDataTag, payload)
	return env
}

// ValidateHeader checks the fixed header fields of a parsed document.
// Checks run in order and the first failure wins; later fields are not
// examined once one check fails.
func ValidateHeader(doc *document.Value) error {
	typeNode, ok := doc.Find(FileTypeTag)
	if !ok {
		return errors.New("Not a valid JsonSerialization file")
	}
	typeStr, ok := typeNode.StringValue()
	if !ok || !strings.EqualFold(typeStr, FileType) {
		return errors.New("Not a valid JsonSerialization file")
	}

	nameNode, ok := doc.Find(ClassNameTag)
	if !ok {
		return errors.New("File should contain ClassName")
	}
	if _, ok := nameNode.StringValue(); !ok {
		return errors.New("File should contain ClassName")
	}

	// ClassData may be absent, but when present it must be an object.
	if dataNode, ok := doc.Find(ClassDataTag); ok && !dataNode.IsObject() {
		return errors.New("ClassData should be an object")
	}

	return nil
}

// envelopeClassName extracts the declared class name. Call only after
// ValidateHeader succeeded.
func envelopeClassName(doc *document.Value) string {
	nameNode, _ := doc.Find(ClassNameTag)
	name, _ := nameNode.StringValue()
	return name
}

// envelopeClassData extracts the payload subtree, which may be nil when the
// file holds a fully default object.
func envelopeClassData(doc *document.Value) *document.Value {
	dataNode, ok := doc.Find(ClassDataTag)
	if !ok {
		return nil
	}
	return dataNode
}
