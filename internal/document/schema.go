package document

import (
	"fmt"
	"strings"

	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
)

// Keys of the object-class schema.
const (
	KeyClass       = "class"
	KeyName        = "name"
	KeyDescription = "description"
	KeyProperties  = "properties"
	KeyType        = "type"

	// TypeGroup marks a property whose value is a nested class/properties document.
	TypeGroup = "group"
)

// IsGroup reports whether a property node is a group.
func IsGroup(prop *Node) bool {
	t, ok := prop.StringAt(KeyType)
	return ok && t == TypeGroup
}

// ClassName returns class.name of a loaded document, validating the whole
// document first. path is only used in errors.
func ClassName(path string, doc *Node) (string, error) {
	if !doc.IsMapping() {
		return "", derrors.SchemaInvalid(path, "document", "top level must be a mapping")
	}
	class, ok := doc.Get(KeyClass)
	if !ok {
		return "", derrors.SchemaMissing(path, KeyClass)
	}
	if !class.IsMapping() {
		return "", derrors.SchemaInvalid(path, KeyClass, "must be a mapping")
	}
	nameNode, ok := class.Get(KeyName)
	if !ok {
		return "", derrors.SchemaMissing(path, "class.name")
	}
	name, ok := nameNode.AsString()
	if !ok {
		return "", derrors.SchemaInvalid(path, "class.name", "must be a string")
	}
	if err := checkFileStem(name); err != nil {
		return "", derrors.SchemaInvalid(path, "class.name", err.Error())
	}
	if err := checkProperties(path, doc, ""); err != nil {
		return "", err
	}
	return name, nil
}

// checkFileStem rejects names that cannot be used as <name>.md in one directory.
func checkFileStem(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("must not be %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("must not contain a path separator")
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("must not contain NUL")
	}
	return nil
}

// checkProperties validates the properties mapping of doc and of every group
// nested below it. prefix is the dotted location of doc, empty at the root.
func checkProperties(path string, doc *Node, prefix string) error {
	if class, ok := doc.Get(KeyClass); ok && !class.IsMapping() {
		return derrors.SchemaInvalid(path, prefix+KeyClass, "must be a mapping")
	}
	props, ok := doc.Get(KeyProperties)
	if !ok || props.Kind == KindNull {
		return nil
	}
	if !props.IsMapping() {
		return derrors.SchemaInvalid(path, prefix+KeyProperties, "must be a mapping")
	}
	for _, e := range props.Entries() {
		field := prefix + KeyProperties + "." + e.Key
		if !e.Value.IsMapping() {
			return derrors.SchemaInvalid(path, field, "must be a mapping")
		}
		if IsGroup(e.Value) {
			if err := checkProperties(path, e.Value, field+"."); err != nil {
				return err
			}
		}
	}
	return nil
}
