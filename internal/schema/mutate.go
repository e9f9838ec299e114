// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

import (
	"regexp"
	"slices"
	"strconv"
)

// NewPropertyName is the base name AddProperty numbers from.
const NewPropertyName = "newProperty"

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name only uses letters, digits and
// underscores.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// The functions below take an object node and return a new one. Any other
// node, or an edit that does not apply, returns the input unchanged.

// AddProperty appends a {type: string} property under the first free name
// of newProperty, newProperty1, newProperty2, ... and returns that name.
func AddProperty(obj Node) (Node, string) {
	if obj.Type() != TypeObject {
		return obj, ""
	}
	props := obj.Properties()
	name := NewPropertyName
	for i := 1; props.Has(name); i++ {
		name = NewPropertyName + strconv.Itoa(i)
	}
	return obj.withObject(props.with(name, String()), obj.Required()), name
}

// UpdateProperty replaces the schema of an existing property. Order and the
// required set are untouched, and no reset is applied to value.
func UpdateProperty(obj Node, name string, value Node) Node {
	if obj.Type() != TypeObject || !obj.Properties().Has(name) {
		return obj
	}
	return obj.withObject(obj.Properties().with(name, value), obj.Required())
}

// RemoveProperty deletes a property and its required membership.
func RemoveProperty(obj Node, name string) Node {
	if obj.Type() != TypeObject || !obj.Properties().Has(name) && !obj.IsRequired(name) {
		return obj
	}
	required := slices.DeleteFunc(obj.Required(), func(r string) bool { return r == name })
	return obj.withObject(obj.Properties().without(name), required)
}

// RenameProperty moves a property to newName, rewriting required membership.
// The renamed property moves to the end. It is a no-op when newName is empty,
// equal to oldName, not a valid identifier, or already taken.
func RenameProperty(obj Node, oldName, newName string) Node {
	if obj.Type() != TypeObject || newName == "" || newName == oldName || !ValidIdentifier(newName) {
		return obj
	}
	props := obj.Properties()
	value, ok := props.Get(oldName)
	if !ok || props.Has(newName) {
		return obj
	}
	required := obj.Required()
	for i, r := range required {
		if r == oldName {
			required[i] = newName
		}
	}
	return obj.withObject(props.without(oldName).with(newName, value), required)
}

// ToggleRequired adds name to the required set, or removes it when present.
// Only existing properties can become required.
func ToggleRequired(obj Node, name string) Node {
	if obj.Type() != TypeObject {
		return obj
	}
	required := obj.Required()
	if i := slices.Index(required, name); i >= 0 {
		return obj.withObject(obj.Properties(), slices.Delete(required, i, i+1))
	}
	if !obj.Properties().Has(name) {
		return obj
	}
	return obj.withObject(obj.Properties(), append(required, name))
}

// OnItems applies op to the object item schema of an array node and wraps
// the result back into the array.
func OnItems(arr Node, op func(Node) Node) Node {
	if !arr.HasObjectItems() {
		return arr
	}
	items, _ := arr.Items()
	return arr.WithItems(op(items))
}

// ItemsAddProperty is AddProperty on the item schema of an array.
func ItemsAddProperty(arr Node) (Node, string) {
	var name string
	out := OnItems(arr, func(items Node) Node {
		var n Node
		n, name = AddProperty(items)
		return n
	})
	return out, name
}

// ItemsUpdateProperty is UpdateProperty on the item schema of an array.
func ItemsUpdateProperty(arr Node, name string, value Node) Node {
	return OnItems(arr, func(items Node) Node { return UpdateProperty(items, name, value) })
}

// ItemsRemoveProperty is RemoveProperty on the item schema of an array.
func ItemsRemoveProperty(arr Node, name string) Node {
	return OnItems(arr, func(items Node) Node { return RemoveProperty(items, name) })
}

// ItemsRenameProperty is RenameProperty on the item schema of an array.
func ItemsRenameProperty(arr Node, oldName, newName string) Node {
	return OnItems(arr, func(items Node) Node { return RenameProperty(items, oldName, newName) })
}

// ItemsToggleRequired is ToggleRequired on the item schema of an array.
func ItemsToggleRequired(arr Node, name string) Node {
	return OnItems(arr, func(items Node) Node { return ToggleRequired(items, name) })
}
