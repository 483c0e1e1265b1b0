package model

import "github.com/viant/plg/model/script"

// DataObject is a named value container. The generic variant carries a
// literal value; the string and integer variants carry a script executor.
//
// The owner is a back-reference only: it is independent of the collections
// of the owners referencing the object.
type DataObject struct {
	component
	kind     Kind
	name     string
	value    string
	executor script.Executor
	owner    DataObjectOwner
}

func (d *DataObject) Kind() Kind {
	return d.kind
}

func (d *DataObject) Name() string {
	return d.name
}

func (d *DataObject) SetName(name string) {
	d.name = name
}

// Value returns the literal value of a generic data object.
func (d *DataObject) Value() string {
	return d.value
}

// SetValue sets the literal value; it is only meaningful for generic objects.
func (d *DataObject) SetValue(value string) {
	d.value = value
}

// Executor returns the script of a typed data object, nil for generic ones.
func (d *DataObject) Executor() script.Executor {
	return d.executor
}

// StringExecutor returns the string script, nil unless Kind is KindStringDataObject.
func (d *DataObject) StringExecutor() *script.StringExecutor {
	ret, _ := d.executor.(*script.StringExecutor)
	return ret
}

// IntegerExecutor returns the integer script, nil unless Kind is KindIntegerDataObject.
func (d *DataObject) IntegerExecutor() *script.IntegerExecutor {
	ret, _ := d.executor.(*script.IntegerExecutor)
	return ret
}

// Owner returns the owner back-reference, nil when unset.
func (d *DataObject) Owner() DataObjectOwner {
	return d.owner
}

// SetOwner overwrites the owner back-reference; nil clears it. It does not
// touch any reference collection.
func (d *DataObject) SetOwner(owner DataObjectOwner) {
	d.owner = owner
}

// ReferencedBy returns every flow object or sequence of the process whose
// collection holds d, ordered by component id.
func (d *DataObject) ReferencedBy() []DataObjectOwner {
	if d.process == nil {
		return nil
	}
	var ret []DataObjectOwner
	for _, c := range d.process.registry.components() {
		if owner, ok := c.(DataObjectOwner); ok && owner.HasDataObject(d) {
			ret = append(ret, owner)
		}
	}
	return ret
}
