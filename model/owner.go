package model

// DataObjectOwner is the capability shared by flow objects and sequences:
// they hold a collection of referenced data objects and may be recorded as a
// data object's owner.
type DataObjectOwner interface {
	Component
	// AddDataObject appends d to the referenced collection; adding an object
	// already present is a no-op.
	AddDataObject(d *DataObject)
	// RemoveDataObject drops d from the referenced collection.
	RemoveDataObject(d *DataObject)
	// DataObjects returns the referenced data objects in insertion order.
	DataObjects() []*DataObject
	// HasDataObject reports whether d is referenced.
	HasDataObject(d *DataObject) bool
}

type dataObjects struct {
	items []*DataObject
}

func (c *dataObjects) AddDataObject(d *DataObject) {
	if d == nil || c.HasDataObject(d) {
		return
	}
	c.items = append(c.items, d)
}

func (c *dataObjects) RemoveDataObject(d *DataObject) {
	for i, item := range c.items {
		if item == d {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *dataObjects) DataObjects() []*DataObject {
	ret := make([]*DataObject, len(c.items))
	copy(ret, c.items)
	return ret
}

func (c *dataObjects) HasDataObject(d *DataObject) bool {
	for _, item := range c.items {
		if item == d {
			return true
		}
	}
	return false
}
