package thredds

import "fmt"

// A ContentType classifies catalog entries for display. It is not an HTTP
// content type.
type ContentType string

const (
	ContentTypeService   ContentType = "application/service"
	ContentTypeDirectory ContentType = "application/directory"
	ContentTypeNetCDF    ContentType = "application/netcdf"
)

// Node holds the attributes common to every catalog entry.
type Node struct {
	Name        string
	ContentType ContentType
	Bytes       *uint64 // nil if the size is unknown
	Modified    string  // opaque timestamp, empty if unknown
}

// newNode reads the common attributes of el. The content type is left for
// the concrete entry to set.
func newNode(el Element) Node {
	return Node{Name: attr(el, "name")}
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node name: %v, content type: %v>", n.Name, n.ContentType)
}
