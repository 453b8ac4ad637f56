// Package vuemap reads VUE concept-map files and extracts their nodes and
// links into the domain model.
package vuemap

import "encoding/xml"

// xsiNS is the XML Schema instance namespace VUE uses to type its elements.
const xsiNS = "http://www.w3.org/2001/XMLSchema-instance"

// VUE child element types.
const (
	TypeNode = "node"
	TypeLink = "link"
)

// RawMap is the decoded LW-MAP document: the map label plus its ordered
// child elements (nodes and links, in document order).
type RawMap struct {
	XMLName  xml.Name `xml:"LW-MAP"`
	ID       string   `xml:"ID,attr"`
	Label    string   `xml:"label,attr"`
	Children []Child  `xml:"child"`
}

// Child is one map element. VUE types children through the XML Schema
// instance type attribute; grouped nodes nest further child elements.
type Child struct {
	Type       string        `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	ID         string        `xml:"ID,attr"`
	Label      string        `xml:"label,attr"`
	LayerID    string        `xml:"layerID,attr"`
	ArrowState string        `xml:"arrowState,attr"`
	X          string        `xml:"x,attr"`
	Y          string        `xml:"y,attr"`
	Resource   *Resource     `xml:"resource"`
	Metadata   *MetadataList `xml:"metadata-list"`
	ID1        *Endpoint     `xml:"ID1"`
	ID2        *Endpoint     `xml:"ID2"`
	Children   []Child       `xml:"child"`
}

// Resource is a resource attached to a node: a URL, file, or image
// reference. VUE writes both a legacy type attribute and an XML Schema
// instance type on the same element, so the type attributes are kept raw
// and read through TypeAttr.
type Resource struct {
	Spec       string     `xml:"spec,attr"`
	Attrs      []xml.Attr `xml:",any,attr"`
	Title      string     `xml:"title"`
	Properties []Property `xml:"property"`
}

// TypeAttr returns the resource's declared type, preferring the XML Schema
// instance type over the legacy attribute.
func (r *Resource) TypeAttr() string {
	legacy := ""
	for _, a := range r.Attrs {
		if a.Name.Local != "type" {
			continue
		}
		if a.Name.Space == xsiNS {
			return a.Value
		}
		legacy = a.Value
	}
	return legacy
}

// Property returns the value of the named resource property, or "" when
// absent.
func (r *Resource) Property(key string) string {
	for _, p := range r.Properties {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Property is one key/value pair on a resource.
type Property struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// MetadataList carries the map-authored metadata entries of a node.
type MetadataList struct {
	Entries []Meta `xml:"md"`
}

// Meta is one metadata entry; t selects the kind and v carries the value.
// Kind 1 is a user keyword; other kinds are VUE-internal.
type Meta struct {
	T string `xml:"t,attr"`
	V string `xml:"v,attr"`
}

// Endpoint is a link endpoint reference. The element text carries the
// referenced ID; the type attribute says whether it points at a node or at
// another link.
type Endpoint struct {
	Type string `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	Ref  string `xml:",chardata"`
}
