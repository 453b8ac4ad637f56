package vuemap

import (
	"path"
	"strings"

	"github.com/vuegraph/vuegraph/engine/domain"
	"github.com/vuegraph/vuegraph/pkg/fn"
)

// Extract walks the raw tree and builds the graph model: all node elements
// first (depth first, document order), then all link elements. Extraction
// is atomic; any schema violation aborts with no partial model.
func Extract(raw *RawMap) (*domain.GraphModel, error) {
	var nodes []domain.MapNode
	collectNodes(raw.Children, "", &nodes)

	var links []domain.MapLink
	if err := collectLinks(raw.Children, &links); err != nil {
		return nil, err
	}

	m := domain.NewGraphModel(cleanLabel(raw.Label), nodes, links)
	if err := domain.ValidateModel(m); err != nil {
		return nil, err
	}
	return m, nil
}

func collectNodes(children []Child, parent string, out *[]domain.MapNode) {
	for i := range children {
		c := &children[i]
		if c.Type != TypeNode {
			continue
		}
		id := strings.TrimSpace(c.ID)
		*out = append(*out, domain.MapNode{
			ID:       id,
			Title:    cleanLabel(c.Label),
			Resource: classifyResource(c.Resource),
			Metadata: nodeMetadata(c, parent),
		})
		collectNodes(c.Children, id, out)
	}
}

func collectLinks(children []Child, out *[]domain.MapLink) error {
	for i := range children {
		c := &children[i]
		switch c.Type {
		case TypeNode:
			if err := collectLinks(c.Children, out); err != nil {
				return err
			}
		case TypeLink:
			l, err := linkFromChild(c)
			if err != nil {
				return err
			}
			*out = append(*out, l)
		}
	}
	return nil
}

func linkFromChild(c *Child) (domain.MapLink, error) {
	id := strings.TrimSpace(c.ID)
	if c.ID1 == nil || c.ID2 == nil {
		return domain.MapLink{}, domain.NewSchemaError("link", id, "missing endpoint reference")
	}
	if c.ID1.Type == TypeLink || c.ID2.Type == TypeLink {
		return domain.MapLink{}, domain.NewSchemaError("link", id, "endpoint references a link, not a node")
	}

	src := strings.TrimSpace(c.ID1.Ref)
	dst := strings.TrimSpace(c.ID2.Ref)
	directed := false
	switch strings.TrimSpace(c.ArrowState) {
	case "1":
		// Arrow at the first endpoint: the relationship points the other way.
		src, dst = dst, src
		directed = true
	case "2", "3":
		directed = true
	}

	return domain.MapLink{
		SourceID: src,
		TargetID: dst,
		Label:    cleanLabel(c.Label),
		Directed: directed,
	}, nil
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".svg": true, ".tiff": true,
}

// classifyResource maps a node's attached resource onto the model's
// resource types. Nodes without a resource are plain text concepts.
func classifyResource(r *Resource) domain.ResourceType {
	if r == nil {
		return domain.ResourceText
	}
	spec := strings.ToLower(strings.TrimSpace(r.Spec))
	typ := r.TypeAttr()

	if imageExts[path.Ext(spec)] || imageExts[path.Ext(strings.ToLower(r.Title))] ||
		strings.Contains(strings.ToLower(typ), "image") {
		return domain.ResourceImage
	}
	if r.Property("URL") != "" || strings.Contains(typ, "URL") ||
		strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://") {
		return domain.ResourceLink
	}
	return domain.ResourceUnsupported
}

func nodeMetadata(c *Child, parent string) map[string]string {
	md := make(map[string]string)
	if c.X != "" {
		md["x"] = c.X
	}
	if c.Y != "" {
		md["y"] = c.Y
	}
	if c.LayerID != "" {
		md["layer"] = c.LayerID
	}
	if parent != "" {
		md["parent"] = parent
	}
	if kw := keywords(c.Metadata); kw != "" {
		md["keywords"] = kw
	}
	if len(md) == 0 {
		return nil
	}
	return md
}

// keywords joins the user-keyword metadata entries; VUE-internal entry
// kinds are skipped.
func keywords(ml *MetadataList) string {
	if ml == nil {
		return ""
	}
	kws := fn.FilterMap(ml.Entries, func(m Meta) (string, bool) {
		v := strings.TrimSpace(m.V)
		return v, m.T == "1" && v != ""
	})
	return strings.Join(kws, ", ")
}

var labelNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func cleanLabel(s string) string {
	return strings.TrimSpace(labelNewlines.Replace(s))
}
