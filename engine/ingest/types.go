package ingest

import "github.com/vuegraph/vuegraph/engine/domain"

// Exported pairs the model with its export result so the confirm stage
// can compare the two.
type Exported struct {
	Model  *domain.GraphModel
	Result domain.ExportResult
}

// Report is the pipeline's final output for one map file.
type Report struct {
	Stats    domain.Stats        `json:"stats"`
	Result   domain.ExportResult `json:"result"`
	Verified bool                `json:"verified"`
	Checked  bool                `json:"checked"`
}
