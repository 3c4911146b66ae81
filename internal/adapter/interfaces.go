// Package adapter implements outbound integrations with external
// collaborators. The only integration today is the AI analysis service that
// inspects an uploaded image and suggests diary content; it is invoked as a
// black box and its failures never break the calling request.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

// AnalysisAdapter invokes the external AI analysis service for an uploaded
// asset.
type AnalysisAdapter interface {
	// AnalyzeAsset submits the asset bytes for analysis and returns the
	// detected species, action, and generated diary text.
	AnalyzeAsset(ctx context.Context, fileName string, data []byte) (models.AssetAnalysis, error)
}
