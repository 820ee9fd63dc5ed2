package domain

import (
	"context"
	"log/slog"
)

// ParameterSource records where a resolved parameter set came from.
type ParameterSource string

const (
	SourceManual  ParameterSource = "manual"
	SourceCatalog ParameterSource = "catalog"
	SourceFailed  ParameterSource = "failed"
)

// ResolvedParameters is a BodyParameters set annotated with provenance.
type ResolvedParameters struct {
	BodyParameters
	Source     ParameterSource
	ObjectName string
	ObjectID   string
}

// ResolveFromCatalog merges a catalog lookup into manual parameters.
// Density and entry angle always come from the manual set (catalogs do not
// publish them); diameter and velocity come from the catalog when present.
// On lookup failure or a nil catalog the manual parameters are returned
// unchanged with Source set accordingly (graceful degradation).
func ResolveFromCatalog(ctx context.Context, manual BodyParameters, id string, catalog Catalog, logger *slog.Logger) ResolvedParameters {
	if catalog == nil {
		return ResolvedParameters{BodyParameters: manual, Source: SourceManual}
	}

	rec, err := catalog.Lookup(ctx, id)
	if err != nil {
		logger.Warn("catalog lookup failed",
			"object_id", id,
			"error", err,
		)
		return ResolvedParameters{BodyParameters: manual, Source: SourceFailed}
	}

	return mergeRecord(manual, rec)
}

// ResolveFromCatalogByName is ResolveFromCatalog for an exact object name,
// searching at most maxPages catalog pages.
func ResolveFromCatalogByName(ctx context.Context, manual BodyParameters, name string, maxPages int, catalog Catalog, logger *slog.Logger) ResolvedParameters {
	if catalog == nil {
		return ResolvedParameters{BodyParameters: manual, Source: SourceManual}
	}

	rec, err := catalog.SearchByName(ctx, name, maxPages)
	if err != nil {
		logger.Warn("catalog name search failed",
			"object_name", name,
			"error", err,
		)
		return ResolvedParameters{BodyParameters: manual, Source: SourceFailed}
	}

	return mergeRecord(manual, rec)
}

func mergeRecord(manual BodyParameters, rec CatalogRecord) ResolvedParameters {
	resolved := manual
	if rec.DiameterM != nil {
		resolved.DiameterM = *rec.DiameterM
	}
	if rec.DefaultVelocityKmS != nil {
		resolved.VelocityKmS = *rec.DefaultVelocityKmS
	}

	return ResolvedParameters{
		BodyParameters: resolved,
		Source:         SourceCatalog,
		ObjectName:     rec.Name,
		ObjectID:       rec.ID,
	}
}
