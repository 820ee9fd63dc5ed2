package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- mock catalog ---

type mockCatalog struct {
	record      CatalogRecord
	err         error
	lookupCalls int
	searchCalls int
}

func (m *mockCatalog) Lookup(_ context.Context, _ string) (CatalogRecord, error) {
	m.lookupCalls++
	return m.record, m.err
}

func (m *mockCatalog) SearchByName(_ context.Context, _ string, _ int) (CatalogRecord, error) {
	m.searchCalls++
	return m.record, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr(v float64) *float64 { return &v }

// --- tests ---

func TestResolveFromCatalog_NilCatalog(t *testing.T) {
	manual := BodyParameters{DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45}

	result := ResolveFromCatalog(context.Background(), manual, "3542519", nil, discardLogger())

	assert.Equal(t, SourceManual, result.Source)
	assert.Equal(t, manual, result.BodyParameters)
}

func TestResolveFromCatalog_CatalogOverridesDiameterAndVelocity(t *testing.T) {
	cat := &mockCatalog{record: CatalogRecord{
		ID:                 "2099942",
		Name:               "99942 Apophis (2004 MN4)",
		DiameterM:          ptr(370),
		DefaultVelocityKmS: ptr(7.42),
	}}
	manual := BodyParameters{DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45}

	result := ResolveFromCatalog(context.Background(), manual, "2099942", cat, discardLogger())

	assert.Equal(t, SourceCatalog, result.Source)
	assert.Equal(t, 370.0, result.DiameterM)
	assert.Equal(t, 7.42, result.VelocityKmS)
	// Density and angle stay manual: catalogs do not publish them.
	assert.Equal(t, 3000.0, result.DensityKgM3)
	assert.Equal(t, 45.0, result.AngleDeg)
	assert.Equal(t, "99942 Apophis (2004 MN4)", result.ObjectName)
	assert.Equal(t, 1, cat.lookupCalls)
}

func TestResolveFromCatalog_MissingFieldsFallBackToManual(t *testing.T) {
	cat := &mockCatalog{record: CatalogRecord{ID: "x", Name: "sparse object"}}
	manual := BodyParameters{DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45}

	result := ResolveFromCatalog(context.Background(), manual, "x", cat, discardLogger())

	assert.Equal(t, SourceCatalog, result.Source)
	assert.Equal(t, 50.0, result.DiameterM)
	assert.Equal(t, 20.0, result.VelocityKmS)
}

func TestResolveFromCatalog_LookupError_GracefulDegradation(t *testing.T) {
	cat := &mockCatalog{err: errors.New("API timeout")}
	manual := BodyParameters{DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45}

	result := ResolveFromCatalog(context.Background(), manual, "bad-id", cat, discardLogger())

	assert.Equal(t, SourceFailed, result.Source)
	assert.Equal(t, manual, result.BodyParameters)
}

func TestResolveFromCatalogByName_Success(t *testing.T) {
	cat := &mockCatalog{record: CatalogRecord{
		ID:                 "2099942",
		Name:               "99942 Apophis (2004 MN4)",
		DiameterM:          ptr(370),
		DefaultVelocityKmS: ptr(7.42),
	}}
	manual := BodyParameters{DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45}

	result := ResolveFromCatalogByName(context.Background(), manual, "Apophis", 5, cat, discardLogger())

	assert.Equal(t, SourceCatalog, result.Source)
	assert.Equal(t, 370.0, result.DiameterM)
	assert.Equal(t, "2099942", result.ObjectID)
	assert.Equal(t, 1, cat.searchCalls)
	assert.Zero(t, cat.lookupCalls)
}

func TestResolveFromCatalogByName_SearchError_GracefulDegradation(t *testing.T) {
	cat := &mockCatalog{err: errors.New("not found")}
	manual := BodyParameters{DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45}

	result := ResolveFromCatalogByName(context.Background(), manual, "Nemesis", 5, cat, discardLogger())

	assert.Equal(t, SourceFailed, result.Source)
	assert.Equal(t, manual, result.BodyParameters)
}

func TestResolveFromCatalogByName_NilCatalog(t *testing.T) {
	manual := BodyParameters{DiameterM: 50, VelocityKmS: 20, DensityKgM3: 3000, AngleDeg: 45}

	result := ResolveFromCatalogByName(context.Background(), manual, "Apophis", 5, nil, discardLogger())

	assert.Equal(t, SourceManual, result.Source)
	assert.Equal(t, manual, result.BodyParameters)
}
