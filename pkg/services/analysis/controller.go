package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// RecordStore loads the full record table for one resource. Loading must
// complete before the analysis passes run; the engine never reads from the
// store mid-pipeline.
type RecordStore interface {
	LoadRecords(ctx context.Context) ([]domain.ConsumptionRecord, error)
}

// Controller routes analysis requests to per-resource engines and their
// record stores.
type Controller struct {
	registry Registry
	stores   map[string]RecordStore
}

func NewController(registry Registry, stores map[string]RecordStore) (*Controller, error) {
	if len(stores) == 0 {
		return nil, fmt.Errorf("at least one record store must be provided")
	}
	for resource := range stores {
		if _, err := registry.Create(resource); err != nil {
			return nil, fmt.Errorf("no engine for resource %q: %w", resource, err)
		}
	}
	return &Controller{registry: registry, stores: stores}, nil
}

// SupportedResources returns the analyzable resource types in a stable order.
func (c *Controller) SupportedResources() []string {
	resources := make([]string, 0, len(c.stores))
	for resource := range c.stores {
		resources = append(resources, resource)
	}
	sort.Strings(resources)
	return resources
}

func (c *Controller) Analyze(ctx context.Context, resource string) (*domain.AnalysisResult, error) {
	store, engine, err := c.lookup(resource)
	if err != nil {
		return nil, err
	}

	records, err := store.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records: %w", resource, err)
	}

	return engine.Analyze(ctx, records)
}

// Anomalies analyzes the resource and returns its anomalous records sorted by
// value descending.
func (c *Controller) Anomalies(ctx context.Context, resource string) ([]domain.ConsumptionRecord, error) {
	result, err := c.Analyze(ctx, resource)
	if err != nil {
		return nil, err
	}
	return Anomalies(result), nil
}

func (c *Controller) lookup(resource string) (RecordStore, *Engine, error) {
	store, ok := c.stores[resource]
	if !ok {
		return nil, nil, fmt.Errorf("unsupported resource type: %s", resource)
	}
	engine, err := c.registry.Create(resource)
	if err != nil {
		return nil, nil, err
	}
	return store, engine, nil
}
