package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/differentialHQ/differential/internal/domain"
	"github.com/differentialHQ/differential/internal/usecase"
)

type seedFile struct {
	Clusters []seedCluster `yaml:"clusters"`
}

type seedCluster struct {
	ID                   string `yaml:"id"`
	Name                 string `yaml:"name"`
	Description          string `yaml:"description"`
	APISecret            string `yaml:"apiSecret"`
	PredictiveRetries    bool   `yaml:"predictiveRetries"`
	AutoRetryStalledJobs *bool  `yaml:"autoRetryStalledJobs"`
}

// seedClusters ensures the clusters listed in the YAML seed file exist.
// Existing clusters are left untouched, so the file is safe to ship in a
// container image and apply on every boot.
func seedClusters(ctx context.Context, path string, svc usecase.ClusterService) error {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cluster seed file not found: %s", path)
		}
		return err
	}

	var doc seedFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("cluster seed yaml parse: %w", err)
	}
	if len(doc.Clusters) == 0 {
		return fmt.Errorf("no clusters to seed in %s", path)
	}

	for _, sc := range doc.Clusters {
		c := domain.Cluster{
			ID:                   sc.ID,
			Name:                 sc.Name,
			Description:          sc.Description,
			AutoRetryStalledJobs: true,
			PredictiveRetries:    sc.PredictiveRetries,
		}
		if sc.AutoRetryStalledJobs != nil {
			c.AutoRetryStalledJobs = *sc.AutoRetryStalledJobs
		}
		if err := svc.Ensure(ctx, c, sc.APISecret); err != nil {
			return fmt.Errorf("seed cluster %s: %w", sc.ID, err)
		}
		slog.Info("cluster ensured", slog.String("cluster_id", sc.ID), slog.String("name", sc.Name))
	}
	return nil
}
