package store

import (
	"context"
	"fmt"
	"log"

	"soundhire/internal/domain"
	"soundhire/internal/pkg/metrics"
)

type PackageRepository struct {
	client *Client
}

func NewPackageRepository(client *Client) *PackageRepository {
	return &PackageRepository{client: client}
}

// FetchAll returns every offered package sorted by daily rate ascending,
// or an empty slice when the store call fails.
func (r *PackageRepository) FetchAll(ctx context.Context) []domain.Package {
	var packages []domain.Package

	resp, err := r.client.http.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "daily_rate.asc").
		SetResult(&packages).
		Get("/packages")
	if err != nil {
		metrics.StoreErrors.WithLabelValues("fetch_packages").Inc()
		log.Printf("store fetch_packages failed: %v", err)
		return nil
	}
	if resp.IsError() {
		metrics.StoreErrors.WithLabelValues("fetch_packages").Inc()
		log.Printf("store fetch_packages failed: status=%d body=%s", resp.StatusCode(), resp.String())
		return nil
	}

	if len(packages) == 0 {
		log.Print("store fetch_packages: no packages found")
		return nil
	}

	log.Printf("store fetch_packages: fetched %d packages", len(packages))
	return packages
}

// Upsert writes packages into the store, merging on conflicting ids.
// Used by the seed tool only.
func (r *PackageRepository) Upsert(ctx context.Context, packages []domain.Package) error {
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates").
		SetBody(packages).
		Post("/packages")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("store upsert_packages: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	return nil
}
