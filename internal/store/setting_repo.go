package store

import (
	"context"
	"fmt"
	"log"

	"soundhire/internal/domain"
	"soundhire/internal/pkg/metrics"
	"soundhire/internal/pkg/money"
)

type SettingRepository struct {
	client *Client
}

func NewSettingRepository(client *Client) *SettingRepository {
	return &SettingRepository{client: client}
}

// DJRate reads the DJ daily fee from the single settings row (id=1),
// falling back to the default when the row is missing or the call fails.
func (r *SettingRepository) DJRate(ctx context.Context) float64 {
	var rows []domain.Setting

	resp, err := r.client.http.R().
		SetContext(ctx).
		SetQueryParam("select", "dj_daily_rate").
		SetQueryParam("id", "eq.1").
		SetResult(&rows).
		Get("/settings")
	if err != nil {
		metrics.StoreErrors.WithLabelValues("get_dj_rate").Inc()
		log.Printf("store get_dj_rate failed: %v", err)
		return domain.DefaultDJRate
	}
	if resp.IsError() {
		metrics.StoreErrors.WithLabelValues("get_dj_rate").Inc()
		log.Printf("store get_dj_rate failed: status=%d body=%s", resp.StatusCode(), resp.String())
		return domain.DefaultDJRate
	}

	if len(rows) == 0 {
		log.Printf("store get_dj_rate: no settings row, using default %s", money.UGX(domain.DefaultDJRate))
		return domain.DefaultDJRate
	}

	rate := rows[0].DJDailyRate
	log.Printf("store get_dj_rate: %s", money.UGX(rate))
	return rate
}

// SetDJRate upserts the settings row. Used by the seed tool only.
func (r *SettingRepository) SetDJRate(ctx context.Context, rate float64) error {
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates").
		SetBody(domain.Setting{ID: 1, DJDailyRate: rate}).
		Post("/settings")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("store set_dj_rate: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	return nil
}
