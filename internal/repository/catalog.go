package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CatalogRepository serves the read-only provider roster and the
// enumeration vocabularies defined by the database enum types.
type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CatalogRepository) ready() error {
	if r.db == nil {
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (r *CatalogRepository) ListProviders(ctx context.Context) ([]*domain.Provider, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	query := `SELECT id, name, type, contact_email, contact_phone, api_endpoint,
					 is_active, created_at, updated_at
			  FROM gs_providers
			  WHERE is_active = true
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Provider
	for rows.Next() {
		var p domain.Provider
		if err = rows.Scan(
			&p.ID, &p.Name, &p.Type, &p.ContactEmail, &p.ContactPhone,
			&p.APIEndpoint, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

// EnumValues reads every enumeration vocabulary from the enum types the
// schema defines, so operational additions need no rebuild.
func (r *CatalogRepository) EnumValues(ctx context.Context) (*domain.EnumValues, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	var (
		values domain.EnumValues
		err    error
	)
	if values.ProviderTypes, err = r.enumRange(ctx, "provider_type"); err != nil {
		return nil, err
	}
	if values.PassTypes, err = r.enumRange(ctx, "pass_type"); err != nil {
		return nil, err
	}
	if values.PurposeTypes, err = r.enumRange(ctx, "purpose_type"); err != nil {
		return nil, err
	}
	if values.RuleTypes, err = r.enumRange(ctx, "booking_rule_type"); err != nil {
		return nil, err
	}
	if values.StatusTypes, err = r.enumRange(ctx, "booking_status"); err != nil {
		return nil, err
	}
	if values.GsStatusTypes, err = r.enumRange(ctx, "gs_status"); err != nil {
		return nil, err
	}

	return &values, nil
}

func (r *CatalogRepository) enumRange(ctx context.Context, enumType string) ([]string, error) {
	query := fmt.Sprintf(`SELECT unnest(enum_range(NULL::%s))`, enumType)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("enum range %s: %w", enumType, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan enum value: %w", err)
		}
		values = append(values, v)
	}

	return values, rows.Err()
}
