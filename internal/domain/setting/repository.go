package setting

import "context"

// Repository persists the site settings singleton. Get returns defaults when
// no row exists yet; Save upserts.
type Repository interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Save(ctx context.Context, settings *SiteSettings) error
}
