package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/daehong-lab/gonggo-pipeline/gen/ent"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

type ItemRepository interface {
	// Upsert writes the canonical item keyed by item_id. The key row is
	// immutable; a re-run with identical input leaves the row unchanged
	// apart from updated_at.
	Upsert(ctx context.Context, it *entity.CanonicalItem) error
	Get(ctx context.Context, itemID string) (*ent.Item, error)
	ListByPlatform(ctx context.Context, platform string) ([]*ent.Item, error)
}

type itemRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewItemRepository(client *ent.Client, logger *slog.Logger) ItemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &itemRepo{client: client, logger: logger}
}

func (r *itemRepo) Upsert(ctx context.Context, it *entity.CanonicalItem) error {
	var leftovers json.RawMessage
	if len(it.RawLeftovers) > 0 {
		leftovers, _ = json.Marshal(it.RawLeftovers)
	}

	builder := r.client.Item.Create().
		SetID(it.ItemID).
		SetPlatform(string(it.Platform)).
		SetTitle(it.Title).
		SetAddrRaw(it.AddrRaw).
		SetAddrStd(it.AddrStd).
		SetNillableLat(it.Lat).
		SetNillableLng(it.Lng).
		SetNillableDepositKrw(it.DepositKRW).
		SetNillableRentKrw(it.RentKRW).
		SetNillableAreaM2(it.AreaM2).
		SetNillableApplyStart(it.ApplyStart).
		SetNillableApplyEnd(it.ApplyEnd).
		SetCategory(string(it.Category)).
		SetStatus(it.Status).
		SetListURL(it.ListURL).
		SetDetailURL(it.DetailURL).
		SetFirstSeenAt(it.FirstSeenAt).
		SetLastSeenAt(it.LastSeenAt)
	if leftovers != nil {
		builder = builder.SetRawLeftovers(leftovers)
	}

	// Identity and the first-seen timestamp are frozen on conflict;
	// every other column follows the freshest representative.
	err := builder.
		OnConflict(
			entsql.ConflictColumns(item.FieldID),
			entsql.ResolveWithNewValues(),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetIgnore(item.FieldID)
				u.SetIgnore(item.FieldFirstSeenAt)
				u.SetIgnore(item.FieldCreatedAt)
			}),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert item", "item_id", it.ItemID, "error", err)
		return err
	}
	return nil
}

func (r *itemRepo) Get(ctx context.Context, itemID string) (*ent.Item, error) {
	return r.client.Item.Get(ctx, itemID)
}

func (r *itemRepo) ListByPlatform(ctx context.Context, platform string) ([]*ent.Item, error) {
	return r.client.Item.Query().
		Where(item.Platform(platform)).
		Order(item.ByID()).
		All(ctx)
}
