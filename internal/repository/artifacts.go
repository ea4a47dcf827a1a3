package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/daehong-lab/gonggo-pipeline/gen/ent"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/image"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/tableraw"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

// ArtifactRepository upserts the file-level entities following an item:
// units, attachments, images and raw tables. Each has a logical key, so
// re-running the batch on the same input rewrites rows in place.
type ArtifactRepository interface {
	UpsertUnits(ctx context.Context, units []entity.Unit) error
	UpsertAttachment(ctx context.Context, a *entity.Attachment) error
	UpsertImage(ctx context.Context, img *entity.Image) error
	UpsertTable(ctx context.Context, t *entity.TableRaw) error
	CountAttachments(ctx context.Context, itemID string) (int, error)
}

type artifactRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewArtifactRepository(client *ent.Client, logger *slog.Logger) ArtifactRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &artifactRepo{client: client, logger: logger}
}

func (r *artifactRepo) UpsertUnits(ctx context.Context, units []entity.Unit) error {
	for i := range units {
		u := &units[i]
		err := r.client.Unit.Create().
			SetID(u.ID).
			SetItemID(u.ItemID).
			SetUnitType(u.UnitType).
			SetNillableDepositKrw(u.DepositKRW).
			SetNillableRentKrw(u.RentKRW).
			SetNillableAreaM2(u.AreaM2).
			SetNillableSupply(u.Supply).
			OnConflict(
				entsql.ConflictColumns(unit.FieldItemID, unit.FieldUnitType),
				entsql.ResolveWithNewValues(),
				entsql.ResolveWith(func(us *entsql.UpdateSet) {
					us.SetIgnore(unit.FieldID)
				}),
			).
			Exec(ctx)
		if err != nil {
			r.logger.Error("failed to upsert unit", "item_id", u.ItemID, "unit_type", u.UnitType, "error", err)
			return err
		}
	}
	return nil
}

func (r *artifactRepo) UpsertAttachment(ctx context.Context, a *entity.Attachment) error {
	err := r.client.Attachment.Create().
		SetID(a.ID).
		SetItemID(a.ItemID).
		SetRecordID(a.RecordID).
		SetSourcePath(a.SourcePath).
		SetFileExt(a.FileExt).
		SetContentHash(a.ContentHash).
		SetRole(string(a.Role)).
		SetNillableTextPath(a.TextPath).
		SetIsOcr(a.IsOCR).
		OnConflict(
			entsql.ConflictColumns(attachment.FieldItemID, attachment.FieldContentHash),
			entsql.ResolveWithNewValues(),
			entsql.ResolveWith(func(us *entsql.UpdateSet) {
				us.SetIgnore(attachment.FieldID)
			}),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert attachment", "item_id", a.ItemID, "path", a.SourcePath, "error", err)
	}
	return err
}

func (r *artifactRepo) UpsertImage(ctx context.Context, img *entity.Image) error {
	err := r.client.Image.Create().
		SetID(img.ID).
		SetItemID(img.ItemID).
		SetRecordID(img.RecordID).
		SetPath(img.Path).
		SetRole(string(img.Role)).
		OnConflict(
			entsql.ConflictColumns(image.FieldItemID, image.FieldPath),
			entsql.ResolveWithNewValues(),
			entsql.ResolveWith(func(us *entsql.UpdateSet) {
				us.SetIgnore(image.FieldID)
			}),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert image", "item_id", img.ItemID, "path", img.Path, "error", err)
	}
	return err
}

func (r *artifactRepo) UpsertTable(ctx context.Context, t *entity.TableRaw) error {
	err := r.client.TableRaw.Create().
		SetID(t.ID).
		SetItemID(t.ItemID).
		SetRecordID(t.RecordID).
		SetPath(t.Path).
		SetFormat(t.Format).
		OnConflict(
			entsql.ConflictColumns(tableraw.FieldItemID, tableraw.FieldPath),
			entsql.ResolveWithNewValues(),
			entsql.ResolveWith(func(us *entsql.UpdateSet) {
				us.SetIgnore(tableraw.FieldID)
			}),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert table", "item_id", t.ItemID, "path", t.Path, "error", err)
	}
	return err
}

func (r *artifactRepo) CountAttachments(ctx context.Context, itemID string) (int, error) {
	return r.client.Attachment.Query().
		Where(attachment.ItemID(itemID)).
		Count(ctx)
}
