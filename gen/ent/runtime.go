// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/daehong-lab/gonggo-pipeline/db/ent/schema"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/image"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/tableraw"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescItemID is the schema descriptor for item_id field.
	attachmentDescItemID := attachmentFields[1].Descriptor()
	// attachment.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attachment.ItemIDValidator = attachmentDescItemID.Validators[0].(func(string) error)
	// attachmentDescRecordID is the schema descriptor for record_id field.
	attachmentDescRecordID := attachmentFields[2].Descriptor()
	// attachment.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	attachment.RecordIDValidator = attachmentDescRecordID.Validators[0].(func(string) error)
	// attachmentDescSourcePath is the schema descriptor for source_path field.
	attachmentDescSourcePath := attachmentFields[3].Descriptor()
	// attachment.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	attachment.SourcePathValidator = attachmentDescSourcePath.Validators[0].(func(string) error)
	// attachmentDescFileExt is the schema descriptor for file_ext field.
	attachmentDescFileExt := attachmentFields[4].Descriptor()
	// attachment.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	attachment.FileExtValidator = attachmentDescFileExt.Validators[0].(func(string) error)
	// attachmentDescContentHash is the schema descriptor for content_hash field.
	attachmentDescContentHash := attachmentFields[5].Descriptor()
	// attachment.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	attachment.ContentHashValidator = attachmentDescContentHash.Validators[0].(func([]byte) error)
	// attachmentDescRole is the schema descriptor for role field.
	attachmentDescRole := attachmentFields[6].Descriptor()
	// attachment.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	attachment.RoleValidator = func() func(string) error {
		validators := attachmentDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attachmentDescIsOcr is the schema descriptor for is_ocr field.
	attachmentDescIsOcr := attachmentFields[8].Descriptor()
	// attachment.DefaultIsOcr holds the default value on creation for the is_ocr field.
	attachment.DefaultIsOcr = attachmentDescIsOcr.Default.(bool)
	// attachmentDescID is the schema descriptor for id field.
	attachmentDescID := attachmentFields[0].Descriptor()
	// attachment.DefaultID holds the default value on creation for the id field.
	attachment.DefaultID = attachmentDescID.Default.(func() uuid.UUID)
	imageFields := schema.Image{}.Fields()
	_ = imageFields
	// imageDescItemID is the schema descriptor for item_id field.
	imageDescItemID := imageFields[1].Descriptor()
	// image.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	image.ItemIDValidator = imageDescItemID.Validators[0].(func(string) error)
	// imageDescRecordID is the schema descriptor for record_id field.
	imageDescRecordID := imageFields[2].Descriptor()
	// image.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	image.RecordIDValidator = imageDescRecordID.Validators[0].(func(string) error)
	// imageDescPath is the schema descriptor for path field.
	imageDescPath := imageFields[3].Descriptor()
	// image.PathValidator is a validator for the "path" field. It is called by the builders before save.
	image.PathValidator = imageDescPath.Validators[0].(func(string) error)
	// imageDescRole is the schema descriptor for role field.
	imageDescRole := imageFields[4].Descriptor()
	// image.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	image.RoleValidator = func() func(string) error {
		validators := imageDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// imageDescID is the schema descriptor for id field.
	imageDescID := imageFields[0].Descriptor()
	// image.DefaultID holds the default value on creation for the id field.
	image.DefaultID = imageDescID.Default.(func() uuid.UUID)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescPlatform is the schema descriptor for platform field.
	itemDescPlatform := itemFields[1].Descriptor()
	// item.PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	item.PlatformValidator = func() func(string) error {
		validators := itemDescPlatform.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(platform string) error {
			for _, fn := range fns {
				if err := fn(platform); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// itemDescTitle is the schema descriptor for title field.
	itemDescTitle := itemFields[2].Descriptor()
	// item.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	item.TitleValidator = itemDescTitle.Validators[0].(func(string) error)
	// itemDescCategory is the schema descriptor for category field.
	itemDescCategory := itemFields[12].Descriptor()
	// item.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	item.CategoryValidator = itemDescCategory.Validators[0].(func(string) error)
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemFields[19].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	// itemDescUpdatedAt is the schema descriptor for updated_at field.
	itemDescUpdatedAt := itemFields[20].Descriptor()
	// item.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	item.DefaultUpdatedAt = itemDescUpdatedAt.Default.(func() time.Time)
	// item.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	item.UpdateDefaultUpdatedAt = itemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// itemDescID is the schema descriptor for id field.
	itemDescID := itemFields[0].Descriptor()
	// item.IDValidator is a validator for the "id" field. It is called by the builders before save.
	item.IDValidator = itemDescID.Validators[0].(func(string) error)
	sourcemapFields := schema.SourceMap{}.Fields()
	_ = sourcemapFields
	// sourcemapDescItemID is the schema descriptor for item_id field.
	sourcemapDescItemID := sourcemapFields[1].Descriptor()
	// sourcemap.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	sourcemap.ItemIDValidator = sourcemapDescItemID.Validators[0].(func(string) error)
	// sourcemapDescRecordID is the schema descriptor for record_id field.
	sourcemapDescRecordID := sourcemapFields[2].Descriptor()
	// sourcemap.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	sourcemap.RecordIDValidator = sourcemapDescRecordID.Validators[0].(func(string) error)
	// sourcemapDescPlatform is the schema descriptor for platform field.
	sourcemapDescPlatform := sourcemapFields[3].Descriptor()
	// sourcemap.PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	sourcemap.PlatformValidator = func() func(string) error {
		validators := sourcemapDescPlatform.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(platform string) error {
			for _, fn := range fns {
				if err := fn(platform); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sourcemapDescID is the schema descriptor for id field.
	sourcemapDescID := sourcemapFields[0].Descriptor()
	// sourcemap.DefaultID holds the default value on creation for the id field.
	sourcemap.DefaultID = sourcemapDescID.Default.(func() uuid.UUID)
	tablerawFields := schema.TableRaw{}.Fields()
	_ = tablerawFields
	// tablerawDescItemID is the schema descriptor for item_id field.
	tablerawDescItemID := tablerawFields[1].Descriptor()
	// tableraw.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	tableraw.ItemIDValidator = tablerawDescItemID.Validators[0].(func(string) error)
	// tablerawDescRecordID is the schema descriptor for record_id field.
	tablerawDescRecordID := tablerawFields[2].Descriptor()
	// tableraw.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	tableraw.RecordIDValidator = tablerawDescRecordID.Validators[0].(func(string) error)
	// tablerawDescPath is the schema descriptor for path field.
	tablerawDescPath := tablerawFields[3].Descriptor()
	// tableraw.PathValidator is a validator for the "path" field. It is called by the builders before save.
	tableraw.PathValidator = tablerawDescPath.Validators[0].(func(string) error)
	// tablerawDescFormat is the schema descriptor for format field.
	tablerawDescFormat := tablerawFields[4].Descriptor()
	// tableraw.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	tableraw.FormatValidator = func() func(string) error {
		validators := tablerawDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tablerawDescID is the schema descriptor for id field.
	tablerawDescID := tablerawFields[0].Descriptor()
	// tableraw.DefaultID holds the default value on creation for the id field.
	tableraw.DefaultID = tablerawDescID.Default.(func() uuid.UUID)
	unitFields := schema.Unit{}.Fields()
	_ = unitFields
	// unitDescItemID is the schema descriptor for item_id field.
	unitDescItemID := unitFields[1].Descriptor()
	// unit.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	unit.ItemIDValidator = unitDescItemID.Validators[0].(func(string) error)
	// unitDescUnitType is the schema descriptor for unit_type field.
	unitDescUnitType := unitFields[2].Descriptor()
	// unit.UnitTypeValidator is a validator for the "unit_type" field. It is called by the builders before save.
	unit.UnitTypeValidator = unitDescUnitType.Validators[0].(func(string) error)
	// unitDescSupply is the schema descriptor for supply field.
	unitDescSupply := unitFields[6].Descriptor()
	// unit.SupplyValidator is a validator for the "supply" field. It is called by the builders before save.
	unit.SupplyValidator = unitDescSupply.Validators[0].(func(int) error)
	// unitDescID is the schema descriptor for id field.
	unitDescID := unitFields[0].Descriptor()
	// unit.DefaultID holds the default value on creation for the id field.
	unit.DefaultID = unitDescID.Default.(func() uuid.UUID)
}
