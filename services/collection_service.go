package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"

	"barkmap/internal/config"
)

// CollectionService handles PocketBase collection setup and configuration.
type CollectionService struct {
	config *config.Config
}

// NewCollectionService creates a new collection service.
func NewCollectionService(cfg *config.Config) *CollectionService {
	return &CollectionService{config: cfg}
}

// EnsureDogsCollection creates the dogs collection if it doesn't exist.
func (c *CollectionService) EnsureDogsCollection(app core.App) error {
	if _, err := app.FindCollectionByNameOrId("dogs"); err == nil {
		return nil
	}

	collection := core.NewBaseCollection("dogs")
	publicRule := ""
	authRule := `@request.auth.id != ""`

	collection.ListRule = &publicRule
	collection.ViewRule = &publicRule
	collection.CreateRule = &authRule
	collection.UpdateRule = &authRule

	collection.Fields.Add(&core.AutodateField{
		Name:     "created",
		OnCreate: true,
	})
	collection.Fields.Add(&core.TextField{
		Name:     "name",
		Required: true,
	})
	collection.Fields.Add(&core.RelationField{
		Name:         "ownerId",
		CollectionId: "_pb_users_auth_",
		MaxSelect:    1,
		Required:     false,
	})

	if err := app.Save(collection); err != nil {
		return fmt.Errorf("failed to create dogs collection: %w", err)
	}

	log.Info().Msg("created dogs collection")
	return nil
}

// EnsureBusinessRecordsCollection creates the business_records collection if
// it doesn't exist, including one text field per configured indexed zoom
// level used to look up records covering a tile. Business records are
// immutable once created: public listing is allowed, but there is no update
// rule.
func (c *CollectionService) EnsureBusinessRecordsCollection(app core.App) error {
	existing, err := app.FindCollectionByNameOrId("business_records")
	if err == nil {
		return c.ensureTileIndexFields(app, existing)
	}

	collection := core.NewBaseCollection("business_records")
	publicRule := ""
	authRule := `@request.auth.id != ""`

	collection.ListRule = &publicRule
	collection.ViewRule = &publicRule
	collection.CreateRule = &authRule

	collection.Fields.Add(&core.AutodateField{
		Name:     "created",
		OnCreate: true,
	})
	collection.Fields.Add(&core.RelationField{
		Name:         "dogId",
		CollectionId: "", // resolved below, after the dogs collection exists
		MaxSelect:    1,
		Required:     false,
	})
	collection.Fields.Add(&core.SelectField{
		Name:      "businessType",
		Values:    []string{"pee", "poo"},
		MaxSelect: 1,
		Required:  true,
	})
	collection.Fields.Add(&core.NumberField{
		Name:     "longitude",
		Required: true,
	})
	collection.Fields.Add(&core.NumberField{
		Name:     "latitude",
		Required: true,
	})
	collection.Fields.Add(&core.NumberField{
		Name:     "timestamp",
		Required: true,
	})
	for _, z := range c.config.Tile.IndexedZoomLevels {
		collection.Fields.Add(&core.TextField{
			Name:     tileIndexFieldName(z),
			Required: true,
		})
	}

	dogs, err := app.FindCollectionByNameOrId("dogs")
	if err == nil {
		if dogIDField := collection.Fields.GetByName("dogId"); dogIDField != nil {
			if relationField, ok := dogIDField.(*core.RelationField); ok {
				relationField.CollectionId = dogs.Id
			}
		}
	}

	if err := app.Save(collection); err != nil {
		return fmt.Errorf("failed to create business_records collection: %w", err)
	}

	log.Info().Msg("created business_records collection")
	return nil
}

// ensureTileIndexFields adds any configured indexed-zoom tile index field
// missing from an already-existing business_records collection. It does not
// backfill the field on existing records: a record created before a zoom
// level was indexed simply remains invisible to lookups at that zoom until
// recreated.
func (c *CollectionService) ensureTileIndexFields(app core.App, collection *core.Collection) error {
	changed := false
	for _, z := range c.config.Tile.IndexedZoomLevels {
		name := tileIndexFieldName(z)
		if collection.Fields.GetByName(name) != nil {
			continue
		}
		collection.Fields.Add(&core.TextField{Name: name, Required: false})
		changed = true
	}
	if !changed {
		return nil
	}
	if err := app.Save(collection); err != nil {
		return fmt.Errorf("failed to add tile index fields to business_records collection: %w", err)
	}
	log.Info().Msg("added tile index fields to business_records collection")
	return nil
}

func tileIndexFieldName(z int) string {
	return fmt.Sprintf("tileIndexZ%d", z)
}

// EnsureAdminAccount creates or updates the superuser account from
// environment-configured credentials.
func (c *CollectionService) EnsureAdminAccount(app core.App) error {
	if c.config.Admin.Email == "" || c.config.Admin.Password == "" {
		log.Warn().Msg("admin credentials not set - skipping admin account creation")
		return nil
	}

	superusersCol, err := app.FindCachedCollectionByNameOrId(core.CollectionNameSuperusers)
	if err != nil {
		return fmt.Errorf("failed to fetch superusers collection: %w", err)
	}

	superuser, err := app.FindAuthRecordByEmail(superusersCol, c.config.Admin.Email)
	if err != nil {
		superuser = core.NewRecord(superusersCol)
		log.Info().Str("email", c.config.Admin.Email).Msg("creating admin account")
	} else {
		log.Info().Str("email", c.config.Admin.Email).Msg("admin account already exists, updating password")
	}

	superuser.SetEmail(c.config.Admin.Email)
	superuser.SetPassword(c.config.Admin.Password)

	if err := app.Save(superuser); err != nil {
		return fmt.Errorf("failed to save admin user: %w", err)
	}

	log.Info().Str("email", c.config.Admin.Email).Msg("admin account ready")
	return nil
}
