package repo

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/pkg/paging"
)

// setupTestDB connects to the integration database, or skips the test when
// none is reachable. Override the DSN with PORTAL_TEST_DATABASE_DSN.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("PORTAL_TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=portal password=portal dbname=portal_test port=5432 sslmode=disable"
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Skip("Test database not available, skipping integration tests")
		return nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.PropertyImage{},
		&model.PortfolioProject{},
		&model.ServiceProject{},
		&model.PortfolioImage{},
		&model.Inquiry{},
	)
	require.NoError(t, err)

	return db
}

func cleanupPropertyTables(db *gorm.DB) {
	db.Exec("DELETE FROM inquiries")
	db.Exec("DELETE FROM property_images")
	db.Exec("DELETE FROM properties")
}

func TestPropertyRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	cleanupPropertyTables(db)
	defer cleanupPropertyTables(db)

	repo := NewPropertyRepo(db)
	ctx := context.Background()

	prop := &model.Property{
		Name:     "Sea View Apartment",
		Type:     "apartment",
		Price:    decimal.RequireFromString("120.50"),
		Location: "Mumbai",
		Status:   "available",
		Images: []model.PropertyImage{
			{URL: "https://cdn.example.com/1.jpg"},
			{URL: "https://cdn.example.com/2.jpg"},
		},
	}
	require.NoError(t, repo.Create(ctx, prop))
	require.NotZero(t, prop.ID)

	got, err := repo.Get(ctx, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sea View Apartment", got.Name)
	assert.Len(t, got.Images, 2)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("120.50")))
}

func TestPropertyRepo_ListFiltersAndOrder(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	cleanupPropertyTables(db)
	defer cleanupPropertyTables(db)

	repo := NewPropertyRepo(db)
	ctx := context.Background()

	seed := []model.Property{
		{Name: "A", Type: "plot", Price: decimal.NewFromInt(50), Location: "Pune East", Status: "available"},
		{Name: "B", Type: "apartment", Price: decimal.NewFromInt(80), Location: "pune west", Status: "sold"},
		{Name: "C", Type: "apartment", Price: decimal.NewFromInt(200), Location: "Nashik", Status: "available"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	t.Run("newest first", func(t *testing.T) {
		items, total, err := repo.List(ctx, PropertyFilter{}, paging.Params{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, items, 3)
		assert.Equal(t, "C", items[0].Name)
		assert.Equal(t, "A", items[2].Name)
	})

	t.Run("location match is case-insensitive substring", func(t *testing.T) {
		items, total, err := repo.List(ctx, PropertyFilter{Location: "PUNE"}, paging.Params{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 2)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		min := decimal.NewFromInt(80)
		max := decimal.NewFromInt(200)
		items, total, err := repo.List(ctx, PropertyFilter{MinPrice: &min, MaxPrice: &max}, paging.Params{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 2)
	})

	t.Run("pagination windows do not overlap", func(t *testing.T) {
		first, total, err := repo.List(ctx, PropertyFilter{}, paging.Params{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, first, 2)

		second, _, err := repo.List(ctx, PropertyFilter{}, paging.Params{Page: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.NotEqual(t, first[0].ID, second[0].ID)
		assert.NotEqual(t, first[1].ID, second[0].ID)
	})
}

func TestPropertyRepo_UpdateImageReplacement(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	cleanupPropertyTables(db)
	defer cleanupPropertyTables(db)

	repo := NewPropertyRepo(db)
	ctx := context.Background()

	prop := &model.Property{
		Name:     "Old Name",
		Type:     "plot",
		Price:    decimal.NewFromInt(10),
		Location: "Pune",
		Status:   "available",
		Images:   []model.PropertyImage{{URL: "https://cdn.example.com/old.jpg"}},
	}
	require.NoError(t, repo.Create(ctx, prop))

	t.Run("nil images leaves the collection alone", func(t *testing.T) {
		got, err := repo.Update(ctx, prop.ID, map[string]any{"name": "New Name"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)
		assert.Len(t, got.Images, 1)
	})

	t.Run("a non-nil list replaces everything", func(t *testing.T) {
		got, err := repo.Update(ctx, prop.ID, map[string]any{}, &[]model.PropertyImage{
			{URL: "https://cdn.example.com/a.jpg"},
			{URL: "https://cdn.example.com/b.jpg"},
		})
		require.NoError(t, err)
		assert.Len(t, got.Images, 2)
	})

	t.Run("an empty list clears the collection", func(t *testing.T) {
		got, err := repo.Update(ctx, prop.ID, map[string]any{}, &[]model.PropertyImage{})
		require.NoError(t, err)
		assert.Empty(t, got.Images)
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := repo.Update(ctx, 999999, map[string]any{"name": "x"}, nil)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestPropertyRepo_DeleteDetachesInquiries(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	cleanupPropertyTables(db)
	defer cleanupPropertyTables(db)

	repo := NewPropertyRepo(db)
	ctx := context.Background()

	prop := &model.Property{
		Name:     "Doomed",
		Type:     "plot",
		Price:    decimal.NewFromInt(10),
		Location: "Pune",
		Status:   "available",
		Images:   []model.PropertyImage{{URL: "https://cdn.example.com/x.jpg"}},
	}
	require.NoError(t, repo.Create(ctx, prop))

	inquiry := &model.Inquiry{PropertyID: &prop.ID, Name: "Asha", Phone: "9", Message: "hi"}
	require.NoError(t, db.Create(inquiry).Error)

	require.NoError(t, repo.Delete(ctx, prop.ID))

	_, err := repo.Get(ctx, prop.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var imageCount int64
	require.NoError(t, db.Model(&model.PropertyImage{}).Where("property_id = ?", prop.ID).Count(&imageCount).Error)
	assert.Zero(t, imageCount)

	var kept model.Inquiry
	require.NoError(t, db.First(&kept, inquiry.ID).Error)
	assert.Nil(t, kept.PropertyID)

	assert.ErrorIs(t, repo.Delete(ctx, prop.ID), gorm.ErrRecordNotFound)
}
