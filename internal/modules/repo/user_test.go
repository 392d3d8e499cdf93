package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/brickfolio/property-portal/internal/modules/model"
)

func TestUserRepo(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	db.Exec("DELETE FROM users")
	defer db.Exec("DELETE FROM users")

	repo := NewUserRepo(db)
	ctx := context.Background()

	t.Run("count starts at zero", func(t *testing.T) {
		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	user := &model.User{
		Email:          "admin@brickfolio.com",
		Role:           model.RoleAdmin,
		HashedPassword: "$2a$10$fakefakefakefakefakefake",
	}

	t.Run("create and fetch", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByEmail(ctx, "admin@brickfolio.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, model.RoleAdmin, got.Role)

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "admin@brickfolio.com", byID.Email)
	})

	t.Run("duplicate email surfaces as duplicated key", func(t *testing.T) {
		dup := &model.User{
			Email:          "admin@brickfolio.com",
			Role:           model.RoleStaff,
			HashedPassword: "$2a$10$fakefakefakefakefakefake",
		}
		assert.ErrorIs(t, repo.Create(ctx, dup), gorm.ErrDuplicatedKey)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "ghost@brickfolio.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
