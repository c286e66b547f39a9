package repo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaiso/superheroes/internal/domain"
)

// openTestDB открывает чистую SQLite базу во временном каталоге.
func openTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, Options{URI: "sqlite:///" + filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, AutoMigrate(ctx, db))
	return db
}

func seedHeroAndPower(t *testing.T, db *DB) (*domain.Hero, *domain.Power) {
	t.Helper()
	ctx := context.Background()

	hero := &domain.Hero{Name: "Kamala Khan", SuperName: "Ms. Marvel"}
	require.NoError(t, NewHeroRepo(db).Create(ctx, hero))

	power := &domain.Power{Name: "elasticity", Description: "can stretch the human body to extreme lengths"}
	require.NoError(t, NewPowerRepo(db).Create(ctx, power))

	return hero, power
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "app.db?_pragma=foreign_keys(1)", sqliteDSN("sqlite:///app.db"))
	assert.Equal(t, "/tmp/x.db?_pragma=foreign_keys(1)", sqliteDSN("sqlite:////tmp/x.db"))
	assert.Equal(t, "x.db?mode=rwc&_pragma=foreign_keys(1)", sqliteDSN("x.db?mode=rwc"))
	assert.Equal(t, "x.db?_pragma=foreign_keys(0)", sqliteDSN("x.db?_pragma=foreign_keys(0)"))
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, isPostgres("postgres://u:p@localhost/db"))
	assert.True(t, isPostgres("postgresql://u:p@localhost/db"))
	assert.False(t, isPostgres("sqlite:///app.db"))
	assert.False(t, isPostgres("app.db"))
}

func TestOpen_Ping(t *testing.T) {
	db := openTestDB(t)
	assert.Equal(t, "sqlite", db.Dialect)
	assert.NoError(t, db.Ping(context.Background()))
}

func TestHeroRepo(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	heroes := NewHeroRepo(db)

	first := &domain.Hero{Name: "Doreen Green", SuperName: "Squirrel Girl"}
	second := &domain.Hero{Name: "Gwen Stacy", SuperName: "Spider-Gwen"}
	require.NoError(t, heroes.Create(ctx, first))
	require.NoError(t, heroes.Create(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	got, err := heroes.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doreen Green", got.Name)
	assert.Equal(t, "Squirrel Girl", got.SuperName)
	assert.Empty(t, got.HeroPowers)

	list, err := heroes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	_, err = heroes.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHeroRepo_CreateInvalid(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	heroes := NewHeroRepo(db)

	err := heroes.Create(ctx, &domain.Hero{Name: "Nameless"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := heroes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPowerRepo(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	powers := NewPowerRepo(db)

	p := &domain.Power{Name: "flight", Description: "gives the wielder the ability to fly"}
	require.NoError(t, powers.Create(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := powers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Description, got.Description)

	_, err = powers.GetByID(ctx, p.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	err = powers.Create(ctx, &domain.Power{Name: "nap", Description: "sleeps"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := powers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPowerRepo_UpdateDescription(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	powers := NewPowerRepo(db)

	p := &domain.Power{Name: "flight", Description: "gives the wielder the ability to fly"}
	require.NoError(t, powers.Create(ctx, p))

	updated, err := powers.UpdateDescription(ctx, p.ID, "gives the wielder the ability to fly very fast")
	require.NoError(t, err)
	assert.Equal(t, "gives the wielder the ability to fly very fast", updated.Description)
	assert.Equal(t, "flight", updated.Name)

	// Слишком короткое описание откатывается
	_, err = powers.UpdateDescription(ctx, p.ID, "too short")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, "description", verr.Field)

	got, err := powers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "gives the wielder the ability to fly very fast", got.Description)

	_, err = powers.UpdateDescription(ctx, 12345, "gives the wielder the ability to fly")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHeroPowerRepo_CreateAndNesting(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	hero, power := seedHeroAndPower(t, db)

	hp := &domain.HeroPower{Strength: "Strong", HeroID: hero.ID, PowerID: power.ID}
	require.NoError(t, NewHeroPowerRepo(db).Create(ctx, hp))
	assert.NotZero(t, hp.ID)
	require.NotNil(t, hp.Hero)
	require.NotNil(t, hp.Power)
	assert.Equal(t, "Ms. Marvel", hp.Hero.SuperName)
	assert.Equal(t, "elasticity", hp.Power.Name)

	got, err := NewHeroRepo(db).GetByID(ctx, hero.ID)
	require.NoError(t, err)
	require.Len(t, got.HeroPowers, 1)
	assert.Equal(t, "Strong", got.HeroPowers[0].Strength)
	require.NotNil(t, got.HeroPowers[0].Power)
	assert.Equal(t, power.ID, got.HeroPowers[0].Power.ID)

	list, err := NewHeroPowerRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Hero)
	require.NotNil(t, list[0].Power)
	assert.Equal(t, hero.ID, list[0].Hero.ID)
}

func TestHeroPowerRepo_RejectsUnknownReferences(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	hero, power := seedHeroAndPower(t, db)
	hps := NewHeroPowerRepo(db)

	err := hps.Create(ctx, &domain.HeroPower{Strength: "Weak", HeroID: 404, PowerID: power.ID})
	var refErr *ReferenceError
	require.True(t, errors.As(err, &refErr), "expected ReferenceError, got %v", err)
	assert.Equal(t, "Hero", refErr.Entity)
	assert.ErrorIs(t, err, ErrInvalidReference)

	err = hps.Create(ctx, &domain.HeroPower{Strength: "Weak", HeroID: hero.ID, PowerID: 404})
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "Power", refErr.Entity)
	assert.Equal(t, "Power not found", refErr.Error())

	list, err := hps.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
