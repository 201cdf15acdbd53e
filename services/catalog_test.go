package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadnavaid07/artstay-backend-asad/catalog"
	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

func TestSyncCraftCatalogIdempotent(t *testing.T) {
	db := newTestDB(t)

	cats := []catalog.CraftCategory{
		{Name: "Weaving", SubCrafts: []string{"Pashmina", "Kani"}},
		{Name: "Wood Work", SubCrafts: []string{"Walnut Carving"}},
	}
	require.NoError(t, SyncCraftCatalog(db, cats))

	var crafts, subs int64
	require.NoError(t, db.Model(&entity.Craft{}).Count(&crafts).Error)
	require.NoError(t, db.Model(&entity.SubCraft{}).Count(&subs).Error)
	assert.Equal(t, int64(2), crafts)
	assert.Equal(t, int64(3), subs)

	var before []entity.Craft
	require.NoError(t, db.Order("id").Find(&before).Error)

	require.NoError(t, SyncCraftCatalog(db, cats))

	require.NoError(t, db.Model(&entity.Craft{}).Count(&crafts).Error)
	require.NoError(t, db.Model(&entity.SubCraft{}).Count(&subs).Error)
	assert.Equal(t, int64(2), crafts)
	assert.Equal(t, int64(3), subs)

	var after []entity.Craft
	require.NoError(t, db.Order("id").Find(&after).Error)
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID, "re-sync must keep existing ids stable")
	}
}

func TestSyncCraftCatalogPrunesRemoved(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SyncCraftCatalog(db, []catalog.CraftCategory{
		{Name: "Weaving", SubCrafts: []string{"Pashmina", "Kani"}},
		{Name: "Metal Work", SubCrafts: []string{"Copperware"}},
	}))

	require.NoError(t, SyncCraftCatalog(db, []catalog.CraftCategory{
		{Name: "Weaving", SubCrafts: []string{"Pashmina"}},
	}))

	var crafts []entity.Craft
	require.NoError(t, db.Find(&crafts).Error)
	require.Len(t, crafts, 1)
	assert.Equal(t, "Weaving", crafts[0].CraftName)

	var subs []entity.SubCraft
	require.NoError(t, db.Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.Equal(t, "Pashmina", subs[0].SubCraftName)
}

func TestSyncCraftCatalogRenamesBySlug(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SyncCraftCatalog(db, []catalog.CraftCategory{
		{Name: "papier mache", SubCrafts: nil},
	}))
	var craft entity.Craft
	require.NoError(t, db.First(&craft).Error)
	original := craft.ID

	// Same slug, different display casing: the row is updated, not replaced.
	require.NoError(t, SyncCraftCatalog(db, []catalog.CraftCategory{
		{Name: "Papier Mache", SubCrafts: nil},
	}))
	require.NoError(t, db.First(&craft).Error)
	assert.Equal(t, original, craft.ID)
	assert.Equal(t, "Papier Mache", craft.CraftName)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "wood-work", catalog.Slugify("Wood Work"))
	assert.Equal(t, "papier-mache", catalog.Slugify("  Papier   Mache "))
	assert.Equal(t, "kani-shawl", catalog.Slugify("Kani/Shawl"))
}
