package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/catalog"
	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

// SyncCraftCatalog reconciles the Craft/SubCraft tables to the desired
// catalog. Entries are upserted by slug and anything not in the catalog is
// deleted, so repeated runs converge to the same state regardless of what
// the tables held before.
func SyncCraftCatalog(db *gorm.DB, categories []catalog.CraftCategory) error {
	desiredCraftSlugs := make([]string, 0, len(categories))
	desiredCraftIDs := make([]uint, 0, len(categories))

	for _, c := range categories {
		craftSlug := catalog.Slugify(c.Name)
		desiredCraftSlugs = append(desiredCraftSlugs, craftSlug)

		var craft entity.Craft
		err := db.Where("craft_slug = ?", craftSlug).First(&craft).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			craft = entity.Craft{CraftName: c.Name, CraftSlug: craftSlug}
			if err := db.Create(&craft).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else if craft.CraftName != c.Name {
			craft.CraftName = c.Name
			if err := db.Save(&craft).Error; err != nil {
				return err
			}
		}

		desiredCraftIDs = append(desiredCraftIDs, craft.ID)

		desiredSubSlugs := make([]string, 0, len(c.SubCrafts))
		for _, subName := range c.SubCrafts {
			subSlug := craftSlug + "-" + catalog.Slugify(subName)
			desiredSubSlugs = append(desiredSubSlugs, subSlug)

			var sub entity.SubCraft
			err := db.Where("sub_craft_slug = ?", subSlug).First(&sub).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sub = entity.SubCraft{
					CraftID:      craft.ID,
					SubCraftName: subName,
					SubCraftSlug: subSlug,
				}
				if err := db.Create(&sub).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			if sub.SubCraftName != subName || sub.CraftID != craft.ID {
				sub.SubCraftName = subName
				sub.CraftID = craft.ID
				if err := db.Save(&sub).Error; err != nil {
					return err
				}
			}
		}

		// Prune subcrafts this craft no longer carries.
		prune := db.Where("craft_id = ?", craft.ID)
		if len(desiredSubSlugs) > 0 {
			prune = prune.Where("sub_craft_slug NOT IN ?", desiredSubSlugs)
		}
		if err := prune.Unscoped().Delete(&entity.SubCraft{}).Error; err != nil {
			return err
		}
	}

	// Prune subcrafts whose craft is being removed, then the crafts
	// themselves. Done explicitly rather than leaning on cascade rules.
	subPrune := db.Session(&gorm.Session{})
	craftPrune := db.Session(&gorm.Session{})
	if len(desiredCraftIDs) > 0 {
		subPrune = subPrune.Where("craft_id NOT IN ?", desiredCraftIDs)
		craftPrune = craftPrune.Where("craft_slug NOT IN ?", desiredCraftSlugs)
	} else {
		subPrune = subPrune.Where("1 = 1")
		craftPrune = craftPrune.Where("1 = 1")
	}
	if err := subPrune.Unscoped().Delete(&entity.SubCraft{}).Error; err != nil {
		return err
	}
	return craftPrune.Unscoped().Delete(&entity.Craft{}).Error
}
