// internals/seeds/seeds.go
package seeds

import (
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	analyticsModel "panditku_backend/internals/features/analytics/model"
	blogModel "panditku_backend/internals/features/cms/blog/model"
	mediaModel "panditku_backend/internals/features/cms/media/model"
	menuModel "panditku_backend/internals/features/cms/menus/model"
	pageModel "panditku_backend/internals/features/cms/pages/model"
	"panditku_backend/internals/features/cms/pages/schema"
	settingModel "panditku_backend/internals/features/cms/settings/model"
	videoModel "panditku_backend/internals/features/cms/videos/model"
	donationModel "panditku_backend/internals/features/donations/model"
	authModel "panditku_backend/internals/features/users/auth/model"
	authService "panditku_backend/internals/features/users/auth/service"
	userModel "panditku_backend/internals/features/users/user/model"
	helper "panditku_backend/internals/helpers"
)

// Run migrates the schema and plants the rows the app assumes exist:
// the owner account, one row per content page, and the starter blog
// categories. Everything is idempotent.
func Run(db *gorm.DB) {
	if err := autoMigrate(db); err != nil {
		log.Printf("[ERROR] ❌ auto-migration failed: %v", err)
		return
	}
	seedOwner(db)
	seedPages(db)
	seedBlogCategories(db)
	log.Println("[INFO] ✅ Seeding complete")
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
		&pageModel.PageModel{},
		&pageModel.PageSectionModel{},
		&mediaModel.MediaFileModel{},
		&videoModel.VideoModel{},
		&blogModel.BlogCategoryModel{},
		&blogModel.BlogPostModel{},
		&menuModel.MenuModel{},
		&menuModel.MenuItemModel{},
		&settingModel.SiteSettingModel{},
		&analyticsModel.PageViewModel{},
		&analyticsModel.ServiceViewModel{},
		&analyticsModel.ReferrerSourceModel{},
		&analyticsModel.UserCookieConsentModel{},
		&donationModel.DonationModel{},
	)
}

// seedOwner creates the bootstrap owner account from OWNER_EMAIL /
// OWNER_PASSWORD. Skipped when either is unset or the user exists.
func seedOwner(db *gorm.DB) {
	email := strings.TrimSpace(os.Getenv("OWNER_EMAIL"))
	password := os.Getenv("OWNER_PASSWORD")
	if email == "" || password == "" {
		log.Println("[INFO] owner seed skipped (OWNER_EMAIL/OWNER_PASSWORD unset)")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] owner seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] owner seed: hash failed: %v", err)
		return
	}
	owner := userModel.UserModel{
		UserName: "Owner",
		Email:    email,
		Password: hashed,
		Role:     "owner",
		IsActive: true,
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Printf("[ERROR] owner seed: %v", err)
		return
	}
	log.Printf("[INFO] ✅ Owner account created for %s", email)
}

var pageTitles = map[string]string{
	schema.PageHome:      "Home",
	schema.PageAbout:     "About",
	schema.PageWhyChoose: "Why Choose Us",
	schema.PageBooks:     "Books",
	schema.PageContact:   "Contact",
	schema.PageCharity:   "Charity",
	schema.PageDakshina:  "Dakshina",
}

func seedPages(db *gorm.DB) {
	for _, key := range schema.PageKeys {
		page := pageModel.PageModel{PageSlug: key, PageTitle: pageTitles[key]}
		err := db.Where(pageModel.PageModel{PageSlug: key}).
			Attrs(page).
			FirstOrCreate(&pageModel.PageModel{}).Error
		if err != nil {
			log.Printf("[ERROR] page seed %q: %v", key, err)
		}
	}
}

func seedBlogCategories(db *gorm.DB) {
	for _, name := range []string{"Festivals", "Rituals", "Teachings"} {
		slug := helper.Slugify(name, 120)
		err := db.Where(blogModel.BlogCategoryModel{BlogCategorySlug: slug}).
			Attrs(blogModel.BlogCategoryModel{BlogCategoryName: name, BlogCategorySlug: slug}).
			FirstOrCreate(&blogModel.BlogCategoryModel{}).Error
		if err != nil {
			log.Printf("[ERROR] blog category seed %q: %v", name, err)
		}
	}
}
