// internals/features/cms/blog/route/blog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blogController "panditku_backend/internals/features/cms/blog/controller"
)

func PublicBlogRoutes(public fiber.Router, db *gorm.DB) {
	posts := blogController.NewBlogPostController(db)
	cats := blogController.NewBlogCategoryController(db)

	public.Get("/blog", posts.ListPosts(true))
	public.Get("/blog/categories", cats.ListCategories)
	public.Get("/blog/:slug", posts.GetPublishedPost)
}

func AdminBlogRoutes(admin fiber.Router, db *gorm.DB) {
	posts := blogController.NewBlogPostController(db)
	cats := blogController.NewBlogCategoryController(db)

	blog := admin.Group("/blog")
	blog.Get("/", posts.ListPosts(false))
	blog.Post("/", posts.CreatePost)

	categories := blog.Group("/categories")
	categories.Get("/", cats.ListCategories)
	categories.Post("/", cats.CreateCategory)
	categories.Put("/:id", cats.UpdateCategory)
	categories.Delete("/:id", cats.DeleteCategory)

	blog.Get("/:id", posts.GetPost)
	blog.Put("/:id", posts.UpdatePost)
	blog.Delete("/:id", posts.DeletePost)
}
