// Package routes builds the gin engine serving the Blogly pages.
package routes

import (
	"net/http"

	"blogly/config"
	"blogly/handlers"
	"blogly/helper"
	"blogly/middleware"
	"blogly/repositories"
	"blogly/services"
	"blogly/views"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg config.Config) (*gin.Engine, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	httpHelper, err := helper.NewHTTPHelper(helper.NewFlashStore(cfg.SecretKey, cfg.FlashTTL))
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, userRepo, tagRepo)
	tagService := services.NewTagService(tagRepo, postRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	postHandler := handlers.NewPostHandler(postService, userService, tagService, httpHelper, cfg.RecentPostsLimit)
	tagHandler := handlers.NewTagHandler(tagService, postService, httpHelper)

	router := gin.New()
	router.HTMLRender = renderer
	router.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	pages := router.Group("/")
	pages.Use(middleware.NoStore())
	{
		pages.GET("", postHandler.Home)

		users := pages.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/new", userHandler.NewUserForm)
			users.POST("/new", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/edit", userHandler.EditUserForm)
			users.POST("/:id/edit", userHandler.UpdateUser)
			users.POST("/:id/delete", userHandler.DeleteUser)
			users.GET("/:id/posts/new", postHandler.NewPostForm)
			users.POST("/:id/posts/new", postHandler.CreatePost)
		}

		posts := pages.Group("/posts")
		{
			posts.GET("/:id", postHandler.GetPost)
			posts.GET("/:id/edit", postHandler.EditPostForm)
			posts.POST("/:id/edit", postHandler.UpdatePost)
			posts.POST("/:id/delete", postHandler.DeletePost)
		}

		tags := pages.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.GET("/new", tagHandler.NewTagForm)
			tags.POST("/new", tagHandler.CreateTag)
			tags.GET("/:id", tagHandler.GetTag)
			tags.GET("/:id/edit", tagHandler.EditTagForm)
			tags.POST("/:id/edit", tagHandler.UpdateTag)
			tags.POST("/:id/delete", tagHandler.DeleteTag)
		}
	}

	router.NoRoute(middleware.NoStore(), httpHelper.SendNotFound)

	return router, nil
}
