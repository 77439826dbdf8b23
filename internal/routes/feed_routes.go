package routes

import (
	"feed-api/internal/controllers"
	"feed-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesFeed(app *fiber.App, svc controllers.FeedService, up *controllers.Uploader) {
	feed := app.Group("/feed")
	feed.Use(middleware.RequireCaller())

	feed.Get("/posts", controllers.GetPostsHandler(svc))
	feed.Post("/post", controllers.CreatePostHandler(svc, up))
	feed.Get("/post/:postId", controllers.GetPostHandler(svc))
	feed.Put("/post/:postId", controllers.UpdatePostHandler(svc, up))
	feed.Delete("/post/:postId", controllers.DeletePostHandler(svc))
}
