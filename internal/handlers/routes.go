package handlers

import "github.com/gofiber/fiber/v2"

// Register wires the HTTP surface. The delete-all-photos route must be
// registered before the :id routes or Fiber matches it as an id.
func Register(app *fiber.App, ch *ContentHandler, ah *AuthHandler, uh *UploadHandler) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Post("/auth/login", ah.Login)
	app.Post("/auth/logout", ah.Logout)
	app.Get("/auth/check", ah.Check)

	app.Get("/content", ch.List)
	app.Post("/content", ch.Create)
	app.Get("/content/stats", ch.Stats)
	app.Delete("/content/delete-all-photos", ch.DeleteAllPhotos)
	app.Get("/content/:id", ch.Get)
	app.Patch("/content/:id", ch.Update)
	app.Delete("/content/:id", ch.Delete)
	app.Post("/content/:id/view", ch.RecordView)

	if uh != nil {
		app.Post("/upload", uh.Upload)
	}
}
