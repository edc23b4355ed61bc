package handlers

import "github.com/gofiber/fiber/v2"

func SetupRoutes(router fiber.Router, registerHandler *RegisterHandler, loginHandler *LoginHandler) {
	router.Get("/", loginHandler.GetHome)
	router.Get("/register", registerHandler.GetRegister)
	router.Post("/register", registerHandler.PostRegister)
	router.Get("/login", loginHandler.GetLogin)
	router.Post("/login", loginHandler.PostLogin)
	router.Post("/logout", loginHandler.PostLogout)
}
