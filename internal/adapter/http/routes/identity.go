package routes

import (
	"eventos_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth       = "/auth"
	PathMe         = "/me"
	PathAffiliates = "/affiliates"
)

func addIdentityRoutes(rg *gin.RouterGroup, authenticated gin.HandlerFunc, authHandler *handlers.AuthHandler, profileHandler *handlers.ProfileHandler, affiliateHandler *handlers.AffiliateHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
		auth.POST("/signout", authenticated, authHandler.SignOut)
		auth.POST("/password-reset", authHandler.RequestPasswordReset)
		auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	}

	me := rg.Group(PathMe, authenticated)
	{
		me.GET("/profile", profileHandler.GetProfile)
		me.PATCH("/profile", profileHandler.UpdateProfile)
		me.GET("/profile/stream", profileHandler.StreamProfile)
	}

	affiliates := rg.Group(PathAffiliates, authenticated)
	{
		affiliates.POST("", affiliateHandler.Register)
		affiliates.GET("/me", affiliateHandler.GetMine)
	}
}
