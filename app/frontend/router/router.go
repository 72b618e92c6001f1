package router

import (
	"github.com/gin-gonic/gin"

	"sanmei/app/frontend/controller/sanmei"
	"sanmei/interceptor"
)

func Load(r *gin.RouterGroup) {
	sanmeiGroup := r.Group("/sanmei", interceptor.LoggerMiddleware())

	sanmeiGroup.GET("/destiny", sanmei.Destiny)
	sanmeiGroup.GET("/compatibility", sanmei.Compatibility)
	sanmeiGroup.GET("/share", sanmei.Share)
	sanmeiGroup.GET("/share/compatibility", sanmei.ShareCompatibility)
	sanmeiGroup.GET("/catalog", sanmei.Catalog)
	sanmeiGroup.GET("/solar_terms", sanmei.SolarTerms)
}
