package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	registerAccountRoutes(v1, services.Account)
	registerVoucherRoutes(v1, services.Ledger, services.Posting)
	registerReportingRoutes(v1, services.Reporting)
}

// registerCustomValidators wires domain rules into the binding layer. The
// accountname rule rejects empty and purely numeric names, which would
// collide with account codes.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	err := v.RegisterValidation("accountname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" {
			return false
		}
		for _, r := range name {
			if r < '0' || r > '9' {
				return true
			}
		}
		return false
	})
	if err != nil {
		// Routes bound without the name rule would accept bad input; refuse
		// to start instead.
		panic("failed to register accountname validation: " + err.Error())
	}
}
