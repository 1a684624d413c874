package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/service"
)

// Routes is the non-generic view of a ResourceHandler used by the router.
type Routes interface {
	Resource() service.Resource
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Export(c *gin.Context)
}

// NewResourceHandlers builds the handlers of every campus resource.
func NewResourceHandlers(svcs *service.Services, policy StatusPolicy) []Routes {
	return []Routes{
		NewResourceHandler[models.Attendance](svcs.Attendance, policy),
		NewResourceHandler[models.Course](svcs.Course, policy),
		NewResourceHandler[models.Department](svcs.Department, policy),
		NewResourceHandler[models.Enrollment](svcs.Enrollment, policy),
		NewResourceHandler[models.Faculty](svcs.Faculty, policy),
		NewResourceHandler[models.Grade](svcs.Grade, policy),
		NewResourceHandler[models.Leave](svcs.Leave, policy),
		NewResourceHandler[models.Schedule](svcs.Schedule, policy),
		NewResourceHandler[models.Student](svcs.Student, policy),
		NewResourceHandler[models.Subject](svcs.Subject, policy),
	}
}
