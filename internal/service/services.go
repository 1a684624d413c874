package service

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/repository"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/validation"
)

// Dependencies are the collaborators shared by every resource service.
type Dependencies struct {
	Validator *validation.Validator
	Cache     *CacheService
	Metrics   *MetricsService
	Logger    *zap.Logger
}

// Services groups the campus resource services.
type Services struct {
	Attendance *ResourceService[models.Attendance, *models.Attendance]
	Course     *ResourceService[models.Course, *models.Course]
	Department *ResourceService[models.Department, *models.Department]
	Enrollment *ResourceService[models.Enrollment, *models.Enrollment]
	Faculty    *ResourceService[models.Faculty, *models.Faculty]
	Grade      *ResourceService[models.Grade, *models.Grade]
	Leave      *ResourceService[models.Leave, *models.Leave]
	Schedule   *ResourceService[models.Schedule, *models.Schedule]
	Student    *ResourceService[models.Student, *models.Student]
	Subject    *ResourceService[models.Subject, *models.Subject]
}

// NewServices builds every resource service on top of SQL repositories.
func NewServices(db *sqlx.DB, deps Dependencies) *Services {
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	return &Services{
		Attendance: sqlService[models.Attendance](db, repository.AttendanceTable, AttendanceResource, deps),
		Course:     sqlService[models.Course](db, repository.CourseTable, CourseResource, deps),
		Department: sqlService[models.Department](db, repository.DepartmentTable, DepartmentResource, deps),
		Enrollment: sqlService[models.Enrollment](db, repository.EnrollmentTable, EnrollmentResource, deps),
		Faculty:    sqlService[models.Faculty](db, repository.FacultyTable, FacultyResource, deps),
		Grade:      sqlService[models.Grade](db, repository.GradeTable, GradeResource, deps),
		Leave:      sqlService[models.Leave](db, repository.LeaveTable, LeaveResource, deps),
		Schedule:   sqlService[models.Schedule](db, repository.ScheduleTable, ScheduleResource, deps),
		Student:    sqlService[models.Student](db, repository.StudentTable, StudentResource, deps),
		Subject:    sqlService[models.Subject](db, repository.SubjectTable, SubjectResource, deps),
	}
}

func sqlService[T any, PT models.Record[T]](db *sqlx.DB, table repository.Table, resource Resource, deps Dependencies) *ResourceService[T, PT] {
	store := repository.NewDocumentRepository[T, PT](db, table)
	return NewResourceService[T, PT](resource, store, deps.Validator, deps.Cache, deps.Metrics, deps.Logger)
}
