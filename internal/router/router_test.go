package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/handler"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/service"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/config"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/database"
)

const testSecret = "router-test-secret"

type testServer struct {
	engine *gin.Engine
	token  string
}

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.NewSQLite(config.DatabaseConfig{
		Path: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := database.NewMigrator(db, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, migrator.Up(context.Background()))
	return db
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	return newLoggedTestServer(t, opts, nil)
}

func newLoggedTestServer(t *testing.T, opts Options, logr *zap.Logger) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)
	metrics := service.NewMetricsService()
	services := service.NewServices(db, service.Dependencies{Metrics: metrics, Logger: zap.NewNop()})
	auth := service.NewAuthService(service.AuthConfig{Secret: testSecret, Issuer: "campus-test", Expiration: time.Hour})

	token, _, err := auth.IssueToken("tester", "tester@example.com")
	require.NoError(t, err)

	engine := New(opts, Dependencies{
		Logger:  logr,
		Auth:    auth,
		Metrics: metrics,
		System: handler.NewSystemHandler(metrics, map[string]handler.Pinger{
			"database": db,
		}),
		Resources: handler.NewResourceHandlers(services, handler.PolicyLegacy),
	})
	return &testServer{engine: engine, token: token}
}

func (s *testServer) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func defaultOptions() Options {
	return Options{APIPrefix: "/api", EnableExports: true, EnableMetrics: true}
}

func TestAttendanceLifecycle(t *testing.T) {
	srv := newTestServer(t, defaultOptions())
	body := `{"Attendance_ID":1,"Date":"2024-03-01","Status":"Present"}`

	rec := srv.do(http.MethodPost, "/api/attendance", body, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Attendance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, int64(1), created.AttendanceID)
	assert.Equal(t, models.AttendancePresent, created.Status)

	rec = srv.do(http.MethodPost, "/api/attendance", body, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate key")

	rec = srv.do(http.MethodGet, "/api/attendance/"+created.ID, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.Attendance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.AttendanceID, fetched.AttendanceID)
	assert.True(t, created.Date.Equal(fetched.Date))

	rec = srv.do(http.MethodGet, "/api/attendance", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Attendance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = srv.do(http.MethodPut, "/api/attendance/"+created.ID, `{"Attendance_ID":1,"Date":"2024-03-02","Status":"Late"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Attendance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.AttendanceLate, updated.Status)
	assert.Equal(t, created.ID, updated.ID)

	rec = srv.do(http.MethodDelete, "/api/attendance/"+created.ID, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Attendance record deleted successfully"}`, rec.Body.String())

	rec = srv.do(http.MethodDelete, "/api/attendance/"+created.ID, "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Attendance record not found")
}

func TestInvalidStatusRejected(t *testing.T) {
	srv := newTestServer(t, defaultOptions())

	rec := srv.do(http.MethodPost, "/api/attendance", `{"Attendance_ID":2,"Date":"2024-03-01","Status":"Cancelled"}`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message []string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Status must be either Present, Absent, Late or Excused"}, body.Message)
}

func TestUnknownIDsAnswerNotFound(t *testing.T) {
	srv := newTestServer(t, defaultOptions())

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		rec := srv.do(http.MethodGet, "/api/course/"+id, "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
		assert.Contains(t, rec.Body.String(), "Course not found")

		rec = srv.do(http.MethodPut, "/api/course/"+id, `{"Course_ID":1,"Course_name":"Algebra","Credits":3,"Catalog_no":"M101","Academic_yr":2024}`, true)
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

func TestAuthenticationGate(t *testing.T) {
	srv := newTestServer(t, defaultOptions())

	rec := srv.do(http.MethodGet, "/api/student", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(http.MethodDelete, "/api/student/"+uuid.NewString(), "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(http.MethodGet, "/api/student", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestProtectCreate(t *testing.T) {
	opts := defaultOptions()
	opts.ProtectCreate = true
	srv := newTestServer(t, opts)
	body := `{"Department_ID":1,"Department_Name":"Science","Department_Head":"Dr. Reyes"}`

	rec := srv.do(http.MethodPost, "/api/department", body, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(http.MethodPost, "/api/department", body, true)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestExportRoute(t *testing.T) {
	srv := newTestServer(t, defaultOptions())
	rec := srv.do(http.MethodPost, "/api/department", `{"Department_ID":7,"Department_Name":"Arts","Department_Head":"Ms. Cruz"}`, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(http.MethodGet, "/api/department/export?format=csv", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "department.csv")
	assert.Contains(t, rec.Body.String(), "Department_Name")
	assert.Contains(t, rec.Body.String(), "Arts")

	opts := defaultOptions()
	opts.EnableExports = false
	disabled := newTestServer(t, opts)
	rec = disabled.do(http.MethodGet, "/api/department/export", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, defaultOptions())

	rec := srv.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodGet, "/ready", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)

	srv.do(http.MethodGet, "/api/leaves", "", true)
	rec = srv.do(http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campus_http_requests_total")
}

func TestAccessLogCarriesPrincipal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := newLoggedTestServer(t, defaultOptions(), zap.New(core))

	srv.do(http.MethodGet, "/api/subject", "", true)
	srv.do(http.MethodGet, "/api/subject", "", false)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "tester", entries[0].ContextMap()["user_id"])
	_, found := entries[1].ContextMap()["user_id"]
	assert.False(t, found)
}

type lifecycleCase struct {
	resource service.Resource
	body     string
	dates    []string
	field    string
	value    interface{}
}

func lifecycleCases() []lifecycleCase {
	return []lifecycleCase{
		{
			resource: service.AttendanceResource,
			body:     `{"Attendance_ID":10,"Date":"2024-03-01","Status":"Absent"}`,
			dates:    []string{"Date"},
			field:    "Status",
			value:    "Excused",
		},
		{
			resource: service.CourseResource,
			body:     `{"Course_ID":10,"Course_name":"Computer Science","Credits":3,"Catalog_no":"CS101","Academic_yr":2024}`,
			field:    "Credits",
			value:    4,
		},
		{
			resource: service.DepartmentResource,
			body:     `{"Department_ID":10,"Department_Name":"Engineering","Department_Head":"Dr. Santos"}`,
			field:    "Department_Head",
			value:    "Dr. Lim",
		},
		{
			resource: service.EnrollmentResource,
			body:     `{"Enrollment_ID":10,"Student_ID":1,"Course_ID":1,"EnrollmentDate":"2024-06-15"}`,
			dates:    []string{"EnrollmentDate"},
			field:    "Course_ID",
			value:    2,
		},
		{
			resource: service.FacultyResource,
			body: `{"Faculty_ID":10,"First_Name":"Maria","Last_Name":"Santos","Gender":"Female","Age":41,` +
				`"Email":"maria.santos@example.edu","Contact":"09171234567","Faculty_Role":"Professor",` +
				`"Department_ID":1,"Leave_ID":1,"Attendance_ID":1,"Student_Grade":"A"}`,
			field: "Faculty_Role",
			value: "Dean",
		},
		{
			resource: service.GradeResource,
			body:     `{"Grade_ID":10,"Student_ID":1,"Subj_desc":"Calculus","Units":3,"Credits":3,"Remarks":"Passed"}`,
			field:    "Remarks",
			value:    "With honors",
		},
		{
			resource: service.LeaveResource,
			body:     `{"Leave_ID":10,"Leave_Type":"Sick","Faculty_ID":1,"Date":"2024-04-10","Status":"Pending"}`,
			dates:    []string{"Date"},
			field:    "Status",
			value:    "Approved",
		},
		{
			resource: service.ScheduleResource,
			body: `{"Schedule_ID":10,"Course_ID":1,"Teacher":"Prof. Cruz","Days":"MWF","Class_time":"09:00-10:00",` +
				`"Room":"B201","Lecture":2,"Laboratory":1,"Units":3}`,
			field: "Room",
			value: "C305",
		},
		{
			resource: service.StudentResource,
			body: `{"Student_ID":10,"StudentStatus":"Active","YearLevel":2,"FirstName":"Juan","LastName":"Dela Cruz",` +
				`"Address":"123 Rizal St","Email":"juan@example.edu","Phone":"09171234567","DateOfBirth":"2004-05-20",` +
				`"PlaceOfBirth":"Manila","Sex":"Male","Religion":"Catholic","Nationality":"Filipino","CivilStatus":"Single",` +
				`"Course_ID":1,"Subject_ID":1,"Enrollment_ID":1}`,
			dates: []string{"DateOfBirth"},
			field: "YearLevel",
			value: 3,
		},
		{
			resource: service.SubjectResource,
			body:     `{"Subject_ID":10,"SubjectName":"Physics","SubjectDescription":"Mechanics and waves","Course_ID":1}`,
			field:    "SubjectName",
			value:    "Modern Physics",
		},
	}
}

func decodeObject(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func assertFieldsMatch(t *testing.T, want, got map[string]interface{}, dates []string) {
	t.Helper()
	isDate := make(map[string]bool, len(dates))
	for _, name := range dates {
		isDate[name] = true
	}
	for key, value := range want {
		if isDate[key] {
			assert.True(t, strings.HasPrefix(got[key].(string), value.(string)), "%s: %v", key, got[key])
			continue
		}
		assert.Equal(t, value, got[key], key)
	}
}

func TestResourceLifecycle(t *testing.T) {
	srv := newTestServer(t, defaultOptions())

	for _, tc := range lifecycleCases() {
		tc := tc
		t.Run(tc.resource.Name, func(t *testing.T) {
			base := "/api" + tc.resource.Path
			want := decodeObject(t, []byte(tc.body))

			rec := srv.do(http.MethodPost, base, tc.body, false)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			created := decodeObject(t, rec.Body.Bytes())
			id, _ := created["_id"].(string)
			require.NotEmpty(t, id)
			assertFieldsMatch(t, want, created, tc.dates)

			rec = srv.do(http.MethodPost, base, tc.body, false)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "duplicate domain id")

			rec = srv.do(http.MethodGet, base+"/"+id, "", true)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assertFieldsMatch(t, want, decodeObject(t, rec.Body.Bytes()), tc.dates)

			rec = srv.do(http.MethodGet, base, "", true)
			require.Equal(t, http.StatusOK, rec.Code)
			var list []map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
			require.Len(t, list, 1)
			assert.Equal(t, id, list[0]["_id"])

			want[tc.field] = tc.value
			payload, err := json.Marshal(want)
			require.NoError(t, err)
			rec = srv.do(http.MethodPut, base+"/"+id, string(payload), true)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			updated := decodeObject(t, rec.Body.Bytes())
			assert.Equal(t, id, updated["_id"])
			assertFieldsMatch(t, decodeObject(t, payload), updated, tc.dates)

			rec = srv.do(http.MethodGet, base+"/export?format=csv", "", true)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.field)

			rec = srv.do(http.MethodDelete, base+"/"+id, "", true)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"message":"`+tc.resource.DeletedMessage+`"}`, rec.Body.String())

			rec = srv.do(http.MethodGet, base+"/"+id, "", true)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.resource.NotFoundMessage)
		})
	}
}
