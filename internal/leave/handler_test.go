package leave_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"time"

	"office-management/internal/auth"
	"office-management/internal/leave"
	leavePostgres "office-management/internal/leave/postgres"

	employeeDatamodel "office-management/internal/core/datamodel/employee"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite-compatible models for testing
type SQLiteLeave struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	StartDate  time.Time `gorm:"column:start_date;not null"`
	EndDate    time.Time `gorm:"column:end_date;not null"`
	Reason     string    `gorm:"column:reason"`
	Status     string    `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (SQLiteLeave) TableName() string {
	return "leaves"
}

type SQLiteEmployee struct {
	ID             int64     `gorm:"primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash   string    `gorm:"column:password_hash;not null"`
	Position       string    `gorm:"column:position"`
	Department     string    `gorm:"column:department"`
	Phone          string    `gorm:"column:phone"`
	Address        string    `gorm:"column:address"`
	DateOfJoining  time.Time `gorm:"column:date_of_joining"`
	DateOfBirth    time.Time `gorm:"column:date_of_birth"`
	Salary         float64   `gorm:"column:salary"`
	ProfilePicture *string   `gorm:"column:profile_picture"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (SQLiteEmployee) TableName() string {
	return "employees"
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

var _ = Describe("Leave Handler Integration", func() {
	var (
		db        *gorm.DB
		publisher *MockEventPublisher
		handler   *leave.Handler
	)

	requestAs := func(user *auth.User, method, target string, body interface{}) *http.Request {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, target, &buf)
		return req.WithContext(auth.ContextWithUser(req.Context(), user))
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteLeave{}, &SQLiteEmployee{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&employeeDatamodel.Employee{
			ID:           1,
			Name:         "Ayu Lestari",
			Email:        "ayu@office.local",
			PasswordHash: "hash",
			IsActive:     true,
		}).Error).To(Succeed())

		repo := leavePostgres.NewLeaveRepository(db)
		publisher = &MockEventPublisher{}
		testLogger := newTestLogger()
		service := leave.NewService(repo, publisher, testLogger)
		handler = leave.NewHandler(service)
	})

	Describe("POST /leave/new", func() {
		It("files a pending request for the calling employee", func() {
			employee := &auth.User{ID: 1, Role: auth.RoleEmployee}
			req := requestAs(employee, http.MethodPost, "/leave/new", leave.NewLeaveDTO{
				StartDate: "2025-08-04",
				EndDate:   "2025-08-08",
				Reason:    "family event",
			})
			w := httptest.NewRecorder()

			handler.Create(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var created leave.Leave
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.EmployeeID).To(Equal(int64(1)))
			Expect(created.Status).To(Equal(leave.StatusPending))
			Expect(created.DurationDays).To(Equal(5))
		})

		It("rejects an unauthenticated request", func() {
			req := httptest.NewRequest(http.MethodPost, "/leave/new", bytes.NewBufferString("{}"))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns the error body shape on validation failure", func() {
			employee := &auth.User{ID: 1, Role: auth.RoleEmployee}
			req := requestAs(employee, http.MethodPost, "/leave/new", leave.NewLeaveDTO{})
			w := httptest.NewRecorder()

			handler.Create(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var body map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body).To(HaveKey("code"))
			Expect(body).To(HaveKey("message"))
		})
	})

	Describe("PUT /leave/update", func() {
		var leaveID int64

		BeforeEach(func() {
			employee := &auth.User{ID: 1, Role: auth.RoleEmployee}
			req := requestAs(employee, http.MethodPost, "/leave/new", leave.NewLeaveDTO{
				StartDate: "2025-08-04",
				EndDate:   "2025-08-08",
				Reason:    "family event",
			})
			w := httptest.NewRecorder()
			handler.Create(w, req)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var created leave.Leave
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			leaveID = created.ID
		})

		It("routes an admin to the status transition", func() {
			adminUser := &auth.User{ID: 9, Role: auth.RoleAdmin}
			status := "APPROVED"
			req := requestAs(adminUser, http.MethodPut, "/leave/update", leave.UpdateLeaveDTO{
				LeaveID: leaveID,
				Status:  &status,
			})
			w := httptest.NewRecorder()

			handler.Update(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var updated leave.Leave
			Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
			Expect(updated.Status).To(Equal(leave.StatusApproved))
			Expect(publisher.published).To(HaveLen(1))
		})

		It("routes an employee to editing their own request", func() {
			employee := &auth.User{ID: 1, Role: auth.RoleEmployee}
			reason := "updated reason"
			req := requestAs(employee, http.MethodPut, "/leave/update", leave.UpdateLeaveDTO{
				LeaveID: leaveID,
				Reason:  &reason,
			})
			w := httptest.NewRecorder()

			handler.Update(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var updated leave.Leave
			Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
			Expect(updated.Reason).To(Equal("updated reason"))
			Expect(updated.Status).To(Equal(leave.StatusPending))
		})

		It("forbids an employee touching someone else's request", func() {
			other := &auth.User{ID: 2, Role: auth.RoleEmployee}
			reason := "not mine"
			req := requestAs(other, http.MethodPut, "/leave/update", leave.UpdateLeaveDTO{
				LeaveID: leaveID,
				Reason:  &reason,
			})
			w := httptest.NewRecorder()

			handler.Update(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("DELETE /leave/delete/{leaveId}", func() {
		var leaveID int64

		BeforeEach(func() {
			employee := &auth.User{ID: 1, Role: auth.RoleEmployee}
			req := requestAs(employee, http.MethodPost, "/leave/new", leave.NewLeaveDTO{
				StartDate: "2025-08-04",
				EndDate:   "2025-08-08",
				Reason:    "family event",
			})
			w := httptest.NewRecorder()
			handler.Create(w, req)

			var created leave.Leave
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			leaveID = created.ID
		})

		It("withdraws the caller's own pending request", func() {
			router := chi.NewRouter()
			router.Delete("/leave/delete/{leaveId}", handler.Delete)

			employee := &auth.User{ID: 1, Role: auth.RoleEmployee}
			req := requestAs(employee, http.MethodDelete,
				"/leave/delete/"+formatID(leaveID), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var count int64
			Expect(db.Model(&SQLiteLeave{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("rejects a non-numeric id", func() {
			router := chi.NewRouter()
			router.Delete("/leave/delete/{leaveId}", handler.Delete)

			employee := &auth.User{ID: 1, Role: auth.RoleEmployee}
			req := requestAs(employee, http.MethodDelete, "/leave/delete/abc", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
