package postgres_test

import (
	"testing"
	"time"

	"office-management/internal/employee"
	employeePostgres "office-management/internal/employee/postgres"

	attendanceDatamodel "office-management/internal/core/datamodel/attendance"
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	leaveDatamodel "office-management/internal/core/datamodel/leave"
	taskDatamodel "office-management/internal/core/datamodel/task"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

// SQLite-compatible models for testing
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

type SQLiteAttendance struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	Date       time.Time `gorm:"column:date;not null"`
	Status     string    `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (SQLiteAttendance) TableName() string {
	return "attendances"
}

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

type SQLitePayroll struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	Month      string    `gorm:"column:month;not null"`
	Year       int       `gorm:"column:year;not null"`
	BasicPay   float64   `gorm:"column:basic_pay"`
	Bonus      float64   `gorm:"column:bonus"`
	Deductions float64   `gorm:"column:deductions"`
	NetPay     float64   `gorm:"column:net_pay"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (SQLitePayroll) TableName() string {
	return "payrolls"
}

type SQLiteTaskAssignment struct {
	ID         int64     `gorm:"primaryKey"`
	TaskID     int64     `gorm:"column:task_id;uniqueIndex:idx_task_employee;not null"`
	EmployeeID int64     `gorm:"column:employee_id;uniqueIndex:idx_task_employee;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (SQLiteTaskAssignment) TableName() string {
	return "task_assignments"
}

var _ = Describe("Employee PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo employee.RepositoryAPI
	)

	newEmployee := func(email string) *employeeDatamodel.Employee {
		return &employeeDatamodel.Employee{
			Name:         "Ayu Lestari",
			Email:        email,
			PasswordHash: "hash",
			Position:     "Engineer",
			IsActive:     true,
		}
	}

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&SQLiteEmployee{},
			&SQLiteAttendance{},
			&SQLiteLeave{},
			&SQLitePayroll{},
			&SQLiteTaskAssignment{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = employeePostgres.NewEmployeeRepository(db)
	})

	Describe("Create", func() {
		It("should create a new employee successfully", func() {
			record := newEmployee("ayu@office.local")

			err := repo.Create(record)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(BeNumerically(">", 0))
		})

		It("should fail on a duplicate email", func() {
			Expect(repo.Create(newEmployee("ayu@office.local"))).To(Succeed())
			Expect(repo.Create(newEmployee("ayu@office.local"))).To(HaveOccurred())
		})
	})

	Describe("GetByID", func() {
		It("should retrieve an employee by id", func() {
			record := newEmployee("ayu@office.local")
			Expect(repo.Create(record)).To(Succeed())

			found, err := repo.GetByID(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Email).To(Equal("ayu@office.local"))
		})

		It("should return an error for a missing id", func() {
			_, err := repo.GetByID(999)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("EmailExists", func() {
		var record *employeeDatamodel.Employee

		BeforeEach(func() {
			record = newEmployee("ayu@office.local")
			Expect(repo.Create(record)).To(Succeed())
		})

		It("should report a taken email", func() {
			taken, err := repo.EmailExists("ayu@office.local", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeTrue())
		})

		It("should ignore the excluded id", func() {
			taken, err := repo.EmailExists("ayu@office.local", record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeFalse())
		})

		It("should report a free email", func() {
			taken, err := repo.EmailExists("budi@office.local", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeFalse())
		})
	})

	Describe("Update", func() {
		It("should persist field changes", func() {
			record := newEmployee("ayu@office.local")
			Expect(repo.Create(record)).To(Succeed())

			record.Position = "Staff Engineer"
			record.IsActive = false
			Expect(repo.Update(record)).To(Succeed())

			found, err := repo.GetByID(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Position).To(Equal("Staff Engineer"))
			Expect(found.IsActive).To(BeFalse())
		})
	})

	Describe("DeleteCascade", func() {
		It("should remove the employee and everything they own", func() {
			record := newEmployee("ayu@office.local")
			Expect(repo.Create(record)).To(Succeed())

			Expect(db.Create(&attendanceDatamodel.Attendance{
				EmployeeID: record.ID,
				Date:       time.Now(),
				Status:     "PRESENT",
			}).Error).To(Succeed())
			Expect(db.Create(&leaveDatamodel.Leave{
				EmployeeID: record.ID,
				StartDate:  time.Now(),
				EndDate:    time.Now(),
				Status:     "PENDING",
			}).Error).To(Succeed())
			Expect(db.Create(&taskDatamodel.TaskAssignment{
				TaskID:     1,
				EmployeeID: record.ID,
			}).Error).To(Succeed())

			Expect(repo.DeleteCascade(record.ID)).To(Succeed())

			_, err := repo.GetByID(record.ID)
			Expect(err).To(HaveOccurred())

			var attendanceCount, leaveCount, assignmentCount int64
			Expect(db.Model(&attendanceDatamodel.Attendance{}).Count(&attendanceCount).Error).To(Succeed())
			Expect(db.Model(&leaveDatamodel.Leave{}).Count(&leaveCount).Error).To(Succeed())
			Expect(db.Model(&taskDatamodel.TaskAssignment{}).Count(&assignmentCount).Error).To(Succeed())
			Expect(attendanceCount).To(BeZero())
			Expect(leaveCount).To(BeZero())
			Expect(assignmentCount).To(BeZero())
		})

		It("should leave other employees' rows untouched", func() {
			first := newEmployee("ayu@office.local")
			second := newEmployee("budi@office.local")
			Expect(repo.Create(first)).To(Succeed())
			Expect(repo.Create(second)).To(Succeed())

			Expect(db.Create(&attendanceDatamodel.Attendance{
				EmployeeID: second.ID,
				Date:       time.Now(),
				Status:     "PRESENT",
			}).Error).To(Succeed())

			Expect(repo.DeleteCascade(first.ID)).To(Succeed())

			var attendanceCount int64
			Expect(db.Model(&attendanceDatamodel.Attendance{}).Count(&attendanceCount).Error).To(Succeed())
			Expect(attendanceCount).To(Equal(int64(1)))

			_, err := repo.GetByID(second.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ListAll", func() {
		It("should list employees ordered by id", func() {
			Expect(repo.Create(newEmployee("ayu@office.local"))).To(Succeed())
			Expect(repo.Create(newEmployee("budi@office.local"))).To(Succeed())

			listed, err := repo.ListAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(2))
			Expect(listed[0].Email).To(Equal("ayu@office.local"))
			Expect(listed[1].Email).To(Equal("budi@office.local"))
		})

		It("should return an empty slice when there are no employees", func() {
			listed, err := repo.ListAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(BeEmpty())
		})
	})
})
