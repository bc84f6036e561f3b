package postgres_test

import (
	"testing"
	"time"

	taskPostgres "office-management/internal/task/postgres"

	employeeDatamodel "office-management/internal/core/datamodel/employee"
	taskDatamodel "office-management/internal/core/datamodel/task"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTaskPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Task Postgres Suite")
}

// SQLite-compatible models for testing
type SQLiteTask struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status;not null"`
	DueDate     time.Time `gorm:"column:due_date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteTask) TableName() string {
	return "tasks"
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

var _ = Describe("Task PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *taskPostgres.TaskRepository
	)

	seedEmployee := func(id int64, email string) {
		Expect(db.Create(&employeeDatamodel.Employee{
			ID:           id,
			Name:         "Employee",
			Email:        email,
			PasswordHash: "hash",
			IsActive:     true,
		}).Error).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteTask{}, &SQLiteTaskAssignment{}, &SQLiteEmployee{})
		Expect(err).NotTo(HaveOccurred())

		repo = taskPostgres.NewTaskRepository(db)

		seedEmployee(1, "ayu@office.local")
		seedEmployee(2, "budi@office.local")
	})

	Describe("CreateWithAssignments", func() {
		It("stores the task together with its assignment rows", func() {
			record := &taskDatamodel.Task{Title: "Quarterly report", Status: "PENDING"}

			Expect(repo.CreateWithAssignments(record, []int64{1, 2})).To(Succeed())
			Expect(record.ID).To(BeNumerically(">", 0))

			ids, err := repo.AssigneeIDs(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{1, 2}))
		})

		It("stores a task with no assignees", func() {
			record := &taskDatamodel.Task{Title: "Unassigned chore", Status: "PENDING"}

			Expect(repo.CreateWithAssignments(record, nil)).To(Succeed())

			ids, err := repo.AssigneeIDs(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})

		It("collapses a repeated assignee into a single row", func() {
			record := &taskDatamodel.Task{Title: "Quarterly report", Status: "PENDING"}
			Expect(repo.CreateWithAssignments(record, []int64{1, 1, 2})).To(Succeed())

			ids, err := repo.AssigneeIDs(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{1, 2}))
		})
	})

	Describe("UpdateWithAssignments", func() {
		var record *taskDatamodel.Task

		BeforeEach(func() {
			record = &taskDatamodel.Task{Title: "Quarterly report", Status: "PENDING"}
			Expect(repo.CreateWithAssignments(record, []int64{1})).To(Succeed())
		})

		It("replaces the whole assignment set", func() {
			record.Status = "IN_PROGRESS"
			Expect(repo.UpdateWithAssignments(record, []int64{2})).To(Succeed())

			found, err := repo.GetByID(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal("IN_PROGRESS"))

			ids, err := repo.AssigneeIDs(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{2}))
		})

		It("clears every assignment with an empty set", func() {
			Expect(repo.UpdateWithAssignments(record, nil)).To(Succeed())

			ids, err := repo.AssigneeIDs(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("removes the task and its assignment rows", func() {
			record := &taskDatamodel.Task{Title: "Quarterly report", Status: "PENDING"}
			Expect(repo.CreateWithAssignments(record, []int64{1, 2})).To(Succeed())

			Expect(repo.Delete(record.ID)).To(Succeed())

			_, err := repo.GetByID(record.ID)
			Expect(err).To(HaveOccurred())

			var count int64
			Expect(db.Model(&taskDatamodel.TaskAssignment{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})
	})

	Describe("ListByEmployee", func() {
		It("returns only tasks assigned to the employee", func() {
			first := &taskDatamodel.Task{Title: "For Ayu", Status: "PENDING"}
			second := &taskDatamodel.Task{Title: "For Budi", Status: "PENDING"}
			Expect(repo.CreateWithAssignments(first, []int64{1})).To(Succeed())
			Expect(repo.CreateWithAssignments(second, []int64{2})).To(Succeed())

			listed, err := repo.ListByEmployee(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(1))
			Expect(listed[0].Title).To(Equal("For Ayu"))
		})
	})

	Describe("EmployeeEmails", func() {
		It("resolves emails ordered by id", func() {
			emails, err := repo.EmployeeEmails([]int64{2, 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(emails).To(Equal([]string{"ayu@office.local", "budi@office.local"}))
		})

		It("returns an empty slice for no ids", func() {
			emails, err := repo.EmployeeEmails(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(emails).To(BeEmpty())
		})
	})

	Describe("EmployeesExist", func() {
		It("is true when every id is present", func() {
			exist, err := repo.EmployeesExist([]int64{1, 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(exist).To(BeTrue())
		})

		It("tolerates repeated ids", func() {
			exist, err := repo.EmployeesExist([]int64{1, 1, 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(exist).To(BeTrue())
		})

		It("is false when any id is missing", func() {
			exist, err := repo.EmployeesExist([]int64{1, 99})
			Expect(err).NotTo(HaveOccurred())
			Expect(exist).To(BeFalse())
		})
	})
})
