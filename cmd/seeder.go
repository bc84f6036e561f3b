package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminDatamodel "office-management/internal/core/datamodel/admin"
	attendanceDatamodel "office-management/internal/core/datamodel/attendance"
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	notificationDatamodel "office-management/internal/core/datamodel/notification"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"task_assignments", "tasks", "notifications", "payrolls", "leaves", "attendances", "employees", "admins"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password123"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		adminEmail := "admin@office.local"
		var count int64
		db.Model(&adminDatamodel.Admin{}).Where("email = ?", adminEmail).Count(&count)
		if count == 0 {
			seedAdmin := adminDatamodel.Admin{
				Name:         "Office Admin",
				Email:        adminEmail,
				PasswordHash: string(hash),
			}
			if err := db.Create(&seedAdmin).Error; err != nil {
				log.Fatalf("failed to seed admin: %v", err)
			}
			fmt.Println("Seeded admin:", adminEmail)
		}

		employees := []employeeDatamodel.Employee{
			{
				Name:          "Ayu Lestari",
				Email:         "ayu@office.local",
				PasswordHash:  string(hash),
				Position:      "Backend Engineer",
				Department:    "Engineering",
				Phone:         "+62-811-0001",
				DateOfJoining: time.Now().AddDate(-2, 0, 0),
				Salary:        9500,
				IsActive:      true,
			},
			{
				Name:          "Budi Santoso",
				Email:         "budi@office.local",
				PasswordHash:  string(hash),
				Position:      "HR Generalist",
				Department:    "People",
				Phone:         "+62-811-0002",
				DateOfJoining: time.Now().AddDate(-1, -3, 0),
				Salary:        7200,
				IsActive:      true,
			},
		}
		for i := range employees {
			db.Model(&employeeDatamodel.Employee{}).Where("email = ?", employees[i].Email).Count(&count)
			if count > 0 {
				continue
			}
			if err := db.Create(&employees[i]).Error; err != nil {
				log.Fatalf("failed to seed employee %s: %v", employees[i].Email, err)
			}
			fmt.Println("Seeded employee:", employees[i].Email)

			mark := attendanceDatamodel.Attendance{
				EmployeeID: employees[i].ID,
				Date:       time.Now(),
				Status:     "PRESENT",
			}
			if err := db.Create(&mark).Error; err != nil {
				log.Fatalf("failed to seed attendance: %v", err)
			}
		}

		db.Model(&notificationDatamodel.Notification{}).Count(&count)
		if count == 0 {
			welcome := notificationDatamodel.Notification{
				Message: "Welcome to the office management portal",
				ForWhom: "ALL",
			}
			if err := db.Create(&welcome).Error; err != nil {
				log.Fatalf("failed to seed notification: %v", err)
			}
			fmt.Println("Seeded welcome notification")
		}

		fmt.Println("Seeding complete. Default password:", password)
	},
}
