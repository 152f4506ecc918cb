package main

import (
	"log"
	"os"
	"time"

	"gym-retention-be/internal/model"
	"gym-retention-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🌱 Seeding demo data for the retention backend\n")

	seedStaff(db)
	seedMembers(db)

	color.Cyan("\nSeeding completed!")
}

func seedStaff(db *gorm.DB) {
	color.Yellow("\n[STAFF] Seeding demo staff users...")

	staff := []struct {
		Email    string
		Password string
		FullName string
		Role     string
	}{
		{Email: "manager@demo.gym", Password: "manager123", FullName: "Demo Manager", Role: "manager"},
		{Email: "trainer@demo.gym", Password: "trainer123", FullName: "Demo Trainer", Role: "trainer"},
	}

	for _, s := range staff {
		var existing model.StaffUser
		if err := db.Where("email = ?", s.Email).First(&existing).Error; err == nil {
			color.Yellow("Staff '%s' already exists, skipping...", s.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			color.Red("Error hashing password for '%s': %v", s.Email, err)
			continue
		}

		user := model.StaffUser{
			Email:        s.Email,
			PasswordHash: string(hash),
			FullName:     s.FullName,
			Role:         s.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			color.Red("Error creating staff '%s': %v", s.Email, err)
		} else {
			color.Green("Created staff: %s (%s)", s.FullName, s.Role)
		}
	}
}

func seedMembers(db *gorm.DB) {
	color.Yellow("\n[MEMBERS] Seeding demo members with history...")

	now := time.Now()
	ptrInt := func(v int) *int { return &v }
	ptrStr := func(v string) *string { return &v }
	ptrF64 := func(v float64) *float64 { return &v }

	type memberSeed struct {
		member       model.Member
		visitDaysAgo []int
		rating       float64
		lastPaid     bool
	}

	seeds := []memberSeed{
		{
			// Regular: trains often, pays on time, happy
			member:       model.Member{FullName: "Ana Souza", Email: "ana.souza@demo.gym", Age: ptrInt(29), Gender: ptrStr("feminino"), Status: "Ativo"},
			visitDaysAgo: []int{1, 3, 5, 8, 10, 12, 15, 17, 20, 22, 25, 27},
			rating:       5,
			lastPaid:     true,
		},
		{
			// Cooling off: rare visits, last payment still open
			member:       model.Member{FullName: "Bruno Lima", Email: "bruno.lima@demo.gym", Age: ptrInt(41), Gender: ptrStr("masculino"), Status: "Ativo"},
			visitDaysAgo: []int{18, 26},
			rating:       3,
			lastPaid:     false,
		},
		{
			// High risk: no visits in the window, unhappy, unpaid
			member:       model.Member{FullName: "Carla Mendes", Email: "carla.mendes@demo.gym", Age: ptrInt(35), Gender: ptrStr("feminino"), Status: "Ativo"},
			visitDaysAgo: []int{45, 52},
			rating:       2,
			lastPaid:     false,
		},
		{
			// Already churned
			member:       model.Member{FullName: "Diego Alves", Email: "diego.alves@demo.gym", Age: ptrInt(24), Gender: ptrStr("masculino"), Status: "Inativo"},
			visitDaysAgo: []int{70, 80, 90},
			rating:       1,
			lastPaid:     false,
		},
	}

	classTypes := []string{"musculação", "crossfit", "spinning", "yoga"}

	for _, s := range seeds {
		var existing model.Member
		if err := db.Where("email = ?", s.member.Email).First(&existing).Error; err == nil {
			color.Yellow("Member '%s' already exists, skipping...", s.member.Email)
			continue
		}

		m := s.member
		if err := db.Create(&m).Error; err != nil {
			color.Red("Error creating member '%s': %v", m.Email, err)
			continue
		}

		for i, daysAgo := range s.visitDaysAgo {
			att := model.Attendance{
				MemberId:        m.Id,
				ClassType:       classTypes[i%len(classTypes)],
				Date:            now.AddDate(0, 0, -daysAgo),
				DurationMinutes: 60,
			}
			if err := db.Create(&att).Error; err != nil {
				color.Red("Error creating attendance for '%s': %v", m.Email, err)
			}
		}

		// Six monthly invoices: older ones paid, the newest follows lastPaid
		for monthsAgo := 5; monthsAgo >= 0; monthsAgo-- {
			due := now.AddDate(0, -monthsAgo, 0)
			pay := model.Payment{
				MemberId: m.Id,
				Amount:   129.90,
				DueDate:  due,
				Status:   "pendente",
			}
			if monthsAgo > 0 || s.lastPaid {
				paidAt := due.AddDate(0, 0, -2)
				pay.PaidAt = &paidAt
				pay.Status = "pago"
			}
			if err := db.Create(&pay).Error; err != nil {
				color.Red("Error creating payment for '%s': %v", m.Email, err)
			}
		}

		fb := model.Feedback{
			MemberId: m.Id,
			Date:     now.AddDate(0, 0, -7),
			Rating:   ptrF64(s.rating),
			Comment:  ptrStr("seed feedback"),
		}
		if err := db.Create(&fb).Error; err != nil {
			color.Red("Error creating feedback for '%s': %v", m.Email, err)
		}

		color.Green("Created member: %s (%s) with %d attendances", m.FullName, m.Status, len(s.visitDaysAgo))
	}
}
