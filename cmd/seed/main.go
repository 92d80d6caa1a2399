package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/kokolodziejska/zagrane/internal/config"
	"github.com/kokolodziejska/zagrane/internal/database"
	"github.com/kokolodziejska/zagrane/internal/domain"
	"github.com/kokolodziejska/zagrane/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("invalid configuration: ", err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logrus.Fatal("DB connection failed: ", err)
	}

	logrus.Info("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		logrus.Fatal("migration failed: ", err)
	}

	logrus.Info("Cleaning old data...")
	if err := repository.Reset(db); err != nil {
		logrus.Fatal("reset failed: ", err)
	}

	ctx := context.Background()
	now := time.Now()

	// ================== DISCIPLINES & SETTINGS ==================
	logrus.Info("Creating club settings...")

	disciplines := []domain.Discipline{
		{Name: domain.ProtectedDiscipline, IsEnabled: true},
		{Name: "Tennis", IsEnabled: true},
		{Name: "Squash", IsEnabled: true},
		{Name: "Badminton", IsEnabled: false},
	}
	var tennisID int64
	for i := range disciplines {
		if err := repository.InsertDiscipline(db, &disciplines[i]); err != nil {
			logrus.Fatal("discipline insert failed: ", err)
		}
		if disciplines[i].Name == "Tennis" {
			tennisID = disciplines[i].ID
		}
	}

	settings := domain.Settings{
		OpeningMinute:       8 * 60,
		ClosingMinute:       22 * 60,
		TimeBlock:           0.5,
		MinimalTimeBlock:    0.5,
		MaximalTimeBlock:    3,
		MinBookingAdvance:   0.5,
		MinCancelTime:       2,
		Currency:            "PLN",
		DefaultPlayers:      2,
		DefaultDisciplineID: &tennisID,
	}
	if err := repository.InsertSettings(db, &settings); err != nil {
		logrus.Fatal("settings insert failed: ", err)
	}

	// ================== DEPARTMENTS ==================
	logrus.Info("Creating departments...")

	departments := []domain.Department{
		{Name: "Transport"},
		{Name: "Education"},
		{Name: "Health"},
	}
	for i := range departments {
		if err := repository.InsertDepartment(db, &departments[i]); err != nil {
			logrus.Fatal("department insert failed: ", err)
		}
	}

	// ================== USERS ==================
	logrus.Info("Creating users...")

	clientRepo := repository.NewClientRepository(db)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	admin := domain.Client{
		Email:        "admin@zagrane.pl",
		Name:         "Anna",
		Surname:      "Nowak",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := clientRepo.Create(ctx, &admin); err != nil {
		logrus.Fatal("admin insert failed: ", err)
	}
	logrus.Info("Admin created: admin@zagrane.pl / Admin123!")

	userNames := []string{"Jan", "Maria", "Piotr"}
	for i, name := range userNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("User123!"), bcrypt.DefaultCost)
		deptID := departments[i%len(departments)].ID
		user := domain.Client{
			Email:        fmt.Sprintf("user%d@zagrane.pl", i+1),
			Name:         name,
			Surname:      "Kowalski",
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			IsActive:     true,
			DepartmentID: &deptID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := clientRepo.Create(ctx, &user); err != nil {
			logrus.Fatal("user insert failed: ", err)
		}
	}

	// ================== FACILITIES & PRICES ==================
	logrus.Info("Creating facilities...")

	facilityRepo := repository.NewFacilityRepository(db)
	priceRepo := repository.NewPriceRepository(db)

	facilities := []domain.Facility{
		{
			ID:               1,
			Name:             "Court One",
			Discipline:       "Tennis",
			Description:      "Indoor hard court",
			OpeningMinute:    8 * 60,
			ClosingMinute:    22 * 60,
			TimeBlock:        0.5,
			MinimalTimeBlock: 1,
			MaximalTimeBlock: 2,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               2,
			Name:             "Squash Box",
			Discipline:       "Squash",
			Description:      "Glass-back squash court",
			OpeningMinute:    9 * 60,
			ClosingMinute:    21 * 60,
			TimeBlock:        0.5,
			MinimalTimeBlock: 0.5,
			MaximalTimeBlock: 1.5,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
	for i := range facilities {
		if err := facilityRepo.Create(ctx, &facilities[i]); err != nil {
			logrus.Fatal("facility insert failed: ", err)
		}
	}

	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.Local)
	yearEnd := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.Local)

	rules := []domain.PriceRule{
		// Court One: cheaper mornings, pricier evenings
		{
			PriceTable: 1, FacilityID: 1,
			ValidFrom: yearStart, ValidTo: yearEnd,
			DayMask:     domain.DayMaskAllDays,
			StartMinute: 8 * 60, EndMinute: 16 * 60,
			ReferenceDuration: 60, Price: 40, Currency: "PLN",
		},
		{
			PriceTable: 1, FacilityID: 1,
			ValidFrom: yearStart, ValidTo: yearEnd,
			DayMask:     domain.DayMaskAllDays,
			StartMinute: 16 * 60, EndMinute: 22 * 60,
			ReferenceDuration: 60, Price: 60, Currency: "PLN",
		},
		{
			PriceTable: 1, FacilityID: 2,
			ValidFrom: yearStart, ValidTo: yearEnd,
			DayMask:     domain.DayMaskAllDays,
			StartMinute: 9 * 60, EndMinute: 21 * 60,
			ReferenceDuration: 30, Price: 25, Currency: "PLN",
		},
	}
	for i := range rules {
		if err := priceRepo.Create(ctx, &rules[i]); err != nil {
			logrus.Fatal("price rule insert failed: ", err)
		}
	}

	// ================== BUDGET REFERENCE DATA ==================
	logrus.Info("Creating budget classification...")

	groups := []domain.ExpenseGroup{
		{Definition: "Current expenditure"},
		{Definition: "Capital expenditure"},
	}
	for i := range groups {
		if err := repository.InsertExpenseGroup(db, &groups[i]); err != nil {
			logrus.Fatal("expense group insert failed: ", err)
		}
	}

	divisions := []domain.Division{
		{Value: "600"},
		{Value: "801"},
	}
	for i := range divisions {
		if err := repository.InsertDivision(db, &divisions[i]); err != nil {
			logrus.Fatal("division insert failed: ", err)
		}
	}

	chapters := []domain.Chapter{
		{DivisionID: divisions[0].ID, Value: "60015"},
		{DivisionID: divisions[0].ID, Value: "60016"},
		{DivisionID: divisions[1].ID, Value: "80101"},
	}
	for i := range chapters {
		if err := repository.InsertChapter(db, &chapters[i]); err != nil {
			logrus.Fatal("chapter insert failed: ", err)
		}
	}

	paragraphs := []domain.Paragraph{
		{ChapterID: chapters[0].ID, ExpenseGroupID: groups[0].ID, Value: "4210"},
		{ChapterID: chapters[0].ID, ExpenseGroupID: groups[1].ID, Value: "6050"},
		{ChapterID: chapters[2].ID, ExpenseGroupID: groups[0].ID, Value: "4010"},
	}
	for i := range paragraphs {
		if err := repository.InsertParagraph(db, &paragraphs[i]); err != nil {
			logrus.Fatal("paragraph insert failed: ", err)
		}
	}

	statuses := []domain.Status{
		{Value: "draft"},
		{Value: "in_progress"},
		{Value: "submitted"},
	}
	for i := range statuses {
		if err := repository.InsertStatus(db, &statuses[i]); err != nil {
			logrus.Fatal("status insert failed: ", err)
		}
	}

	// ================== BUDGET TABLE ==================
	logrus.Info("Creating budget table...")

	budgetRepo := repository.NewBudgetRepository(db)

	table := domain.BudgetTable{
		Year:    now.Year() + 1,
		Version: "draft",
		IsOpen:  true,
		Budget:  5_000_000,
	}
	if err := repository.InsertBudgetTable(db, &table); err != nil {
		logrus.Fatal("budget table insert failed: ", err)
	}

	windowStart := now.AddDate(0, 0, -7)
	windowEnd := now.AddDate(0, 1, 0)

	for _, dept := range departments {
		dt := domain.DepartmentTable{
			TableID:      table.ID,
			DepartmentID: dept.ID,
			StatusID:     statuses[1].ID,
			Start:        windowStart,
			End:          windowEnd,
		}
		if err := repository.InsertDepartmentTable(db, &dt); err != nil {
			logrus.Fatal("department table insert failed: ", err)
		}

		for j := 0; j < 2; j++ {
			row := domain.Row{
				DepartmentTableID: dt.ID,
				LastUpdate:        now,
			}
			if err := repository.InsertRow(db, &row); err != nil {
				logrus.Fatal("row insert failed: ", err)
			}

			version := domain.RowData{
				RowID:            row.ID,
				LastUserID:       admin.ID,
				LastUpdate:       now,
				BudgetPart:       "33",
				DivisionID:       divisions[0].ID,
				ChapterID:        chapters[0].ID,
				ParagraphID:      paragraphs[0].ID,
				ExpenseGroupID:   groups[0].ID,
				TaskName:         fmt.Sprintf("%s task %d", dept.Name, j+1),
				FinancialNeeds:   float64(100_000 * (j + 1)),
				ExpenditureLimit: float64(80_000 * (j + 1)),
			}
			if err := budgetRepo.AppendRowData(ctx, &version); err != nil {
				logrus.Fatal("row data insert failed: ", err)
			}
		}
	}

	logrus.Info("Seed complete.")
}
