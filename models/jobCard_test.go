package models

import (
	"math"
	"path/filepath"
	"testing"

	"orion-backend/workflow"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "workshop.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Client{}, &Technician{}, &JobCard{}, &LineItem{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestRecomputeTotalMatchesLiveComputation(t *testing.T) {
	db := openTestDB(t)

	client := Client{FirstName: "Acme", LastName: "Motors", CompanyName: "Acme Motors", PhoneNumber: "27825550199", Active: true}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}

	card := JobCard{
		JobCardNumber: "JC-0001",
		ClientID:      &client.Id,
		Status:        workflow.StatusReceived,
		TaxRate:       15,
	}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("create job card: %v", err)
	}

	parts := LineItem{JobCardID: card.ID, ItemType: workflow.ItemParts, Description: "Brake pads", PartNumber: "BP-221", Quantity: 2, UnitPrice: 150}
	labour := LineItem{JobCardID: card.ID, ItemType: workflow.ItemLabour, Description: "Fitment", Quantity: 3, UnitPrice: 200}
	if err := db.Create(&parts).Error; err != nil {
		t.Fatalf("create parts item: %v", err)
	}
	if err := db.Create(&labour).Error; err != nil {
		t.Fatalf("create labour item: %v", err)
	}

	breakdown, err := RecomputeTotal(db, card.ID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if breakdown.Subtotal != 900 || breakdown.Tax != 135 || breakdown.Total != 1035 {
		t.Fatalf("breakdown = %+v, want 900/135/1035", breakdown)
	}

	// Persisted total must agree with the live computation.
	var reloaded JobCard
	if err := db.Preload("Items").First(&reloaded, "id = ?", card.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	live := workflow.Totals(reloaded.WorkflowItems(), reloaded.TaxRate)
	if math.Abs(reloaded.Total-live.Total) > 1e-9 {
		t.Errorf("persisted total %v diverges from live %v", reloaded.Total, live.Total)
	}
}

func TestRecomputeTotalAfterRemoval(t *testing.T) {
	db := openTestDB(t)

	card := JobCard{JobCardNumber: "JC-0002", Status: workflow.StatusInProgress, TaxRate: 15}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("create job card: %v", err)
	}
	parts := LineItem{JobCardID: card.ID, ItemType: workflow.ItemParts, Description: "Filter", Quantity: 2, UnitPrice: 150}
	labour := LineItem{JobCardID: card.ID, ItemType: workflow.ItemLabour, Description: "Service", Quantity: 3, UnitPrice: 200}
	if err := db.Create(&parts).Error; err != nil {
		t.Fatalf("create parts item: %v", err)
	}
	if err := db.Create(&labour).Error; err != nil {
		t.Fatalf("create labour item: %v", err)
	}
	if _, err := RecomputeTotal(db, card.ID); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	// Remove the labour line; total drops to parts only: 300 × 1.15 = 345.
	res := db.Where("job_card_id = ?", card.ID).Delete(&LineItem{}, "id = ?", labour.ID)
	if res.Error != nil || res.RowsAffected != 1 {
		t.Fatalf("delete labour item: err=%v rows=%d", res.Error, res.RowsAffected)
	}
	breakdown, err := RecomputeTotal(db, card.ID)
	if err != nil {
		t.Fatalf("recompute after removal: %v", err)
	}
	if breakdown.Total != 345 {
		t.Fatalf("total after removal = %v, want 345", breakdown.Total)
	}

	// Second delete of the same item finds nothing and must not disturb the total.
	res = db.Where("job_card_id = ?", card.ID).Delete(&LineItem{}, "id = ?", labour.ID)
	if res.Error != nil {
		t.Fatalf("repeat delete errored: %v", res.Error)
	}
	if res.RowsAffected != 0 {
		t.Fatalf("repeat delete affected %d rows, want 0", res.RowsAffected)
	}
	var reloaded JobCard
	if err := db.First(&reloaded, "id = ?", card.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Total != 345 {
		t.Errorf("total corrupted by repeat delete: %v, want 345", reloaded.Total)
	}
}

func TestJobCardLifecycleScenario(t *testing.T) {
	db := openTestDB(t)

	client := Client{FirstName: "Acme", LastName: "Motors", CompanyName: "Acme Motors", PhoneNumber: "27825550199", Active: true}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}

	// Intake: status starts at received, no line items.
	card := JobCard{JobCardNumber: "JC-0001", ClientID: &client.Id, Status: workflow.StatusReceived, TaxRate: 15}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("create job card: %v", err)
	}

	action := workflow.NextAction(card.Status, false)
	if action == nil || action.Label != "Start Diagnosis" || action.Next != workflow.StatusDiagnosing {
		t.Fatalf("next action at intake = %+v, want Start Diagnosis -> diagnosing", action)
	}

	// Follow the guided transition.
	if err := db.Model(&card).Update("status", action.Next).Error; err != nil {
		t.Fatalf("transition: %v", err)
	}

	items := []LineItem{
		{JobCardID: card.ID, ItemType: workflow.ItemParts, Description: "Brake pads", Quantity: 2, UnitPrice: 150},
		{JobCardID: card.ID, ItemType: workflow.ItemLabour, Description: "Fitment", Quantity: 3, UnitPrice: 200},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create items: %v", err)
	}
	breakdown, err := RecomputeTotal(db, card.ID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if breakdown.Subtotal != 900 || breakdown.Tax != 135 || breakdown.Total != 1035 {
		t.Fatalf("breakdown = %+v, want 900/135/1035", breakdown)
	}

	// At completed with items present the recommended action is Create Invoice;
	// with none it is nil.
	if a := workflow.NextAction(workflow.StatusCompleted, true); a == nil || a.Kind != workflow.ActionCreateInvoice {
		t.Fatalf("next action at completed with items = %+v, want create_invoice", a)
	}
	if a := workflow.NextAction(workflow.StatusCompleted, false); a != nil {
		t.Fatalf("next action at completed without items = %+v, want nil", a)
	}

	// The notification for the client references both the client and the card.
	msg := workflow.StatusMessage(workflow.StatusCompleted, client.DisplayName(), card.VehicleReg, card.JobCardNumber)
	if msg == "" {
		t.Fatal("status message is empty")
	}
}
