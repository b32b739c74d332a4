package services

import (
	"errors"
	"testing"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"

	"gorm.io/gorm"
)

func newMenuService(db *gorm.DB, events *EventBus) *MenuService {
	return NewMenuService(db, repository.NewDishRepository(db), repository.NewStatsRepository(db), events)
}

func TestLikeDishOncePerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db, NewEventBus())
	user := seedUser(t, db)
	seedDish(t, db, "M1", 60)

	if err := svc.Like(user.ID, "M1"); err != nil {
		t.Fatalf("first like: %v", err)
	}

	// กดซ้ำต้อง conflict
	if err := svc.Like(user.ID, "M1"); !errors.Is(err, ErrAlreadyLiked) {
		t.Fatalf("second like error = %v, want ErrAlreadyLiked", err)
	}

	if err := svc.Like(user.ID, "ZZ"); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("like missing dish error = %v, want ErrDishNotFound", err)
	}

	// ตัวนับบนเมนูต้องขยับครั้งเดียว
	var d entity.Dish
	if err := db.Where("code = ?", "M1").First(&d).Error; err != nil {
		t.Fatalf("reload dish: %v", err)
	}
	if d.Likes != 1 {
		t.Errorf("dish likes = %d, want 1", d.Likes)
	}

	// คนละ user กดได้
	other := seedUser(t, db)
	if err := svc.Like(other.ID, "M1"); err != nil {
		t.Fatalf("like by other user: %v", err)
	}
}

func TestBuildMenusOrderedByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db, NewEventBus())

	cats := []entity.Category{
		{Name: "Desserts", SortOrder: 3},
		{Name: "Coffee", SortOrder: 1},
		{Name: "Tea", SortOrder: 2},
	}
	if err := db.Create(&cats).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	coffee := cats[1]
	dish := entity.Dish{Code: "K1", Name: "Espresso", Price: 45, Views: 7, CategoryID: coffee.ID}
	if err := db.Create(&dish).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}

	client, err := svc.BuildClientMenu()
	if err != nil {
		t.Fatalf("BuildClientMenu: %v", err)
	}
	wantOrder := []string{"Coffee", "Tea", "Desserts"}
	if len(client.Categories) != len(wantOrder) {
		t.Fatalf("categories = %d, want %d", len(client.Categories), len(wantOrder))
	}
	for i, name := range wantOrder {
		if client.Categories[i].Name != name {
			t.Errorf("category[%d] = %s, want %s", i, client.Categories[i].Name, name)
		}
	}
	if len(client.Categories[0].Dishes) != 1 || client.Categories[0].Dishes[0].Code != "K1" {
		t.Fatalf("coffee dishes = %+v", client.Categories[0].Dishes)
	}

	staff, err := svc.BuildStaffMenu()
	if err != nil {
		t.Fatalf("BuildStaffMenu: %v", err)
	}
	if staff.Categories[0].Dishes[0].Views != 7 {
		t.Errorf("staff view counter = %d, want 7", staff.Categories[0].Dishes[0].Views)
	}
}

func TestSaveDishUpsertsByCode(t *testing.T) {
	db := newTestDB(t)
	events := NewEventBus()
	fired := 0
	events.Subscribe(EventMenuChanged, func(Event) { fired++ })
	svc := newMenuService(db, events)

	var cat entity.Category
	if err := db.Where(entity.Category{Name: "Coffee"}).FirstOrCreate(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	in := &DishIn{Code: "E1", Name: "Latte", Price: 60, CategoryID: cat.ID}
	if err := svc.SaveDish(in); err != nil {
		t.Fatalf("create dish: %v", err)
	}

	// code เดิม = ทับของเดิม ไม่ใช่แถวใหม่
	in.Name = "Latte XL"
	in.Price = 75
	if err := svc.SaveDish(in); err != nil {
		t.Fatalf("update dish: %v", err)
	}

	var cnt int64
	if err := db.Model(&entity.Dish{}).Count(&cnt).Error; err != nil {
		t.Fatalf("count dishes: %v", err)
	}
	if cnt != 1 {
		t.Errorf("dishes = %d, want 1", cnt)
	}

	var d entity.Dish
	if err := db.Where("code = ?", "E1").First(&d).Error; err != nil {
		t.Fatalf("reload dish: %v", err)
	}
	if d.Name != "Latte XL" || d.Price != 75 {
		t.Errorf("dish after upsert = %+v", d)
	}

	if fired != 2 {
		t.Errorf("menu changed events = %d, want 2", fired)
	}

	// แถวสถิติต้องถูกเตรียมไว้ด้วยค่า 0
	var stats entity.DishOrdersStats
	if err := db.Where("code = ?", "E1").First(&stats).Error; err != nil {
		t.Fatalf("stats row missing: %v", err)
	}
	if stats.Orders != 0 {
		t.Errorf("stats orders = %d, want 0", stats.Orders)
	}
}

func TestUpdateCategoriesReorders(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db, NewEventBus())

	if err := db.Create(&[]entity.Category{
		{Name: "Coffee", SortOrder: 1},
		{Name: "Tea", SortOrder: 2},
	}).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	// สลับลำดับ + เพิ่มหมวดใหม่
	if err := svc.UpdateCategories([]string{"Tea", "Coffee", "Smoothies"}); err != nil {
		t.Fatalf("UpdateCategories: %v", err)
	}

	var cats []entity.Category
	if err := db.Order("sort_order ASC").Find(&cats).Error; err != nil {
		t.Fatalf("load categories: %v", err)
	}
	got := make([]string, 0, len(cats))
	for _, c := range cats {
		got = append(got, c.Name)
	}
	want := []string{"Tea", "Coffee", "Smoothies"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category order = %v, want %v", got, want)
		}
	}
}

func TestDishDetailCountsViews(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db, NewEventBus())
	seedDish(t, db, "V1", 55)

	for i := 0; i < 3; i++ {
		if _, err := svc.DishDetail("V1"); err != nil {
			t.Fatalf("DishDetail: %v", err)
		}
	}

	var d entity.Dish
	if err := db.Where("code = ?", "V1").First(&d).Error; err != nil {
		t.Fatalf("reload dish: %v", err)
	}
	if d.Views != 3 {
		t.Errorf("views = %d, want 3", d.Views)
	}

	if _, err := svc.DishDetail("ZZ"); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("missing dish error = %v, want ErrDishNotFound", err)
	}
}
