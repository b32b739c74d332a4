package repository

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *DishRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("sort_order ASC, id ASC").Find(&cats).Error
	return cats, err
}

func (r *DishRepository) FindCategoryByName(tx *gorm.DB, name string) (*entity.Category, error) {
	var c entity.Category
	if err := tx.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *DishRepository) CreateCategory(tx *gorm.DB, c *entity.Category) error {
	return tx.Create(c).Error
}

func (r *DishRepository) UpdateCategoryOrder(tx *gorm.DB, id uint, sortOrder int) error {
	return tx.Model(&entity.Category{}).Where("id = ?", id).
		Update("sort_order", sortOrder).Error
}

// ---------------- Dishes ----------------

func (r *DishRepository) ListWithExtras() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Preload("Extras").
		Order("is_popular DESC, name ASC").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByCode(code string) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Preload("Extras").Where("code = ?", code).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// สร้างใหม่ถ้ายังไม่มี code นี้ / ทับของเดิมถ้ามีแล้ว (code คือ identity ถาวร)
func (r *DishRepository) Upsert(tx *gorm.DB, d *entity.Dish) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "name_en", "description", "price",
			"is_popular", "is_recommended", "image_link",
			"category_id", "updated_at",
		}),
	}).Create(d).Error
}

func (r *DishRepository) ReplaceExtras(tx *gorm.DB, d *entity.Dish, extras []entity.DishExtra) error {
	return tx.Model(d).Association("Extras").Replace(extras)
}

func (r *DishRepository) FindExtrasByIDs(ids []uint) ([]entity.DishExtra, error) {
	var extras []entity.DishExtra
	if len(ids) == 0 {
		return extras, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&extras).Error
	return extras, err
}

func (r *DishRepository) IncrementViews(code string) (int64, error) {
	res := r.DB.Model(&entity.Dish{}).Where("code = ?", code).
		Update("views", gorm.Expr("views + 1"))
	return res.RowsAffected, res.Error
}

// ---------------- Likes ----------------

func (r *DishRepository) DishExists(tx *gorm.DB, code string) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.Dish{}).Where("code = ?", code).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// พึ่ง composite PK (user_id, dish_code) → กดซ้ำได้ duplicated key จาก DB
func (r *DishRepository) CreateLike(tx *gorm.DB, userID uint, code string) error {
	like := entity.DishLike{UserID: userID, DishCode: code, CreatedAt: time.Now()}
	return tx.Create(&like).Error
}

func (r *DishRepository) IncrementLikes(tx *gorm.DB, code string) error {
	return tx.Model(&entity.Dish{}).Where("code = ?", code).
		Update("likes", gorm.Expr("likes + 1")).Error
}
