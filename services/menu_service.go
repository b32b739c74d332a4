package services

import (
	"errors"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB     *gorm.DB
	Repo   *repository.DishRepository
	Stats  *repository.StatsRepository
	Events *EventBus
}

func NewMenuService(db *gorm.DB, repo *repository.DishRepository, stats *repository.StatsRepository, events *EventBus) *MenuService {
	return &MenuService{DB: db, Repo: repo, Stats: stats, Events: events}
}

// ----- Menu views -----

type MenuExtra struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ฝั่งลูกค้า — ไม่โชว์ view counter
type ClientMenuDish struct {
	Code          string      `json:"code"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         int64       `json:"price"`
	IsPopular     bool        `json:"isPopular"`
	IsRecommended bool        `json:"isRecommended"`
	Likes         int64       `json:"likes"`
	ImageLink     string      `json:"imageLink,omitempty"`
	Extras        []MenuExtra `json:"extras,omitempty"`
}

type ClientMenuCategory struct {
	Name   string           `json:"name"`
	Dishes []ClientMenuDish `json:"dishes"`
}

type ClientMenu struct {
	Categories []ClientMenuCategory `json:"categories"`
}

// ฝั่ง staff — ครบทุก field
type StaffMenuDish struct {
	ClientMenuDish
	NameEn     string `json:"nameEn"`
	Views      int64  `json:"views"`
	CategoryID uint   `json:"categoryId"`
}

type StaffMenuCategory struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	SortOrder int             `json:"sortOrder"`
	Dishes    []StaffMenuDish `json:"dishes"`
}

type StaffMenu struct {
	Categories []StaffMenuCategory `json:"categories"`
}

// BuildClientMenu ประกอบเมนูอ่านอย่างเดียว: หมวดตาม sort_order → เมนู → extras
func (s *MenuService) BuildClientMenu() (*ClientMenu, error) {
	cats, dishesByCat, err := s.load()
	if err != nil {
		return nil, err
	}

	menu := &ClientMenu{Categories: make([]ClientMenuCategory, 0, len(cats))}
	for _, cat := range cats {
		mc := ClientMenuCategory{Name: cat.Name, Dishes: []ClientMenuDish{}}
		for _, d := range dishesByCat[cat.ID] {
			mc.Dishes = append(mc.Dishes, clientDish(d))
		}
		menu.Categories = append(menu.Categories, mc)
	}
	return menu, nil
}

func (s *MenuService) BuildStaffMenu() (*StaffMenu, error) {
	cats, dishesByCat, err := s.load()
	if err != nil {
		return nil, err
	}

	menu := &StaffMenu{Categories: make([]StaffMenuCategory, 0, len(cats))}
	for _, cat := range cats {
		mc := StaffMenuCategory{
			ID: cat.ID, Name: cat.Name, SortOrder: cat.SortOrder,
			Dishes: []StaffMenuDish{},
		}
		for _, d := range dishesByCat[cat.ID] {
			mc.Dishes = append(mc.Dishes, StaffMenuDish{
				ClientMenuDish: clientDish(d),
				NameEn:         d.NameEn,
				Views:          d.Views,
				CategoryID:     d.CategoryID,
			})
		}
		menu.Categories = append(menu.Categories, mc)
	}
	return menu, nil
}

func (s *MenuService) load() ([]entity.Category, map[uint][]entity.Dish, error) {
	cats, err := s.Repo.ListCategories()
	if err != nil {
		return nil, nil, err
	}
	dishes, err := s.Repo.ListWithExtras()
	if err != nil {
		return nil, nil, err
	}
	byCat := make(map[uint][]entity.Dish)
	for _, d := range dishes {
		byCat[d.CategoryID] = append(byCat[d.CategoryID], d)
	}
	return cats, byCat, nil
}

func clientDish(d entity.Dish) ClientMenuDish {
	out := ClientMenuDish{
		Code:          d.Code,
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		IsPopular:     d.IsPopular,
		IsRecommended: d.IsRecommended,
		Likes:         d.Likes,
		ImageLink:     d.ImageLink,
	}
	for _, e := range d.Extras {
		out.Extras = append(out.Extras, MenuExtra{ID: e.ID, Name: e.Name, Price: e.Price})
	}
	return out
}

// ----- Dish detail / like -----

// DishDetail คืนเมนูเดี่ยวพร้อมนับ view เพิ่ม
func (s *MenuService) DishDetail(code string) (*entity.Dish, error) {
	affected, err := s.Repo.IncrementViews(code)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrDishNotFound
	}
	return s.Repo.FindByCode(code)
}

// Like กดถูกใจ — ซ้ำคือ conflict (unique ที่ DB เป็นคนตัดสิน)
func (s *MenuService) Like(userID uint, code string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.DishExists(tx, code)
		if err != nil {
			return err
		}
		if !ok {
			return ErrDishNotFound
		}

		if err := s.Repo.CreateLike(tx, userID, code); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return err
		}
		return s.Repo.IncrementLikes(tx, code)
	})
}

// ----- Staff writes -----

type DishIn struct {
	Code          string `json:"code" binding:"required,max=4"`
	Name          string `json:"name" binding:"required,max=50"`
	NameEn        string `json:"nameEn" binding:"max=30"`
	Description   string `json:"description" binding:"max=500"`
	Price         int64  `json:"price" binding:"min=0"`
	IsPopular     bool   `json:"isPopular"`
	IsRecommended bool   `json:"isRecommended"`
	ImageLink     string `json:"imageLink"`
	CategoryID    uint   `json:"categoryId" binding:"required"`
	ExtraIDs      []uint `json:"extraIds"`
}

// SaveDish สร้างหรือทับเมนูตาม code แล้วแจ้งว่าเมนูเปลี่ยน
func (s *MenuService) SaveDish(in *DishIn) error {
	extras, err := s.Repo.FindExtrasByIDs(in.ExtraIDs)
	if err != nil {
		return err
	}
	if len(extras) != len(in.ExtraIDs) {
		return ErrExtraNotFound
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		dish := entity.Dish{
			Code:          in.Code,
			Name:          in.Name,
			NameEn:        in.NameEn,
			Description:   in.Description,
			Price:         in.Price,
			IsPopular:     in.IsPopular,
			IsRecommended: in.IsRecommended,
			ImageLink:     in.ImageLink,
			CategoryID:    in.CategoryID,
		}
		if err := s.Repo.Upsert(tx, &dish); err != nil {
			return err
		}
		if err := s.Repo.ReplaceExtras(tx, &dish, extras); err != nil {
			return err
		}
		// เตรียมแถวสถิติไว้เลย เมนูใหม่ต้องโผล่ใน stats ด้วยค่า 0
		return s.Stats.EnsureDishStats(tx, dish.Code)
	})
	if err != nil {
		return err
	}

	s.Events.Publish(EventMenuChanged)
	return nil
}

// UpdateCategories จัดลำดับหมวดหมู่ใหม่ตามชื่อที่ส่งมา (ชื่อใหม่ = สร้างเพิ่ม)
func (s *MenuService) UpdateCategories(names []string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i, name := range names {
			cat, err := s.Repo.FindCategoryByName(tx, name)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c := entity.Category{Name: name, SortOrder: i + 1}
					if err := s.Repo.CreateCategory(tx, &c); err != nil {
						return err
					}
					continue
				}
				return err
			}
			if err := s.Repo.UpdateCategoryOrder(tx, cat.ID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Events.Publish(EventMenuChanged)
	return nil
}
