package configs

import (
	"log"

	"github.com/alexkanav/cafe-ordering-system/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedStaff สร้าง staff เริ่มต้นจาก env (ข้ามถ้าไม่ได้ตั้งค่า หรือมี email นี้แล้ว)
func SeedStaff(cfg *Config) error {
	if cfg.SeedStaffEmail == "" || cfg.SeedStaffPassword == "" {
		return nil
	}

	var cnt int64
	if err := db.Model(&entity.Staff{}).
		Where("email = ?", cfg.SeedStaffEmail).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedStaffPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := entity.Staff{
		Name:     cfg.SeedStaffName,
		Email:    cfg.SeedStaffEmail,
		Password: string(hashed),
	}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}
	log.Println("seeded staff:", staff.Email)
	return nil
}

// SeedLookups ใส่หมวดหมู่กับ extra พื้นฐานถ้า DB ยังว่าง
func SeedLookups() error {
	var cnt int64
	if err := db.Model(&entity.Category{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		cats := []entity.Category{
			{Name: "Coffee", SortOrder: 1},
			{Name: "Tea", SortOrder: 2},
			{Name: "Desserts", SortOrder: 3},
		}
		if err := db.Create(&cats).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entity.DishExtra{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		extras := []entity.DishExtra{
			{Name: "Extra shot", NameUa: "Подвійна кава", Price: 15},
			{Name: "Oat milk", NameUa: "Вівсяне молоко", Price: 10},
			{Name: "Syrup", NameUa: "Сироп", Price: 8},
		}
		if err := db.Create(&extras).Error; err != nil {
			return err
		}
	}
	return nil
}
